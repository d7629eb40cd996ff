package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将页面描述中的 Markdown 渲染为净化后的 HTML。
func renderMarkdown(source string) template.HTML {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func (a *API) showPublicPage(c *gin.Context, pageName, templateName string, extra gin.H) {
	pageData, err := a.content.GetPage(pageName)
	if err != nil {
		c.Error(err)
		pageData = map[string]any{}
	}

	data := gin.H{
		"page_data": pageData,
		"year":      time.Now().Year(),
	}
	if description, ok := pageData["description"].(string); ok {
		data["description_html"] = renderMarkdown(description)
	}
	for key, value := range extra {
		data[key] = value
	}

	a.renderHTML(c, http.StatusOK, templateName, data)
}

// ShowHome renders the public home page.
func (a *API) ShowHome(c *gin.Context) {
	a.showPublicPage(c, service.PageIndex, "index.html", nil)
}

// ShowProblem renders the problem page.
func (a *API) ShowProblem(c *gin.Context) {
	a.showPublicPage(c, service.PageProblem, "problem.html", nil)
}

// ShowSolution renders the solution page.
func (a *API) ShowSolution(c *gin.Context) {
	a.showPublicPage(c, service.PageSolution, "solution.html", nil)
}

// ShowMethodology renders the methodology page.
func (a *API) ShowMethodology(c *gin.Context) {
	a.showPublicPage(c, service.PageMethodology, "methodology.html", nil)
}

// ShowTeam renders the team page with the decoded member list.
func (a *API) ShowTeam(c *gin.Context) {
	pageData, err := a.content.GetPage(service.PageTeam)
	if err != nil {
		c.Error(err)
		pageData = map[string]any{}
	}
	team := service.DecodeTeamPage(pageData)

	a.renderHTML(c, http.StatusOK, "team.html", gin.H{
		"page_data": pageData,
		"team":      team.Members,
		"year":      time.Now().Year(),
	})
}

// contactFormInput 承载联系表单字段及校验错误。
type contactFormInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
}

func parseContactForm(c *gin.Context) contactFormInput {
	form := contactFormInput{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Message: strings.TrimSpace(c.PostForm("message")),
		Errors:  map[string]string{},
	}

	if form.Name == "" {
		form.Errors["name"] = "Please enter your name."
	} else if n := utf8.RuneCountInString(form.Name); n < 2 || n > 100 {
		form.Errors["name"] = "Name must be between 2 and 100 characters."
	}

	if form.Email == "" {
		form.Errors["email"] = "Please enter your email."
	} else if !emailPattern.MatchString(form.Email) {
		form.Errors["email"] = "Please enter a valid email."
	}

	if form.Subject == "" {
		form.Errors["subject"] = "Please enter a subject."
	} else if n := utf8.RuneCountInString(form.Subject); n < 5 || n > 150 {
		form.Errors["subject"] = "Subject must be between 5 and 150 characters."
	}

	if form.Message == "" {
		form.Errors["message"] = "Please enter a message."
	} else if n := utf8.RuneCountInString(form.Message); n < 10 || n > 2000 {
		form.Errors["message"] = "Message must be between 10 and 2000 characters."
	}

	return form
}

func (a *API) contactInfo(c *gin.Context) store.ContactInfo {
	info, err := a.content.ContactInfo()
	if err != nil {
		c.Error(err)
		return store.DefaultContactInfo()
	}
	return info
}

// ShowContact renders the contact page.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"form":         contactFormInput{Errors: map[string]string{}},
		"contact_info": a.contactInfo(c),
		"year":         time.Now().Year(),
	})
}

// SubmitContact 校验并保存联系表单,成功后发送通知邮件并重定向。
func (a *API) SubmitContact(c *gin.Context) {
	form := parseContactForm(c)
	if len(form.Errors) > 0 {
		a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
			"form":         form,
			"contact_info": a.contactInfo(c),
			"year":         time.Now().Year(),
		})
		return
	}

	message := store.ContactMessage{
		FullName:    form.Name,
		Email:       form.Email,
		Subject:     form.Subject,
		Message:     form.Message,
		Status:      store.MessageStatusNew,
		SubmittedAt: time.Now(),
	}
	if err := a.submissions.CreateContactMessage(&message); err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "contact.html", gin.H{
			"form":         form,
			"contact_info": a.contactInfo(c),
			"error":        "Failed to save your message. Please try again.",
			"year":         time.Now().Year(),
		})
		return
	}

	a.notify.ContactMessageReceived(c.Request.Context(), message)

	addFlash(c, "success", "Your message has been sent successfully.")
	c.Redirect(http.StatusFound, "/contact")
}

// Health 健康检查端点
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
