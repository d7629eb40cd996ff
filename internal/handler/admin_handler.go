package handler

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/gin-gonic/gin"
)

// editablePages 是后台可编辑的页面集合,防止任意 page_name 写入
var editablePages = map[string]bool{
	service.PageIndex:       true,
	service.PageProblem:     true,
	service.PageSolution:    true,
	service.PageMethodology: true,
	service.PageTeam:        true,
}

// ShowDashboard 渲染后台主面板,列出全部可编辑页面
func (a *API) ShowDashboard(c *gin.Context) {
	pages, err := a.content.ListPages()
	if err != nil {
		c.Error(err)
		pages = map[string]map[string]any{}
	}

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title": "Admin Dashboard",
		"pages": pages,
	})
}

// ShowEditPage 渲染指定页面的编辑表单
func (a *API) ShowEditPage(c *gin.Context) {
	pageName := c.Param("page_name")
	if !editablePages[pageName] {
		addFlash(c, "error", "Page not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	pageData, err := a.content.GetPage(pageName)
	if err != nil {
		c.Error(err)
		pageData = map[string]any{}
	}
	if len(pageData) == 0 {
		addFlash(c, "error", "Page not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_edit_"+pageName+".html", gin.H{
		"page_name": pageName,
		"page_data": pageData,
	})
}

// UpdatePage 将提交的编辑表单合并进页面文档并整体保存
func (a *API) UpdatePage(c *gin.Context) {
	pageName := c.Param("page_name")
	if !editablePages[pageName] {
		addFlash(c, "error", "Page not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	existing, err := a.content.GetPage(pageName)
	if err != nil {
		c.Error(err)
		existing = map[string]any{}
	}

	if err := c.Request.ParseForm(); err != nil {
		addFlash(c, "error", "Invalid form submission.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	doc := service.ApplyPageForm(existing, c.Request.PostForm, pageName)
	if err := a.content.SavePage(pageName, doc); err != nil {
		c.Error(err)
		addFlash(c, "error", "Failed to save page.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	addFlash(c, "success", "Page updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// ShowSettings 渲染站点设置页
func (a *API) ShowSettings(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_settings.html", gin.H{
		"title": "Site Settings",
	})
}

// UpdateSettings 保存站点设置,空值回退到默认
func (a *API) UpdateSettings(c *gin.Context) {
	settings := map[string]string{
		store.SettingLogoType:     c.DefaultPostForm("logo_type", store.DefaultLogoType),
		store.SettingLogoText:     c.DefaultPostForm("logo_text", store.DefaultLogoText),
		store.SettingLogoImageURL: c.DefaultPostForm("logo_image_url", ""),
		store.SettingSiteName:     c.DefaultPostForm("site_name", store.DefaultSiteName),
		store.SettingFromEmail:    c.DefaultPostForm("from_email", store.DefaultFromEmail),
	}
	for key, value := range settings {
		if err := a.content.SaveSetting(key, value); err != nil {
			c.Error(err)
			addFlash(c, "error", "Failed to save settings.")
			c.Redirect(http.StatusFound, "/admin/settings")
			return
		}
	}

	addFlash(c, "success", "Site settings updated successfully!")
	c.Redirect(http.StatusFound, "/admin/settings")
}

// ShowSendEmail 渲染手动发信页
func (a *API) ShowSendEmail(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_send_email.html", gin.H{
		"title": "Send Email",
	})
}

// SendEmail 以当前配置的发件地址向任意收件人发送一封 HTML 邮件。
// 正文先经过净化,避免后台误发脚本内容。
func (a *API) SendEmail(c *gin.Context) {
	toEmail := strings.TrimSpace(c.PostForm("to_email"))
	subject := strings.TrimSpace(c.PostForm("subject"))
	htmlContent := c.PostForm("html_content")

	switch {
	case toEmail == "" || !emailPattern.MatchString(toEmail):
		addFlash(c, "error", "Please enter a valid recipient email.")
	case subject == "" || utf8.RuneCountInString(subject) > 200:
		addFlash(c, "error", "Subject must be between 1 and 200 characters.")
	case strings.TrimSpace(htmlContent) == "" || utf8.RuneCountInString(htmlContent) > 10000:
		addFlash(c, "error", "Content must be between 1 and 10000 characters.")
	default:
		view := a.siteSettings(c)
		sanitized := sanitizer.Sanitize(htmlContent)
		id, err := a.mailer.Send(c.Request.Context(), view.FromEmail, toEmail, subject, sanitized)
		if err != nil {
			addFlash(c, "error", "Error sending email: "+err.Error())
		} else {
			if id == "" {
				id = "N/A"
			}
			addFlash(c, "success", "Email sent successfully to "+toEmail+"! (ID: "+id+")")
		}
	}

	c.Redirect(http.StatusFound, "/admin/send-email")
}

// ShowInvestors 列出全部投资人预约,按提交时间倒序
func (a *API) ShowInvestors(c *gin.Context) {
	investors, err := a.submissions.ListInvestorBookings()
	if err != nil {
		c.Error(err)
	}

	a.renderHTML(c, http.StatusOK, "admin_investors.html", gin.H{
		"title":     "Investor Bookings",
		"investors": investors,
	})
}

// DeleteInvestor 删除一条投资人预约
func (a *API) DeleteInvestor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		addFlash(c, "error", "Invalid booking id.")
		c.Redirect(http.StatusFound, "/admin/investors")
		return
	}

	if err := a.submissions.DeleteInvestorBooking(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			addFlash(c, "error", "Booking not found.")
		} else {
			c.Error(err)
			addFlash(c, "error", "Failed to delete booking.")
		}
		c.Redirect(http.StatusFound, "/admin/investors")
		return
	}

	addFlash(c, "success", "Booking deleted successfully.")
	c.Redirect(http.StatusFound, "/admin/investors")
}

// ShowContactMessages 列出全部联系消息
func (a *API) ShowContactMessages(c *gin.Context) {
	messages, err := a.submissions.ListContactMessages()
	if err != nil {
		c.Error(err)
	}

	a.renderHTML(c, http.StatusOK, "admin_contact.html", gin.H{
		"title":        "Contact Messages",
		"messages":     messages,
		"contact_info": a.contactInfo(c),
	})
}

// DeleteContactMessage 删除一条联系消息
func (a *API) DeleteContactMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		addFlash(c, "error", "Invalid message id.")
		c.Redirect(http.StatusFound, "/admin/contact")
		return
	}

	if err := a.submissions.DeleteContactMessage(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			addFlash(c, "error", "Message not found.")
		} else {
			c.Error(err)
			addFlash(c, "error", "Failed to delete message.")
		}
		c.Redirect(http.StatusFound, "/admin/contact")
		return
	}

	addFlash(c, "success", "Message deleted successfully.")
	c.Redirect(http.StatusFound, "/admin/contact")
}

// ShowContactInfo 渲染联系方式编辑页
func (a *API) ShowContactInfo(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_contact_info.html", gin.H{
		"title":        "Contact Information",
		"contact_info": a.contactInfo(c),
	})
}

// UpdateContactInfo 保存联系方式。分享型地图链接会尝试自动转换成可嵌入链接。
func (a *API) UpdateContactInfo(c *gin.Context) {
	info := store.ContactInfo{
		Address: c.PostForm("address"),
		Email:   c.PostForm("email"),
		Phone:   c.PostForm("phone"),
		MapURL:  strings.TrimSpace(c.PostForm("map_url")),
	}

	if info.MapURL != "" {
		converted, didConvert, err := service.ConvertMapURL(info.MapURL)
		if err != nil {
			addFlash(c, "error", "Could not extract coordinates from the URL. Please use the embed URL from Google Maps.")
			c.Redirect(http.StatusFound, "/admin/contact/info")
			return
		}
		if didConvert {
			addFlash(c, "success", `Auto-converted place URL to embed URL. For best results, use the embed URL from Google Maps "Share → Embed a map" option.`)
		}
		info.MapURL = converted
	}

	if err := a.content.SaveContactInfo(info); err != nil {
		c.Error(err)
		addFlash(c, "error", "Failed to save contact information.")
		c.Redirect(http.StatusFound, "/admin/contact/info")
		return
	}

	addFlash(c, "success", "Contact information updated successfully!")
	c.Redirect(http.StatusFound, "/admin/contact/info")
}
