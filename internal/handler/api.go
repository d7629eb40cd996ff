package handler

import (
	"strings"

	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/gin-gonic/gin"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	content      store.ContentStore
	submissions  store.SubmissionStore
	mailer       *service.Mailer
	notify       *service.Dispatcher
	media        *service.MediaService
	passwordHash []byte
	logins       *loginLimiter
}

type siteViewModel struct {
	Name         string
	LogoType     string
	LogoText     string
	LogoImageURL string
	FromEmail    string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services. passwordHash is the
// bcrypt hash of the admin password.
func NewAPI(content store.ContentStore, submissions store.SubmissionStore, mailer *service.Mailer, notify *service.Dispatcher, media *service.MediaService, passwordHash string) *API {
	return &API{
		content:      content,
		submissions:  submissions,
		mailer:       mailer,
		notify:       notify,
		media:        media,
		passwordHash: []byte(passwordHash),
		logins:       newLoginLimiter(),
	}
}

func (a *API) siteSettings(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings, err := a.content.Settings()
	if err != nil {
		c.Error(err)
	}

	view := siteViewModel{
		Name:         strings.TrimSpace(settings.SiteName),
		LogoType:     strings.TrimSpace(settings.LogoType),
		LogoText:     strings.TrimSpace(settings.LogoText),
		LogoImageURL: strings.TrimSpace(settings.LogoImageURL),
		FromEmail:    strings.TrimSpace(settings.FromEmail),
	}
	if view.Name == "" {
		view.Name = store.DefaultSiteName
	}
	if view.LogoType == "" {
		view.LogoType = store.DefaultLogoType
	}
	if view.LogoText == "" {
		view.LogoText = store.DefaultLogoText
	}
	if view.FromEmail == "" {
		view.FromEmail = store.DefaultFromEmail
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

// renderHTML 在向模板渲染时自动附加站点设置与闪存消息。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site_settings"]; !exists {
		payload["site_settings"] = gin.H{
			"site_name":      view.Name,
			"logo_type":      view.LogoType,
			"logo_text":      view.LogoText,
			"logo_image_url": view.LogoImageURL,
			"from_email":     view.FromEmail,
		}
	}
	if _, exists := payload["flashes"]; !exists {
		payload["flashes"] = takeFlashes(c)
	}

	c.HTML(status, template, payload)
}
