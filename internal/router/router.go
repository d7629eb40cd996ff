package router

import (
	"html/template"
	"path/filepath"

	"github.com/buxinhealth/website/internal/handler"
	"github.com/buxinhealth/website/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 会话保存在服务端内存,cookie 只携带会话 ID
	store := memstore.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("website_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"eq": func(a, b interface{}) bool {
			return a == b
		},
		"is_video_url":  service.IsVideoURL,
		"platform_name": service.PlatformDisplayName,
	})
	// 模板目录存在时才加载,测试环境不携带模板
	if matches, _ := filepath.Glob("web/template/*.html"); len(matches) > 0 {
		r.LoadHTMLGlob("web/template/*.html")
	}

	// 静态文件服务
	r.Static("/static", "./web/static")

	// 公开页面
	r.GET("/", api.ShowHome)
	r.GET("/problem", api.ShowProblem)
	r.GET("/solution", api.ShowSolution)
	r.GET("/methodology", api.ShowMethodology)
	r.GET("/team", api.ShowTeam)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.GET("/health", api.Health)

	// 公开 API
	r.POST("/api/investor-booking", api.CreateInvestorBooking)
	r.GET("/api/countries", api.ListCountries)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)
			auth.GET("/edit/:page_name", api.ShowEditPage)
			auth.POST("/edit/:page_name", api.UpdatePage)
			auth.POST("/upload", api.UploadFile)
			auth.GET("/settings", api.ShowSettings)
			auth.POST("/settings", api.UpdateSettings)
			auth.GET("/send-email", api.ShowSendEmail)
			auth.POST("/send-email", api.SendEmail)
			auth.GET("/investors", api.ShowInvestors)
			auth.POST("/investors/delete/:id", api.DeleteInvestor)
			auth.GET("/contact", api.ShowContactMessages)
			auth.POST("/contact/delete/:id", api.DeleteContactMessage)
			auth.GET("/contact/info", api.ShowContactInfo)
			auth.POST("/contact/info", api.UpdateContactInfo)
		}
	}

	return r
}
