package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const sessionAdminKey = "admin_logged_in"

const (
	loginLimiterMaxEntries = 1024
	// 闲置这么久后令牌桶已完全回满,条目可以直接丢弃
	loginLimiterIdleTTL = 3 * time.Minute
)

type loginVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiter 按来源 IP 限制登录尝试,防止对单一管理密码的暴力破解。
// 条目数量有上限,跨大量来源 IP 的扫描不会让 map 无限增长。
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*loginVisitor
	now      func() time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		visitors: make(map[string]*loginVisitor),
		now:      time.Now,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	visitor, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= loginLimiterMaxEntries {
			l.prune(now)
		}
		// 每分钟 5 次,突发 5 次
		visitor = &loginVisitor{limiter: rate.NewLimiter(rate.Limit(5.0/60.0), 5)}
		l.visitors[ip] = visitor
	}
	visitor.lastSeen = now
	return visitor.limiter.AllowN(now, 1)
}

// prune 清理闲置条目;若全部条目仍在活跃窗口内,整体重置。
// 调用方必须已持有 l.mu。
func (l *loginLimiter) prune(now time.Time) {
	cutoff := now.Add(-loginLimiterIdleTTL)
	for ip, visitor := range l.visitors {
		if visitor.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
	if len(l.visitors) >= loginLimiterMaxEntries {
		l.visitors = make(map[string]*loginVisitor)
	}
}

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 校验管理密码并写入会话
func (a *API) Login(c *gin.Context) {
	if !a.logins.allow(c.ClientIP()) {
		a.renderHTML(c, http.StatusTooManyRequests, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Too many login attempts. Please try again later.",
		})
		return
	}

	password := c.PostForm("password")
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		addFlash(c, "error", "Invalid password.")
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Login",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Failed to save session.",
		})
		return
	}

	addFlash(c, "success", "Successfully logged in!")
	c.Redirect(http.StatusFound, "/admin")
}

// Logout 清除会话并登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionAdminKey)
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	addFlash(c, "success", "You have been logged out.")
	c.Redirect(http.StatusFound, "/admin/login")
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, ok := session.Get(sessionAdminKey).(bool)
		if !ok || !loggedIn {
			addFlash(c, "error", "Please log in to access admin panel.")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
