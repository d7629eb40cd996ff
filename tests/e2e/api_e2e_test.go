package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/buxinhealth/website/internal/handler"
	"github.com/buxinhealth/website/internal/router"
	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store/filestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "e2e-password"

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(h http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: h, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, req)
	resp := recorder.Result()
	resp.Request = req
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

type e2eSuite struct {
	fs     *filestore.Store
	public *localClient
	admin  *localClient
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs, err := filestore.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	mailer := service.NewMailer("", "")
	dispatcher := service.NewDispatcher(mailer, fs, "")
	media, err := service.NewMediaService("")
	if err != nil {
		t.Fatalf("failed to create media service: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	api := handler.NewAPI(fs, fs, mailer, dispatcher, media, string(hash))
	engine := router.SetupRouter(api, "e2e-secret")

	return &e2eSuite{
		fs:     fs,
		public: newLocalClient(engine, false),
		admin:  newLocalClient(engine, true),
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{}
	form.Set("password", adminPassword)
	req, _ := http.NewRequest(http.MethodPost, "http://local/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
}

func TestBookingLifecycle(t *testing.T) {
	s := newE2ESuite(t)

	// 投资人通过公开 API 提交预约
	body := `{"full_name":"Jane Investor","email":"jane@example.com","phone":"+15550100199","country":"Canada","meeting_date":"2025-10-01T15:00","platform":"google_meet"}`
	req, _ := http.NewRequest(http.MethodPost, "http://local/api/investor-booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.public.Do(req)
	if err != nil {
		t.Fatalf("booking request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("booking failed with status %d: %s", resp.StatusCode, raw)
	}

	var decoded struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil || !decoded.Success {
		t.Fatalf("unexpected booking response %s", raw)
	}

	// 未登录访问后台应被拒
	req, _ = http.NewRequest(http.MethodGet, "http://local/admin/investors", nil)
	resp, err = s.public.Do(req)
	if err != nil {
		t.Fatalf("anonymous request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect for anonymous admin access, got %d", resp.StatusCode)
	}

	// 管理员登录后删除该预约
	s.login(t)

	bookings, err := s.fs.ListInvestorBookings()
	if err != nil || len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d (err %v)", len(bookings), err)
	}

	req, _ = http.NewRequest(http.MethodPost, "http://local/admin/investors/delete/1", nil)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = s.admin.Do(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after delete, got %d", resp.StatusCode)
	}

	bookings, _ = s.fs.ListInvestorBookings()
	if len(bookings) != 0 {
		t.Fatalf("expected booking removed, %d left", len(bookings))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	form := url.Values{}
	form.Set("logo_type", "text")
	form.Set("logo_text", "E2E ROBOTICS")
	form.Set("site_name", "E2E Robotics")
	form.Set("from_email", "team@e2e.example")

	req, _ := http.NewRequest(http.MethodPost, "http://local/admin/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("settings request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}

	settings, err := s.fs.Settings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.SiteName != "E2E Robotics" || settings.LogoText != "E2E ROBOTICS" {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestCountriesEndpoint(t *testing.T) {
	s := newE2ESuite(t)

	req, _ := http.NewRequest(http.MethodGet, "http://local/api/countries", nil)
	resp, err := s.public.Do(req)
	if err != nil {
		t.Fatalf("countries request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var countries []string
	if err := json.Unmarshal(raw, &countries); err != nil {
		t.Fatalf("decode countries: %v", err)
	}
	if len(countries) < 100 {
		t.Fatalf("expected full country list, got %d", len(countries))
	}
}
