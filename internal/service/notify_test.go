package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/buxinhealth/website/internal/store"
)

type fakeContent struct {
	settings    store.SiteSettings
	settingsErr error
}

func (f *fakeContent) GetPage(string) (map[string]any, error)       { return map[string]any{}, nil }
func (f *fakeContent) SavePage(string, map[string]any) error        { return nil }
func (f *fakeContent) ListPages() (map[string]map[string]any, error) {
	return map[string]map[string]any{}, nil
}
func (f *fakeContent) Settings() (store.SiteSettings, error) { return f.settings, f.settingsErr }
func (f *fakeContent) SaveSetting(string, string) error      { return nil }
func (f *fakeContent) ContactInfo() (store.ContactInfo, error) {
	return store.DefaultContactInfo(), nil
}
func (f *fakeContent) SaveContactInfo(store.ContactInfo) error { return nil }

func newTestDispatcher(doer httpDoer, content store.ContentStore) *Dispatcher {
	mailer := NewMailer("re_test_key", "onboarding@resend.dev")
	mailer.SetHTTPClient(doer)
	return NewDispatcher(mailer, content, "admin@example.com")
}

func sentEmails(t *testing.T, doer *stubDoer) []sendEmailRequest {
	t.Helper()
	out := make([]sendEmailRequest, 0, len(doer.bodies))
	for _, body := range doer.bodies {
		var payload sendEmailRequest
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			t.Fatalf("decode sent email: %v", err)
		}
		out = append(out, payload)
	}
	return out
}

func TestContactMessageReceivedSendsTwoEmails(t *testing.T) {
	doer := &stubDoer{response: `{"id":"email_1"}`}
	content := &fakeContent{settings: store.SiteSettings{FromEmail: "team@buxin.example"}}
	d := newTestDispatcher(doer, content)

	d.ContactMessageReceived(context.Background(), store.ContactMessage{
		FullName:    "Alice <script>",
		Email:       "alice@example.com",
		Subject:     "Pricing",
		Message:     "line one\nline two",
		SubmittedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	})

	emails := sentEmails(t, doer)
	if len(emails) != 2 {
		t.Fatalf("expected admin notice + confirmation, got %d emails", len(emails))
	}

	admin := emails[0]
	if admin.To[0] != "admin@example.com" {
		t.Fatalf("expected admin recipient, got %v", admin.To)
	}
	if !strings.Contains(admin.HTML, "Alice &lt;script&gt;") {
		t.Fatal("expected escaped submitter name in admin notice")
	}
	if !strings.Contains(admin.HTML, "line one<br>line two") {
		t.Fatal("expected newline converted to <br> in message body")
	}

	user := emails[1]
	if user.To[0] != "alice@example.com" {
		t.Fatalf("expected submitter recipient, got %v", user.To)
	}
	if user.From != "team@buxin.example" {
		t.Fatalf("expected configured from address, got %q", user.From)
	}
}

func TestInvestorBookingReceivedMapsPlatform(t *testing.T) {
	doer := &stubDoer{response: `{"id":"email_1"}`}
	d := newTestDispatcher(doer, &fakeContent{})

	d.InvestorBookingReceived(context.Background(), store.InvestorBooking{
		FullName:    "Bob",
		Email:       "bob@example.com",
		Phone:       "+1 555 0100",
		Country:     "Canada",
		MeetingDate: "2025-07-01T15:00",
		Platform:    "google_meet",
	})

	emails := sentEmails(t, doer)
	if len(emails) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(emails))
	}
	for _, email := range emails {
		if !strings.Contains(email.HTML, "Google Meet") {
			t.Fatalf("expected platform display name in body: %s", email.HTML)
		}
	}
}

func TestDispatcherSwallowsSendFailures(t *testing.T) {
	doer := &stubDoer{status: http.StatusInternalServerError, response: `{"message":"boom"}`}
	d := newTestDispatcher(doer, &fakeContent{})

	// 两封都失败也不应 panic,且两封都尝试发送。
	d.InvestorBookingReceived(context.Background(), store.InvestorBooking{
		FullName: "Bob", Email: "bob@example.com", Platform: "zoom",
	})
	if len(doer.requests) != 2 {
		t.Fatalf("expected both sends attempted, got %d", len(doer.requests))
	}
}

func TestDispatcherSendsAgainOnRepeat(t *testing.T) {
	doer := &stubDoer{response: `{"id":"email_1"}`}
	d := newTestDispatcher(doer, &fakeContent{})

	booking := store.InvestorBooking{FullName: "Bob", Email: "bob@example.com", Platform: "zoom"}
	d.InvestorBookingReceived(context.Background(), booking)
	d.InvestorBookingReceived(context.Background(), booking)

	if len(doer.requests) != 4 {
		t.Fatalf("expected repeat dispatch to send again, got %d requests", len(doer.requests))
	}
}

func TestPlatformDisplayNameUnknownPassesThrough(t *testing.T) {
	if got := PlatformDisplayName("carrier_pigeon"); got != "carrier_pigeon" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}
