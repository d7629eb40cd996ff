package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buxinhealth/website/internal/store"
)

func postJSON(t *testing.T, env *testEnv, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return env.do(t, req, nil)
}

const validBooking = `{
	"full_name": "Jane Investor",
	"email": "jane@example.com",
	"phone": "+1 (555) 010-0199",
	"country": "Canada",
	"meeting_date": "2025-10-01T15:00",
	"platform": "zoom"
}`

func TestCreateInvestorBookingSuccess(t *testing.T) {
	env := newTestEnv(t)

	recorder := postJSON(t, env, "/api/investor-booking", validBooking)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !strings.Contains(resp.Message, "meeting request has been received") {
		t.Fatalf("unexpected response %+v", resp)
	}

	bookings, err := env.fs.ListInvestorBookings()
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(bookings))
	}
	if bookings[0].Status != store.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", bookings[0].Status)
	}

	// 管理员通知 + 投资人确认
	if len(env.mailDoer.requests) != 2 {
		t.Fatalf("expected 2 notification emails, got %d", len(env.mailDoer.requests))
	}
}

func TestCreateInvestorBookingMissingField(t *testing.T) {
	env := newTestEnv(t)

	body := `{"full_name":"Jane","email":"jane@example.com","phone":"+15550100","country":"Canada","meeting_date":"2025-10-01T15:00"}`
	recorder := postJSON(t, env, "/api/investor-booking", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "platform is required") {
		t.Fatalf("expected field name in error, got %s", recorder.Body.String())
	}

	bookings, _ := env.fs.ListInvestorBookings()
	if len(bookings) != 0 {
		t.Fatal("rejected booking must not be stored")
	}
	if len(env.mailDoer.requests) != 0 {
		t.Fatal("rejected booking must not trigger emails")
	}
}

func TestCreateInvestorBookingInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	body := strings.Replace(validBooking, "jane@example.com", "not-an-email", 1)
	recorder := postJSON(t, env, "/api/investor-booking", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Invalid email address") {
		t.Fatalf("unexpected error body %s", recorder.Body.String())
	}
}

func TestCreateInvestorBookingShortPhone(t *testing.T) {
	env := newTestEnv(t)

	body := strings.Replace(validBooking, "+1 (555) 010-0199", "12-34", 1)
	recorder := postJSON(t, env, "/api/investor-booking", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "at least 7 digits") {
		t.Fatalf("unexpected error body %s", recorder.Body.String())
	}
}

func TestCreateInvestorBookingBadJSON(t *testing.T) {
	env := newTestEnv(t)

	recorder := postJSON(t, env, "/api/investor-booking", "{not json")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "No data received") {
		t.Fatalf("unexpected error body %s", recorder.Body.String())
	}
}

func TestListCountries(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, httptest.NewRequest(http.MethodGet, "/api/countries", nil), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var countries []string
	if err := json.Unmarshal(recorder.Body.Bytes(), &countries); err != nil {
		t.Fatalf("decode countries: %v", err)
	}
	if len(countries) < 100 {
		t.Fatalf("expected full country list, got %d", len(countries))
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "healthy") {
		t.Fatalf("unexpected body %s", recorder.Body.String())
	}
}
