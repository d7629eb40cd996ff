package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrRecipientMissing is returned when a send is attempted without a
// recipient address.
var ErrRecipientMissing = errors.New("recipient email is required")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Mailer sends transactional email through the Resend HTTP API. With no API
// key configured it degrades to logging the send, so local development works
// without credentials.
type Mailer struct {
	apiKey      string
	defaultFrom string
	http        httpDoer
	baseURL     string
}

// NewMailer constructs a Mailer. defaultFrom is used when the caller passes
// an empty sender.
func NewMailer(apiKey, defaultFrom string) *Mailer {
	from := strings.TrimSpace(defaultFrom)
	if from == "" {
		from = "onboarding@resend.dev"
	}
	return &Mailer{
		apiKey:      strings.TrimSpace(apiKey),
		defaultFrom: from,
		http:        &http.Client{Timeout: 10 * time.Second},
		baseURL:     "https://api.resend.com",
	}
}

// SetHTTPClient replaces the HTTP client, mainly for tests.
func (m *Mailer) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	m.http = client
}

// SetBaseURL overrides the API base address, mainly for tests.
func (m *Mailer) SetBaseURL(base string) {
	m.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Enabled reports whether an API key is configured.
func (m *Mailer) Enabled() bool {
	return m.apiKey != ""
}

// Send delivers one HTML email and returns the provider's message ID.
func (m *Mailer) Send(ctx context.Context, from, to, subject, html string) (string, error) {
	recipient := strings.TrimSpace(to)
	if recipient == "" {
		return "", ErrRecipientMissing
	}

	sender := strings.TrimSpace(from)
	if sender == "" {
		sender = m.defaultFrom
	}

	if !m.Enabled() {
		log.Printf("mailer disabled, would send to %s: %s", recipient, subject)
		return "", nil
	}

	payload := sendEmailRequest{
		From:    sender,
		To:      []string{recipient},
		Subject: subject,
		HTML:    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode email request: %w", err)
	}

	endpoint := strings.TrimRight(m.baseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := m.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read email response: %w", err)
	}

	var decoded sendEmailResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil && resp.StatusCode < http.StatusBadRequest {
		return "", fmt.Errorf("decode email response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := strings.TrimSpace(decoded.Message)
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("email provider rejected send: %s", msg)
	}

	return decoded.ID, nil
}
