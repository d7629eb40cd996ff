package service

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/buxinhealth/website/internal/store"
)

// platformDisplayNames maps booking platform codes to the names shown in
// emails. Unknown codes pass through verbatim.
var platformDisplayNames = map[string]string{
	"google_meet": "Google Meet",
	"zoom":        "Zoom",
	"whatsapp":    "WhatsApp",
	"phone":       "Direct Phone Call",
}

// PlatformDisplayName resolves a platform code to its display name.
func PlatformDisplayName(code string) string {
	if name, ok := platformDisplayNames[code]; ok {
		return name
	}
	return code
}

// Dispatcher sends the admin notice and the submitter confirmation when a new
// submission arrives. Persistence has already succeeded by the time it runs,
// so every send is best-effort: failures are logged and swallowed, and the
// two sends are independent of each other. Calling a dispatch twice sends
// twice; there is no dedup.
type Dispatcher struct {
	mailer     *Mailer
	content    store.ContentStore
	adminEmail string
}

// NewDispatcher constructs a Dispatcher. adminEmail is the fixed address
// receiving admin notices.
func NewDispatcher(mailer *Mailer, content store.ContentStore, adminEmail string) *Dispatcher {
	admin := strings.TrimSpace(adminEmail)
	if admin == "" {
		admin = "buxinhealth@gmail.com"
	}
	return &Dispatcher{mailer: mailer, content: content, adminEmail: admin}
}

func (d *Dispatcher) fromEmail() string {
	settings, err := d.content.Settings()
	if err != nil {
		log.Printf("notification: load settings failed, using default sender: %v", err)
		return ""
	}
	return settings.FromEmail
}

// ContactMessageReceived sends the admin notice and user confirmation for a
// new contact message.
func (d *Dispatcher) ContactMessageReceived(ctx context.Context, m store.ContactMessage) {
	adminBody := fmt.Sprintf(`
<h2>New Contact Form Message</h2>
<p>You have received a new message from the contact form:</p>
<ul>
    <li><strong>Full Name:</strong> %s</li>
    <li><strong>Email:</strong> %s</li>
    <li><strong>Subject:</strong> %s</li>
    <li><strong>Date &amp; Time:</strong> %s</li>
</ul>
<h3>Message:</h3>
<p>%s</p>
<p>You can view and manage this message in the admin panel.</p>`,
		escape(m.FullName), escape(m.Email), escape(m.Subject),
		m.SubmittedAt.Format("2006-01-02 15:04:05"),
		strings.ReplaceAll(escape(m.Message), "\n", "<br>"))

	if _, err := d.mailer.Send(ctx, "", d.adminEmail, "New Contact Form Message: "+m.Subject, adminBody); err != nil {
		log.Printf("notification: contact admin notice failed: %v", err)
	}

	userBody := fmt.Sprintf(`
<h2>Thank You for Contacting Us</h2>
<p>Dear %s,</p>
<p>Thank you for contacting us. We have received your message and will get back to you soon.</p>
<p><strong>Your Message:</strong></p>
<p><em>%s</em></p>
<p>Best regards,<br>Healthcare Robot Team</p>`,
		escape(m.FullName), escape(m.Subject))

	if _, err := d.mailer.Send(ctx, d.fromEmail(), m.Email, "We Received Your Message", userBody); err != nil {
		log.Printf("notification: contact confirmation failed: %v", err)
	}
}

// InvestorBookingReceived sends the admin notice and investor confirmation
// for a new meeting request.
func (d *Dispatcher) InvestorBookingReceived(ctx context.Context, b store.InvestorBooking) {
	platform := PlatformDisplayName(b.Platform)

	adminBody := fmt.Sprintf(`
<h2>New Investor Meeting Request</h2>
<p>A new investor has requested a meeting:</p>
<ul>
    <li><strong>Name:</strong> %s</li>
    <li><strong>Email:</strong> %s</li>
    <li><strong>Phone:</strong> %s</li>
    <li><strong>Country:</strong> %s</li>
    <li><strong>Meeting Date &amp; Time:</strong> %s</li>
    <li><strong>Platform:</strong> %s</li>
</ul>
<p>Please review this booking in the admin panel.</p>`,
		escape(b.FullName), escape(b.Email), escape(b.Phone),
		escape(b.Country), escape(b.MeetingDate), escape(platform))

	if _, err := d.mailer.Send(ctx, "", d.adminEmail, "New Investor Meeting Request from "+b.FullName, adminBody); err != nil {
		log.Printf("notification: investor admin notice failed: %v", err)
	}

	userBody := fmt.Sprintf(`
<h2>Meeting Request Confirmed</h2>
<p>Dear %s,</p>
<p>Thank you for your interest! We have received your meeting request.</p>
<h3>Your Meeting Details:</h3>
<ul>
    <li><strong>Date &amp; Time:</strong> %s</li>
    <li><strong>Platform:</strong> %s</li>
</ul>
<p>We will review your request and get back to you shortly to confirm the meeting details.</p>
<p>Best regards,<br>Healthcare Robot Team</p>`,
		escape(b.FullName), escape(b.MeetingDate), escape(platform))

	if _, err := d.mailer.Send(ctx, d.fromEmail(), b.Email, "Your Meeting Request Has Been Received", userBody); err != nil {
		log.Printf("notification: investor confirmation failed: %v", err)
	}
}

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
