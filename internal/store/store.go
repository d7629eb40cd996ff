package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a record addressed by ID does not exist.
var ErrNotFound = errors.New("record not found")

// Contact message statuses.
const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

// Investor booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// SiteSettings holds the site-wide key/value settings with defaults applied.
type SiteSettings struct {
	LogoType     string
	LogoText     string
	LogoImageURL string
	SiteName     string
	FromEmail    string
}

// Site setting keys as persisted by both backends.
const (
	SettingLogoType     = "logo_type"
	SettingLogoText     = "logo_text"
	SettingLogoImageURL = "logo_image_url"
	SettingSiteName     = "site_name"
	SettingFromEmail    = "from_email"
)

// Defaults for settings that have not been saved yet.
const (
	DefaultLogoType  = "text"
	DefaultLogoText  = "HEALTHCARE ROBOT"
	DefaultSiteName  = "Healthcare Robot"
	DefaultFromEmail = "onboarding@resend.dev"
)

// ContactInfo is the singleton contact record shown on the contact page.
type ContactInfo struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	MapURL  string `json:"map_url"`
}

// DefaultContactInfo returns the built-in placeholder contact record.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Address: "1 Tesla Road, Austin, TX 78725, USA",
		Email:   "info@tesla.com",
		Phone:   "+1 (512) 516-8177",
		MapURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3447.332309852891!2d-97.61868468487999!3d30.22744388181669!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x8644b0d1b91350c3%3A0x651c633a5b6f707!2sTesla%20Giga%20Texas!5e0!3m2!1sen!2sus!4v1678888888888!5m2!1sen!2sus",
	}
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// InvestorBooking is an investor meeting request.
type InvestorBooking struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	MeetingDate string    `json:"meeting_date"`
	Platform    string    `json:"platform"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// UploadedFile is the audit record for a file forwarded to the media host.
type UploadedFile struct {
	ID               uint      `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	URL              string    `json:"url"`
	PublicID         string    `json:"public_id"`
	FileType         string    `json:"file_type"`
	FileSize         int64     `json:"file_size"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// ContentStore persists page documents, site settings and the contact record.
// Reads never fail on absence: a missing page resolves to an empty map and
// missing settings resolve to their defaults, because every page route
// renders with whatever is returned.
type ContentStore interface {
	// GetPage returns the stored document for a page, or an empty map.
	GetPage(name string) (map[string]any, error)
	// SavePage replaces the whole document for a page, creating it if needed.
	SavePage(name string, content map[string]any) error
	// ListPages returns all stored page documents keyed by page name.
	ListPages() (map[string]map[string]any, error)

	// Settings returns the site settings with defaults applied.
	Settings() (SiteSettings, error)
	// SaveSetting upserts a single setting by key.
	SaveSetting(key, value string) error

	// ContactInfo returns the contact record, field-wise defaulted.
	ContactInfo() (ContactInfo, error)
	// SaveContactInfo upserts the singleton contact record.
	SaveContactInfo(info ContactInfo) error
}

// SubmissionStore persists form submissions and upload audit records.
// Records are append-only and individually addressable; deletes are the only
// mutation exposed here.
type SubmissionStore interface {
	CreateContactMessage(m *ContactMessage) error
	ListContactMessages() ([]ContactMessage, error)
	DeleteContactMessage(id uint) error

	CreateInvestorBooking(b *InvestorBooking) error
	ListInvestorBookings() ([]InvestorBooking, error)
	DeleteInvestorBooking(id uint) error

	RecordUpload(f *UploadedFile) error
	ListUploads() ([]UploadedFile, error)
}
