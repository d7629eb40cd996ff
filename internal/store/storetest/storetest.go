// Package storetest holds the contract test suite shared by every storage
// backend. Both implementations must pass the same suite so the two backends
// stay interchangeable.
package storetest

import (
	"reflect"
	"testing"
	"time"

	"github.com/buxinhealth/website/internal/store"
)

// RunContentStore exercises the ContentStore contract against s.
func RunContentStore(t *testing.T, s store.ContentStore) {
	t.Run("missing page resolves to empty object", func(t *testing.T) {
		content, err := s.GetPage("never-saved")
		if err != nil {
			t.Fatalf("GetPage failed: %v", err)
		}
		if content == nil || len(content) != 0 {
			t.Fatalf("expected empty map, got %#v", content)
		}
	})

	t.Run("page round trip", func(t *testing.T) {
		doc := map[string]any{
			"title":         "Robots for Care",
			"subtitle":      "A helping hand",
			"slider_images": []any{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
			"items": []any{
				map[string]any{"icon": "heart", "title": "Care", "description": "Always on"},
			},
		}
		if err := s.SavePage("index", doc); err != nil {
			t.Fatalf("SavePage failed: %v", err)
		}

		got, err := s.GetPage("index")
		if err != nil {
			t.Fatalf("GetPage failed: %v", err)
		}
		if !reflect.DeepEqual(got, doc) {
			t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", doc, got)
		}
	})

	t.Run("save replaces whole document", func(t *testing.T) {
		if err := s.SavePage("solution", map[string]any{"title": "v1", "subtitle": "keep?"}); err != nil {
			t.Fatalf("SavePage failed: %v", err)
		}
		if err := s.SavePage("solution", map[string]any{"title": "v2"}); err != nil {
			t.Fatalf("SavePage failed: %v", err)
		}

		got, err := s.GetPage("solution")
		if err != nil {
			t.Fatalf("GetPage failed: %v", err)
		}
		if got["title"] != "v2" {
			t.Fatalf("expected replaced title v2, got %v", got["title"])
		}
		if _, ok := got["subtitle"]; ok {
			t.Fatal("expected subtitle to be dropped by full replace")
		}
	})

	t.Run("list pages includes saved documents", func(t *testing.T) {
		pages, err := s.ListPages()
		if err != nil {
			t.Fatalf("ListPages failed: %v", err)
		}
		if _, ok := pages["index"]; !ok {
			t.Fatalf("expected index page in listing, got keys %v", pageNames(pages))
		}
	})

	t.Run("settings defaults", func(t *testing.T) {
		settings, err := s.Settings()
		if err != nil {
			t.Fatalf("Settings failed: %v", err)
		}
		if settings.LogoType != store.DefaultLogoType {
			t.Fatalf("expected default logo type %q, got %q", store.DefaultLogoType, settings.LogoType)
		}
		if settings.SiteName != store.DefaultSiteName {
			t.Fatalf("expected default site name %q, got %q", store.DefaultSiteName, settings.SiteName)
		}
		if settings.FromEmail == "" {
			t.Fatal("expected from_email default to be non-empty")
		}
	})

	t.Run("setting upsert", func(t *testing.T) {
		if err := s.SaveSetting(store.SettingSiteName, "Buxin Health"); err != nil {
			t.Fatalf("SaveSetting failed: %v", err)
		}
		if err := s.SaveSetting(store.SettingSiteName, "Buxin Health Robotics"); err != nil {
			t.Fatalf("SaveSetting failed: %v", err)
		}

		settings, err := s.Settings()
		if err != nil {
			t.Fatalf("Settings failed: %v", err)
		}
		if settings.SiteName != "Buxin Health Robotics" {
			t.Fatalf("expected upserted site name, got %q", settings.SiteName)
		}
	})

	t.Run("contact info defaults and upsert", func(t *testing.T) {
		info, err := s.ContactInfo()
		if err != nil {
			t.Fatalf("ContactInfo failed: %v", err)
		}
		if info.Address != store.DefaultContactInfo().Address {
			t.Fatalf("expected default address, got %q", info.Address)
		}

		saved := store.ContactInfo{
			Address: "88 Health Way, Shenzhen",
			Email:   "hello@buxinhealth.example",
			Phone:   "+86 755 0000 0000",
			MapURL:  "https://www.google.com/maps?q=Shenzhen&output=embed",
		}
		if err := s.SaveContactInfo(saved); err != nil {
			t.Fatalf("SaveContactInfo failed: %v", err)
		}

		got, err := s.ContactInfo()
		if err != nil {
			t.Fatalf("ContactInfo failed: %v", err)
		}
		if got != saved {
			t.Fatalf("expected %#v, got %#v", saved, got)
		}
	})
}

// RunSubmissionStore exercises the SubmissionStore contract against s.
func RunSubmissionStore(t *testing.T, s store.SubmissionStore) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("contact message lifecycle", func(t *testing.T) {
		first := store.ContactMessage{
			FullName:    "Ada Lovelace",
			Email:       "ada@example.com",
			Subject:     "Partnership enquiry",
			Message:     "We would like to learn more about your robots.",
			SubmittedAt: base,
		}
		if err := s.CreateContactMessage(&first); err != nil {
			t.Fatalf("CreateContactMessage failed: %v", err)
		}
		if first.ID == 0 {
			t.Fatal("expected assigned ID")
		}
		if first.Status != store.MessageStatusNew {
			t.Fatalf("expected status new, got %q", first.Status)
		}

		second := store.ContactMessage{
			FullName:    "Grace Hopper",
			Email:       "grace@example.com",
			Subject:     "Press request",
			Message:     "Interview request for our magazine.",
			SubmittedAt: base.Add(time.Hour),
		}
		if err := s.CreateContactMessage(&second); err != nil {
			t.Fatalf("CreateContactMessage failed: %v", err)
		}

		messages, err := s.ListContactMessages()
		if err != nil {
			t.Fatalf("ListContactMessages failed: %v", err)
		}
		if len(messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(messages))
		}
		if messages[0].FullName != "Grace Hopper" {
			t.Fatalf("expected newest first, got %q", messages[0].FullName)
		}

		if err := s.DeleteContactMessage(first.ID); err != nil {
			t.Fatalf("DeleteContactMessage failed: %v", err)
		}
		messages, err = s.ListContactMessages()
		if err != nil {
			t.Fatalf("ListContactMessages failed: %v", err)
		}
		if len(messages) != 1 {
			t.Fatalf("expected 1 message after delete, got %d", len(messages))
		}

		if err := s.DeleteContactMessage(first.ID); err != store.ErrNotFound {
			t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
		}
	})

	t.Run("investor booking lifecycle", func(t *testing.T) {
		booking := store.InvestorBooking{
			FullName:    "Warren B.",
			Email:       "warren@example.com",
			Phone:       "+1 402 555 0001",
			Country:     "United States",
			MeetingDate: "2025-07-01 10:00 CET",
			Platform:    "zoom",
			SubmittedAt: base,
		}
		if err := s.CreateInvestorBooking(&booking); err != nil {
			t.Fatalf("CreateInvestorBooking failed: %v", err)
		}
		if booking.Status != store.BookingStatusPending {
			t.Fatalf("expected pending status, got %q", booking.Status)
		}

		bookings, err := s.ListInvestorBookings()
		if err != nil {
			t.Fatalf("ListInvestorBookings failed: %v", err)
		}
		if len(bookings) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(bookings))
		}

		if err := s.DeleteInvestorBooking(booking.ID); err != nil {
			t.Fatalf("DeleteInvestorBooking failed: %v", err)
		}
		if err := s.DeleteInvestorBooking(booking.ID); err != store.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("upload audit trail", func(t *testing.T) {
		file := store.UploadedFile{
			OriginalFilename: "photo.png",
			URL:              "https://res.cloudinary.com/demo/image/upload/photo.png",
			PublicID:         "uploads/images/photo",
			FileType:         "image",
			FileSize:         2048,
			Width:            640,
			Height:           480,
			UploadedAt:       base,
		}
		if err := s.RecordUpload(&file); err != nil {
			t.Fatalf("RecordUpload failed: %v", err)
		}
		if file.ID == 0 {
			t.Fatal("expected assigned ID")
		}

		files, err := s.ListUploads()
		if err != nil {
			t.Fatalf("ListUploads failed: %v", err)
		}
		if len(files) != 1 {
			t.Fatalf("expected 1 upload record, got %d", len(files))
		}
		if files[0].FileType != "image" {
			t.Fatalf("expected file type image, got %q", files[0].FileType)
		}
	})
}

func pageNames(pages map[string]map[string]any) []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	return names
}
