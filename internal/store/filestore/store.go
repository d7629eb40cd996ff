package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/buxinhealth/website/internal/store"
	"github.com/google/uuid"
)

const (
	pagesFile     = "pages.json"
	messagesFile  = "contact_messages.json"
	investorsFile = "investors.json"
	uploadsFile   = "uploads.json"

	// Reserved keys inside pages.json that are not page documents.
	settingsKey    = "site_settings"
	contactInfoKey = "contact_info"
)

// Store implements ContentStore and SubmissionStore on top of a directory of
// JSON files. Writes rewrite the whole file; concurrent writers from separate
// processes can still race (last write wins), the mutex only serializes
// access within one process.
type Store struct {
	mu               sync.Mutex
	dir              string
	defaultFromEmail string
}

// New creates a file-backed store rooted at dir, creating it if needed.
func New(dir, defaultFromEmail string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	from := strings.TrimSpace(defaultFromEmail)
	if from == "" {
		from = store.DefaultFromEmail
	}
	return &Store{dir: dir, defaultFromEmail: from}, nil
}

func (s *Store) readJSON(name string, dst any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeJSON 先写入唯一命名的临时文件再原子替换,崩溃时不会留下半截 JSON。
func (s *Store) writeJSON(name string, src any) error {
	raw, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp := filepath.Join(s.dir, name+".tmp-"+uuid.New().String())
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) loadPages() (map[string]map[string]any, error) {
	pages := map[string]map[string]any{}
	if err := s.readJSON(pagesFile, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage returns the stored document for a page, or an empty map when the
// page or the whole file is missing.
func (s *Store) GetPage(name string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages()
	if err != nil {
		return nil, err
	}
	if content, ok := pages[name]; ok && content != nil {
		return content, nil
	}
	return map[string]any{}, nil
}

// SavePage replaces the whole document for a page.
func (s *Store) SavePage(name string, content map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages()
	if err != nil {
		return err
	}
	pages[name] = content
	return s.writeJSON(pagesFile, pages)
}

// ListPages returns all page documents, excluding the reserved keys.
func (s *Store) ListPages() (map[string]map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages()
	if err != nil {
		return nil, err
	}
	delete(pages, settingsKey)
	delete(pages, contactInfoKey)
	return pages, nil
}

// Settings returns site settings stored under the reserved site_settings key,
// with defaults for anything unset.
func (s *Store) Settings() (store.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := store.SiteSettings{
		LogoType:  store.DefaultLogoType,
		LogoText:  store.DefaultLogoText,
		SiteName:  store.DefaultSiteName,
		FromEmail: s.defaultFromEmail,
	}

	pages, err := s.loadPages()
	if err != nil {
		return result, err
	}
	raw, ok := pages[settingsKey]
	if !ok {
		return result, nil
	}

	if v := stringValue(raw[store.SettingLogoType]); v != "" {
		result.LogoType = v
	}
	if v := stringValue(raw[store.SettingLogoText]); v != "" {
		result.LogoText = v
	}
	result.LogoImageURL = stringValue(raw[store.SettingLogoImageURL])
	if v := stringValue(raw[store.SettingSiteName]); v != "" {
		result.SiteName = v
	}
	if v := stringValue(raw[store.SettingFromEmail]); v != "" {
		result.FromEmail = v
	}
	return result, nil
}

// SaveSetting upserts a single setting under the reserved site_settings key.
func (s *Store) SaveSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages()
	if err != nil {
		return err
	}
	settings, ok := pages[settingsKey]
	if !ok || settings == nil {
		settings = map[string]any{}
	}
	settings[key] = value
	pages[settingsKey] = settings
	return s.writeJSON(pagesFile, pages)
}

// ContactInfo returns the contact record stored under the reserved
// contact_info key, field-wise defaulted.
func (s *Store) ContactInfo() (store.ContactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := store.DefaultContactInfo()

	pages, err := s.loadPages()
	if err != nil {
		return defaults, err
	}
	raw, ok := pages[contactInfoKey]
	if !ok {
		return defaults, nil
	}

	info := store.ContactInfo{
		Address: stringValue(raw["address"]),
		Email:   stringValue(raw["email"]),
		Phone:   stringValue(raw["phone"]),
		MapURL:  stringValue(raw["map_url"]),
	}
	if info.Address == "" {
		info.Address = defaults.Address
	}
	if info.Email == "" {
		info.Email = defaults.Email
	}
	if info.Phone == "" {
		info.Phone = defaults.Phone
	}
	if info.MapURL == "" {
		info.MapURL = defaults.MapURL
	}
	return info, nil
}

// SaveContactInfo upserts the singleton contact record.
func (s *Store) SaveContactInfo(info store.ContactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages()
	if err != nil {
		return err
	}
	pages[contactInfoKey] = map[string]any{
		"address": info.Address,
		"email":   info.Email,
		"phone":   info.Phone,
		"map_url": info.MapURL,
	}
	return s.writeJSON(pagesFile, pages)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// CreateContactMessage appends a message, assigning the next free ID.
func (s *Store) CreateContactMessage(m *store.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []store.ContactMessage
	if err := s.readJSON(messagesFile, &messages); err != nil {
		return err
	}

	if m.Status == "" {
		m.Status = store.MessageStatusNew
	}
	m.ID = nextMessageID(messages)
	messages = append(messages, *m)
	return s.writeJSON(messagesFile, messages)
}

// ListContactMessages returns all messages, newest first.
func (s *Store) ListContactMessages() ([]store.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []store.ContactMessage
	if err := s.readJSON(messagesFile, &messages); err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SubmittedAt.After(messages[j].SubmittedAt)
	})
	return messages, nil
}

// DeleteContactMessage removes a message by ID.
func (s *Store) DeleteContactMessage(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []store.ContactMessage
	if err := s.readJSON(messagesFile, &messages); err != nil {
		return err
	}

	kept := messages[:0]
	found := false
	for _, m := range messages {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return store.ErrNotFound
	}
	return s.writeJSON(messagesFile, kept)
}

// CreateInvestorBooking appends a booking, assigning the next free ID.
func (s *Store) CreateInvestorBooking(b *store.InvestorBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []store.InvestorBooking
	if err := s.readJSON(investorsFile, &bookings); err != nil {
		return err
	}

	if b.Status == "" {
		b.Status = store.BookingStatusPending
	}
	b.ID = nextBookingID(bookings)
	bookings = append(bookings, *b)
	return s.writeJSON(investorsFile, bookings)
}

// ListInvestorBookings returns all bookings, newest first.
func (s *Store) ListInvestorBookings() ([]store.InvestorBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []store.InvestorBooking
	if err := s.readJSON(investorsFile, &bookings); err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].SubmittedAt.After(bookings[j].SubmittedAt)
	})
	return bookings, nil
}

// DeleteInvestorBooking removes a booking by ID.
func (s *Store) DeleteInvestorBooking(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []store.InvestorBooking
	if err := s.readJSON(investorsFile, &bookings); err != nil {
		return err
	}

	kept := bookings[:0]
	found := false
	for _, b := range bookings {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return store.ErrNotFound
	}
	return s.writeJSON(investorsFile, kept)
}

// RecordUpload appends an upload audit record.
func (s *Store) RecordUpload(f *store.UploadedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []store.UploadedFile
	if err := s.readJSON(uploadsFile, &files); err != nil {
		return err
	}

	var maxID uint
	for _, existing := range files {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	f.ID = maxID + 1
	files = append(files, *f)
	return s.writeJSON(uploadsFile, files)
}

// ListUploads returns upload records, newest first.
func (s *Store) ListUploads() ([]store.UploadedFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []store.UploadedFile
	if err := s.readJSON(uploadsFile, &files); err != nil {
		return nil, err
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

func nextMessageID(messages []store.ContactMessage) uint {
	var maxID uint
	for _, m := range messages {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}

func nextBookingID(bookings []store.InvestorBooking) uint {
	var maxID uint
	for _, b := range bookings {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}
