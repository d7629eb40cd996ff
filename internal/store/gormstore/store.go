package gormstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/buxinhealth/website/internal/db"
	"github.com/buxinhealth/website/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store 基于 gorm 实现 ContentStore 与 SubmissionStore。
type Store struct {
	db               *gorm.DB
	defaultFromEmail string
}

// New 构造 Store。defaultFromEmail 为空时回退到内置占位地址。
func New(gdb *gorm.DB, defaultFromEmail string) *Store {
	from := strings.TrimSpace(defaultFromEmail)
	if from == "" {
		from = store.DefaultFromEmail
	}
	return &Store{db: gdb, defaultFromEmail: from}
}

var settingKeys = []string{
	db.SettingKeyLogoType,
	db.SettingKeyLogoText,
	db.SettingKeyLogoImageURL,
	db.SettingKeySiteName,
	db.SettingKeyFromEmail,
}

// GetPage 返回页面文档，未保存过的页面返回空对象而不是错误。
func (s *Store) GetPage(name string) (map[string]any, error) {
	var page db.PageData
	if err := s.db.Where("page_name = ?", name).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("load page %s: %w", name, err)
	}
	return decodeContent(page.Content), nil
}

// SavePage 整体替换页面文档，不存在时创建。
func (s *Store) SavePage(name string, content map[string]any) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode page %s: %w", name, err)
	}

	page := db.PageData{PageName: name, Content: string(raw)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    string(raw),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&page).Error; err != nil {
		return fmt.Errorf("save page %s: %w", name, err)
	}
	return nil
}

// ListPages 返回全部页面文档，供后台面板使用。
func (s *Store) ListPages() (map[string]map[string]any, error) {
	var pages []db.PageData
	if err := s.db.Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	result := make(map[string]map[string]any, len(pages))
	for _, page := range pages {
		result[page.PageName] = decodeContent(page.Content)
	}
	return result, nil
}

func decodeContent(raw string) map[string]any {
	content := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return content
	}
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return map[string]any{}
	}
	return content
}

// Settings 读取站点设置，未设置的键返回默认值。
func (s *Store) Settings() (store.SiteSettings, error) {
	result := store.SiteSettings{
		LogoType:  store.DefaultLogoType,
		LogoText:  store.DefaultLogoText,
		SiteName:  store.DefaultSiteName,
		FromEmail: s.defaultFromEmail,
	}

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		switch record.Key {
		case db.SettingKeyLogoType:
			if strings.TrimSpace(record.Value) != "" {
				result.LogoType = record.Value
			}
		case db.SettingKeyLogoText:
			if strings.TrimSpace(record.Value) != "" {
				result.LogoText = record.Value
			}
		case db.SettingKeyLogoImageURL:
			result.LogoImageURL = record.Value
		case db.SettingKeySiteName:
			if strings.TrimSpace(record.Value) != "" {
				result.SiteName = record.Value
			}
		case db.SettingKeyFromEmail:
			if strings.TrimSpace(record.Value) != "" {
				result.FromEmail = record.Value
			}
		}
	}

	return result, nil
}

// SaveSetting 按键 upsert 单个站点设置。
func (s *Store) SaveSetting(key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

// ContactInfo 返回联系信息，缺失的字段逐项回退到默认值。
func (s *Store) ContactInfo() (store.ContactInfo, error) {
	defaults := store.DefaultContactInfo()

	var record db.ContactInfo
	if err := s.db.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("load contact info: %w", err)
	}

	info := store.ContactInfo{
		Address: record.Address,
		Email:   record.Email,
		Phone:   record.Phone,
		MapURL:  record.MapURL,
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

// SaveContactInfo upsert 单行联系信息。
func (s *Store) SaveContactInfo(info store.ContactInfo) error {
	var record db.ContactInfo
	err := s.db.First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load contact info: %w", err)
		}
		record = db.ContactInfo{
			Address: info.Address,
			Email:   info.Email,
			Phone:   info.Phone,
			MapURL:  info.MapURL,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return fmt.Errorf("create contact info: %w", err)
		}
		return nil
	}

	record.Address = info.Address
	record.Email = info.Email
	record.Phone = info.Phone
	record.MapURL = info.MapURL
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("update contact info: %w", err)
	}
	return nil
}

// CreateContactMessage 保存一条留言，状态缺省为 new。
func (s *Store) CreateContactMessage(m *store.ContactMessage) error {
	record := db.ContactMessage{
		FullName:    m.FullName,
		Email:       m.Email,
		Subject:     m.Subject,
		Message:     m.Message,
		Status:      m.Status,
		SubmittedAt: m.SubmittedAt,
	}
	if record.Status == "" {
		record.Status = store.MessageStatusNew
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	m.ID = record.ID
	m.Status = record.Status
	return nil
}

// ListContactMessages 按提交时间倒序返回全部留言。
func (s *Store) ListContactMessages() ([]store.ContactMessage, error) {
	var records []db.ContactMessage
	if err := s.db.Order("submitted_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}

	messages := make([]store.ContactMessage, 0, len(records))
	for _, record := range records {
		messages = append(messages, store.ContactMessage{
			ID:          record.ID,
			FullName:    record.FullName,
			Email:       record.Email,
			Subject:     record.Subject,
			Message:     record.Message,
			Status:      record.Status,
			SubmittedAt: record.SubmittedAt,
		})
	}
	return messages, nil
}

// DeleteContactMessage 删除指定留言，不存在时返回 ErrNotFound。
func (s *Store) DeleteContactMessage(id uint) error {
	result := s.db.Unscoped().Delete(&db.ContactMessage{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete contact message %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CreateInvestorBooking 保存一条预约，状态缺省为 pending。
func (s *Store) CreateInvestorBooking(b *store.InvestorBooking) error {
	record := db.InvestorBooking{
		FullName:    b.FullName,
		Email:       b.Email,
		Phone:       b.Phone,
		Country:     b.Country,
		MeetingDate: b.MeetingDate,
		Platform:    b.Platform,
		Status:      b.Status,
		SubmittedAt: b.SubmittedAt,
	}
	if record.Status == "" {
		record.Status = store.BookingStatusPending
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("create investor booking: %w", err)
	}
	b.ID = record.ID
	b.Status = record.Status
	return nil
}

// ListInvestorBookings 按提交时间倒序返回全部预约。
func (s *Store) ListInvestorBookings() ([]store.InvestorBooking, error) {
	var records []db.InvestorBooking
	if err := s.db.Order("submitted_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list investor bookings: %w", err)
	}

	bookings := make([]store.InvestorBooking, 0, len(records))
	for _, record := range records {
		bookings = append(bookings, store.InvestorBooking{
			ID:          record.ID,
			FullName:    record.FullName,
			Email:       record.Email,
			Phone:       record.Phone,
			Country:     record.Country,
			MeetingDate: record.MeetingDate,
			Platform:    record.Platform,
			Status:      record.Status,
			SubmittedAt: record.SubmittedAt,
		})
	}
	return bookings, nil
}

// DeleteInvestorBooking 删除指定预约，不存在时返回 ErrNotFound。
func (s *Store) DeleteInvestorBooking(id uint) error {
	result := s.db.Unscoped().Delete(&db.InvestorBooking{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete investor booking %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// RecordUpload 追加一条上传审计记录。
func (s *Store) RecordUpload(f *store.UploadedFile) error {
	record := db.UploadedFile{
		OriginalFilename: f.OriginalFilename,
		URL:              f.URL,
		PublicID:         f.PublicID,
		FileType:         f.FileType,
		FileSize:         f.FileSize,
		Width:            f.Width,
		Height:           f.Height,
		UploadedAt:       f.UploadedAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("record upload: %w", err)
	}
	f.ID = record.ID
	return nil
}

// ListUploads 按上传时间倒序返回上传记录。
func (s *Store) ListUploads() ([]store.UploadedFile, error) {
	var records []db.UploadedFile
	if err := s.db.Order("uploaded_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	files := make([]store.UploadedFile, 0, len(records))
	for _, record := range records {
		files = append(files, store.UploadedFile{
			ID:               record.ID,
			OriginalFilename: record.OriginalFilename,
			URL:              record.URL,
			PublicID:         record.PublicID,
			FileType:         record.FileType,
			FileSize:         record.FileSize,
			Width:            record.Width,
			Height:           record.Height,
			UploadedAt:       record.UploadedAt,
		})
	}
	return files, nil
}
