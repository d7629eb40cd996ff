package db

import "gorm.io/gorm"

// SiteSetting 存储后台可配置的站点级键值对。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeyLogoType 表示 Logo 类型（text 或 image）。
	SettingKeyLogoType = "logo_type"
	// SettingKeyLogoText 表示文字 Logo 内容。
	SettingKeyLogoText = "logo_text"
	// SettingKeyLogoImageURL 表示图片 Logo 链接。
	SettingKeyLogoImageURL = "logo_image_url"
	// SettingKeySiteName 表示站点名称。
	SettingKeySiteName = "site_name"
	// SettingKeyFromEmail 表示外发邮件的发件人地址。
	SettingKeyFromEmail = "from_email"
)
