package db

import "gorm.io/gorm"

// ContactInfo 保存前台联系方式的单行记录
// MapURL 存放 Google Maps 的 embed 链接
type ContactInfo struct {
	gorm.Model
	Address string `gorm:"type:text"`
	Email   string `gorm:"size:255"`
	Phone   string `gorm:"size:50"`
	MapURL  string `gorm:"type:text"`
}

// TableName 返回自定义表名，避免冲突
func (ContactInfo) TableName() string {
	return "contact_info"
}
