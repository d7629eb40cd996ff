package db

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage 保存联系表单提交的留言。
// Status 取值 new/read/replied/archived，新建时为 new。
type ContactMessage struct {
	gorm.Model
	FullName    string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:255;not null"`
	Subject     string    `gorm:"size:200;not null"`
	Message     string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:20;default:new"`
	SubmittedAt time.Time `gorm:"not null"`
}

// TableName 自定义表名以保持命名一致。
func (ContactMessage) TableName() string {
	return "contact_messages"
}
