package db

import (
	"time"

	"gorm.io/gorm"
)

// InvestorBooking 保存投资人预约会议的请求。
// MeetingDate 按原始字符串存储；Platform 取值
// google_meet/zoom/whatsapp/phone；Status 取值 pending/confirmed/cancelled。
type InvestorBooking struct {
	gorm.Model
	FullName    string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:255;not null"`
	Phone       string    `gorm:"size:20;not null"`
	Country     string    `gorm:"size:100;not null"`
	MeetingDate string    `gorm:"size:50;not null"`
	Platform    string    `gorm:"size:50;not null"`
	Status      string    `gorm:"size:20;default:pending"`
	SubmittedAt time.Time `gorm:"not null"`
}

// TableName 自定义表名以保持命名一致。
func (InvestorBooking) TableName() string {
	return "investor_bookings"
}
