package db

import (
	"time"

	"gorm.io/gorm"
)

// UploadedFile 记录已转存到媒体服务的文件，只增不改。
type UploadedFile struct {
	gorm.Model
	OriginalFilename string    `gorm:"size:255;not null"`
	URL              string    `gorm:"type:text;not null"`
	PublicID         string    `gorm:"size:255;not null"`
	FileType         string    `gorm:"size:50;not null"`
	FileSize         int64     `gorm:"default:0"`
	Width            int       `gorm:"default:0"`
	Height           int       `gorm:"default:0"`
	UploadedAt       time.Time `gorm:"not null"`
}

// TableName 自定义表名以保持命名一致。
func (UploadedFile) TableName() string {
	return "uploaded_files"
}
