package db

import "gorm.io/gorm"

// PageData 保存单个页面的自由 JSON 内容，按页面名唯一。
type PageData struct {
	gorm.Model
	PageName string `gorm:"size:50;uniqueIndex;not null"`
	Content  string `gorm:"type:text;not null"`
}

// TableName 自定义表名以保持命名一致。
func (PageData) TableName() string {
	return "page_data"
}
