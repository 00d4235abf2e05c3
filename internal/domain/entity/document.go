package entity

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentCategory 文档分类
type DocumentCategory string

const (
	DocumentCategoryGuide     DocumentCategory = "guide"
	DocumentCategoryNotice    DocumentCategory = "notice"
	DocumentCategoryChangelog DocumentCategory = "changelog"
)

// Document 文档实体。富文本内容按 jsonb 原样存储，
// 其内部 schema 由编辑器约定，本服务不解释。
type Document struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalizedName `gorm:"embedded"`
	Category      DocumentCategory `json:"category" gorm:"type:varchar(20);index"`
	Content       datatypes.JSON   `json:"content,omitempty" gorm:"type:jsonb"`
	Published     bool             `json:"published" gorm:"default:false"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Document) TableName() string {
	return "documents"
}

// NewDocument 创建新文档
func NewDocument(name LocalizedName, category DocumentCategory) *Document {
	now := time.Now()
	return &Document{
		LocalizedName: name,
		Category:      category,
		Published:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
