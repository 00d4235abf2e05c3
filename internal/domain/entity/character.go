package entity

import (
	"time"

	"github.com/lib/pq"
)

// Character 角色实体
type Character struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalizedName `gorm:"embedded"`
	Level         int            `json:"level" gorm:"default:1"`
	Birthday      string         `json:"birthday,omitempty" gorm:"type:varchar(20)"`
	Height        int            `json:"height,omitempty"`
	Hobby         string         `json:"hobby,omitempty" gorm:"type:varchar(255)"`
	FavoriteFood  string         `json:"favorite_food,omitempty" gorm:"type:varchar(255)"`
	HasSwimsuit   bool           `json:"has_swimsuit" gorm:"default:false"`
	Tags          pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Character) TableName() string {
	return "characters"
}

// NewCharacter 创建新角色
func NewCharacter(name LocalizedName) *Character {
	now := time.Now()
	return &Character{
		LocalizedName: name,
		Level:         1,
		Tags:          pq.StringArray{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
