package entity

import (
	"time"
)

// ItemCategory 道具分类
type ItemCategory string

const (
	ItemCategoryAccessory  ItemCategory = "accessory"
	ItemCategoryConsumable ItemCategory = "consumable"
	ItemCategoryMaterial   ItemCategory = "material"
	ItemCategoryGift       ItemCategory = "gift"
)

// Item 道具实体
type Item struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalizedName `gorm:"embedded"`
	Category      ItemCategory `json:"category" gorm:"type:varchar(20);index"`
	Rarity        string       `json:"rarity,omitempty" gorm:"type:varchar(10)"`
	Price         int          `json:"price" gorm:"default:0"`
	CreatedAt     time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}

// NewItem 创建新道具
func NewItem(name LocalizedName, category ItemCategory) *Item {
	now := time.Now()
	return &Item{
		LocalizedName: name,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
