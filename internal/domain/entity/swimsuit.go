package entity

import (
	"time"
)

// SwimsuitRarity 泳装稀有度
type SwimsuitRarity string

const (
	RaritySSR SwimsuitRarity = "ssr"
	RaritySR  SwimsuitRarity = "sr"
	RarityR   SwimsuitRarity = "r"
	RarityN   SwimsuitRarity = "n"
)

// Swimsuit 泳装实体
type Swimsuit struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CharacterID   string `json:"character_id" gorm:"type:uuid;index;not null"`
	LocalizedName `gorm:"embedded"`
	Rarity        SwimsuitRarity `json:"rarity" gorm:"type:varchar(10);default:'r'"`
	Pow           int            `json:"pow" gorm:"default:0"`
	Tec           int            `json:"tec" gorm:"default:0"`
	Stm           int            `json:"stm" gorm:"default:0"`
	Apl           int            `json:"apl" gorm:"default:0"`
	ReleaseAt     time.Time      `json:"release_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Swimsuit) TableName() string {
	return "swimsuits"
}

// TotalStats 四维属性总和，列表页用它作派生排序键
func (s *Swimsuit) TotalStats() int {
	return s.Pow + s.Tec + s.Stm + s.Apl
}

// NewSwimsuit 创建新泳装
func NewSwimsuit(characterID string, name LocalizedName, rarity SwimsuitRarity) *Swimsuit {
	now := time.Now()
	return &Swimsuit{
		CharacterID:   characterID,
		LocalizedName: name,
		Rarity:        rarity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
