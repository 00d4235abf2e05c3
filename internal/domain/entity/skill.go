package entity

import (
	"time"
)

// SkillType 技能类型
type SkillType string

const (
	SkillTypeAttack  SkillType = "attack"
	SkillTypeDefense SkillType = "defense"
	SkillTypeSupport SkillType = "support"
	SkillTypePassive SkillType = "passive"
)

// Skill 技能实体
type Skill struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalizedName `gorm:"embedded"`
	Type          SkillType `json:"type" gorm:"type:varchar(20);default:'passive'"`
	Level         int       `json:"level" gorm:"default:1"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Skill) TableName() string {
	return "skills"
}

// NewSkill 创建新技能
func NewSkill(name LocalizedName, skillType SkillType) *Skill {
	now := time.Now()
	return &Skill{
		LocalizedName: name,
		Type:          skillType,
		Level:         1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
