// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"venus-catalog-api/internal/domain/entity"
)

// LocalizedNameRequest 五语言名称请求体
type LocalizedNameRequest struct {
	NameJP string `json:"name_jp"`
	NameEN string `json:"name_en"`
	NameCN string `json:"name_cn"`
	NameTW string `json:"name_tw"`
	NameKR string `json:"name_kr"`
}

func (r LocalizedNameRequest) toName() entity.LocalizedName {
	return entity.LocalizedName{
		NameJP: r.NameJP,
		NameEN: r.NameEN,
		NameCN: r.NameCN,
		NameTW: r.NameTW,
		NameKR: r.NameKR,
	}
}

func (r LocalizedNameRequest) applyTo(n *entity.LocalizedName) {
	if r.NameJP != "" {
		n.NameJP = r.NameJP
	}
	if r.NameEN != "" {
		n.NameEN = r.NameEN
	}
	if r.NameCN != "" {
		n.NameCN = r.NameCN
	}
	if r.NameTW != "" {
		n.NameTW = r.NameTW
	}
	if r.NameKR != "" {
		n.NameKR = r.NameKR
	}
}

// CreateCharacterRequest 创建角色请求
type CreateCharacterRequest struct {
	LocalizedNameRequest
	Level        int      `json:"level"`
	Birthday     string   `json:"birthday"`
	Height       int      `json:"height"`
	Hobby        string   `json:"hobby"`
	FavoriteFood string   `json:"favorite_food"`
	Tags         []string `json:"tags"`
}

// ToEntity 转换为角色实体
func (r CreateCharacterRequest) ToEntity() *entity.Character {
	c := entity.NewCharacter(r.toName())
	if r.Level > 0 {
		c.Level = r.Level
	}
	c.Birthday = r.Birthday
	c.Height = r.Height
	c.Hobby = r.Hobby
	c.FavoriteFood = r.FavoriteFood
	if len(r.Tags) > 0 {
		c.Tags = pq.StringArray(r.Tags)
	}
	return c
}

// UpdateCharacterRequest 更新角色请求，零值字段保持不变
type UpdateCharacterRequest struct {
	LocalizedNameRequest
	Level        *int      `json:"level"`
	Birthday     *string   `json:"birthday"`
	Height       *int      `json:"height"`
	Hobby        *string   `json:"hobby"`
	FavoriteFood *string   `json:"favorite_food"`
	Tags         *[]string `json:"tags"`
}

// ApplyTo 应用更新到角色实体
func (r UpdateCharacterRequest) ApplyTo(c *entity.Character) {
	r.applyTo(&c.LocalizedName)
	if r.Level != nil {
		c.Level = *r.Level
	}
	if r.Birthday != nil {
		c.Birthday = *r.Birthday
	}
	if r.Height != nil {
		c.Height = *r.Height
	}
	if r.Hobby != nil {
		c.Hobby = *r.Hobby
	}
	if r.FavoriteFood != nil {
		c.FavoriteFood = *r.FavoriteFood
	}
	if r.Tags != nil {
		c.Tags = pq.StringArray(*r.Tags)
	}
}

// CreateSwimsuitRequest 创建泳装请求
type CreateSwimsuitRequest struct {
	LocalizedNameRequest
	Rarity    string     `json:"rarity" binding:"required"`
	Pow       int        `json:"pow"`
	Tec       int        `json:"tec"`
	Stm       int        `json:"stm"`
	Apl       int        `json:"apl"`
	ReleaseAt *time.Time `json:"release_at"`
}

// ToEntity 转换为泳装实体
func (r CreateSwimsuitRequest) ToEntity(characterID string) *entity.Swimsuit {
	s := entity.NewSwimsuit(characterID, r.toName(), entity.SwimsuitRarity(r.Rarity))
	s.Pow = r.Pow
	s.Tec = r.Tec
	s.Stm = r.Stm
	s.Apl = r.Apl
	if r.ReleaseAt != nil {
		s.ReleaseAt = *r.ReleaseAt
	}
	return s
}

// UpdateSwimsuitRequest 更新泳装请求
type UpdateSwimsuitRequest struct {
	LocalizedNameRequest
	Rarity    *string    `json:"rarity"`
	Pow       *int       `json:"pow"`
	Tec       *int       `json:"tec"`
	Stm       *int       `json:"stm"`
	Apl       *int       `json:"apl"`
	ReleaseAt *time.Time `json:"release_at"`
}

// ApplyTo 应用更新到泳装实体
func (r UpdateSwimsuitRequest) ApplyTo(s *entity.Swimsuit) {
	r.applyTo(&s.LocalizedName)
	if r.Rarity != nil {
		s.Rarity = entity.SwimsuitRarity(*r.Rarity)
	}
	if r.Pow != nil {
		s.Pow = *r.Pow
	}
	if r.Tec != nil {
		s.Tec = *r.Tec
	}
	if r.Stm != nil {
		s.Stm = *r.Stm
	}
	if r.Apl != nil {
		s.Apl = *r.Apl
	}
	if r.ReleaseAt != nil {
		s.ReleaseAt = *r.ReleaseAt
	}
}

// CreateSkillRequest 创建技能请求
type CreateSkillRequest struct {
	LocalizedNameRequest
	Type        string `json:"type" binding:"required"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// ToEntity 转换为技能实体
func (r CreateSkillRequest) ToEntity() *entity.Skill {
	s := entity.NewSkill(r.toName(), entity.SkillType(r.Type))
	if r.Level > 0 {
		s.Level = r.Level
	}
	s.Description = r.Description
	return s
}

// UpdateSkillRequest 更新技能请求
type UpdateSkillRequest struct {
	LocalizedNameRequest
	Type        *string `json:"type"`
	Level       *int    `json:"level"`
	Description *string `json:"description"`
}

// ApplyTo 应用更新到技能实体
func (r UpdateSkillRequest) ApplyTo(s *entity.Skill) {
	r.applyTo(&s.LocalizedName)
	if r.Type != nil {
		s.Type = entity.SkillType(*r.Type)
	}
	if r.Level != nil {
		s.Level = *r.Level
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
}

// CreateItemRequest 创建道具请求
type CreateItemRequest struct {
	LocalizedNameRequest
	Category string `json:"category" binding:"required"`
	Rarity   string `json:"rarity"`
	Price    int    `json:"price"`
}

// ToEntity 转换为道具实体
func (r CreateItemRequest) ToEntity() *entity.Item {
	i := entity.NewItem(r.toName(), entity.ItemCategory(r.Category))
	i.Rarity = r.Rarity
	i.Price = r.Price
	return i
}

// UpdateItemRequest 更新道具请求
type UpdateItemRequest struct {
	LocalizedNameRequest
	Category *string `json:"category"`
	Rarity   *string `json:"rarity"`
	Price    *int    `json:"price"`
}

// ApplyTo 应用更新到道具实体
func (r UpdateItemRequest) ApplyTo(i *entity.Item) {
	r.applyTo(&i.LocalizedName)
	if r.Category != nil {
		i.Category = entity.ItemCategory(*r.Category)
	}
	if r.Rarity != nil {
		i.Rarity = *r.Rarity
	}
	if r.Price != nil {
		i.Price = *r.Price
	}
}

// CreateEventRequest 创建活动请求
type CreateEventRequest struct {
	LocalizedNameRequest
	Type        string    `json:"type" binding:"required"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Description string    `json:"description"`
}

// ToEntity 转换为活动实体
func (r CreateEventRequest) ToEntity() *entity.Event {
	e := entity.NewEvent(r.toName(), entity.EventType(r.Type), r.StartAt, r.EndAt)
	e.Description = r.Description
	return e
}

// UpdateEventRequest 更新活动请求
type UpdateEventRequest struct {
	LocalizedNameRequest
	Type        *string    `json:"type"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Description *string    `json:"description"`
}

// ApplyTo 应用更新到活动实体
func (r UpdateEventRequest) ApplyTo(e *entity.Event) {
	r.applyTo(&e.LocalizedName)
	if r.Type != nil {
		e.Type = entity.EventType(*r.Type)
	}
	if r.StartAt != nil {
		e.StartAt = *r.StartAt
	}
	if r.EndAt != nil {
		e.EndAt = *r.EndAt
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
}

// CreateDocumentRequest 创建文档请求
type CreateDocumentRequest struct {
	LocalizedNameRequest
	Category string         `json:"category" binding:"required"`
	Content  datatypes.JSON `json:"content"`
}

// ToEntity 转换为文档实体
func (r CreateDocumentRequest) ToEntity() *entity.Document {
	d := entity.NewDocument(r.toName(), entity.DocumentCategory(r.Category))
	d.Content = r.Content
	return d
}

// UpdateDocumentRequest 更新文档请求
type UpdateDocumentRequest struct {
	LocalizedNameRequest
	Category *string        `json:"category"`
	Content  datatypes.JSON `json:"content"`
}

// ApplyTo 应用更新到文档实体
func (r UpdateDocumentRequest) ApplyTo(d *entity.Document) {
	r.applyTo(&d.LocalizedName)
	if r.Category != nil {
		d.Category = entity.DocumentCategory(*r.Category)
	}
	if len(r.Content) > 0 {
		d.Content = r.Content
	}
}

// SetPublishedRequest 文档发布状态请求
type SetPublishedRequest struct {
	Published bool `json:"published"`
}
