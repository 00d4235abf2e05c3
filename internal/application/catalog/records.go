// Package catalog 提供目录实体的应用服务，
// 把仓储数据投影为查询引擎的记录并执行列表查询。
package catalog

import (
	"venus-catalog-api/internal/application/query"
	"venus-catalog-api/internal/domain/entity"
)

// 实体集合名，用于缓存键、指标标签与日志
const (
	EntityCharacter = "characters"
	EntitySwimsuit  = "swimsuits"
	EntitySkill     = "skills"
	EntityItem      = "items"
	EntityEvent     = "events"
	EntityDocument  = "documents"
)

func baseRecord(id string, name entity.LocalizedName) query.Record {
	rec := query.Record{"id": id}
	for k, v := range name.NameFields() {
		rec[k] = v
	}
	return rec
}

// CharacterRecord 角色记录投影
func CharacterRecord(c *entity.Character) query.Record {
	rec := baseRecord(c.ID, c.LocalizedName)
	rec["level"] = c.Level
	rec["birthday"] = c.Birthday
	rec["height"] = c.Height
	rec["hobby"] = c.Hobby
	rec["favorite_food"] = c.FavoriteFood
	rec["has_swimsuit"] = c.HasSwimsuit
	rec["tags"] = []string(c.Tags)
	rec["created_at"] = c.CreatedAt
	rec["updated_at"] = c.UpdatedAt
	return rec
}

// SwimsuitRecord 泳装记录投影，total_stats 为派生排序键
func SwimsuitRecord(s *entity.Swimsuit) query.Record {
	rec := baseRecord(s.ID, s.LocalizedName)
	rec["character_id"] = s.CharacterID
	rec["rarity"] = string(s.Rarity)
	rec["pow"] = s.Pow
	rec["tec"] = s.Tec
	rec["stm"] = s.Stm
	rec["apl"] = s.Apl
	rec["total_stats"] = s.TotalStats()
	rec["release_at"] = s.ReleaseAt
	rec["created_at"] = s.CreatedAt
	return rec
}

// SkillRecord 技能记录投影
func SkillRecord(s *entity.Skill) query.Record {
	rec := baseRecord(s.ID, s.LocalizedName)
	rec["type"] = string(s.Type)
	rec["level"] = s.Level
	rec["description"] = s.Description
	rec["created_at"] = s.CreatedAt
	return rec
}

// ItemRecord 道具记录投影
func ItemRecord(i *entity.Item) query.Record {
	rec := baseRecord(i.ID, i.LocalizedName)
	rec["category"] = string(i.Category)
	rec["rarity"] = i.Rarity
	rec["price"] = i.Price
	rec["created_at"] = i.CreatedAt
	return rec
}

// EventRecord 活动记录投影
func EventRecord(e *entity.Event) query.Record {
	rec := baseRecord(e.ID, e.LocalizedName)
	rec["type"] = string(e.Type)
	rec["start_at"] = e.StartAt
	rec["end_at"] = e.EndAt
	rec["description"] = e.Description
	rec["created_at"] = e.CreatedAt
	return rec
}

// DocumentRecord 文档记录投影，富文本内容不进列表页
func DocumentRecord(d *entity.Document) query.Record {
	rec := baseRecord(d.ID, d.LocalizedName)
	rec["category"] = string(d.Category)
	rec["published"] = d.Published
	rec["created_at"] = d.CreatedAt
	rec["updated_at"] = d.UpdatedAt
	return rec
}
