package catalog

import (
	"venus-catalog-api/internal/application/query"
)

// 每个实体列表页的过滤器声明。数值字段沿用 min_/max_ 单边约束约定，
// 同一字段的上下界是两个独立的过滤键。

// CharacterSpecs 角色列表过滤器
func CharacterSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "hobby", Kind: query.KindText},
		{Key: "min_level", Field: "level", Kind: query.KindNumber, Bound: query.BoundMin},
		{Key: "max_level", Field: "level", Kind: query.KindNumber, Bound: query.BoundMax},
		{Key: "min_height", Field: "height", Kind: query.KindNumber, Bound: query.BoundMin},
		{Key: "max_height", Field: "height", Kind: query.KindNumber, Bound: query.BoundMax},
		{Key: "has_swimsuit", Kind: query.KindCheckbox},
	}
}

// SwimsuitSpecs 泳装列表过滤器
func SwimsuitSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "rarity", Kind: query.KindSelect},
		{Key: "character_id", Kind: query.KindSelect},
		{Key: "min_pow", Field: "pow", Kind: query.KindNumber, Bound: query.BoundMin},
		{Key: "max_pow", Field: "pow", Kind: query.KindNumber, Bound: query.BoundMax},
		{Key: "total_stats", Kind: query.KindRange},
		{Key: "released_after", Field: "release_at", Kind: query.KindDate, Bound: query.BoundMin},
		{Key: "released_before", Field: "release_at", Kind: query.KindDate, Bound: query.BoundMax},
	}
}

// SkillSpecs 技能列表过滤器
func SkillSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "type", Kind: query.KindSelect},
		{Key: "min_level", Field: "level", Kind: query.KindNumber, Bound: query.BoundMin},
		{Key: "max_level", Field: "level", Kind: query.KindNumber, Bound: query.BoundMax},
	}
}

// ItemSpecs 道具列表过滤器
func ItemSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "category", Kind: query.KindSelect},
		{Key: "rarity", Kind: query.KindSelect},
		{Key: "min_price", Field: "price", Kind: query.KindNumber, Bound: query.BoundMin},
		{Key: "max_price", Field: "price", Kind: query.KindNumber, Bound: query.BoundMax},
	}
}

// EventSpecs 活动列表过滤器
func EventSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "type", Kind: query.KindSelect},
		{Key: "starts_after", Field: "start_at", Kind: query.KindDate, Bound: query.BoundMin},
		{Key: "ends_before", Field: "end_at", Kind: query.KindDate, Bound: query.BoundMax},
	}
}

// DocumentSpecs 文档列表过滤器
func DocumentSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "name", Kind: query.KindText, Search: true},
		{Key: "category", Kind: query.KindSelect},
		{Key: "published", Kind: query.KindCheckbox},
	}
}
