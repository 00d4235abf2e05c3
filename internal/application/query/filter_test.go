package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptyStateImposesNoConstraint(t *testing.T) {
	specs := []FilterFieldSpec{
		{Key: "search", Kind: KindText, Search: true},
		{Key: "rarity", Kind: KindSelect},
		{Key: "min_level", Field: "level", Kind: KindNumber, Bound: BoundMin},
	}
	rec := Record{"name_en": "Kasumi", "level": 10}

	ok, err := Evaluate(rec, specs, FilterState{})
	require.NoError(t, err)
	assert.True(t, ok)

	// 空白文本同样视为无约束
	ok, err = Evaluate(rec, specs, FilterState{"search": Text("  ")})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateTextKinds(t *testing.T) {
	specs := []FilterFieldSpec{
		{Key: "search", Kind: KindText, Search: true},
		{Key: "hobby", Kind: KindText},
	}
	rec := Augment(Record{"name_en": "Kasumi", "name_jp": "かすみ", "hobby": "Tea Ceremony"})

	// search 键委托多语言匹配器
	ok, err := Evaluate(rec, specs, FilterState{"search": Text("かす")})
	require.NoError(t, err)
	assert.True(t, ok)

	// 普通 text 键做单字段大小写不敏感子串匹配
	ok, err = Evaluate(rec, specs, FilterState{"hobby": Text("tea")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(rec, specs, FilterState{"hobby": Text("volleyball")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateSelect(t *testing.T) {
	specs := []FilterFieldSpec{{Key: "rarity", Kind: KindSelect}}

	ok, err := Evaluate(Record{"rarity": "ssr"}, specs, FilterState{"rarity": Text("ssr")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(Record{"rarity": "sr"}, specs, FilterState{"rarity": Text("ssr")})
	require.NoError(t, err)
	assert.False(t, ok)

	// 字段缺失时 select 约束不成立
	ok, err = Evaluate(Record{}, specs, FilterState{"rarity": Text("ssr")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateNumberBounds(t *testing.T) {
	specs := []FilterFieldSpec{
		{Key: "min_level", Field: "level", Kind: KindNumber, Bound: BoundMin},
		{Key: "max_level", Field: "level", Kind: KindNumber, Bound: BoundMax},
	}

	tests := []struct {
		name  string
		rec   Record
		state FilterState
		want  bool
	}{
		{"min passes", Record{"level": 20}, FilterState{"min_level": Number(15)}, true},
		{"min fails", Record{"level": 10}, FilterState{"min_level": Number(15)}, false},
		{"min boundary inclusive", Record{"level": 15}, FilterState{"min_level": Number(15)}, true},
		{"max passes", Record{"level": 10}, FilterState{"max_level": Number(15)}, true},
		{"max fails", Record{"level": 20}, FilterState{"max_level": Number(15)}, false},
		{"both bounds", Record{"level": 12}, FilterState{"min_level": Number(10), "max_level": Number(15)}, true},
		// 字段缺失时数值约束按通过处理，坏记录不拖垮整页
		{"missing field passes numeric", Record{}, FilterState{"min_level": Number(15)}, true},
		{"non-numeric field passes numeric", Record{"level": "abc"}, FilterState{"min_level": Number(15)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Evaluate(tt.rec, specs, tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestEvaluateNumericUserInputCoerceOrIgnore(t *testing.T) {
	specs := []FilterFieldSpec{{Key: "min_level", Field: "level", Kind: KindNumber, Bound: BoundMin}}
	rec := Record{"level": 10}

	// 文本形式的合法数字参与比较
	ok, err := Evaluate(rec, specs, FilterState{"min_level": Text("15")})
	require.NoError(t, err)
	assert.False(t, ok)

	// 输入中途的非法数字视为无约束
	ok, err = Evaluate(rec, specs, FilterState{"min_level": Text("1x")})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateCheckboxAsymmetry(t *testing.T) {
	specs := []FilterFieldSpec{{Key: "has_swimsuit", Kind: KindCheckbox}}

	ok, err := Evaluate(Record{"has_swimsuit": true}, specs, FilterState{"has_swimsuit": Bool(true)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(Record{"has_swimsuit": false}, specs, FilterState{"has_swimsuit": Bool(true)})
	require.NoError(t, err)
	assert.False(t, ok)

	// false 不产生约束，不表达"必须不具备"
	ok, err = Evaluate(Record{"has_swimsuit": true}, specs, FilterState{"has_swimsuit": Bool(false)})
	require.NoError(t, err)
	assert.True(t, ok)

	// 字段缺失时 checkbox 约束不成立
	ok, err = Evaluate(Record{}, specs, FilterState{"has_swimsuit": Bool(true)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateDateRange(t *testing.T) {
	specs := []FilterFieldSpec{
		{Key: "start_after", Field: "start_at", Kind: KindDate, Bound: BoundMin},
		{Key: "period", Field: "start_at", Kind: KindRange},
	}
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	rec := Record{"start_at": start}

	ok, err := Evaluate(rec, specs, FilterState{"start_after": Number(float64(start.Add(-time.Hour).Unix()))})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(rec, specs, FilterState{"start_after": Number(float64(start.Add(time.Hour).Unix()))})
	require.NoError(t, err)
	assert.False(t, ok)

	// range 值同时约束两端
	ok, err = Evaluate(rec, specs, FilterState{
		"period": Range(float64(start.Add(-time.Hour).Unix()), float64(start.Add(time.Hour).Unix())),
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateAllActiveFieldsCombineWithAND(t *testing.T) {
	specs := []FilterFieldSpec{
		{Key: "rarity", Kind: KindSelect},
		{Key: "min_level", Field: "level", Kind: KindNumber, Bound: BoundMin},
	}
	rec := Record{"rarity": "ssr", "level": 10}

	// 一个条件不满足即整体不通过
	ok, err := Evaluate(rec, specs, FilterState{
		"rarity":    Text("ssr"),
		"min_level": Number(20),
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateUnknownKindIsConfigurationError(t *testing.T) {
	specs := []FilterFieldSpec{{Key: "foo", Kind: FilterKind("fuzzy")}}

	_, err := Evaluate(Record{}, specs, FilterState{"foo": Text("bar")})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestFilterValueIsZero(t *testing.T) {
	assert.True(t, FilterValue{}.IsZero())
	assert.True(t, Text("").IsZero())
	assert.True(t, Text("  ").IsZero())
	assert.False(t, Text("x").IsZero())
	assert.False(t, Number(0).IsZero())
	assert.False(t, Bool(false).IsZero())
	assert.False(t, Range(0, 1).IsZero())
}
