package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine([]FilterFieldSpec{
		{Key: "search", Kind: KindText, Search: true},
		{Key: "min_level", Field: "level", Kind: KindNumber, Bound: BoundMin},
		{Key: "max_level", Field: "level", Kind: KindNumber, Bound: BoundMax},
		{Key: "rarity", Kind: KindSelect},
		{Key: "has_swimsuit", Kind: KindCheckbox},
	})
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsUnknownKind(t *testing.T) {
	_, err := NewEngine([]FilterFieldSpec{{Key: "x", Kind: FilterKind("regex")}})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestEngineQueryFilterSortPaginate(t *testing.T) {
	e := newTestEngine(t)
	records := []Record{
		{"name_en": "Kasumi", "level": 10},
		{"name_en": "Honoka", "level": 20},
	}

	result, err := e.Query(records, Input{
		Filters: FilterState{"min_level": Number(15)},
		Sort:    SortSpec{Key: "level", Direction: Asc},
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Honoka", result.Items[0].StringField("name_en"))
	assert.Equal(t, PageMetadata{
		Page: 1, Limit: 10, Total: 1, TotalPages: 1,
		HasNext: false, HasPrev: false,
	}, result.Metadata)
}

func TestEngineQueryIdempotentClear(t *testing.T) {
	// 空过滤状态返回补全后的原始顺序，不增不减
	e := newTestEngine(t)
	records := []Record{
		{"name_en": "Marie", "level": 30},
		{"name_en": "Kasumi", "level": 10},
		{"name_en": "Honoka", "level": 20},
	}

	result, err := e.Query(records, Input{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, []string{"Marie", "Kasumi", "Honoka"}, names(result.Items))
	for _, rec := range result.Items {
		assert.Contains(t, rec, TranslationsKey)
	}
}

func TestEngineQuerySearchAcrossLocales(t *testing.T) {
	e := newTestEngine(t)
	records := []Record{
		{"name_jp": "かすみ", "name_en": "", "level": 10},
		{"name_en": "Honoka", "level": 20},
	}

	result, err := e.Query(records, Input{Search: "かす", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "かすみ", result.Items[0].StringField("name_jp"))
}

func TestEngineQueryInvalidLimit(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Query(makeRecords(3), Input{Page: 1, Limit: 0})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestEngineQueryDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t)
	records := []Record{{"name_en": "Kasumi", "level": 10}}

	_, err := e.Query(records, Input{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.NotContains(t, records[0], TranslationsKey)
	assert.Len(t, records[0], 2)
}

func TestEngineQueryCombinedPipeline(t *testing.T) {
	e := newTestEngine(t)
	records := []Record{
		{"name_en": "Ayane", "level": 45, "rarity": "ssr", "has_swimsuit": true},
		{"name_en": "Nyotengu", "level": 60, "rarity": "ssr", "has_swimsuit": false},
		{"name_en": "Kokoro", "level": 55, "rarity": "sr", "has_swimsuit": true},
		{"name_en": "Momiji", "level": 70, "rarity": "ssr", "has_swimsuit": true},
	}

	result, err := e.Query(records, Input{
		Filters: FilterState{
			"rarity":       Text("ssr"),
			"has_swimsuit": Bool(true),
			"min_level":    Number(50),
		},
		Sort:  SortSpec{Key: "level", Direction: Desc},
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Momiji"}, names(result.Items))
	assert.Equal(t, 1, result.Metadata.Total)
}
