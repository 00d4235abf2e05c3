package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.StringField("name_en")
	}
	return out
}

func TestSortNumericAscDesc(t *testing.T) {
	records := []Record{
		{"name_en": "Honoka", "level": 20},
		{"name_en": "Kasumi", "level": 10},
		{"name_en": "Marie", "level": 30},
	}

	asc := Sort(records, SortSpec{Key: "level", Direction: Asc})
	assert.Equal(t, []string{"Kasumi", "Honoka", "Marie"}, names(asc))

	desc := Sort(records, SortSpec{Key: "level", Direction: Desc})
	assert.Equal(t, []string{"Marie", "Honoka", "Kasumi"}, names(desc))

	// 输入不被改动
	assert.Equal(t, []string{"Honoka", "Kasumi", "Marie"}, names(records))
}

func TestSortStringCaseInsensitive(t *testing.T) {
	records := []Record{
		{"name_en": "marie"},
		{"name_en": "Honoka"},
		{"name_en": "KASUMI"},
	}

	out := Sort(records, SortSpec{Key: "name_en", Direction: Asc})
	assert.Equal(t, []string{"Honoka", "KASUMI", "marie"}, names(out))
}

func TestSortStability(t *testing.T) {
	// 相同 level 的记录保持输入相对顺序
	records := []Record{
		{"name_en": "A", "level": 10},
		{"name_en": "B", "level": 10},
		{"name_en": "C", "level": 5},
		{"name_en": "D", "level": 10},
	}

	out := Sort(records, SortSpec{Key: "level", Direction: Asc})
	assert.Equal(t, []string{"C", "A", "B", "D"}, names(out))

	// 降序只翻转符号，并列顺序同样不变
	out = Sort(records, SortSpec{Key: "level", Direction: Desc})
	assert.Equal(t, []string{"A", "B", "D", "C"}, names(out))

	// 同一配置排两次，输出顺序一致
	again := Sort(records, SortSpec{Key: "level", Direction: Desc})
	assert.Equal(t, names(out), names(again))
}

func TestSortMissingKeySortsFirstAscending(t *testing.T) {
	records := []Record{
		{"name_en": "A", "level": 10},
		{"name_en": "B"},
		{"name_en": "C", "level": 5},
	}

	out := Sort(records, SortSpec{Key: "level", Direction: Asc})
	assert.Equal(t, []string{"B", "C", "A"}, names(out))
}

func TestSortDottedPath(t *testing.T) {
	records := AugmentAll([]Record{
		{"name_en": "Marie"},
		{"name_en": "Honoka"},
	})

	out := Sort(records, SortSpec{Key: "translations.en", Direction: Asc})
	assert.Equal(t, []string{"Honoka", "Marie"}, names(out))
}

func TestSortMixedTypesFallBackToStringComparison(t *testing.T) {
	records := []Record{
		{"name_en": "A", "v": "10"},
		{"name_en": "B", "v": 2},
	}

	// "10" < "2" 按字符串比较
	out := Sort(records, SortSpec{Key: "v", Direction: Asc})
	assert.Equal(t, []string{"A", "B"}, names(out))
}

func TestSortEmptyKeyKeepsOrder(t *testing.T) {
	records := []Record{
		{"name_en": "B"},
		{"name_en": "A"},
	}

	out := Sort(records, SortSpec{})
	assert.Equal(t, []string{"B", "A"}, names(out))
}

func TestSortDerivedNumericKey(t *testing.T) {
	// 派生的属性总和作为排序键，并列项维持插入顺序
	records := []Record{
		{"name_en": "X", "total_stats": 300},
		{"name_en": "Y", "total_stats": 300},
		{"name_en": "Z", "total_stats": 250},
	}

	out := Sort(records, SortSpec{Key: "total_stats", Direction: Desc})
	assert.Equal(t, []string{"X", "Y", "Z"}, names(out))
}
