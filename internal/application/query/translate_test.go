package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAugmentFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		locale string
		want   string
	}{
		{
			name:   "own locale wins",
			record: Record{"name_jp": "かすみ", "name_en": "Kasumi"},
			locale: "jp",
			want:   "かすみ",
		},
		{
			name:   "en is the universal fallback",
			record: Record{"name_en": "Kasumi", "name_cn": ""},
			locale: "cn",
			want:   "Kasumi",
		},
		{
			name:   "first non-empty in enumeration order when en is empty",
			record: Record{"name_jp": "かすみ", "name_en": ""},
			locale: "kr",
			want:   "かすみ",
		},
		{
			name:   "all empty falls back to Unknown",
			record: Record{"name_jp": "", "name_en": ""},
			locale: "en",
			want:   "Unknown",
		},
		{
			name:   "whitespace-only counts as empty",
			record: Record{"name_en": "   ", "name_tw": "霞"},
			locale: "en",
			want:   "霞",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Augment(tt.record)
			view := Translations(out)
			assert.Equal(t, tt.want, view[tt.locale])
		})
	}
}

func TestAugmentJPOnlyRecord(t *testing.T) {
	// name_jp 之外全部为空时，en 回退到 jp，其余语言同样解析到 jp 值
	rec := Record{"name_jp": "かすみ", "name_en": "", "name_cn": "", "name_tw": "", "name_kr": ""}
	view := Translations(Augment(rec))

	for _, locale := range Locales {
		assert.Equal(t, "かすみ", view[locale], "locale %s", locale)
	}
}

func TestAugmentTotality(t *testing.T) {
	// 只要任意语言字段非空，每个语言都必须解析到非空字符串
	records := []Record{
		{"name_en": "Marie"},
		{"name_kr": "마리"},
		{"name_jp": "ほのか", "name_cn": "穗香"},
		{"level": 10}, // 没有任何语言字段
	}

	for _, rec := range records {
		view := Translations(Augment(rec))
		for _, locale := range Locales {
			assert.NotEmpty(t, view[locale])
		}
	}
}

func TestAugmentDoesNotMutateInput(t *testing.T) {
	rec := Record{"name_en": "Kasumi", "level": 10}
	out := Augment(rec)

	assert.NotContains(t, rec, TranslationsKey)
	assert.Contains(t, out, TranslationsKey)
	assert.Equal(t, 10, out["level"])
}
