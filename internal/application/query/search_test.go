package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	rec := Augment(Record{"name_en": "Kasumi", "name_jp": "かすみ"})

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query always matches", "", true},
		{"whitespace-only query always matches", "   ", true},
		{"case-insensitive substring", "kASu", true},
		{"full name", "Kasumi", true},
		{"jp variant", "かすみ", true},
		{"no hit", "Honoka", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(rec, tt.query))
		})
	}
}

func TestMatchesFallbackValuesAreSearchable(t *testing.T) {
	// 仅 name_jp 非空：各语言视图都回退到 jp 值，
	// 因此 jp 名的子串在任何语言视图下都可命中
	rec := Augment(Record{"name_jp": "かすみ", "name_en": ""})
	assert.True(t, Matches(rec, "すみ"))
	assert.True(t, Matches(rec, "かすみ"))
}

func TestMatchesSearchMonotonicity(t *testing.T) {
	// en 名的任意非空子串必须命中
	rec := Augment(Record{"name_en": "Misaki"})
	name := "misaki"
	for i := 0; i < len(name); i++ {
		for j := i + 1; j <= len(name); j++ {
			assert.True(t, Matches(rec, name[i:j]), "substring %q", name[i:j])
		}
	}
}

func TestMatchesUnaugmentedRecord(t *testing.T) {
	// 未补全的记录现场计算翻译视图
	rec := Record{"name_en": "Luna"}
	assert.True(t, Matches(rec, "luna"))
}
