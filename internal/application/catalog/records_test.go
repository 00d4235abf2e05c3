package catalog

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"venus-catalog-api/internal/domain/entity"
)

func TestCharacterRecord(t *testing.T) {
	c := &entity.Character{
		ID: "c-1",
		LocalizedName: entity.LocalizedName{
			NameJP: "かすみ",
			NameEN: "Kasumi",
		},
		Level:       15,
		HasSwimsuit: true,
		Tags:        pq.StringArray{"starter"},
	}

	rec := CharacterRecord(c)

	assert.Equal(t, "c-1", rec["id"])
	assert.Equal(t, "かすみ", rec["name_jp"])
	assert.Equal(t, "Kasumi", rec["name_en"])
	assert.Equal(t, "", rec["name_cn"])
	assert.Equal(t, 15, rec["level"])
	assert.Equal(t, true, rec["has_swimsuit"])
	assert.Equal(t, []string{"starter"}, rec["tags"])
}

func TestSwimsuitRecordDerivesTotalStats(t *testing.T) {
	s := &entity.Swimsuit{
		ID:          "s-1",
		CharacterID: "c-1",
		Rarity:      entity.RaritySSR,
		Pow:         100,
		Tec:         80,
		Stm:         60,
		Apl:         40,
	}

	rec := SwimsuitRecord(s)

	assert.Equal(t, "ssr", rec["rarity"])
	assert.Equal(t, 280, rec["total_stats"])
}

func TestEventRecordKeepsTimes(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(14 * 24 * time.Hour)
	e := &entity.Event{
		ID:      "e-1",
		Type:    entity.EventTypeFestival,
		StartAt: start,
		EndAt:   end,
	}

	rec := EventRecord(e)

	assert.Equal(t, start, rec["start_at"])
	assert.Equal(t, end, rec["end_at"])
}

func TestDocumentRecordOmitsContent(t *testing.T) {
	d := &entity.Document{
		ID:       "d-1",
		Category: entity.DocumentCategoryGuide,
		Content:  datatypes.JSON(`{"blocks":[]}`),
	}

	rec := DocumentRecord(d)

	assert.NotContains(t, rec, "content")
	assert.Equal(t, "guide", rec["category"])
}
