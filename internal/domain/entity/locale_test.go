package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNamePrefersEnglish(t *testing.T) {
	n := LocalizedName{NameJP: "マリー", NameEN: "Marie"}
	assert.Equal(t, "Marie", n.DisplayName())
}

func TestDisplayNameFallsBackToJapanese(t *testing.T) {
	n := LocalizedName{NameJP: "マリー"}
	assert.Equal(t, "マリー", n.DisplayName())
}

func TestNameFieldsCoversAllLocales(t *testing.T) {
	n := LocalizedName{NameJP: "jp", NameEN: "en", NameCN: "cn", NameTW: "tw", NameKR: "kr"}
	fields := n.NameFields()

	assert.Len(t, fields, 5)
	assert.Equal(t, "jp", fields["name_jp"])
	assert.Equal(t, "kr", fields["name_kr"])
}
