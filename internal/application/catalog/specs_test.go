package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venus-catalog-api/internal/application/query"
)

// 所有过滤器声明必须能构造合法引擎，接线错误在启动时暴露
func TestAllSpecsConstructValidEngines(t *testing.T) {
	sets := map[string][]query.FilterFieldSpec{
		EntityCharacter: CharacterSpecs(),
		EntitySwimsuit:  SwimsuitSpecs(),
		EntitySkill:     SkillSpecs(),
		EntityItem:      ItemSpecs(),
		EntityEvent:     EventSpecs(),
		EntityDocument:  DocumentSpecs(),
	}

	for name, specs := range sets {
		_, err := query.NewEngine(specs)
		require.NoError(t, err, "specs for %s", name)
	}
}

func TestCharacterSpecsBounds(t *testing.T) {
	var minLevel, maxLevel *query.FilterFieldSpec
	for _, spec := range CharacterSpecs() {
		s := spec
		switch s.Key {
		case "min_level":
			minLevel = &s
		case "max_level":
			maxLevel = &s
		}
	}

	require.NotNil(t, minLevel)
	require.NotNil(t, maxLevel)
	assert.Equal(t, "level", minLevel.Field)
	assert.Equal(t, "level", maxLevel.Field)
	assert.Equal(t, query.BoundMin, minLevel.Bound)
	assert.Equal(t, query.BoundMax, maxLevel.Bound)
}
