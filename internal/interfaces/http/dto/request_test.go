package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venus-catalog-api/internal/application/query"
)

func newListContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/characters?"+rawQuery, nil)
	return c
}

func testSpecs() []query.FilterFieldSpec {
	return []query.FilterFieldSpec{
		{Key: "hobby", Field: "hobby", Kind: query.KindText},
		{Key: "has_swimsuit", Field: "has_swimsuit", Kind: query.KindCheckbox},
		{Key: "level", Field: "level", Kind: query.KindRange},
	}
}

func TestBindListQueryDefaults(t *testing.T) {
	c := newListContext(t, "")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20, MaxPageSize: 100})

	assert.Equal(t, 1, in.Page)
	assert.Equal(t, 20, in.Limit)
	assert.Empty(t, in.Search)
	assert.Empty(t, in.Filters)
	assert.Empty(t, in.Sort.Key)
}

func TestBindListQueryClampsLimit(t *testing.T) {
	c := newListContext(t, "page=3&limit=500")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20, MaxPageSize: 100})

	assert.Equal(t, 3, in.Page)
	assert.Equal(t, 100, in.Limit)

	c = newListContext(t, "limit=-5")
	in = BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20, MaxPageSize: 100})
	assert.Equal(t, 20, in.Limit)
}

func TestBindListQuerySort(t *testing.T) {
	c := newListContext(t, "sort=level")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})
	assert.Equal(t, query.SortSpec{Key: "level", Direction: query.Asc}, in.Sort)

	c = newListContext(t, "sort=-level")
	in = BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})
	assert.Equal(t, query.SortSpec{Key: "level", Direction: query.Desc}, in.Sort)

	c = newListContext(t, "sort=name&order=desc")
	in = BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})
	assert.Equal(t, query.SortSpec{Key: "name", Direction: query.Desc}, in.Sort)
}

func TestBindListQueryFilters(t *testing.T) {
	c := newListContext(t, "hobby=swimming&has_swimsuit=true&level=10,30")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})

	require.Len(t, in.Filters, 3)
	assert.Equal(t, query.Text("swimming"), in.Filters["hobby"])
	assert.Equal(t, query.Bool(true), in.Filters["has_swimsuit"])
	assert.Equal(t, query.Range(10, 30), in.Filters["level"])
}

func TestBindListQuerySwapsInvertedRange(t *testing.T) {
	c := newListContext(t, "level=30,10")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})

	require.Contains(t, in.Filters, "level")
	assert.Equal(t, query.Range(10, 30), in.Filters["level"])
}

func TestBindListQueryIgnoresInvalidValues(t *testing.T) {
	c := newListContext(t, "has_swimsuit=maybe&level=abc,def&unknown=1")
	in := BindListQuery(c, testSpecs(), ListDefaults{PageSize: 20})

	assert.Empty(t, in.Filters)
}
