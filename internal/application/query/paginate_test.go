package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{"name_en": fmt.Sprintf("R%03d", i), "idx": i}
	}
	return out
}

func TestPaginateBasic(t *testing.T) {
	records := makeRecords(25)

	page, err := Paginate(records, 2, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 10, page.Items[0]["idx"])
	assert.Equal(t, PageMetadata{
		Page: 2, Limit: 10, Total: 25, TotalPages: 3,
		HasNext: true, HasPrev: true,
	}, page.Metadata)
}

func TestPaginateLastPartialPage(t *testing.T) {
	page, err := Paginate(makeRecords(25), 3, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.False(t, page.Metadata.HasNext)
	assert.True(t, page.Metadata.HasPrev)
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	records := makeRecords(25)

	// page < 1 钳制到 1
	page, err := Paginate(records, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Metadata.Page)
	assert.Equal(t, 0, page.Items[0]["idx"])

	page, err = Paginate(records, -3, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Metadata.Page)

	// 超过末页钳制到末页
	page, err = Paginate(records, 99, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Metadata.Page)
	assert.Len(t, page.Items, 5)
}

func TestPaginateEmptyCollectionYieldsOneEmptyPage(t *testing.T) {
	page, err := Paginate(nil, 5, 8)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, PageMetadata{
		Page: 1, Limit: 8, Total: 0, TotalPages: 1,
		HasNext: false, HasPrev: false,
	}, page.Metadata)
}

func TestPaginateInvalidLimitIsConfigurationError(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := Paginate(makeRecords(3), 1, limit)
		require.Error(t, err, "limit %d", limit)
		assert.True(t, IsConfigurationError(err))
	}
}

func TestPaginateBoundProperty(t *testing.T) {
	// 任意 page/limit 组合下单页条数不超过 limit
	records := makeRecords(17)
	for limit := 1; limit <= 20; limit++ {
		for page := -1; page <= 20; page++ {
			out, err := Paginate(records, page, limit)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(out.Items), limit)
		}
	}
}

func TestPaginateCoverageProperty(t *testing.T) {
	// 遍历 1..totalPages 拼接所有页，恰好重建原集合，无重复无遗漏
	records := makeRecords(23)
	limit := 7

	first, err := Paginate(records, 1, limit)
	require.NoError(t, err)

	var all []Record
	for p := 1; p <= first.Metadata.TotalPages; p++ {
		page, err := Paginate(records, p, limit)
		require.NoError(t, err)
		all = append(all, page.Items...)
	}

	require.Len(t, all, len(records))
	for i, rec := range all {
		assert.Equal(t, i, rec["idx"])
	}
}
