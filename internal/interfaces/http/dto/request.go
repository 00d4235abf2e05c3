// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"venus-catalog-api/internal/application/query"
)

// ListDefaults 列表查询的分页默认值
type ListDefaults struct {
	PageSize    int
	MaxPageSize int
}

// BindListQuery 把 URL 查询参数绑定为查询引擎输入。
// 过滤参数按过滤器声明逐键提取，不合法的值直接忽略而不是报错，
// 保证输入中途的半成品状态不打断列表页。
func BindListQuery(c *gin.Context, specs []query.FilterFieldSpec, defaults ListDefaults) query.Input {
	page := parseIntWithDefault(c.Query("page"), 1)
	limit := parseIntWithDefault(c.Query("limit"), defaults.PageSize)
	if limit < 1 {
		limit = defaults.PageSize
	}
	if defaults.MaxPageSize > 0 && limit > defaults.MaxPageSize {
		limit = defaults.MaxPageSize
	}

	in := query.Input{
		Search:  c.Query("search"),
		Filters: bindFilters(c, specs),
		Sort:    bindSort(c),
		Page:    page,
		Limit:   limit,
	}
	return in
}

func bindSort(c *gin.Context) query.SortSpec {
	key := strings.TrimSpace(c.Query("sort"))
	if key == "" {
		return query.SortSpec{}
	}

	direction := query.Asc
	if strings.HasPrefix(key, "-") {
		key = strings.TrimPrefix(key, "-")
		direction = query.Desc
	}
	if strings.EqualFold(c.Query("order"), "desc") {
		direction = query.Desc
	}
	return query.SortSpec{Key: key, Direction: direction}
}

func bindFilters(c *gin.Context, specs []query.FilterFieldSpec) query.FilterState {
	state := query.FilterState{}
	for _, spec := range specs {
		raw, ok := c.GetQuery(spec.Key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		switch spec.Kind {
		case query.KindCheckbox:
			if b, err := cast.ToBoolE(raw); err == nil {
				state[spec.Key] = query.Bool(b)
			}
		case query.KindRange:
			if lo, hi, ok := parseRange(raw); ok {
				state[spec.Key] = query.Range(lo, hi)
			}
		default:
			state[spec.Key] = query.Text(raw)
		}
	}
	return state
}

// parseRange 解析 "lo,hi" 形式的区间参数
func parseRange(raw string) (float64, float64, bool) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// parseIntWithDefault 解析整数，失败时返回默认值
func parseIntWithDefault(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := cast.ToIntE(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// BindCharacterID 从 URI 绑定角色 ID。
// gin 要求同一段的参数名一致，嵌套路由里角色 ID 也叫 :id。
func BindCharacterID(c *gin.Context) string {
	return c.Param("id")
}

// BindID 从 URI 绑定资源 ID
func BindID(c *gin.Context) string {
	return c.Param("id")
}
