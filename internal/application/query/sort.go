package query

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction 排序方向
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec 排序配置。Key 支持点分路径做嵌套取值，
// 如 translations.en。
type SortSpec struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// 大小写不敏感的排序比较器。变音符号不在范围内，Loose 顺带忽略即可。
var collator = collate.New(language.Und, collate.Loose)

// Sort 按排序配置产生全序，返回新切片，不改动输入。
// 排序稳定：比较相等的记录保持输入相对顺序。多个页面专门用
// 派生数值键（如属性求和）让并列项维持插入顺序，依赖这一点。
// Key 路径缺失的记录取该类型最小值，升序时排最前而不是报错。
func Sort(records []Record, spec SortSpec) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	if spec.Key == "" {
		return out
	}

	desc := spec.Direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i].Field(spec.Key), out[j].Field(spec.Key))
		if desc {
			// 只翻转符号，不改变"相等"的判定
			c = -c
		}
		return c < 0
	})
	return out
}

// compareValues 类型感知比较：双字符串走大小写不敏感的排序规则，
// 双数值走数值差，混合类型回退到字符串化比较。
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	// 缺失值视为最小
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	as, aIsStr := stringValue(a)
	bs, bIsStr := stringValue(b)
	if aIsStr && bIsStr {
		return collator.CompareString(strings.ToLower(as), strings.ToLower(bs))
	}

	af, aIsNum := numericValue(a)
	bf, bIsNum := numericValue(b)
	if aIsNum && bIsNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}

	return collator.CompareString(
		strings.ToLower(cast.ToString(a)),
		strings.ToLower(cast.ToString(b)),
	)
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func numericValue(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToFloat64(v), true
	}
	return 0, false
}
