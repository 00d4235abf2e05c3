// Package query 提供目录列表页共用的内存数据查询引擎：
// 翻译补全 -> 过滤 -> 排序 -> 分页，每一步都是纯函数变换。
package query

import (
	"strings"

	"github.com/spf13/cast"
)

// Record 一条目录记录，字段名到值的映射。
// 引擎从不修改输入记录，只派生新的视图。
type Record map[string]any

// Locales 固定的语言集合，枚举顺序即回退顺序。
// 新增语言需要同步调整回退链，不走数据驱动。
var Locales = []string{"jp", "en", "cn", "tw", "kr"}

const (
	// NameFieldPrefix 各语言名称字段前缀，如 name_jp
	NameFieldPrefix = "name_"
	// TranslationsKey 翻译视图在记录中的键
	TranslationsKey = "translations"
	// UnknownName 所有语言字段均为空时的兜底展示名
	UnknownName = "Unknown"
)

// Clone 浅拷贝记录
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Field 按点分路径解析字段值，路径缺失返回 nil
func (r Record) Field(path string) any {
	if path == "" {
		return nil
	}
	var cur any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case Record:
			cur = m[part]
		case map[string]any:
			cur = m[part]
		case LocaleView:
			cur = m[part]
		case map[string]string:
			cur = m[part]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// StringField 取字段的字符串值，缺失或非字符串返回空串
func (r Record) StringField(path string) string {
	return cast.ToString(r.Field(path))
}
