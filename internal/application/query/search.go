package query

import (
	"strings"
)

// Matches 判断自由文本查询是否命中记录的任意语言展示名。
// 匹配基于翻译视图而非原始字段，因此回退出来的名称同样可被搜索。
// 空白查询视为无约束，恒为真。只做小写后的子串匹配，不做分词、
// 模糊匹配或 Unicode 规范化。
func Matches(rec Record, q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, name := range Translations(rec) {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}
