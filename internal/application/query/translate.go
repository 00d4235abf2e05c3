package query

import (
	"strings"

	"github.com/spf13/cast"
)

// LocaleView 语言代码到最佳展示名的映射，由 Augment 派生。
// 只要记录上任意一个语言字段非空，每个语言都映射到非空字符串。
type LocaleView map[string]string

// Augment 为记录补全翻译视图，返回带 translations 键的新记录。
// 每个语言的解析顺序固定：本语言字段 -> en 字段 -> 枚举顺序中第一个
// 非空字段 -> "Unknown"。调用方依赖 en 作为通用回退，顺序不可更改。
// 函数纯且全：字段缺失不报错，只做兜底替换。
func Augment(rec Record) Record {
	out := rec.Clone()
	out[TranslationsKey] = resolveView(rec)
	return out
}

// AugmentAll 批量补全翻译视图
func AugmentAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = Augment(rec)
	}
	return out
}

// Translations 取记录的翻译视图，未补全时现场计算
func Translations(rec Record) LocaleView {
	switch v := rec[TranslationsKey].(type) {
	case LocaleView:
		return v
	case map[string]string:
		return v
	}
	return resolveView(rec)
}

func resolveView(rec Record) LocaleView {
	view := make(LocaleView, len(Locales))
	for _, locale := range Locales {
		view[locale] = resolveName(rec, locale)
	}
	return view
}

func resolveName(rec Record, locale string) string {
	if name := localeName(rec, locale); name != "" {
		return name
	}
	if name := localeName(rec, "en"); name != "" {
		return name
	}
	for _, l := range Locales {
		if name := localeName(rec, l); name != "" {
			return name
		}
	}
	return UnknownName
}

func localeName(rec Record, locale string) string {
	return strings.TrimSpace(cast.ToString(rec[NameFieldPrefix+locale]))
}
