package query

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// FilterKind 过滤器字段类型
type FilterKind string

// 可识别的过滤器类型，超出此集合属于配置错误
const (
	KindText     FilterKind = "text"
	KindSelect   FilterKind = "select"
	KindNumber   FilterKind = "number"
	KindCheckbox FilterKind = "checkbox"
	KindRange    FilterKind = "range"
	KindDate     FilterKind = "date"
)

// Bound 数值类过滤器的约束方向。数值字段按命名约定单边约束：
// min_level 和 max_level 是两个独立的 FilterFieldSpec，不合并为区间。
type Bound string

const (
	BoundMin Bound = "min"
	BoundMax Bound = "max"
)

// FilterFieldSpec 声明式过滤器字段描述，不持有数据，
// 只描述查询时提供给 Key 的值如何解释。
type FilterFieldSpec struct {
	// Key FilterState 中的过滤键
	Key string `json:"key"`
	// Field 被约束的记录字段，为空时取 Key
	Field string `json:"field,omitempty"`
	// Kind 过滤器类型
	Kind FilterKind `json:"kind"`
	// Bound number/range/date 类型的约束方向，默认 min
	Bound Bound `json:"bound,omitempty"`
	// Search text 类型时委托多语言匹配器，而非单字段子串匹配
	Search bool `json:"search,omitempty"`
}

func (s FilterFieldSpec) field() string {
	if s.Field != "" {
		return s.Field
	}
	return s.Key
}

func (s FilterFieldSpec) validate() error {
	switch s.Kind {
	case KindText, KindSelect, KindNumber, KindCheckbox, KindRange, KindDate:
		return nil
	default:
		return configErrorf("unknown filter kind %q for key %q", s.Kind, s.Key)
	}
}

// ValueKind 过滤值的标签
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueText
	ValueNumber
	ValueBool
	ValueRange
)

// FilterValue 带标签的过滤值联合：Text | Number | Bool | Range。
// 取代源头松散的 any，让求值器可以按标签穷举。
type FilterValue struct {
	kind ValueKind
	text string
	num  float64
	flag bool
	lo   float64
	hi   float64
}

// Text 构造文本过滤值
func Text(s string) FilterValue { return FilterValue{kind: ValueText, text: s} }

// Number 构造数值过滤值
func Number(f float64) FilterValue { return FilterValue{kind: ValueNumber, num: f} }

// Bool 构造布尔过滤值
func Bool(b bool) FilterValue { return FilterValue{kind: ValueBool, flag: b} }

// Range 构造 [lo, hi] 区间过滤值
func Range(lo, hi float64) FilterValue { return FilterValue{kind: ValueRange, lo: lo, hi: hi} }

// Kind 返回值标签
func (v FilterValue) Kind() ValueKind { return v.kind }

// IsZero 判断是否为"无约束"：缺失值或空白文本
func (v FilterValue) IsZero() bool {
	switch v.kind {
	case ValueAbsent:
		return true
	case ValueText:
		return strings.TrimSpace(v.text) == ""
	}
	return false
}

// FilterState 过滤键到过滤值的映射。缺失或空值的条目视为无约束。
type FilterState map[string]FilterValue

// Evaluate 对单条记录应用全部过滤条件，逻辑 AND 合并。
// 无值（或空值）的字段不产生约束；未知的 Kind 返回 ConfigurationError。
// 不支持跨字段的 OR 或取反。
func Evaluate(rec Record, specs []FilterFieldSpec, state FilterState) (bool, error) {
	if err := validateSpecs(specs); err != nil {
		return false, err
	}
	return evaluate(rec, specs, state), nil
}

func validateSpecs(specs []FilterFieldSpec) error {
	for _, spec := range specs {
		if err := spec.validate(); err != nil {
			return err
		}
	}
	return nil
}

// evaluate 假定 specs 已通过校验，逐记录求值不再重复校验
func evaluate(rec Record, specs []FilterFieldSpec, state FilterState) bool {
	for _, spec := range specs {
		val, ok := state[spec.Key]
		if !ok || val.IsZero() {
			continue
		}
		if !evaluateField(rec, spec, val) {
			return false
		}
	}
	return true
}

func evaluateField(rec Record, spec FilterFieldSpec, val FilterValue) bool {
	switch spec.Kind {
	case KindText:
		return evaluateText(rec, spec, val)
	case KindSelect:
		return evaluateSelect(rec, spec, val)
	case KindNumber, KindRange, KindDate:
		return evaluateBound(rec, spec, val)
	case KindCheckbox:
		return evaluateCheckbox(rec, spec, val)
	}
	return true
}

func evaluateText(rec Record, spec FilterFieldSpec, val FilterValue) bool {
	q := strings.TrimSpace(cast.ToString(valueText(val)))
	if q == "" {
		return true
	}
	if spec.Search {
		return Matches(rec, q)
	}
	field := strings.ToLower(rec.StringField(spec.field()))
	return strings.Contains(field, strings.ToLower(q))
}

func evaluateSelect(rec Record, spec FilterFieldSpec, val FilterValue) bool {
	// 精确相等；字段缺失时为空串，必然不等于非空过滤值
	return rec.StringField(spec.field()) == cast.ToString(valueText(val))
}

func evaluateCheckbox(rec Record, spec FilterFieldSpec, val FilterValue) bool {
	// 刻意的不对称：true 要求记录谓词成立，false 不产生约束。
	// UI 从不提供"必须不具备 X"。
	if val.kind != ValueBool || !val.flag {
		return true
	}
	return cast.ToBool(rec.Field(spec.field()))
}

func evaluateBound(rec Record, spec FilterFieldSpec, val FilterValue) bool {
	rv, ok := comparableValue(rec.Field(spec.field()))
	if !ok {
		// 记录字段缺失或无法数值化时不让单条坏数据拖垮整页，
		// 数值约束按通过处理
		return true
	}

	switch val.kind {
	case ValueRange:
		return rv >= val.lo && rv <= val.hi
	case ValueNumber:
		if spec.Bound == BoundMax {
			return rv <= val.num
		}
		return rv >= val.num
	case ValueText:
		// 用户输入中途可能尚未构成合法数字，按无约束处理
		f, err := cast.ToFloat64E(strings.TrimSpace(val.text))
		if err != nil {
			return true
		}
		if spec.Bound == BoundMax {
			return rv <= f
		}
		return rv >= f
	}
	return true
}

// comparableValue 将记录字段转为可比较的数值表示。
// date 类字段接受 time.Time 或可解析的时间字符串，统一取 Unix 时间戳。
func comparableValue(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		return float64(t.Unix()), true
	case *time.Time:
		if t == nil {
			return 0, false
		}
		return float64(t.Unix()), true
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f, true
	}
	if ts, err := cast.ToTimeE(v); err == nil {
		return float64(ts.Unix()), true
	}
	return 0, false
}

func valueText(v FilterValue) string {
	switch v.kind {
	case ValueText:
		return v.text
	case ValueNumber:
		return cast.ToString(v.num)
	case ValueBool:
		return cast.ToString(v.flag)
	}
	return ""
}
