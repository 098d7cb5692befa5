package core

import "strconv"

// Kind tags the primitive shape of a prop value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindMap
	KindList
)

// Value is a tagged union over the primitive shapes a prop or style value
// can take. Unexpected shapes collapse to their string rendering so that
// downstream emitters always have a defined fallback.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	m    map[string]Value
	list []Value
}

func Null() Value                    { return Value{kind: KindNull} }
func StringValue(s string) Value     { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value    { return Value{kind: KindNumber, num: n} }
func BoolValue(b bool) Value         { return Value{kind: KindBool, b: b} }
func MapValue(m map[string]Value) Value  { return Value{kind: KindMap, m: m} }
func ListValue(list []Value) Value   { return Value{kind: KindList, list: list} }

// ValueOf converts a decoded JSON value into the tagged union. ojg's
// parser produces string, float64, int64, bool, nil, map[string]any and
// []any; anything else falls back to the empty string.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case float64:
		return NumberValue(t)
	case float32:
		return NumberValue(float64(t))
	case int:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, mv := range t {
			m[k] = ValueOf(mv)
		}
		return MapValue(m)
	case []any:
		list := make([]Value, 0, len(t))
		for _, lv := range t {
			list = append(list, ValueOf(lv))
		}
		return ListValue(list)
	default:
		return StringValue("")
	}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString renders scalar values as text. Maps, lists and null render as
// the empty string; callers that need structure use AsMap/AsList.
func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindString:
		if v.str == "true" {
			return true, true
		}
		if v.str == "false" {
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// ToAny rebuilds the plain-Go shape, for re-serialization.
func (v Value) ToAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindMap:
		m := make(map[string]any, len(v.m))
		for k, mv := range v.m {
			m[k] = mv.ToAny()
		}
		return m
	case KindList:
		list := make([]any, 0, len(v.list))
		for _, lv := range v.list {
			list = append(list, lv.ToAny())
		}
		return list
	default:
		return nil
	}
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Props is a heterogeneous string-keyed prop map.
type Props map[string]Value

func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// GetString returns the value rendered as text, or "" when absent.
func (p Props) GetString(key string) string {
	return p[key].AsString()
}

// StringOr returns the value rendered as text, or fallback when the key
// is absent or renders empty.
func (p Props) StringOr(key, fallback string) string {
	if s := p.GetString(key); s != "" {
		return s
	}
	return fallback
}

func (p Props) GetBool(key string) bool {
	b, ok := p[key].AsBool()
	return ok && b
}

func (p Props) GetFloat(key string) (float64, bool) {
	return p[key].AsFloat()
}
