package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindMissing marks an attribute that is absent from the input data.
	KindMissing Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindList
	// KindOther holds maps, structs and anything else without a dedicated variant.
	KindOther
)

var kindNames = [...]string{
	KindMissing: "missing",
	KindNull:    "null",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "bool",
	KindList:    "list",
	KindOther:   "other",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the tagged representation of one untyped input value.
// Rules inspect it by Kind instead of probing Go types at runtime.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Value
	raw  any
}

// Missing returns the Value of an attribute that is not present in the data.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Null returns the Value of an explicit nil.
func Null() Value {
	return Value{kind: KindNull}
}

// ValueOf classifies an arbitrary Go value.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return Value{kind: KindString, str: t, raw: v}
	case bool:
		return Value{kind: KindBool, b: t, raw: v}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{kind: KindString, str: t.String(), raw: v}
		}
		return Value{kind: KindNumber, num: f, raw: v}
	case []any:
		list := make([]Value, len(t))
		for i, item := range t {
			list[i] = ValueOf(item)
		}
		return Value{kind: KindList, list: list, raw: v}
	case []string:
		list := make([]Value, len(t))
		for i, item := range t {
			list[i] = Value{kind: KindString, str: item, raw: item}
		}
		return Value{kind: KindList, list: list, raw: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.String:
		return Value{kind: KindString, str: rv.String(), raw: v}
	case reflect.Bool:
		return Value{kind: KindBool, b: rv.Bool(), raw: v}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, num: float64(rv.Int()), raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindNumber, num: float64(rv.Uint()), raw: v}
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindNumber, num: rv.Float(), raw: v}
	case reflect.Slice:
		if rv.IsNil() {
			return Value{kind: KindList, raw: v}
		}
		fallthrough
	case reflect.Array:
		list := make([]Value, rv.Len())
		for i := range list {
			list[i] = ValueOf(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: list, raw: v}
	}

	return Value{kind: KindOther, raw: v}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the original Go value, or nil for Missing and Null.
func (v Value) Raw() any { return v.raw }

// IsMissing reports whether the attribute was absent from the data.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsEmpty reports whether the value counts as absent: missing, null,
// a whitespace-only string or an empty list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindMissing, KindNull:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	case KindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Number returns the numeric payload and whether the value is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Bool returns the boolean payload and whether the value is a bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// List returns the list elements and whether the value is a list.
func (v Value) List() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// decimalPattern is the accepted textual number grammar: optionally signed
// decimals with an exponent, or Infinity. Hex, underscores, "inf" and "NaN"
// are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|Infinity)$`)

// Float reads the value as a number, accepting decimal strings.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		s := strings.TrimSpace(v.str)
		if !decimalPattern.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Len returns the rune count of a string or the item count of a list.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindString:
		return utf8.RuneCountInString(v.str), true
	case KindList:
		return len(v.list), true
	default:
		return 0, false
	}
}

// Text renders the value as a string for pattern matching.
func (v Value) Text() string {
	switch v.kind {
	case KindMissing:
		return "undefined"
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			if item.kind == KindNull || item.kind == KindMissing {
				continue
			}
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(v.raw)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
