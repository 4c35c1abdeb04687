package valueschema

import (
	"bytes"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindAbsent     Kind = iota // nil, NaN, or no input at all.
	KindBool                   // boolean
	KindNumber                 // finite or infinite float64 (never NaN)
	KindString                 // text
	KindStructured             // slices, maps and structs; opaque to validators
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStructured:
		return "structured"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the loosely-typed input accepted by a ValidationFn and the
// canonical output it produces. The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	raw  any
}

// Absent returns the absent Value.
func Absent() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64. NaN is treated as absent.
func Number(n float64) Value {
	if math.IsNaN(n) {
		return Value{}
	}
	return Value{kind: KindNumber, n: n}
}

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Of converts an arbitrary Go value into a Value.
//
// nil, nil pointers and NaN become absent. Every integer and float kind becomes
// a number, even when the named type has a String method (time.Month,
// time.Duration, enums). Other values with MarshalText or String, such as
// time.Time, become their text. json.Number becomes a number when it parses
// and a string otherwise. Remaining slices, arrays, maps and structs are kept
// as opaque structured values whose text form is their JSON encoding.
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case *Value:
		if t == nil {
			return Value{}
		}
		return *t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return String(string(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}
		}
		if !isScalarKind(rv.Elem().Kind()) {
			if tv, ok := textForm(v); ok {
				return tv
			}
		}
		return Of(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	}
	if tv, ok := textForm(v); ok {
		return tv
	}
	return Value{kind: KindStructured, raw: v}
}

// isScalarKind reports kinds that Of converts by kind, ignoring any String or
// MarshalText method of the named type.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// textForm converts a non-scalar value through its text methods, preferring
// MarshalText over String.
func textForm(v any) (Value, bool) {
	switch t := v.(type) {
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return Value{kind: KindStructured, raw: v}, true
		}
		return String(string(b)), true
	case fmt.Stringer:
		return String(t.String()), true
	}
	return Value{}, false
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v carries no usable input.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Bool returns the boolean held by v, or false for any other kind.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Float returns the number held by v, or 0 for any other kind.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// String renders v the way the validators see it. Numbers use the shortest
// decimal form that round-trips, without an exponent.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	case KindStructured:
		b, err := json.Marshal(v.raw)
		if err != nil {
			return fmt.Sprint(v.raw)
		}
		return string(b)
	default:
		return ""
	}
}

// Any unwraps v into a plain Go value: nil, bool, float64, string, or the
// original structured value.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindStructured:
		return v.raw
	default:
		return nil
	}
}

// MarshalJSON encodes the unwrapped value. Absent encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && math.IsInf(v.n, 0) {
		return json.Marshal(formatNumber(v.n))
	}
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes any JSON scalar or structure into a Value.
func (v *Value) UnmarshalJSON(b []byte) error {
	var x any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&x); err != nil {
		return err
	}
	*v = Of(x)
	return nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
