// value.go
package prefstore

import (
	json "github.com/goccy/go-json"
)

// Value is a preference value of one of the closed set of shapes: Bool, Int,
// Float, Str or Array. No other type implements it.
type Value interface {
	// Kind names the value's shape for diagnostics.
	Kind() string
	prefValue()
}

// Bool is a boolean preference value.
type Bool bool

// Int is a signed integer preference value.
type Int int64

// Float is a floating point preference value.
type Float float64

// Str is a string preference value.
type Str string

// Array is an ordered sequence of preference values. In practice elements are
// scalar kinds (e.g. the four components of an RGBA color).
type Array []Value

func (Bool) prefValue()  {}
func (Int) prefValue()   {}
func (Float) prefValue() {}
func (Str) prefValue()   {}
func (Array) prefValue() {}

// Kind implements Value.
func (Bool) Kind() string { return "boolean" }

// Kind implements Value.
func (Int) Kind() string { return "integer" }

// Kind implements Value.
func (Float) Kind() string { return "float" }

// Kind implements Value.
func (Str) Kind() string { return "string" }

// Kind implements Value.
func (Array) Kind() string { return "array" }

// FromAny converts a generic parsed node into a Value. Booleans, numbers and
// strings convert totally; JSON numbers (json.Number) keep their integer or
// float identity. An array converts only if every element converts: there are
// no partial arrays. Objects, nulls and any other shape report false.
func FromAny(node any) (Value, bool) {
	switch v := node.(type) {
	case Value:
		return v, true
	case bool:
		return Bool(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), true
		}
		if f, err := v.Float64(); err == nil {
			return Float(f), true
		}
		return nil, false
	case int:
		return Int(v), true
	case int32:
		return Int(v), true
	case int64:
		return Int(v), true
	case float32:
		return Float(v), true
	case float64:
		return Float(v), true
	case string:
		return Str(v), true
	case []any:
		arr := make(Array, 0, len(v))
		for _, elem := range v {
			ev, ok := FromAny(elem)
			if !ok {
				return nil, false
			}
			arr = append(arr, ev)
		}
		return arr, true
	default:
		return nil, false
	}
}

// ToAny converts a Value back into the generic tree representation produced
// by the parsers, inverting FromAny.
func ToAny(v Value) any {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case Str:
		return string(v)
	case Array:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = ToAny(elem)
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values are structurally equal.
func Equal(a, b Value) bool {
	if av, ok := a.(Array); ok {
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	if _, ok := b.(Array); ok {
		return false
	}
	return a == b
}
