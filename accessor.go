// accessor.go
package prefstore

import "fmt"

// Accessor is a pair of typed functions addressing one leaf field of the
// schema type P. Get snapshots the field as a Value; Set writes a Value into
// the field, rejecting any value whose kind does not match the field's
// declared type.
type Accessor[P any] struct {
	Get func(*P) Value
	Set func(*P, Value) error
}

// Table maps external preference keys to their accessors. It is built once
// against the generated schema and never changes afterwards. Tables are
// written as map literals, so a duplicate external key fails the build.
type Table[P any] map[string]Accessor[P]

// Lookup returns the accessor for key, if registered.
func (t Table[P]) Lookup(key string) (Accessor[P], bool) {
	acc, ok := t[key]
	return acc, ok
}

// Len returns the number of registered external keys.
func (t Table[P]) Len() int { return len(t) }

// BoolField builds the accessor for a boolean leaf field.
func BoolField[P any](field func(*P) *bool) Accessor[P] {
	return Accessor[P]{
		Get: func(p *P) Value { return Bool(*field(p)) },
		Set: func(p *P, v Value) error {
			b, ok := v.(Bool)
			if !ok {
				return fmt.Errorf("%w: want boolean, got %s", ErrTypeMismatch, v.Kind())
			}
			*field(p) = bool(b)
			return nil
		},
	}
}

// IntField builds the accessor for a signed integer leaf field.
func IntField[P any](field func(*P) *int64) Accessor[P] {
	return Accessor[P]{
		Get: func(p *P) Value { return Int(*field(p)) },
		Set: func(p *P, v Value) error {
			i, ok := v.(Int)
			if !ok {
				return fmt.Errorf("%w: want integer, got %s", ErrTypeMismatch, v.Kind())
			}
			*field(p) = int64(i)
			return nil
		},
	}
}

// FloatField builds the accessor for a floating point leaf field. Integer
// values widen to float64, matching how numeric literals parse.
func FloatField[P any](field func(*P) *float64) Accessor[P] {
	return Accessor[P]{
		Get: func(p *P) Value { return Float(*field(p)) },
		Set: func(p *P, v Value) error {
			f, ok := asFloat(v)
			if !ok {
				return fmt.Errorf("%w: want float, got %s", ErrTypeMismatch, v.Kind())
			}
			*field(p) = f
			return nil
		},
	}
}

// StringField builds the accessor for a string leaf field.
func StringField[P any](field func(*P) *string) Accessor[P] {
	return Accessor[P]{
		Get: func(p *P) Value { return Str(*field(p)) },
		Set: func(p *P, v Value) error {
			s, ok := v.(Str)
			if !ok {
				return fmt.Errorf("%w: want string, got %s", ErrTypeMismatch, v.Kind())
			}
			*field(p) = string(s)
			return nil
		},
	}
}

// Float4Field builds the accessor for a fixed four-element float array leaf
// field (e.g. an RGBA color). Setting requires an array of exactly four
// numeric elements; integers widen to float64.
func Float4Field[P any](field func(*P) *[4]float64) Accessor[P] {
	return Accessor[P]{
		Get: func(p *P) Value {
			arr := field(p)
			out := make(Array, len(arr))
			for i, f := range arr {
				out[i] = Float(f)
			}
			return out
		},
		Set: func(p *P, v Value) error {
			arr, ok := v.(Array)
			if !ok {
				return fmt.Errorf("%w: want array of 4 floats, got %s", ErrTypeMismatch, v.Kind())
			}
			if len(arr) != 4 {
				return fmt.Errorf("%w: want array of 4 floats, got %d elements", ErrTypeMismatch, len(arr))
			}
			var out [4]float64
			for i, elem := range arr {
				f, ok := asFloat(elem)
				if !ok {
					return fmt.Errorf("%w: want array of 4 floats, element %d is %s", ErrTypeMismatch, i, elem.Kind())
				}
				out[i] = f
			}
			*field(p) = out
			return nil
		},
	}
}

func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Float:
		return float64(v), true
	case Int:
		return float64(v), true
	default:
		return 0, false
	}
}
