package prefstore

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		name string
		node any
		want Value
	}{
		{"bool_true", true, Bool(true)},
		{"bool_false", false, Bool(false)},
		{"int", 42, Int(42)},
		{"int64", int64(-7), Int(-7)},
		{"float64", 1.5, Float(1.5)},
		{"float32", float32(0.5), Float(0.5)},
		{"string", "homepage", Str("homepage")},
		{"json_number_int", json.Number("12"), Int(12)},
		{"json_number_float", json.Number("12.25"), Float(12.25)},
		{"value_passthrough", Str("already"), Str("already")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromAny(tt.node)
			if !ok {
				t.Fatalf("FromAny(%v) failed, want %v", tt.node, tt.want)
			}
			if !Equal(got, tt.want) {
				t.Errorf("FromAny(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestFromAnyRejectsOtherShapes(t *testing.T) {
	tests := []struct {
		name string
		node any
	}{
		{"nil", nil},
		{"object", map[string]any{"nested": true}},
		{"array_with_object", []any{true, map[string]any{"bad": 1}}},
		{"array_with_nil", []any{"ok", nil}},
		{"bad_number", json.Number("not-a-number")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := FromAny(tt.node); ok {
				t.Errorf("FromAny(%v) = %v, want failure", tt.node, v)
			}
		})
	}
}

func TestFromAnyArrayAllOrNothing(t *testing.T) {
	got, ok := FromAny([]any{json.Number("1"), json.Number("0.5"), "s", true})
	if !ok {
		t.Fatalf("FromAny failed for convertible array")
	}
	want := Array{Int(1), Float(0.5), Str("s"), Bool(true)}
	if !Equal(got, want) {
		t.Errorf("FromAny array = %v, want %v", got, want)
	}

	if v, ok := FromAny([]any{json.Number("1"), map[string]any{}}); ok {
		t.Errorf("FromAny with unconvertible element = %v, want failure", v)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []Value{
		Bool(true),
		Bool(false),
		Int(0),
		Int(-123456),
		Float(3.25),
		Str(""),
		Str("with spaces and \"quotes\""),
		Array{Float(0), Float(0.5), Float(1), Int(1)},
	}

	for _, v := range values {
		got, ok := FromAny(ToAny(v))
		if !ok {
			t.Fatalf("FromAny(ToAny(%v)) failed", v)
		}
		if !Equal(got, v) {
			t.Errorf("round trip changed %v into %v", v, got)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same_bool", Bool(true), Bool(true), true},
		{"diff_bool", Bool(true), Bool(false), false},
		{"int_vs_float", Int(1), Float(1), false},
		{"same_array", Array{Int(1), Str("a")}, Array{Int(1), Str("a")}, true},
		{"diff_array_len", Array{Int(1)}, Array{Int(1), Int(2)}, false},
		{"array_vs_scalar", Array{Int(1)}, Int(1), false},
		{"scalar_vs_array", Int(1), Array{Int(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Bool(true), "boolean"},
		{Int(1), "integer"},
		{Float(1), "float"},
		{Str("s"), "string"},
		{Array{}, "array"},
	}

	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}
