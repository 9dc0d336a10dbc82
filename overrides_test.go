package prefstore

import (
	"errors"
	"testing"
)

func TestReadPrefsMap(t *testing.T) {
	doc := []byte(`{
		"enabled": true,
		"threads": 8,
		"scale": 0.5,
		"homepage": "https://example.net/",
		"test.bg-color.rgba": [0.0, 0.0, 0.0, 1.0]
	}`)

	m, err := ReadPrefsMap(doc)
	if err != nil {
		t.Fatalf("ReadPrefsMap failed: %v", err)
	}
	if len(m) != 5 {
		t.Fatalf("got %d entries, want 5", len(m))
	}

	want := map[string]Value{
		"enabled":            Bool(true),
		"threads":            Int(8),
		"scale":              Float(0.5),
		"homepage":           Str("https://example.net/"),
		"test.bg-color.rgba": Array{Float(0), Float(0), Float(0), Float(1)},
	}
	for k, w := range want {
		if !Equal(m[k], w) {
			t.Errorf("%q = %v, want %v", k, m[k], w)
		}
	}
}

func TestReadPrefsMapToleratesComments(t *testing.T) {
	doc := []byte(`{
		// user overrides
		"enabled": true, /* inline */
		"threads": 8,
	}`)

	m, err := ReadPrefsMap(doc)
	if err != nil {
		t.Fatalf("ReadPrefsMap failed on JSONC: %v", err)
	}
	if !Equal(m["enabled"], Bool(true)) || !Equal(m["threads"], Int(8)) {
		t.Errorf("JSONC entries not parsed: %v", m)
	}
}

func TestReadPrefsMapRejectsWholeDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"nested_object_value", `{"a": true, "b": {"nested": 1}}`, ErrInvalidValue},
		{"null_value", `{"a": null}`, ErrInvalidValue},
		{"array_with_object_element", `{"a": [1, {"bad": true}]}`, ErrInvalidValue},
		{"malformed", `{"a": `, ErrParse},
		{"not_an_object", `[1, 2]`, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ReadPrefsMap([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Errorf("rejected document returned entries: %v", m)
			}
		})
	}
}

func TestReadPrefsMapYAML(t *testing.T) {
	doc := []byte(`
enabled: true
threads: 8
scale: 0.5
homepage: "https://example.net/"
test.bg-color.rgba: [0.0, 0.0, 0.0, 1.0]
`)

	m, err := ReadPrefsMapYAML(doc)
	if err != nil {
		t.Fatalf("ReadPrefsMapYAML failed: %v", err)
	}

	want := map[string]Value{
		"enabled":            Bool(true),
		"threads":            Int(8),
		"scale":              Float(0.5),
		"homepage":           Str("https://example.net/"),
		"test.bg-color.rgba": Array{Float(0), Float(0), Float(0), Float(1)},
	}
	for k, w := range want {
		if !Equal(m[k], w) {
			t.Errorf("%q = %v, want %v", k, m[k], w)
		}
	}
}

func TestReadPrefsMapYAMLRejectsNestedValues(t *testing.T) {
	doc := []byte(`
a: true
b:
  nested: 1
`)

	_, err := ReadPrefsMapYAML(doc)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("got %v, want ErrInvalidValue", err)
	}
}

func TestParsedOverridesApplyToStore(t *testing.T) {
	s := newTestStore()

	doc := []byte(`{"enabled": true, "threads": 6}`)
	m, err := ReadPrefsMap(doc)
	if err != nil {
		t.Fatalf("ReadPrefsMap failed: %v", err)
	}
	if err := s.SetAllMap(m); err != nil {
		t.Fatalf("SetAllMap failed: %v", err)
	}
	if v, _ := s.Get("enabled"); !Equal(v, Bool(true)) {
		t.Errorf("enabled = %v", v)
	}
	if v, _ := s.Get("threads"); !Equal(v, Int(6)) {
		t.Errorf("threads = %v", v)
	}
}
