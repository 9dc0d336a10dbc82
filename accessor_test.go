package prefstore

import (
	"errors"
	"testing"
)

func TestTableLookup(t *testing.T) {
	table := testTable()

	if _, ok := table.Lookup("enabled"); !ok {
		t.Errorf("Lookup(enabled) failed")
	}
	if _, ok := table.Lookup("nope"); ok {
		t.Errorf("Lookup(nope) succeeded for unregistered key")
	}
	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
}

func TestFieldAccessorsGetSnapshot(t *testing.T) {
	p := testPrefs{RGBA: [4]float64{0, 0.25, 0.5, 1}}
	acc, _ := testTable().Lookup("test.bg-color.rgba")

	got := acc.Get(&p)
	want := Array{Float(0), Float(0.25), Float(0.5), Float(1)}
	if !Equal(got, want) {
		t.Fatalf("Get = %v, want %v", got, want)
	}

	// The returned array is a snapshot, not a live view.
	got.(Array)[0] = Float(9)
	if p.RGBA[0] != 0 {
		t.Errorf("mutating the snapshot changed the field")
	}
}

func TestFieldAccessorsRejectMismatchedKinds(t *testing.T) {
	table := testTable()
	var p testPrefs

	tests := []struct {
		key   string
		value Value
	}{
		{"enabled", Int(1)},
		{"threads", Str("8")},
		{"scale", Str("0.5")},
		{"scale", Bool(true)},
		{"homepage", Bool(false)},
		{"test.bg-color.rgba", Int(0xFFFFFF)},
	}

	for _, tt := range tests {
		acc, ok := table.Lookup(tt.key)
		if !ok {
			t.Fatalf("Lookup(%q) failed", tt.key)
		}
		if err := acc.Set(&p, tt.value); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Set(%q, %v) = %v, want ErrTypeMismatch", tt.key, tt.value, err)
		}
	}
}

func TestFloat4FieldLength(t *testing.T) {
	var p testPrefs
	acc, _ := testTable().Lookup("test.bg-color.rgba")

	if err := acc.Set(&p, Array{Float(1), Float(1), Float(1)}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("3-element array: got %v, want ErrTypeMismatch", err)
	}
	if err := acc.Set(&p, Array{Float(1), Float(1), Float(1), Float(1), Float(1)}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("5-element array: got %v, want ErrTypeMismatch", err)
	}
	if err := acc.Set(&p, Array{Int(0), Int(0), Int(0), Int(1)}); err != nil {
		t.Errorf("integer elements must widen: %v", err)
	}
	if p.RGBA != [4]float64{0, 0, 0, 1} {
		t.Errorf("RGBA = %v", p.RGBA)
	}
}
