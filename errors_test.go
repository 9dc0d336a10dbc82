package prefstore

import (
	"testing"
)

func TestErrorVariables(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrParse", ErrParse, "malformed preferences document"},
		{"ErrInvalidValue", ErrInvalidValue, "invalid preference value"},
		{"ErrNoSuchPref", ErrNoSuchPref, "no such preference"},
		{"ErrTypeMismatch", ErrTypeMismatch, "preference type mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message '%s', got '%s'", tt.expected, tt.err.Error())
			}
		})
	}
}
