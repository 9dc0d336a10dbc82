package prefstore

import (
	"errors"
	"testing"
)

// loaderPrefs mirrors the nested shape of the real schema, including a
// renamed leaf whose legacy key appears literally inside its parent object.
type loaderPrefs struct {
	Network struct {
		Sniff  bool `json:"sniff"`
		Legacy bool `json:"network.legacy-mode"`
	} `json:"network"`
	Threads  int64  `json:"threads"`
	Homepage string `json:"homepage"`
}

func loaderBase() loaderPrefs {
	var p loaderPrefs
	p.Threads = 4 // default supplier
	return p
}

var loaderRequired = [][]string{
	{"network", "sniff"},
	{"network", "network.legacy-mode"},
	{"homepage"},
}

func TestLoadDefaults(t *testing.T) {
	doc := []byte(`{
		"network": {"sniff": true, "network.legacy-mode": false},
		"homepage": "https://example.com/"
	}`)

	p, err := LoadDefaults(doc, loaderBase(), loaderRequired)
	if err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
	if !p.Network.Sniff {
		t.Errorf("sniff = false, want true")
	}
	if p.Homepage != "https://example.com/" {
		t.Errorf("homepage = %q", p.Homepage)
	}
	// Absent key with a supplier keeps the supplier's value.
	if p.Threads != 4 {
		t.Errorf("threads = %d, want supplier default 4", p.Threads)
	}
}

func TestLoadDefaultsOverridesSupplier(t *testing.T) {
	doc := []byte(`{
		"network": {"sniff": false, "network.legacy-mode": true},
		"homepage": "h",
		"threads": 12
	}`)

	p, err := LoadDefaults(doc, loaderBase(), loaderRequired)
	if err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
	if p.Threads != 12 {
		t.Errorf("threads = %d, want 12 (present key wins over supplier)", p.Threads)
	}
	if !p.Network.Legacy {
		t.Errorf("renamed leaf not loaded")
	}
}

func TestLoadDefaultsMissingRequiredKey(t *testing.T) {
	doc := []byte(`{
		"network": {"sniff": true, "network.legacy-mode": false}
	}`)

	_, err := LoadDefaults(doc, loaderBase(), loaderRequired)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v, want ErrParse for missing required key", err)
	}
}

func TestLoadDefaultsWrongFieldType(t *testing.T) {
	doc := []byte(`{
		"network": {"sniff": "yes", "network.legacy-mode": false},
		"homepage": "h"
	}`)

	_, err := LoadDefaults(doc, loaderBase(), loaderRequired)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v, want ErrParse for uncoercible value", err)
	}
}

func TestLoadDefaultsMalformedDocument(t *testing.T) {
	_, err := LoadDefaults([]byte(`{"network": `), loaderBase(), loaderRequired)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v, want ErrParse for malformed text", err)
	}
}
