// loader.go
package prefstore

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// LoadDefaults deserializes a bundled defaults document into the schema type.
// base carries the supplier-populated defaults: keys absent from data keep
// their base value. required lists the structural paths of every leaf that
// has no supplier; a document missing any of them fails the load, as does a
// present key whose value cannot be coerced to its field's declared type.
// Callers treat a failed load of the bundled resource as fatal at process
// start.
func LoadDefaults[P any](data []byte, base P, required [][]string) (P, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, path := range required {
		if !pathPresent(raw, path) {
			return base, fmt.Errorf("%w: missing required key %q", ErrParse, strings.Join(path, "."))
		}
	}
	out := base
	if err := json.Unmarshal(data, &out); err != nil {
		return base, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return out, nil
}

// pathPresent walks the nested tree one member name at a time. Renamed
// members carry their full legacy key as a single segment.
func pathPresent(raw map[string]any, path []string) bool {
	node := any(raw)
	for _, seg := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return false
		}
		node, ok = m[seg]
		if !ok {
			return false
		}
	}
	return true
}
