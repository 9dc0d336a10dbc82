// overrides.go
package prefstore

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ReadPrefsMap parses an override document as a generic key/value JSON
// object whose top-level keys are external preference keys. Comments and
// trailing commas are tolerated (JSONC). Every value node must convert to a
// Value; a single unconvertible node (including an array with one bad
// element) aborts the whole parse, so nothing from a rejected document is
// ever applied.
func ReadPrefsMap(text []byte) (map[string]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(text)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return convertPrefsMap(raw)
}

// ReadPrefsMapYAML is ReadPrefsMap for a YAML override document. The same
// all-or-nothing conversion contract applies.
func ReadPrefsMapYAML(text []byte) (map[string]Value, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(text, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return convertPrefsMap(raw)
}

func convertPrefsMap(raw map[string]any) (map[string]Value, error) {
	prefs := make(map[string]Value, len(raw))
	for key, node := range raw {
		v, ok := FromAny(node)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, key, node)
		}
		prefs[key] = v
	}
	return prefs, nil
}
