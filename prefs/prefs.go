// prefs.go
package prefs

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/CreativeUnicorns/prefstore"
)

// The bundled defaults resource. Every leaf without a default supplier must
// be present here; see requiredPaths.
//
//go:embed prefs.json
var defaultsJSON []byte

var (
	defaultStore *prefstore.Store[Prefs]
	defaultOnce  sync.Once
)

// NewStore parses the bundled defaults resource into a fresh, independent
// store. Most callers want Default instead; NewStore exists for tests and
// for hosts embedding more than one engine instance.
func NewStore(opts ...prefstore.Option) (*prefstore.Store[Prefs], error) {
	base, err := prefstore.LoadDefaults(defaultsJSON, DefaultPrefs(), requiredPaths)
	if err != nil {
		return nil, err
	}
	return prefstore.New(base, Accessors, opts...), nil
}

// Default returns the process-wide preferences store, initialized on first
// use and alive for the process lifetime. A defaults resource that fails to
// parse is a packaging defect, not a runtime data problem: the process
// cannot run with an undefined configuration, so Default panics with a
// diagnostic rather than returning an error.
func Default() *prefstore.Store[Prefs] {
	defaultOnce.Do(func() {
		s, err := NewStore()
		if err != nil {
			panic(fmt.Sprintf("prefs: failed to initialize default preferences: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// Pref reads one value from the default store using its static path. The
// path is checked at compile time: referencing a field that does not exist
// in the schema is a build error, never a runtime one.
//
//	homepage := prefs.Pref(func(p *prefs.Prefs) string { return p.Shell.Homepage })
func Pref[T any](get func(*Prefs) T) T {
	var out T
	Default().Read(func(p *Prefs) { out = get(p) })
	return out
}

// SetPref updates the default store in place using static paths, under the
// exclusive write guard.
//
//	prefs.SetPref(func(p *prefs.Prefs) { p.Shell.Homepage = "https://example.net/" })
func SetPref(update func(*Prefs)) {
	Default().Write(update)
}

// Get reads the preference stored under the external key. The key may
// differ from the static path because legacy keys contain hyphens, or
// because a preference has been renamed.
func Get(key string) (prefstore.Value, error) {
	return Default().Get(key)
}

// Set stores value under the external key. value may be a prefstore.Value
// or a raw bool, integer, float or string that converts into one.
func Set(key string, value any) error {
	return Default().Set(key, value)
}

// AddUserPrefs applies a parsed override mapping to the default store in
// sorted key order, stopping at the first failing entry. Earlier entries
// remain applied; validate the whole document with prefstore.ReadPrefsMap
// before calling if all-or-nothing behavior is required.
func AddUserPrefs(m map[string]prefstore.Value) error {
	return Default().SetAllMap(m)
}
