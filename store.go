// store.go
package prefstore

import (
	"fmt"
	"sort"
	"sync"
)

// Store owns exactly one instance of the schema value P behind a
// reader/writer guard, together with the accessor table for string-keyed
// access. All synchronization discipline lives here: any number of concurrent
// readers, or one exclusive writer, never both. Guards are held only for the
// duration of a single field read or assignment.
type Store[P any] struct {
	mu     sync.RWMutex
	value  P
	table  Table[P]
	logger Logger
}

// Entry is one (external key, value) pair of a bulk application.
type Entry struct {
	Key   string
	Value Value
}

// Option configures a Store instance.
type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger sets the Logger implementation used by the store. If not set,
// a default slog-backed logger writing to os.Stderr is used.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a store owning value, addressed dynamically through table.
// The table must not change after construction.
func New[P any](value P, table Table[P], opts ...Option) *Store[P] {
	o := &options{
		logger: NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Store[P]{
		value:  value,
		table:  table,
		logger: o.logger,
	}
}

// Read runs fn while holding the read guard. fn receives the live schema
// value and must not mutate it or retain the pointer past the call; clone
// the fields you need. This is the substrate for compile-time-checked reads:
// referencing a field that does not exist is a build error.
func (s *Store[P]) Read(fn func(*P)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.value)
}

// Write runs fn while holding the exclusive write guard. fn must not retain
// the pointer past the call. This is the substrate for compile-time-checked
// updates.
func (s *Store[P]) Write(fn func(*P)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.value)
}

// Snapshot returns a copy of the whole schema value taken under the read
// guard.
func (s *Store[P]) Snapshot() P {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Get returns a snapshot of the value stored under the external key. It
// fails with ErrNoSuchPref if the key is not in the accessor table.
func (s *Store[P]) Get(key string) (Value, error) {
	acc, ok := s.table.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchPref, key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return acc.Get(&s.value), nil
}

// Set stores value under the external key. A raw bool, integer, float or
// string is wrapped into the matching Value kind first. It fails with
// ErrNoSuchPref for an unknown key and ErrTypeMismatch when the value's kind
// does not match the field's declared type; on failure the stored value is
// left unmodified.
func (s *Store[P]) Set(key string, value any) error {
	acc, ok := s.table.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPref, key)
	}
	v, ok := FromAny(value)
	if !ok {
		return fmt.Errorf("%w: %q given unsupported value of type %T", ErrInvalidValue, key, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := acc.Set(&s.value, v); err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}
	return nil
}

// SetAll applies entries strictly in order, stopping at the first failure
// and returning that error. Entries applied before the failing one remain
// applied: bulk application is deliberately non-transactional. Callers that
// need all-or-nothing behavior must validate the whole document first, as
// ReadPrefsMap does.
func (s *Store[P]) SetAll(entries []Entry) error {
	for _, e := range entries {
		if err := s.Set(e.Key, e.Value); err != nil {
			s.logger.Warn("bulk preference apply stopped", "key", e.Key, "error", err)
			return err
		}
	}
	return nil
}

// SetAllMap applies every entry of m via SetAll in sorted key order, so
// repeated applications of the same document behave deterministically. The
// partial-application semantics of SetAll apply.
func (s *Store[P]) SetAllMap(m map[string]Value) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: m[k]}
	}
	return s.SetAll(entries)
}
