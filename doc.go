// Package prefstore provides a dual-access, concurrent-safe configuration store.
//
// One nested settings value is shared by two access modes: compile-time-checked
// field access through scoped read/write guards, and string-keyed access
// through a typed accessor table built against the schema type. Defaults are
// loaded from a bundled JSON resource; runtime overrides arrive as JSON, JSONC
// or YAML documents keyed by external preference names.
package prefstore
