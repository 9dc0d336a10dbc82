// errors.go
package prefstore

import "errors"

var (
	ErrParse        = errors.New("malformed preferences document")
	ErrInvalidValue = errors.New("invalid preference value")
	ErrNoSuchPref   = errors.New("no such preference")
	ErrTypeMismatch = errors.New("preference type mismatch")
)
