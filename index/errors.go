package index

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/rowindex/core"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid index configuration")

	// ErrFieldMismatch is matched by every *FieldMismatchError.
	ErrFieldMismatch = errors.New("record does not match index signature")

	// ErrDuplicateKey is matched by every *DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate key in unique index")
)

// ConfigurationError is returned by New when fields and type do not fit.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid index configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// FieldMismatchError is returned by Add when a record lacks an indexed field.
type FieldMismatchError struct {
	Signature string
	Missing   []string
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("record does not match index signature %q: missing %s",
		e.Signature, strings.Join(e.Missing, ", "))
}

func (e *FieldMismatchError) Unwrap() error { return ErrFieldMismatch }

// DuplicateKeyError is returned by Add on a unique index when a key is
// already taken.
type DuplicateKeyError struct {
	Key      string
	Existing core.Position
	Position core.Position
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q: position %d collides with position %d",
		e.Key, e.Position, e.Existing)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
