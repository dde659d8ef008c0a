package rowindex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rowindex/index"
)

var (
	// ErrConfiguration is returned when fields and index type do not fit.
	ErrConfiguration = index.ErrConfiguration

	// ErrFieldMismatch is returned by Add when a record lacks an indexed field.
	ErrFieldMismatch = index.ErrFieldMismatch

	// ErrDuplicateKey is returned by Add when a unique index key is taken.
	ErrDuplicateKey = index.ErrDuplicateKey

	// ErrInvalidRows is returned when loosely typed rows cannot be converted
	// into records.
	ErrInvalidRows = errors.New("invalid rows")
)

type (
	// ConfigurationError carries the reason a configuration was rejected.
	ConfigurationError = index.ConfigurationError

	// FieldMismatchError lists the indexed fields a record lacks.
	FieldMismatchError = index.FieldMismatchError

	// DuplicateKeyError names the colliding key and positions.
	DuplicateKeyError = index.DuplicateKeyError
)

// translateError classifies errors that do not come from the index core.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, index.ErrConfiguration) ||
		errors.Is(err, index.ErrFieldMismatch) ||
		errors.Is(err, index.ErrDuplicateKey) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidRows, err)
}
