package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/rowindex/core"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToPosition converts a row offset to a core.Position.
func IntToPosition(v int) (core.Position, error) {
	u, err := IntToUint32(v)
	if err != nil {
		return 0, err
	}
	return core.Position(u), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}
