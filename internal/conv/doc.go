// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Turning row offsets (int) into 32-bit positions
//   - Accepting unsigned values from loosely typed input
package conv
