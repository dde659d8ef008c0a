package core

// Position identifies a row by its offset in the caller's record sequence.
// It is strictly 32-bit so position sets can be held in roaring bitmaps.
type Position uint32

// MaxPosition is the largest representable Position.
const MaxPosition = ^Position(0)
