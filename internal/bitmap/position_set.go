package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rowindex/core"
)

// PositionSet is a set of row positions backed by a 32-bit Roaring Bitmap.
type PositionSet struct {
	rb *roaring.Bitmap
}

// New creates a new empty position set.
func New() *PositionSet {
	return &PositionSet{
		rb: roaring.New(),
	}
}

// Add adds a position to the set. Adding an existing position is a no-op.
func (s *PositionSet) Add(p core.Position) {
	s.rb.Add(uint32(p))
}

// CheckedAdd adds a position and reports whether it was not already present.
func (s *PositionSet) CheckedAdd(p core.Position) bool {
	return s.rb.CheckedAdd(uint32(p))
}

// Cardinality returns the number of positions in the set.
func (s *PositionSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// All iterates positions in ascending order.
func (s *PositionSet) All() iter.Seq[core.Position] {
	return func(yield func(core.Position) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.Position(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the positions in ascending order.
func (s *PositionSet) ToSlice() []core.Position {
	out := make([]core.Position, 0, s.rb.GetCardinality())
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}
