package bitmap

import (
	"slices"
	"testing"

	"github.com/hupe1980/rowindex/core"
	"github.com/stretchr/testify/assert"
)

func setOf(positions ...core.Position) *PositionSet {
	s := New()
	for _, p := range positions {
		s.Add(p)
	}
	return s
}

func TestPositionSet(t *testing.T) {
	t.Run("Add is idempotent", func(t *testing.T) {
		s := New()
		assert.Equal(t, 0, s.Cardinality())

		assert.True(t, s.CheckedAdd(3))
		assert.False(t, s.CheckedAdd(3))
		s.Add(3)

		assert.Equal(t, 1, s.Cardinality())
		assert.Equal(t, []core.Position{3}, s.ToSlice())
	})

	t.Run("Ascending iteration", func(t *testing.T) {
		s := setOf(9, 2, 7, 2)
		assert.Equal(t, []core.Position{2, 7, 9}, s.ToSlice())
		assert.Equal(t, []core.Position{2, 7, 9}, slices.Collect(s.All()))
	})

	t.Run("Early stop", func(t *testing.T) {
		s := setOf(1, 2, 3)
		var seen []core.Position
		for p := range s.All() {
			seen = append(seen, p)
			if p == 2 {
				break
			}
		}
		assert.Equal(t, []core.Position{1, 2}, seen)
	})

	t.Run("Empty set", func(t *testing.T) {
		s := New()
		assert.NotNil(t, s.ToSlice())
		assert.Empty(t, s.ToSlice())
	})

	t.Run("Max position", func(t *testing.T) {
		s := setOf(core.MaxPosition)
		assert.Equal(t, []core.Position{core.MaxPosition}, s.ToSlice())
	})
}
