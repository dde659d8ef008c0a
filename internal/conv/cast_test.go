package conv

import (
	"math"
	"testing"

	"github.com/hupe1980/rowindex/core"
	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})
}

func TestIntToPosition(t *testing.T) {
	got, err := IntToPosition(42)
	assert.NoError(t, err)
	assert.Equal(t, core.Position(42), got)

	_, err = IntToPosition(-7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestUint64ToInt64(t *testing.T) {
	got, err := Uint64ToInt64(math.MaxInt64)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = Uint64ToInt64(math.MaxInt64 + 1)
	assert.Error(t, err)
}
