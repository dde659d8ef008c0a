package testutil

import (
	"testing"

	"github.com/hupe1980/rowindex/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooks(t *testing.T) {
	rows := Books()
	require.Len(t, rows, 3)
	assert.Equal(t, record.String("Asimov"), rows[2]["author"])

	rows[0]["author"] = record.String("changed")
	assert.Equal(t, record.String("Tolkien"), Books()[0]["author"])

	decoded, err := record.DecodeJSON(nil, []byte(BooksJSON))
	require.NoError(t, err)
	assert.Len(t, decoded, 3)
}

func TestRecords(t *testing.T) {
	rng := NewRNG(42)
	rows := rng.Records(50)
	require.Len(t, rows, 50)

	for i, r := range rows {
		id, ok := r["id"].AsInt64()
		require.True(t, ok)
		assert.Equal(t, int64(i), id)
		assert.True(t, r.Has("title"))
		assert.True(t, r.Has("data"))
		assert.True(t, r.Has("volumes"))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Records(10)
	rng.Reset()
	second := rng.Records(10)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(7), rng.Seed())
	assert.Less(t, rng.Intn(3), 3)
}
