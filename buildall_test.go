package rowindex_test

import (
	"context"
	"testing"

	"github.com/hupe1980/rowindex"
	"github.com/hupe1980/rowindex/index"
	"github.com/hupe1980/rowindex/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAll(t *testing.T) {
	rows := books(t)

	t.Run("one index per signature", func(t *testing.T) {
		metrics := &rowindex.BasicMetricsCollector{}
		indexes, err := rowindex.BuildAll(context.Background(), rows, []rowindex.Spec{
			{Fields: []string{"author"}},
			{Fields: []string{"author", "volumes"}},
			{Fields: []string{"volumes"}, Options: []rowindex.Option{rowindex.WithType(index.TypeNumber)}},
			{Fields: []string{"data"}, Options: []rowindex.Option{rowindex.WithType(index.TypeArray)}},
			{Fields: []string{"title"}, Options: []rowindex.Option{rowindex.WithType(index.TypeText)}},
		},
			rowindex.WithGrouped(),
			rowindex.WithBuildConcurrency(2),
			rowindex.WithMetricsCollector(metrics),
		)
		require.NoError(t, err)
		require.Len(t, indexes, 5)

		assert.Equal(t, []rowindex.Position{0, 1},
			indexes["title"].Lookup([]record.Record{{"title": record.String("the")}}))
		assert.Equal(t, []rowindex.Position{1, 2},
			indexes["volumes"].Lookup([]record.Record{{"volumes": record.Int(1)}}))
		assert.Equal(t, []rowindex.Position{0},
			indexes["author_volumes"].Lookup([]record.Record{{"author": record.String("Tolkien"), "volumes": record.Int(3)}}))

		for sig, ix := range indexes {
			assert.True(t, ix.Grouped(), sig)
		}
		assert.Equal(t, int64(5), metrics.GetStats().BuildCount)
	})

	t.Run("spec options override shared options", func(t *testing.T) {
		indexes, err := rowindex.BuildAll(context.Background(), rows, []rowindex.Spec{
			{Fields: []string{"author"}, Options: []rowindex.Option{rowindex.WithoutBuild()}},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, indexes["author"].Len())
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := rowindex.BuildAll(context.Background(), rows, []rowindex.Spec{
			{Fields: []string{"author"}},
			{Fields: []string{"volumes"}},
		})
		assert.ErrorIs(t, err, rowindex.ErrDuplicateKey)
	})

	t.Run("duplicate signature", func(t *testing.T) {
		_, err := rowindex.BuildAll(context.Background(), rows, []rowindex.Spec{
			{Fields: []string{"author"}},
			{Fields: []string{"author"}, Options: []rowindex.Option{rowindex.WithGrouped()}},
		})
		assert.ErrorIs(t, err, rowindex.ErrConfiguration)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rowindex.BuildAll(ctx, rows, []rowindex.Spec{{Fields: []string{"author"}}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no specs", func(t *testing.T) {
		indexes, err := rowindex.BuildAll(context.Background(), rows, nil)
		require.NoError(t, err)
		assert.Empty(t, indexes)
	})
}
