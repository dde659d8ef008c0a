package rowindex

import (
	"context"
	"time"

	"github.com/hupe1980/rowindex/core"
	"github.com/hupe1980/rowindex/index"
	"github.com/hupe1980/rowindex/record"
)

// Position identifies a row by its offset in the indexed sequence.
type Position = core.Position

// Index is an instrumented index.Index.
//
// It reports builds, adds and lookups to the configured Logger and
// MetricsCollector. Concurrency rules are those of index.Index: Add must be
// serialized, lookups may run concurrently once writes have stopped.
type Index struct {
	ix      *index.Index
	logger  *Logger
	metrics MetricsCollector
}

// New creates an index over fields of rows and, unless WithoutBuild is
// given, adds every non-nil row at its offset.
func New(rows []record.Record, fields []string, optFns ...Option) (*Index, error) {
	return newIndex(context.Background(), rows, fields, applyOptions(optFns))
}

// NewFromAny is New for loosely typed rows.
func NewFromAny(rows []map[string]any, fields []string, optFns ...Option) (*Index, error) {
	recs, err := record.RecordsFromAny(rows)
	if err != nil {
		return nil, translateError(err)
	}
	return New(recs, fields, optFns...)
}

// NewFromJSON is New for a JSON array of objects, decoded with the
// configured codec.
func NewFromJSON(data []byte, fields []string, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)
	recs, err := record.DecodeJSON(o.codec, data)
	if err != nil {
		return nil, translateError(err)
	}
	return newIndex(context.Background(), recs, fields, o)
}

func newIndex(ctx context.Context, rows []record.Record, fields []string, o options) (*Index, error) {
	start := time.Now()
	ix, err := index.New(rows, fields, o.config)
	o.metricsCollector.RecordBuild(len(rows), time.Since(start), err)
	if err != nil {
		o.logger.LogBuild(ctx, len(rows), 0, err)
		return nil, translateError(err)
	}

	logger := o.logger.WithSignature(ix.Signature())
	logger.LogBuild(ctx, len(rows), ix.Len(), nil)

	return &Index{
		ix:      ix,
		logger:  logger,
		metrics: o.metricsCollector,
	}, nil
}

// Signature returns the indexed field names joined by "_".
func (i *Index) Signature() string {
	return i.ix.Signature()
}

// HasSignature reports whether rec carries every indexed field.
func (i *Index) HasSignature(rec record.Record) bool {
	return i.ix.HasSignature(rec)
}

// Keys extracts the index keys of rec; missing data yields no keys.
func (i *Index) Keys(rec record.Record) []record.Value {
	return i.ix.Keys(rec)
}

// Add indexes rec at pos. See index.Index.Add.
func (i *Index) Add(rec record.Record, pos Position) error {
	start := time.Now()
	err := i.ix.Add(rec, pos)
	i.metrics.RecordAdd(time.Since(start), err)
	i.logger.LogAdd(context.Background(), uint32(pos), err)
	return translateError(err)
}

// Lookup returns the de-duplicated positions matching any query row.
func (i *Index) Lookup(queries []record.Record) []Position {
	start := time.Now()
	out := i.ix.Lookup(queries)
	i.metrics.RecordLookup(len(queries), len(out), time.Since(start))
	i.logger.LogLookup(context.Background(), len(queries), len(out))
	return out
}

// Flat returns a detached snapshot of the store.
func (i *Index) Flat() index.Snapshot {
	return i.ix.Flat()
}

// Len returns the number of distinct keys.
func (i *Index) Len() int {
	return i.ix.Len()
}

// Fields returns a copy of the indexed field names.
func (i *Index) Fields() []string {
	return i.ix.Fields()
}

// Type returns the key extraction type.
func (i *Index) Type() index.Type {
	return i.ix.Type()
}

// Grouped reports whether the index maps keys to position sets.
func (i *Index) Grouped() bool {
	return i.ix.Grouped()
}

// Unwrap returns the underlying core index.
func (i *Index) Unwrap() *index.Index {
	return i.ix
}
