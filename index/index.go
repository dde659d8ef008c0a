package index

import (
	"fmt"
	"slices"

	"github.com/hupe1980/rowindex/core"
	"github.com/hupe1980/rowindex/internal/bitmap"
	"github.com/hupe1980/rowindex/internal/conv"
	"github.com/hupe1980/rowindex/record"
)

// Index maps the keys of indexed fields to row positions.
//
// Positions are supplied by the caller and are never reordered; rows are
// never copied or mutated.
type Index struct {
	fields    []string
	typ       Type
	grouped   bool
	signature string
	store     store
}

// New creates an index over fields of rows.
//
// Unless cfg.SkipBuild is set, every non-nil row is added at its offset in
// rows; nil rows are gaps. Any build error aborts construction.
func New(rows []record.Record, fields []string, cfg Config) (*Index, error) {
	if len(fields) == 0 {
		return nil, &ConfigurationError{Reason: "no fields given"}
	}
	if !cfg.Type.valid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown index type %d", cfg.Type)}
	}
	if cfg.Type.singleField() && len(fields) > 1 {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("%s index admits exactly one field, got %d", cfg.Type, len(fields)),
		}
	}

	ix := &Index{
		fields:    slices.Clone(fields),
		typ:       cfg.Type,
		grouped:   cfg.Grouped,
		signature: Signature(fields),
	}
	if cfg.Grouped {
		ix.store = newGroupedStore()
	} else {
		ix.store = newUniqueStore()
	}

	if cfg.SkipBuild {
		return ix, nil
	}

	for i, rec := range rows {
		if rec == nil {
			continue
		}
		pos, err := conv.IntToPosition(i)
		if err != nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("row %d: %v", i, err)}
		}
		if err := ix.Add(rec, pos); err != nil {
			return nil, fmt.Errorf("build row %d: %w", i, err)
		}
	}

	return ix, nil
}

// Add indexes rec at pos.
//
// It fails with a *FieldMismatchError when rec lacks an indexed field and,
// on a unique index, with a *DuplicateKeyError when a key is taken. On
// failure the index is unchanged. Adding the same position under the same
// key of a grouped index is a no-op.
func (ix *Index) Add(rec record.Record, pos core.Position) error {
	if !ix.HasSignature(rec) {
		return &FieldMismatchError{Signature: ix.signature, Missing: ix.missingFields(rec)}
	}
	return ix.store.insert(canonicalKeys(ix.extract(rec, false)), pos)
}

// Lookup returns the positions matching any of the query rows.
//
// Each position appears once, in the order it was first reached. Nil query
// rows are skipped. No match yields an empty slice.
func (ix *Index) Lookup(queries []record.Record) []core.Position {
	out := make([]core.Position, 0)
	seen := bitmap.New()

	for _, q := range queries {
		if q == nil {
			continue
		}
		for _, key := range canonicalKeys(ix.extract(q, true)) {
			ix.store.resolve(key, func(p core.Position) bool {
				if seen.CheckedAdd(p) {
					out = append(out, p)
				}
				return true
			})
		}
	}

	return out
}

// Flat returns a detached snapshot of the current store contents.
func (ix *Index) Flat() Snapshot {
	return ix.store.snapshot()
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return ix.store.len()
}

// Fields returns a copy of the indexed field names.
func (ix *Index) Fields() []string {
	return slices.Clone(ix.fields)
}

// Type returns the key extraction type.
func (ix *Index) Type() Type {
	return ix.typ
}

// Grouped reports whether the index maps keys to position sets.
func (ix *Index) Grouped() bool {
	return ix.grouped
}
