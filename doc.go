// Package rowindex provides in-memory lookup indexes over sequences of
// JSON-like records.
//
// An index covers one or more fields of every record and answers "which
// rows look like this partial record?" in O(1) per key, without scanning
// the collection.
//
//   - Exact and composite keys: rowindex.New(rows, []string{"author", "volumes"})
//   - Numeric keys: rowindex.WithType(index.TypeNumber)
//   - Multi-value keys from arrays: rowindex.WithType(index.TypeArray)
//   - Full-text tokens: rowindex.WithType(index.TypeText)
//   - Unique (default) or grouped stores: rowindex.WithGrouped()
//
// # Quick Start
//
//	rows, _ := record.DecodeJSON(nil, data)
//
//	ix, err := rowindex.New(rows, []string{"title"},
//	    rowindex.WithType(index.TypeText),
//	    rowindex.WithGrouped(),
//	)
//	if err != nil {
//	    return err
//	}
//
//	positions := ix.Lookup([]record.Record{{"title": record.String("the")}})
//
// # Incremental Building
//
//	ix, _ := rowindex.New(nil, []string{"author"}, rowindex.WithoutBuild())
//	if err := ix.Add(rec, 7); err != nil {
//	    // *rowindex.FieldMismatchError or *rowindex.DuplicateKeyError
//	}
//
// # Several Indexes
//
// BuildAll builds independent indexes over the same rows in parallel:
//
//	indexes, err := rowindex.BuildAll(ctx, rows, []rowindex.Spec{
//	    {Fields: []string{"author"}},
//	    {Fields: []string{"data"}, Options: []rowindex.Option{
//	        rowindex.WithType(index.TypeArray), rowindex.WithGrouped(),
//	    }},
//	})
//
// # Errors
//
// Construction and Add return typed errors matching ErrConfiguration,
// ErrFieldMismatch and ErrDuplicateKey via errors.Is. Lookup, Keys, Flat and
// Signature never fail: missing data is an empty result.
//
// # Observability
//
// Use WithLogger (log/slog) and WithMetricsCollector to observe builds,
// adds and lookups.
package rowindex
