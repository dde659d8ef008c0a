// Package index implements an in-memory lookup index over record sequences.
//
// An Index covers one or more fields of each record. Given a partial record
// (a query row), it returns the positions of matching records without
// scanning the collection.
//
// # Index Types
//
//   - TypeDefault: exact value; several fields form a composite key ("Tolkien_3")
//   - TypeNumber: numeric value of a single field ("1" and 1 are the same key)
//   - TypeArray: one key per element of each indexed array field
//   - TypeText: one key per whitespace-delimited token of a string field
//
// # Store Modes
//
// A unique index maps each key to exactly one position and rejects duplicates
// with a DuplicateKeyError. A grouped index maps each key to a set of
// positions; adding the same position twice is a no-op.
//
// # Usage
//
//	ix, err := index.New(rows, []string{"title"}, index.Config{
//	    Type:    index.TypeText,
//	    Grouped: true,
//	})
//	if err != nil {
//	    return err
//	}
//	positions := ix.Lookup([]record.Record{{"title": record.String("the")}})
//
// # Thread Safety
//
// Add must be serialized by the caller. Once writes have stopped, Lookup,
// Keys, Flat and Signature are safe for concurrent use.
package index
