package index

import (
	"strings"

	"github.com/hupe1980/rowindex/record"
)

// Separator joins field names into a signature and values into a
// composite key. Field names containing it are not supported.
const Separator = "_"

// Signature returns the signature of an index over fields.
func Signature(fields []string) string {
	return strings.Join(fields, Separator)
}

// Signature returns the indexed field names joined by Separator, in
// declaration order.
func (ix *Index) Signature() string {
	return ix.signature
}

// HasSignature reports whether rec carries every indexed field. Values are
// not inspected: null, zero and empty values count as present.
func (ix *Index) HasSignature(rec record.Record) bool {
	if rec == nil {
		return false
	}
	for _, f := range ix.fields {
		if !rec.Has(f) {
			return false
		}
	}
	return true
}

func (ix *Index) missingFields(rec record.Record) []string {
	var missing []string
	for _, f := range ix.fields {
		if !rec.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
