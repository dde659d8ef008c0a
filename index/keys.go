package index

import (
	"strings"

	"github.com/hupe1980/rowindex/record"
)

// Keys extracts the index keys of rec. A record that does not carry the
// indexed fields, or carries values of the wrong shape, yields no keys.
func (ix *Index) Keys(rec record.Record) []record.Value {
	return ix.extract(rec, false)
}

// extract implements the per-type key table. In query mode a scalar under
// an array index stands for a one-element array.
func (ix *Index) extract(rec record.Record, query bool) []record.Value {
	if rec == nil {
		return nil
	}

	switch ix.typ {
	case TypeNumber:
		v, ok := rec[ix.fields[0]]
		if !ok {
			return nil
		}
		n, ok := v.Number()
		if !ok {
			return nil
		}
		return []record.Value{n}

	case TypeArray:
		var keys []record.Value
		for _, f := range ix.fields {
			v, ok := rec[f]
			if !ok {
				continue
			}
			keys = appendElements(keys, v, query)
		}
		return keys

	case TypeText:
		v, ok := rec[ix.fields[0]]
		if !ok {
			return nil
		}
		s, ok := v.AsString()
		if !ok {
			return nil
		}
		tokens := tokenize(s)
		if len(tokens) == 0 {
			return nil
		}
		keys := make([]record.Value, len(tokens))
		for i, t := range tokens {
			keys[i] = record.String(t)
		}
		return keys

	default:
		key, ok := ix.compositeKey(rec)
		if !ok {
			return nil
		}
		return []record.Value{record.String(key)}
	}
}

// appendElements appends the scalar elements of an array value. Nulls and
// nested arrays are skipped, as is a field holding anything but an array,
// unless query mode lets a lone scalar stand in for a one-element array.
func appendElements(keys []record.Value, v record.Value, query bool) []record.Value {
	arr, ok := v.AsArray()
	if !ok {
		if query && v.IsScalar() && v.Kind != record.KindNull {
			return append(keys, v)
		}
		return keys
	}
	for _, e := range arr {
		if !e.IsScalar() || e.Kind == record.KindNull {
			continue
		}
		keys = append(keys, e)
	}
	return keys
}

// compositeKey joins the canonical forms of the indexed fields.
func (ix *Index) compositeKey(rec record.Record) (string, bool) {
	if len(ix.fields) == 1 {
		v, ok := rec[ix.fields[0]]
		if !ok {
			return "", false
		}
		return v.Canonical()
	}

	parts := make([]string, len(ix.fields))
	for i, f := range ix.fields {
		v, ok := rec[f]
		if !ok {
			return "", false
		}
		c, ok := v.Canonical()
		if !ok {
			return "", false
		}
		parts[i] = c
	}
	return strings.Join(parts, Separator), true
}

// tokenize is the text tokenizer: it splits on runs of white space, keeps
// punctuation in the token and preserves case. Index and query keys both go
// through it, so a change here changes what a text lookup can match.
func tokenize(text string) []string {
	return strings.Fields(text)
}

// canonicalKeys maps extracted keys to the strings that address the store.
// Every extracted key is a scalar, so the conversion cannot fail.
func canonicalKeys(keys []record.Value) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if c, ok := k.Canonical(); ok {
			out = append(out, c)
		}
	}
	return out
}
