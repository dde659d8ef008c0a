package record

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/rowindex/codec"
	"github.com/hupe1980/rowindex/internal/conv"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for loosely typed input such as decoded JSON.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("record number %q: %w", x, err)
		}
		return Float(f), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x)
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	default:
		return Value{}, fmt.Errorf("unsupported record value type %T", v)
	}
}

func fromUint64(x uint64) (Value, error) {
	i, err := conv.Uint64ToInt64(x)
	if err != nil {
		// Avoid silently truncating large values.
		return Value{}, fmt.Errorf("record uint64 out of range: %w", err)
	}
	return Int(i), nil
}

// RecordFromAny converts a map[string]any row to a typed Record.
// A nil map yields a nil Record.
func RecordFromAny(m map[string]any) (Record, error) {
	if m == nil {
		return nil, nil
	}
	r := make(Record, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r[k] = vv
	}
	return r, nil
}

// RecordsFromAny converts a row sequence. Nil rows stay nil so that
// positions of the remaining rows are preserved.
func RecordsFromAny(rows []map[string]any) ([]Record, error) {
	out := make([]Record, len(rows))
	for i, m := range rows {
		r, err := RecordFromAny(m)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// DecodeJSON decodes a plain JSON array of objects into records.
// JSON null entries become nil records (gaps). If c is nil, codec.Default is used.
func DecodeJSON(c codec.Codec, data []byte) ([]Record, error) {
	if c == nil {
		c = codec.Default
	}
	var rows []map[string]any
	if err := c.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode rows with %s: %w", c.Name(), err)
	}
	return RecordsFromAny(rows)
}
