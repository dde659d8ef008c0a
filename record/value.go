package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a small typed field value: a scalar or a sequence of values.
//
// No reflection and no fmt-based stringification on the key path.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string] // Private interned string
	B    bool
	A    []Value
}

// MarshalJSON encodes v as a plain JSON scalar or array, the same shape
// DecodeJSON reads back.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil)
}

func (v Value) appendJSON(dst []byte) ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindInt:
		return strconv.AppendInt(dst, v.I64, 10), nil
	case KindFloat:
		if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) {
			return nil, fmt.Errorf("record: unsupported float value %v", v.F64)
		}
		return append(dst, formatFloat(v.F64)...), nil
	case KindString:
		b, err := json.Marshal(v.s.Value())
		if err != nil {
			return nil, err
		}
		return append(dst, b...), nil
	case KindBool:
		return strconv.AppendBool(dst, v.B), nil
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.A {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = e.appendJSON(dst); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	default:
		return nil, fmt.Errorf("record: cannot encode %s value", v.Kind)
	}
}

// UnmarshalJSON decodes a plain JSON scalar or array. Integral numbers
// decode as Int, all other numbers as Float. Objects are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	out, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// IsScalar reports whether v is a non-array, valid value.
func (v Value) IsScalar() bool {
	return v.Kind != KindInvalid && v.Kind != KindArray
}

// Canonical returns the string form used to address index entries.
//
// Numbers use their shortest decimal form, so Int(1), Float(1) and String("1")
// share the canonical form "1". Arrays have no canonical form; ok is false.
func (v Value) Canonical() (string, bool) {
	switch v.Kind {
	case KindNull:
		return "null", true
	case KindInt:
		return strconv.FormatInt(v.I64, 10), true
	case KindFloat:
		return formatFloat(v.F64), true
	case KindString:
		return v.s.Value(), true
	case KindBool:
		return strconv.FormatBool(v.B), true
	default:
		return "", false
	}
}

func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Number returns v as a numeric value.
//
// Int and Float pass through. Strings holding a decimal number are parsed,
// yielding Int when integral. Everything else reports ok=false.
func (v Value) Number() (Value, bool) {
	switch v.Kind {
	case KindInt, KindFloat:
		return v, true
	case KindString:
		s := v.s.Value()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, false
		}
		if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt64/2 {
			return Int(int64(f)), true
		}
		return Float(f), true
	default:
		return Value{}, false
	}
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Record is a single row: field name to value.
type Record map[string]Value

// Has reports whether the record carries the field, whatever its value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Clone creates a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v.clone()
	}
	return clone
}

// clone creates a deep copy of a Value, including nested arrays.
func (v Value) clone() Value {
	if v.Kind != KindArray || len(v.A) == 0 {
		// Simple values are copied by value semantics
		return v
	}

	arrayCopy := make([]Value, len(v.A))
	for i := range v.A {
		arrayCopy[i] = v.A[i].clone()
	}

	return Value{
		Kind: v.Kind,
		I64:  v.I64,
		F64:  v.F64,
		s:    v.s,
		B:    v.B,
		A:    arrayCopy,
	}
}
