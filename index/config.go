package index

// Type selects how keys are extracted from a record.
type Type uint8

const (
	// TypeDefault indexes the exact (string-coerced) value of one or more fields.
	TypeDefault Type = iota
	// TypeNumber indexes the numeric value of a single field.
	TypeNumber
	// TypeArray indexes every element of the array-valued fields.
	TypeArray
	// TypeText indexes every whitespace-delimited token of a string field.
	TypeText
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeDefault:
		return "default"
	case TypeNumber:
		return "number"
	case TypeArray:
		return "array"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

func (t Type) valid() bool {
	return t <= TypeText
}

// singleField reports whether the type admits exactly one field.
func (t Type) singleField() bool {
	return t == TypeNumber || t == TypeText
}

// Config configures an Index. The zero value is a unique, default-type
// index that is built on construction.
type Config struct {
	// Type selects key extraction.
	Type Type

	// Grouped maps each key to a set of positions instead of a single one.
	Grouped bool

	// SkipBuild leaves the index empty; the caller populates it with Add.
	SkipBuild bool
}
