package index

import (
	"encoding/json"

	"github.com/hupe1980/rowindex/core"
)

// Group is the snapshot of a grouped entry.
type Group struct {
	Items []core.Position `json:"items"` // ascending
	Count int             `json:"count"`
}

// Snapshot is a detached copy of an index store. Exactly one of Unique and
// Groups is set, depending on Grouped.
type Snapshot struct {
	Grouped bool
	Unique  map[string]core.Position
	Groups  map[string]Group
}

// Len returns the number of distinct keys.
func (s Snapshot) Len() int {
	if s.Grouped {
		return len(s.Groups)
	}
	return len(s.Unique)
}

// MarshalJSON encodes the snapshot as a plain key -> entry object:
// {"Tolkien":0} for unique stores, {"1":{"items":[1,2],"count":2}} for
// grouped ones.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if s.Grouped {
		if s.Groups == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(s.Groups)
	}
	if s.Unique == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Unique)
}
