package index

import (
	"github.com/hupe1980/rowindex/core"
	"github.com/hupe1980/rowindex/internal/bitmap"
)

// store is the key -> position mapping behind an Index.
type store interface {
	// insert records pos under every key. It either inserts all keys or
	// none and returns a *DuplicateKeyError.
	insert(keys []string, pos core.Position) error
	// resolve calls yield for every position stored under key.
	resolve(key string, yield func(core.Position) bool)
	len() int
	snapshot() Snapshot
}

// uniqueStore maps each key to exactly one position.
type uniqueStore struct {
	entries map[string]core.Position
}

func newUniqueStore() *uniqueStore {
	return &uniqueStore{entries: make(map[string]core.Position)}
}

func (s *uniqueStore) insert(keys []string, pos core.Position) error {
	// Check before writing so a failed insert leaves no partial state.
	var seen map[string]struct{}
	if len(keys) > 1 {
		seen = make(map[string]struct{}, len(keys))
	}
	for _, k := range keys {
		if existing, ok := s.entries[k]; ok {
			return &DuplicateKeyError{Key: k, Existing: existing, Position: pos}
		}
		if seen == nil {
			continue
		}
		if _, ok := seen[k]; ok {
			return &DuplicateKeyError{Key: k, Existing: pos, Position: pos}
		}
		seen[k] = struct{}{}
	}
	for _, k := range keys {
		s.entries[k] = pos
	}
	return nil
}

func (s *uniqueStore) resolve(key string, yield func(core.Position) bool) {
	if pos, ok := s.entries[key]; ok {
		yield(pos)
	}
}

func (s *uniqueStore) len() int { return len(s.entries) }

func (s *uniqueStore) snapshot() Snapshot {
	entries := make(map[string]core.Position, len(s.entries))
	for k, p := range s.entries {
		entries[k] = p
	}
	return Snapshot{Unique: entries}
}

// group is the set of positions sharing a key. count always equals the
// cardinality of items.
type group struct {
	items *bitmap.PositionSet
	count int
}

// groupedStore maps each key to a group of positions.
type groupedStore struct {
	entries map[string]*group
}

func newGroupedStore() *groupedStore {
	return &groupedStore{entries: make(map[string]*group)}
}

func (s *groupedStore) insert(keys []string, pos core.Position) error {
	for _, k := range keys {
		g, ok := s.entries[k]
		if !ok {
			g = &group{items: bitmap.New()}
			s.entries[k] = g
		}
		g.items.Add(pos)
		g.count = g.items.Cardinality()
	}
	return nil
}

func (s *groupedStore) resolve(key string, yield func(core.Position) bool) {
	g, ok := s.entries[key]
	if !ok {
		return
	}
	for p := range g.items.All() {
		if !yield(p) {
			return
		}
	}
}

func (s *groupedStore) len() int { return len(s.entries) }

func (s *groupedStore) snapshot() Snapshot {
	groups := make(map[string]Group, len(s.entries))
	for k, g := range s.entries {
		groups[k] = Group{Items: g.items.ToSlice(), Count: g.count}
	}
	return Snapshot{Grouped: true, Groups: groups}
}
