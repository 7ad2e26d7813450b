package sparse

import "sort"

// entry is one key/value pair of a Map.
type entry struct {
	key   uint32
	value uint32
}

// Map is a small ordered map from uint32 keys to uint32 values.
//
// Entries are kept sorted by key in a single slice, so lookups are a binary
// search and iteration is in ascending key order. Memory is proportional to
// the number of entries rather than to the key universe, which is what makes
// it suitable as a transition row for large alphabets: a suffix automaton
// over n symbols has at most 3n-4 transitions in total regardless of alphabet
// size.
//
// The zero value is an empty map ready to use.
type Map struct {
	entries []entry
}

// search returns the index of the first entry with key >= k.
func (m *Map) search(k uint32) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].key >= k
	})
}

// Get returns the value stored for key k.
func (m *Map) Get(k uint32) (uint32, bool) {
	// Linear scan wins for the very short rows that dominate in practice.
	if len(m.entries) <= 8 {
		for _, e := range m.entries {
			if e.key == k {
				return e.value, true
			}
			if e.key > k {
				break
			}
		}
		return 0, false
	}
	i := m.search(k)
	if i < len(m.entries) && m.entries[i].key == k {
		return m.entries[i].value, true
	}
	return 0, false
}

// Set stores v for key k, overwriting any existing value.
func (m *Map) Set(k, v uint32) {
	i := m.search(k)
	if i < len(m.entries) && m.entries[i].key == k {
		m.entries[i].value = v
		return
	}
	m.entries = append(m.entries, entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry{key: k, value: v}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// At returns the i-th entry in ascending key order.
func (m *Map) At(i int) (k, v uint32) {
	e := m.entries[i]
	return e.key, e.value
}

// Each calls f for every entry in ascending key order.
func (m *Map) Each(f func(k, v uint32)) {
	for _, e := range m.entries {
		f(e.key, e.value)
	}
}

// Clone returns an independent copy of m.
func (m *Map) Clone() Map {
	if len(m.entries) == 0 {
		return Map{}
	}
	entries := make([]entry, len(m.entries))
	copy(entries, m.entries)
	return Map{entries: entries}
}
