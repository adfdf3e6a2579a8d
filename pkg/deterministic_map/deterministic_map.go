// Package deterministicmap provides a generic sorted-key map used
// wherever a caller needs reproducible iteration order without paying
// for a sort on every mutation. Within this module it backs the
// vesting keeper's wallet-address lookup index (see
// x/vesting/keeper/wallet_index.go): the authoritative recipient list
// stays an insertion-ordered slice, and this map is only a secondary,
// O(1) existence/position index keyed by the recipient's hex address.
package deterministicmap

import (
	"cmp"
	"sort"
)

// Map pairs a plain Go map with an insertion-order key slice, sorting
// the slice only when Range is actually called. Sets and deletes
// between two Range calls cost one map op and one slice append or
// splice each; the sort itself is O(n log n) but amortizes across
// however many mutations happened since the last Range.
type Map[K cmp.Ordered, V any] struct {
	data   map[K]V
	keys   []K
	sorted bool
}

// New returns an initialized Map. The zero value works too; New only
// saves the first lazy-init branch on the first call.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]V), sorted: true}
}

func (m *Map[K, V]) ensure() {
	if m.data == nil {
		m.data = make(map[K]V)
		m.sorted = true
	}
}

// Set inserts or overwrites key. A new key marks the map unsorted.
func (m *Map[K, V]) Set(key K, value V) {
	m.ensure()
	if _, exists := m.data[key]; !exists {
		m.keys = append(m.keys, key)
		m.sorted = false
	}
	m.data[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.data == nil {
		var zero V
		return zero, false
	}
	v, ok := m.data[key]
	return v, ok
}

func (m *Map[K, V]) Delete(key K) {
	if m.data == nil {
		return
	}
	if _, exists := m.data[key]; !exists {
		return
	}
	delete(m.data, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	m.sorted = false
}

// Contains reports presence without allocating a zero V for a miss.
func (m *Map[K, V]) Contains(key K) bool {
	if m.data == nil {
		return false
	}
	_, ok := m.data[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	if m.data == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map[K, V]) ensureSorted() {
	if m.sorted {
		return
	}
	sort.Slice(m.keys, func(i, j int) bool { return m.keys[i] < m.keys[j] })
	m.sorted = true
}

// Range visits entries in ascending key order. Returning false from fn
// stops iteration early.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	if m.data == nil {
		return
	}
	m.ensureSorted()
	for _, k := range m.keys {
		if !fn(k, m.data[k]) {
			return
		}
	}
}
