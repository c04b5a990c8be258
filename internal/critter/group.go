package critter

import (
	"slices"
)

// multimap groups values under a composite key. Keys are kept in insertion
// order until sortKeys is called.
type multimap[K comparable, V any] struct {
	values map[K][]V
	keys   []K
}

func newMultimap[K comparable, V any]() *multimap[K, V] {
	return &multimap[K, V]{values: map[K][]V{}}
}

func (m *multimap[K, V]) add(key K, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], v)
}

func (m *multimap[K, V]) get(key K) []V {
	return m.values[key]
}

func (m *multimap[K, V]) sortKeys(cmp func(a, b K) int) {
	slices.SortStableFunc(m.keys, cmp)
}
