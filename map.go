package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/avltree/avl"
)

// Map associates keys with values like the built-in map type, but keeps
// its entries ordered by key. Setting an existing key replaces its value
// in place through the engine's merge protocol.
type Map[K cmp.Ordered, V any] struct {
	tree *avl.Tree[avl.Pair[K, V], avl.Unit, avl.Unit]
}

// replaceValue merges an incoming pair into a stored pair with the same
// key by overwriting the value.
type replaceValue[K comparable, V any] struct{}

func (replaceValue[K, V]) Merge(target *avl.Pair[K, V], incoming avl.Pair[K, V]) bool {
	if target.Key != incoming.Key {
		return false
	}
	target.Value = incoming.Value
	return true
}

// NewMap creates an empty map ordered by the natural < of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	tree, err := avl.New(avl.Config[avl.Pair[K, V], avl.Unit, avl.Unit]{
		Less:  avl.LessByKey[K, V],
		Merge: replaceValue[K, V]{},
		Agg:   avl.UnitAggregator[avl.Pair[K, V]]{},
	})
	assert(err == nil, "map: cannot create tree")
	return &Map[K, V]{tree: tree}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Size()
}

// Set associates key with value, replacing a previous association.
func (m *Map[K, V]) Set(key K, value V) {
	T().Debugf("map: set key %v", key)
	m.tree.InsertOrdered(avl.Pair[K, V]{Key: key, Value: value})
}

// Get returns the value associated with key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	_, pair, ok := m.tree.Find(avl.Pair[K, V]{Key: key})
	if !ok {
		return zero, false
	}
	return pair.Value, true
}

// Delete removes the entry for key. It reports whether an entry existed.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.tree.RemoveOrdered(avl.Pair[K, V]{Key: key})
	return ok
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := range m.tree.All() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
