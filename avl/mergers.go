package avl

import "cmp"

// Stock merge policies. NeverMerge yields sequence and multiset semantics,
// MergeIfEqual yields set semantics, and MergeAddCounts yields counted-map
// semantics over key/count pairs.

// NeverMerge never absorbs an insertion; every insert creates a node.
type NeverMerge[E any] struct{}

func (NeverMerge[E]) Merge(*E, E) bool { return false }

// MergeIfEqual absorbs an insertion into an equal element, suppressing
// duplicates.
type MergeIfEqual[E comparable] struct{}

func (MergeIfEqual[E]) Merge(target *E, incoming E) bool {
	return *target == incoming
}

// Pair is a key/value element for map-like trees.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// LessByKey orders pairs by their key, ignoring values.
func LessByKey[K cmp.Ordered, V any](a, b Pair[K, V]) bool {
	return a.Key < b.Key
}

// Numeric constrains the count types MergeAddCounts can sum.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MergeAddCounts absorbs a pair into an existing pair with the same key by
// summing the counts. Keys alone decide equality; the incoming count is
// folded into the stored pair.
type MergeAddCounts[K comparable, C Numeric] struct{}

func (MergeAddCounts[K, C]) Merge(target *Pair[K, C], incoming Pair[K, C]) bool {
	if target.Key != incoming.Key {
		return false
	}
	target.Value += incoming.Value
	return true
}
