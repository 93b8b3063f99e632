package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
	"sort"

	"github.com/npillmayer/avltree/avl"
)

// Bag is an ordered multiset: equal elements may occur multiple times and
// iteration yields all of them in non-decreasing order.
type Bag[E cmp.Ordered] struct {
	tree *avl.Tree[E, avl.Unit, avl.Unit]
}

// NewBag creates an empty bag ordered by the natural < of E.
func NewBag[E cmp.Ordered]() *Bag[E] {
	tree, err := avl.New(avl.Config[E, avl.Unit, avl.Unit]{
		Less: func(a, b E) bool { return a < b },
		Agg:  avl.UnitAggregator[E]{},
	})
	assert(err == nil, "bag: cannot create tree")
	return &Bag[E]{tree: tree}
}

// Len returns the number of elements, counting duplicates.
func (b *Bag[E]) Len() int {
	return b.tree.Size()
}

// Insert adds v to the bag and returns its position.
func (b *Bag[E]) Insert(v E) int {
	T().Debugf("bag: insert %v", v)
	return b.tree.InsertOrdered(v)
}

// Delete removes one occurrence of v. It reports whether v was present.
func (b *Bag[E]) Delete(v E) bool {
	T().Debugf("bag: delete %v", v)
	_, ok := b.tree.RemoveOrdered(v)
	return ok
}

// Contains reports whether at least one occurrence of v is in the bag.
func (b *Bag[E]) Contains(v E) bool {
	_, _, ok := b.tree.Find(v)
	return ok
}

// Count returns the number of occurrences of v.
//
// Equal elements are adjacent in the ordered sequence, so the two run
// boundaries are found by binary search over positions.
func (b *Bag[E]) Count(v E) int {
	n := b.tree.Size()
	at := func(i int) E {
		x, err := b.tree.At(i)
		assert(err == nil, "bag: position inside size must resolve")
		return x
	}
	lo := sort.Search(n, func(i int) bool { return !(at(i) < v) })
	hi := sort.Search(n, func(i int) bool { return v < at(i) })
	return hi - lo
}

// All returns an iterator over the elements in non-decreasing order.
func (b *Bag[E]) All() iter.Seq[E] {
	return b.tree.All()
}
