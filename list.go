package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/avltree/avl"
)

// List is an indexable sequence of elements. It behaves like a slice with
// O(log n) insertion and removal at arbitrary positions.
type List[E any] struct {
	tree *avl.Tree[E, avl.Unit, avl.Unit]
}

// NewList creates an empty list.
func NewList[E any]() *List[E] {
	tree, err := avl.New(avl.Config[E, avl.Unit, avl.Unit]{
		Agg: avl.UnitAggregator[E]{},
	})
	assert(err == nil, "list: cannot create tree")
	return &List[E]{tree: tree}
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return l.tree.Size()
}

// At returns the element at position i.
func (l *List[E]) At(i int) (E, error) {
	return l.tree.At(i)
}

// Insert inserts v at position i, shifting later elements to the right.
// Valid positions are 0 through Len.
func (l *List[E]) Insert(i int, v E) error {
	T().Debugf("list: insert at %d", i)
	return l.tree.InsertAt(i, v)
}

// Append adds v at the end of the list.
func (l *List[E]) Append(v E) {
	err := l.tree.InsertAt(l.tree.Size(), v)
	assert(err == nil, "list: append cannot be out of bounds")
}

// Remove removes and returns the element at position i.
func (l *List[E]) Remove(i int) (E, error) {
	T().Debugf("list: remove at %d", i)
	return l.tree.RemoveAt(i)
}

// Set replaces the element at position i with v.
func (l *List[E]) Set(i int, v E) error {
	_, err := l.tree.ReplaceAt(i, v)
	return err
}

// All returns an iterator over the elements in positional order.
func (l *List[E]) All() iter.Seq[E] {
	return l.tree.All()
}
