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

// Set is an ordered set. Inserting an element equal to a stored one is
// absorbed, so every element occurs at most once. Iteration yields
// elements in ascending order.
type Set[E cmp.Ordered] struct {
	tree *avl.Tree[E, avl.Unit, avl.Unit]
}

// NewSet creates an empty set ordered by the natural < of E.
func NewSet[E cmp.Ordered]() *Set[E] {
	tree, err := avl.New(avl.Config[E, avl.Unit, avl.Unit]{
		Less:  func(a, b E) bool { return a < b },
		Merge: avl.MergeIfEqual[E]{},
		Agg:   avl.UnitAggregator[E]{},
	})
	assert(err == nil, "set: cannot create tree")
	return &Set[E]{tree: tree}
}

// Len returns the number of elements.
func (s *Set[E]) Len() int {
	return s.tree.Size()
}

// Insert adds v to the set. It reports whether v was newly added.
func (s *Set[E]) Insert(v E) bool {
	T().Debugf("set: insert %v", v)
	before := s.tree.Size()
	s.tree.InsertOrdered(v)
	return s.tree.Size() > before
}

// Delete removes v from the set. It reports whether v was present.
func (s *Set[E]) Delete(v E) bool {
	T().Debugf("set: delete %v", v)
	_, ok := s.tree.RemoveOrdered(v)
	return ok
}

// Contains reports whether v is in the set.
func (s *Set[E]) Contains(v E) bool {
	_, _, ok := s.tree.Find(v)
	return ok
}

// All returns an iterator over the elements in ascending order.
func (s *Set[E]) All() iter.Seq[E] {
	return s.tree.All()
}

// equivMerge absorbs an insertion into a stored element equivalent under
// the ordering, yielding set semantics for orderings without a usable ==.
type equivMerge[E any] struct {
	less func(a, b E) bool
}

func (m equivMerge[E]) Merge(target *E, incoming E) bool {
	return !m.less(*target, incoming) && !m.less(incoming, *target)
}

// SetFunc is an ordered set over an explicit ordering. Elements equivalent
// under the ordering occur at most once; iteration yields elements in
// ascending order.
type SetFunc[E any] struct {
	tree *avl.Tree[E, avl.Unit, avl.Unit]
}

// NewSetFunc creates an empty set ordered by less, which must be a strict
// weak order.
func NewSetFunc[E any](less func(a, b E) bool) *SetFunc[E] {
	tree, err := avl.New(avl.Config[E, avl.Unit, avl.Unit]{
		Less:  less,
		Merge: equivMerge[E]{less: less},
		Agg:   avl.UnitAggregator[E]{},
	})
	assert(err == nil, "set: cannot create tree")
	return &SetFunc[E]{tree: tree}
}

// Len returns the number of elements.
func (s *SetFunc[E]) Len() int {
	return s.tree.Size()
}

// Insert adds v to the set. It reports whether v was newly added.
func (s *SetFunc[E]) Insert(v E) bool {
	T().Debugf("set: insert %v", v)
	before := s.tree.Size()
	s.tree.InsertOrdered(v)
	return s.tree.Size() > before
}

// Delete removes the element equivalent to v. It reports whether one was
// present.
func (s *SetFunc[E]) Delete(v E) bool {
	T().Debugf("set: delete %v", v)
	_, ok := s.tree.RemoveOrdered(v)
	return ok
}

// Contains reports whether an element equivalent to v is in the set.
func (s *SetFunc[E]) Contains(v E) bool {
	_, _, ok := s.tree.Find(v)
	return ok
}

// All returns an iterator over the elements in ascending order.
func (s *SetFunc[E]) All() iter.Seq[E] {
	return s.tree.All()
}
