package avl

// removeAt removes the element at position index within the subtree n.
//
// It returns the new subtree root, whether the subtree shrank in height,
// and the removed element. On error the subtree is untouched.
func (t *Tree[E, I, R]) removeAt(n *Node[E, I], index int) (*Node[E, I], bool, E, error) {
	var zero E
	if n == nil {
		return nil, false, zero, ErrIndexOutOfBounds
	}
	ls := nodeSize(n.left)
	switch {
	case index == ls:
		root, shrank, removed := t.removeNode(n)
		return root, shrank, removed, nil
	case index < ls:
		child, shrank, removed, err := t.removeAt(n.left, index)
		if err != nil {
			return n, false, zero, err
		}
		n.left = child
		n, shrank = t.settleLeftShrink(n, shrank)
		return n, shrank, removed, nil
	default:
		child, shrank, removed, err := t.removeAt(n.right, index-ls-1)
		if err != nil {
			return n, false, zero, err
		}
		n.right = child
		n, shrank = t.settleRightShrink(n, shrank)
		return n, shrank, removed, nil
	}
}

// removeOrdered searches for an element equal to v and removes it.
//
// Absence is not an error: the ok flag reports whether a removal happened,
// and the subtree is untouched otherwise. The reported index is relative to
// the subtree, with right recursion adding size(left)+1; a victim reports
// size(left) as evaluated before any structural change.
func (t *Tree[E, I, R]) removeOrdered(n *Node[E, I], v E) (*Node[E, I], bool, int, bool, E) {
	var zero E
	if n == nil {
		return nil, false, 0, false, zero
	}
	if t.cfg.Equal(n.value, v) {
		index := nodeSize(n.left)
		root, shrank, removed := t.removeNode(n)
		return root, shrank, index, true, removed
	}
	if t.cfg.Less(v, n.value) {
		child, shrank, index, ok, removed := t.removeOrdered(n.left, v)
		if !ok {
			return n, false, 0, false, zero
		}
		n.left = child
		n, shrank = t.settleLeftShrink(n, shrank)
		return n, shrank, index, true, removed
	}
	ls := nodeSize(n.left)
	child, shrank, index, ok, removed := t.removeOrdered(n.right, v)
	if !ok {
		return n, false, 0, false, zero
	}
	n.right = child
	n, shrank = t.settleRightShrink(n, shrank)
	return n, shrank, ls + 1 + index, true, removed
}

// removeNode splices out the node n itself.
//
// Nodes with at most one child are returned to the allocator and replaced
// by that child. A node with two children is instead mutated in place to
// carry its in-order successor, which is extracted from the right subtree;
// the successor's former node is the one destroyed.
func (t *Tree[E, I, R]) removeNode(n *Node[E, I]) (*Node[E, I], bool, E) {
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		removed := n.value
		t.freeNode(n)
		return child, true, removed
	}
	removed := n.value
	child, shrank, successor, err := t.removeAt(n.right, 0)
	assert(err == nil, "successor extraction cannot fail on a non-null subtree")
	n.value = successor
	n.right = child
	n, shrank = t.settleRightShrink(n, shrank)
	return n, shrank, removed
}

// settleLeftShrink applies the balance bookkeeping after the left subtree
// of n was substituted, given whether the child shrank in height. It
// returns the settled subtree root and whether the subtree as a whole
// shrank.
//
// After a rebalance the subtree shrank iff the new root ended up perfectly
// balanced; in the double-rotation case the rebalance itself reduces the
// height by one.
func (t *Tree[E, I, R]) settleLeftShrink(n *Node[E, I], childShrank bool) (*Node[E, I], bool) {
	if childShrank {
		n.balance++
	}
	if !childShrank || n.balance == 1 {
		t.update(n)
		return n, false
	}
	if n.balance == 0 {
		t.update(n)
		return n, true
	}
	n = t.rebalanceRightHeavy(n)
	return n, n.balance == 0
}

// settleRightShrink is the mirror of settleLeftShrink.
func (t *Tree[E, I, R]) settleRightShrink(n *Node[E, I], childShrank bool) (*Node[E, I], bool) {
	if childShrank {
		n.balance--
	}
	if !childShrank || n.balance == -1 {
		t.update(n)
		return n, false
	}
	if n.balance == 0 {
		t.update(n)
		return n, true
	}
	n = t.rebalanceLeftHeavy(n)
	return n, n.balance == 0
}
