package avl

// Node is a tree node. Nodes are owned exclusively by their parent (or by
// the tree, for the root); allocators traffic in nodes but must not retain
// references to nodes handed back to the tree.
type Node[E, I any] struct {
	left, right *Node[E, I]
	value       E
	// size is the number of nodes in the subtree rooted here, >= 1.
	size int
	// balance is height(right) - height(left); in {-1, 0, +1} outside an
	// in-flight mutation, transiently +-2 before a rebalance.
	balance int8
	// subrange caches the aggregate of the subtree rooted here.
	subrange I
}

// Value returns the element stored in the node.
func (n *Node[E, I]) Value() E {
	return n.value
}

// nodeSize treats the null subtree as a first-class value of size 0.
func nodeSize[E, I any](n *Node[E, I]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// update recomputes size and subrange of n from its children and its own
// element. It reads only the children's cached fields and does not rotate.
// Combination order is left subrange, own element, right subrange.
func (t *Tree[E, I, R]) update(n *Node[E, I]) {
	size := 1
	sub := t.cfg.Agg.Preprocess(n.value)
	if n.left != nil {
		size += n.left.size
		sub = t.cfg.Agg.Combine(n.left.subrange, sub)
	}
	if n.right != nil {
		size += n.right.size
		sub = t.cfg.Agg.Combine(sub, n.right.subrange)
	}
	n.size = size
	n.subrange = sub
}

// allocNode materializes a fresh leaf for v through the configured
// allocator, re-initializing every field.
func (t *Tree[E, I, R]) allocNode(v E) *Node[E, I] {
	n := t.cfg.Alloc.NewNode()
	assert(n != nil, "allocator returned nil node")
	n.left, n.right = nil, nil
	n.value = v
	n.size = 1
	n.balance = 0
	n.subrange = t.cfg.Agg.Preprocess(v)
	return n
}

// freeNode clears n and returns it to the allocator.
func (t *Tree[E, I, R]) freeNode(n *Node[E, I]) {
	var zeroE E
	var zeroI I
	n.left, n.right = nil, nil
	n.value = zeroE
	n.subrange = zeroI
	n.size = 0
	n.balance = 0
	t.cfg.Alloc.FreeNode(n)
}
