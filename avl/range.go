package avl

// Range aggregates the elements in the half-open position interval [from,
// to) and returns the postprocessed result. Valid bounds satisfy
// 0 <= from <= to <= Size; the empty interval yields the postprocessed
// zero intermediate.
//
// Aggregation combines cached subtree intermediates wherever an interval
// covers a whole subtree, so a query touches O(log n) nodes.
func (t *Tree[E, I, R]) Range(from, to int) (R, error) {
	var zero R
	if from < 0 || to < from || to > t.Size() {
		return zero, ErrIndexOutOfBounds
	}
	return t.cfg.Agg.Postprocess(t.rangeOf(t.root, from, to)), nil
}

// Aggregate returns the postprocessed aggregate of the whole tree.
func (t *Tree[E, I, R]) Aggregate() R {
	if t == nil || t.root == nil {
		return t.cfg.Agg.Postprocess(t.cfg.Agg.Zero())
	}
	return t.cfg.Agg.Postprocess(t.root.subrange)
}

// rangeOf aggregates positions [from, to) within the subtree n, combining
// strictly left to right. Bounds are clamped by the callers.
func (t *Tree[E, I, R]) rangeOf(n *Node[E, I], from, to int) I {
	if n == nil || from >= to {
		return t.cfg.Agg.Zero()
	}
	if from <= 0 && to >= n.size {
		return n.subrange
	}
	ls := nodeSize(n.left)
	acc := t.cfg.Agg.Zero()
	if from < ls {
		acc = t.cfg.Agg.Combine(acc, t.rangeOf(n.left, from, min(to, ls)))
	}
	if from <= ls && to > ls {
		acc = t.cfg.Agg.Combine(acc, t.cfg.Agg.Preprocess(n.value))
	}
	if to > ls+1 {
		acc = t.cfg.Agg.Combine(acc, t.rangeOf(n.right, max(from-ls-1, 0), to-ls-1))
	}
	return acc
}
