/*
Package avltree offers ordered and indexable collection types backed by a
single order-statistic AVL tree engine.

Collections

The package provides four collections, which can be used as drop-in
replacements for the usual suspects:

  - List: an indexable sequence (slice-like, but with O(log n) insertion
    and removal at arbitrary positions)
  - Set: an ordered set with duplicates suppressed
  - Bag: an ordered multiset
  - Map: an ordered key/value map, iterated in key order

All four are thin configurations of the same balanced-tree engine in the
avl subpackage: one rotation algebra, one size bookkeeping, one aggregation
protocol. Clients needing range aggregation, custom merge policies or
custom node allocation should drop down to package avl directly.

Collections are not safe for concurrent mutation; higher layers must
synchronize if they share a collection between goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package avltree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
