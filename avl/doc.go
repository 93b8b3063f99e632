/*
Package avl provides an order-statistic AVL tree parameterized by element
type, ordering, merge policy, monoidal range aggregate, and node allocator.

The tree is the common substrate for the collection types of the parent
package (List, Set, Bag, Map): a single balanced-tree engine generates all
of them through its configuration axes. Elements are addressable both by
position (every node caches its subtree size) and, after ordered
insertions, by the configured strict weak order.

Each node additionally caches a monoidal aggregate of its subtree, so that
arbitrary index ranges can be summarized in O(log n). Aggregation is
threaded through every rotation and every structural mutation; see
Aggregator for the protocol.

The package is intentionally not a ready-made container. It is the engine
underneath one: mutating operations are sequential, iterators are not
stable across mutations, and concurrent mutation is undefined. Clients
wanting a plain collection should use the parent package.

Current feature set:
  - positional access, insert, remove, replace (size-indexed),
  - ordered insert, remove, replace (comparison-guided),
  - pluggable merge policies that can absorb insertions in place,
  - monoidal range aggregation with per-node cached intermediates,
  - pluggable node allocation (heap or freelist recycling),
  - structural invariant checking for tests and debugging.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
