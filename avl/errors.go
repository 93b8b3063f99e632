package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("avl: index out of bounds")
	// ErrCorruptTree is reported by the invariant checkers when a structural
	// invariant does not hold.
	ErrCorruptTree = errors.New("avl: tree invariant violated")
)
