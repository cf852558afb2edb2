// pkg/btree/errors.go
package btree

import "errors"

// Sentinel errors follow the teacher's var-block-of-errors.New convention
// used throughout pkg/pager and pkg/btree (ErrPageNotFound, ErrNodeFull,
// ErrKeyNotFound, ...).
var (
	// ErrKeyMismatch is returned by InsertAt when the caller-supplied
	// Address does not sit where key's ordering requires.
	ErrKeyMismatch = errors.New("btree: address does not match key order")

	// ErrInvariantViolation is returned by Validate when one of the
	// tree's structural invariants does not hold. It is diagnostic only;
	// normal operations never raise it.
	ErrInvariantViolation = errors.New("btree: invariant violation")

	// ErrEmptyTree names the empty-tree condition. First, Last, PopFirst
	// and PopLast report an empty tree through their boolean result and
	// do not return this error.
	ErrEmptyTree = errors.New("btree: tree is empty")

	// ErrDifferentSlab is returned by Append when the two trees do not
	// share a backing slab.
	ErrDifferentSlab = errors.New("btree: trees do not share a slab")
)
