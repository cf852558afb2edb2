// Package ordmap provides an ordered key/value container backed by the
// storage-parametric B-tree in pkg/btree, the way pkg/cowbtree's
// versioned_store.go wraps a bare tree engine with the convenience API
// application code actually calls. Unlike the teacher's tree, ordmap
// defaults to owning a private, in-memory slab per instance rather than
// requiring every caller to thread one through.
package ordmap

import (
	"slabtree/pkg/btree"
	"slabtree/pkg/slab"
)

const defaultBranching = 32

// Map is an ordered map from K to V. Iteration, First/Last, and Range
// always proceed in key order.
type Map[K any, V any] struct {
	tree *btree.Tree[K, V]
}

// New creates a Map with a private SliceSlab backing store.
func New[K any, V any](less btree.Less[K]) *Map[K, V] {
	return NewIn[K, V](slab.NewSlice[btree.Node[K, V]](), less)
}

// NewIn creates a Map backed by a caller-supplied slab, letting several
// maps and sets share one arena as multiple containers over a single
// Slab.
func NewIn[K any, V any](s slab.Slab[btree.Node[K, V]], less btree.Less[K]) *Map[K, V] {
	return &Map[K, V]{tree: btree.New[K, V](s, less, defaultBranching)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Insert stores value under key, returning the previous value if any.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) { return m.tree.Insert(key, value) }

// Remove deletes key, returning its value if present.
func (m *Map[K, V]) Remove(key K) (V, bool) { return m.tree.Remove(key) }

// RemoveEntry deletes key, returning the stored key and value if present.
func (m *Map[K, V]) RemoveEntry(key K) (K, V, bool) { return m.tree.RemoveEntry(key) }

// Get returns the value stored for key, if present.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.tree.Get(key) }

// GetMut calls fn with a pointer to the stored value for key, if present,
// allowing in-place mutation without a remove/reinsert round trip.
func (m *Map[K, V]) GetMut(key K, fn func(*V)) bool {
	return m.tree.UpdateInPlace(key, fn)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool { return m.tree.ContainsKey(key) }

// FirstKeyValue returns the smallest key and its value.
func (m *Map[K, V]) FirstKeyValue() (K, V, bool) { return m.tree.First() }

// LastKeyValue returns the largest key and its value.
func (m *Map[K, V]) LastKeyValue() (K, V, bool) { return m.tree.Last() }

// PopFirst removes and returns the smallest entry.
func (m *Map[K, V]) PopFirst() (K, V, bool) { return m.tree.PopFirst() }

// PopLast removes and returns the largest entry.
func (m *Map[K, V]) PopLast() (K, V, bool) { return m.tree.PopLast() }

// Entry returns an Entry for key, for locate-then-decide updates.
func (m *Map[K, V]) Entry(key K) *btree.Entry[K, V] { return m.tree.EntryFor(key) }

// Iter returns a forward iterator over all entries in key order.
func (m *Map[K, V]) Iter() *btree.Iterator[K, V] { return m.tree.Iter() }

// IterReverse returns a backward iterator over all entries.
func (m *Map[K, V]) IterReverse() *btree.ReverseIterator[K, V] { return m.tree.IterReverse() }

// Range returns a forward iterator over [lo, hi).
func (m *Map[K, V]) Range(lo, hi K) *btree.Iterator[K, V] { return m.tree.Range(lo, hi) }

// IterMut calls fn with each key and a pointer to its value, in ascending
// key order.
func (m *Map[K, V]) IterMut(fn func(K, *V)) { m.tree.ForEachMut(fn) }

// RangeMut is IterMut restricted to [lo, hi).
func (m *Map[K, V]) RangeMut(lo, hi K, fn func(K, *V)) { m.tree.RangeMut(lo, hi, fn) }

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K { return m.tree.Keys() }

// Values returns every value in ascending key order.
func (m *Map[K, V]) Values() []V { return m.tree.Values() }

// ValuesMut calls fn with a pointer to each value in ascending key order.
func (m *Map[K, V]) ValuesMut(fn func(*V)) { m.tree.ValuesMut(fn) }

// DrainFilter removes every entry for which keep returns false.
func (m *Map[K, V]) DrainFilter(keep func(K, V) bool, removed func(K, V)) int {
	return m.tree.DrainFilter(keep, removed)
}

// Append moves every entry from other into m; other must share m's slab.
func (m *Map[K, V]) Append(other *Map[K, V]) error { return m.tree.Append(other.tree) }

// SplitOff removes every entry with key >= key from m and returns a new
// Map holding them, sharing m's slab.
func (m *Map[K, V]) SplitOff(key K) *Map[K, V] {
	return &Map[K, V]{tree: m.tree.SplitOff(key)}
}

// Validate checks the backing tree's structural invariants.
func (m *Map[K, V]) Validate() error { return m.tree.Validate() }
