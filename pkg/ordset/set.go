// Package ordset provides an ordered set built directly on top of
// ordmap, the way pkg/cowbtree's register.go projects a tree of
// entries onto a narrower public type. A Set[K] is an ordmap.Map[K,
// struct{}] under the hood; every element carries no payload.
package ordset

import (
	"slabtree/pkg/btree"
	"slabtree/pkg/ordmap"
	"slabtree/pkg/slab"
)

type void = struct{}

var present void

// Set is an ordered collection of unique, totally ordered elements.
type Set[K any] struct {
	m *ordmap.Map[K, void]
}

// New creates a Set with a private backing slab.
func New[K any](less btree.Less[K]) *Set[K] {
	return &Set[K]{m: ordmap.New[K, void](less)}
}

// NewIn creates a Set backed by a caller-supplied slab.
func NewIn[K any](s slab.Slab[btree.Node[K, void]], less btree.Less[K]) *Set[K] {
	return &Set[K]{m: ordmap.NewIn[K, void](s, less)}
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set holds no elements.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Clear removes every element.
func (s *Set[K]) Clear() { s.m.Clear() }

// Insert adds key, reporting whether it was newly inserted.
func (s *Set[K]) Insert(key K) bool {
	_, existed := s.m.Insert(key, present)
	return !existed
}

// Remove deletes key, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, existed := s.m.Remove(key)
	return existed
}

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool { return s.m.ContainsKey(key) }

// First returns the smallest element.
func (s *Set[K]) First() (K, bool) {
	k, _, ok := s.m.FirstKeyValue()
	return k, ok
}

// Last returns the largest element.
func (s *Set[K]) Last() (K, bool) {
	k, _, ok := s.m.LastKeyValue()
	return k, ok
}

// PopFirst removes and returns the smallest element.
func (s *Set[K]) PopFirst() (K, bool) {
	k, _, ok := s.m.PopFirst()
	return k, ok
}

// PopLast removes and returns the largest element.
func (s *Set[K]) PopLast() (K, bool) {
	k, _, ok := s.m.PopLast()
	return k, ok
}

// Elements returns every element in ascending order.
func (s *Set[K]) Elements() []K { return s.m.Keys() }

// setIterator adapts a Map iterator down to single-key Next results.
type setIterator[K any] struct {
	inner *btree.Iterator[K, void]
}

func (it *setIterator[K]) Next() (K, bool) {
	k, _, ok := it.inner.Next()
	return k, ok
}

// Iter returns a forward iterator over all elements.
func (s *Set[K]) Iter() *setIterator[K] { return &setIterator[K]{inner: s.m.Iter()} }

// Range returns a forward iterator over [lo, hi).
func (s *Set[K]) Range(lo, hi K) *setIterator[K] { return &setIterator[K]{inner: s.m.Range(lo, hi)} }

// Validate checks the backing tree's structural invariants.
func (s *Set[K]) Validate() error { return s.m.Validate() }

// setMergeIterator is the shared two-cursor walk every set-algebra
// iterator below drives: both sides are pre-loaded with their first
// element, then advanced in lock-step by whichever side's comparison
// result calls for it. Re-loading happens through pullA and pullB on
// this shared struct; each wrapper's Next only decides which to call.
type setMergeIterator[K any] struct {
	less     btree.Less[K]
	a, b     *setIterator[K]
	av, bv   K
	aok, bok bool
}

func newSetMergeIterator[K any](less btree.Less[K], a, b *setIterator[K]) setMergeIterator[K] {
	m := setMergeIterator[K]{less: less, a: a, b: b}
	m.av, m.aok = a.Next()
	m.bv, m.bok = b.Next()
	return m
}

func (m *setMergeIterator[K]) pullA() { m.av, m.aok = m.a.Next() }
func (m *setMergeIterator[K]) pullB() { m.bv, m.bok = m.b.Next() }

// unionIterator walks both cursors in lock-step, yielding the smaller
// head each step and advancing both sides when they agree.
type unionIterator[K any] struct {
	m setMergeIterator[K]
}

// Union returns a lazy iterator over every element present in s or
// other, walking both sets' cursors in lock-step rather than
// materializing a new set.
func Union[K any](s, other *Set[K], less btree.Less[K]) *unionIterator[K] {
	return &unionIterator[K]{m: newSetMergeIterator(less, s.Iter(), other.Iter())}
}

func (it *unionIterator[K]) Next() (K, bool) {
	m := &it.m
	switch {
	case !m.aok && !m.bok:
		var zero K
		return zero, false
	case !m.aok:
		v := m.bv
		m.pullB()
		return v, true
	case !m.bok:
		v := m.av
		m.pullA()
		return v, true
	case m.less(m.av, m.bv):
		v := m.av
		m.pullA()
		return v, true
	case m.less(m.bv, m.av):
		v := m.bv
		m.pullB()
		return v, true
	default:
		v := m.av
		m.pullA()
		m.pullB()
		return v, true
	}
}

// intersectionIterator yields only heads that compare equal, skipping
// whichever side is behind until the cursors meet.
type intersectionIterator[K any] struct {
	m setMergeIterator[K]
}

// Intersection returns a lazy iterator over every element present in
// both s and other.
func Intersection[K any](s, other *Set[K], less btree.Less[K]) *intersectionIterator[K] {
	return &intersectionIterator[K]{m: newSetMergeIterator(less, s.Iter(), other.Iter())}
}

func (it *intersectionIterator[K]) Next() (K, bool) {
	m := &it.m
	for m.aok && m.bok {
		switch {
		case m.less(m.av, m.bv):
			m.pullA()
		case m.less(m.bv, m.av):
			m.pullB()
		default:
			v := m.av
			m.pullA()
			m.pullB()
			return v, true
		}
	}
	var zero K
	return zero, false
}

// differenceIterator yields heads from a that have no matching head in
// b, skipping b ahead and dropping equal pairs from both sides.
type differenceIterator[K any] struct {
	m setMergeIterator[K]
}

// Difference returns a lazy iterator over every element of s not
// present in other.
func Difference[K any](s, other *Set[K], less btree.Less[K]) *differenceIterator[K] {
	return &differenceIterator[K]{m: newSetMergeIterator(less, s.Iter(), other.Iter())}
}

func (it *differenceIterator[K]) Next() (K, bool) {
	m := &it.m
	for m.aok {
		switch {
		case !m.bok || m.less(m.av, m.bv):
			v := m.av
			m.pullA()
			return v, true
		case m.less(m.bv, m.av):
			m.pullB()
		default:
			m.pullA()
			m.pullB()
		}
	}
	var zero K
	return zero, false
}

// symmetricDifferenceIterator yields whichever head is behind at each
// step, dropping pairs that compare equal.
type symmetricDifferenceIterator[K any] struct {
	m setMergeIterator[K]
}

// SymmetricDifference returns a lazy iterator over every element
// present in exactly one of s and other.
func SymmetricDifference[K any](s, other *Set[K], less btree.Less[K]) *symmetricDifferenceIterator[K] {
	return &symmetricDifferenceIterator[K]{m: newSetMergeIterator(less, s.Iter(), other.Iter())}
}

func (it *symmetricDifferenceIterator[K]) Next() (K, bool) {
	m := &it.m
	for m.aok || m.bok {
		switch {
		case !m.bok || (m.aok && m.less(m.av, m.bv)):
			v := m.av
			m.pullA()
			return v, true
		case !m.aok || m.less(m.bv, m.av):
			v := m.bv
			m.pullB()
			return v, true
		default:
			m.pullA()
			m.pullB()
		}
	}
	var zero K
	return zero, false
}
