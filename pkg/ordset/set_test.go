// pkg/ordset/set_test.go
package ordset

import (
	"testing"

	"slabtree/pkg/btree"
	"slabtree/pkg/slab"
)

func intLess(a, b int) bool { return a < b }

func TestSetInsertContainsRemove(t *testing.T) {
	s := New[int](intLess)
	if !s.Insert(5) {
		t.Fatal("first Insert(5) should report new")
	}
	if s.Insert(5) {
		t.Fatal("second Insert(5) should report duplicate")
	}
	if !s.Contains(5) {
		t.Fatal("Contains(5) should be true")
	}
	if !s.Remove(5) {
		t.Fatal("Remove(5) should report existed")
	}
	if s.Contains(5) {
		t.Fatal("Contains(5) should be false after Remove")
	}
}

func TestSetOrderedElements(t *testing.T) {
	s := New[int](intLess)
	for _, v := range []int{5, 3, 9, 1, 7} {
		s.Insert(v)
	}
	got := s.Elements()
	want := []int{1, 3, 5, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Elements()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func buildSet(vals ...int) *Set[int] {
	s := New[int](intLess)
	for _, v := range vals {
		s.Insert(v)
	}
	return s
}

// drainInts exhausts a lazy Next()-shaped iterator into a slice for
// comparison; production callers are expected to stream it instead.
func drainInts(it interface{ Next() (int, bool) }) []int {
	var out []int
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, k)
	}
	return out
}

func TestSetUnion(t *testing.T) {
	a := buildSet(1, 2, 3)
	b := buildSet(3, 4, 5)
	want := []int{1, 2, 3, 4, 5}
	got := drainInts(Union(a, b, intLess))
	if len(got) != len(want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Union[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetIntersection(t *testing.T) {
	a := buildSet(1, 2, 3, 4)
	b := buildSet(3, 4, 5, 6)
	got := drainInts(Intersection(a, b, intLess))
	want := []int{3, 4}
	if len(got) != len(want) || got[0] != 3 || got[1] != 4 {
		t.Fatalf("Intersection = %v, want %v", got, want)
	}
}

func TestSetDifference(t *testing.T) {
	a := buildSet(1, 2, 3, 4)
	b := buildSet(3, 4, 5, 6)
	got := drainInts(Difference(a, b, intLess))
	want := []int{1, 2}
	if len(got) != len(want) || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Difference = %v, want %v", got, want)
	}
}

func TestSetSymmetricDifference(t *testing.T) {
	a := buildSet(1, 2, 3, 4)
	b := buildSet(3, 4, 5, 6)
	got := drainInts(SymmetricDifference(a, b, intLess))
	want := []int{1, 2, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("SymmetricDifference = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SymmetricDifference[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetSharedSlab(t *testing.T) {
	// Two sets sharing one slab should not see each other's elements.
	s := slab.NewSlice[btree.Node[int, void]]()
	a := NewIn[int](s, intLess)
	b := NewIn[int](s, intLess)
	a.Insert(1)
	b.Insert(2)
	if a.Contains(2) || b.Contains(1) {
		t.Fatal("sets sharing a slab must not see each other's elements")
	}
}
