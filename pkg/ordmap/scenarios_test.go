// pkg/ordmap/scenarios_test.go
package ordmap

import (
	"strings"
	"testing"

	"slabtree/pkg/btree"
	"slabtree/pkg/slab"
)

func TestScenarioMovieTitles(t *testing.T) {
	m := New[string, string](strLess)
	m.Insert("Office Space", "A")
	m.Insert("Pulp Fiction", "B")
	m.Insert("The Godfather", "C")
	m.Insert("The Blues Brothers", "D")

	if m.ContainsKey("Les Misérables") {
		t.Fatal("Les Misérables should not be present")
	}
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}
	v, ok := m.Remove("The Blues Brothers")
	if !ok || v != "D" {
		t.Fatalf("Remove(The Blues Brothers) = %q, %v", v, ok)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	keys := m.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not lexicographically ascending: %v", keys)
		}
	}
}

func TestScenarioInsertSequenceValidatesAtEverStep(t *testing.T) {
	m := New[int, struct{}](func(a, b int) bool { return a < b })
	seq := []int{5, 9, 3, 7, 1, 8, 2, 6, 4, 0}
	for _, k := range seq {
		m.Insert(k, struct{}{})
		if err := m.Validate(); err != nil {
			t.Fatalf("Validate() after inserting %d: %v", k, err)
		}
	}
	got := m.Keys()
	for i := 0; i < 10; i++ {
		if got[i] != i {
			t.Fatalf("final order[%d] = %d, want %d", i, got[i], i)
		}
	}
}

func TestScenarioTwoSetsSharingASlab(t *testing.T) {
	shared := slab.NewSlice[btree.Node[string, struct{}]]()
	fooBars := NewIn[string, struct{}](shared, strLess)
	for _, k := range []string{"foo", "bar", "baz", "qux"} {
		fooBars.Insert(k, struct{}{})
	}
	alphabeticals := NewIn[string, struct{}](shared, strLess)
	for _, k := range []string{"abc", "def", "xyz"} {
		alphabeticals.Insert(k, struct{}{})
	}

	fooBars.Remove("baz")
	alphabeticals.Remove("def")

	if got := fooBars.Keys(); !equalStrings(got, []string{"bar", "foo", "qux"}) {
		t.Fatalf("fooBars.Keys() = %v, want [bar foo qux]", got)
	}
	if got := alphabeticals.Keys(); !equalStrings(got, []string{"abc", "xyz"}) {
		t.Fatalf("alphabeticals.Keys() = %v, want [abc xyz]", got)
	}
}

func TestScenarioDrainOnPredicate(t *testing.T) {
	m := New[string, struct{}](strLess)
	for _, k := range []string{"abc", "def", "xyz", "aardvark"} {
		m.Insert(k, struct{}{})
	}
	var drained []string
	m.DrainFilter(func(k string, _ struct{}) bool {
		return !strings.HasPrefix(k, "a")
	}, func(k string, _ struct{}) {
		drained = append(drained, k)
	})
	if !equalStrings(drained, []string{"aardvark", "abc"}) {
		t.Fatalf("drained = %v, want [aardvark abc]", drained)
	}
	if got := m.Keys(); !equalStrings(got, []string{"def", "xyz"}) {
		t.Fatalf("remaining = %v, want [def xyz]", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
