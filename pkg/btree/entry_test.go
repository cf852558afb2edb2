// pkg/btree/entry_test.go
package btree

import "testing"

func TestEntryOrInsertOnVacant(t *testing.T) {
	tr := newIntTree(4)
	e := tr.EntryFor(1)
	if e.Kind() != Vacant {
		t.Fatal("expected Vacant entry")
	}
	v := e.OrInsert("default")
	if v != "default" {
		t.Fatalf("OrInsert = %q, want default", v)
	}
	got, _ := tr.Get(1)
	if got != "default" {
		t.Fatalf("Get(1) = %q, want default", got)
	}
}

func TestEntryOrInsertOnOccupiedKeepsValue(t *testing.T) {
	tr := newIntTree(4)
	tr.Insert(1, "existing")
	e := tr.EntryFor(1)
	if e.Kind() != Occupied {
		t.Fatal("expected Occupied entry")
	}
	v := e.OrInsert("default")
	if v != "existing" {
		t.Fatalf("OrInsert on occupied = %q, want existing", v)
	}
}

func TestEntryAndModify(t *testing.T) {
	tr := newIntTree(4)
	tr.Insert(1, "a")
	tr.EntryFor(1).AndModify(func(v *string) { *v = *v + "b" })
	got, _ := tr.Get(1)
	if got != "ab" {
		t.Fatalf("Get(1) = %q, want ab", got)
	}
	// AndModify on a Vacant entry is a no-op.
	tr.EntryFor(2).AndModify(func(v *string) { *v = "unreachable" })
	if tr.ContainsKey(2) {
		t.Fatal("AndModify should not insert on Vacant")
	}
}
