// pkg/btree/entry.go
package btree

// EntryKind distinguishes the two states an Entry can be in: a key
// already present (Occupied) or absent (Vacant).
type EntryKind int

const (
	Vacant EntryKind = iota
	Occupied
)

// Entry records the result of one lookup for a locate-then-decide
// update. Reading or modifying an Occupied entry uses the recorded
// address directly; OrInsert on a Vacant entry goes through Insert, which
// searches the tree again.
type Entry[K any, V any] struct {
	t    *Tree[K, V]
	key  K
	kind EntryKind
	addr Address
}

// EntryFor locates key and returns an Entry describing whether it is
// already present (Occupied, at addr) or not (Vacant, at the gap where
// it would be inserted).
func (t *Tree[K, V]) EntryFor(key K) *Entry[K, V] {
	loc := t.AddressOf(key)
	kind := Vacant
	if loc.Exact {
		kind = Occupied
	}
	return &Entry[K, V]{t: t, key: key, kind: kind, addr: loc.Address}
}

// Kind reports whether the entry is Vacant or Occupied.
func (e *Entry[K, V]) Kind() EntryKind { return e.kind }

// OrInsert returns the existing value if Occupied, otherwise inserts
// dflt and returns it.
func (e *Entry[K, V]) OrInsert(dflt V) V {
	if e.kind == Occupied {
		n, _ := e.t.s.Get(e.addr.Node)
		return n.Items[e.addr.Offset].Value
	}
	e.t.Insert(e.key, dflt)
	loc := e.t.AddressOf(e.key)
	e.addr = loc.Address
	e.kind = Occupied
	return dflt
}

// OrInsertWith is like OrInsert but only computes the default on the
// Vacant path.
func (e *Entry[K, V]) OrInsertWith(make func() V) V {
	if e.kind == Occupied {
		n, _ := e.t.s.Get(e.addr.Node)
		return n.Items[e.addr.Offset].Value
	}
	return e.OrInsert(make())
}

// AndModify calls fn with the current value if Occupied, leaving the
// entry unchanged otherwise. Returns the entry for chaining.
func (e *Entry[K, V]) AndModify(fn func(*V)) *Entry[K, V] {
	if e.kind != Occupied {
		return e
	}
	e.t.s.GetMut(e.addr.Node, func(n *Node[K, V]) { fn(&n.Items[e.addr.Offset].Value) })
	return e
}
