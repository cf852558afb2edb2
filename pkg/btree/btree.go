// pkg/btree/btree.go
package btree

import "slabtree/pkg/slab"

// Less is the caller-supplied total order over K: ordering is the only
// requirement a key type must satisfy. Modeled on the corpus's
// comparator-function idiom (btree.LessFunc[V] in haraldrudell-parl/pmaps)
// rather than requiring K to implement an ordering method, so K can be
// any type, including ones the caller doesn't control.
type Less[K any] func(a, b K) bool

// Tree is the storage-parametric B-tree engine: a handle owning a borrow
// of a Slab, the root index (or slab.Nowhere when empty), and the item
// count.
type Tree[K any, V any] struct {
	s         slab.Slab[Node[K, V]]
	less      Less[K]
	branching int // M, fixed at construction (see SPEC_FULL.md §3 on Go's lack of const generics)
	root      slab.Index
	count     int
	log       Logger
}

// New constructs an empty tree bound to s with branching factor m (must
// be >= 4) and comparator less.
func New[K any, V any](s slab.Slab[Node[K, V]], less Less[K], m int) *Tree[K, V] {
	if m < 4 {
		m = 4
	}
	s.Bind()
	t := &Tree[K, V]{
		s:         s,
		less:      less,
		branching: m,
		root:      slab.Nowhere,
		log:       noopLogger{},
	}
	t.log.Logf("tree created: branching=%d", m)
	return t
}

// SetLogger installs a diagnostic sink; pass nil to go back to silent.
func (t *Tree[K, V]) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	t.log = l
}

func (t *Tree[K, V]) maxItems() int { return t.branching - 1 }
func (t *Tree[K, V]) minItems() int { return (t.branching+1)/2 - 1 }

// Len reports the number of key/value pairs in the tree.
func (t *Tree[K, V]) Len() int { return t.count }

// IsEmpty reports whether the tree holds no items.
func (t *Tree[K, V]) IsEmpty() bool { return t.count == 0 }

// Get returns the value stored for key, if present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	loc := t.AddressOf(key)
	var zero V
	if !loc.Exact {
		return zero, false
	}
	n, ok := t.s.Get(loc.Address.Node)
	if !ok {
		return zero, false
	}
	return n.Items[loc.Address.Offset].Value, true
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	return t.AddressOf(key).Exact
}

// UpdateInPlace calls fn with a pointer to the stored value for key, if
// present, mutating it in the slab without a remove/reinsert round trip.
// Reports whether key was found.
func (t *Tree[K, V]) UpdateInPlace(key K, fn func(*V)) bool {
	loc := t.AddressOf(key)
	if !loc.Exact {
		return false
	}
	t.s.GetMut(loc.Address.Node, func(n *Node[K, V]) { fn(&n.Items[loc.Address.Offset].Value) })
	return true
}

// GetKeyValue returns the stored key and value for key, if present. The
// returned key is the stored copy (useful when K carries data beyond
// what participates in comparison).
func (t *Tree[K, V]) GetKeyValue(key K) (K, V, bool) {
	loc := t.AddressOf(key)
	var zeroK K
	var zeroV V
	if !loc.Exact {
		return zeroK, zeroV, false
	}
	n, _ := t.s.Get(loc.Address.Node)
	item := n.Items[loc.Address.Offset]
	return item.Key, item.Value, true
}

// First returns the smallest key and its value.
func (t *Tree[K, V]) First() (K, V, bool) {
	var zeroK K
	var zeroV V
	if t.IsEmpty() {
		return zeroK, zeroV, false
	}
	addr := t.FirstAddress()
	n, _ := t.s.Get(addr.Node)
	item := n.Items[addr.Offset]
	return item.Key, item.Value, true
}

// Last returns the largest key and its value.
func (t *Tree[K, V]) Last() (K, V, bool) {
	var zeroK K
	var zeroV V
	if t.IsEmpty() {
		return zeroK, zeroV, false
	}
	leaf := t.rightmostLeafOf(t.root)
	n, _ := t.s.Get(leaf)
	item := n.Items[len(n.Items)-1]
	return item.Key, item.Value, true
}

// Clear empties the tree. It first tries the slab's fast bulk reset and
// falls back to walking and removing every reachable node when the slab
// refuses (a shared slab other trees still use).
func (t *Tree[K, V]) Clear() {
	if t.s.ClearFast() {
		t.root = slab.Nowhere
		t.count = 0
		return
	}
	t.walkRemove(t.root)
	t.root = slab.Nowhere
	t.count = 0
}

func (t *Tree[K, V]) walkRemove(idx slab.Index) {
	if idx == slab.Nowhere {
		return
	}
	n, ok := t.s.Remove(idx)
	if !ok {
		return
	}
	if !n.IsLeaf {
		for _, c := range n.Children {
			t.walkRemove(c)
		}
	}
}

// reparent rewrites Parent on every direct child of parent to point back
// at parent, used after any structural change (split/merge/rotate/new
// root) that moves children between nodes.
func (t *Tree[K, V]) reparent(parent slab.Index) {
	n, ok := t.s.Get(parent)
	if !ok || n.IsLeaf {
		return
	}
	for _, c := range n.Children {
		t.s.GetMut(c, func(ch *Node[K, V]) { ch.Parent = parent })
	}
}
