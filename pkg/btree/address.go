// pkg/btree/address.go
package btree

import "slabtree/pkg/slab"

// Address names a position within a tree: offset n at node_id denotes the
// "after-last" gap between the last item and the right child. Addresses
// are short-lived cursors — not stable across mutation of the tree they
// were drawn from.
type Address struct {
	Node   slab.Index
	Offset int
}

func (a Address) isNowhere() bool { return a.Node == slab.Nowhere }

// Location is the result of AddressOf: either the key was found at Exact,
// or Gap names where it would be inserted.
type Location struct {
	Address Address
	Exact   bool
}

func (t *Tree[K, V]) leftmostLeafOf(start slab.Index) slab.Index {
	idx := start
	for {
		n, ok := t.s.Get(idx)
		if !ok || n.IsLeaf {
			return idx
		}
		idx = n.Children[0]
	}
}

func (t *Tree[K, V]) rightmostLeafOf(start slab.Index) slab.Index {
	idx := start
	for {
		n, ok := t.s.Get(idx)
		if !ok || n.IsLeaf {
			return idx
		}
		idx = n.Children[len(n.Children)-1]
	}
}

// FirstAddress returns the address of the first item in the tree, or the
// zero Address (Node == slab.Nowhere) if the tree is empty.
func (t *Tree[K, V]) FirstAddress() Address {
	if t.root == slab.Nowhere {
		return Address{}
	}
	leaf := t.leftmostLeafOf(t.root)
	return Address{Node: leaf, Offset: 0}
}

// PastEndAddress returns the address just past the last item: the
// rightmost leaf at offset == its item count.
func (t *Tree[K, V]) PastEndAddress() Address {
	if t.root == slab.Nowhere {
		return Address{}
	}
	leaf := t.rightmostLeafOf(t.root)
	n, _ := t.s.Get(leaf)
	return Address{Node: leaf, Offset: len(n.Items)}
}

// NextAddress advances addr to the next item in ascending order: descend
// into the right child of an internal offset, step forward within a
// leaf, or ascend until an ancestor offset is not after-last.
func (t *Tree[K, V]) NextAddress(addr Address) Address {
	n, ok := t.s.Get(addr.Node)
	if !ok {
		return Address{}
	}
	if !n.IsLeaf {
		return Address{Node: t.leftmostLeafOf(n.Children[addr.Offset+1]), Offset: 0}
	}
	if addr.Offset+1 < len(n.Items) {
		return Address{Node: addr.Node, Offset: addr.Offset + 1}
	}
	// ascend
	child := addr.Node
	parent := n.Parent
	for parent != slab.Nowhere {
		pn, _ := t.s.Get(parent)
		offset := t.offsetInParent(pn, child)
		if offset < pn.ItemCount() {
			return Address{Node: parent, Offset: offset}
		}
		child = parent
		parent = pn.Parent
	}
	return t.PastEndAddress()
}

// PreviousAddress is the symmetric counterpart of NextAddress.
func (t *Tree[K, V]) PreviousAddress(addr Address) Address {
	n, ok := t.s.Get(addr.Node)
	if !ok {
		return Address{}
	}
	if !n.IsLeaf {
		leaf := t.rightmostLeafOf(n.Children[addr.Offset])
		ln, _ := t.s.Get(leaf)
		return Address{Node: leaf, Offset: len(ln.Items) - 1}
	}
	if addr.Offset > 0 {
		return Address{Node: addr.Node, Offset: addr.Offset - 1}
	}
	child := addr.Node
	parent := n.Parent
	for parent != slab.Nowhere {
		pn, _ := t.s.Get(parent)
		offset := t.offsetInParent(pn, child)
		if offset > 0 {
			return Address{Node: parent, Offset: offset - 1}
		}
		child = parent
		parent = pn.Parent
	}
	return t.FirstAddress()
}

func (t *Tree[K, V]) offsetInParent(parent Node[K, V], child slab.Index) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddressOf locates key in the tree via top-down binary search, returning
// Exact with the item's address when found, or Gap with the address at
// which key would be inserted otherwise.
func (t *Tree[K, V]) AddressOf(key K) Location {
	idx := t.root
	for idx != slab.Nowhere {
		n, ok := t.s.Get(idx)
		if !ok {
			break
		}
		pos, exact := t.search(n, key)
		if exact {
			return Location{Address: Address{Node: idx, Offset: pos}, Exact: true}
		}
		if n.IsLeaf {
			return Location{Address: Address{Node: idx, Offset: pos}, Exact: false}
		}
		idx = n.Children[pos]
	}
	return Location{}
}

// search returns the offset at which key resides (if present) or should
// be inserted, via binary search using the tree's comparator.
func (t *Tree[K, V]) search(n Node[K, V], key K) (offset int, exact bool) {
	lo, hi := 0, len(n.Items)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case t.less(key, n.Items[mid].Key):
			hi = mid
		case t.less(n.Items[mid].Key, key):
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}
