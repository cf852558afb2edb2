// pkg/btree/remove.go
package btree

import "slabtree/pkg/slab"

// Remove deletes key from the tree, returning its value and true if it
// was present. Removing from an internal node swaps in the in-order
// successor — the leftmost item of the leftmost descendant of the right
// child (the deterministic choice recorded in DESIGN.md) — then removes
// the now-duplicated item from the leaf it came from and rebalances.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	var zero V
	loc := t.AddressOf(key)
	if !loc.Exact {
		return zero, false
	}
	addr := loc.Address
	n, _ := t.s.Get(addr.Node)

	if n.IsLeaf {
		var removed Item[K, V]
		t.s.GetMut(addr.Node, func(x *Node[K, V]) { removed = x.removeItem(addr.Offset) })
		t.count--
		t.rebalance(addr.Node)
		return removed.Value, true
	}

	succAddr := t.NextAddress(addr)
	succNode, _ := t.s.Get(succAddr.Node)
	succItem := succNode.Items[succAddr.Offset]

	var removedVal V
	t.s.GetMut(addr.Node, func(x *Node[K, V]) {
		removedVal = x.Items[addr.Offset].Value
		x.Items[addr.Offset] = succItem
	})
	t.s.GetMut(succAddr.Node, func(x *Node[K, V]) { x.removeItem(succAddr.Offset) })
	t.count--
	t.rebalance(succAddr.Node)
	return removedVal, true
}

// RemoveEntry is Remove but also returns the removed key, for parity with
// callers that want the stored key copy rather than the one they passed in.
func (t *Tree[K, V]) RemoveEntry(key K) (K, V, bool) {
	stored, _, ok := t.GetKeyValue(key)
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	v, _ := t.Remove(key)
	return stored, v, true
}

// rebalance restores the minItems invariant at idx and cascades upward,
// trying the right sibling rotation first, then the left, then a merge,
// in that order. An internal root left with zero items collapses,
// promoting its only remaining child to root; a leaf root left with zero
// items is freed and the tree becomes empty.
func (t *Tree[K, V]) rebalance(idx slab.Index) {
	for {
		n, ok := t.s.Get(idx)
		if !ok {
			return
		}
		if idx == t.root {
			if !n.IsLeaf && n.ItemCount() == 0 {
				newRoot := n.Children[0]
				t.s.Remove(idx)
				t.root = newRoot
				t.s.GetMut(newRoot, func(x *Node[K, V]) { x.Parent = slab.Nowhere })
				t.log.Logf("root replaced: %d -> %d (collapse)", idx, newRoot)
			} else if n.IsLeaf && n.ItemCount() == 0 {
				t.s.Remove(idx)
				t.root = slab.Nowhere
				t.log.Logf("root replaced: %d -> Nowhere (emptied)", idx)
			}
			return
		}
		if n.ItemCount() >= t.minItems() {
			return
		}

		parentIdx := n.Parent
		parent, _ := t.s.Get(parentIdx)
		myOffset := t.offsetInParent(parent, idx)

		if myOffset < len(parent.Children)-1 {
			rightIdx := parent.Children[myOffset+1]
			right, _ := t.s.Get(rightIdx)
			if right.ItemCount() > t.minItems() {
				newLeft, newSep, newRight := rotateLeft(n, parent.Items[myOffset], right)
				t.s.GetMut(idx, func(x *Node[K, V]) { *x = newLeft })
				t.s.GetMut(rightIdx, func(x *Node[K, V]) { *x = newRight })
				t.s.GetMut(parentIdx, func(x *Node[K, V]) { x.Items[myOffset] = newSep })
				if !newLeft.IsLeaf {
					moved := newLeft.Children[len(newLeft.Children)-1]
					t.s.GetMut(moved, func(c *Node[K, V]) { c.Parent = idx })
				}
				return
			}
		}

		if myOffset > 0 {
			leftIdx := parent.Children[myOffset-1]
			left, _ := t.s.Get(leftIdx)
			if left.ItemCount() > t.minItems() {
				newLeft, newSep, newRight := rotateRight(left, parent.Items[myOffset-1], n)
				t.s.GetMut(leftIdx, func(x *Node[K, V]) { *x = newLeft })
				t.s.GetMut(idx, func(x *Node[K, V]) { *x = newRight })
				t.s.GetMut(parentIdx, func(x *Node[K, V]) { x.Items[myOffset-1] = newSep })
				if !newRight.IsLeaf {
					moved := newRight.Children[0]
					t.s.GetMut(moved, func(c *Node[K, V]) { c.Parent = idx })
				}
				return
			}
		}

		if myOffset < len(parent.Children)-1 {
			rightIdx := parent.Children[myOffset+1]
			right, _ := t.s.Get(rightIdx)
			combined := merge(n, parent.Items[myOffset], right)
			t.s.GetMut(idx, func(x *Node[K, V]) { *x = combined })
			t.s.Remove(rightIdx)
			if !combined.IsLeaf {
				t.reparent(idx)
			}
			t.s.GetMut(parentIdx, func(x *Node[K, V]) { x.removeItem(myOffset) })
		} else {
			leftIdx := parent.Children[myOffset-1]
			left, _ := t.s.Get(leftIdx)
			combined := merge(left, parent.Items[myOffset-1], n)
			t.s.GetMut(leftIdx, func(x *Node[K, V]) { *x = combined })
			t.s.Remove(idx)
			if !combined.IsLeaf {
				t.reparent(leftIdx)
			}
			t.s.GetMut(parentIdx, func(x *Node[K, V]) { x.removeItem(myOffset - 1) })
		}
		idx = parentIdx
	}
}

// PopFirst removes and returns the smallest key/value pair.
func (t *Tree[K, V]) PopFirst() (K, V, bool) {
	k, v, ok := t.First()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	t.Remove(k)
	return k, v, true
}

// PopLast removes and returns the largest key/value pair.
func (t *Tree[K, V]) PopLast() (K, V, bool) {
	k, v, ok := t.Last()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	t.Remove(k)
	return k, v, true
}
