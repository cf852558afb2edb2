// pkg/btree/insert.go
package btree

import "slabtree/pkg/slab"

// Insert places key/value into the tree, returning the previous value and
// true if key was already present (matching the teacher's Insert-returns-
// old-value convention in pkg/cowbtree). Descends recursively, splitting
// any node that becomes overfull on the way back up.
func (t *Tree[K, V]) Insert(key K, value V) (V, bool) {
	var zero V
	if t.root == slab.Nowhere {
		leaf := newLeaf[K, V]()
		leaf.InsertItem(0, key, value, slab.Nowhere)
		idx, err := t.s.Insert(leaf)
		if err != nil {
			return zero, false
		}
		t.root = idx
		t.count = 1
		return zero, false
	}

	promoted, rightIdx, oldVal, replaced := t.insertInto(t.root, key, value)
	if replaced {
		return oldVal, true
	}
	if promoted != nil {
		oldRoot := t.root
		newRoot := Node[K, V]{
			IsLeaf:   false,
			Parent:   slab.Nowhere,
			Items:    []Item[K, V]{*promoted},
			Children: []slab.Index{t.root, rightIdx},
		}
		rootIdx, err := t.s.Insert(newRoot)
		if err == nil {
			t.s.GetMut(t.root, func(n *Node[K, V]) { n.Parent = rootIdx })
			t.s.GetMut(rightIdx, func(n *Node[K, V]) { n.Parent = rootIdx })
			t.root = rootIdx
			t.log.Logf("root replaced: %d -> %d (split)", oldRoot, rootIdx)
		}
	}
	return zero, false
}

// insertInto recursively descends to the leaf that should hold key,
// inserts or replaces, and propagates any split upward. A non-nil
// promoted item means idx's node split and the caller (idx's parent, or
// Insert for the root) must absorb the promoted item and newRight child.
func (t *Tree[K, V]) insertInto(idx slab.Index, key K, value V) (promoted *Item[K, V], newRight slab.Index, oldVal V, replaced bool) {
	n, _ := t.s.Get(idx)
	pos, exact := t.search(n, key)

	if exact {
		t.s.GetMut(idx, func(x *Node[K, V]) {
			oldVal = x.Items[pos].Value
			x.Items[pos].Value = value
		})
		return nil, slab.Nowhere, oldVal, true
	}

	if n.IsLeaf {
		t.s.GetMut(idx, func(x *Node[K, V]) { x.InsertItem(pos, key, value, slab.Nowhere) })
		t.count++
		return t.splitIfOverfull(idx)
	}

	childIdx := n.Children[pos]
	childPromoted, childRight, ov, repl := t.insertInto(childIdx, key, value)
	if repl {
		return nil, slab.Nowhere, ov, true
	}
	if childPromoted == nil {
		var zero V
		return nil, slab.Nowhere, zero, false
	}

	t.s.GetMut(idx, func(x *Node[K, V]) { x.InsertItem(pos, childPromoted.Key, childPromoted.Value, childRight) })
	t.s.GetMut(childRight, func(x *Node[K, V]) { x.Parent = idx })
	return t.splitIfOverfull(idx)
}

// splitIfOverfull splits idx's node when it has grown past the tree's
// capacity, returning the promoted median and the new right sibling's
// index so the caller can thread them up a level.
func (t *Tree[K, V]) splitIfOverfull(idx slab.Index) (*Item[K, V], slab.Index, V, bool) {
	var zero V
	n, _ := t.s.Get(idx)
	if n.ItemCount() <= t.maxItems() {
		return nil, slab.Nowhere, zero, false
	}

	medianItem, right := n.split()
	t.s.GetMut(idx, func(x *Node[K, V]) { *x = n })

	rightIdx, err := t.s.Insert(right)
	if err != nil {
		// Exhaustion mid-split: roll the left half back to its pre-split
		// shape so the tree is left structurally intact.
		restored, _ := t.s.Get(idx)
		restored.Items = append(restored.Items, medianItem)
		restored.Items = append(restored.Items, right.Items...)
		if !right.IsLeaf {
			restored.Children = append(restored.Children, right.Children...)
		}
		t.s.GetMut(idx, func(x *Node[K, V]) { *x = restored })
		return nil, slab.Nowhere, zero, false
	}
	if !right.IsLeaf {
		t.reparent(rightIdx)
	}
	return &medianItem, rightIdx, zero, false
}
