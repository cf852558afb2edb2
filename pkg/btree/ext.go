// pkg/btree/ext.go
package btree

import (
	"fmt"
	"reflect"

	"slabtree/pkg/slab"
)

// AddressOfKey is the exported form of AddressOf.
func (t *Tree[K, V]) AddressOfKey(key K) Location {
	return t.AddressOf(key)
}

// InsertAt inserts key/value at address, which must be exactly the
// address AddressOfKey(key) would report; any other address returns
// ErrKeyMismatch without mutating the tree. Present for API symmetry
// with the Address-based read/walk operations — ordinary callers should
// just use Insert.
func (t *Tree[K, V]) InsertAt(address Address, key K, value V) error {
	want := t.AddressOf(key)
	if want.Exact || want.Address != address {
		return ErrKeyMismatch
	}
	t.Insert(key, value)
	return nil
}

// RemoveAt removes the item sitting at address and returns it.
func (t *Tree[K, V]) RemoveAt(address Address) (K, V, bool) {
	var zeroK K
	var zeroV V
	n, ok := t.s.Get(address.Node)
	if !ok || address.Offset >= len(n.Items) {
		return zeroK, zeroV, false
	}
	key := n.Items[address.Offset].Key
	val, removed := t.Remove(key)
	return key, val, removed
}

// Validate walks the whole tree checking its structural invariants:
// ascending key order, item-count bounds on every non-root node,
// children count one more than items on internal nodes, correct parent
// back-pointers, and a uniform leaf depth. It returns the first
// violation found wrapped in ErrInvariantViolation, or nil.
func (t *Tree[K, V]) Validate() error {
	if t.root == slab.Nowhere {
		if t.count != 0 {
			return fmt.Errorf("%w: empty root but count=%d", ErrInvariantViolation, t.count)
		}
		return nil
	}
	leafDepth := -1
	visited := 0
	if err := t.validateNode(t.root, slab.Nowhere, 0, &leafDepth, &visited); err != nil {
		return err
	}
	if visited != t.count {
		return fmt.Errorf("%w: visited %d items, count says %d", ErrInvariantViolation, visited, t.count)
	}
	return nil
}

func (t *Tree[K, V]) validateNode(idx, expectParent slab.Index, depth int, leafDepth, visited *int) error {
	n, ok := t.s.Get(idx)
	if !ok {
		return fmt.Errorf("%w: dangling index %d", ErrInvariantViolation, idx)
	}
	if n.Parent != expectParent {
		return fmt.Errorf("%w: node %d has parent %d, want %d", ErrInvariantViolation, idx, n.Parent, expectParent)
	}
	if idx != t.root {
		if n.ItemCount() < t.minItems() {
			return fmt.Errorf("%w: node %d underflowed: %d items < min %d", ErrInvariantViolation, idx, n.ItemCount(), t.minItems())
		}
	}
	if n.ItemCount() > t.maxItems() {
		return fmt.Errorf("%w: node %d overfull: %d items > max %d", ErrInvariantViolation, idx, n.ItemCount(), t.maxItems())
	}
	for i := 1; i < len(n.Items); i++ {
		if !t.less(n.Items[i-1].Key, n.Items[i].Key) {
			return fmt.Errorf("%w: node %d items out of order at %d", ErrInvariantViolation, idx, i)
		}
	}
	*visited += n.ItemCount()

	if n.IsLeaf {
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return fmt.Errorf("%w: leaf %d at depth %d, expected %d", ErrInvariantViolation, idx, depth, *leafDepth)
		}
		return nil
	}

	if len(n.Children) != len(n.Items)+1 {
		return fmt.Errorf("%w: node %d has %d children, want %d", ErrInvariantViolation, idx, len(n.Children), len(n.Items)+1)
	}
	for _, c := range n.Children {
		if err := t.validateNode(c, idx, depth+1, leafDepth, visited); err != nil {
			return err
		}
	}
	return nil
}

// Append moves every item out of other and into t, which must share the
// same backing slab (ErrDifferentSlab otherwise). Behavior matches
// pkg/cowbtree's merge convention: other is left empty on success.
func (t *Tree[K, V]) Append(other *Tree[K, V]) error {
	if !sameSlab(t.s, other.s) {
		return ErrDifferentSlab
	}
	it := other.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		t.Insert(k, v)
	}
	other.Clear()
	return nil
}

// SplitOff removes every item with a key >= key from t and returns a new
// tree, sharing t's slab, branching factor, and comparator, holding them.
func (t *Tree[K, V]) SplitOff(key K) *Tree[K, V] {
	other := New[K, V](t.s, t.less, t.branching)
	var moving []Item[K, V]
	it := t.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if !t.less(k, key) {
			moving = append(moving, Item[K, V]{Key: k, Value: v})
		}
	}
	for _, item := range moving {
		t.Remove(item.Key)
		other.Insert(item.Key, item.Value)
	}
	return other
}

func sameSlab(a, b any) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() != reflect.Ptr || vb.Kind() != reflect.Ptr {
		return false
	}
	return va.Pointer() == vb.Pointer()
}
