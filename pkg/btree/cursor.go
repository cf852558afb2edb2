// pkg/btree/cursor.go
package btree

// Iterator walks a tree's items in ascending (or, via Prev, descending)
// key order using the Address chain from address.go. An Iterator is a
// snapshot cursor: mutating the tree it was drawn from invalidates it.
type Iterator[K any, V any] struct {
	t     *Tree[K, V]
	addr  Address
	end   Address
	ended bool
}

// Iter returns a forward iterator positioned before the first item.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{t: t, addr: t.FirstAddress(), end: t.PastEndAddress()}
}

// Range returns a forward iterator over [lo, hi) by key order. A bound
// that is not in the tree is resolved to the first item after it.
func (t *Tree[K, V]) Range(lo, hi K) *Iterator[K, V] {
	start := t.AddressOf(lo).Address
	if start.isNowhere() {
		start = t.FirstAddress()
	}
	if n, ok := t.s.Get(start.Node); ok && start.Offset >= len(n.Items) {
		start = t.NextAddress(start)
	}
	end := t.AddressOf(hi).Address
	if end.isNowhere() {
		end = t.PastEndAddress()
	}
	if n, ok := t.s.Get(end.Node); ok && end.Offset >= len(n.Items) {
		end = t.NextAddress(end)
	}
	return &Iterator[K, V]{t: t, addr: start, end: end}
}

// Next advances and returns the next key/value pair, or false when
// exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	var zeroK K
	var zeroV V
	if it.ended || it.addr.isNowhere() || it.addr == it.end {
		return zeroK, zeroV, false
	}
	n, ok := it.t.s.Get(it.addr.Node)
	if !ok || it.addr.Offset >= len(n.Items) {
		it.ended = true
		return zeroK, zeroV, false
	}
	item := n.Items[it.addr.Offset]
	it.addr = it.t.NextAddress(it.addr)
	return item.Key, item.Value, true
}

// ReverseIterator walks a tree's items in descending key order.
type ReverseIterator[K any, V any] struct {
	t     *Tree[K, V]
	addr  Address
	ended bool
}

// IterReverse returns a backward iterator positioned after the last item.
func (t *Tree[K, V]) IterReverse() *ReverseIterator[K, V] {
	if t.IsEmpty() {
		return &ReverseIterator[K, V]{t: t, ended: true}
	}
	return &ReverseIterator[K, V]{t: t, addr: t.PreviousAddress(t.PastEndAddress())}
}

// Next advances and returns the next key/value pair in descending order.
func (it *ReverseIterator[K, V]) Next() (K, V, bool) {
	var zeroK K
	var zeroV V
	if it.ended || it.addr.isNowhere() {
		return zeroK, zeroV, false
	}
	n, ok := it.t.s.Get(it.addr.Node)
	if !ok || it.addr.Offset >= len(n.Items) {
		it.ended = true
		return zeroK, zeroV, false
	}
	item := n.Items[it.addr.Offset]
	first := it.t.FirstAddress()
	if it.addr == first {
		it.ended = true
	} else {
		it.addr = it.t.PreviousAddress(it.addr)
	}
	return item.Key, item.Value, true
}

// ForEachMut calls fn with each key and a pointer to its stored value, in
// ascending key order, mutating values in place through the slab. Go has
// no lifetime system to hand out a live pointer tied to an iterator's
// lifetime, so mutation is expressed as a callback invoked while the
// slab borrow is held, the way sync.Map.Range works.
func (t *Tree[K, V]) ForEachMut(fn func(K, *V)) {
	addr := t.FirstAddress()
	end := t.PastEndAddress()
	for !addr.isNowhere() && addr != end {
		next := t.NextAddress(addr)
		t.s.GetMut(addr.Node, func(n *Node[K, V]) { fn(n.Items[addr.Offset].Key, &n.Items[addr.Offset].Value) })
		addr = next
	}
}

// RangeMut is ForEachMut restricted to [lo, hi).
func (t *Tree[K, V]) RangeMut(lo, hi K, fn func(K, *V)) {
	start := t.AddressOf(lo).Address
	if start.isNowhere() {
		start = t.FirstAddress()
	}
	if n, ok := t.s.Get(start.Node); ok && start.Offset >= len(n.Items) {
		start = t.NextAddress(start)
	}
	end := t.AddressOf(hi).Address
	if end.isNowhere() {
		end = t.PastEndAddress()
	}
	if n, ok := t.s.Get(end.Node); ok && end.Offset >= len(n.Items) {
		end = t.NextAddress(end)
	}
	addr := start
	for !addr.isNowhere() && addr != end {
		next := t.NextAddress(addr)
		t.s.GetMut(addr.Node, func(n *Node[K, V]) { fn(n.Items[addr.Offset].Key, &n.Items[addr.Offset].Value) })
		addr = next
	}
}

// ValuesMut calls fn with a pointer to each value in ascending key order.
func (t *Tree[K, V]) ValuesMut(fn func(*V)) {
	t.ForEachMut(func(_ K, v *V) { fn(v) })
}

// Keys collects all keys in ascending order. For large trees prefer Iter.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	it := t.Iter()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	return keys
}

// Values collects all values in ascending key order. For large trees
// prefer Iter.
func (t *Tree[K, V]) Values() []V {
	vals := make([]V, 0, t.Len())
	it := t.Iter()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

// DrainFilter removes every item for which keep returns false, calling
// removed for each one, and returns the number removed. Because removal
// rebalances the tree and can invalidate addresses beyond the one just
// visited, the cursor is re-resolved from the current key after every
// removal rather than simply advanced.
func (t *Tree[K, V]) DrainFilter(keep func(K, V) bool, removed func(K, V)) int {
	n := 0
	addr := t.FirstAddress()
	for !addr.isNowhere() {
		node, ok := t.s.Get(addr.Node)
		if !ok || addr.Offset >= len(node.Items) {
			addr = t.PastEndAddress()
			break
		}
		item := node.Items[addr.Offset]
		if keep(item.Key, item.Value) {
			addr = t.NextAddress(addr)
			continue
		}
		t.Remove(item.Key)
		n++
		if removed != nil {
			removed(item.Key, item.Value)
		}
		loc := t.AddressOf(item.Key)
		addr = loc.Address
		if addr.isNowhere() {
			addr = t.FirstAddress()
		} else if ln, ok := t.s.Get(addr.Node); ok && addr.Offset >= len(ln.Items) {
			addr = t.NextAddress(addr)
		}
	}
	return n
}
