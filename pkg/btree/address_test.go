// pkg/btree/address_test.go
package btree

import "testing"

func TestAddressChainEnumeratesEveryItemOnce(t *testing.T) {
	tr := newIntTree(4)
	seq := []int{5, 9, 3, 7, 1, 8, 2, 6, 4, 0}
	for _, k := range seq {
		tr.Insert(k, "v")
	}

	var forward []int
	addr := tr.FirstAddress()
	end := tr.PastEndAddress()
	for addr != end {
		n, _ := tr.s.Get(addr.Node)
		forward = append(forward, n.Items[addr.Offset].Key)
		addr = tr.NextAddress(addr)
	}
	if len(forward) != len(seq) {
		t.Fatalf("forward chain visited %d items, want %d", len(forward), len(seq))
	}
	for i := 1; i < len(forward); i++ {
		if forward[i-1] >= forward[i] {
			t.Fatalf("forward chain not ascending at %d: %v", i, forward)
		}
	}

	var backward []int
	addr = tr.PreviousAddress(end)
	first := tr.FirstAddress()
	for {
		n, _ := tr.s.Get(addr.Node)
		backward = append(backward, n.Items[addr.Offset].Key)
		if addr == first {
			break
		}
		addr = tr.PreviousAddress(addr)
	}
	if len(backward) != len(forward) {
		t.Fatalf("backward chain visited %d items, want %d", len(backward), len(forward))
	}
	for i := range forward {
		if backward[i] != forward[len(forward)-1-i] {
			t.Fatalf("backward chain is not the exact reverse: %v vs %v", backward, forward)
		}
	}
}

func TestInsertRemoveRoundTripEmptiesSlab(t *testing.T) {
	s := newIntTree(4)
	seq := []int{5, 9, 3, 7, 1, 8, 2, 6, 4, 0, 42, 17, 23, 11}
	for _, k := range seq {
		s.Insert(k, "v")
	}
	for _, k := range seq {
		if _, ok := s.Remove(k); !ok {
			t.Fatalf("Remove(%d) reported missing", k)
		}
	}
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("tree not empty after round trip: len=%d", s.Len())
	}
	if s.root != 0 {
		t.Fatalf("root should be Nowhere (0) after round trip, got %d", s.root)
	}
	if s.s.Len() != 0 {
		t.Fatalf("slab should hold zero reachable nodes after round trip, has %d", s.s.Len())
	}
}
