package pairheap

// Handle addresses one element for Remove, DecreaseKey, Contains and Key. A
// handle is issued by Insert and stays valid until its element is removed or
// its heap is cleared, surviving any number of melds in between. The zero
// Handle is invalid.
type Handle[K, P any] struct {
	ar  *arena[K, P]
	idx uint32
	gen uint64
}

type slot[K, P any] struct {
	n   *node[K, P]
	gen uint64
}

// ownerRef names the heap currently owning every element allocated from an
// arena. Meld retires the donor's ref by forwarding it at the recipient's,
// so the transfer costs O(1) no matter how many elements move.
type ownerRef[K, P any] struct {
	heap *Heap[K, P]
	fwd  *ownerRef[K, P]
}

// arena issues and resolves generation-tagged slots. Indices of removed
// elements are recycled through a free list; the generation bump on release
// is what keeps a recycled slot from ever aliasing a stale handle.
type arena[K, P any] struct {
	ref   *ownerRef[K, P]
	slots []slot[K, P]
	free  []uint32
}

func newArena[K, P any](h *Heap[K, P]) *arena[K, P] {
	return &arena[K, P]{ref: &ownerRef[K, P]{heap: h}}
}

// owner resolves the heap that currently owns this arena's elements,
// compressing the forwarding chain built up by successive melds.
func (a *arena[K, P]) owner() *Heap[K, P] {
	r := a.ref
	for r.fwd != nil {
		r = r.fwd
	}
	a.ref = r
	return r.heap
}

// obtain assigns a slot to n, reusing a released index when one is
// available, and returns the slot's index and current generation.
func (a *arena[K, P]) obtain(n *node[K, P]) (uint32, uint64) {
	if l := len(a.free); l > 0 {
		i := a.free[l-1]
		a.free = a.free[:l-1]
		a.slots[i].n = n
		return i, a.slots[i].gen
	}
	a.slots = append(a.slots, slot[K, P]{n: n})
	return uint32(len(a.slots) - 1), 0
}

// release invalidates slot i and queues the index for reuse.
func (a *arena[K, P]) release(i uint32) {
	a.slots[i].n = nil
	a.slots[i].gen++
	a.free = append(a.free, i)
}
