package pairheap

import (
	"cmp"
	"errors"
	"iter"
)

// Errors returned by heap operations.
var (
	ErrEmpty         = errors.New("pairheap: heap is empty")
	ErrInvalidHandle = errors.New("pairheap: invalid handle")
)

// Element is one (key, value) pair held by a heap. Keys order the heap;
// values are opaque to it.
type Element[K, P any] struct {
	Key   K
	Value P
}

// Heap is an addressable, meldable min-priority queue implemented as a
// pairing heap. Insert, Min and Meld run in O(1) amortized time; PopMin and
// Remove in O(log n) amortized time. Every failing operation leaves the heap
// unchanged.
//
// A Heap is not safe for concurrent use; callers must serialize access.
type Heap[K, P any] struct {
	less    func(a, b K) bool
	ar      *arena[K, P]
	root    *node[K, P]
	size    int
	scratch []*node[K, P]
}

// New returns an empty heap ordered by less, which must define a strict
// total order over K.
func New[K, P any](less func(a, b K) bool) *Heap[K, P] {
	h := &Heap[K, P]{less: less}
	h.ar = newArena(h)
	return h
}

// NewOrdered returns an empty min-heap over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, P any]() *Heap[K, P] {
	return New[K, P](cmp.Less[K])
}

// Len returns the number of elements currently in the heap.
func (u *Heap[K, P]) Len() int {
	return u.size
}

// Insert adds (key, value) to the heap and returns a handle addressing the
// new element.
func (u *Heap[K, P]) Insert(key K, value P) Handle[K, P] {
	n := &node[K, P]{elem: Element[K, P]{Key: key, Value: value}, ar: u.ar}
	n.left, n.right = n, n
	idx, gen := u.ar.obtain(n)
	n.idx = idx
	if u.root == nil {
		u.root = n
	} else {
		u.root = u.merge(u.root, n)
	}
	u.size++
	return Handle[K, P]{ar: u.ar, idx: idx, gen: gen}
}

// Min returns the minimum element without removing it. It returns ErrEmpty
// if the heap is empty.
func (u *Heap[K, P]) Min() (Element[K, P], error) {
	if u.size == 0 {
		return Element[K, P]{}, ErrEmpty
	}
	return u.root.elem, nil
}

// PopMin removes and returns the minimum element. It returns ErrEmpty if the
// heap is empty.
func (u *Heap[K, P]) PopMin() (Element[K, P], error) {
	if u.size == 0 {
		return Element[K, P]{}, ErrEmpty
	}
	r := u.root
	e := r.elem
	if r.child != nil {
		u.root = u.combineSiblings(r.child)
	} else {
		u.root = nil
	}
	r.free()
	u.size--
	return e, nil
}

// Remove removes and returns the element addressed by h. It returns
// ErrInvalidHandle if h is stale, foreign or was never issued.
func (u *Heap[K, P]) Remove(h Handle[K, P]) (Element[K, P], error) {
	n, err := u.resolve(h)
	if err != nil {
		return Element[K, P]{}, err
	}
	if n == u.root {
		return u.PopMin()
	}
	cut(n)
	e := n.elem
	var sub *node[K, P]
	if n.child != nil {
		sub = u.combineSiblings(n.child)
	}
	n.free()
	u.size--
	if sub != nil {
		u.root = u.merge(u.root, sub)
	}
	return e, nil
}

// DecreaseKey lowers the key of the element addressed by h. Keys that do not
// compare strictly smaller than the current one leave the heap unchanged. It
// returns ErrInvalidHandle if h is stale, foreign or was never issued.
//
// Decreasing a key to exactly the current minimum makes the decreased
// element the new minimum.
func (u *Heap[K, P]) DecreaseKey(h Handle[K, P], key K) error {
	n, err := u.resolve(h)
	if err != nil {
		return err
	}
	if !u.less(key, n.elem.Key) {
		return nil
	}
	if n == u.root {
		n.elem.Key = key
		return nil
	}
	cut(n)
	n.elem.Key = key
	// the decreased node goes first so it wins a key tie with the old root
	u.root = u.merge(n, u.root)
	return nil
}

// Meld moves every element of other into u in O(1) and resets other to
// empty. No element is copied or reallocated, so handles issued by other
// remain valid and now address elements of u. Melding a heap with itself or
// with nil is a no-op.
func (u *Heap[K, P]) Meld(other *Heap[K, P]) {
	if other == nil || other == u {
		return
	}
	if other.root != nil {
		if u.root == nil {
			u.root = other.root
		} else {
			u.root = u.merge(u.root, other.root)
		}
		u.size += other.size
	}
	other.ar.ref.heap = nil
	other.ar.ref.fwd = u.ar.ref
	other.ar = newArena(other)
	other.root = nil
	other.size = 0
}

// Contains reports whether h currently addresses a live element of u. It
// never returns an error and reports false for stale or foreign handles.
func (u *Heap[K, P]) Contains(h Handle[K, P]) bool {
	_, err := u.resolve(h)
	return err == nil
}

// Key returns the current key of the element addressed by h. It returns
// ErrInvalidHandle if h is stale, foreign or was never issued.
func (u *Heap[K, P]) Key(h Handle[K, P]) (K, error) {
	n, err := u.resolve(h)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.elem.Key, nil
}

// Clear removes every element and invalidates all outstanding handles. The
// traversal is iterative, so arbitrarily deep heaps cannot exhaust the call
// stack.
func (u *Heap[K, P]) Clear() {
	if u.root == nil {
		return
	}
	work := []*node[K, P]{u.root}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if c := n.child; c != nil {
			for s := c; ; {
				next := s.right
				work = append(work, s)
				if next == c {
					break
				}
				s = next
			}
		}
		n.free()
	}
	u.root = nil
	u.size = 0
}

// All returns an iterator over every element in unspecified order. The heap
// must not be mutated while iterating.
func (u *Heap[K, P]) All() iter.Seq[Element[K, P]] {
	return func(yield func(Element[K, P]) bool) {
		if u.root == nil {
			return
		}
		work := []*node[K, P]{u.root}
		for len(work) > 0 {
			n := work[len(work)-1]
			work = work[:len(work)-1]
			if !yield(n.elem) {
				return
			}
			if c := n.child; c != nil {
				for s := c; ; {
					work = append(work, s)
					if s.right == c {
						break
					}
					s = s.right
				}
			}
		}
	}
}

// Drain returns a consuming iterator that pops elements in ascending key
// order until the heap is empty or the caller stops.
func (u *Heap[K, P]) Drain() iter.Seq[Element[K, P]] {
	return func(yield func(Element[K, P]) bool) {
		for u.size > 0 {
			e, _ := u.PopMin()
			if !yield(e) {
				return
			}
		}
	}
}

// resolve returns the live node addressed by h, rejecting handles whose slot
// generation has moved on or whose element is owned by another heap.
func (u *Heap[K, P]) resolve(h Handle[K, P]) (*node[K, P], error) {
	if h.ar == nil || int(h.idx) >= len(h.ar.slots) {
		return nil, ErrInvalidHandle
	}
	s := h.ar.slots[h.idx]
	if s.n == nil || s.gen != h.gen || h.ar.owner() != u {
		return nil, ErrInvalidHandle
	}
	return s.n, nil
}
