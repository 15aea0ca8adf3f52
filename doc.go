// Package pairheap implements an addressable, meldable min-priority queue
// as a pairing heap: a heap-ordered multiway tree whose siblings form
// circular doubly-linked lists. Elements are (key, value) pairs ordered by a
// user-provided comparison function; Insert returns a stable Handle that can
// later remove the element or decrease its key in place.
//
// Key features:
//   - Generic implementation over any key and value type
//   - O(1) amortized Insert, Min and Meld
//   - O(log n) amortized PopMin and Remove
//   - In-place DecreaseKey addressed by handle
//   - O(1) melding that keeps the donor heap's handles valid
//   - Generation-checked handles: operations on removed elements are
//     detected and rejected, never silently applied to a recycled slot
//   - Iterator-based consumption using Go's iter.Seq
//
// Basic usage:
//
//	// Create a min-heap with int keys and string values
//	h := pairheap.NewOrdered[int, string]()
//
//	// Add elements, keeping the handles that matter
//	h.Insert(5, "write")
//	slow := h.Insert(9, "compact")
//	h.Insert(2, "flush")
//
//	// Inspect and remove the minimum
//	min, _ := h.Min()       // {2 flush}
//	min, _ = h.PopMin()     // {2 flush}
//
//	// Promote an element
//	_ = h.DecreaseKey(slow, 1)
//	min, _ = h.Min()        // {1 compact}
//
//	// Drain the rest in ascending key order
//	for e := range h.Drain() {
//	    fmt.Println(e.Key, e.Value)
//	}
//
// Two heaps ordered by the same comparison can be combined with Meld, which
// moves every element of the donor into the receiver in constant time and
// resets the donor to empty. Handles issued by the donor remain valid and
// address their elements in the receiver afterwards.
//
// After a root or an interior node is removed, the orphaned children are
// recombined with the classic two-pass scheme: adjacent siblings are merged
// pairwise left to right, then the pair winners are folded right to left
// into a single root. This is the pairing discipline the structure is named
// for, and it is what gives PopMin and Remove their logarithmic amortized
// bounds.
//
// A Heap is not safe for concurrent use.
package pairheap
