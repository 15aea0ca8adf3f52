package pairheap

// node is one tree node. left and right close a circular doubly-linked list
// over the nodes sharing a parent; a detached root is its own singleton list.
// child points at an arbitrary member of the child list, in practice the one
// merged in most recently.
type node[K, P any] struct {
	elem   Element[K, P]
	parent *node[K, P]
	child  *node[K, P]
	left   *node[K, P]
	right  *node[K, P]
	ar     *arena[K, P]
	idx    uint32
}

// free releases n's arena slot and severs its links. Outstanding handles for
// n fail generation checks from here on.
func (n *node[K, P]) free() {
	n.ar.release(n.idx)
	n.ar = nil
	n.parent, n.child, n.left, n.right = nil, nil, nil, nil
}

// merge links two detached roots and returns the winner; the loser is
// spliced into the winner's child list. On equal keys x wins. DecreaseKey
// passes the freshly decreased node as x and relies on that tie-break to
// make it the new minimum.
func (u *Heap[K, P]) merge(x, y *node[K, P]) *node[K, P] {
	if u.less(y.elem.Key, x.elem.Key) {
		x, y = y, x
	}
	y.parent = x
	if c := x.child; c != nil {
		y.left = c.left
		c.left.right = y
		y.right = c
		c.left = y
	}
	x.child = y
	return x
}

// cut detaches p from its parent's child list, leaving it a singleton root.
func cut[K, P any](p *node[K, P]) {
	pp := p.parent
	if p.right == p {
		pp.child = nil
	} else {
		if pp.child == p {
			pp.child = p.right
		}
		p.left.right = p.right
		p.right.left = p.left
		p.left, p.right = p, p
	}
	p.parent = nil
}

// combineSiblings reduces the circular sibling list containing x to a single
// root: a left-to-right pass merging adjacent pairs, then a right-to-left
// fold of the pair winners. The two passes are what give the delete
// operations their logarithmic amortized bound; a single forward fold would
// not achieve it.
func (u *Heap[K, P]) combineSiblings(x *node[K, P]) *node[K, P] {
	winners := u.scratch[:0]
	for p := x; ; {
		n1, n2 := p, p.right
		n1.parent, n1.left, n1.right = nil, n1, n1
		if n2 == x {
			// odd count, the last node passes through unmerged
			winners = append(winners, n1)
			break
		}
		p = n2.right
		n2.parent, n2.left, n2.right = nil, n2, n2
		winners = append(winners, u.merge(n1, n2))
		if p == x {
			break
		}
	}
	res := winners[len(winners)-1]
	for i := len(winners) - 2; i >= 0; i-- {
		res = u.merge(res, winners[i])
	}
	for i := range winners {
		winners[i] = nil
	}
	u.scratch = winners[:0]
	return res
}
