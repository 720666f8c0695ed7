package Trees

import "golang.org/x/exp/constraints"

// Node is a node in the BSTree. A nil *Node is the empty tree.
// l and r are owned by this node, p is a back link to the node holding this
// one as l or r, and is nil for the root.
// Nodes are only created by BSTree.Add so that the ordering holds.
type Node[T constraints.Ordered] struct {
	v       T
	l, r, p *Node[T]
}

// must panics with EmptyNodeError if n is empty.
func (n *Node[T]) must(op string) {
	if n == nil {
		panic(EmptyNodeError{op})
	}
}

// Empty reports whether n is the empty tree. Safe to call on nil.
func (n *Node[T]) Empty() bool {
	return n == nil
}

// Value at n. Panics if n is empty.
func (n *Node[T]) Value() T {
	n.must("Value")
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	n.must("Left")
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	n.must("Right")
	return n.r
}

func (n *Node[T]) Parent() *Node[T] {
	n.must("Parent")
	return n.p
}

// Successor returns the leftmost node of n's right subtree, or nil if n has
// no right child. It doesn't climb to the ancestors of n, so an inner node
// without a right child gets nil even though a greater value might exist
// above it. Use an Iterator to walk the whole tree in order.
// Time: O(D); Space: O(1)
func (n *Node[T]) Successor() *Node[T] {
	n.must("Successor")
	cur := n.r
	for cur != nil && cur.l != nil {
		cur = cur.l
	}
	return cur
}

// Predecessor is the mirror of Successor: the rightmost node of n's left
// subtree, or nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) Predecessor() *Node[T] {
	n.must("Predecessor")
	cur := n.l
	for cur != nil && cur.r != nil {
		cur = cur.r
	}
	return cur
}

// leftmost node in the subtree rooting at n, n!=nil.
func (n *Node[T]) leftmost() *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *Node[T]) rightmost() *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next node of n in the in-order of the whole tree, climbing through the
// parents when n has no right subtree. Returns nil after the maximum.
// Time: amortized O(1)
func (n *Node[T]) next() *Node[T] {
	if n.r != nil {
		return n.r.leftmost()
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// prev is the mirror of next.
func (n *Node[T]) prev() *Node[T] {
	if n.l != nil {
		return n.l.rightmost()
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// swapValues exchanges the values held by a and b, the links stay in place.
func swapValues[T constraints.Ordered](a, b *Node[T]) {
	if a == nil || b == nil {
		panic(EmptyNodeError{"swap"})
	}
	a.v, b.v = b.v, a.v
}

// detach the leaf n from its parent. Returns false if n has no parent, in
// which case nothing points to it anyway.
func (n *Node[T]) detach() bool {
	if p := n.p; p != nil {
		if p.l == n {
			p.l = nil
		} else {
			p.r = nil
		}
		n.p = nil
		return true
	}
	return false
}
