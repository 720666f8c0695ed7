package Trees

import (
	"github.com/g-m-twostay/go-bstree/Queues"
	"golang.org/x/exp/constraints"
)

// Operator is applied to each node by the visitors. Anything it needs
// besides the node should be captured by the closure.
// The visitors don't modify the tree and neither should the Operator.
type Operator[T constraints.Ordered] func(n *Node[T])

// DepthPrefix applies f to each node before its subtrees, left subtree first.
// Recursive.
func (u *BSTree[T]) DepthPrefix(f Operator[T]) {
	var visit func(*Node[T])
	visit = func(n *Node[T]) {
		if n != nil {
			f(n)
			visit(n.l)
			visit(n.r)
		}
	}
	visit(u.root)
}

// DepthInfix applies f to each node between its left and right subtree,
// which gives the ascending order of the values. Recursive.
func (u *BSTree[T]) DepthInfix(f Operator[T]) {
	var visit func(*Node[T])
	visit = func(n *Node[T]) {
		if n != nil {
			visit(n.l)
			f(n)
			visit(n.r)
		}
	}
	visit(u.root)
}

// DepthPostfix applies f to each node after both of its subtrees. Recursive.
func (u *BSTree[T]) DepthPostfix(f Operator[T]) {
	var visit func(*Node[T])
	visit = func(n *Node[T]) {
		if n != nil {
			visit(n.l)
			visit(n.r)
			f(n)
		}
	}
	visit(u.root)
}

// IterativeDepthInfix gives the same order as DepthInfix without recursion
// or a stack. Where to go from cur is decided by the node visited just
// before it: coming from the parent means descend left, coming from the left
// child means apply f then descend right, coming from the right child means
// go back up. Links are never rewritten, unlike a Morris traversal.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) IterativeDepthInfix(f Operator[T]) {
	var prev, next *Node[T]
	for cur := u.root; cur != nil; cur = next {
		if prev == cur.p {
			prev, next = cur, cur.l
		}
		if next == nil || prev == cur.l {
			f(cur)
			prev, next = cur, cur.r
		}
		if next == nil || prev == cur.r {
			prev, next = cur, cur.p
		}
	}
}

// IterativeBreadthPrefix applies f level by level from the root, left to
// right within a level.
// Time: O(n); Space: O(w) where w is the widest level.
func (u *BSTree[T]) IterativeBreadthPrefix(f Operator[T]) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}
