package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*BSTree[int])(nil)
var _ containers.Container = (*BSTree[int])(nil)

// BSTree is a binary search tree without any balancing. Values smaller than
// a node go to its left subtree, the others, including equal ones, go to its
// right subtree. The height D of the tree depends on the insertion order and
// is n in the worst case, e.g. when inserting sorted values.
// The zero value is an empty tree ready to use.
// Remove moves values between nodes, so a *Node obtained before a call to
// Remove or Delete may hold a different value, or be gone, afterwards.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   int
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Root node of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Add(v T) {
	var par *Node[T]
	cur := &u.root
	for *cur != nil {
		par = *cur
		if v < par.v {
			cur = &par.l
		} else {
			cur = &par.r
		}
	}
	*cur = &Node[T]{v: v, p: par}
	u.sz++
}

// find the first node holding v on the search path, nil if there's none.
func (u *BSTree[T]) find(v T) *Node[T] {
	cur := u.root
	for cur != nil {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Search(v T) bool {
	return u.find(v) != nil
}

// Remove [Tree.Remove]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	if cur := u.find(v); cur != nil {
		u.removeNode(cur)
		return true
	}
	return false
}

// removeNode n from u. While n has a child, the value of n is swapped with
// its successor (or predecessor if there's no right child) and n moves to
// that node, which is one level deeper. When n becomes a leaf it's unlinked.
// Panics if n is empty.
func (u *BSTree[T]) removeNode(n *Node[T]) {
	n.must("remove")
	for {
		if s := n.Successor(); s != nil {
			swapValues(n, s)
			n = s
		} else if p := n.Predecessor(); p != nil {
			swapValues(n, p)
			n = p
		} else {
			break
		}
	}
	if !n.detach() {
		u.root = nil
	}
	u.sz--
}

// Delete every node of u, one at a time starting from the root. u is empty
// and reusable afterwards.
// Time: O(n*D)
func (u *BSTree[T]) Delete() {
	for u.root != nil {
		u.removeNode(u.root)
	}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() int {
	return u.sz
}

// Empty reports whether u has no nodes.
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear drops all the nodes at once. Unlike Delete, no value swapping
// happens, the nodes are left to the garbage collector.
// Time: O(1)
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Values in ascending order.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	u.IterativeDepthInfix(func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

func (u *BSTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BSTree\n")
	for i, v := range u.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	it := u.Iterator(Forward).Begin()
	return func() (r T, has bool) {
		if it.End() {
			return
		}
		r, has = it.Value().v, true
		it.Next()
		return
	}
}

// Corrupt [Tree.Corrupt]
// Checks every node against the bounds given by its ancestors, its parent
// link, and the node count. A left subtree may hold values equal to its root
// when Remove pulled a duplicate up from it. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	cnt := 0
	var check func(n, p *Node[T], lo, hi *T) bool
	check = func(n, p *Node[T], lo, hi *T) bool {
		if n == nil {
			return true
		}
		cnt++
		if n.p != p || (lo != nil && n.v < *lo) || (hi != nil && n.v > *hi) {
			return false
		}
		return check(n.l, n, lo, &n.v) && check(n.r, n, &n.v, hi)
	}
	return !check(u.root, nil, nil, nil) || cnt != u.sz
}
