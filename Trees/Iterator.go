package Trees

import "golang.org/x/exp/constraints"

// Direction of an Iterator.
type Direction uint8

const (
	// Forward starts from the minimum and goes to greater values.
	Forward Direction = iota
	// Backward starts from the maximum and goes to smaller values.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Iterator is a cursor over the nodes of a BSTree. The usage is:
//
//	for it := tree.Iterator(Forward).Begin(); !it.End(); it.Next() {
//		v := it.Value().Value()
//		...
//	}
//
// The tree must not be modified while iterating.
type Iterator[T constraints.Ordered] struct {
	collection *BSTree[T]
	cur        *Node[T]
	dir        Direction
}

// Iterator creates an iterator over u in direction dir. It is at the end
// until Begin is called.
func (u *BSTree[T]) Iterator(dir Direction) *Iterator[T] {
	return &Iterator[T]{collection: u, dir: dir}
}

// Begin moves it to the first node in its direction.
// Time: O(D)
func (it *Iterator[T]) Begin() *Iterator[T] {
	if it.cur = it.collection.root; it.cur != nil {
		if it.dir == Backward {
			it.cur = it.cur.rightmost()
		} else {
			it.cur = it.cur.leftmost()
		}
	}
	return it
}

// End reports whether there's no current node.
func (it *Iterator[T]) End() bool {
	return it.cur == nil
}

// Next moves it to the following node in its direction. Calling Next at
// the end does nothing.
// Time: amortized O(1)
func (it *Iterator[T]) Next() *Iterator[T] {
	if it.cur != nil {
		if it.dir == Backward {
			it.cur = it.cur.prev()
		} else {
			it.cur = it.cur.next()
		}
	}
	return it
}

// Value is the current node. Panics if End() is true.
func (it *Iterator[T]) Value() *Node[T] {
	it.cur.must("Iterator.Value")
	return it.cur
}

func (it *Iterator[T]) Direction() Direction {
	return it.dir
}
