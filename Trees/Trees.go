package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered dictionary implemented using linked nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Add v to the Tree. Values equal to an existing one are kept as well.
	Add(v T)
	//Remove v from the Tree. Returning true if v was in the tree, false otherwise.
	Remove(v T) bool
	//Search whether v is in the tree.
	Search(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() int
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or a parent link doesn't match the
	//child link pointing to it.
	Corrupt() bool
}

// EmptyNodeError is the value panicked with when an operation that needs a
// node is called on an empty one. Op names the operation.
type EmptyNodeError struct {
	Op string
}

func (e EmptyNodeError) Error() string {
	return "Trees: " + e.Op + " called on an empty node"
}
