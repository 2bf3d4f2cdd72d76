package Trees

// Node in a BSTree. Each node exclusively owns its two children; a nil
// child means the subtree is empty.
// Nodes are only created by BSTree.Insert, and the accessors are read-only
// so renderers can walk the structure without being able to break it.
type Node[T any] struct {
	v    T
	l, r *Node[T]
	h    int // cached height of the subtree rooted here. A leaf has 1.
}

// Value stored in the node.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Height is the cached height of the subtree rooted at n. Calling it on a
// nil node is valid and returns 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.h
}

// update recomputes the cached height of n from its children.
// Time: O(1); Space: O(1)
func (n *Node[T]) update() {
	n.h = max(n.l.Height(), n.r.Height()) + 1
}

// leftmost node of the subtree rooted at n, n mustn't be nil.
func leftmost[T any](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooted at n, n mustn't be nil.
func rightmost[T any](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
