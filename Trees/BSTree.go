package Trees

import (
	"cmp"
	"reflect"
)

// BSTree is a binary search tree with no repeated values. It doesn't
// balance itself: the shape, and so the height D, is whatever the insertion
// order produces. D is O(log n) for random insertions and O(n) for sorted
// ones. Each node caches the height of its subtree, which is kept exact
// after every Insert and Remove but is only used by the shape queries.
// The zero value isn't usable, create BSTree with New or NewFunc.
// BSTree isn't safe for concurrent use; guard it with a lock if needed.
type BSTree[T any] struct {
	root    *Node[T]
	sz      uint
	cmp     func(a, b T) int // three-way comparison: <0, 0, >0.
	nilable bool             // T can hold nil, so Insert has to check for it.
}

// New returns an empty BSTree ordered by cmp.Compare.
func New[T cmp.Ordered]() *BSTree[T] {
	return &BSTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty BSTree for any type ordered by compare, which
// must be a total order returning a negative number when a<b, 0 when a==b
// and a positive number when a>b. If T is a pointer, interface, map, slice,
// chan or func type, nil values are rejected by Insert. For interface types
// that includes an interface holding a nil pointer, map, slice, chan or func.
func NewFunc[T any](compare func(a, b T) int) *BSTree[T] {
	return &BSTree[T]{cmp: compare, nilable: canBeNil[T]()}
}

// empty tree with the same ordering as u.
func (u *BSTree[T]) empty() *BSTree[T] {
	return &BSTree[T]{cmp: u.cmp, nilable: u.nilable}
}

func canBeNil[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil also looks inside interface values, so an interface holding a
// typed nil pointer counts as nil.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *BSTree[T]) Empty() bool {
	return u.sz == 0
}

// Root node of the tree, nil if the tree is empty. The returned node is
// only valid until the next modification.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// RootValue is the value at the root of the tree.
func (u *BSTree[T]) RootValue() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.v, true
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
func (u *BSTree[T]) insert(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &Node[T]{v: v, h: 1}
		u.sz++
		return true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		inserted = u.insert(&cur.l, v)
	} else if c > 0 {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		cur.update()
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// Inserting a value that is already present leaves the tree unchanged and
// returns false. Panics with *InvalidArgumentError if v is nil, in which
// case the tree isn't modified.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if u.nilable && isNil(v) {
		panic(&InvalidArgumentError{Op: "Insert", Reason: "value is nil"})
	}
	return u.insert(&u.root, v)
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v
// doesn't exist in u), otherwise true.
// When the node has two children, its value is replaced by the in-order
// successor and the successor's node is removed from the right subtree
// instead. That second removal always hits a node with no left child, so
// sz is decremented exactly once.
// Time: O(D)
func (u *BSTree[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if c := u.cmp(v, cur.v); c < 0 {
		deleted = u.remove(&cur.l, v)
	} else if c > 0 {
		deleted = u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
		u.sz--
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		u.sz--
		return true
	} else {
		cur.v = leftmost(cur.r).v
		deleted = u.remove(&cur.r, cur.v)
	}
	if deleted {
		cur.update()
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

func (u *BSTree[T]) search(cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.search(cur.l, v)
	} else if c > 0 {
		return u.search(cur.r, v)
	}
	return cur
}

// Search [Tree.Search]. Recursive.
// Returns the stored element equal to v. This matters for NewFunc trees
// where elements that compare equal can still differ.
// Time: O(D)
func (u *BSTree[T]) Search(v T) (T, bool) {
	if n := u.search(u.root, v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D)
func (u *BSTree[T]) Has(v T) bool {
	return u.search(u.root, v) != nil
}

// Clear [Tree.Clear]. The nodes are released to the garbage collector.
// Time: O(1)
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Height [Tree.Height]. Reads the cached height of the root.
// Time: O(1)
func (u *BSTree[T]) Height() int {
	return u.root.Height()
}

func balanced[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if d := n.l.Height() - n.r.Height(); d > 1 || d < -1 {
		return false
	}
	return balanced(n.l) && balanced(n.r)
}

// Balanced [Tree.Balanced]. Recursive.
// Uses the cached heights and stops at the first unbalanced node.
// Time: O(n)
func (u *BSTree[T]) Balanced() bool {
	return balanced(u.root)
}

func nodeCount[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + nodeCount(n.l) + nodeCount(n.r)
}

// NodeCount [Tree.NodeCount]. Recursive.
// Time: O(n)
func (u *BSTree[T]) NodeCount() uint {
	return nodeCount(u.root)
}

// corrupt checks the subtree rooting at cur. lo and hi are the exclusive
// bounds inherited from the ancestors, nil if unbounded.
func (u *BSTree[T]) corrupt(cur *Node[T], lo, hi *T) bool {
	if cur == nil {
		return false
	}
	if lo != nil && u.cmp(*lo, cur.v) >= 0 || hi != nil && u.cmp(cur.v, *hi) >= 0 {
		return true
	}
	if cur.h != max(cur.l.Height(), cur.r.Height())+1 {
		return true
	}
	return u.corrupt(cur.l, lo, &cur.v) || u.corrupt(cur.r, &cur.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Reports a broken order, a stale cached height, or a size that doesn't
// match the number of nodes.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil) || u.sz != u.NodeCount()
}
