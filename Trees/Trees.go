package Trees

// Tree represents a tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Remove(v T) bool
	//Search for the element equal to v.
	Search(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Clear removes all elements.
	Clear()
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Height of the tree, 0 when empty.
	Height() int
	//Balanced reports whether at every node the heights of the two
	//subtrees differ by at most 1. It is a query, implementations aren't
	//required to keep themselves balanced.
	Balanced() bool
	//NodeCount counts the nodes by walking the tree. It always equals Size().
	NodeCount() uint
	//InOrder appends the elements to dst in ascending order and returns
	//the extended slice. PreOrder, PostOrder and LevelOrder do the same
	//in their respective orders.
	InOrder(dst []T) []T
	PreOrder(dst []T) []T
	PostOrder(dst []T) []T
	LevelOrder(dst []T) []T
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
