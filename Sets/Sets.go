package Sets

// Set of unique elements.
type Set[E any] interface {
	// Put e, false if it's already in the set.
	Put(E) bool
	Has(E) bool
	// Remove e, false if it isn't in the set.
	Remove(E) bool
	Size() uint
	// Take any element without removing it. Zero value if the set is empty.
	Take() E
	// Range calls f on every element until f returns false. Implementations
	// document the order and whether f sees modifications.
	Range(func(E) bool)
}

// ExtendedSet adds bulk operations taking another Set. Methods that return
// a count return how many elements of the receiver were changed.
type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) uint
	// Subtract removes every element of the argument from the receiver.
	Subtract(Set[E]) uint
	// HasAll reports whether every element of the argument is in the receiver.
	HasAll(Set[E]) bool
	Eq(Set[E]) bool
	Union(Set[E])
	// Intersect keeps only the elements that are also in the argument.
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
