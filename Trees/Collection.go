package Trees

import (
	"iter"

	"github.com/Erick01081/BSTArep/Sets"
)

var (
	_ Tree[int]             = (*BSTree[int])(nil)
	_ Sets.ExtendedSet[int] = (*BSTree[int])(nil)
)

// The methods below only delegate to the core operations above. Everything
// that hands out elements for iteration works on a snapshot taken at the
// time of the call, so modifying the tree while iterating is allowed and
// isn't observed by the iteration.

// AddAll inserts every value, returning true if the tree changed.
func (u *BSTree[T]) AddAll(vs ...T) (modified bool) {
	for _, v := range vs {
		if u.Insert(v) {
			modified = true
		}
	}
	return
}

// RemoveAll removes every value, returning true if the tree changed.
func (u *BSTree[T]) RemoveAll(vs ...T) (modified bool) {
	for _, v := range vs {
		if u.Remove(v) {
			modified = true
		}
	}
	return
}

// ContainsAll reports whether every value is in the tree.
func (u *BSTree[T]) ContainsAll(vs ...T) bool {
	for _, v := range vs {
		if !u.Has(v) {
			return false
		}
	}
	return true
}

// RetainAll removes every element that isn't among vs, returning true if
// the tree changed.
// Time: O(n*D + len(vs)*log(len(vs))) on average.
func (u *BSTree[T]) RetainAll(vs ...T) bool {
	keep := u.empty()
	keep.AddAll(vs...)
	sz := u.sz
	u.Intersect(keep)
	return u.sz != sz
}

// ToSlice returns the elements in ascending order in a new slice.
func (u *BSTree[T]) ToSlice() []T {
	return u.InOrder(make([]T, 0, u.sz))
}

// Iter returns a closure f acting like an iterator over a snapshot of the
// tree in ascending order. val, valid=f(); val is meaningful only if valid
// is true, and valid stays false once f is exhausted.
func (u *BSTree[T]) Iter() func() (T, bool) {
	s, i := u.ToSlice(), 0
	return func() (v T, has bool) {
		if i < len(s) {
			v, has = s[i], true
			i++
		}
		return
	}
}

// All returns an iterator over a snapshot of the tree in ascending order.
func (u *BSTree[T]) All() iter.Seq[T] {
	s := u.ToSlice()
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Put [Sets.Set.Put] is Insert.
func (u *BSTree[T]) Put(v T) bool {
	return u.Insert(v)
}

// Take [Sets.Set.Take] returns the value at the root.
func (u *BSTree[T]) Take() T {
	v, _ := u.RootValue()
	return v
}

// Range [Sets.Set.Range] in ascending order over a snapshot.
func (u *BSTree[T]) Range(f func(T) bool) {
	for v := range u.All() {
		if !f(v) {
			return
		}
	}
}

// PutAll [Sets.ExtendedSet.PutAll]
func (u *BSTree[T]) PutAll(s Sets.Set[T]) (n uint) {
	s.Range(func(v T) bool {
		if u.Insert(v) {
			n++
		}
		return true
	})
	return
}

// Subtract [Sets.ExtendedSet.Subtract]
func (u *BSTree[T]) Subtract(s Sets.Set[T]) (n uint) {
	s.Range(func(v T) bool {
		if u.Remove(v) {
			n++
		}
		return true
	})
	return
}

// HasAll [Sets.ExtendedSet.HasAll]
func (u *BSTree[T]) HasAll(s Sets.Set[T]) (has bool) {
	has = true
	s.Range(func(v T) bool {
		has = u.Has(v)
		return has
	})
	return
}

// Eq [Sets.ExtendedSet.Eq]
func (u *BSTree[T]) Eq(s Sets.Set[T]) bool {
	return u.sz == s.Size() && u.HasAll(s)
}

// Union [Sets.ExtendedSet.Union]
func (u *BSTree[T]) Union(s Sets.Set[T]) {
	u.PutAll(s)
}

// Intersect [Sets.ExtendedSet.Intersect]
func (u *BSTree[T]) Intersect(s Sets.Set[T]) {
	for _, v := range u.ToSlice() {
		if !s.Has(v) {
			u.Remove(v)
		}
	}
}

// Filter [Sets.ExtendedSet.Filter] returns a new tree with the elements
// for which f is true. Elements are inserted in pre-order so the new tree
// keeps the shape of u where it can.
func (u *BSTree[T]) Filter(f func(T) bool) Sets.ExtendedSet[T] {
	t := u.empty()
	for _, v := range u.PreOrder(make([]T, 0, u.sz)) {
		if f(v) {
			t.Insert(v)
		}
	}
	return t
}
