package deque

import (
	"cmp"
	"slices"
)

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Index returns the index of the first occurrence of t in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(u T) bool { return u == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.slices()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Two nil Deques are equal, but an empty Deque and nil are
// not. Equal's semantics differs from slices.Equal in the nil vs empty
// comparison.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with f. Physical layout is
// irrelevant: two Deques wrapped differently around their buffers compare by
// logical order.
func (d *Deque[T]) EqualFunc(other *Deque[T], f func(T, T) bool) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.len() != other.len() {
		return false
	}
	for i := range d.Len() {
		if !f(d.AtUnsafe(i), other.AtUnsafe(i)) {
			return false
		}
	}
	return true
}

// Max returns the maximal element in the Deque, or ErrEmptyContainer. It must
// not be a method, otherwise Deque would be constrained to ordered elements.
func Max[T cmp.Ordered](d *Deque[T]) (T, error) {
	return MaxFunc(d, cmp.Compare[T])
}

// MaxFunc returns the maximal element according to c, or ErrEmptyContainer.
// If several elements are maximal, the first one is returned.
func MaxFunc[T any](d *Deque[T], c func(a, b T) int) (t T, err error) {
	return extreme(d, func(a, b T) bool { return c(a, b) > 0 })
}

// Min returns the minimal element in the Deque, or ErrEmptyContainer.
func Min[T cmp.Ordered](d *Deque[T]) (T, error) {
	return MinFunc(d, cmp.Compare[T])
}

// MinFunc returns the minimal element according to c, or ErrEmptyContainer.
// If several elements are minimal, the first one is returned.
func MinFunc[T any](d *Deque[T], c func(a, b T) int) (t T, err error) {
	return extreme(d, func(a, b T) bool { return c(a, b) < 0 })
}

// extreme keeps the first element for which better never reports true
// against a later one.
func extreme[T any](d *Deque[T], better func(a, b T) bool) (t T, err error) {
	if d.Len() == 0 {
		return t, ErrEmptyContainer
	}
	first := true
	for u := range d.Iter() {
		if first || better(u, t) {
			t, first = u, false
		}
	}
	return t, nil
}
