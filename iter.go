package deque

import "iter"

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only, front to back. If you need
// indexes, use All instead. The iterator can be ranged over any number of
// times. Mutating the Deque during iteration does not panic, but the values
// seen are unspecified.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := d.slices()
		for _, t := range s1 {
			if !yield(t) {
				return
			}
		}
		for _, t := range s2 {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs, front to back. It has the
// same semantics as slices.All.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2 := d.slices()
		for i, t := range s1 {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range s2 {
			if !yield(len(s1)+i, t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front. It has
// the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2 := d.slices()
		for i := len(s2) - 1; i >= 0; i-- {
			if !yield(len(s1)+i, s2[i]) {
				return
			}
		}
		for i := len(s1) - 1; i >= 0; i-- {
			if !yield(i, s1[i]) {
				return
			}
		}
	}
}
