// Package deque provides a generic double-ended queue backed by a growable
// ring buffer.
package deque

import (
	"iter"
	"math/bits"
)

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between.
//
// The zero value is an empty Deque ready to use. The first push allocates the
// buffer. New, NewWithCapacity and Collect are available when the contents or
// the expected size are known up front.
//
// This implementation requires a buffer with a power of two length. If a Deque
// ever overflows its underlying buffer, it reallocates to the next power of
// two that fits, which is twice the size for a single push. It does not shrink
// by itself, so you must explicitly call Shrink or Resize to give memory back.
//
// Every slot released by a pop, remove, drop or clear is zeroed, so the Deque
// never keeps references alive. A Deque is not safe for concurrent use.
type Deque[T any] struct {
	buf              []T
	head, tail, mask uint
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns a Deque holding a copy of initial, in order. initial[0] is the
// front. Memory is not shared with the arguments.
func New[T any](initial ...T) *Deque[T] {
	d := &Deque[T]{}
	d.PushBack(initial...)
	return d
}

// NewWithCapacity takes in the desired capacity. Note that if the supplied
// capacity is not a power of two, it will be increased to the next power of
// two. Returns an error if passed a negative value.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	c := ceilPow2(uint(capacity))
	return &Deque[T]{buf: make([]T, c), mask: c - 1}, nil
}

// Collect pushes every value of seq to the back of a new Deque.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := &Deque[T]{}
	for t := range seq {
		d.PushBack(t)
	}
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.len())
}
func (d *Deque[T]) len() uint { return d.tail - d.head }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.tail == d.head }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.len() == d.cap() }

// PushBack takes in a variable number of arguments and puts them at the back
// of the Deque. Use PushBack and PopFront for FIFO ordering, or PushBack and
// PopBack for LIFO ordering.
//
// PushBack reallocates at most once, no matter how many arguments. The last
// argument is the new back.
func (d *Deque[T]) PushBack(ts ...T) {
	n := uint(len(ts))
	d.grow(n)
	for i, t := range ts {
		d.buf[(d.tail+uint(i))&d.mask] = t
	}
	d.tail += n
}

// PushFront takes in a variable number of arguments and puts them at the front
// of the Deque.
//
// PushFront reallocates at most once, no matter how many arguments. The last
// argument is the new front, so PushFront(1, 2, 3) leaves 3 at the front.
func (d *Deque[T]) PushFront(ts ...T) {
	n := uint(len(ts))
	d.grow(n)
	base := d.head - 1
	for i, t := range ts {
		d.buf[(base-uint(i))&d.mask] = t
	}
	d.head -= n
}

// Front returns the first element without removing it, or ErrEmptyContainer.
func (d *Deque[T]) Front() (t T, err error) {
	if d.Len() == 0 {
		return t, ErrEmptyContainer
	}
	return d.buf[d.head&d.mask], nil
}

// Back returns the last element without removing it, or ErrEmptyContainer.
func (d *Deque[T]) Back() (t T, err error) {
	if d.Len() == 0 {
		return t, ErrEmptyContainer
	}
	return d.buf[(d.tail-1)&d.mask], nil
}

// PopFront removes the first element in the Deque and returns it. If the Deque
// is empty, it returns ErrEmptyContainer and nothing changes.
func (d *Deque[T]) PopFront() (t T, err error) {
	if d.Len() == 0 {
		return t, ErrEmptyContainer
	}
	return d.PopFrontUnsafe(), nil
}

// PopBack removes the last element in the Deque and returns it. If the Deque
// is empty, it returns ErrEmptyContainer and nothing changes.
func (d *Deque[T]) PopBack() (t T, err error) {
	if d.Len() == 0 {
		return t, ErrEmptyContainer
	}
	return d.PopBackUnsafe(), nil
}

// PopFrontUnsafe removes the first element and returns it without checking
// for emptiness. Callers that already checked Len save a branch. Calling this
// method with an empty Deque leads to undefined behavior from then on.
func (d *Deque[T]) PopFrontUnsafe() T {
	var zero T
	i := d.head & d.mask
	t := d.buf[i]
	d.buf[i] = zero
	d.head++
	return t
}

// PopBackUnsafe removes the last element and returns it without checking for
// emptiness. Calling this method with an empty Deque leads to undefined
// behavior from then on.
func (d *Deque[T]) PopBackUnsafe() T {
	var zero T
	d.tail--
	i := d.tail & d.mask
	t := d.buf[i]
	d.buf[i] = zero
	return t
}

// DropFront removes the n first elements of the Deque in O(n). If the Deque
// has fewer than n elements, it drops every element. If n is negative, no
// element is dropped.
func (d *Deque[T]) DropFront(n int) {
	if n <= 0 {
		return
	}
	n = min(n, d.Len())
	var zero T
	for range n {
		d.buf[d.head&d.mask] = zero
		d.head++
	}
}

// DropBack removes the n last elements of the Deque in O(n). If the Deque has
// fewer than n elements, it drops every element. If n is negative, no element
// is dropped.
func (d *Deque[T]) DropBack(n int) {
	if n <= 0 {
		return
	}
	n = min(n, d.Len())
	var zero T
	for range n {
		d.tail--
		d.buf[d.tail&d.mask] = zero
	}
}

// Clear empties the Deque in O(d.Len()), zeroing existing elements and
// keeping the capacity for reuse.
func (d *Deque[T]) Clear() {
	var zero T
	for i := d.head; i != d.tail; i++ {
		d.buf[i&d.mask] = zero
	}
	d.head, d.tail = 0, 0
}

// ClearLazy empties the Deque in O(1), but does not zero the elements. If
// they hold references, the memory they point to stays reachable until the
// slots are overwritten. Capacity is retained.
func (d *Deque[T]) ClearLazy() { d.head, d.tail = 0, 0 }

// Reverse reverses the order of the elements in place in O(d.Len()).
func (d *Deque[T]) Reverse() {
	for i, j := 0, d.Len()-1; i < j; i, j = i+1, j-1 {
		d.SwapUnsafe(i, j)
	}
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func ceilPow2(x uint) uint {
	// For our purposes, 0 is invalid.
	if x <= 1 {
		return 1
	}
	return 1 << (bits.UintSize - bits.LeadingZeros(x-1))
}

// grow makes room for n more elements.
func (d *Deque[T]) grow(n uint) {
	if d.len()+n > d.cap() {
		_ = d.resize(ceilPow2(d.len() + n))
	}
}

// slot maps a logical index to its position in buf.
func (d *Deque[T]) slot(i int) uint { return (d.head + uint(i)) & d.mask }

func (d *Deque[T]) inBounds(i int) bool { return i >= 0 && i < d.Len() }
