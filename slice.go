package deque

import "github.com/pkg/errors"

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int  { return len(d.buf) }
func (d *Deque[T]) cap() uint { return uint(len(d.buf)) }

// Resize takes in the minimum desired capacity, rounds it up to a power of
// two, and reallocates the underlying buffer.
//
// It returns an error if the new capacity matches the old, or if the new
// capacity cannot hold the existing elements, or if minCapacity is negative.
func (d *Deque[T]) Resize(minCapacity int) error {
	if minCapacity < 0 {
		return ErrNegativeCapacity
	}
	return d.resize(ceilPow2(uint(minCapacity)))
}

// Internal implementation for Resize, Reserve, Shrink and growth on push.
// Elements are laid out front-to-back from index 0 of the new buffer.
func (d *Deque[T]) resize(newCap uint) error {
	if newCap == d.cap() {
		return ErrSameCapacity
	}

	oldLen := d.len()
	if oldLen > newCap {
		return ErrNotEnoughCapacity
	}

	newBuf := make([]T, newCap)
	d.CopySlice(0, newBuf)

	d.buf = newBuf
	d.head = 0
	d.tail = oldLen
	d.mask = newCap - 1
	return nil
}

// Reserve ensures there's enough capacity to add at least n more elements to
// the Deque, reallocating if necessary. It returns an error if n is negative.
func (d *Deque[T]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	d.grow(uint(n))
	return nil
}

// Shrink reallocates the underlying slice to the smallest power of two that
// holds every element and returns the new capacity.
func (d *Deque[T]) Shrink() int {
	newCap := ceilPow2(d.len())
	// Already at the smallest size is not an error for Shrink.
	_ = d.resize(newCap)
	return int(newCap)
}

// Helper to reuse the slices package functions. The second slice is non-nil
// only when the elements wrap around the end of buf.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.Empty() {
		return nil, nil
	}

	h := d.head & d.mask
	t := d.tail & d.mask

	if h < t {
		return d.buf[h:t], nil
	}
	return d.buf[h:], d.buf[:t]
}

// ToSlice allocates a slice holding every element from front to back. The
// result does not share memory with the Deque.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, d.Len())
	d.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until buf is full or
// the Deque is over, whichever happens first.
//
// CopySlice returns the number of elements copied. A start outside
// [0, d.Len()] copies nothing.
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	if start < 0 || start > d.Len() {
		return 0
	}
	s1, s2 := d.slices()
	if start >= len(s1) {
		return copy(buf, s2[start-len(s1):])
	}
	n := copy(buf, s1[start:])
	return n + copy(buf[n:], s2)
}

// At returns the element at logical index i, where 0 is the front. It returns
// an error wrapping ErrIndexOutOfRange if i is out of bounds.
func (d *Deque[T]) At(i int) (t T, err error) {
	if err := d.checkBounds(i); err != nil {
		return t, err
	}
	return d.AtUnsafe(i), nil
}

// AtUnsafe indexes into the i-th position in the Deque. It never panics on a
// non-empty Deque, but returns garbage if i is out of bounds.
func (d *Deque[T]) AtUnsafe(i int) T {
	return d.buf[d.slot(i)]
}

// Set writes t to the i-th position in the Deque. It returns an error
// wrapping ErrIndexOutOfRange if i is out of bounds.
func (d *Deque[T]) Set(i int, t T) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	d.SetUnsafe(i, t)
	return nil
}

// SetUnsafe writes t to the i-th position in the Deque. It never panics on a
// non-empty Deque, but writes to another slot if i is out of bounds.
func (d *Deque[T]) SetUnsafe(i int, t T) {
	d.buf[d.slot(i)] = t
}

// Swap swaps the elements in the i-th and j-th indexes. It returns an error
// wrapping ErrIndexOutOfRange if either index is out of bounds.
func (d *Deque[T]) Swap(i, j int) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	if err := d.checkBounds(j); err != nil {
		return err
	}
	d.SwapUnsafe(i, j)
	return nil
}

// SwapUnsafe swaps the elements in the i-th and j-th indexes without bounds
// checks.
func (d *Deque[T]) SwapUnsafe(i, j int) {
	si, sj := d.slot(i), d.slot(j)
	d.buf[si], d.buf[sj] = d.buf[sj], d.buf[si]
}

// Insert puts t at logical index i, so that At(i) returns t afterwards.
// Insert(0, t) is PushFront(t) and Insert(d.Len(), t) is PushBack(t). Any
// other index must be in [0, d.Len()], otherwise an error wrapping
// ErrIndexOutOfRange is returned and the Deque is unchanged.
//
// The elements between i and the closer end are shifted by one slot, so the
// cost is linear in min(i, d.Len()-i).
func (d *Deque[T]) Insert(i int, t T) error {
	n := d.Len()
	if i < 0 || i > n {
		return outOfRange(i, n)
	}
	d.grow(1)

	if i < n/2 {
		// Open a slot before the front and slide [0, i) one step toward it.
		d.head--
		for k := 0; k < i; k++ {
			d.buf[d.slot(k)] = d.buf[d.slot(k+1)]
		}
	} else {
		// Slide [i, n) one step toward the back.
		for k := n; k > i; k-- {
			d.buf[d.slot(k)] = d.buf[d.slot(k-1)]
		}
		d.tail++
	}
	d.buf[d.slot(i)] = t
	return nil
}

// Remove deletes the element at logical index i and returns it. It returns
// an error wrapping ErrIndexOutOfRange if i is out of bounds, and the Deque is
// unchanged.
//
// Like Insert, it shifts the elements on the shorter side of i.
func (d *Deque[T]) Remove(i int) (t T, err error) {
	if err := d.checkBounds(i); err != nil {
		return t, err
	}
	t = d.AtUnsafe(i)

	n := d.Len()
	if i < n/2 {
		for k := i; k > 0; k-- {
			d.buf[d.slot(k)] = d.buf[d.slot(k-1)]
		}
		d.PopFrontUnsafe()
	} else {
		for k := i; k < n-1; k++ {
			d.buf[d.slot(k)] = d.buf[d.slot(k+1)]
		}
		d.PopBackUnsafe()
	}
	return t, nil
}

func (d *Deque[T]) checkBounds(i int) error {
	if !d.inBounds(i) {
		return outOfRange(i, d.Len())
	}
	return nil
}

func outOfRange(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", i, n)
}
