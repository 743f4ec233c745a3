package deque

import "github.com/pkg/errors"

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmptyContainer is returned when reading or removing an end of an empty
// Deque.
var ErrEmptyContainer = errors.New("deque: empty container")

// ErrIndexOutOfRange is wrapped by every indexed operation given an index
// outside the Deque. Match it with errors.Is.
var ErrIndexOutOfRange = errors.New("deque: index out of range")

// ErrSameCapacity is returned when trying to resize a Deque to its current
// capacity.
var ErrSameCapacity = errors.New("deque: already at asked capacity")

// ErrNotEnoughCapacity is returned when trying to resize a Deque to a capacity
// that cannot hold its existing elements.
var ErrNotEnoughCapacity = errors.New("deque: cannot hold existing elements in asked capacity")

// ErrNegativeCapacity is returned when trying to resize a Deque to a negative
// capacity.
var ErrNegativeCapacity = errors.New("deque: capacity cannot be negative")
