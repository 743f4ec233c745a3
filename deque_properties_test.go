package deque

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	opPushFront = iota
	opPushBack
	opPopFront
	opPopBack
	opInsert
	opRemove
	opCount
)

// applyOp runs one encoded operation against both the Deque and a plain slice
// model and reports the first divergence.
func applyOp(d *Deque[int], model []int, code uint32) ([]int, string) {
	op, arg := code%opCount, int(code/opCount)
	switch op {
	case opPushFront:
		d.PushFront(arg)
		return slices.Insert(model, 0, arg), ""
	case opPushBack:
		d.PushBack(arg)
		return append(model, arg), ""
	case opPopFront:
		got, err := d.PopFront()
		if len(model) == 0 {
			if !errors.Is(err, ErrEmptyContainer) {
				return model, fmt.Sprintf("PopFront on empty returned %v", err)
			}
			return model, ""
		}
		if err != nil || got != model[0] {
			return model, fmt.Sprintf("PopFront returned (%d, %v), expected %d", got, err, model[0])
		}
		return model[1:], ""
	case opPopBack:
		got, err := d.PopBack()
		if len(model) == 0 {
			if !errors.Is(err, ErrEmptyContainer) {
				return model, fmt.Sprintf("PopBack on empty returned %v", err)
			}
			return model, ""
		}
		last := model[len(model)-1]
		if err != nil || got != last {
			return model, fmt.Sprintf("PopBack returned (%d, %v), expected %d", got, err, last)
		}
		return model[:len(model)-1], ""
	case opInsert:
		i := arg % (len(model) + 1)
		if err := d.Insert(i, arg); err != nil {
			return model, fmt.Sprintf("Insert(%d) failed: %v", i, err)
		}
		return slices.Insert(model, i, arg), ""
	case opRemove:
		if len(model) == 0 {
			return model, ""
		}
		i := arg % len(model)
		got, err := d.Remove(i)
		if err != nil || got != model[i] {
			return model, fmt.Sprintf("Remove(%d) returned (%d, %v), expected %d", i, got, err, model[i])
		}
		return slices.Delete(model, i, i+1), ""
	}
	return model, fmt.Sprintf("unknown op %d", op)
}

func TestDequeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("construction then iteration reproduces the input", prop.ForAll(
		func(xs []int) bool {
			d := New(xs...)
			return d.Len() == len(xs) &&
				slices.Equal(xs, d.ToSlice()) &&
				slices.Equal(xs, slices.Collect(d.Iter())) &&
				Equal(d, Collect(slices.Values(xs)))
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("reverse twice restores the order", prop.ForAll(
		func(xs []int, rotate uint8) bool {
			d := New(xs...)
			// Move the front around so the contents wrap.
			for range int(rotate) % (len(xs) + 1) {
				front, _ := d.PopFront()
				d.PushBack(front)
			}
			before := d.ToSlice()

			d.Reverse()
			reversed := slices.Clone(before)
			slices.Reverse(reversed)
			if !slices.Equal(reversed, d.ToSlice()) {
				return false
			}
			d.Reverse()
			return slices.Equal(before, d.ToSlice())
		},
		gen.SliceOf(gen.Int()),
		gen.UInt8(),
	))

	properties.Property("push front then pop front returns the pushed value", prop.ForAll(
		func(xs []int, x int) bool {
			d := New(xs...)
			d.PushFront(x)
			got, err := d.PopFront()
			return err == nil && got == x && slices.Equal(xs, d.ToSlice())
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))

	properties.Property("operations agree with a slice model", prop.ForAll(
		func(xs []int, codes []uint32) string {
			d := New(xs...)
			model := slices.Clone(xs)
			lastCap := d.Cap()
			for step, code := range codes {
				var failure string
				model, failure = applyOp(d, model, code)
				if failure != "" {
					return fmt.Sprintf("step %d: %s", step, failure)
				}
				if d.Len() != len(model) {
					return fmt.Sprintf("step %d: length %d, expected %d", step, d.Len(), len(model))
				}
				if c := d.Cap(); c < lastCap || (c > 0 && bits.OnesCount(uint(c)) != 1) {
					return fmt.Sprintf("step %d: capacity went from %d to %d", step, lastCap, c)
				}
				lastCap = d.Cap()
			}
			if !slices.Equal(model, d.ToSlice()) {
				return fmt.Sprintf("contents %v, expected %v", d.ToSlice(), model)
			}
			return ""
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.UInt32()),
	))

	properties.TestingRun(t)
}
