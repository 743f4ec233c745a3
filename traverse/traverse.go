// Package traverse walks trees and DAGs described by a children function,
// using a Deque as the frontier: a queue for breadth-first order and a stack
// for depth-first order.
package traverse

import (
	"iter"

	"github.com/lucasgdosr/deque/v2"
)

// BreadthFirst returns an iterator over roots and their descendants in level
// order. Roots come first, in the order given, and siblings keep the order
// children returns them in.
//
// children is only called for nodes the consumer continued past, so breaking
// out of the loop stops the expansion. Nodes reachable through several paths
// are visited once per path; children must describe a finite graph.
func BreadthFirst[T any](roots []T, children func(T) []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		queue := deque.New(roots...)
		for queue.Len() > 0 {
			node := queue.PopFrontUnsafe()
			if !yield(node) {
				return
			}
			queue.PushBack(children(node)...)
		}
	}
}

// DepthFirst returns an iterator over roots and their descendants in
// pre-order: a node is yielded before its children, and the first child's
// subtree is exhausted before the second child is visited.
//
// It has the same laziness guarantees as BreadthFirst.
func DepthFirst[T any](roots []T, children func(T) []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := deque.New(roots...)
		stack.Reverse()
		for stack.Len() > 0 {
			node := stack.PopBackUnsafe()
			if !yield(node) {
				return
			}
			kids := children(node)
			for i := len(kids) - 1; i >= 0; i-- {
				stack.PushBack(kids[i])
			}
		}
	}
}
