package binomial

import (
	"fmt"

	"github.com/npillmayer/fheap/maybe"
	"github.com/npillmayer/fheap/persistent/flist"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// SelfMergeable is implemented by containers which merge with values of their own type.
type SelfMergeable[H any] interface {
	Merge(other H) H
}

// Heap is an immutable min-heap. A heap always holds at least one value; heaps are
// created with Single or Of and derived from existing heaps by Merge, Insert and
// DeleteMin. The zero value is not a usable heap.
type Heap[T constraints.Ordered] struct {
	trees flist.List[*Tree[T]] // strictly increasing order
	size  int
}

var _ SelfMergeable[Heap[int]] = Heap[int]{}

func newHeap[T constraints.Ordered](trees flist.List[*Tree[T]], size int) Heap[T] {
	if trees == nil || trees.IsEmpty() {
		panic(errors.Wrap(ErrEmptyHeap, "binomial"))
	}
	return Heap[T]{trees: trees, size: size}
}

// Single creates a heap holding value.
func Single[T constraints.Ordered](value T) Heap[T] {
	return newHeap(flist.Of(SingleTree(value)), 1)
}

// Of creates a heap holding all the given values.
func Of[T constraints.Ordered](value T, values ...T) Heap[T] {
	return flist.Fold(flist.Of(values...), Single(value), func(h Heap[T], v T) Heap[T] {
		return h.Insert(v)
	})
}

// Merge returns a heap holding the values of both h and other. O(log n).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	tracer().Debugf("merge heaps of size %d and %d", h.size, other.size)
	return newHeap(merge(h.trees, other.trees), h.size+other.size)
}

// Insert returns a heap with value added to the values of h. O(log n).
func (h Heap[T]) Insert(value T) Heap[T] {
	return h.Merge(Single(value))
}

// FindMin returns the smallest value of h. O(log n).
func (h Heap[T]) FindMin() T {
	return h.minTree().value
}

// minTree is the first tree holding the minimum of h.
func (h Heap[T]) minTree() *Tree[T] {
	first, rest, ok := flist.Uncons(h.trees)
	if !ok {
		panic(errors.Wrap(ErrEmptyHeap, "binomial: find minimum"))
	}
	return flist.Fold(rest, first, func(best, t *Tree[T]) *Tree[T] {
		if t.value < best.value {
			return t
		}
		return best
	})
}

// DeleteMin removes the smallest value from h. If this was the last value of h,
// Nothing is returned. O(log n).
func (h Heap[T]) DeleteMin() maybe.Maybe[Heap[T]] {
	t := h.minTree()
	before, after := split(h.trees, t, flist.Empty[*Tree[T]]())
	remaining := before.Reverse().Concat(after)
	children := t.children.Reverse()
	if remaining.IsEmpty() && children.IsEmpty() {
		tracer().Debugf("removed last value %v, heap exhausted", t.value)
		return maybe.Nothing[Heap[T]]()
	}
	tracer().Debugf("remove %v, re-merge %d children", t.value, children.Size())
	return maybe.Just(newHeap(merge(remaining, children), h.size-1))
}

// split cuts trees at t. It returns the trees in front of t, in reverse, and the
// trees behind t.
func split[T constraints.Ordered](trees flist.List[*Tree[T]], t *Tree[T],
	before flist.List[*Tree[T]]) (flist.List[*Tree[T]], flist.List[*Tree[T]]) {
	//
	x, rest, ok := flist.Uncons(trees)
	assertThat(ok, "tree %v is not a member of the heap", t)
	if x == t {
		return before, rest
	}
	return split(rest, t, flist.Cons(x, before))
}

// PopMin returns the smallest value of h together with the heap which remains.
func (h Heap[T]) PopMin() (T, maybe.Maybe[Heap[T]]) {
	return h.FindMin(), h.DeleteMin()
}

// Len is the number of values in h.
func (h Heap[T]) Len() int {
	return h.size
}

// Trees returns the trees of h, in strictly increasing order.
func (h Heap[T]) Trees() flist.List[*Tree[T]] {
	return h.trees
}

// Orders lists the orders of the trees of h.
func (h Heap[T]) Orders() flist.List[int] {
	return flist.Map(h.trees, func(t *Tree[T]) int {
		return t.order
	})
}

// Values lists every value of h, tree by tree, in no particular order.
func (h Heap[T]) Values() flist.List[T] {
	return flist.FoldRight(h.trees, flist.Empty[T](), func(t *Tree[T], acc flist.List[T]) flist.List[T] {
		return t.Values().Concat(acc)
	})
}

// Sorted lists the values of h in ascending order. O(n log n).
func (h Heap[T]) Sorted() flist.List[T] {
	first, rest := h.PopMin()
	tail := maybe.Map(func(r Heap[T]) flist.List[T] {
		return r.Sorted()
	}, rest)
	return flist.Cons(first, tail.WithDefault(flist.Empty[T]()))
}

func (h Heap[T]) String() string {
	if h.trees == nil {
		return "Heap()"
	}
	return fmt.Sprintf("Heap(n=%d, %s)", h.size, h.trees)
}
