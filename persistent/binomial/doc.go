/*
Package binomial implements an immutable persistent binomial heap.

A binomial heap is a forest of binomial trees, at most one tree per order, kept in
strictly increasing order. A heap of n elements holds one tree for every bit set in
the binary representation of n. Merging two heaps therefore works like adding two
binary numbers: trees of equal order are combined into a tree of the next order,
which is carried on to the next position.

    h := binomial.Of(5, 3, 8)
    h = h.Insert(1)
    min := h.FindMin()                // 1
    rest := h.DeleteMin()             // Maybe[Heap]: Nothing if h held just one value

Merge, Insert, FindMin and DeleteMin are O(log n). Trees and heaps are never
modified after construction; every operation returns a new heap which shares the
untouched trees with its operands. Readers may therefore use a heap concurrently
without any synchronization.

Trees and tree lists are built on package flist.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binomial

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'fp.binomial'.
func tracer() tracing.Trace {
	return tracing.Select("fp.binomial")
}

// ErrOrderMismatch is returned when combining two trees of different order.
var ErrOrderMismatch = errors.New("binomial trees differ in order")

// ErrEmptyHeap signals that an operation would have produced, or was handed, a heap
// without any trees. Heaps are never empty; running out of elements is reported by
// DeleteMin as Nothing.
var ErrEmptyHeap = errors.New("heap has no trees")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.Errorf("binomial: "+msg, msgargs...))
	}
}
