package binomial

import (
	"github.com/npillmayer/fheap/persistent/flist"
	"golang.org/x/exp/constraints"
)

// Merging two heaps happens in two steps, very much like adding two binary numbers.
// First the tree lists of both heaps are interleaved into a single list, sorted
// by order. This list may contain two trees of the same order. Then the list is
// scanned from low to high orders, linking equal-order pairs into trees of the
// next order ("carries").

// interleave merges two tree lists, each sorted by increasing order, into one list
// sorted by non-decreasing order. Of two trees of equal order, the one from a comes
// first. O(len(a) + len(b)).
func interleave[T constraints.Ordered](a, b flist.List[*Tree[T]]) flist.List[*Tree[T]] {
	x, xs, okA := flist.Uncons(a)
	if !okA {
		return b
	}
	y, ys, okB := flist.Uncons(b)
	if !okB {
		return a
	}
	if y.order < x.order {
		return flist.Cons(y, interleave(a, ys))
	}
	return flist.Cons(x, interleave(xs, b))
}

// resolve scans an interleaved tree list and links trees of equal order until every
// order occurs at most once. It is a state machine over three cursors:
//
//	rest  : the part of the list still to scan
//	carry : a tree produced by the previous link step, or nil
//	acc   : the result so far, in reverse
//
// A carry has the order of the current tree or lower. If current and next share an
// order, they are linked first and a carry of that same order is emitted unchanged.
// Otherwise a carry of the current order is linked with current. A collision of
// carry and next alone cannot occur, as next never has a lower order than current.
func resolve[T constraints.Ordered](rest flist.List[*Tree[T]], carry *Tree[T], acc flist.List[*Tree[T]]) flist.List[*Tree[T]] {
	current, tail, ok := flist.Uncons(rest)
	if !ok {
		if carry != nil {
			acc = flist.Cons(carry, acc)
		}
		return acc.Reverse()
	}
	assertThat(carry == nil || carry.order <= current.order,
		"carry of order %d passed tree of order %d", orderOf(carry), current.order)
	next, after, hasNext := flist.Uncons(tail)
	switch {
	case carry != nil && carry.order < current.order:
		return resolve(rest, nil, flist.Cons(carry, acc))
	case hasNext && next.order == current.order:
		if carry != nil {
			acc = flist.Cons(carry, acc)
		}
		return resolve(after, link(current, next), acc)
	case carry != nil:
		return resolve(tail, link(carry, current), acc)
	}
	return resolve(tail, nil, flist.Cons(current, acc))
}

// merge is the carry-propagating merge of two valid tree lists.
func merge[T constraints.Ordered](a, b flist.List[*Tree[T]]) flist.List[*Tree[T]] {
	return resolve(interleave(a, b), nil, flist.Empty[*Tree[T]]())
}

func orderOf[T constraints.Ordered](t *Tree[T]) int {
	if t == nil {
		return -1
	}
	return t.order
}
