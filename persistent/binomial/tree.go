package binomial

import (
	"fmt"

	"github.com/npillmayer/fheap/persistent/flist"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Tree is a binomial tree. A tree of order k holds 2^k values and has k children
// of orders k-1, k-2, …, 0, in this sequence. The root value is less than or equal
// to every value below it.
type Tree[T constraints.Ordered] struct {
	value    T
	order    int
	children flist.List[*Tree[T]]
}

// SingleTree creates a tree of order 0 holding value.
func SingleTree[T constraints.Ordered](value T) *Tree[T] {
	return &Tree[T]{value: value, children: flist.Empty[*Tree[T]]()}
}

// Combine links two trees of equal order o into a tree of order o+1. The tree with
// the smaller root becomes the root, the other one its first child. On equal root
// values a stays on top.
//
// Neither a nor b is modified; the children of the new root are shared. O(1).
func Combine[T constraints.Ordered](a, b *Tree[T]) (*Tree[T], error) {
	if a.order != b.order {
		return nil, errors.Wrapf(ErrOrderMismatch, "cannot combine order %d with order %d",
			a.order, b.order)
	}
	if b.value < a.value {
		a, b = b, a
	}
	return &Tree[T]{
		value:    a.value,
		order:    a.order + 1,
		children: flist.Cons(b, a.children),
	}, nil
}

// link is Combine for callers which ensure equal order.
func link[T constraints.Ordered](a, b *Tree[T]) *Tree[T] {
	t, err := Combine(a, b)
	if err != nil {
		panic(err)
	}
	return t
}

// Value is the root value, the minimum of the tree.
func (t *Tree[T]) Value() T {
	return t.value
}

// Order is the degree of the tree.
func (t *Tree[T]) Order() int {
	return t.order
}

// Children returns the sub-trees of t, highest order first.
func (t *Tree[T]) Children() flist.List[*Tree[T]] {
	return t.children
}

// Size is the number of values in t, 2^order.
func (t *Tree[T]) Size() int {
	return 1 << t.order
}

// Values lists all values of t in pre-order.
func (t *Tree[T]) Values() flist.List[T] {
	below := flist.FoldRight(t.children, flist.Empty[T](), func(ch *Tree[T], acc flist.List[T]) flist.List[T] {
		return ch.Values().Concat(acc)
	})
	return flist.Cons(t.value, below)
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("B%d(%v)", t.order, t.value)
}
