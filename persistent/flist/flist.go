package flist

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fheap"
	"github.com/npillmayer/fheap/maybe"
)

// List is a persistent list of values of type T. It has two variants, the empty
// list and a cell holding a head and a tail. Both are created by the functions of
// this package only.
//
// A nil List is treated as the empty list by the package-level functions.
type List[T any] interface {
	Size() int
	IsEmpty() bool
	Head() maybe.Maybe[T]
	Tail() List[T]
	Filter(func(T) bool) List[T]
	Reverse() List[T]
	Concat(List[T]) List[T]
	Iterator() *Iterator[T]
	String() string
	isList()
}

type empty[T any] struct{}

type cell[T any] struct {
	head T
	tail List[T]
	size int
}

var _ List[int] = empty[int]{}
var _ List[int] = &cell[int]{}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return empty[T]{}
}

// Cons prepends head to tail. tail is shared, not copied.
func Cons[T any](head T, tail List[T]) List[T] {
	if tail == nil {
		tail = Empty[T]()
	}
	return &cell[T]{head: head, tail: tail, size: 1 + tail.Size()}
}

// Of creates a list holding values in the order given. O(n).
func Of[T any](values ...T) List[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	return Cons(values[0], Of(values[1:]...))
}

// Uncons splits l into head and tail. If l is empty, ok is false.
func Uncons[T any](l List[T]) (head T, tail List[T], ok bool) {
	if c, isCell := l.(*cell[T]); isCell {
		return c.head, c.tail, true
	}
	return head, Empty[T](), false
}

// Map returns a list of the same length with every element replaced by f(element).
// f is applied eagerly, from head to tail. O(n).
func Map[T, U any](l List[T], f func(T) U) List[U] {
	if c, ok := l.(*cell[T]); ok {
		return &cell[U]{head: f(c.head), tail: Map(c.tail, f), size: c.size}
	}
	return Empty[U]()
}

// Fold is a left fold: f(acc, element) is applied from head to tail, starting
// with acc = base. If l is empty, base is returned untouched. O(n).
func Fold[T, U any](l List[T], base U, f func(U, T) U) U {
	if c, ok := l.(*cell[T]); ok {
		return Fold(c.tail, f(base, c.head), f)
	}
	return base
}

// FoldRight is a right fold: f(element, acc) is applied from tail to head.
func FoldRight[T, U any](l List[T], base U, f func(T, U) U) U {
	if c, ok := l.(*cell[T]); ok {
		return f(c.head, FoldRight(c.tail, base, f))
	}
	return base
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	ha, ta, okA := Uncons(a)
	hb, tb, okB := Uncons(b)
	switch {
	case !okA || !okB:
		return okA == okB
	case ha != hb:
		return false
	}
	return Equal(ta, tb)
}

// ToSlice copies the elements of l into a new slice, head first.
func ToSlice[T any](l List[T]) []T {
	size := 0
	if l != nil {
		size = l.Size()
	}
	return Fold(l, make([]T, 0, size), func(s []T, x T) []T {
		return append(s, x)
	})
}

// --- Empty -----------------------------------------------------------------

func (empty[T]) isList()                         {}
func (empty[T]) Size() int                       { return 0 }
func (empty[T]) IsEmpty() bool                   { return true }
func (empty[T]) Head() maybe.Maybe[T]            { return maybe.Nothing[T]() }
func (e empty[T]) Tail() List[T]                 { return e }
func (e empty[T]) Filter(f func(T) bool) List[T] { return e }
func (e empty[T]) Reverse() List[T]              { return e }
func (e empty[T]) Iterator() *Iterator[T]        { return &Iterator[T]{current: e} }
func (empty[T]) String() string                  { return "()" }

func (e empty[T]) Concat(other List[T]) List[T] {
	if other == nil {
		return e
	}
	return other
}

// --- Cell ------------------------------------------------------------------

func (c *cell[T]) isList()              {}
func (c *cell[T]) Size() int            { return c.size }
func (c *cell[T]) IsEmpty() bool        { return false }
func (c *cell[T]) Head() maybe.Maybe[T] { return maybe.Just(c.head) }
func (c *cell[T]) Tail() List[T]        { return c.tail }

// Filter keeps the elements for which f holds, in their original order. O(n).
func (c *cell[T]) Filter(f func(T) bool) List[T] {
	if f(c.head) {
		return Cons(c.head, c.tail.Filter(f))
	}
	return c.tail.Filter(f)
}

// Reverse builds a new chain of cells in reverse order. O(n).
func (c *cell[T]) Reverse() List[T] {
	return Fold[T, List[T]](c, Empty[T](), fheap.Flip(Cons[T]))
}

// Concat appends other after the last element of c. The cells of c are rebuilt,
// other is shared unmodified. O(n) in the length of c.
func (c *cell[T]) Concat(other List[T]) List[T] {
	if other == nil {
		other = Empty[T]()
	}
	return Fold(c.Reverse(), other, fheap.Flip(Cons[T]))
}

func (c *cell[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: c}
}

func (c *cell[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	Fold[T, int](c, 0, func(i int, x T) int {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
		return i + 1
	})
	b.WriteByte(')')
	return b.String()
}
