package flist

import "github.com/pkg/errors"

// Iterator walks a list from head to tail. The iterator itself is a cursor and
// not safe for concurrent use; the list it walks is.
type Iterator[T any] struct {
	current List[T]
}

// HasNext is true while there are elements left.
func (it *Iterator[T]) HasNext() bool {
	return it.current != nil && !it.current.IsEmpty()
}

// Next returns the next element and advances the cursor. Calling Next on an
// exhausted iterator returns ErrExhaustedIterator.
func (it *Iterator[T]) Next() (T, error) {
	head, tail, ok := Uncons(it.current)
	if !ok {
		tracer().Debugf("next() called on exhausted list iterator")
		return head, errors.WithStack(ErrExhaustedIterator)
	}
	it.current = tail
	return head, nil
}
