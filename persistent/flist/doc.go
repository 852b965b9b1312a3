/*
Package flist implements an immutable persistent singly-linked list.

A list is either empty or a cell holding a head value and a tail list. Prepending a
value with Cons never touches the tail: the tail stays valid and is shared between
every list built from it. All operations are expressed through recursion and folds
and return new lists, leaving their operands unmodified.

    l := flist.Of(1, 2, 3)
    m := flist.Cons(0, l)        // (0 1 2 3), l is still (1 2 3)
    sq := flist.Map(l, func(n int) int { return n * n })
    sum := flist.Fold(l, 0, func(acc, n int) int { return acc + n })

Lists are inherently concurrency-safe for readers; there is nothing to write to.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flist

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'fp.flist'.
func tracer() tracing.Trace {
	return tracing.Select("fp.flist")
}

// ErrExhaustedIterator is returned when an iterator is asked for an element past
// the end of its list.
var ErrExhaustedIterator = errors.New("iterator exhausted")
