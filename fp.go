/*
Package fheap provides a persistent priority queue for Go, implemented as a binomial
heap on top of a persistent singly-linked list.

All values are immutable. Operations return new values and share unaffected structure
with their operands, which makes concurrent readers safe without any locking.

Sub-packages:

   persistent/flist      // persistent list: Cons, Map, Filter, Fold, Reverse, Concat
   persistent/binomial   // binomial trees and the binomial heap
   maybe                 // optional values

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fheap

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Flip swaps the arguments of a binary function. Useful for turning a cons-like
// function into a fold step.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
