/*
Package persistent is the home of the immutable persistent data structures of this
module.

Persistent data structures never change once they are built. Every "modification"
returns a new value, and the previous value stays valid and observable. Through
structural sharing, most of the memory of two such values is shared between them,
which keeps copies cheap in terms of space and time.

Immutable data structures offer benefits over mutable ones in terms of concurrent
access and functional reasoning: there is nothing to synchronize between readers.

   flist      // singly-linked list built from cons cells
   binomial   // binomial trees and a mergeable binomial min-heap

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
