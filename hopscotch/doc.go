// Package hopscotch implements a concurrent, ordered set of byte-string
// elements backed by a lazy, lock-based skip list with optimistic
// validation.
//
// A skip list is a set of stacked singly linked lists: level 0 holds every
// element in order, and each level above it is a geometrically sparser
// sampling of the level below, letting search skip over long runs of
// elements the way binary search skips over halves of an array. Unlike a
// balanced tree, no rebalancing is required — the expected O(log n) search
// depth falls out of the random level each node is given at birth.
//
// This implementation is "lazy": deleting an element first flips a mark
// bit (logical deletion, visible to Contains immediately) and only later
// swings predecessor pointers past the node (physical unlinking). Readers
// never block on a concurrent delete, and Contains never takes a lock.
// Add and Remove search the list without locks, then acquire the handful
// of predecessor locks they need in a fixed bottom-up order, re-validate
// that nothing changed underneath them, and either commit or retry.
//
// See the Herlihy & Shavit "lazy concurrent skip list" and the original
// hopscotch C library (github.com/jonathanmarvens/hopscotch) this package
// is descended from.
package hopscotch
