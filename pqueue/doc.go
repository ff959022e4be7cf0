// Package pqueue implements a generic, fixed-capacity priority queue backed
// by a binary min-heap.
//
// The ordering is supplied by the caller as a LessFunc, so the queue knows
// nothing about the items it holds.  Overflow and underflow are reported as
// errors rather than silently dropping items or fabricating zero values.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Binary_heap>
//
package pqueue
