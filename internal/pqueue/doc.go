// Package pqueue provides an array-backed binary min-heap.
//
// The heap knows nothing about the values it holds; ordering comes entirely
// from the comparator supplied at construction. Operations on an empty queue
// report absence through a boolean rather than an error, since an empty queue
// is a routine state.
package pqueue
