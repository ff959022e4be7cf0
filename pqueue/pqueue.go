package pqueue

import (
	"errors"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	// ErrEmptyQueue is returned when the minimum of an empty Queue is
	// requested.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrCapacityExceeded is returned by Add when the Queue already holds
	// Capacity() items.  The item is not inserted.
	ErrCapacityExceeded = errors.New("priority queue capacity exceeded")
)

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// Queue is a fixed-capacity binary min-heap.
//
// The backing array is indexed from 1: the root lives at heap[1], and the
// children of heap[i] live at heap[2i] and heap[2i+1].  heap[0] is unused.
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	heap     []T
	count    int
	capacity int
	less     LessFunc[T]
}

// New constructs an empty Queue that holds at most capacity items, ordered
// by less.
func New[T any](capacity int, less func(a, b T) bool) *Queue[T] {
	assert.Assertf(capacity >= 0, "capacity %d < 0", capacity)
	assert.Assertf(less != nil, "less function is nil")
	return &Queue[T]{
		heap:     make([]T, capacity+1),
		capacity: capacity,
		less:     less,
	}
}

// NewOrdered constructs an empty Queue of naturally ordered items.
func NewOrdered[T constraints.Ordered](capacity int) *Queue[T] {
	return New(capacity, func(a, b T) bool { return a < b })
}

// FromSlice constructs a Queue holding exactly the given items.  Its
// capacity is len(items).  The heap is built bottom-up in O(n); items itself
// is not modified.
func FromSlice[T any](items []T, less func(a, b T) bool) *Queue[T] {
	q := New(len(items), less)
	copy(q.heap[1:], items)
	q.count = len(items)
	q.buildHeap()
	return q
}

// Add inserts item.  If the Queue is full, Add returns ErrCapacityExceeded
// and the Queue is left unchanged.
func (q *Queue[T]) Add(item T) error {
	if q.count >= q.capacity {
		return ErrCapacityExceeded
	}
	q.count++
	q.heap[q.count] = item
	q.percolateUp(q.count)
	return nil
}

// Remove discards the minimum item.  It reports false, and does nothing,
// if the Queue is empty.
func (q *Queue[T]) Remove() bool {
	if q.count == 0 {
		return false
	}
	var zero T
	q.heap[1] = q.heap[q.count]
	q.heap[q.count] = zero
	q.count--
	q.percolateDown(1)
	return true
}

// Front returns the minimum item without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.heap[1], nil
}

// Pop removes and returns the minimum item.
func (q *Queue[T]) Pop() (T, error) {
	item, err := q.Front()
	if err != nil {
		return item, err
	}
	q.Remove()
	return item, nil
}

// Empty reports whether the Queue holds no items.
func (q *Queue[T]) Empty() bool {
	return q.count == 0
}

// Size returns the number of items in the Queue.
func (q *Queue[T]) Size() int {
	return q.count
}

// Capacity returns the maximum number of items the Queue can hold.
func (q *Queue[T]) Capacity() int {
	return q.capacity
}

// MakeEmpty discards every item.
func (q *Queue[T]) MakeEmpty() {
	var zero T
	for i := 1; i <= q.count; i++ {
		q.heap[i] = zero
	}
	q.count = 0
}

// HeapSort sorts items in place, ascending by less, by heapifying a copy and
// extracting the minimum repeatedly.
func HeapSort[T any](items []T, less func(a, b T) bool) {
	q := FromSlice(items, less)
	for i := range items {
		item, err := q.Front()
		assert.Assertf(err == nil, "heap emptied after %d of %d items: %v", i, len(items), err)
		items[i] = item
		q.Remove()
	}
}

// Sorted returns a sorted copy of items, leaving items untouched.
func Sorted[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	HeapSort(out, less)
	return out
}

func (q *Queue[T]) buildHeap() {
	for i := q.count / 2; i >= 1; i-- {
		q.percolateDown(i)
	}
}

// percolateUp moves heap[i] toward the root while it is strictly less than
// its parent.  Equal items stop the climb.
func (q *Queue[T]) percolateUp(i int) {
	child := i
	for child > 1 {
		parent := child / 2
		if !q.less(q.heap[child], q.heap[parent]) {
			return
		}
		q.heap[child], q.heap[parent] = q.heap[parent], q.heap[child]
		child = parent
	}
}

// percolateDown moves heap[i] toward the leaves.  At each level the smaller
// child is chosen; the right child wins only when strictly less than the
// left.
func (q *Queue[T]) percolateDown(i int) {
	parent := i
	for 2*parent <= q.count {
		child := 2 * parent
		if child < q.count && q.less(q.heap[child+1], q.heap[child]) {
			child++
		}
		if !q.less(q.heap[child], q.heap[parent]) {
			return
		}
		q.heap[child], q.heap[parent] = q.heap[parent], q.heap[child]
		parent = child
	}
}
