package pqueue

// PriorityQueue is a binary min-heap over a dense, zero-indexed slice.
// The element at index 0 is always a minimum according to less.
//
// A PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates an empty PriorityQueue ordered by less.
// less must report whether a sorts strictly before b.
func New[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pqueue: less function cannot be nil")
	}
	return &PriorityQueue[T]{less: less}
}

// Insert appends item and sifts it up until its parent is not greater.
func (q *PriorityQueue[T]) Insert(item T) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// ExtractMin removes and returns the minimum element.
// It returns false if the queue is empty.
func (q *PriorityQueue[T]) ExtractMin() (T, bool) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, false
	}

	if n == 1 {
		item := q.items[0]
		q.items[0] = zero
		q.items = q.items[:0]
		return item, true
	}

	minItem := q.items[0]
	q.items[0] = q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]
	q.siftDown(0)

	return minItem, true
}

// Peek returns the minimum element without removing it.
// It returns false if the queue is empty.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// IsEmpty reports whether the queue holds no elements.
func (q *PriorityQueue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Size returns the number of elements in the queue.
func (q *PriorityQueue[T]) Size() int {
	return len(q.items)
}

// Items returns a copy of the elements in heap-array order.
// The order is not sorted; callers that need priority order must sort the copy.
func (q *PriorityQueue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

func (q *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *PriorityQueue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && q.less(q.items[left], q.items[smallest]) {
			smallest = left
		}
		if right < n && q.less(q.items[right], q.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}

		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
