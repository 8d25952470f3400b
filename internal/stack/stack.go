package stack

// Stack is a last-in-first-out container. Items are appended and removed only
// at the tail of the backing slice.
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New creates an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// It returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}

	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, true
}

// Peek returns the top item without removing it.
// It returns false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of items on the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Items returns a copy of the stack contents in insertion order, oldest first.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
