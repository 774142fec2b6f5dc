package container

// Stack is a LIFO work list. It is not safe for concurrent use.
type Stack[T any] struct {
	elements []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		elements: []T{},
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	// clear the slot so popped pointers can be collected
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

// Peek is like Pop but leaves the element on the stack.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.elements)
}
