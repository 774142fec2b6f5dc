package container

// Queue is a FIFO built from two stacks: pushes go to back, pops come from
// front, and front is refilled from back only when it runs dry.
type Queue[T any] struct {
	back  *Stack[T]
	front *Stack[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		back:  NewStack[T](),
		front: NewStack[T](),
	}
}

func (q *Queue[T]) Push(x T) {
	q.back.Push(x)
}

func (q *Queue[T]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if ok {
			q.front.Push(x)
		} else {
			break
		}
	}
}

// Pop returns the oldest element; false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	x, ok2 := q.front.Pop()
	return x, ok2
}

func (q *Queue[T]) Len() int {
	return q.back.Len() + q.front.Len()
}
