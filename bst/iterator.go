package bst

import "linked_bst/container"

// Iterator yields the elements of one traversal, one at a time. Each call to a
// traversal method starts a fresh Iterator; mutating the tree while an
// Iterator is live gives unspecified results.
type Iterator[T any] struct {
	step func() (*node[T], bool)
}

// Next returns the next element. The boolean is false once the traversal is
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	n, ok := it.step()
	if !ok {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// ForEach calls fn on the remaining elements until fn returns false.
func (it *Iterator[T]) ForEach(fn func(T) bool) {
	for {
		x, ok := it.Next()
		if !ok || !fn(x) {
			return
		}
	}
}

// Collect drains the remaining elements into a slice.
func (it *Iterator[T]) Collect() []T {
	var out []T
	it.ForEach(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

func pushLeftSpine[T any](s *container.Stack[*node[T]], n *node[T]) {
	for n != nil {
		s.Push(n)
		n = n.left
	}
}

func pushRightSpine[T any](s *container.Stack[*node[T]], n *node[T]) {
	for n != nil {
		s.Push(n)
		n = n.right
	}
}

// Inorder visits the elements in ascending order.
func (t *Tree[T]) Inorder() *Iterator[T] {
	s := container.NewStack[*node[T]]()
	pushLeftSpine(s, t.root)
	return &Iterator[T]{step: func() (*node[T], bool) {
		n, ok := s.Pop()
		if !ok {
			return nil, false
		}
		pushLeftSpine(s, n.right)
		return n, true
	}}
}

// Descending visits the elements in descending order.
func (t *Tree[T]) Descending() *Iterator[T] {
	s := container.NewStack[*node[T]]()
	pushRightSpine(s, t.root)
	return &Iterator[T]{step: func() (*node[T], bool) {
		n, ok := s.Pop()
		if !ok {
			return nil, false
		}
		pushRightSpine(s, n.left)
		return n, true
	}}
}

// Preorder visits each node before its left subtree, then its right subtree.
func (t *Tree[T]) Preorder() *Iterator[T] {
	s := container.NewStack[*node[T]]()
	if t.root != nil {
		s.Push(t.root)
	}
	return &Iterator[T]{step: func() (*node[T], bool) {
		n, ok := s.Pop()
		if !ok {
			return nil, false
		}
		// right first so that left is popped first
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
		return n, true
	}}
}

// Postorder visits both subtrees of a node, left then right, before the node.
func (t *Tree[T]) Postorder() *Iterator[T] {
	s := container.NewStack[*node[T]]()
	cur := t.root
	var last *node[T]
	return &Iterator[T]{step: func() (*node[T], bool) {
		for {
			if cur != nil {
				s.Push(cur)
				cur = cur.left
				continue
			}
			top, ok := s.Peek()
			if !ok {
				return nil, false
			}
			if top.right != nil && top.right != last {
				cur = top.right
				continue
			}
			s.Pop()
			last = top
			return top, true
		}
	}}
}

// Levelorder visits the nodes breadth first, left to right within a level.
func (t *Tree[T]) Levelorder() *Iterator[T] {
	q := container.NewQueue[*node[T]]()
	if t.root != nil {
		q.Push(t.root)
	}
	return &Iterator[T]{step: func() (*node[T], bool) {
		n, ok := q.Pop()
		if !ok {
			return nil, false
		}
		if n.left != nil {
			q.Push(n.left)
		}
		if n.right != nil {
			q.Push(n.right)
		}
		return n, true
	}}
}

// Items returns every element in ascending order.
func (t *Tree[T]) Items() []T {
	out := make([]T, 0, t.size)
	t.Inorder().ForEach(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}
