package bst

import (
	"errors"
	"fmt"

	"linked_bst/container"
)

// ErrInvariant is wrapped by every error Check returns.
var ErrInvariant = errors.New("bst: invariant violated")

// a node together with the nearest ancestors it must sort between
type bounded[T any] struct {
	n *node[T]
	// every element under n is >= floor.elem and < ceil.elem
	floor, ceil *node[T]
}

// Check walks the whole tree and verifies the ordering of every node against
// its ancestors and that the element count matches the number of nodes.
func (t *Tree[T]) Check() error {
	if (t.root == nil) != (t.size == 0) {
		return fmt.Errorf("%w: root present %t with size %d", ErrInvariant, t.root != nil, t.size)
	}
	var count uint64
	s := container.NewStack[bounded[T]]()
	if t.root != nil {
		s.Push(bounded[T]{n: t.root})
	}
	for {
		b, ok := s.Pop()
		if !ok {
			break
		}
		count++
		if b.floor != nil && t.less(b.n.elem, b.floor.elem) {
			return fmt.Errorf("%w: %v sorts before ancestor %v but is in its right subtree", ErrInvariant, b.n.elem, b.floor.elem)
		}
		if b.ceil != nil && !t.less(b.n.elem, b.ceil.elem) {
			return fmt.Errorf("%w: %v does not sort before ancestor %v but is in its left subtree", ErrInvariant, b.n.elem, b.ceil.elem)
		}
		if b.n.left != nil {
			s.Push(bounded[T]{n: b.n.left, floor: b.floor, ceil: b.n})
		}
		if b.n.right != nil {
			s.Push(bounded[T]{n: b.n.right, floor: b.n, ceil: b.ceil})
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d nodes reachable", ErrInvariant, t.size, count)
	}
	return nil
}
