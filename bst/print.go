package bst

import (
	"fmt"
	"strings"

	"linked_bst/container"
)

type indented[T any] struct {
	n     *node[T]
	level int
}

// String draws the tree rotated 90 degrees counter-clockwise: one element per
// line, right subtree above its parent, left subtree below, and one "| " per
// level of depth.
func (t *Tree[T]) String() string {
	var b strings.Builder
	s := container.NewStack[indented[T]]()
	pushRight := func(n *node[T], level int) {
		for n != nil {
			s.Push(indented[T]{n: n, level: level})
			n = n.right
			level++
		}
	}
	pushRight(t.root, 0)
	for {
		f, ok := s.Pop()
		if !ok {
			break
		}
		b.WriteString(strings.Repeat("| ", f.level))
		fmt.Fprintf(&b, "%v\n", f.n.elem)
		pushRight(f.n.left, f.level+1)
	}
	return b.String()
}
