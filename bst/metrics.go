package bst

import (
	"math"

	"linked_bst/container"
)

// Height returns the number of edges on the longest path from the root to a
// leaf: 0 for a single node and -1 for an empty tree.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	q := container.NewQueue[*node[T]]()
	q.Push(t.root)
	levels := 0
	for q.Len() > 0 {
		levels++
		for i := q.Len(); i > 0; i-- {
			n, _ := q.Pop()
			if n.left != nil {
				q.Push(n.left)
			}
			if n.right != nil {
				q.Push(n.right)
			}
		}
	}
	return levels - 1
}

// IsBalanced reports whether the height is below 2*log2(n+1) - 1 for n
// elements. This is a global estimate of how close the tree is to its minimum
// height, not a per-node check. An empty tree is balanced.
func (t *Tree[T]) IsBalanced() bool {
	if t.root == nil {
		return true
	}
	n := float64(t.size)
	return float64(t.Height()) < 2*math.Log2(n+1)-1
}
