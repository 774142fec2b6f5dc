package bst

import (
	"github.com/sirupsen/logrus"

	"linked_bst/container"
)

// a pending slice of the sorted elements and the link its subtree goes into
type span[T any] struct {
	lo, hi int
	link   **node[T]
}

// Rebalance rebuilds the tree from its sorted contents so that every subtree
// is rooted at the middle of its elements, giving height ceil(log2(n+1)) - 1.
// All existing nodes are discarded.
func (t *Tree[T]) Rebalance() {
	sorted := t.Items()
	log := Log.WithFields(logrus.Fields{"op": "Rebalance", "size": len(sorted)})
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		log = log.WithField("before", t.Height())
	}
	t.root = t.build(sorted)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithField("after", t.Height()).Debug("rebuilt")
	}
}

// build links sorted into a balanced tree. The middle element (rounding down)
// of each span becomes the subtree root; if it has equal neighbours to its
// left, the first of them is chosen instead so that the left subtree holds
// only strictly smaller elements.
func (t *Tree[T]) build(sorted []T) *node[T] {
	var root *node[T]
	s := container.NewStack[span[T]]()
	s.Push(span[T]{lo: 0, hi: len(sorted), link: &root})
	for {
		sp, ok := s.Pop()
		if !ok {
			break
		}
		if sp.lo >= sp.hi {
			continue
		}
		mid := sp.lo + (sp.hi-sp.lo)/2
		for mid > sp.lo && !t.less(sorted[mid-1], sorted[mid]) {
			mid--
		}
		n := &node[T]{elem: sorted[mid]}
		*sp.link = n
		s.Push(span[T]{lo: mid + 1, hi: sp.hi, link: &n.right})
		s.Push(span[T]{lo: sp.lo, hi: mid, link: &n.left})
	}
	return root
}
