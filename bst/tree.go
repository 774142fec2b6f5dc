package bst

import (
	"github.com/goose-lang/std"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Log receives debug traces of structural changes. It is silent at the default
// level.
var Log = logrus.New()

// LessFunc reports whether a sorts strictly before b. It must describe a
// strict weak ordering.
type LessFunc[T any] func(a, b T) bool

// Less returns the natural ordering of an ordered type.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

type node[T any] struct {
	elem  T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree ordered by a LessFunc.
type Tree[T any] struct {
	root *node[T]
	size uint64
	less LessFunc[T]
}

// New returns a tree over an ordered type holding items, inserted in the order
// given.
func New[T constraints.Ordered](items ...T) *Tree[T] {
	return NewFunc(Less[T](), items...)
}

// NewFunc is like New but orders elements with less.
func NewFunc[T any](less LessFunc[T], items ...T) *Tree[T] {
	t := &Tree[T]{less: less}
	for _, item := range items {
		t.Insert(item)
	}
	return t
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return int(t.size)
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every element.
func (t *Tree[T]) Clear() {
	Log.WithFields(logrus.Fields{"op": "Clear", "size": t.size}).Debug("dropping all nodes")
	t.root = nil
	t.size = 0
}

// search returns the node holding an element equivalent to item, or nil.
func (t *Tree[T]) search(item T) *node[T] {
	n := t.root
	for n != nil {
		switch {
		case t.less(item, n.elem):
			n = n.left
		case t.less(n.elem, item):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Find returns the stored element equivalent to item. The boolean is false if
// there is none.
func (t *Tree[T]) Find(item T) (T, bool) {
	n := t.search(item)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

func (t *Tree[T]) Contains(item T) bool {
	return t.search(item) != nil
}

// Insert adds item to the tree. No rebalancing takes place.
func (t *Tree[T]) Insert(item T) {
	fresh := &node[T]{elem: item}
	if t.root == nil {
		t.root = fresh
	} else {
		n := t.root
		for {
			if t.less(item, n.elem) {
				if n.left == nil {
					n.left = fresh
					break
				}
				n = n.left
			} else {
				// greater or equal goes right
				if n.right == nil {
					n.right = fresh
					break
				}
				n = n.right
			}
		}
	}
	t.size = std.SumAssumeNoOverflow(t.size, 1)
}

// Replace overwrites the stored element equivalent to item with newItem and
// returns the old element. newItem must sort the same as item, otherwise the
// tree's ordering is broken. The boolean is false, and nothing changes, if
// item is not present.
func (t *Tree[T]) Replace(item T, newItem T) (T, bool) {
	n := t.search(item)
	if n == nil {
		var zero T
		return zero, false
	}
	old := n.elem
	n.elem = newItem
	return old, true
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.first().elem, true
}

// Max returns the largest element; among equal maxima, the last inserted.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.last().elem, true
}

// lowest node in a sub-tree
func (n *node[T]) first() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *node[T]) last() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
