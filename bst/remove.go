package bst

import (
	"github.com/goose-lang/primitive"
	"github.com/sirupsen/logrus"
)

// which child slot of a parent a node hangs from
type slot int

const (
	leftSlot slot = iota
	rightSlot
)

func (n *node[T]) setChild(s slot, child *node[T]) {
	if s == leftSlot {
		n.left = child
	} else {
		n.right = child
	}
}

// Remove deletes one element equivalent to item and returns it. The boolean is
// false, and the tree is untouched, if item is not present.
//
// A node with two children keeps its place: it takes over the largest element
// of its left subtree, and the node that held that element is spliced out.
func (t *Tree[T]) Remove(item T) (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	// The root hangs off the left of a placeholder so that replacing it is the
	// same as replacing any other child.
	preRoot := &node[T]{left: t.root}
	parent := preRoot
	dir := leftSlot
	current := t.root
	for current != nil {
		if t.less(item, current.elem) {
			parent, dir = current, leftSlot
			current = current.left
		} else if t.less(current.elem, item) {
			parent, dir = current, rightSlot
			current = current.right
		} else {
			break
		}
	}
	if current == nil {
		return zero, false
	}

	removed := current.elem
	log := Log.WithFields(logrus.Fields{"op": "Remove", "item": item})
	if current.left != nil && current.right != nil {
		if t.liftMaxInLeft(current) {
			log.Debug("two children, lifted left maximum")
		} else {
			t.liftMinInRight(current)
			log.Debug("two children, left maximum duplicated, lifted right minimum")
		}
	} else {
		var child *node[T]
		if current.left == nil {
			child = current.right
		} else {
			child = current.left
		}
		parent.setChild(dir, child)
		log.WithField("leaf", child == nil).Debug("spliced out")
	}

	primitive.Assert(t.size > 0)
	t.size--
	t.root = preRoot.left
	return removed, true
}

// liftMaxInLeft overwrites top's element with the largest element of its left
// subtree and unlinks the node that held it. The rightmost node of the left
// subtree has at most a left child, which takes its place.
//
// It refuses, leaving everything untouched, when that largest element is
// stored more than once: the copies left behind would then equal top, and only
// strictly smaller elements may live on top's left.
func (t *Tree[T]) liftMaxInLeft(top *node[T]) bool {
	primitive.Assert(top.left != nil)
	parent := top
	current := top.left
	for current.right != nil {
		parent = current
		current = current.right
	}
	// equal elements chain rightwards, so any other copy is the parent
	if parent != top && !t.less(parent.elem, current.elem) {
		return false
	}
	top.elem = current.elem
	if parent == top {
		top.left = current.left
	} else {
		parent.right = current.left
	}
	return true
}

// liftMinInRight mirrors liftMaxInLeft using the smallest element of the right
// subtree. Ties already go right, so this never breaks the ordering.
func (t *Tree[T]) liftMinInRight(top *node[T]) {
	primitive.Assert(top.right != nil)
	parent := top
	current := top.right
	for current.left != nil {
		parent = current
		current = current.left
	}
	top.elem = current.elem
	if parent == top {
		top.right = current.right
	} else {
		parent.left = current.right
	}
}
