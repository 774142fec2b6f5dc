// Package bst is a link-based binary search tree that is rebalanced on
// demand rather than on every mutation.
//
// Elements that compare less than a node go to its left; everything else,
// including elements equal to it, goes to its right. Duplicates are therefore
// accepted and kept in insertion order among themselves.
//
// Every walk over the tree (lookup, insertion, removal, traversal, height) is
// iterative, so a degenerate tree built from sorted input costs time but never
// goroutine stack.
//
// A Tree is not safe for concurrent use; callers that share one must guard it
// with a single lock.
package bst
