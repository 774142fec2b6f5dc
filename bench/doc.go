// Package bench compares the cost of looking words up in a plain list, a
// sorted list, and binary search trees of different shapes. It only uses the
// public API of package bst.
package bench
