package bst

// RangeFind returns the elements e with low <= e <= high in ascending order.
// It filters an inorder walk, so it costs O(n) rather than O(log n + k).
func (t *Tree[T]) RangeFind(low, high T) []T {
	out := []T{}
	t.Inorder().ForEach(func(x T) bool {
		if t.less(high, x) {
			return false
		}
		if !t.less(x, low) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Successor returns the smallest element strictly greater than item, which
// need not be in the tree.
func (t *Tree[T]) Successor(item T) (T, bool) {
	it := t.Inorder()
	for {
		x, ok := it.Next()
		if !ok {
			return x, false
		}
		if t.less(item, x) {
			return x, true
		}
	}
}

// Predecessor returns the largest element strictly less than item, which need
// not be in the tree.
func (t *Tree[T]) Predecessor(item T) (T, bool) {
	it := t.Descending()
	for {
		x, ok := it.Next()
		if !ok {
			return x, false
		}
		if t.less(x, item) {
			return x, true
		}
	}
}
