package bst_test

import (
	"math/bits"
	"slices"
	"testing"

	"linked_bst/bst"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// keep elements small so that duplicates and repeated removals are common
func smallInts() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-50, 50), 0, 60)
}

func TestInsertProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := smallInts().Draw(t, "xs")
		tree := bst.New(xs...)

		sorted := slices.Clone(xs)
		slices.Sort(sorted)

		items := tree.Items()
		assert.Len(items, len(xs))
		assert.Equal(tree.Len(), len(items))
		assert.True(slices.IsSorted(items), "inorder is not sorted")
		if len(xs) > 0 {
			assert.Equal(sorted, items)
		}
		assert.NoError(tree.Check())

		// the other traversals visit the same elements
		assert.ElementsMatch(items, tree.Preorder().Collect())
		assert.ElementsMatch(items, tree.Postorder().Collect())
		assert.ElementsMatch(items, tree.Levelorder().Collect())

		rev := tree.Descending().Collect()
		slices.Reverse(rev)
		assert.Equal(items, rev)
	})
}

// treeMachine drives a tree and a sorted-slice model through the same
// operations.
type treeMachine struct {
	tree  *bst.Tree[int]
	model []int
}

func (m *treeMachine) insert(t *rapid.T) {
	x := rapid.IntRange(-20, 20).Draw(t, "x")
	m.tree.Insert(x)
	i, _ := slices.BinarySearch(m.model, x)
	m.model = slices.Insert(m.model, i, x)
}

func (m *treeMachine) remove(t *rapid.T) {
	x := rapid.IntRange(-20, 20).Draw(t, "x")
	before := m.tree.Preorder().Collect()
	v, ok := m.tree.Remove(x)
	i, found := slices.BinarySearch(m.model, x)
	if found != ok {
		t.Fatalf("Remove(%d) = %t, model has it: %t", x, ok, found)
	}
	if !ok {
		if !slices.Equal(before, m.tree.Preorder().Collect()) {
			t.Fatalf("failed Remove(%d) changed the tree", x)
		}
		return
	}
	if v != x {
		t.Fatalf("Remove(%d) returned %d", x, v)
	}
	m.model = slices.Delete(m.model, i, i+1)
}

func (m *treeMachine) rebalance(t *rapid.T) {
	m.tree.Rebalance()
	// equal elements must chain to the right, so only distinct ones are
	// guaranteed a balanced shape
	distinct := len(slices.Compact(slices.Clone(m.model))) == len(m.model)
	if distinct && !m.tree.IsBalanced() {
		t.Fatalf("not balanced after rebalance: height %d for %d elements", m.tree.Height(), m.tree.Len())
	}
}

func (m *treeMachine) check(t *rapid.T) {
	if err := m.tree.Check(); err != nil {
		t.Fatal(err)
	}
	if m.tree.Len() != len(m.model) {
		t.Fatalf("Len() = %d, model has %d", m.tree.Len(), len(m.model))
	}
	if items := m.tree.Items(); !slices.Equal(items, m.model) {
		t.Fatalf("inorder %v, model %v", items, m.model)
	}
}

func TestOperationsAgainstModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := &treeMachine{tree: bst.New[int]()}
		t.Repeat(map[string]func(*rapid.T){
			"insert":    m.insert,
			"remove":    m.remove,
			"rebalance": m.rebalance,
			"":          m.check,
		})
	})
}

func TestRebalanceProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := rapid.SliceOfDistinct(rapid.IntRange(-1000, 1000), rapid.ID[int]).Draw(t, "xs")
		tree := bst.New(xs...)
		items := tree.Items()

		tree.Rebalance()
		assert.True(tree.IsBalanced())
		assert.Equal(items, tree.Items())
		assert.Equal(len(xs), tree.Len())
		if len(xs) > 0 {
			// ceil(log2(n+1)) - 1
			assert.Equal(bits.Len(uint(len(xs)))-1, tree.Height())
		}
		assert.NoError(tree.Check())

		// rebalancing depends only on the sorted contents
		shape := tree.Preorder().Collect()
		tree.Rebalance()
		assert.Equal(items, tree.Items())
		assert.Equal(shape, tree.Preorder().Collect())
	})
}

func TestNeighborProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := smallInts().Draw(t, "xs")
		q := rapid.IntRange(-60, 60).Draw(t, "q")
		tree := bst.New(xs...)

		var succ, pred *int
		for _, x := range xs {
			if x > q && (succ == nil || x < *succ) {
				succ = &x
			}
			if x < q && (pred == nil || x > *pred) {
				pred = &x
			}
		}

		v, ok := tree.Successor(q)
		if assert.Equal(succ != nil, ok, "Successor(%d) presence", q) && ok {
			assert.Equal(*succ, v)
		}
		v, ok = tree.Predecessor(q)
		if assert.Equal(pred != nil, ok, "Predecessor(%d) presence", q) && ok {
			assert.Equal(*pred, v)
		}
	})
}

func TestRangeFindProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := smallInts().Draw(t, "xs")
		low := rapid.IntRange(-60, 60).Draw(t, "low")
		high := rapid.IntRange(low, 60).Draw(t, "high")
		tree := bst.New(xs...)

		want := []int{}
		for _, x := range tree.Items() {
			if low <= x && x <= high {
				want = append(want, x)
			}
		}
		assert.Equal(want, tree.RangeFind(low, high))
	})
}
