package pqueue

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name     string
	priority int
}

func byPriority(a, b item) bool {
	return a.priority < b.priority
}

// assertHeapOrder checks that every non-root element is not less than its parent.
func assertHeapOrder(t *testing.T, q *PriorityQueue[item]) {
	t.Helper()
	for i := 1; i < len(q.items); i++ {
		parent := (i - 1) / 2
		assert.LessOrEqual(t, q.items[parent].priority, q.items[i].priority,
			"heap order violated at index %d (parent %d)", i, parent)
	}
}

func TestNewPanicsOnNilLess(t *testing.T) {
	assert.Panics(t, func() {
		New[item](nil)
	})
}

func TestExtractMinOrder(t *testing.T) {
	q := New(byPriority)
	q.Insert(item{name: "A", priority: 3})
	q.Insert(item{name: "B", priority: 1})
	q.Insert(item{name: "C", priority: 2})

	var got []string
	for !q.IsEmpty() {
		it, ok := q.ExtractMin()
		require.True(t, ok)
		got = append(got, it.name)
	}

	assert.Equal(t, []string{"B", "C", "A"}, got)
}

func TestEmptyQueue(t *testing.T) {
	q := New(byPriority)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Size())

	_, ok := q.ExtractMin()
	assert.False(t, ok, "ExtractMin on empty queue should report absence")

	_, ok = q.Peek()
	assert.False(t, ok, "Peek on empty queue should report absence")

	assert.Empty(t, q.Items())
}

func TestSingleElement(t *testing.T) {
	q := New(byPriority)
	q.Insert(item{name: "only", priority: 4})

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "only", top.name)
	assert.Equal(t, 1, q.Size(), "Peek must not remove the element")

	got, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, "only", got.name)
	assert.True(t, q.IsEmpty())
}

func TestPeekReturnsMinimum(t *testing.T) {
	q := New(byPriority)
	for _, p := range []int{5, 4, 2, 3, 1, 2} {
		q.Insert(item{priority: p})
	}

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top.priority)
	assert.Equal(t, 6, q.Size())
}

func TestItemsIsSnapshot(t *testing.T) {
	q := New(byPriority)
	q.Insert(item{name: "x", priority: 2})
	q.Insert(item{name: "y", priority: 1})

	snapshot := q.Items()
	require.Len(t, snapshot, 2)
	// Heap order, not insertion order: the minimum sits at index 0.
	assert.Equal(t, "y", snapshot[0].name)

	snapshot[0].name = "mutated"
	top, _ := q.Peek()
	assert.Equal(t, "y", top.name, "mutating the snapshot must not affect the queue")
}

func TestTiesAreAllReturned(t *testing.T) {
	q := New(byPriority)
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		q.Insert(item{name: n, priority: 2})
	}

	seen := make(map[string]bool)
	for i := 0; i < len(names); i++ {
		it, ok := q.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, 2, it.priority)
		seen[it.name] = true
	}
	assert.Len(t, seen, len(names))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	q := New(byPriority)
	var shadow []int

	for step := 0; step < 2000; step++ {
		before := q.Size()

		if rng.IntN(3) > 0 {
			p := rng.IntN(5) + 1
			q.Insert(item{priority: p})
			shadow = append(shadow, p)
			assert.Equal(t, before+1, q.Size())
		} else {
			got, ok := q.ExtractMin()
			if before == 0 {
				assert.False(t, ok)
				assert.Equal(t, 0, q.Size())
				continue
			}
			require.True(t, ok)

			minIdx := 0
			for i, p := range shadow {
				if p < shadow[minIdx] {
					minIdx = i
				}
			}
			assert.Equal(t, shadow[minIdx], got.priority, "step %d: extracted element is not the minimum", step)
			shadow = append(shadow[:minIdx], shadow[minIdx+1:]...)
			assert.Equal(t, before-1, q.Size())
		}

		assertHeapOrder(t, q)
	}
}
