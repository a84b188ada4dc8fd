package dllist

import (
	"math/rand"
	"testing"

	"github.com/Invicton-Labs/go-circularlist/collections"
	"github.com/Invicton-Labs/go-circularlist/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// checkRing verifies the structural invariants of the ring and the arena.
func checkRing(t *testing.T, l *CircularList) {
	t.Helper()
	if l.nodes == nil {
		require.Equal(t, 0, l.length, "uninitialized list must be empty")
		return
	}
	require.Equal(t, l.length, len(l.nodes)-1-len(l.free), "arena accounting")

	steps := 0
	idx := sentinel
	for {
		n := l.nodes[idx]
		require.Equal(t, idx, l.nodes[n.next].prev, "next.prev of %d", idx)
		require.Equal(t, idx, l.nodes[n.prev].next, "prev.next of %d", idx)
		idx = n.next
		if idx == sentinel {
			break
		}
		steps++
		require.LessOrEqual(t, steps, l.length, "forward walk did not return to the sentinel")
	}
	require.Equal(t, l.length, steps)

	reversed := collections.CopySlice(l.ValuesReverse())
	collections.ReverseSliceInPlace(reversed)
	require.Equal(t, l.Values(), reversed)
}

func observedLogger() (log.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return log.FromZap(zap.New(core), log.NewInput{}), logs
}

func TestNewIsEmpty(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, sentinel, l.nodes[sentinel].next)
	assert.Equal(t, sentinel, l.nodes[sentinel].prev)
	assert.NotEmpty(t, l.ID())
	checkRing(t, l)
}

func TestZeroValueIsUsable(t *testing.T) {
	var l CircularList
	_, found := l.RemoveLast()
	assert.False(t, found)
	assert.Empty(t, l.Values())

	l.InsertFront(4)
	l.InsertFront(2)
	assert.Equal(t, []int{2, 4}, l.Values())
	checkRing(t, &l)
}

func TestInsertFront(t *testing.T) {
	l := New()
	for _, v := range []int{3, 7, 2, 1} {
		l.InsertFront(v)
		checkRing(t, l)
	}
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{1, 2, 7, 3}, l.Values())
	assert.Equal(t, []int{3, 7, 2, 1}, l.ValuesReverse())

	front, ok := l.Front()
	assert.True(t, ok)
	assert.Equal(t, 1, front)
	back, ok := l.Back()
	assert.True(t, ok)
	assert.Equal(t, 3, back)
}

func TestRemoveLastIsInverseOfInsertFront(t *testing.T) {
	l := FromValues([]int{5, 6})
	l.InsertFront(9)
	l2 := New()
	l2.InsertFront(9)

	v, found := l2.RemoveLast()
	assert.True(t, found)
	assert.Equal(t, 9, v)
	assert.Equal(t, 0, l2.Len())
	checkRing(t, l2)

	v, found = l.RemoveLast()
	assert.True(t, found)
	assert.Equal(t, 6, v)
	assert.Equal(t, []int{9, 5}, l.Values())
	checkRing(t, l)
}

func TestRemoveLastOnEmptyList(t *testing.T) {
	logger, logs := observedLogger()
	l := New(WithLogger(logger))

	v, found := l.RemoveLast()
	assert.False(t, found)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, logs.FilterMessage("Nothing to remove from empty list").Len())
	checkRing(t, l)
}

func TestRemoveLastDrainsList(t *testing.T) {
	l := FromValues([]int{1, 2, 3})
	for _, want := range []int{3, 2, 1} {
		v, found := l.RemoveLast()
		require.True(t, found)
		assert.Equal(t, want, v)
		checkRing(t, l)
	}
	_, found := l.RemoveLast()
	assert.False(t, found)
	// Emptying the list reclaims the arena
	assert.Len(t, l.nodes, 1)
	assert.Empty(t, l.free)
}

func TestReleasedSlotsAreReused(t *testing.T) {
	l := FromValues([]int{1, 2, 3})
	arenaSize := len(l.nodes)

	l.RemoveRange(1, 1)
	assert.Len(t, l.free, 1)
	checkRing(t, l)

	l.InsertFront(0)
	assert.Len(t, l.nodes, arenaSize)
	assert.Empty(t, l.free)
	assert.Equal(t, []int{0, 1, 3}, l.Values())
	checkRing(t, l)
}

func TestContains(t *testing.T) {
	l := FromValues([]int{4, 8})
	assert.True(t, l.Contains(8))
	assert.False(t, l.Contains(5))

	var nilList *CircularList
	assert.False(t, nilList.Contains(4))
}

func TestCloneIsIndependent(t *testing.T) {
	l := FromValues([]int{1, 2, 3})
	c := l.Clone()
	c.InsertFront(0)
	c.RemoveLast()

	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Equal(t, []int{0, 1, 2}, c.Values())
	assert.NotEqual(t, l.ID(), c.ID())
	checkRing(t, c)

	assert.Equal(t, 0, New().Clone().Len())
}

func TestDestroy(t *testing.T) {
	logger, logs := observedLogger()
	l := FromValues([]int{1, 2, 3}, WithLogger(logger))

	l.Destroy()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.nodes)
	assert.Nil(t, l.free)
	checkRing(t, l)

	entries := logs.FilterMessage("Destroyed list").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["released"])
	assert.Equal(t, l.ID(), entries[0].ContextMap()["list_id"])

	// A destroyed list behaves like an empty one
	l.InsertFront(5)
	assert.Equal(t, []int{5}, l.Values())
	checkRing(t, l)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", New().String())
	assert.Equal(t, "[1 2 7 3]", FromValues([]int{1, 2, 7, 3}).String())
}

// TestRandomOperations drives a list and a slice model with the same random
// operations and compares them after every step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := New()
	model := []int{}

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(4); op {
		case 0, 1:
			v := rng.Intn(20)
			l.InsertFront(v)
			model = append([]int{v}, model...)
		case 2:
			v, found := l.RemoveLast()
			if len(model) == 0 {
				require.False(t, found)
				break
			}
			require.True(t, found)
			require.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		case 3:
			start := rng.Intn(len(model)+2) - 1
			end := rng.Intn(len(model)+2) - 1
			l.RemoveRange(start, end)
			if start >= 0 && end <= len(model) && start <= end && start < len(model) {
				stop := end
				if stop > len(model)-1 {
					stop = len(model) - 1
				}
				model = append(collections.CopySlice(model[:start]), model[stop+1:]...)
			}
		}
		require.Equal(t, len(model), l.Len(), "step %d", step)
		require.Equal(t, model, l.Values(), "step %d", step)
		checkRing(t, l)
	}
}
