// Package pq_test verifies heap ordering, the heapsort law (repeated DelMin
// yields sorted output), and the indexed queue's decrease-key contract.
package pq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/pq"
)

// ------------------------------------------------------------------------
// 1. MinPQ / MaxPQ
// ------------------------------------------------------------------------

func TestMinPQ_EmptyErrors(t *testing.T) {
	q := pq.NewMinPQ[int](0)
	_, err := q.Min()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
	_, err = q.DelMin()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
	assert.True(t, q.IsEmpty())
}

func TestMinPQ_DrainsSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := pq.NewMinPQ[int](64)
	for i := 0; i < 500; i++ {
		q.Insert(rng.Intn(100))
	}

	prev := -1
	for !q.IsEmpty() {
		v, err := q.DelMin()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestMinPQ_MinMatchesDelMin(t *testing.T) {
	q := pq.NewMinPQ[string](4)
	q.Insert("banana")
	q.Insert("apple")
	q.Insert("cherry")

	m, err := q.Min()
	require.NoError(t, err)
	assert.Equal(t, "apple", m)

	d, err := q.DelMin()
	require.NoError(t, err)
	assert.Equal(t, "apple", d)
	assert.Equal(t, 2, q.Len())
}

func TestMaxPQ_DrainsReverseSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	q := pq.NewMaxPQ[int](64)
	for i := 0; i < 500; i++ {
		q.Insert(rng.Intn(100))
	}

	prev := 101
	for !q.IsEmpty() {
		v, err := q.DelMax()
		require.NoError(t, err)
		require.LessOrEqual(t, v, prev)
		prev = v
	}

	_, err := q.Max()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
}

// ------------------------------------------------------------------------
// 2. IndexedMinPQ
// ------------------------------------------------------------------------

func TestIndexedMinPQ_InsertContract(t *testing.T) {
	q := pq.NewIndexedMinPQ[string, float64](8)
	require.NoError(t, q.Insert("A", 3))
	require.ErrorIs(t, q.Insert("A", 1), pq.ErrKeyExists)
	assert.True(t, q.Contains("A"))
	assert.False(t, q.Contains("B"))

	p, err := q.Priority("A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, p)

	_, err = q.Priority("B")
	require.ErrorIs(t, err, pq.ErrKeyNotFound)
}

func TestIndexedMinPQ_DecreaseKey(t *testing.T) {
	q := pq.NewIndexedMinPQ[string, int](8)
	require.NoError(t, q.Insert("A", 10))
	require.NoError(t, q.Insert("B", 5))

	require.ErrorIs(t, q.DecreaseKey("C", 1), pq.ErrKeyNotFound)
	require.ErrorIs(t, q.DecreaseKey("A", 10), pq.ErrNotLower)
	require.ErrorIs(t, q.DecreaseKey("A", 12), pq.ErrNotLower)
	require.NoError(t, q.DecreaseKey("A", 1))

	k, p, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "A", k)
	assert.Equal(t, 1, p)
}

func TestIndexedMinPQ_InsertOrDecrease(t *testing.T) {
	q := pq.NewIndexedMinPQ[string, int](8)
	q.InsertOrDecrease("A", 7)
	q.InsertOrDecrease("A", 3)  // lowers
	q.InsertOrDecrease("A", 99) // ignored: not lower

	p, err := q.Priority("A")
	require.NoError(t, err)
	assert.Equal(t, 3, p)
	assert.Equal(t, 1, q.Len())
}

func TestIndexedMinPQ_PopOrderAndMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	q := pq.NewIndexedMinPQ[int, int](128)
	for k := 0; k < 300; k++ {
		require.NoError(t, q.Insert(k, rng.Intn(1000)))
	}

	prev := -1
	for !q.IsEmpty() {
		k, p, err := q.Pop()
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, prev)
		require.False(t, q.Contains(k), "popped key must leave the queue")
		prev = p
	}

	_, _, err := q.Pop()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
}
