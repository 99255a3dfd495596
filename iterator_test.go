package blocklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilled(t *testing.T, blockSize, count int) *List[int] {
	t.Helper()
	l, err := New[int](OptBlockSize(blockSize))
	require.NoError(t, err)
	for i := 0; i < count; i++ {
		require.NoError(t, l.Append(i))
	}
	return l
}

func TestIteratorTraversal(t *testing.T) {
	l := newFilled(t, 5, 50)
	it, err := l.Iter()
	require.NoError(t, err)

	var got []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrIterationDone)
}

func TestIteratorFromIndex(t *testing.T) {
	l := newFilled(t, 5, 50)

	it, err := l.IterAt(20)
	require.NoError(t, err)
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	count := 1
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 30, count)

	// Starting at Len is allowed; there is just nothing to yield.
	it, err = l.IterAt(50)
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrIterationDone)

	var oor *ErrIndexOutOfRange
	_, err = l.IterAt(51)
	require.ErrorAs(t, err, &oor)
	_, err = l.IterAt(-1)
	require.ErrorAs(t, err, &oor)
}

func TestIteratorOnEmpty(t *testing.T) {
	l, err := New[int](OptBlockSize(5))
	require.NoError(t, err)
	it, err := l.Iter()
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrIterationDone)
	assert.ErrorIs(t, it.Remove(), ErrRemoveNotReady)
}

func TestIteratorRemove(t *testing.T) {
	l := newFilled(t, 5, 50)
	it, err := l.Iter()
	require.NoError(t, err)

	// Remove before any Next is illegal.
	assert.ErrorIs(t, it.Remove(), ErrRemoveNotReady)

	for {
		v, err := it.Next()
		require.NoError(t, err)
		if v == 10 {
			break
		}
	}
	require.NoError(t, it.Remove())
	assert.Equal(t, 49, l.Len())

	// Only once per advance.
	assert.ErrorIs(t, it.Remove(), ErrRemoveNotReady)

	// The removal shifted 11 into the removed slot; iteration picks it up.
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 11, v)

	// And the container sees the same thing.
	got, err := l.Get(10)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestIteratorRemoveEveryOther(t *testing.T) {
	l := newFilled(t, 5, 20)
	it, err := l.Iter()
	require.NoError(t, err)
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
		}
	}
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, 10, sumBlocks(l))
	for i := 0; i < 10; i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 2*i+1, v)
	}
}

func TestIteratorRemoveAll(t *testing.T) {
	l := newFilled(t, 5, 37)
	it, err := l.Iter()
	require.NoError(t, err)
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
	}
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, sumBlocks(l))
}

func TestIteratorDetectsExternalMutation(t *testing.T) {
	l := newFilled(t, 5, 20)

	it, err := l.Iter()
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	require.NoError(t, l.Append(99))
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.ErrorIs(t, it.Remove(), ErrConcurrentModification)

	// Set is not structural and does not invalidate.
	it, err = l.Iter()
	require.NoError(t, err)
	_, err = l.Set(5, 500)
	require.NoError(t, err)
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// An Iterator's own removal invalidates every other live Iterator but
	// not itself.
	it1, err := l.Iter()
	require.NoError(t, err)
	it2, err := l.Iter()
	require.NoError(t, err)
	_, err = it1.Next()
	require.NoError(t, err)
	require.NoError(t, it1.Remove())
	_, err = it1.Next()
	require.NoError(t, err)
	_, err = it2.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)

	// Clear counts as a structural change too.
	it, err = l.Iter()
	require.NoError(t, err)
	l.Clear()
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestIteratorEach(t *testing.T) {
	l := newFilled(t, 5, 10)
	it, err := l.IterAt(5)
	require.NoError(t, err)
	var got []int
	require.NoError(t, it.Each(func(v int) {
		got = append(got, v)
	}))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, got)
	assert.False(t, it.HasNext())

	it, err = l.Iter()
	require.NoError(t, err)
	require.NoError(t, l.Append(10))
	err = it.Each(func(int) {})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
