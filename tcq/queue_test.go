package tcq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syncpath/tpcore/tc"
	"github.com/syncpath/tpcore/tcq"
)

func TestQueue_PutPopFront(t *testing.T) {
	q, err := tcq.New(2)
	require.NoError(t, err)

	require.NoError(t, q.Put(&tc.Segment{ID: 1}))
	require.NoError(t, q.Put(&tc.Segment{ID: 2}))
	require.ErrorIs(t, q.Put(&tc.Segment{ID: 3}), tcq.ErrQueueFull)

	seg, err := q.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, seg.ID)
	require.Equal(t, 1, q.Len())

	require.NoError(t, q.Put(&tc.Segment{ID: 3}))
	seg, err = q.PopFront()
	require.NoError(t, err)
	require.Equal(t, 2, seg.ID)
}

func TestQueue_Underflow(t *testing.T) {
	q, err := tcq.New(1)
	require.NoError(t, err)
	_, err = q.PopFront()
	require.ErrorIs(t, err, tcq.ErrUnderflow)
	_, err = q.Last()
	require.ErrorIs(t, err, tcq.ErrUnderflow)
}

func TestQueue_ItemAndLast(t *testing.T) {
	q, err := tcq.New(4)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Put(&tc.Segment{ID: i}))
	}
	it, err := q.Item(1)
	require.NoError(t, err)
	require.Equal(t, 2, it.ID)

	last, err := q.Last()
	require.NoError(t, err)
	require.Equal(t, 3, last.ID)

	popped, err := q.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, popped.ID)
	require.Equal(t, 2, q.Len())
}

func TestQueue_BadCapacity(t *testing.T) {
	_, err := tcq.New(0)
	require.ErrorIs(t, err, tcq.ErrBadCapacity)
}

func TestQueue_Each(t *testing.T) {
	q, err := tcq.New(4)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Put(&tc.Segment{ID: i}))
	}
	var ids []int
	q.Each(func(index int, seg *tc.Segment) bool {
		ids = append(ids, seg.ID)
		return true
	})
	require.Equal(t, []int{1, 2, 3}, ids)
}
