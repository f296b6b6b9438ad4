package recbatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recbatch/recbatch"
	"github.com/recbatch/recbatch/batch"
	"github.com/recbatch/recbatch/source"
)

func TestSlice(t *testing.T) {
	t.Run("batches a slice eagerly", func(t *testing.T) {
		got, err := recbatch.Slice([]int{1, 2, 3, 4, 5}, batch.Config[int]{MaxBatchLen: 2})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	})

	t.Run("reports configuration errors", func(t *testing.T) {
		_, err := recbatch.Slice([]int{1}, batch.Config[int]{})
		var cfgErr *batch.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestChannel(t *testing.T) {
	ch := make(chan string, 4)
	for _, s := range []string{"a", "b", "c"} {
		ch <- s
	}
	close(ch)

	b, err := recbatch.Channel(ch, batch.Config[string]{MaxBatchLen: 2})
	require.NoError(t, err)

	got, err := b.Batches()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, got)
}

func TestEach(t *testing.T) {
	t.Run("visits every batch in order", func(t *testing.T) {
		b, err := batch.New(source.FromSlice([]int{1, 2, 3}), batch.Config[int]{MaxBatchLen: 2})
		require.NoError(t, err)

		var got [][]int
		err = recbatch.Each(b, func(records []int) error {
			got = append(got, records)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3}}, got)
	})

	t.Run("stops at the first callback error", func(t *testing.T) {
		sink := errors.New("sink failed")
		b, err := batch.New(source.FromSlice([]int{1, 2, 3, 4}), batch.Config[int]{MaxBatchLen: 1})
		require.NoError(t, err)

		calls := 0
		err = recbatch.Each(b, func([]int) error {
			calls++
			if calls == 2 {
				return sink
			}
			return nil
		})
		assert.ErrorIs(t, err, sink)
		assert.Equal(t, 2, calls)
	})

	t.Run("propagates batcher errors", func(t *testing.T) {
		boom := errors.New("boom")
		b, err := batch.New(source.Err[int](boom), batch.Config[int]{MaxBatchLen: 1})
		require.NoError(t, err)

		err = recbatch.Each(b, func([]int) error { return nil })
		assert.ErrorIs(t, err, boom)
	})
}

func TestMust(t *testing.T) {
	t.Run("returns the batcher on success", func(t *testing.T) {
		b := recbatch.Must(batch.New(source.FromSlice([]int{1}), batch.Config[int]{MaxBatchLen: 1}))
		assert.NotNil(t, b)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			recbatch.Must(batch.New(source.FromSlice([]int{1}), batch.Config[int]{}))
		})
	})
}
