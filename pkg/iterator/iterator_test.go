package iterator_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/ian-shakespeare/debase/pkg/iterator"
	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	values := iterator.Collect(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestTryCollect(t *testing.T) {
	t.Parallel()

	t.Run("allValues", func(t *testing.T) {
		t.Parallel()

		it := iter.Seq2[int, error](func(yield func(int, error) bool) {
			for i := 1; i <= 3; i++ {
				if !yield(i, nil) {
					return
				}
			}
		})

		values, err := iterator.TryCollect(it)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("stopsAtFirstError", func(t *testing.T) {
		t.Parallel()

		expectErr := errors.New("broken")
		yielded := 0

		it := iter.Seq2[int, error](func(yield func(int, error) bool) {
			yielded++
			if !yield(1, nil) {
				return
			}
			yielded++
			if !yield(0, expectErr) {
				return
			}
			yielded++
			yield(3, nil)
		})

		values, err := iterator.TryCollect(it)
		assert.ErrorIs(t, err, expectErr)
		assert.Nil(t, values)
		assert.Equal(t, 2, yielded)
	})
}
