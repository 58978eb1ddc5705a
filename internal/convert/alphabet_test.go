package convert_test

import (
	"testing"

	"github.com/ian-shakespeare/debase/internal/convert"
	"github.com/stretchr/testify/assert"
)

func TestDigitValue(t *testing.T) {
	t.Parallel()

	t.Run("everyDigit", func(t *testing.T) {
		t.Parallel()

		for i, char := range convert.Alphabet {
			value, ok := convert.DigitValue(char)
			assert.True(t, ok)
			assert.Equal(t, int64(i), value)
		}
	})

	t.Run("unknownRunes", func(t *testing.T) {
		t.Parallel()

		for _, char := range []rune{'!', ' ', '#', 'é', '中'} {
			_, ok := convert.DigitValue(char)
			assert.False(t, ok)
		}
	})
}

func TestDigitRune(t *testing.T) {
	t.Parallel()

	t.Run("roundTrip", func(t *testing.T) {
		t.Parallel()

		for value := int64(0); value < int64(convert.MaxBase); value++ {
			char, ok := convert.DigitRune(value)
			assert.True(t, ok)

			back, ok := convert.DigitValue(char)
			assert.True(t, ok)
			assert.Equal(t, value, back)
		}
	})

	t.Run("outOfRange", func(t *testing.T) {
		t.Parallel()

		for _, value := range []int64{-1, 62, 100} {
			_, ok := convert.DigitRune(value)
			assert.False(t, ok)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		t.Parallel()

		// The case split is load-bearing: uppercase before lowercase.
		checks := map[int64]rune{0: '0', 9: '9', 10: 'A', 35: 'Z', 36: 'a', 61: 'z'}
		for value, expect := range checks {
			char, ok := convert.DigitRune(value)
			assert.True(t, ok)
			assert.Equal(t, expect, char)
		}
	})
}
