package convert_test

import (
	"errors"
	"testing"

	"github.com/ian-shakespeare/debase/internal/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertNumber(t *testing.T) {
	t.Parallel()

	validNumerals := []struct {
		name   string
		value  string
		base   int
		expect int64
	}{
		{"binary", "1010", 2, 10},
		{"binaryNegative", "-101", 2, -5},
		{"octal", "777", 8, 511},
		{"decimal", "1234567890", 10, 1234567890},
		{"hex", "FF", 16, 255},
		{"hexMixedMagnitude", "1A", 16, 26},
		{"base36", "Z", 36, 35},
		{"base62Lowercase", "z", 62, 61},
		{"base62Word", "10", 62, 62},
		{"zero", "0", 2, 0},
		{"negativeZero", "-0", 10, 0},
		{"leadingZeros", "0007", 8, 7},
	}

	for _, input := range validNumerals {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			value, err := convert.ConvertNumber(input.value, input.base)
			assert.NoError(t, err)
			assert.Equal(t, input.expect, value)
		})
	}

	invalidNumerals := []struct {
		name       string
		value      string
		base       int
		expectType string
	}{
		{"digitOutOfBase", "2", 2, convert.INVALID_DIGIT_ERROR},
		{"lowercaseHex", "ff", 16, convert.INVALID_DIGIT_ERROR},
		{"punctuation", "1.5", 10, convert.INVALID_DIGIT_ERROR},
		{"interiorSign", "1-1", 10, convert.INVALID_DIGIT_ERROR},
		{"baseTooSmall", "1", 1, convert.INVALID_BASE_ERROR},
		{"baseTooLarge", "1", 63, convert.INVALID_BASE_ERROR},
		{"empty", "", 10, convert.EMPTY_INPUT_ERROR},
		{"bareSign", "-", 10, convert.EMPTY_INPUT_ERROR},
	}

	for _, input := range invalidNumerals {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			_, err := convert.ConvertNumber(input.value, input.base)
			require.Error(t, err)

			var convertErr *convert.ConvertError
			require.True(t, errors.As(err, &convertErr))
			assert.Equal(t, input.expectType, convertErr.Type)
		})
	}

	t.Run("invalidDigitNamesRuneAndBase", func(t *testing.T) {
		t.Parallel()

		_, err := convert.ConvertNumber("2", 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'2'")
		assert.Contains(t, err.Error(), "base 2")
	})

	t.Run("singleDigitEveryBase", func(t *testing.T) {
		t.Parallel()

		for base := convert.MinBase; base <= convert.MaxBase; base++ {
			for digit := int64(0); digit < int64(base); digit++ {
				char, ok := convert.DigitRune(digit)
				require.True(t, ok)

				value, err := convert.ConvertNumber(string(char), base)
				assert.NoError(t, err)
				assert.Equal(t, digit, value)
			}
		}
	})

	t.Run("repeatedDivisionRoundTrip", func(t *testing.T) {
		t.Parallel()

		for _, k := range []int64{0, 1, 7, 61, 62, 255, 4095, 123456789} {
			for _, base := range []int{2, 8, 10, 16, 36, 62} {
				numeral := formatInBase(t, k, base)

				value, err := convert.ConvertNumber(numeral, base)
				assert.NoError(t, err)
				assert.Equal(t, k, value, "numeral %q in base %d", numeral, base)
			}
		}
	})
}

// formatInBase renders k in the given base by repeated division.
func formatInBase(t *testing.T, k int64, base int) string {
	t.Helper()

	if k == 0 {
		return "0"
	}

	digits := []rune{}
	for k > 0 {
		char, ok := convert.DigitRune(k % int64(base))
		require.True(t, ok)
		digits = append([]rune{char}, digits...)
		k /= int64(base)
	}
	return string(digits)
}
