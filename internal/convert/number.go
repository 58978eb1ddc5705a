package convert

import "strings"

// ConvertNumber parses a signed numeral written in the given base and
// returns its value. A single leading '-' negates the result. Digits
// accumulate most-significant first into an int64; numerals beyond the
// int64 range wrap silently.
func ConvertNumber(numberText string, base int) (int64, error) {
	if base < MinBase || base > MaxBase {
		return 0, NewInvalidBaseError(base)
	}

	negative := strings.HasPrefix(numberText, "-")
	if negative {
		numberText = numberText[1:]
	}
	if numberText == "" {
		return 0, NewEmptyInputError()
	}

	var value int64
	for _, char := range numberText {
		digit, ok := DigitValue(char)
		if !ok || digit >= int64(base) {
			return 0, NewInvalidDigitError(char, base)
		}
		value = value*int64(base) + digit
	}

	if negative {
		value = -value
	}
	return value, nil
}
