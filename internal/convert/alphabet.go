package convert

import "strings"

// Alphabet is the digit alphabet shared by every base up to 62. The
// position of a rune is its digit value: 0-9 cover values 0 through 9,
// A-Z cover 10 through 35, and a-z cover 36 through 61. Bases above 10
// draw their extra digits from this ordering, so "F" is fifteen but "f"
// is forty-one.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest supported radix, one per alphabet rune.
const MaxBase = len(Alphabet)

// MinBase is the smallest meaningful radix.
const MinBase = 2

// DigitValue returns the value of a digit rune, or false if the rune is
// not part of the alphabet.
func DigitValue(char rune) (int64, bool) {
	index := strings.IndexRune(Alphabet, char)
	if index < 0 {
		return 0, false
	}
	return int64(index), true
}

// DigitRune returns the rune denoting a digit value, or false if the
// value is outside [0, 61].
func DigitRune(value int64) (rune, bool) {
	if value < 0 || value >= int64(MaxBase) {
		return 0, false
	}
	return rune(Alphabet[value]), true
}
