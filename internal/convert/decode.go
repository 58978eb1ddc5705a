package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConvertEncodedString treats the input as whitespace-separated
// character codes in the given base and decodes them into text. A code
// that is not a Unicode scalar value becomes an inline
// "[Invalid character code: N]" marker instead of failing the whole
// string; an invalid numeral still fails the conversion.
func ConvertEncodedString(text string, base int) (string, error) {
	codes := strings.Fields(text)
	if len(codes) == 0 {
		return "", NewEmptyInputError()
	}

	var decoded strings.Builder
	for _, code := range codes {
		value, err := ConvertNumber(code, base)
		if err != nil {
			return "", err
		}
		if value < 0 || value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
			fmt.Fprintf(&decoded, "[Invalid character code: %d]", value)
			continue
		}
		decoded.WriteRune(rune(value))
	}

	return decoded.String(), nil
}
