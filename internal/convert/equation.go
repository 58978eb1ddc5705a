package convert

import (
	"strings"

	"github.com/ian-shakespeare/debase/pkg/array"
)

// ConvertEquation renders an expression with every numeral rewritten in
// decimal. Tokens are joined with single spaces; nothing is evaluated.
func ConvertEquation(text string, base int) (string, error) {
	tokens, err := TokenizeEquation(text, base)
	if err != nil {
		return "", err
	}
	return strings.Join(array.Map(tokens, Token.String), " "), nil
}
