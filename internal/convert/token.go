package convert

import "strconv"

type TokenType int

const (
	UNKNOWN_TOKEN  TokenType = 0
	INT_TOKEN      TokenType = 1
	OPERATOR_TOKEN TokenType = 2
)

// Token is one lexical unit of an equation: a numeral already converted
// to its decimal value, or a single operator rune.
type Token struct {
	Type     TokenType
	Number   int64
	Operator rune
}

func (t Token) String() string {
	if t.Type == OPERATOR_TOKEN {
		return string(t.Operator)
	}
	return strconv.FormatInt(t.Number, 10)
}
