package convert

import (
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/ian-shakespeare/debase/pkg/array"
	"github.com/ian-shakespeare/debase/pkg/iterator"
	"github.com/ian-shakespeare/debase/pkg/runes"
)

// Operator runes recognized by the equation scanner. Each is emitted as
// its own token; '-' is always the binary operator, never a sign.
var operators = []rune{'+', '-', '*', '/', '^', '(', ')'}

type scanner struct {
	input *runes.Reader
	base  int
}

func NewScanner(input io.Reader, base int) *scanner {
	return &scanner{
		runes.NewReader(input),
		base,
	}
}

// NextToken returns the next token, or io.EOF once the input is
// exhausted. Whitespace never terminates a numeral; only an operator or
// the end of input flushes pending digits.
func (s *scanner) NextToken() (Token, error) {
	word := []rune{}

	for {
		next, err := s.input.PeekRunes(1)
		if err != nil {
			return Token{}, err
		}
		if len(next) == 0 {
			if len(word) == 0 {
				return Token{}, io.EOF
			}
			return s.numberToken(word)
		}

		char := next[0]
		if array.Contains(operators, char) {
			if len(word) > 0 {
				return s.numberToken(word)
			}
			if _, _, err := s.input.ReadRune(); err != nil {
				return Token{}, err
			}
			return Token{Type: OPERATOR_TOKEN, Operator: char}, nil
		}

		if _, _, err := s.input.ReadRune(); err != nil {
			return Token{}, err
		}
		if unicode.IsSpace(char) {
			continue
		}
		word = append(word, char)
	}
}

func (s *scanner) numberToken(word []rune) (Token, error) {
	number, err := ConvertNumber(string(word), s.base)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: INT_TOKEN, Number: number}, nil
}

func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				break
			}
			if !yield(token, err) {
				return
			}
		}
	}
}

// TokenizeEquation scans an entire expression into its token sequence.
// A conversion failure on any numeral aborts the scan and is returned
// unchanged.
func TokenizeEquation(text string, base int) ([]Token, error) {
	s := NewScanner(strings.NewReader(text), base)
	return iterator.TryCollect(s.Tokens())
}
