// Package runes reads UTF-8 encoded characters from a byte stream with
// lookahead.
package runes

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// PeekRunes returns up to n upcoming runes without consuming them. A
// reader nearing the end of its input returns however many runes
// remain, so a short result (not an error) signals exhaustion.
func (r *Reader) PeekRunes(n int) ([]rune, error) {
	word := []rune{}
	peekOffset := 0

	for i := 0; i < n; i++ {
	charBuilder:
		for peekBytes := utf8.UTFMax; peekBytes > 0; peekBytes-- {
			b, err := r.Peek(peekBytes + peekOffset)
			if err != nil {
				continue charBuilder
			}

			char, _ := utf8.DecodeRune(b[peekOffset:])
			if char == utf8.RuneError {
				return nil, errors.New("rune error")
			}

			peekOffset += utf8.RuneLen(char)
			word = append(word, char)
			break charBuilder
		}
	}

	return word, nil
}
