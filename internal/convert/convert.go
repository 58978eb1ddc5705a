// Package convert translates numerals, arithmetic expressions, and
// encoded character strings from an arbitrary base (2-62) into decimal.
package convert

import (
	"fmt"
	"strings"
)

// InputMode selects how raw input is interpreted.
type InputMode string

const (
	NumberInput   InputMode = "number"
	EquationInput InputMode = "equation"
	StringInput   InputMode = "string"
)

// Result is the outcome of one conversion: a display string on success
// or an error message on failure, never both.
type Result struct {
	Ok      bool
	Text    string
	Message string
}

// Convert trims the raw input, dispatches it to the converter selected
// by mode, and wraps the outcome with its display label. Failures from
// the converters surface their messages unchanged.
func Convert(rawInput string, mode InputMode, base int) Result {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return failure(NewEmptyInputError())
	}

	switch mode {
	case NumberInput:
		value, err := ConvertNumber(input, base)
		if err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Decimal (Base 10): %d", value))
	case EquationInput:
		equation, err := ConvertEquation(input, base)
		if err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Equation in Decimal (Base 10): %s", equation))
	case StringInput:
		decoded, err := ConvertEncodedString(input, base)
		if err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Decoded String: %s", decoded))
	default:
		return failure(NewUnknownInputTypeError(string(mode)))
	}
}

func success(text string) Result {
	return Result{Ok: true, Text: text}
}

func failure(err error) Result {
	return Result{Message: err.Error()}
}
