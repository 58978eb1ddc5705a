package convert

import "fmt"

// Error kinds. Every failure produced by this package carries one of
// these in its Type field.
const (
	INVALID_BASE_ERROR       = "invalidbase"
	INVALID_DIGIT_ERROR      = "invaliddigit"
	EMPTY_INPUT_ERROR        = "emptyinput"
	UNKNOWN_INPUT_TYPE_ERROR = "unknowninputtype"
)

type ConvertError struct {
	Type    string
	Message string
}

func NewInvalidBaseError(base int) *ConvertError {
	return &ConvertError{
		Type:    INVALID_BASE_ERROR,
		Message: fmt.Sprintf("base must be between %d and %d, received %d", MinBase, MaxBase, base),
	}
}

func NewInvalidDigitError(char rune, base int) *ConvertError {
	return &ConvertError{
		Type:    INVALID_DIGIT_ERROR,
		Message: fmt.Sprintf("invalid digit %q for base %d", char, base),
	}
}

func NewEmptyInputError() *ConvertError {
	return &ConvertError{
		Type:    EMPTY_INPUT_ERROR,
		Message: "input may not be empty",
	}
}

func NewUnknownInputTypeError(mode string) *ConvertError {
	return &ConvertError{
		Type:    UNKNOWN_INPUT_TYPE_ERROR,
		Message: fmt.Sprintf("unknown input type %q", mode),
	}
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}
