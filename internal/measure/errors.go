package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for negative or non-finite numeric input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFormat is returned when architectural notation cannot be
	// converted.
	ErrInvalidFormat = errors.New("invalid architectural notation")
	// ErrNoTrigger is returned when a Request names no source to convert from.
	ErrNoTrigger = errors.New("no conversion requested")
)

// ConversionError records the operation and input that failed.
type ConversionError struct {
	Op    string
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("measure: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("measure: %s %q: %v", e.Op, e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func invalidInput(op string, value float64) error {
	return &ConversionError{Op: op, Input: fmt.Sprint(value), Err: ErrInvalidInput}
}

func invalidFormat(input, reason string) error {
	return &ConversionError{Op: "parse", Input: input, Err: fmt.Errorf("%w: %s", ErrInvalidFormat, reason)}
}
