package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingLog         = errors.New("missing top-level \"log\" object")
	ErrMissingEntries     = errors.New("missing \"log.entries\" array")
	ErrUnsupportedVersion = errors.New("unsupported HAR version")
)

// ParseError is returned when the input is not a usable HAR document.
// Line and Column are 1-based and only set for JSON syntax errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid HAR at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("invalid HAR: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
