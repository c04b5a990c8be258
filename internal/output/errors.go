package output

import (
	"fmt"
)

// ParseError is returned when a range or index list contains a token that
// cannot be read as a number or a number range.
type ParseError struct {
	Err   error
	Input string
	Token string
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %q: invalid token %q: %s", e.Input, e.Token, e.Err)
	}
	return fmt.Sprintf("failed to parse %q: invalid token %q", e.Input, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LookupError is returned when a number has no month label.
type LookupError struct {
	Value int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%d is not a valid month number, expected a value between 1 and 12", e.Value)
}
