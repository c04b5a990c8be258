package dataset

import (
	"fmt"
)

// InitializationError is returned when a table that was already loaded is
// initialized again.
type InitializationError struct {
	Kind Kind
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s dataset is already initialized", e.Kind)
}

type RowError struct {
	Err  error
	Path string
	Line int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
