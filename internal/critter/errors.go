package critter

import (
	"fmt"
	"strings"
)

type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("no critter matching %q was found, make sure spelling is correct", e.Query)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}
