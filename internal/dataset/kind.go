package dataset

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	Fish Kind = iota
	Bugs
)

var Kinds = []Kind{Fish, Bugs}

func (k Kind) String() string {
	switch k {
	case Fish:
		return "fish"
	case Bugs:
		return "bug"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// HasShadowSize is true for kinds that show a silhouette before being caught.
func (k Kind) HasShadowSize() bool {
	return k == Fish
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fish":
		return Fish, nil
	case "bug", "bugs":
		return Bugs, nil
	default:
		return Fish, fmt.Errorf("%q is not a valid critter kind, expected fish or bug", s)
	}
}
