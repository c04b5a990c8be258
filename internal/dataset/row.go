package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const unknownValue = "?"

// Row is a single month and hour slot for a critter. Every critter has a row
// for every slot, IsMonth and IsTime tell if it can actually be caught then.
type Row struct {
	Name       string
	ShadowSize string
	Location   string
	Value      Value
	Month      int
	Hour       int
	IsMonth    bool
	IsTime     bool
}

// Available is true when the critter can be caught in this row's slot.
func (r Row) Available() bool {
	return r.IsMonth && r.IsTime
}

// Value is the sell price, some critters have it recorded as unknown.
type Value struct {
	N     int
	Known bool
}

func KnownValue(n int) Value {
	return Value{N: n, Known: true}
}

func (v Value) Int() int {
	if !v.Known {
		return 0
	}
	return v.N
}

func (v Value) String() string {
	if !v.Known {
		return unknownValue
	}
	return strconv.Itoa(v.N)
}

func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == unknownValue {
		return Value{}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return Value{}, fmt.Errorf("%q is not a valid value, expected a whole number or %q", s, unknownValue)
		}
		n = int(f)
	}
	if n < 0 {
		return Value{}, fmt.Errorf("value cannot be negative, got %d", n)
	}
	return KnownValue(n), nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) (err error) {
	*v, err = ParseValue(node.Value)
	return err
}
