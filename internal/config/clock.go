package config

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type Clock struct {
	Timezone string `hcl:"timezone,optional" json:"timezone,omitempty"`
}

func (c Clock) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c Clock) validate() error {
	if _, err := c.location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

type Defaults struct {
	MostValuable int `hcl:"most_valuable,optional" json:"most_valuable"`
}
