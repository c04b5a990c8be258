package clock

import (
	"time"
)

type Clock interface {
	Now() time.Time
}

// System reads the wall clock, converted to Location when it is set.
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now
}

// Fixed always returns the same instant, used by --at and in tests.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}

func CurrentMonth(c Clock) int {
	return int(c.Now().Month())
}

func PreviousMonth(c Clock) int {
	return shiftMonth(CurrentMonth(c), -1)
}

func NextMonth(c Clock) int {
	return shiftMonth(CurrentMonth(c), 1)
}

func Hour(c Clock) int {
	return c.Now().Hour()
}

func shiftMonth(month, delta int) int {
	return (month-1+delta+12)%12 + 1
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime accepts RFC3339 and a few shorter layouts, times without an
// offset are read in loc.
func ParseTime(s string, loc *time.Location) (t time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timeLayouts {
		if t, err = time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return t, err
}
