package output

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

var monthLabels = [12]string{
	"jan",
	"feb",
	"mar",
	"apr",
	"may",
	"jun",
	"jul",
	"aug",
	"sep",
	"oct",
	"nov",
	"dec",
}

func MonthLabel(n int) (string, error) {
	if n < 1 || n > len(monthLabels) {
		return "", &LookupError{Value: n}
	}
	return monthLabels[n-1], nil
}

// MonthNumber accepts "3", "mar", "Mar" or "March" and returns 3.
func MonthNumber(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if _, err = MonthLabel(n); err != nil {
			return 0, err
		}
		return n, nil
	}
	for i, label := range monthLabels {
		if s == label || s == strings.ToLower(time.Month(i+1).String()) {
			return i + 1, nil
		}
	}
	return 0, &ParseError{Input: s, Token: s}
}

// LabelMonths replaces every month number in a range string with its label,
// "1-3; 12" becomes "jan-mar;dec".
func LabelMonths(s string) (string, error) {
	segments := strings.Split(s, rangeSeparator)
	labeled := make([]string, 0, len(segments))
	for _, seg := range segments {
		ends := strings.Split(seg, rangeDash)
		for i, end := range ends {
			n, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return "", &ParseError{Input: s, Token: seg, Err: unwrapNumError(err)}
			}
			if ends[i], err = MonthLabel(n); err != nil {
				return "", err
			}
		}
		labeled = append(labeled, strings.Join(ends, rangeDash))
	}
	return strings.Join(labeled, rangeSeparator), nil
}

// ParseMonthRanges reads month ranges written with numbers or labels,
// "jan-mar; 11-12". A range that ends before it starts wraps around the end
// of the year, so "nov-feb" is 1, 2, 11 and 12.
func ParseMonthRanges(s string) ([]int, error) {
	var idx []int
	for _, seg := range strings.Split(s, rangeSeparator) {
		r, err := parseRange(s, seg, MonthNumber)
		if err != nil {
			return nil, err
		}
		if r.First > r.Last {
			idx = append(idx, Range{First: r.First, Last: len(monthLabels)}.Expand()...)
			idx = append(idx, Range{First: 1, Last: r.Last}.Expand()...)
			continue
		}
		idx = append(idx, r.Expand()...)
	}
	slices.Sort(idx)
	return slices.Compact(idx), nil
}
