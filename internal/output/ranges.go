package output

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	indexSeparator = ","
	rangeSeparator = ";"
	rangeJoiner    = "; "
	rangeDash      = "-"
)

// Range is a contiguous, inclusive run of indices.
type Range struct {
	First int
	Last  int
}

func (r Range) String() string {
	if r.First == r.Last {
		return strconv.Itoa(r.First)
	}
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

func (r Range) Len() int {
	return r.Last - r.First + 1
}

func (r Range) Expand() []int {
	idx := make([]int, 0, r.Len())
	for i := r.First; i <= r.Last; i++ {
		idx = append(idx, i)
	}
	return idx
}

// Ranges is an ascending list of maximal runs, two neighbours always have
// at least one missing index between them.
type Ranges []Range

func (rs Ranges) String() string {
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, rangeJoiner)
}

func (rs Ranges) Expand() []int {
	var idx []int
	for _, r := range rs {
		idx = append(idx, r.Expand()...)
	}
	return idx
}

// CompressRanges splits a list of indices into maximal contiguous runs.
// A new run starts at every index that follows a gap.
func CompressRanges(idx []int) (rs Ranges) {
	ls := slices.Clone(idx)
	slices.Sort(ls)
	ls = slices.Compact(ls)

	for _, n := range ls {
		if len(rs) > 0 && rs[len(rs)-1].Last+1 == n {
			rs[len(rs)-1].Last = n
			continue
		}
		rs = append(rs, Range{First: n, Last: n})
	}
	return rs
}

// FormatIndexSet renders a list of indices as "0-4; 6-8".
func FormatIndexSet(idx []int) string {
	return CompressRanges(idx).String()
}

// FormatRanges takes a comma separated list of indices, for example
// "0,1,2,3,4,6,7,8", and returns "0-4; 6-8".
func FormatRanges(s string) (string, error) {
	idx, err := ParseIndexSet(s)
	if err != nil {
		return "", err
	}
	return FormatIndexSet(idx), nil
}

func ParseIndexSet(s string) ([]int, error) {
	parts := strings.Split(s, indexSeparator)
	idx := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &ParseError{Input: s, Token: part, Err: unwrapNumError(err)}
		}
		idx = append(idx, n)
	}
	return idx, nil
}

// ParseRanges reads the output of Ranges.String() back.
func ParseRanges(s string) (rs Ranges, err error) {
	for _, seg := range strings.Split(s, rangeSeparator) {
		r, err := parseRange(s, seg, strconv.Atoi)
		if err != nil {
			return nil, err
		}
		if r.First > r.Last {
			return nil, &ParseError{Input: s, Token: seg, Err: errors.New("range start is greater than range end")}
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func ExpandRanges(s string) ([]int, error) {
	rs, err := ParseRanges(s)
	if err != nil {
		return nil, err
	}
	return rs.Expand(), nil
}

func parseRange(input, seg string, conv func(string) (int, error)) (r Range, err error) {
	first, last, isRange := strings.Cut(seg, rangeDash)
	if r.First, err = conv(strings.TrimSpace(first)); err != nil {
		return r, rangeTokenError(input, seg, err)
	}
	if !isRange {
		r.Last = r.First
		return r, nil
	}
	if r.Last, err = conv(strings.TrimSpace(last)); err != nil {
		return r, rangeTokenError(input, seg, err)
	}
	return r, nil
}

func rangeTokenError(input, seg string, err error) error {
	var le *LookupError
	if errors.As(err, &le) {
		return err
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Input: input, Token: seg}
	}
	return &ParseError{Input: input, Token: seg, Err: unwrapNumError(err)}
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
