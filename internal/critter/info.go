package critter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/cloudflare/critters/internal/dataset"
	"github.com/cloudflare/critters/internal/output"
)

type InfoRow struct {
	Name       string
	ShadowSize string
	Location   string
	Hours      string
	Months     string
	Value      int
}

type Info struct {
	Rows []InfoRow
	Kind dataset.Kind
}

func (i Info) Table() output.Table {
	t := output.Table{Header: []string{i.Kind.String()}}
	if i.Kind.HasShadowSize() {
		t.Header = append(t.Header, "size")
	}
	t.Header = append(t.Header, "location", "value", "hours", "months")

	for _, r := range i.Rows {
		row := []string{r.Name}
		if i.Kind.HasShadowSize() {
			row = append(row, r.ShadowSize)
		}
		row = append(row, r.Location, strconv.Itoa(r.Value), r.Hours, r.Months)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Merge returns rows from both results with duplicates removed, ordered the
// same way InfoFor orders them.
func (i Info) Merge(other Info) Info {
	seen := map[InfoRow]struct{}{}
	rows := make([]InfoRow, 0, len(i.Rows)+len(other.Rows))
	for _, r := range slices.Concat(i.Rows, other.Rows) {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		rows = append(rows, r)
	}
	slices.SortStableFunc(rows, func(a, b InfoRow) int {
		return compareInfoKeys(a.key(), b.key())
	})
	return Info{Kind: i.Kind, Rows: rows}
}

func (r InfoRow) key() infoKey {
	return infoKey{name: r.Name, size: r.ShadowSize, location: r.Location, value: r.Value, hours: r.Hours}
}

// First pass key, hours are collected for every month.
type slotKey struct {
	name     string
	size     string
	location string
	value    int
	month    int
}

// Second pass key, months are collected for every distinct hour range.
type infoKey struct {
	name     string
	size     string
	location string
	hours    string
	value    int
}

func compareSlotKeys(a, b slotKey) int {
	return cmp.Or(
		cmp.Compare(a.name, b.name),
		cmp.Compare(a.size, b.size),
		cmp.Compare(a.location, b.location),
		cmp.Compare(a.value, b.value),
		cmp.Compare(a.month, b.month),
	)
}

func compareInfoKeys(a, b infoKey) int {
	return cmp.Or(
		cmp.Compare(a.name, b.name),
		cmp.Compare(a.size, b.size),
		cmp.Compare(a.location, b.location),
		cmp.Compare(a.value, b.value),
		cmp.Compare(a.hours, b.hours),
	)
}

// InfoFor tells when and where critters with a name containing query can be
// caught. Months and hours are recorded independently for every row, so rows
// are first grouped per month to get the hour ranges and then grouped per
// hour range to get the month ranges. A critter that is out at different
// hours in different months ends up with one line per hour range.
func (f Finder) InfoFor(query string) (Info, error) {
	needle := strings.ToLower(query)
	matches := f.table.Filter(func(r dataset.Row) bool {
		return strings.Contains(strings.ToLower(r.Name), needle)
	})
	if len(matches) == 0 {
		return Info{}, &NotFoundError{Query: query, Suggestions: suggest(f.table.Names(), query)}
	}

	hoursBySlot := newMultimap[slotKey, int]()
	for _, r := range matches {
		if !r.Available() {
			continue
		}
		key := slotKey{
			name:     r.Name,
			location: r.Location,
			value:    r.Value.Int(),
			month:    r.Month,
		}
		if f.table.Kind.HasShadowSize() {
			key.size = r.ShadowSize
		}
		hoursBySlot.add(key, r.Hour)
	}
	hoursBySlot.sortKeys(compareSlotKeys)

	monthsByHours := newMultimap[infoKey, int]()
	for _, key := range hoursBySlot.keys {
		monthsByHours.add(infoKey{
			name:     key.name,
			size:     key.size,
			location: key.location,
			value:    key.value,
			hours:    output.FormatIndexSet(hoursBySlot.get(key)),
		}, key.month)
	}
	monthsByHours.sortKeys(compareInfoKeys)

	info := Info{Kind: f.table.Kind, Rows: make([]InfoRow, 0, len(monthsByHours.keys))}
	for _, key := range monthsByHours.keys {
		months, err := output.LabelMonths(output.FormatIndexSet(monthsByHours.get(key)))
		if err != nil {
			return Info{}, err
		}
		info.Rows = append(info.Rows, InfoRow{
			Name:       key.name,
			ShadowSize: key.size,
			Location:   key.location,
			Value:      key.value,
			Hours:      key.hours,
			Months:     months,
		})
	}
	return info, nil
}
