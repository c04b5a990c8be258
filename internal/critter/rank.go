package critter

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/cloudflare/critters/internal/dataset"
	"github.com/cloudflare/critters/internal/output"
)

type Ranked struct {
	Name     string
	Location string
	Value    float64
}

type Ranking struct {
	Rows []Ranked
	Kind dataset.Kind
}

func (r Ranking) Table() output.Table {
	t := output.Table{Header: []string{r.Kind.String(), "location", "value"}}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{row.Name, row.Location, strconv.FormatFloat(row.Value, 'f', -1, 64)})
	}
	return t
}

type rankKey struct {
	name     string
	location string
}

// MostValuable ranks critters by their mean value per location, highest
// first with ties ordered by name, also descending. A positive limit keeps
// the first limit rows, a negative one drops the last -limit rows.
func (f Finder) MostValuable(limit int) Ranking {
	values := newMultimap[rankKey, int]()
	for _, r := range f.table.Rows {
		if !r.Available() {
			continue
		}
		values.add(rankKey{name: r.Name, location: r.Location}, r.Value.Int())
	}
	values.sortKeys(func(a, b rankKey) int {
		return cmp.Or(cmp.Compare(a.name, b.name), cmp.Compare(a.location, b.location))
	})

	ranked := make([]Ranked, 0, len(values.keys))
	for _, key := range values.keys {
		ranked = append(ranked, Ranked{Name: key.name, Location: key.location, Value: mean(values.get(key))})
	}
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Or(cmp.Compare(b.Value, a.Value), cmp.Compare(b.Name, a.Name))
	})

	return Ranking{Kind: f.table.Kind, Rows: limitRows(ranked, limit)}
}

func limitRows[T any](rows []T, limit int) []T {
	if limit >= 0 {
		return rows[:min(limit, len(rows))]
	}
	return rows[:max(len(rows)+limit, 0)]
}

func mean(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum int
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}
