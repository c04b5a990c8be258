package critter

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/cloudflare/critters/internal/clock"
)

// NewThisMonth returns critters that can be caught this month but couldn't
// be caught last month.
func (f Finder) NewThisMonth() []string {
	return f.changedSince(clock.PreviousMonth(f.clock))
}

// ExpiringThisMonth returns critters that can be caught this month but won't
// be around next month.
func (f Finder) ExpiringThisMonth() []string {
	return f.changedSince(clock.NextMonth(f.clock))
}

func (f Finder) changedSince(other int) []string {
	current := clock.CurrentMonth(f.clock)

	present := map[string]struct{}{}
	absent := map[string]struct{}{}
	for _, r := range f.table.Rows {
		if r.Month == current && r.IsMonth {
			present[r.Name] = struct{}{}
		}
		if r.Month == other && !r.IsMonth {
			absent[r.Name] = struct{}{}
		}
	}

	names := slices.DeleteFunc(maps.Keys(present), func(name string) bool {
		_, ok := absent[name]
		return !ok
	})
	slices.Sort(names)
	return names
}
