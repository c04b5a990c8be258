package critter

import (
	"strings"

	"github.com/cloudflare/critters/internal/clock"
	"github.com/cloudflare/critters/internal/dataset"
)

const finSize = "fin"

var sizeAliases = map[string]string{
	"tiny":    "1",
	"small":   "2",
	"medium":  "3",
	"large":   "4",
	"x-large": "5",
	"xlarge":  "5",
	"huge":    "6",
}

// AvailableFilter narrows down results, empty lists match everything.
// Locations match by prefix, so "river" also matches "River (Mouth)". Sizes
// are shadow sizes, either a number, a name like "large", "narrow" or "fin".
type AvailableFilter struct {
	Locations []string
	Sizes     []string
}

func (af AvailableFilter) matchLocation(loc string) bool {
	if len(af.Locations) == 0 {
		return true
	}
	loc = strings.ToLower(loc)
	for _, want := range af.Locations {
		if strings.HasPrefix(loc, strings.ToLower(strings.TrimSpace(want))) {
			return true
		}
	}
	return false
}

func (af AvailableFilter) matchSize(size string) bool {
	if len(af.Sizes) == 0 {
		return true
	}
	size = strings.ToLower(size)
	for _, want := range af.Sizes {
		want = strings.ToLower(strings.TrimSpace(want))
		if alias, ok := sizeAliases[want]; ok {
			want = alias
		}
		if want == finSize && strings.Contains(size, finSize) {
			return true
		}
		if want != finSize && size != "" && strings.HasPrefix(size, want) {
			return true
		}
	}
	return false
}

// Available returns critters that can be caught right now.
func (f Finder) Available(filter AvailableFilter) []string {
	month := clock.CurrentMonth(f.clock)
	hour := clock.Hour(f.clock)

	rows := f.table.Filter(func(r dataset.Row) bool {
		return r.Month == month && r.Hour == hour && r.Available() &&
			filter.matchLocation(r.Location) &&
			filter.matchSize(r.ShadowSize)
	})

	seen := map[string]struct{}{}
	names := []string{}
	for _, r := range rows {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	return names
}
