package critter_test

import (
	"slices"
	"time"

	"github.com/cloudflare/critters/internal/clock"
	"github.com/cloudflare/critters/internal/dataset"
)

type window struct {
	months []int
	hours  []int
}

type fixture struct {
	name     string
	size     string
	location string
	value    dataset.Value
	windows  []window
}

func span(first, last int) []int {
	out := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, i)
	}
	return out
}

func join(parts ...[]int) []int {
	return slices.Concat(parts...)
}

func allDay() []int {
	return span(0, 23)
}

func nightly() []int {
	return join(span(0, 8), span(16, 23))
}

func buildTable(kind dataset.Kind, fixtures ...fixture) *dataset.Table {
	table := &dataset.Table{Kind: kind}
	for _, f := range fixtures {
		var anyHour []int
		for _, w := range f.windows {
			anyHour = append(anyHour, w.hours...)
		}
		for month := 1; month <= 12; month++ {
			hours := anyHour
			var isMonth bool
			for _, w := range f.windows {
				if slices.Contains(w.months, month) {
					if !isMonth {
						hours = nil
					}
					isMonth = true
					hours = append(hours, w.hours...)
				}
			}
			for hour := 0; hour < 24; hour++ {
				table.Rows = append(table.Rows, dataset.Row{
					Name:       f.name,
					ShadowSize: f.size,
					Location:   f.location,
					Value:      f.value,
					Month:      month,
					Hour:       hour,
					IsMonth:    isMonth,
					IsTime:     slices.Contains(hours, hour),
				})
			}
		}
	}
	return table
}

func fishTable() *dataset.Table {
	return buildTable(dataset.Fish,
		fixture{
			name: "Koi", size: "4", location: "Pond", value: dataset.KnownValue(4000),
			windows: []window{{months: span(1, 12), hours: nightly()}},
		},
		fixture{
			name: "Bitterling", size: "1", location: "River", value: dataset.KnownValue(900),
			windows: []window{{months: join(span(1, 3), span(11, 12)), hours: allDay()}},
		},
		fixture{
			name: "Cherry salmon", size: "3", location: "River (Clifftop)", value: dataset.KnownValue(1000),
			windows: []window{
				{months: span(3, 6), hours: nightly()},
				{months: span(9, 11), hours: allDay()},
			},
		},
		fixture{
			name: "Salmon", size: "4", location: "River (Mouth)", value: dataset.KnownValue(700),
			windows: []window{{months: []int{9}, hours: allDay()}},
		},
		fixture{
			name: "King salmon", size: "6", location: "River (Mouth)", value: dataset.KnownValue(1800),
			windows: []window{{months: []int{9}, hours: allDay()}},
		},
		fixture{
			name: "Mystery fish", size: "2", location: "Pond", value: dataset.Value{},
			windows: []window{{months: []int{6}, hours: []int{12}}},
		},
		fixture{
			name: "Great white shark", size: "6 (Fin)", location: "Sea", value: dataset.KnownValue(15000),
			windows: []window{{months: span(6, 9), hours: nightly()}},
		},
	)
}

func bugTable() *dataset.Table {
	return buildTable(dataset.Bugs,
		fixture{
			name: "Moth", location: "Near light sources", value: dataset.KnownValue(130),
			windows: []window{{months: span(1, 12), hours: join(span(0, 3), span(19, 23))}},
		},
		fixture{
			name: "Ant", location: "On rotten food", value: dataset.KnownValue(80),
			windows: []window{{months: span(1, 12), hours: allDay()}},
		},
	)
}

func at(s string) clock.Clock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return clock.Fixed{Time: t}
}
