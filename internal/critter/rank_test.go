package critter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudflare/critters/internal/critter"
	"github.com/cloudflare/critters/internal/dataset"
)

func rankedNames(r critter.Ranking) []string {
	names := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		names = append(names, row.Name)
	}
	return names
}

func TestMostValuable(t *testing.T) {
	type testCaseT struct {
		description string
		limit       int
		names       []string
	}

	testCases := []testCaseT{
		{
			description: "top three",
			limit:       3,
			names:       []string{"Great white shark", "Koi", "King salmon"},
		},
		{
			description: "zero",
			limit:       0,
			names:       []string{},
		},
		{
			description: "more than available",
			limit:       100,
			names: []string{
				"Great white shark", "Koi", "King salmon", "Cherry salmon",
				"Bitterling", "Salmon", "Mystery fish",
			},
		},
		{
			description: "negative drops from the bottom",
			limit:       -2,
			names:       []string{"Great white shark", "Koi", "King salmon", "Cherry salmon", "Bitterling"},
		},
		{
			description: "negative over the size",
			limit:       -50,
			names:       []string{},
		},
		{
			description: "negative equal to the size",
			limit:       -7,
			names:       []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := critter.NewFinder(fishTable(), at("2024-03-15T03:00:00Z"))
			ranking := f.MostValuable(tc.limit)
			require.Equal(t, dataset.Fish, ranking.Kind)
			require.Equal(t, tc.names, rankedNames(ranking))
		})
	}
}

func TestMostValuableTies(t *testing.T) {
	table := buildTable(dataset.Bugs,
		fixture{name: "Ant", location: "Ground", value: dataset.KnownValue(100), windows: []window{{months: span(1, 12), hours: allDay()}}},
		fixture{name: "Bee", location: "Trees", value: dataset.KnownValue(100), windows: []window{{months: span(1, 12), hours: allDay()}}},
		fixture{name: "Cicada", location: "Trees", value: dataset.KnownValue(250), windows: []window{{months: []int{7}, hours: allDay()}}},
	)
	f := critter.NewFinder(table, at("2024-03-15T03:00:00Z"))

	ranking := f.MostValuable(10)
	require.Equal(t, []critter.Ranked{
		{Name: "Cicada", Location: "Trees", Value: 250},
		{Name: "Bee", Location: "Trees", Value: 100},
		{Name: "Ant", Location: "Ground", Value: 100},
	}, ranking.Rows)
	require.Equal(t, []string{"bug", "location", "value"}, ranking.Table().Header)
	require.Equal(t, []string{"Cicada", "Trees", "250"}, ranking.Table().Rows[0])
}

func TestMostValuableIsSorted(t *testing.T) {
	f := critter.NewFinder(fishTable(), at("2024-03-15T03:00:00Z"))
	rows := f.MostValuable(100).Rows
	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i-1].Value, rows[i].Value)
	}
	require.Equal(t, float64(0), rows[len(rows)-1].Value)
}
