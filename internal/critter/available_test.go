package critter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudflare/critters/internal/critter"
)

func TestAvailable(t *testing.T) {
	type testCaseT struct {
		description string
		now         string
		filter      critter.AvailableFilter
		names       []string
	}

	testCases := []testCaseT{
		{
			description: "no filter",
			now:         "2024-03-15T03:00:00Z",
			names:       []string{"Koi", "Bitterling", "Cherry salmon"},
		},
		{
			description: "outside hours",
			now:         "2024-03-15T12:00:00Z",
			names:       []string{"Bitterling"},
		},
		{
			description: "location prefix",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Locations: []string{"river"}},
			names:       []string{"Bitterling", "Cherry salmon"},
		},
		{
			description: "exact location",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Locations: []string{"River (Clifftop)"}},
			names:       []string{"Cherry salmon"},
		},
		{
			description: "multiple locations",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Locations: []string{"pond", "River (Clifftop)"}},
			names:       []string{"Koi", "Cherry salmon"},
		},
		{
			description: "size number",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Sizes: []string{"4"}},
			names:       []string{"Koi"},
		},
		{
			description: "size alias",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Sizes: []string{"tiny", "medium"}},
			names:       []string{"Bitterling", "Cherry salmon"},
		},
		{
			description: "size with no match",
			now:         "2024-03-15T03:00:00Z",
			filter:      critter.AvailableFilter{Sizes: []string{"small"}},
			names:       []string{},
		},
		{
			description: "fin",
			now:         "2024-07-01T22:00:00Z",
			filter:      critter.AvailableFilter{Sizes: []string{"fin"}},
			names:       []string{"Great white shark"},
		},
		{
			description: "six includes fin",
			now:         "2024-09-01T22:00:00Z",
			filter:      critter.AvailableFilter{Sizes: []string{"huge"}},
			names:       []string{"King salmon", "Great white shark"},
		},
		{
			description: "location and size",
			now:         "2024-09-01T22:00:00Z",
			filter:      critter.AvailableFilter{Locations: []string{"river"}, Sizes: []string{"4"}},
			names:       []string{"Salmon"},
		},
		{
			description: "unknown location",
			now:         "2024-09-01T22:00:00Z",
			filter:      critter.AvailableFilter{Locations: []string{"Pier"}},
			names:       []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := critter.NewFinder(fishTable(), at(tc.now))
			require.Equal(t, tc.names, f.Available(tc.filter))
		})
	}
}

func TestAvailableBugs(t *testing.T) {
	f := critter.NewFinder(bugTable(), at("2024-02-02T02:00:00Z"))
	require.Equal(t, []string{"Moth", "Ant"}, f.Available(critter.AvailableFilter{}))

	f = critter.NewFinder(bugTable(), at("2024-02-02T12:00:00Z"))
	require.Equal(t, []string{"Ant"}, f.Available(critter.AvailableFilter{}))
}
