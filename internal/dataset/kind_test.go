package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudflare/critters/internal/dataset"
)

func TestParseKind(t *testing.T) {
	type testCaseT struct {
		input string
		err   string
		kind  dataset.Kind
	}

	testCases := []testCaseT{
		{input: "fish", kind: dataset.Fish},
		{input: "FISH", kind: dataset.Fish},
		{input: "bug", kind: dataset.Bugs},
		{input: "Bugs", kind: dataset.Bugs},
		{input: "sea creature", err: `"sea creature" is not a valid critter kind, expected fish or bug`},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := dataset.ParseKind(tc.input)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.kind, kind)
		})
	}

	require.Equal(t, "fish", dataset.Fish.String())
	require.Equal(t, "bug", dataset.Bugs.String())
	require.True(t, dataset.Fish.HasShadowSize())
	require.False(t, dataset.Bugs.HasShadowSize())
}

func TestParseValue(t *testing.T) {
	type testCaseT struct {
		input string
		err   string
		value dataset.Value
	}

	testCases := []testCaseT{
		{input: "900", value: dataset.KnownValue(900)},
		{input: " 15000 ", value: dataset.KnownValue(15000)},
		{input: "4000.0", value: dataset.KnownValue(4000)},
		{input: "?", value: dataset.Value{}},
		{input: "", value: dataset.Value{}},
		{input: "4000.5", err: `"4000.5" is not a valid value, expected a whole number or "?"`},
		{input: "lots", err: `"lots" is not a valid value, expected a whole number or "?"`},
		{input: "-5", err: "value cannot be negative, got -5"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := dataset.ParseValue(tc.input)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.value, v)
		})
	}

	require.Equal(t, 0, dataset.Value{}.Int())
	require.Equal(t, "?", dataset.Value{}.String())
	require.Equal(t, 900, dataset.KnownValue(900).Int())
	require.Equal(t, "900", dataset.KnownValue(900).String())
}
