package dataset_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cloudflare/critters/internal/dataset"
)

func TestLoadEmbedded(t *testing.T) {
	slog.SetDefault(slogt.New(t))

	for _, kind := range dataset.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			table, err := dataset.Load(kind, dataset.Source{})
			require.NoError(t, err)
			require.Equal(t, kind, table.Kind)
			require.Equal(t, "embedded", table.Path)

			names := table.Names()
			require.NotEmpty(t, names)
			require.Len(t, table.Rows, len(names)*12*24)

			for _, r := range table.Rows {
				require.Equal(t, kind.HasShadowSize(), r.ShadowSize != "", "%s shadow size", r.Name)
				require.True(t, r.Value.Known, "%s has no value", r.Name)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	slog.SetDefault(slogt.New(t))
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "bugs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(`bug,location,month,isMonth,hour,isTime,value
Ant,On rotten food,jan,true,0,true,80
Ant,On rotten food,jan,true,1,true,80
`), 0o644))

	yamlPath := filepath.Join(dir, "fish.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- name: Koi
  location: Pond
  shadowSize: "4"
  value: 4000
  availability:
    - months: jan-dec
      hours: 0-8; 16-23
`), 0o644))

	xlsxPath := filepath.Join(dir, "fish.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"fish", "shadowSize", "location", "Months", "isMonth", "Times", "isTime", "value"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Koi", "4", "Pond", "jan", "true", 3, "true", 4000}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Koi", "4", "Pond", "feb", "false", 3, "true", 4000}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	type testCaseT struct {
		src  dataset.Source
		err  string
		kind dataset.Kind
		rows int
	}

	testCases := []testCaseT{
		{kind: dataset.Bugs, src: dataset.Source{Path: csvPath}, rows: 2},
		{kind: dataset.Fish, src: dataset.Source{Path: yamlPath}, rows: 12 * 24},
		{kind: dataset.Fish, src: dataset.Source{Path: xlsxPath}, rows: 2},
		{kind: dataset.Fish, src: dataset.Source{Path: xlsxPath, Sheet: "Sheet1"}, rows: 2},
		{
			kind: dataset.Fish,
			src:  dataset.Source{Path: xlsxPath, Sheet: "Missing"},
			err:  "failed to load fish dataset: " + xlsxPath + `: failed to read sheet "Missing"`,
		},
		{
			kind: dataset.Fish,
			src:  dataset.Source{Path: filepath.Join(dir, "fish.json")},
			err:  `failed to load fish dataset: unsupported file type ".json", expected one of .yaml, .yml, .csv, .xlsx`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.src.String(), func(t *testing.T) {
			table, err := dataset.Load(tc.kind, tc.src)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Len(t, table.Rows, tc.rows)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	slog.SetDefault(slogt.New(t))
	_, err := dataset.Load(dataset.Bugs, dataset.Source{Path: filepath.Join(t.TempDir(), "bugs.csv")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTableFingerprint(t *testing.T) {
	a := &dataset.Table{Rows: []dataset.Row{{Name: "Koi", Month: 1, Hour: 2, Value: dataset.KnownValue(4000)}}}
	b := &dataset.Table{Rows: []dataset.Row{{Name: "Koi", Month: 1, Hour: 2, Value: dataset.KnownValue(4000)}}}
	c := &dataset.Table{Rows: []dataset.Row{{Name: "Koi", Month: 1, Hour: 3, Value: dataset.KnownValue(4000)}}}
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
