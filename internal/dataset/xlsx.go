package dataset

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// decodeXLSX reads a long format table from a spreadsheet, the first sheet is
// used unless a sheet name is given.
func decodeXLSX(path, sheet string) (rows []Row, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close spreadsheet", slog.String("path", path), slog.Any("err", cerr))
		}
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read sheet %q: %w", path, sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	dec, err := newRowDecoder(records[0])
	if err != nil {
		return nil, &RowError{Path: path, Line: 1, Err: err}
	}
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row, err := dec.decode(record)
		if err != nil {
			return nil, &RowError{Path: path, Line: i + 2, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
