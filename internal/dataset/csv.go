package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

func decodeCSV(path string, r io.Reader) (rows []Row, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	if err != nil {
		return nil, err
	}
	dec, err := newRowDecoder(header)
	if err != nil {
		return nil, &RowError{Path: path, Line: 1, Err: err}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := dec.decode(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &RowError{Path: path, Line: line, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
