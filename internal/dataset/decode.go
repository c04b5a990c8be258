package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudflare/critters/internal/output"
)

type column uint8

const (
	colName column = iota
	colSize
	colLocation
	colMonth
	colIsMonth
	colHour
	colIsTime
	colValue
)

var columnNames = map[column]string{
	colName:     "name",
	colSize:     "shadowSize",
	colLocation: "location",
	colMonth:    "month",
	colIsMonth:  "isMonth",
	colHour:     "hour",
	colIsTime:   "isTime",
	colValue:    "value",
}

var columnAliases = map[string]column{
	"name":       colName,
	"fish":       colName,
	"bug":        colName,
	"bugs":       colName,
	"critter":    colName,
	"shadowsize": colSize,
	"shadow":     colSize,
	"size":       colSize,
	"location":   colLocation,
	"month":      colMonth,
	"months":     colMonth,
	"ismonth":    colIsMonth,
	"hour":       colHour,
	"hours":      colHour,
	"time":       colHour,
	"times":      colHour,
	"istime":     colIsTime,
	"value":      colValue,
	"price":      colValue,
}

var requiredColumns = []column{colName, colLocation, colMonth, colIsMonth, colHour, colIsTime, colValue}

// rowDecoder maps the columns of a long format table, one row per critter,
// month and hour, to Row fields.
type rowDecoder struct {
	index map[column]int
}

func newRowDecoder(header []string) (rowDecoder, error) {
	dec := rowDecoder{index: map[column]int{}}
	for i, name := range header {
		col, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, dup := dec.index[col]; dup {
			return dec, fmt.Errorf("duplicated %q column", columnNames[col])
		}
		dec.index[col] = i
	}
	for _, col := range requiredColumns {
		if _, ok := dec.index[col]; !ok {
			return dec, fmt.Errorf("missing %q column", columnNames[col])
		}
	}
	return dec, nil
}

func (dec rowDecoder) cell(record []string, col column) string {
	i, ok := dec.index[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (dec rowDecoder) decode(record []string) (r Row, err error) {
	if r.Name = dec.cell(record, colName); r.Name == "" {
		return r, fmt.Errorf("%q cannot be empty", columnNames[colName])
	}
	r.ShadowSize = dec.cell(record, colSize)
	r.Location = dec.cell(record, colLocation)

	if r.Month, err = output.MonthNumber(dec.cell(record, colMonth)); err != nil {
		return r, fmt.Errorf("invalid %q: %w", columnNames[colMonth], err)
	}
	if r.Hour, err = parseHour(dec.cell(record, colHour)); err != nil {
		return r, fmt.Errorf("invalid %q: %w", columnNames[colHour], err)
	}
	if r.IsMonth, err = strconv.ParseBool(dec.cell(record, colIsMonth)); err != nil {
		return r, fmt.Errorf("invalid %q: %w", columnNames[colIsMonth], err)
	}
	if r.IsTime, err = strconv.ParseBool(dec.cell(record, colIsTime)); err != nil {
		return r, fmt.Errorf("invalid %q: %w", columnNames[colIsTime], err)
	}
	if r.Value, err = ParseValue(dec.cell(record, colValue)); err != nil {
		return r, fmt.Errorf("invalid %q: %w", columnNames[colValue], err)
	}
	return r, nil
}

func parseHour(s string) (int, error) {
	h, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if err = validateHour(h); err != nil {
		return 0, err
	}
	return h, nil
}

func validateHour(h int) error {
	if h < 0 || h > 23 {
		return fmt.Errorf("hour %d is out of range, expected a value between 0 and 23", h)
	}
	return nil
}
