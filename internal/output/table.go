package output

import (
	"io"
	"strings"
	"unicode/utf8"
)

const columnGap = "  "

type Table struct {
	Header []string
	Rows   [][]string
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}
	return widths
}

// Render writes the table with columns padded to the widest cell, the header
// is printed in bold unless noColor is set.
func (t Table) Render(w io.Writer, noColor bool) error {
	widths := t.widths()

	var buf strings.Builder
	writeLine := func(cells []string, color Color) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				buf.WriteString(columnGap)
			}
			if i < len(cells)-1 {
				cell += strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			}
			buf.WriteString(MaybeColor(color, noColor, cell))
		}
		buf.WriteRune('\n')
	}

	writeLine(t.Header, Bold)
	for _, row := range t.Rows {
		writeLine(row, None)
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
