package dataset

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Table holds every row loaded for one kind, it's never modified after load.
type Table struct {
	Path string
	Rows []Row
	Kind Kind
}

func (t *Table) Filter(fn func(Row) bool) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if fn(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Names returns every distinct critter name in the order of first appearance.
func (t *Table) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, r := range t.Rows {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	return names
}

func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 16)
	for _, r := range t.Rows {
		_, _ = d.WriteString(r.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.ShadowSize)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Location)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Value.String())
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(r.Month), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(r.Hour), 10)
		buf = strconv.AppendBool(buf, r.IsMonth)
		buf = strconv.AppendBool(buf, r.IsTime)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
