package critter

import (
	"github.com/cloudflare/critters/internal/clock"
	"github.com/cloudflare/critters/internal/dataset"
)

// Finder answers questions about a single kind of critter, it never modifies
// the table it was given.
type Finder struct {
	table *dataset.Table
	clock clock.Clock
}

func NewFinder(table *dataset.Table, clk clock.Clock) Finder {
	return Finder{table: table, clock: clk}
}

func (f Finder) Kind() dataset.Kind {
	return f.table.Kind
}
