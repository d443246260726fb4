package world

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CellAt returns the public classification of the cell at (x, y).
// Out-of-bounds positions read as solid. During generation, region floor
// already reads as floor, which is what an animated viewer wants.
func (g *Generator) CellAt(x, y int) CellKind {
	return g.grid.Cell(x, y).Kind()
}

// Width returns the grid width.
func (g *Generator) Width() int {
	return g.cfg.Width
}

// Height returns the grid height.
func (g *Generator) Height() int {
	return g.cfg.Height
}

// Seed returns the seed this run was constructed with.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// Rooms returns a copy of the placed rooms.
func (g *Generator) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// Doors returns the number of door cells currently on the grid.
func (g *Generator) Doors() int {
	n := 0
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if g.grid.Cell(x, y) == CellDoor {
				n++
			}
		}
	}
	return n
}

// RenderString renders the grid as newline-terminated rows of '#', '.'
// and '+'.
func (g *Generator) RenderString() string {
	var b strings.Builder
	b.Grow((g.cfg.Width + 1) * g.cfg.Height)
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			b.WriteRune(g.CellAt(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint returns an xxhash of the public cell grid. Two runs with
// the same config hash identically; it is a cheap whole-grid equality
// check for tests and telemetry.
func (g *Generator) Fingerprint() uint64 {
	buf := make([]byte, 0, g.cfg.Width*g.cfg.Height)
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			buf = append(buf, byte(g.CellAt(x, y)))
		}
	}
	return xxhash.Sum64(buf)
}
