package world

import "slices"

// mazeState is the phase-local state of the maze grower: an explicit
// backtracking stack (never language-level recursion, so memory stays
// bounded and deterministic), the direction of the previous carve for
// the straightness bias, and the lattice scan cursor. The current
// region id lives on the grid itself, under the top of the stack.
type mazeState struct {
	stack        []point
	lastDir      int // index into cardinals, -1 after a seed or backtrack
	scanX, scanY int
}

// stepMaze performs one maze operation: seeding a new run on an
// untouched lattice cell, carving one corridor segment, or backtracking
// one cell. It reports false once no unvisited lattice cell remains.
func (g *Generator) stepMaze() bool {
	m := &g.maze

	if len(m.stack) == 0 {
		seed, ok := g.nextMazeSeed()
		if !ok {
			return false
		}
		g.grid.Set(seed.x, seed.y, Cell(g.newRegion()))
		m.stack = append(m.stack, seed)
		m.lastDir = -1
		return true
	}

	cur := m.stack[len(m.stack)-1]

	var open []int
	for i, d := range cardinals {
		tx, ty := cur.x+2*d.x, cur.y+2*d.y
		if !g.grid.InBounds(tx, ty) {
			continue
		}
		if g.grid.Cell(tx, ty) == CellSolid && g.grid.Cell(cur.x+d.x, cur.y+d.y) == CellSolid {
			open = append(open, i)
		}
	}

	if len(open) == 0 {
		m.stack = m.stack[:len(m.stack)-1]
		m.lastDir = -1
		return true
	}

	// Straightness bias: keep going the same way unless the wiggle roll
	// says otherwise.
	var dir int
	if m.lastDir >= 0 && slices.Contains(open, m.lastDir) && !g.rng.Chance(g.cfg.WigglePercent) {
		dir = m.lastDir
	} else {
		dir = open[g.rng.IntRange(0, len(open)-1)]
	}

	d := cardinals[dir]
	region := g.grid.Cell(cur.x, cur.y)
	g.grid.Set(cur.x+d.x, cur.y+d.y, region)
	g.grid.Set(cur.x+2*d.x, cur.y+2*d.y, region)
	m.stack = append(m.stack, point{cur.x + 2*d.x, cur.y + 2*d.y})
	m.lastDir = dir
	return true
}

// nextMazeSeed scans the odd-coordinate lattice left-to-right,
// top-to-bottom from the stored cursor for the next solid cell.
func (g *Generator) nextMazeSeed() (point, bool) {
	m := &g.maze
	x, y := m.scanX, m.scanY
	for ; y < g.cfg.Height; y += 2 {
		for ; x < g.cfg.Width; x += 2 {
			if g.grid.Cell(x, y) == CellSolid {
				m.scanX, m.scanY = x, y
				return point{x, y}, true
			}
		}
		x = 1
	}
	m.scanX, m.scanY = 1, g.cfg.Height
	return point{}, false
}
