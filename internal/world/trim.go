package world

// trimState walks a shuffled list of open cells with a cyclic index,
// removing dead ends until a full cycle passes without one.
type trimState struct {
	cells       []point
	idx         int
	sinceChange int
	done        bool
}

// collectOpenCells builds the shuffled open-cell worklist on entry to
// the trim phase.
func (g *Generator) collectOpenCells() {
	g.trim = trimState{}
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if g.grid.Cell(x, y).IsOpen() {
				g.trim.cells = append(g.trim.cells, point{x, y})
			}
		}
	}
	g.rng.Shuffle(len(g.trim.cells), func(i, j int) {
		g.trim.cells[i], g.trim.cells[j] = g.trim.cells[j], g.trim.cells[i]
	})
}

// stepTrim examines one open cell. A cell with exactly one open cardinal
// neighbor is a dead end: it reverts to solid and is swap-removed, and
// the index stays put so the cell swapped into its slot is examined
// next (the removed cell's former neighbor may have become a dead end
// itself). The phase ends after a full cycle with no removal; running
// the trim again on the result performs zero mutations.
func (g *Generator) stepTrim() bool {
	t := &g.trim
	if t.done || len(t.cells) == 0 {
		return false
	}
	if t.sinceChange >= len(t.cells) {
		t.done = true
		return false
	}
	if t.idx >= len(t.cells) {
		t.idx = 0
	}

	p := t.cells[t.idx]
	if g.openNeighbors(p) == 1 {
		g.grid.Set(p.x, p.y, CellSolid)
		t.cells[t.idx] = t.cells[len(t.cells)-1]
		t.cells = t.cells[:len(t.cells)-1]
		t.sinceChange = 0
	} else {
		t.idx++
		t.sinceChange++
	}
	return true
}

func (g *Generator) openNeighbors(p point) int {
	n := 0
	for _, d := range cardinals {
		if g.grid.Cell(p.x+d.x, p.y+d.y).IsOpen() {
			n++
		}
	}
	return n
}
