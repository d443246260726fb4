package world

// Grid is a fixed-size rectangular array of cells, all solid at
// construction. It is the sole mutable store of one generation run and
// never resizes.
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewGrid creates a width x height grid filled with solid rock.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell returns the cell at the given position. Out-of-bounds reads
// return CellSolid, so callers can probe neighbors without guarding.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellSolid
	}
	return g.cells[y][x]
}

// Set stores a cell value at the given position. Out-of-bounds writes
// are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}
