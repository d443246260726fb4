package world

import "fmt"

// stepRooms performs one room placement attempt. The budget is a soft
// target: running out with few or no rooms placed is a legal outcome and
// every later phase tolerates it.
func (g *Generator) stepRooms() bool {
	if g.attemptsLeft <= 0 {
		return false
	}
	g.attemptsLeft--
	g.tryPlaceRoom()
	return true
}

// tryPlaceRoom draws an odd-sized, lattice-aligned candidate rectangle
// and carves it if it keeps the configured buffer from every existing
// room.
func (g *Generator) tryPlaceRoom() {
	// Largest odd size that fits inside the border walls.
	maxW := oddAtMost(min(g.cfg.MaxRoomSize, g.cfg.Width-2))
	maxH := oddAtMost(min(g.cfg.MaxRoomSize, g.cfg.Height-2))
	if maxW < 3 || maxH < 3 {
		return
	}

	w := 3 + 2*g.rng.IntRange(0, (maxW-3)/2)
	h := 3 + 2*g.rng.IntRange(0, (maxH-3)/2)
	x := 1 + 2*g.rng.IntRange(0, (g.cfg.Width-w-2)/2)
	y := 1 + 2*g.rng.IntRange(0, (g.cfg.Height-h-2)/2)

	candidate := Room{X: x, Y: y, Width: w, Height: h}
	for _, placed := range g.rooms {
		if candidate.TooClose(placed, g.cfg.RoomBuffer) {
			return
		}
	}

	candidate.Region = g.newRegion()
	g.carveRoom(candidate)
	g.rooms = append(g.rooms, candidate)
}

// carveRoom converts the room's rectangle to its region id. Hitting a
// non-solid cell here means the overlap check is broken, which is a
// defect rather than a runtime condition.
func (g *Generator) carveRoom(r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if g.grid.Cell(x, y) != CellSolid {
				panic(fmt.Sprintf("world: room %+v overlaps existing floor at (%d,%d)", r, x, y))
			}
			g.grid.Set(x, y, Cell(r.Region))
		}
	}
}

// oddAtMost rounds v down to the nearest odd number.
func oddAtMost(v int) int {
	if v%2 == 0 {
		return v - 1
	}
	return v
}
