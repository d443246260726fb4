package world

import "fmt"

// doorSpacing is the Manhattan-distance exclusion radius around a carved
// door; connectors closer than this are discarded to avoid clustered
// doors.
const doorSpacing = 2

// seedMerge starts the merged component from the first placed room, or
// from the first maze run when no rooms were placed. With zero regions
// (impossible on a valid grid, every grid has at least one lattice cell)
// the merge trivially completes.
func (g *Generator) seedMerge() {
	var seed RegionID
	switch {
	case len(g.rooms) > 0:
		seed = g.rooms[0].Region
	case g.nextRegion > 0:
		seed = 1
	default:
		return
	}

	g.merged[seed] = true
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if g.grid.Cell(x, y).Region() == seed {
				g.grid.Set(x, y, CellMerged)
			}
		}
	}
}

// stepMerge joins one region to the merged component: find the first
// connector in the shuffled list touching the merged set, carve it as a
// door, flood the newly reachable region cells into the merged state,
// then prune the list. The connector list only shrinks and the merged
// set only grows, so termination is structural; this is a randomized
// Kruskal walk over the region adjacency graph.
func (g *Generator) stepMerge() bool {
	if len(g.connectors) == 0 {
		g.verifyAllMerged()
		return false
	}

	idx := -1
	for i, c := range g.connectors {
		if g.touchesMerged(c) {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Every remaining connector joins only unmerged regions. The
		// scan guarantees the region graph is connected, so this can
		// only be a defect.
		g.verifyAllMerged()
		g.connectors = nil
		return false
	}

	used := g.connectors[idx]
	g.connectors = append(g.connectors[:idx], g.connectors[idx+1:]...)

	g.carveDoor(used.pos)
	g.floodMerge(used.pos)

	kept := g.connectors[:0]
	for _, c := range g.connectors {
		if manhattan(c.pos, used.pos) < doorSpacing {
			continue
		}
		if g.allMerged(c.regions) {
			// Redundant connector. Occasionally keep it as a door
			// anyway, forming a loop.
			if g.rng.OneIn(g.cfg.ExtraDoorChance) {
				g.carveDoor(c.pos)
			}
			continue
		}
		kept = append(kept, c)
	}
	g.connectors = kept
	return true
}

func (g *Generator) carveDoor(p point) {
	g.grid.Set(p.x, p.y, CellDoor)
}

// floodMerge converts every region cell 4-reachable from the door to
// merged, bringing the newly joined regions' cells over in one pass.
func (g *Generator) floodMerge(from point) {
	stack := []point{from}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range cardinals {
			n := point{p.x + d.x, p.y + d.y}
			c := g.grid.Cell(n.x, n.y)
			if c > 0 {
				g.merged[c.Region()] = true
				g.grid.Set(n.x, n.y, CellMerged)
				stack = append(stack, n)
			}
		}
	}
}

func (g *Generator) touchesMerged(c connector) bool {
	for _, r := range c.regions {
		if g.merged[r] {
			return true
		}
	}
	return false
}

func (g *Generator) allMerged(regions []RegionID) bool {
	for _, r := range regions {
		if !g.merged[r] {
			return false
		}
	}
	return true
}

// verifyAllMerged panics if any region never joined the merged
// component. ConnectorFinder tests every solid gap between regions, so a
// stranded region means the frozen region partition was violated.
func (g *Generator) verifyAllMerged() {
	for id := RegionID(1); id <= g.nextRegion; id++ {
		if !g.merged[id] {
			panic(fmt.Sprintf("world: region %d unreachable after merge", id))
		}
	}
}

func manhattan(a, b point) int {
	return abs(a.x-b.x) + abs(a.y-b.y)
}
