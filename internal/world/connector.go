package world

// connector is a solid cell adjacent to two or more distinct regions: a
// candidate door location. The region set is frozen at scan time; the
// region partition never changes afterwards.
type connector struct {
	pos     point
	regions []RegionID
}

// stepConnectors runs the single connector scan. It executes exactly
// once, after rooms and mazes have fully partitioned the grid, and
// shuffles the result with the run's stream so merge order is the only
// deliberate nondeterminism-by-seed in the pipeline.
func (g *Generator) stepConnectors() bool {
	if g.scanned {
		return false
	}
	g.scanned = true

	for y := 1; y < g.cfg.Height-1; y++ {
		for x := 1; x < g.cfg.Width-1; x++ {
			if g.grid.Cell(x, y) != CellSolid {
				continue
			}
			regions := g.neighborRegions(x, y, nil)
			if len(regions) >= 2 {
				g.connectors = append(g.connectors, connector{
					pos:     point{x, y},
					regions: regions,
				})
			}
		}
	}

	g.rng.Shuffle(len(g.connectors), func(i, j int) {
		g.connectors[i], g.connectors[j] = g.connectors[j], g.connectors[i]
	})
	return true
}

// neighborRegions collects the distinct region ids among the four
// cardinal neighbors of (x, y), appending to buf.
func (g *Generator) neighborRegions(x, y int, buf []RegionID) []RegionID {
	for _, d := range cardinals {
		id := g.grid.Cell(x+d.x, y+d.y).Region()
		if id == 0 {
			continue
		}
		seen := false
		for _, r := range buf {
			if r == id {
				seen = true
				break
			}
		}
		if !seen {
			buf = append(buf, id)
		}
	}
	return buf
}
