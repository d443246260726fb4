package world

import (
	"context"
	"errors"
	"testing"
)

// scenarioConfig is a small grid exercised across most tests: 21x11,
// seed 42, rooms up to 5.
func scenarioConfig() Config {
	return Config{
		Width:           21,
		Height:          11,
		Seed:            42,
		MaxRoomSize:     5,
		RoomAttempts:    200,
		WigglePercent:   50,
		ExtraDoorChance: 50,
		RoomBuffer:      1,
	}
}

func generate(t *testing.T, cfg Config) *Generator {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", cfg, err)
	}
	g.Generate(context.Background())
	return g
}

func TestGenerateReproducibility(t *testing.T) {
	cfg := scenarioConfig()
	g1 := generate(t, cfg)
	g2 := generate(t, cfg)

	if len(g1.Rooms()) != len(g2.Rooms()) {
		t.Fatalf("Room count mismatch: %d != %d", len(g1.Rooms()), len(g2.Rooms()))
	}
	for i := range g1.Rooms() {
		r1, r2 := g1.Rooms()[i], g2.Rooms()[i]
		if r1 != r2 {
			t.Errorf("Room %d mismatch: %+v != %+v", i, r1, r2)
		}
	}

	if s1, s2 := g1.RenderString(), g2.RenderString(); s1 != s2 {
		t.Errorf("Grid mismatch:\n%s\nvs\n%s", s1, s2)
	}
	if f1, f2 := g1.Fingerprint(), g2.Fingerprint(); f1 != f2 {
		t.Errorf("Fingerprint mismatch: %016x != %016x", f1, f2)
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	cfg := scenarioConfig()
	g1 := generate(t, cfg)

	cfg.Seed = 43
	g2 := generate(t, cfg)

	if g1.RenderString() == g2.RenderString() {
		t.Error("Grids with different seeds should not be identical")
	}
}

func TestStepMatchesGenerate(t *testing.T) {
	cfg := scenarioConfig()
	whole := generate(t, cfg)

	stepped, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	steps := 0
	for stepped.Step(1) > 0 {
		steps++
	}

	if steps == 0 {
		t.Fatal("Step-driven run performed no operations")
	}
	if whole.Fingerprint() != stepped.Fingerprint() {
		t.Errorf("One-shot and step-driven grids differ:\n%s\nvs\n%s",
			whole.RenderString(), stepped.RenderString())
	}
}

func TestStepReportsCompletion(t *testing.T) {
	g, err := New(scenarioConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !g.IsGenerating() {
		t.Fatal("Fresh generator reports completion")
	}
	for i := 0; i < 1_000_000; i++ {
		if n := g.Step(7); n < 7 {
			break
		}
	}
	if g.IsGenerating() {
		t.Fatal("Generator still generating after completion signal")
	}
	if n := g.Step(5); n != 0 {
		t.Errorf("Step after completion performed %d operations", n)
	}
}

func TestFullConnectivity(t *testing.T) {
	for _, seed := range []int64{1, 42, 99, 1234} {
		cfg := scenarioConfig()
		cfg.Seed = seed
		g := generate(t, cfg)

		open := openCount(g)
		if open == 0 {
			t.Fatalf("seed %d: no open cells", seed)
		}
		if reached := floodCount(g); reached != open {
			t.Errorf("seed %d: flood fill reached %d of %d open cells", seed, reached, open)
		}
	}
}

func TestRoomsAlignedAndSeparated(t *testing.T) {
	cfg := scenarioConfig()
	g := generate(t, cfg)
	rooms := g.Rooms()
	if len(rooms) == 0 {
		t.Fatal("No rooms placed on a 21x11 grid with 200 attempts")
	}

	for i, r := range rooms {
		if r.X%2 != 1 || r.Y%2 != 1 || r.Width%2 != 1 || r.Height%2 != 1 {
			t.Errorf("Room %d off the odd lattice: %+v", i, r)
		}
		if r.X < 1 || r.Y < 1 || r.X+r.Width > cfg.Width-1 || r.Y+r.Height > cfg.Height-1 {
			t.Errorf("Room %d breaches the border: %+v", i, r)
		}
		for j := i + 1; j < len(rooms); j++ {
			if r.TooClose(rooms[j], cfg.RoomBuffer) {
				t.Errorf("Rooms %d and %d too close: %+v, %+v", i, j, r, rooms[j])
			}
		}
	}
}

func TestDoorLowerBound(t *testing.T) {
	g, err := New(scenarioConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for g.phase < phaseMergingRegions {
		g.stepPhase()
	}

	// Count merge steps while driving the phase to its end. Each step
	// carves one door but may join more than one new region when a
	// connector borders three, so the exact spanning-tree bound is the
	// number of steps, not regions-1.
	mergeSteps := 0
	for g.phase == phaseMergingRegions {
		if g.stepPhase() {
			mergeSteps++
		}
	}

	regions := int(g.nextRegion)
	if regions < 2 {
		t.Fatalf("Expected multiple regions, got %d", regions)
	}
	if len(g.merged) != regions {
		t.Fatalf("Merged %d of %d regions", len(g.merged), regions)
	}

	doors := g.Doors()
	if doors < mergeSteps {
		t.Errorf("Doors %d below merge step count %d", doors, mergeSteps)
	}
	joined := regions - 1
	if mergeSteps == joined && doors < joined {
		t.Errorf("Doors %d below spanning-tree bound %d", doors, joined)
	}
}

func TestNoDeadEndsRemain(t *testing.T) {
	g := generate(t, scenarioConfig())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.grid.Cell(x, y).IsOpen() && g.openNeighbors(point{x, y}) == 1 {
				t.Errorf("Dead end left at (%d,%d)", x, y)
			}
		}
	}
}

func TestTrimIdempotent(t *testing.T) {
	g := generate(t, scenarioConfig())
	before := g.RenderString()

	g.collectOpenCells()
	for g.stepTrim() {
	}

	if after := g.RenderString(); after != before {
		t.Errorf("Second trim mutated the grid:\n%s\nvs\n%s", before, after)
	}
}

func TestMinimumGrid(t *testing.T) {
	for _, seed := range []int64{0, 1, 7} {
		cfg := Config{
			Width:           3,
			Height:          3,
			Seed:            seed,
			MaxRoomSize:     3,
			RoomAttempts:    200,
			WigglePercent:   50,
			ExtraDoorChance: 50,
			RoomBuffer:      1,
		}
		g := generate(t, cfg)

		open := openCount(g)
		if open == 0 {
			t.Fatalf("seed %d: 3x3 grid has no open cells", seed)
		}
		if reached := floodCount(g); reached != open {
			t.Errorf("seed %d: 3x3 grid not connected", seed)
		}
	}
}

func TestZeroRoomsTolerated(t *testing.T) {
	cfg := scenarioConfig()
	cfg.RoomAttempts = 0
	g := generate(t, cfg)

	if len(g.Rooms()) != 0 {
		t.Fatalf("Placed %d rooms with a zero budget", len(g.Rooms()))
	}
	open := openCount(g)
	if open == 0 {
		t.Fatal("Room-less grid has no open cells")
	}
	if reached := floodCount(g); reached != open {
		t.Error("Room-less grid not connected")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"even width", func(c *Config) { c.Width = 20 }, ErrDimensions},
		{"tiny height", func(c *Config) { c.Height = 1 }, ErrDimensions},
		{"even room size", func(c *Config) { c.MaxRoomSize = 6 }, ErrRoomSize},
		{"small room size", func(c *Config) { c.MaxRoomSize = 1 }, ErrRoomSize},
		{"negative attempts", func(c *Config) { c.RoomAttempts = -1 }, ErrRoomAttempts},
		{"negative buffer", func(c *Config) { c.RoomBuffer = -1 }, ErrRoomBuffer},
		{"wiggle too high", func(c *Config) { c.WigglePercent = 101 }, ErrWiggle},
		{"zero door chance", func(c *Config) { c.ExtraDoorChance = 0 }, ErrExtraDoorChance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := scenarioConfig()
			tc.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := New(scenarioConfig()); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := generate(t, scenarioConfig())
	for _, p := range []point{{-1, 0}, {0, -1}, {g.Width(), 0}, {0, g.Height()}} {
		if k := g.CellAt(p.x, p.y); k != KindSolid {
			t.Errorf("CellAt(%d,%d) = %v, want KindSolid", p.x, p.y, k)
		}
	}
}

// openCount counts walkable cells.
func openCount(g *Generator) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.CellAt(x, y) != KindSolid {
				n++
			}
		}
	}
	return n
}

// floodCount flood-fills from the first open cell and returns the number
// of open cells reached.
func floodCount(g *Generator) int {
	var start point
	found := false
	for y := 0; y < g.Height() && !found; y++ {
		for x := 0; x < g.Width() && !found; x++ {
			if g.CellAt(x, y) != KindSolid {
				start = point{x, y}
				found = true
			}
		}
	}
	if !found {
		return 0
	}

	visited := map[point]bool{start: true}
	stack := []point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range cardinals {
			n := point{p.x + d.x, p.y + d.y}
			if !visited[n] && g.CellAt(n.x, n.y) != KindSolid {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited)
}
