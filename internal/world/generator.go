package world

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/rng"
	"github.com/samdwyer/delve/internal/telemetry"
)

// phase enumerates the generation state machine. Phases run in strict
// order; no phase is ever re-entered.
type phase int

const (
	phasePlacingRooms phase = iota
	phaseGrowingMazes
	phaseFindingConnectors
	phaseMergingRegions
	phaseTrimmingDeadEnds
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phasePlacingRooms:
		return "placing-rooms"
	case phaseGrowingMazes:
		return "growing-mazes"
	case phaseFindingConnectors:
		return "finding-connectors"
	case phaseMergingRegions:
		return "merging-regions"
	case phaseTrimmingDeadEnds:
		return "trimming-dead-ends"
	default:
		return "done"
	}
}

// point is a grid coordinate.
type point struct {
	x, y int
}

// cardinals are the four neighbor offsets in scan order: N, E, S, W.
var cardinals = [4]point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Generator owns one generation run: the grid, the random stream, and
// all phase-local state. A Generator is single-use; regeneration means
// constructing a fresh one. It is not safe for concurrent calls, but
// independent Generators may run in parallel.
type Generator struct {
	cfg   Config
	grid  *Grid
	rng   *rng.Stream
	rooms []Room

	phase      phase
	nextRegion RegionID

	// Room placement.
	attemptsLeft int

	// Maze growth.
	maze mazeState

	// Connector scan and merge.
	scanned    bool
	connectors []connector
	merged     map[RegionID]bool

	// Dead-end trim.
	trim trimState
}

// New creates a Generator for the given config. The grid starts fully
// solid; nothing is carved until Step or Generate is called.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:          cfg,
		grid:         NewGrid(cfg.Width, cfg.Height),
		rng:          rng.New(cfg.Seed),
		attemptsLeft: cfg.RoomAttempts,
		merged:       make(map[RegionID]bool),
	}
	g.maze.scanX, g.maze.scanY = 1, 1
	g.maze.lastDir = -1
	return g, nil
}

// Step advances generation by up to n primitive operations (one room
// attempt, one maze carve or backtrack, the connector scan, one region
// merge, or one dead-end examination) and returns the count performed.
// A return below n signals completion.
func (g *Generator) Step(n int) int {
	done := 0
	for done < n && g.phase != phaseDone {
		if g.stepPhase() {
			done++
		}
	}
	return done
}

// stepPhase performs one operation in the current phase, advancing to
// the next phase when the current one reports no more work.
func (g *Generator) stepPhase() bool {
	var progressed bool
	switch g.phase {
	case phasePlacingRooms:
		progressed = g.stepRooms()
	case phaseGrowingMazes:
		progressed = g.stepMaze()
	case phaseFindingConnectors:
		progressed = g.stepConnectors()
	case phaseMergingRegions:
		progressed = g.stepMerge()
	case phaseTrimmingDeadEnds:
		progressed = g.stepTrim()
	}
	if !progressed && g.phase != phaseDone {
		g.enterNextPhase()
	}
	return progressed
}

func (g *Generator) enterNextPhase() {
	g.phase++
	switch g.phase {
	case phaseMergingRegions:
		g.seedMerge()
	case phaseTrimmingDeadEnds:
		g.collectOpenCells()
	}
}

// IsGenerating reports whether more Step calls will make progress.
func (g *Generator) IsGenerating() bool {
	return g.phase != phaseDone
}

// Generate runs the state machine to completion and records a trace
// span describing the finished level. Step-driven callers animating the
// run skip this path and remain untraced.
func (g *Generator) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	start := time.Now()
	for g.Step(1 << 12) > 0 {
	}

	span.SetAttributes(
		attribute.String("generation.run_id", uuid.NewString()),
		attribute.Int("dungeon.width", g.cfg.Width),
		attribute.Int("dungeon.height", g.cfg.Height),
		attribute.Int64("dungeon.seed", g.cfg.Seed),
		attribute.Int("dungeon.room_count", len(g.rooms)),
		attribute.Int("dungeon.region_count", int(g.nextRegion)),
		attribute.Int("dungeon.door_count", g.Doors()),
		attribute.String("dungeon.fingerprint", fmt.Sprintf("%016x", g.Fingerprint())),
		attribute.Int64("dungeon.generation_ms", time.Since(start).Milliseconds()),
	)
}

// newRegion allocates a fresh region id.
func (g *Generator) newRegion() RegionID {
	g.nextRegion++
	return g.nextRegion
}
