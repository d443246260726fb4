// Package main is the entry point for the delve dungeon generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delve/internal/presets"
	"github.com/samdwyer/delve/internal/telemetry"
	"github.com/samdwyer/delve/internal/ui"
	"github.com/samdwyer/delve/internal/world"
)

func main() {
	defaults := world.DefaultConfig()
	var (
		preset        = flag.String("preset", "", "named generation preset (see -list-presets)")
		listPresets   = flag.Bool("list-presets", false, "list available presets and exit")
		width         = flag.Int("width", defaults.Width, "grid width (odd, >= 3)")
		height        = flag.Int("height", defaults.Height, "grid height (odd, >= 3)")
		seed          = flag.Int64("seed", 0, "generation seed (0 picks one and logs it)")
		maxRoomSize   = flag.Int("max-room-size", defaults.MaxRoomSize, "largest room dimension (odd, >= 3)")
		roomAttempts  = flag.Int("room-attempts", defaults.RoomAttempts, "room placement attempt budget")
		wiggle        = flag.Int("wiggle", defaults.WigglePercent, "corridor windiness percent (0-100)")
		extraDoors    = flag.Int("extra-door-chance", defaults.ExtraDoorChance, "keep a redundant door with 1-in-N probability")
		roomBuffer    = flag.Int("room-buffer", defaults.RoomBuffer, "minimum wall separation between rooms")
		animate       = flag.Bool("animate", false, "animate generation in the terminal")
		stepsPerFrame = flag.Int("steps-per-frame", 15, "generation steps per animation frame")
	)
	flag.Parse()

	// Load .env for local development; not fatal, env vars may be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generator will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := presets.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	if *listPresets {
		for _, name := range registry.Names() {
			p, _ := registry.Get(name)
			fmt.Printf("%-12s %s\n", p.Name, p.Description)
		}
		return
	}

	cfg := defaults
	if *preset != "" {
		p, ok := registry.Get(*preset)
		if !ok {
			log.Fatalf("Unknown preset %q (available: %s)", *preset, strings.Join(registry.Names(), ", "))
		}
		cfg = p.Config
	}

	// Explicit flags override the preset.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "max-room-size":
			cfg.MaxRoomSize = *maxRoomSize
		case "room-attempts":
			cfg.RoomAttempts = *roomAttempts
		case "wiggle":
			cfg.WigglePercent = *wiggle
		case "extra-door-chance":
			cfg.ExtraDoorChance = *extraDoors
		case "room-buffer":
			cfg.RoomBuffer = *roomBuffer
		}
	})

	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Printf("Generating %dx%d dungeon with seed %d", cfg.Width, cfg.Height, cfg.Seed)

	if *animate {
		if err := runViewer(ctx, cfg, *stepsPerFrame); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
		return
	}

	gen, err := world.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gen.Generate(ctx)
	fmt.Print(gen.RenderString())
	log.Printf("Placed %d rooms, carved %d doors", len(gen.Rooms()), gen.Doors())
}

// runViewer animates generation with tcell. Regeneration picks a fresh
// seed per run; seeds are logged after the screen closes so they remain
// reproducible.
func runViewer(ctx context.Context, cfg world.Config, stepsPerFrame int) error {
	first, err := world.New(cfg)
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	seeds := []int64{cfg.Seed}
	regen := func() (*world.Generator, error) {
		cfg.Seed = time.Now().UnixNano()
		seeds = append(seeds, cfg.Seed)
		return world.New(cfg)
	}

	runErr := ui.NewViewer(screen, stepsPerFrame).Run(ctx, first, regen)
	screen.Close()
	for _, s := range seeds[1:] {
		log.Printf("Regenerated with seed %d", s)
	}
	return runErr
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_DELVE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DELVE_DATASET")
	if dataset == "" {
		dataset = "delve"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
