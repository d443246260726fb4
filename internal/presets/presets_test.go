package presets

import (
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(registry.Names()) == 0 {
		t.Fatal("No presets embedded")
	}

	for _, name := range []string{"standard", "small", "labyrinth", "halls"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected preset %q not found", name)
		}
	}

	if _, ok := registry.Get("bogus"); ok {
		t.Error("Lookup of unknown preset succeeded")
	}
}

func TestPresetConfigsValid(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	for _, p := range all {
		cfg := p.Config
		cfg.Seed = 1
		if _, err := world.New(cfg); err != nil {
			t.Errorf("Preset %q has invalid config: %v", p.Name, err)
		}
	}
}
