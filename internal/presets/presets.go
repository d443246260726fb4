package presets

import (
	"encoding/json"
	"fmt"

	"github.com/samdwyer/delve/internal/world"
)

// Preset is a named, described generation configuration. Seeds are never
// part of a preset; they come from the caller so every run stays
// reproducible from its logged seed.
type Preset struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Config      world.Config `json:"config"`
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// All returns every embedded preset in file order.
func All() ([]Preset, error) {
	return Load[[]Preset]("presets.json")
}

// Registry provides lookup of presets by name.
type Registry struct {
	byName map[string]Preset
	names  []string
}

// LoadRegistry loads the embedded presets into a Registry.
func LoadRegistry() (*Registry, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}

	r := &Registry{byName: make(map[string]Preset, len(all))}
	for _, p := range all {
		r.byName[p.Name] = p
		r.names = append(r.names, p.Name)
	}
	return r, nil
}

// Get returns the preset with the given name.
func (r *Registry) Get(name string) (Preset, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names returns preset names in file order.
func (r *Registry) Names() []string {
	return r.names
}
