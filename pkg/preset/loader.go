package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"terrain-rt/internal/config"
	"terrain-rt/internal/terrain"
)

var (
	ErrParentCycle    = errors.New("preset: parent cycle")
	ErrMissingBounds  = errors.New("preset: bounds not set")
	ErrMissingHeights = errors.New("preset: heights not set")
)

// Loader reads presets from <dir>/<name>.json and caches resolved results.
type Loader struct {
	dir       string
	cache     map[string]*Preset
	resolving map[string]bool
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:       dir,
		cache:     make(map[string]*Preset),
		resolving: make(map[string]bool),
	}
}

// Load returns the named preset with every parent field merged in.
func (l *Loader) Load(name string) (*Preset, error) {
	if p, ok := l.cache[name]; ok {
		return p, nil
	}
	if l.resolving[name] {
		return nil, fmt.Errorf("%w at '%s'", ErrParentCycle, name)
	}
	l.resolving[name] = true
	defer delete(l.resolving, name)

	path := filepath.Join(l.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal preset json: %w", err)
	}

	if p.Parent != "" {
		parent, err := l.Load(p.Parent)
		if err != nil {
			return nil, fmt.Errorf("could not load parent preset '%s': %w", p.Parent, err)
		}
		p.inherit(parent)
	}

	l.cache[name] = &p
	return &p, nil
}

func (p *Preset) inherit(parent *Preset) {
	if p.Bounds == nil {
		p.Bounds = parent.Bounds
	}
	if p.Heights == nil {
		p.Heights = parent.Heights
	}
	if p.UnitSize == nil {
		p.UnitSize = parent.UnitSize
	}
	if p.FrequencyDivisor == nil {
		p.FrequencyDivisor = parent.FrequencyDivisor
	}
	if p.Randomize == nil {
		p.Randomize = parent.Randomize
	}
	if p.Border == nil {
		p.Border = parent.Border
	}
	if p.NoiseOctaves == nil {
		p.NoiseOctaves = parent.NoiseOctaves
	}
}

// Params converts the preset into build parameters, filling unset fields
// from the config defaults. The result is validated.
func (p *Preset) Params() (terrain.Params, error) {
	if p.Bounds == nil {
		return terrain.Params{}, ErrMissingBounds
	}
	if p.Heights == nil {
		return terrain.Params{}, ErrMissingHeights
	}

	params := terrain.DefaultParams(p.Bounds.XMin, p.Bounds.XMax, p.Bounds.YMin, p.Bounds.YMax, p.Heights.Min, p.Heights.Max)
	if p.UnitSize != nil {
		params.UnitSize = *p.UnitSize
	}
	if p.FrequencyDivisor != nil {
		params.FrequencyDivisor = *p.FrequencyDivisor
	}
	if p.Randomize != nil {
		params.Randomize = *p.Randomize
	}
	if p.Border != nil {
		params.Border = *p.Border
	}
	if err := params.Validate(); err != nil {
		return terrain.Params{}, err
	}
	return params, nil
}

// Octaves returns the noise table size exponent, defaulting to the config value.
func (p *Preset) Octaves() int {
	if p.NoiseOctaves != nil {
		return *p.NoiseOctaves
	}
	return config.GetNoiseOctaves()
}
