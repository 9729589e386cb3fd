package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"terrain-rt/internal/config"
	"terrain-rt/internal/terrain"
)

func writePresets(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadSimplePreset(t *testing.T) {
	dir := writePresets(t, map[string]string{
		"scene": `{
			"bounds": {"xMin": -10, "xMax": 10, "yMin": -10, "yMax": 10},
			"heights": {"min": 0, "max": 10},
			"unitSize": 1,
			"frequencyDivisor": 5,
			"randomize": true,
			"border": true
		}`,
	})
	p, err := NewLoader(dir).Load("scene")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	params, err := p.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	want := terrain.Params{
		XMin: -10, XMax: 10, YMin: -10, YMax: 10, ZMin: 0, ZMax: 10,
		UnitSize: 1, Randomize: true, Border: true, FrequencyDivisor: 5,
	}
	if params != want {
		t.Errorf("Params = %+v, want %+v", params, want)
	}
}

func TestLoadChildPreset(t *testing.T) {
	dir := writePresets(t, map[string]string{
		"base":  `{"bounds": {"xMin": 0, "xMax": 4, "yMin": 0, "yMax": 4}, "heights": {"min": 1, "max": 2}, "unitSize": 0.5, "noiseOctaves": 6}`,
		"child": `{"parent": "base", "unitSize": 0.25, "border": false}`,
	})
	p, err := NewLoader(dir).Load("child")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	params, err := p.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if params.XMax != 4 || params.ZMin != 1 || params.ZMax != 2 {
		t.Errorf("inherited bounds/heights wrong: %+v", params)
	}
	if params.UnitSize != 0.25 {
		t.Errorf("UnitSize = %v, want child override 0.25", params.UnitSize)
	}
	if params.Border {
		t.Error("Border should be overridden to false")
	}
	if p.Octaves() != 6 {
		t.Errorf("Octaves = %d, want inherited 6", p.Octaves())
	}
}

func TestPresetDefaultsFromConfig(t *testing.T) {
	defer config.SetFrequencyDivisor(config.GetFrequencyDivisor())
	config.SetFrequencyDivisor(7)

	dir := writePresets(t, map[string]string{
		"bare": `{"bounds": {"xMin": 0, "xMax": 2, "yMin": 0, "yMax": 2}, "heights": {"min": 0, "max": 1}}`,
	})
	p, err := NewLoader(dir).Load("bare")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	params, err := p.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if params.FrequencyDivisor != 7 {
		t.Errorf("FrequencyDivisor = %v, want config default 7", params.FrequencyDivisor)
	}
	if p.Octaves() != config.GetNoiseOctaves() {
		t.Errorf("Octaves = %d, want config default", p.Octaves())
	}
}

func TestPresetErrors(t *testing.T) {
	dir := writePresets(t, map[string]string{
		"a":         `{"parent": "b"}`,
		"b":         `{"parent": "a"}`,
		"nobounds":  `{"unitSize": 1}`,
		"noheights": `{"bounds": {"xMin": 0, "xMax": 1, "yMin": 0, "yMax": 1}}`,
		"badunit":   `{"bounds": {"xMin": 0, "xMax": 1, "yMin": 0, "yMax": 1}, "heights": {"min": 0, "max": 1}, "unitSize": 0}`,
		"malformed": `{"bounds": `,
	})
	l := NewLoader(dir)

	if _, err := l.Load("a"); !errors.Is(err, ErrParentCycle) {
		t.Errorf("cycle: err = %v, want ErrParentCycle", err)
	}
	if _, err := l.Load("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: err = %v, want not-exist", err)
	}
	if _, err := l.Load("malformed"); err == nil {
		t.Error("malformed: expected error")
	}

	p, err := l.Load("nobounds")
	if err != nil {
		t.Fatalf("Load nobounds: %v", err)
	}
	if _, err := p.Params(); !errors.Is(err, ErrMissingBounds) {
		t.Errorf("nobounds: err = %v, want ErrMissingBounds", err)
	}

	p, err = l.Load("noheights")
	if err != nil {
		t.Fatalf("Load noheights: %v", err)
	}
	if _, err := p.Params(); !errors.Is(err, ErrMissingHeights) {
		t.Errorf("noheights: err = %v, want ErrMissingHeights", err)
	}

	p, err = l.Load("badunit")
	if err != nil {
		t.Fatalf("Load badunit: %v", err)
	}
	if _, err := p.Params(); !errors.Is(err, terrain.ErrInvalidUnitSize) {
		t.Errorf("badunit: err = %v, want ErrInvalidUnitSize", err)
	}
}

func TestCache(t *testing.T) {
	dir := writePresets(t, map[string]string{
		"scene": `{"bounds": {"xMin": 0, "xMax": 1, "yMin": 0, "yMax": 1}}`,
	})
	l := NewLoader(dir)
	p1, err := l.Load("scene")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "scene.json")); err != nil {
		t.Fatal(err)
	}
	p2, err := l.Load("scene")
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if p1 != p2 {
		t.Error("expected cached preset pointer")
	}
}
