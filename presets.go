package quiltanim

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPreset is used when neither a preset nor a grid is configured.
const DefaultPreset = "Looking Glass Portrait"

// A Preset is a named grid of a display model.
type Preset struct {
	Name string `yaml:"name"`
	Grid `yaml:",inline"`
}

//go:embed "presets.yaml"
var presetsYaml []byte

var presets []Preset

func init() {
	var err error
	presets, err = parsePresets(presetsYaml)
	if err != nil {
		panic(fmt.Errorf("parsePresets failed: %w", err))
	}
	if len(presets) == 0 {
		panic(fmt.Errorf("no presets found in %q", "presets.yaml"))
	}
}

// parsePresets parses inputYaml and validates the grid of each preset.
func parsePresets(inputYaml []byte) (out []Preset, err error) {
	if err = yaml.Unmarshal(inputYaml, &out); err != nil {
		return nil, err
	}
	for _, p := range out {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without name")
		}
		if err = p.Grid.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return out, nil
}

// Presets returns all known presets.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset returns the preset named name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}
