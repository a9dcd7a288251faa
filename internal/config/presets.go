package config

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// presetFS embeds the built-in generation presets.
//
//go:embed presets.yaml
var presetFS embed.FS

// Preset is a named room budget.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	RoomCount   int    `yaml:"room_count"`
}

// PresetsFile represents the structure of presets.yaml.
type PresetsFile struct {
	Presets []Preset `yaml:"presets"`
}

// loadEmbedded reads and unmarshals a YAML file from the embedded filesystem.
func loadEmbedded[T any](filename string) (T, error) {
	var result T

	content, err := presetFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// PresetRegistry holds the built-in presets.
type PresetRegistry struct {
	presets map[string]*Preset
	all     []Preset
}

// NewPresetRegistry creates a registry from preset definitions.
func NewPresetRegistry(presets []Preset) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[string]*Preset),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].Name] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads the embedded presets.yaml.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := loadEmbedded[PresetsFile]("presets.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no presets loaded from presets.yaml")
	}
	return NewPresetRegistry(file.Presets), nil
}

// GetByName returns the preset with the given name, or nil if not found.
func (r *PresetRegistry) GetByName(name string) *Preset {
	return r.presets[name]
}

// Names returns the preset names in sorted order.
func (r *PresetRegistry) Names() []string {
	names := make([]string, 0, len(r.all))
	for _, p := range r.all {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset sets the room budget from a named preset.
func (c *Config) ApplyPreset(registry *PresetRegistry, name string) error {
	p := registry.GetByName(name)
	if p == nil {
		return fmt.Errorf("unknown preset %q (have %v)", name, registry.Names())
	}
	c.Generation.RoomCount = p.RoomCount
	return nil
}
