package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/patelnav/fcpsub/internal/fcpxml"
	"gopkg.in/yaml.v3"
)

// StylePresets is a named collection of subtitle styles persisted as YAML.
// Preset names are case-sensitive and identify a preset regardless of its
// content.
type StylePresets struct {
	Presets map[string]fcpxml.SubtitleStyle `yaml:"presets"`
}

// built-in presets used when no preset file exists
func DefaultPresets() *StylePresets {
	return &StylePresets{
		Presets: map[string]fcpxml.SubtitleStyle{
			"default": fcpxml.DefaultStyle(),
			"outline": {
				FontName:         "Helvetica Neue",
				FontSize:         72,
				FontColor:        "#FFFFFF",
				Alignment:        fcpxml.AlignCenter,
				StrokeColor:      "#000000",
				StrokeWidth:      2,
				VerticalPosition: -400,
			},
			"bold-lower": {
				FontName:         "Helvetica Neue",
				FontSize:         64,
				FontColor:        "#FFD60A",
				Bold:             true,
				Alignment:        fcpxml.AlignCenter,
				StrokeColor:      "#000000",
				StrokeWidth:      3,
				VerticalPosition: -450,
			},
			"minimal": {
				FontName:         "Avenir Next",
				FontSize:         56,
				FontColor:        "#EBEBEB",
				Alignment:        fcpxml.AlignCenter,
				StrokeColor:      "#000000",
				StrokeWidth:      0,
				VerticalPosition: -420,
			},
		},
	}
}

// DefaultPath returns the preset file location in the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "fcpsub", "styles.yaml"), nil
}

// Load reads presets from path. A missing file yields the built-in defaults.
func Load(path string) (*StylePresets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPresets(), nil
		}
		return nil, fmt.Errorf("failed to read style presets: %w", err)
	}

	presets := &StylePresets{}
	if err := yaml.Unmarshal(data, presets); err != nil {
		return nil, fmt.Errorf("failed to parse style presets: %w", err)
	}
	if presets.Presets == nil {
		presets.Presets = map[string]fcpxml.SubtitleStyle{}
	}
	return presets, nil
}

// LoadDefault reads presets from the default location.
func LoadDefault() (*StylePresets, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes presets to path, creating parent directories as needed.
func (p *StylePresets) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode style presets: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Get looks up a preset by exact name.
func (p *StylePresets) Get(name string) (fcpxml.SubtitleStyle, bool) {
	style, ok := p.Presets[name]
	return style, ok
}

// Names returns preset names sorted alphabetically.
func (p *StylePresets) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
