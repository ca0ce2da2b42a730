// Package preset loads user-defined style presets from YAML files and
// merges them with the built-in ones.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/lexis/internal/generation"
)

// file is the on-disk shape:
//
//	name: Carver
//	sentence_complexity: low
//	lexical_density: high-noun-verb
//	punctuation_rhythm: low-comma
//	figurative_frequency: low
//	tone: Spare, working-class, quiet
type file struct {
	Name                   string `yaml:"name"`
	generation.StyleConfig `yaml:",inline"`
}

// Load reads one preset file. The file name without extension is used
// when the file has no name.
func Load(path string) (generation.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generation.Preset{}, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return generation.Preset{}, fmt.Errorf("parse %s: %w", path, err)
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := f.StyleConfig.Validate(); err != nil {
		return generation.Preset{}, fmt.Errorf("%s: %w", path, err)
	}

	return generation.Preset{Name: name, Config: f.StyleConfig}, nil
}

// Dir returns ~/.config/lexis/presets.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lexis", "presets"), nil
}
