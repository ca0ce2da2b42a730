package preset

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sant0-9/lexis/internal/generation"
)

// Index holds the built-in presets followed by the user's, in a stable
// order.
type Index struct {
	presets []generation.Preset
	dir     string
}

// NewIndex loads every *.yaml / *.yml file in dir. A missing directory
// yields just the built-ins. Invalid files are logged and skipped, and a
// user preset never replaces a built-in of the same name.
func NewIndex(dir string, log *slog.Logger) (*Index, error) {
	if log == nil {
		log = slog.Default()
	}

	idx := &Index{dir: dir}
	seen := make(map[string]bool)
	for _, p := range generation.Presets {
		idx.presets = append(idx.presets, p)
		seen[strings.ToLower(p.Name)] = true
	}

	if dir == "" {
		return idx, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return idx, nil
		}
		return idx, err
	}

	var user []generation.Preset
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		p, err := Load(path)
		if err != nil {
			log.Warn("skipping preset", "path", path, "error", err)
			continue
		}

		key := strings.ToLower(p.Name)
		if seen[key] {
			log.Warn("duplicate preset name", "path", path, "name", p.Name)
			continue
		}
		seen[key] = true
		user = append(user, p)
	}

	sort.Slice(user, func(i, j int) bool { return user[i].Name < user[j].Name })
	idx.presets = append(idx.presets, user...)
	return idx, nil
}

// Get returns the preset named name, ignoring case.
func (idx *Index) Get(name string) (generation.Preset, bool) {
	if idx == nil {
		return generation.Preset{}, false
	}
	for _, p := range idx.presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return generation.Preset{}, false
}

// At returns the i-th preset.
func (idx *Index) At(i int) (generation.Preset, bool) {
	if idx == nil || i < 0 || i >= len(idx.presets) {
		return generation.Preset{}, false
	}
	return idx.presets[i], true
}

func (idx *Index) All() []generation.Preset {
	if idx == nil {
		return nil
	}
	return idx.presets
}

func (idx *Index) Dir() string {
	if idx == nil {
		return ""
	}
	return idx.dir
}
