package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Preset is a scenario file found in a preset directory.
type Preset struct {
	// ID is the file name without extension ("1_default.yaml" -> "1_default").
	ID       string
	Path     string
	Scenario ScenarioConfig
}

// ListPresets loads every *.yaml / *.yml file in dir, sorted by ID. Files that
// fail to parse are returned in skipped rather than aborting the listing.
func ListPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		sc, err := LoadScenarioFile(path)
		if err != nil {
			skipped[e.Name()] = err
			continue
		}
		presets = append(presets, Preset{
			ID:       strings.TrimSuffix(e.Name(), ext),
			Path:     path,
			Scenario: sc,
		})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, skipped, nil
}

// ResolvePreset maps a preset ID (or file name) to a path inside dir.
func ResolvePreset(dir, id string) string {
	name := filepath.Base(id)
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	return filepath.Join(dir, name)
}
