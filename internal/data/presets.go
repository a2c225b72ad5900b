package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a scenario file that callers can use as a base configuration.
type Preset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
	Mode string `json:"mode"`
}

// presetHeader is the subset of a scenario file needed for listing.
type presetHeader struct {
	Name   string `yaml:"name"`
	Demand struct {
		Mode string `yaml:"mode"`
	} `yaml:"demand"`
}

// ListPresets returns every *.yaml file in dir, sorted by ID. Files that fail
// to parse are returned in skipped rather than failing the whole listing.
func ListPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	presets = []Preset{}
	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := loadPreset(path)
		if err != nil {
			skipped[e.Name()] = err
			continue
		}
		presets = append(presets, p)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, skipped, nil
}

// ResolvePreset maps a preset ID (file name without .yaml) to a path in dir.
// IDs containing path separators are rejected.
func ResolvePreset(dir, id string) (string, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".yaml")
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("invalid preset id %q", id)
	}
	path := filepath.Join(dir, id+".yaml")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("preset %q: %w", id, err)
	}
	return path, nil
}

// GetDefaultPresetDir returns PRESET_DIR, or ./examples/presets.
func GetDefaultPresetDir() string {
	if dir := os.Getenv("PRESET_DIR"); dir != "" {
		return dir
	}
	return "./examples/presets"
}

func loadPreset(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var h presetHeader
	if err := yaml.Unmarshal(raw, &h); err != nil {
		return Preset{}, err
	}

	id := strings.TrimSuffix(filepath.Base(path), ".yaml")
	name := h.Name
	if name == "" {
		name = id
	}
	mode := h.Demand.Mode
	if mode == "" {
		mode = "machine"
	}
	return Preset{ID: id, Name: name, File: path, Mode: mode}, nil
}
