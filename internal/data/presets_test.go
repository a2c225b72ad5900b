package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_paper.yaml", "name: Paper line\ndemand:\n  mode: waste\n")
	writeFile(t, dir, "a_machines.yaml", "demand:\n  machine_count: 3\n")
	writeFile(t, dir, "broken.yaml", "demand: [")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	presets, skipped, err := ListPresets(dir)
	require.NoError(t, err)

	require.Len(t, presets, 2)
	assert.Equal(t, Preset{ID: "a_machines", Name: "a_machines", File: filepath.Join(dir, "a_machines.yaml"), Mode: "machine"}, presets[0])
	assert.Equal(t, "Paper line", presets[1].Name)
	assert.Equal(t, "waste", presets[1].Mode)
	assert.Contains(t, skipped, "broken.yaml")
}

func TestListPresets_MissingDir(t *testing.T) {
	_, _, err := ListPresets(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestResolvePreset(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "plastics.yaml", "name: x\n")

	got, err := ResolvePreset(dir, "plastics")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ResolvePreset(dir, "plastics.yaml")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, id := range []string{"", "..", "../etc/passwd", `a\b`, "missing"} {
		_, err := ResolvePreset(dir, id)
		assert.Error(t, err, id)
	}
}

func TestGetDefaultPresetDir(t *testing.T) {
	t.Setenv("PRESET_DIR", "")
	assert.Equal(t, "./examples/presets", GetDefaultPresetDir())

	t.Setenv("PRESET_DIR", "/srv/presets")
	assert.Equal(t, "/srv/presets", GetDefaultPresetDir())
}
