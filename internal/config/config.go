package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"meshview/internal/material"
	"meshview/internal/pose"
)

// PrefsPath is the default path of the prefs file, relative to the process
// working directory.
const PrefsPath = "config/meshview.json"

// View is the configuration of a single viewer run. It is assembled once
// from flags, preferences and environment, and read-only afterwards.
type View struct {
	ModelPath string
	Backend   string
	Material  material.Preset
	Pose      pose.Pose
	// OutPath is where the image backend writes its PNG.
	OutPath       string
	Width, Height int
}

// Prefs holds viewer preferences persisted across runs: viewport size,
// overlay toggles, and default backend/material used when the flags are
// not given.
type Prefs struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	Backend      string `json:"backend,omitempty"`
	Material     string `json:"material,omitempty"`
}

// DefaultPrefs returns the out-of-the-box preferences: a 1280x800 viewport
// with the grid on and overlays off.
func DefaultPrefs() Prefs {
	return Prefs{
		Width:       1280,
		Height:      800,
		GridVisible: true,
	}
}

// LoadPrefs reads preferences from path. A missing or unparsable file
// yields DefaultPrefs and no error; prefs are a convenience, not an input.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs(), nil
	}
	p := DefaultPrefs()
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), nil
	}
	if p.Width <= 0 || p.Height <= 0 {
		d := DefaultPrefs()
		p.Width, p.Height = d.Width, d.Height
	}
	return p, nil
}

// SavePrefs writes preferences to path, creating the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
