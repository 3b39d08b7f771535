package render

import (
	"fmt"
	"sort"
	"strings"

	"meshview/internal/material"
	"meshview/internal/pose"
)

// Backend loads a model file and presents it, either onscreen in a window
// or offscreen to an image file. Load validates and decodes as far as the
// backend can without a display; Render does the rest.
type Backend interface {
	Load(path string) error
	Render() error
}

// Options carries the per-run settings a backend needs. Built once from
// the viewer config; backends treat it as read-only.
type Options struct {
	Material material.Preset
	Pose     pose.Pose
	// OutPath is the PNG destination for offscreen backends.
	OutPath       string
	Width, Height int
	Title         string
	GridVisible   bool
	ShowFPS       bool
	ShowMemAlloc  bool
}

// Factory builds a backend from options.
type Factory func(Options) Backend

// Registry maps backend names to factories. This is a fixed named
// dispatch, not a plugin system: backends are registered in code, never
// discovered.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a backend factory under name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup returns the factory for name. Unknown names are an error listing
// the registered backends.
func (r *Registry) Lookup(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (known: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return f, nil
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultBackend is used when neither flag, environment, nor prefs pick one.
const DefaultBackend = "window"

// Default returns a registry with the built-in backends: "window"
// (interactive raylib viewer) and "image" (software raster to PNG).
func Default() *Registry {
	r := NewRegistry()
	r.Register("window", func(o Options) Backend { return NewWindow(o) })
	r.Register("image", func(o Options) Backend { return NewImage(o) })
	return r
}
