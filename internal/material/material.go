package material

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named bundle of surface appearance values: base color as an
// RGB triple of 0–1 floats, plus metallic and roughness factors (0–1).
// Presets only describe appearance; how they map onto a backend's shading
// model is up to the backend.
type Preset struct {
	Name      string     `yaml:"name"`
	Color     [3]float64 `yaml:"color"`
	Metallic  float64    `yaml:"metallic"`
	Roughness float64    `yaml:"roughness"`
}

// DefaultName is the preset used when no --material is given: a neutral
// non-metallic gray.
const DefaultName = "default"

// builtins is the fixed preset table. Metal values follow common PBR
// reference charts.
var builtins = []Preset{
	{Name: "default", Color: [3]float64{0.70, 0.70, 0.72}, Metallic: 0, Roughness: 0.5},
	{Name: "iron", Color: [3]float64{0.56, 0.57, 0.58}, Metallic: 1, Roughness: 0.5},
	{Name: "aluminum", Color: [3]float64{0.91, 0.92, 0.93}, Metallic: 1, Roughness: 0.2},
	{Name: "nickel", Color: [3]float64{0.66, 0.61, 0.53}, Metallic: 1, Roughness: 0.3},
	{Name: "steel", Color: [3]float64{0.62, 0.62, 0.64}, Metallic: 1, Roughness: 0.4},
	{Name: "copper", Color: [3]float64{0.95, 0.64, 0.54}, Metallic: 1, Roughness: 0.35},
	{Name: "gold", Color: [3]float64{1.00, 0.77, 0.34}, Metallic: 1, Roughness: 0.3},
	{Name: "plastic", Color: [3]float64{0.90, 0.90, 0.90}, Metallic: 0, Roughness: 0.6},
}

// Table maps preset names to presets. A table starts from the built-ins;
// extension files can add presets (see LoadDir) but never replace built-ins.
type Table struct {
	presets map[string]Preset
}

// Builtin returns a table containing only the built-in presets.
func Builtin() *Table {
	t := &Table{presets: make(map[string]Preset, len(builtins))}
	for _, p := range builtins {
		t.presets[p.Name] = p
	}
	return t
}

// Lookup returns the preset for name. An empty name means DefaultName.
// An unknown name is an error; there is no silent fallback.
func (t *Table) Lookup(name string) (Preset, error) {
	if name == "" {
		name = DefaultName
	}
	p, ok := t.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("material: unknown preset %q (known: %s)", name, strings.Join(t.Names(), ", "))
	}
	return p, nil
}

// Names returns all preset names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the preset for name in iteration-friendly form for listings.
func (t *Table) Get(name string) (Preset, bool) {
	p, ok := t.presets[name]
	return p, ok
}

// validate checks that every factor of p is inside [0,1] and the name is set.
func validate(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("material: preset without a name")
	}
	for _, c := range p.Color {
		if c < 0 || c > 1 {
			return fmt.Errorf("material: preset %q: color component %v out of [0,1]", p.Name, c)
		}
	}
	if p.Metallic < 0 || p.Metallic > 1 {
		return fmt.Errorf("material: preset %q: metallic %v out of [0,1]", p.Name, p.Metallic)
	}
	if p.Roughness < 0 || p.Roughness > 1 {
		return fmt.Errorf("material: preset %q: roughness %v out of [0,1]", p.Name, p.Roughness)
	}
	return nil
}
