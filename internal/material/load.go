package material

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads extra preset definitions from *.yaml files under dir and
// adds them to the table (e.g. assets/materials/brass.yaml). Each file holds
// one preset. A missing directory is not an error. Redefining a built-in or
// an already-loaded preset is an error rather than a silent override.
func (t *Table) LoadDir(dir string) (added int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("material: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return added, fmt.Errorf("material: %w", err)
		}
		var p Preset
		if err := yaml.Unmarshal(data, &p); err != nil {
			return added, fmt.Errorf("material: %s: %w", path, err)
		}
		if p.Name == "" {
			// Fall back to the file stem, so "brass.yaml" defines "brass".
			p.Name = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		if err := validate(p); err != nil {
			return added, fmt.Errorf("%s: %w", path, err)
		}
		if _, exists := t.presets[p.Name]; exists {
			return added, fmt.Errorf("material: %s redefines preset %q", path, p.Name)
		}
		t.presets[p.Name] = p
		added++
	}
	return added, nil
}
