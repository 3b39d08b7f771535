package mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"
)

// Load reads the model at path into a triangle mesh. Decoding is delegated
// entirely to libraries: OBJ, STL and PLY go through fauxgl, glTF and GLB
// through qmuntal/gltf. The extension decides the decoder.
func Load(path string) (*fauxgl.Mesh, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	var (
		m   *fauxgl.Mesh
		err error
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		m, err = fauxgl.LoadOBJ(path)
	case ".stl":
		m, err = fauxgl.LoadSTL(path)
	case ".ply":
		m, err = fauxgl.LoadPLY(path)
	case ".gltf", ".glb":
		m, err = loadGLTF(path)
	default:
		return nil, fmt.Errorf("mesh: unsupported extension %q (want one of %s)",
			ext, strings.Join(Extensions(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}
	if len(m.Triangles) == 0 {
		return nil, fmt.Errorf("mesh: %s: no triangles", path)
	}
	return m, nil
}

// Extensions lists the file extensions Load accepts.
func Extensions() []string {
	return []string{".obj", ".stl", ".ply", ".gltf", ".glb"}
}

// Info summarizes a loaded mesh for listings.
type Info struct {
	Triangles int
	Min, Max  [3]float64
}

// Describe returns triangle count and axis-aligned bounds of m.
func Describe(m *fauxgl.Mesh) Info {
	box := m.BoundingBox()
	return Info{
		Triangles: len(m.Triangles),
		Min:       [3]float64{box.Min.X, box.Min.Y, box.Min.Z},
		Max:       [3]float64{box.Max.X, box.Max.Y, box.Max.Z},
	}
}
