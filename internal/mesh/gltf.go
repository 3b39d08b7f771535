package mesh

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// loadGLTF decodes a .gltf or .glb file and flattens it into one triangle
// mesh.
func loadGLTF(path string) (*fauxgl.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	return meshFromDocument(doc)
}

// meshFromDocument collects the triangle primitives of every mesh in doc.
// Node transforms are ignored: the viewer treats the file as one rigid
// model and poses it as a whole.
// TODO: bake node transforms into vertices for multi-node scenes.
func meshFromDocument(doc *gltf.Document) (*fauxgl.Mesh, error) {
	var triangles []*fauxgl.Triangle
	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIndex, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], make([][3]float32, 0))
			if err != nil {
				return nil, fmt.Errorf("gltf: read positions: %w", err)
			}
			if prim.Indices == nil {
				for i := 0; i+2 < len(positions); i += 3 {
					triangles = append(triangles, triangleAt(positions, i, i+1, i+2))
				}
				continue
			}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], make([]uint32, 0))
			if err != nil {
				return nil, fmt.Errorf("gltf: read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
				if a >= len(positions) || b >= len(positions) || c >= len(positions) {
					return nil, fmt.Errorf("gltf: index out of range")
				}
				triangles = append(triangles, triangleAt(positions, a, b, c))
			}
		}
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("gltf: no triangle primitives")
	}
	return fauxgl.NewTriangleMesh(triangles), nil
}

func triangleAt(positions [][3]float32, a, b, c int) *fauxgl.Triangle {
	return fauxgl.NewTriangleForPoints(toVector(positions[a]), toVector(positions[b]), toVector(positions[c]))
}

func toVector(p [3]float32) fauxgl.Vector {
	return fauxgl.Vector{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}
