package render

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/nfnt/resize"

	"meshview/internal/mesh"
)

const (
	imageFovy = 40.0
	imageNear = 0.5
	imageFar  = 20.0
	// supersample renders at 2x and downscales for cheap antialiasing.
	supersample = 2
)

var (
	imageEye    = fauxgl.V(2, 1.6, 2.4)
	imageCenter = fauxgl.V(0, 0, 0)
	imageUp     = fauxgl.V(0, 1, 0)
	imageLight  = fauxgl.V(-0.6, 1, 0.4).Normalize()
	// Same near-black background as the interactive viewer.
	imageBackground = fauxgl.Color{R: 0.02, G: 0.02, B: 0.025, A: 1}
)

// Image is the offscreen backend: it rasterizes the model in software and
// writes a PNG, so it runs headless with no display or GPU.
type Image struct {
	opts Options
	mesh *fauxgl.Mesh
}

// NewImage returns an image backend with the given options.
func NewImage(opts Options) *Image {
	return &Image{opts: opts}
}

// Load decodes the model; see the mesh package for the supported formats.
func (r *Image) Load(path string) error {
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}
	r.mesh = m
	return nil
}

// Render normalizes the mesh to the bi-unit cube, applies the pose, shades
// it with the material preset, and writes the PNG to OutPath.
func (r *Image) Render() error {
	if r.mesh == nil {
		return fmt.Errorf("image: no model loaded")
	}
	if r.opts.OutPath == "" {
		return fmt.Errorf("image: no output path")
	}
	m := r.mesh
	m.BiUnitCube()
	m.SmoothNormalsThreshold(fauxgl.Radians(30))
	if !r.opts.Pose.IsIdentity() {
		m.Transform(fauxglMatrix(r.opts.Pose.Matrix()))
	}

	width, height := r.opts.Width, r.opts.Height
	dc := fauxgl.NewContext(width*supersample, height*supersample)
	dc.ClearColorBufferWith(imageBackground)

	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(imageEye, imageCenter, imageUp).
		Perspective(imageFovy, aspect, imageNear, imageFar)
	shader := fauxgl.NewPhongShader(matrix, imageLight, imageEye)
	applyPreset(shader, r.opts)
	dc.Shader = shader
	dc.DrawMesh(m)

	im := dc.Image()
	if supersample > 1 {
		im = resize.Resize(uint(width), uint(height), im, resize.Bilinear)
	}
	if err := fauxgl.SavePNG(r.opts.OutPath, im); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	return nil
}

// applyPreset maps the preset's metallic/roughness factors onto the Phong
// shader: metals tint the highlight with the base color, roughness widens
// it by lowering the specular exponent.
func applyPreset(shader *fauxgl.PhongShader, opts Options) {
	p := opts.Material
	base := fauxgl.Color{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: 1}
	shader.ObjectColor = base
	shader.SpecularColor = lerpColor(fauxgl.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, base, p.Metallic)
	shader.SpecularPower = 4 + (1-p.Roughness)*(1-p.Roughness)*96
}

func lerpColor(a, b fauxgl.Color, t float64) fauxgl.Color {
	return fauxgl.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: 1,
	}
}

// fauxglMatrix converts an mgl64 matrix (column-major storage) to a fauxgl
// matrix (row-indexed fields).
func fauxglMatrix(m mgl64.Mat4) fauxgl.Matrix {
	at := func(row, col int) float64 { return m[col*4+row] }
	return fauxgl.Matrix{
		X00: at(0, 0), X01: at(0, 1), X02: at(0, 2), X03: at(0, 3),
		X10: at(1, 0), X11: at(1, 1), X12: at(1, 2), X13: at(1, 3),
		X20: at(2, 0), X21: at(2, 1), X22: at(2, 2), X23: at(2, 3),
		X30: at(3, 0), X31: at(3, 1), X32: at(3, 2), X33: at(3, 3),
	}
}
