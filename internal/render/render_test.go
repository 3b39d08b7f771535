package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshview/internal/material"
	"meshview/internal/pose"
)

func TestDefaultRegistryBackends(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"image", "window"}, r.Names())
	assert.Contains(t, r.Names(), DefaultBackend)

	f, err := r.Lookup("image")
	require.NoError(t, err)
	assert.NotNil(t, f(Options{}))
}

func TestLookupUnknownBackend(t *testing.T) {
	r := Default()
	_, err := r.Lookup("vulkan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vulkan")
	assert.Contains(t, err.Error(), "image, window")
}

func TestFauxglMatrixMatchesPose(t *testing.T) {
	p := pose.Pose{
		Translation: mgl64.Vec3{1, 2, 3},
		RotationDeg: mgl64.Vec3{0, 0, 90},
	}
	m := fauxglMatrix(p.Matrix())

	// (1,0,0) rotated 90 degrees about Z is (0,1,0); plus (1,2,3) is (1,3,3).
	v := m.MulPosition(fauxgl.V(1, 0, 0))
	assert.InDelta(t, 1, v.X, 1e-9)
	assert.InDelta(t, 3, v.Y, 1e-9)
	assert.InDelta(t, 3, v.Z, 1e-9)
}

func TestApplyPresetSpecular(t *testing.T) {
	rough := material.Preset{Name: "r", Color: [3]float64{1, 0, 0}, Metallic: 0, Roughness: 1}
	polished := material.Preset{Name: "p", Color: [3]float64{1, 0, 0}, Metallic: 1, Roughness: 0}

	sRough := fauxgl.NewPhongShader(fauxgl.Identity(), imageLight, imageEye)
	applyPreset(sRough, Options{Material: rough})
	sPolished := fauxgl.NewPhongShader(fauxgl.Identity(), imageLight, imageEye)
	applyPreset(sPolished, Options{Material: polished})

	assert.Less(t, sRough.SpecularPower, sPolished.SpecularPower)
	// A full metal's highlight takes the base color.
	assert.InDelta(t, 1.0, sPolished.SpecularColor.R, 1e-9)
	assert.InDelta(t, 0.0, sPolished.SpecularColor.G, 1e-9)
}

func TestImageBackendWritesPNG(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "tri.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(objPath, []byte(obj), 0644))

	tbl := material.Builtin()
	preset, err := tbl.Lookup("iron")
	require.NoError(t, err)

	out := filepath.Join(dir, "tri.png")
	b := NewImage(Options{
		Material: preset,
		Pose:     pose.Pose{Translation: mgl64.Vec3{0, 0, 0.2}},
		OutPath:  out,
		Width:    64,
		Height:   48,
	})
	require.NoError(t, b.Load(objPath))
	require.NoError(t, b.Render())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestImageBackendRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.step")
	require.NoError(t, os.WriteFile(path, []byte("ISO-10303-21;"), 0644))
	b := NewImage(Options{Width: 64, Height: 64, OutPath: filepath.Join(dir, "x.png")})
	assert.Error(t, b.Load(path))
}
