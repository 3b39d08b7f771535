package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"meshview/internal/debug"
	"meshview/internal/material"
)

// windowExts are the formats raylib decodes itself.
var windowExts = map[string]bool{
	".obj": true, ".gltf": true, ".glb": true,
	".iqm": true, ".m3d": true, ".vox": true,
}

var windowBackground = rl.NewColor(5, 5, 7, 255)

// Window is the interactive backend: raylib window, orbital camera, ground
// grid, and a lit model tinted by the material preset.
//
// Load only validates the path and extension. The GPU-side model load is
// deferred to Render so it runs after the window and GL context exist.
type Window struct {
	opts Options
	path string
}

// NewWindow returns a window backend with the given options.
func NewWindow(opts Options) *Window {
	return &Window{opts: opts}
}

// Load checks that path exists and is a format raylib can decode.
func (w *Window) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !windowExts[ext] {
		return fmt.Errorf("window: unsupported extension %q (want one of %s); try --backend image",
			ext, strings.Join(sortedExts(windowExts), ", "))
	}
	w.path = path
	return nil
}

// Render opens the window, loads the model, and runs the frame loop until
// the window is closed.
func (w *Window) Render() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.opts.Width), int32(w.opts.Height), w.opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	model := rl.LoadModel(w.path)
	if model.MeshCount == 0 {
		return fmt.Errorf("window: failed to load model: %s", w.path)
	}
	defer rl.UnloadModel(model)

	// Pose: rotation about the origin first, then translation.
	rot := w.opts.Pose.RotationDeg
	trans := w.opts.Pose.Translation
	rotM := rl.MatrixRotateXYZ(rl.NewVector3(deg2rad(rot[0]), deg2rad(rot[1]), deg2rad(rot[2])))
	transM := rl.MatrixTranslate(float32(trans[0]), float32(trans[1]), float32(trans[2]))
	model.Transform = rl.MatrixMultiply(rotM, transM)

	shader := loadLitShader()
	if rl.IsShaderValid(shader) {
		defer rl.UnloadShader(shader)
	}
	applyPresetToModel(&model, shader, w.opts.Material)

	box := rl.GetModelBoundingBox(model)
	center, radius := fitBounds(box)
	camera := rl.Camera3D{
		Position:   rl.NewVector3(center.X+radius*2, center.Y+radius*1.2, center.Z+radius*2),
		Target:     center,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	overlay := debug.New()
	overlay.ShowFPS = w.opts.ShowFPS
	overlay.ShowMemAlloc = w.opts.ShowMemAlloc
	overlay.SetTriangles(triangleCount(model))

	gridSpacing := math32.Max(radius/5, 0.1)

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(windowBackground)
		rl.BeginMode3D(camera)
		if w.opts.GridVisible {
			rl.DrawGrid(20, gridSpacing)
		}
		setLitUniforms(shader, camera.Position, w.opts.Material)
		rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1, presetTint(w.opts.Material))
		rl.EndMode3D()
		overlay.Draw()
		rl.EndDrawing()
	}
	return nil
}

// applyPresetToModel tints every material map of the model with the preset
// base color and swaps in the lit shader.
func applyPresetToModel(model *rl.Model, shader rl.Shader, p material.Preset) {
	tint := presetTint(p)
	mats := model.GetMaterials()
	for i := range mats {
		if albedo := mats[i].GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = tint
		}
		if rl.IsShaderValid(shader) {
			mats[i].Shader = shader
		}
	}
}

func presetTint(p material.Preset) rl.Color {
	return rl.NewColor(
		uint8(p.Color[0]*255),
		uint8(p.Color[1]*255),
		uint8(p.Color[2]*255),
		255,
	)
}

func triangleCount(model rl.Model) int {
	total := 0
	for _, m := range model.GetMeshes() {
		total += int(m.TriangleCount)
	}
	return total
}

// fitBounds returns the center and bounding radius of a model box, used to
// place the orbital camera so the whole model is in frame.
func fitBounds(box rl.BoundingBox) (rl.Vector3, float32) {
	center := rl.NewVector3(
		(box.Min.X+box.Max.X)/2,
		(box.Min.Y+box.Max.Y)/2,
		(box.Min.Z+box.Max.Z)/2,
	)
	dx := box.Max.X - box.Min.X
	dy := box.Max.Y - box.Min.Y
	dz := box.Max.Z - box.Min.Z
	radius := math32.Sqrt(dx*dx+dy*dy+dz*dz) / 2
	if radius <= 0 {
		radius = 1
	}
	return center, radius
}

func deg2rad(deg float64) float32 {
	return float32(deg) * math32.Pi / 180
}

func sortedExts(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
