package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh overlay text every N frames to limit
	// per-frame allocations.
	updateInterval = 30
)

// Debug draws viewer overlays in the top-right corner: FPS, heap
// allocation, and the loaded model's triangle count. All overlays are off
// by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	triangles    int
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{}
}

// SetTriangles sets the triangle count shown next to the FPS counter.
// Zero hides the line.
func (d *Debug) SetTriangles(n int) {
	d.triangles = n
}

// Draw renders the enabled overlays. Call between BeginDrawing and
// EndDrawing, after the 3D pass.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.triangles > 0 && (d.ShowFPS || d.ShowMemAlloc) {
		drawRight(fmt.Sprintf("Tris: %d", d.triangles), screenW, y, rl.Gray)
	}
}

func drawRight(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
