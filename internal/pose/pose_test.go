package pose

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func vecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps)
	}
}

func TestZeroPoseIsIdentity(t *testing.T) {
	var p Pose
	assert.True(t, p.IsIdentity())
	m := p.Matrix()
	ident := mgl64.Ident4()
	for i := range ident {
		assert.InDelta(t, ident[i], m[i], eps)
	}
}

func TestTranslationMovesOrigin(t *testing.T) {
	p := Pose{Translation: mgl64.Vec3{0, 0, 1}}
	vecNear(t, mgl64.Vec3{0, 0, 1}, p.Apply(mgl64.Vec3{0, 0, 0}))
}

func TestRotationAboutZ(t *testing.T) {
	p := Pose{RotationDeg: mgl64.Vec3{0, 0, 90}}
	vecNear(t, mgl64.Vec3{0, 1, 0}, p.Apply(mgl64.Vec3{1, 0, 0}))
}

func TestRotationThenTranslation(t *testing.T) {
	// Rotation happens about the origin first; the translation is not
	// rotated. (1,0,0) rotated 90° about Z is (0,1,0); translating by
	// (5,0,0) then gives (5,1,0).
	p := Pose{
		Translation: mgl64.Vec3{5, 0, 0},
		RotationDeg: mgl64.Vec3{0, 0, 90},
	}
	vecNear(t, mgl64.Vec3{5, 1, 0}, p.Apply(mgl64.Vec3{1, 0, 0}))
}

func TestEulerAxisOrder(t *testing.T) {
	// X rotation is applied before Y: +Z rotated 90° about X gives -Y,
	// which a 90° rotation about Y leaves on -Y.
	p := Pose{RotationDeg: mgl64.Vec3{90, 90, 0}}
	vecNear(t, mgl64.Vec3{0, -1, 0}, p.Apply(mgl64.Vec3{0, 0, 1}))
}

func TestParseTriple(t *testing.T) {
	v, err := ParseTriple("1,2.5,-3")
	require.NoError(t, err)
	vecNear(t, mgl64.Vec3{1, 2.5, -3}, v)

	v, err = ParseTriple(" 0 , 0 , 1 ")
	require.NoError(t, err)
	vecNear(t, mgl64.Vec3{0, 0, 1}, v)

	_, err = ParseTriple("1,2")
	assert.Error(t, err)
	_, err = ParseTriple("a,b,c")
	assert.Error(t, err)
}
