package pose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid placement applied to a model before it is presented:
// a translation plus an Euler rotation in degrees. The zero value is the
// identity pose.
//
// Composition order is fixed: rotation about the origin first (about the
// X axis, then Y, then Z), then translation. A vertex at the origin with
// Translation (0,0,1) therefore ends up at (0,0,1) regardless of rotation.
type Pose struct {
	Translation mgl64.Vec3
	RotationDeg mgl64.Vec3
}

// IsIdentity reports whether the pose leaves the model untouched.
func (p Pose) IsIdentity() bool {
	return p.Translation == mgl64.Vec3{} && p.RotationDeg == mgl64.Vec3{}
}

// Matrix returns the homogeneous transform for the pose:
// Translate * Rz * Ry * Rx.
func (p Pose) Matrix() mgl64.Mat4 {
	rx := mgl64.DegToRad(p.RotationDeg[0])
	ry := mgl64.DegToRad(p.RotationDeg[1])
	rz := mgl64.DegToRad(p.RotationDeg[2])
	rot := mgl64.HomogRotate3DZ(rz).
		Mul4(mgl64.HomogRotate3DY(ry)).
		Mul4(mgl64.HomogRotate3DX(rx))
	return mgl64.Translate3D(p.Translation[0], p.Translation[1], p.Translation[2]).Mul4(rot)
}

// Apply transforms a single point by the pose.
func (p Pose) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(v, p.Matrix())
}

// ParseTriple parses a comma-separated "x,y,z" into a vector; used for the
// --translate and --rotate flag values.
func ParseTriple(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("pose: want three comma-separated values, got %q", s)
	}
	var v mgl64.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("pose: bad component %q in %q", part, s)
		}
		v[i] = f
	}
	return v, nil
}
