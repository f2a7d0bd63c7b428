// Package transform applies rigid-body and scale transforms to point clouds
// before encoding.
//
// A streaming pipeline typically carries per-stream placement settings
// (scale, orientation, position); applying them once on the server side
// keeps every client's view consistent without shipping the transform.
package transform

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pointstream/pccodec/cloud"
)

// Params describes a scale-rotate-translate transform applied in that order.
type Params struct {
	// Scale holds per-axis scale factors.
	Scale [3]float32
	// Rotation holds Euler angles in radians, applied about the X, then Y,
	// then Z axis.
	Rotation [3]float32
	// Translation is added after scaling and rotation.
	Translation [3]float32
}

// Identity returns the transform that leaves a cloud unchanged.
func Identity() Params {
	return Params{Scale: [3]float32{1, 1, 1}}
}

// IsIdentity reports whether applying the transform would change nothing.
func (p Params) IsIdentity() bool {
	return p.Scale == [3]float32{1, 1, 1} &&
		p.Rotation == [3]float32{} &&
		p.Translation == [3]float32{}
}

// Apply transforms every position in the cloud in place. Colors are
// untouched. Identity transforms are skipped without traversing the cloud.
func Apply(pc *cloud.PointCloud, p Params) {
	if p.IsIdentity() {
		return
	}

	rotX := r3.NewRotation(float64(p.Rotation[0]), r3.Vec{X: 1})
	rotY := r3.NewRotation(float64(p.Rotation[1]), r3.Vec{Y: 1})
	rotZ := r3.NewRotation(float64(p.Rotation[2]), r3.Vec{Z: 1})

	translation := r3.Vec{
		X: float64(p.Translation[0]),
		Y: float64(p.Translation[1]),
		Z: float64(p.Translation[2]),
	}

	for i := 0; i+2 < len(pc.Positions); i += 3 {
		v := r3.Vec{
			X: float64(pc.Positions[i]) * float64(p.Scale[0]),
			Y: float64(pc.Positions[i+1]) * float64(p.Scale[1]),
			Z: float64(pc.Positions[i+2]) * float64(p.Scale[2]),
		}

		v = rotZ.Rotate(rotY.Rotate(rotX.Rotate(v)))
		v = r3.Add(v, translation)

		pc.Positions[i] = float32(v.X)
		pc.Positions[i+1] = float32(v.Y)
		pc.Positions[i+2] = float32(v.Z)
	}
}
