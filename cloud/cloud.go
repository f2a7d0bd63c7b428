// Package cloud defines the in-memory point cloud model used by the codec.
//
// A point cloud is a flat, columnar pair of attribute arrays: positions as
// 3 float32 components per point and colors as 3 uint8 components per point,
// both ordered by point index. Both attributes are mandatory; the arrays are
// always kept the same logical length (3 components per point each).
package cloud

import (
	"fmt"

	"github.com/pointstream/pccodec/errs"
)

// Components is the number of components per point for both attributes
// (x/y/z for positions, r/g/b for colors).
const Components = 3

// PointCloud holds the position and color attribute arrays of a point cloud.
//
// The slices are owned by the PointCloud but are plain Go slices; callers
// that need to retain input arrays unchanged should pass copies. A decoded
// PointCloud always owns freshly allocated slices.
type PointCloud struct {
	// Positions holds 3 float32 components (x, y, z) per point.
	Positions []float32
	// Colors holds 3 uint8 components (r, g, b) per point.
	Colors []uint8
}

// FromArrays wraps flat position and color arrays as a PointCloud after
// validating them. The slices are referenced, not copied.
//
// Returns:
//   - *PointCloud: The wrapped point cloud.
//   - error: errs.ErrNilInput, errs.ErrInvalidPointCount or errs.ErrLengthMismatch.
func FromArrays(positions []float32, colors []uint8) (*PointCloud, error) {
	pc := &PointCloud{Positions: positions, Colors: colors}
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	return pc, nil
}

// New creates an empty PointCloud with capacity for numPoints points.
func New(numPoints int) *PointCloud {
	return &PointCloud{
		Positions: make([]float32, 0, numPoints*Components),
		Colors:    make([]uint8, 0, numPoints*Components),
	}
}

// NumPoints returns the number of points in the cloud.
func (pc *PointCloud) NumPoints() int {
	return len(pc.Positions) / Components
}

// Validate checks the attribute array invariants.
//
// Returns:
//   - error: errs.ErrNilInput if either array is nil, errs.ErrInvalidPointCount
//     if the position array length is not a multiple of 3, errs.ErrLengthMismatch
//     if the color array length differs from the position array length.
func (pc *PointCloud) Validate() error {
	if pc.Positions == nil || pc.Colors == nil {
		return errs.ErrNilInput
	}
	if len(pc.Positions)%Components != 0 {
		return fmt.Errorf("%w: got %d position components", errs.ErrInvalidPointCount, len(pc.Positions))
	}
	if len(pc.Colors) != len(pc.Positions) {
		return fmt.Errorf("%w: %d color components for %d position components",
			errs.ErrLengthMismatch, len(pc.Colors), len(pc.Positions))
	}

	return nil
}

// Position returns the x, y, z components of point i.
func (pc *PointCloud) Position(i int) (x, y, z float32) {
	base := i * Components
	return pc.Positions[base], pc.Positions[base+1], pc.Positions[base+2]
}

// Color returns the r, g, b components of point i.
func (pc *PointCloud) Color(i int) (r, g, b uint8) {
	base := i * Components
	return pc.Colors[base], pc.Colors[base+1], pc.Colors[base+2]
}

// Append adds a single point to the cloud.
func (pc *PointCloud) Append(x, y, z float32, r, g, b uint8) {
	pc.Positions = append(pc.Positions, x, y, z)
	pc.Colors = append(pc.Colors, r, g, b)
}

// Clone returns a deep copy of the point cloud.
func (pc *PointCloud) Clone() *PointCloud {
	dup := &PointCloud{
		Positions: make([]float32, len(pc.Positions)),
		Colors:    make([]uint8, len(pc.Colors)),
	}
	copy(dup.Positions, pc.Positions)
	copy(dup.Colors, pc.Colors)

	return dup
}
