package encoding

import (
	"fmt"
	"math"

	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/section"
)

// Grid is a uniform quantization grid laid over a cloud's bounding box.
//
// Every axis shares the same step, derived from the largest axis extent:
// step = Range / (2^Bits - 1). A quantized component is the grid level
// nearest to the original value, so dequantization recovers the value
// within MaxError (half a step) per axis.
//
// A Grid with zero Range is valid and describes a degenerate cloud (all
// points identical, or a single point); every component quantizes to level
// zero and dequantizes back to the origin exactly.
type Grid struct {
	// Origin is the minimum corner of the bounding box.
	Origin [3]float32
	// Range is the largest axis extent of the bounding box.
	Range float32
	// Bits is the quantization bit depth (1 to 16).
	Bits uint8

	maxLevel uint16
	step     float32
	invStep  float32
}

// NewGrid creates a quantization grid for the given bounding box and bit depth.
//
// Returns:
//   - Grid: The configured grid.
//   - error: errs.ErrInvalidQuantBits if bits is outside [1, 16].
func NewGrid(origin [3]float32, rng float32, bits uint8) (Grid, error) {
	if bits < section.MinQuantBits || bits > section.MaxQuantBits {
		return Grid{}, fmt.Errorf("%w: %d (must be %d to %d)",
			errs.ErrInvalidQuantBits, bits, section.MinQuantBits, section.MaxQuantBits)
	}

	g := Grid{
		Origin:   origin,
		Range:    rng,
		Bits:     bits,
		maxLevel: uint16((uint32(1) << bits) - 1),
	}
	if rng > 0 {
		g.step = rng / float32(g.maxLevel)
		g.invStep = float32(g.maxLevel) / rng
	}

	return g, nil
}

// GridFromPositions computes the bounding box of a flat position array and
// creates a grid over it.
//
// Parameters:
//   - positions: Flat array of 3 float32 components per point; length must
//     be a multiple of 3 (validated by the caller).
//   - bits: Quantization bit depth.
//
// Returns:
//   - Grid: Grid over the computed bounding box (zero box for empty input).
//   - error: errs.ErrInvalidQuantBits for an out-of-range bit depth.
func GridFromPositions(positions []float32, bits uint8) (Grid, error) {
	if len(positions) == 0 {
		return NewGrid([3]float32{}, 0, bits)
	}

	var minC, maxC [3]float32
	minC = [3]float32{positions[0], positions[1], positions[2]}
	maxC = minC

	for i := 3; i+2 < len(positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := positions[i+axis]
			if v < minC[axis] {
				minC[axis] = v
			}
			if v > maxC[axis] {
				maxC[axis] = v
			}
		}
	}

	// Single shared range keeps the grid cubic, matching the largest extent.
	var rng float32
	for axis := 0; axis < 3; axis++ {
		if ext := maxC[axis] - minC[axis]; ext > rng {
			rng = ext
		}
	}

	return NewGrid(minC, rng, bits)
}

// Step returns the grid step size (zero for a degenerate grid).
func (g Grid) Step() float32 {
	return g.step
}

// MaxError returns the worst-case per-axis reconstruction error, half a step.
func (g Grid) MaxError() float32 {
	return g.step / 2
}

// Quantize maps a position component on the given axis to its grid level.
// Values outside the bounding box clamp to the nearest edge level.
func (g Grid) Quantize(v float32, axis int) uint16 {
	if g.step == 0 {
		return 0
	}

	level := math.Round(float64(v-g.Origin[axis]) * float64(g.invStep))
	if level < 0 {
		return 0
	}
	if level > float64(g.maxLevel) {
		return g.maxLevel
	}

	return uint16(level)
}

// Dequantize maps a grid level on the given axis back to a position component.
func (g Grid) Dequantize(level uint16, axis int) float32 {
	return g.Origin[axis] + float32(level)*g.step
}
