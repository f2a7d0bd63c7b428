package encoding

import (
	"math"

	"github.com/pointstream/pccodec/endian"
	"github.com/pointstream/pccodec/errs"
)

// Payload sizes per point for each position encoding.
const (
	QuantizedPointSize = 6  // 3 x uint16
	RawPointSize       = 12 // 3 x float32
)

// AppendQuantizedPositions appends the quantized representation of a flat
// position array to dst and returns the extended slice.
//
// Each point becomes 3 consecutive uint16 grid levels in the engine's byte
// order, 6 bytes per point, ordered by point index.
func AppendQuantizedPositions(dst []byte, positions []float32, grid Grid, engine endian.EndianEngine) []byte {
	for i := 0; i+2 < len(positions); i += 3 {
		dst = engine.AppendUint16(dst, grid.Quantize(positions[i], 0))
		dst = engine.AppendUint16(dst, grid.Quantize(positions[i+1], 1))
		dst = engine.AppendUint16(dst, grid.Quantize(positions[i+2], 2))
	}

	return dst
}

// DecodeQuantizedPositions reconstructs a flat position array from a
// quantized payload of numPoints points.
//
// Returns:
//   - []float32: Freshly allocated array of 3 components per point.
//   - error: errs.ErrPointCountMismatch if the payload length does not match
//     numPoints.
func DecodeQuantizedPositions(data []byte, numPoints int, grid Grid, engine endian.EndianEngine) ([]float32, error) {
	if len(data) != numPoints*QuantizedPointSize {
		return nil, errs.ErrPointCountMismatch
	}

	positions := make([]float32, numPoints*3)
	for i := 0; i < numPoints; i++ {
		off := i * QuantizedPointSize
		positions[i*3] = grid.Dequantize(engine.Uint16(data[off:off+2]), 0)
		positions[i*3+1] = grid.Dequantize(engine.Uint16(data[off+2:off+4]), 1)
		positions[i*3+2] = grid.Dequantize(engine.Uint16(data[off+4:off+6]), 2)
	}

	return positions, nil
}

// AppendRawPositions appends the lossless float32 representation of a flat
// position array to dst and returns the extended slice.
//
// Each point becomes 3 consecutive float32 bit patterns in the engine's byte
// order, 12 bytes per point, ordered by point index.
func AppendRawPositions(dst []byte, positions []float32, engine endian.EndianEngine) []byte {
	for _, v := range positions {
		dst = engine.AppendUint32(dst, math.Float32bits(v))
	}

	return dst
}

// DecodeRawPositions reconstructs a flat position array from a raw payload
// of numPoints points.
//
// Returns:
//   - []float32: Freshly allocated array of 3 components per point.
//   - error: errs.ErrPointCountMismatch if the payload length does not match
//     numPoints.
func DecodeRawPositions(data []byte, numPoints int, engine endian.EndianEngine) ([]float32, error) {
	if len(data) != numPoints*RawPointSize {
		return nil, errs.ErrPointCountMismatch
	}

	positions := make([]float32, numPoints*3)
	for i := range positions {
		positions[i] = math.Float32frombits(engine.Uint32(data[i*4 : i*4+4]))
	}

	return positions, nil
}
