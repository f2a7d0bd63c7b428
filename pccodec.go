// Package pccodec provides a compact binary codec for colored point clouds.
//
// A point cloud is a pair of flat, parallel attribute arrays: positions as
// 3 float32 components (x, y, z) per point and colors as 3 uint8 components
// (r, g, b) per point. The codec packs both into a single self-describing
// buffer: positions are quantized onto an 11-bit grid over the cloud's
// bounding box by default (configurable, or lossless raw float32), colors
// are stored losslessly, and both payloads are compressed independently
// (zstd by default; s2, lz4, snappy and none are available).
//
// # Basic Usage
//
// Encoding and decoding flat arrays:
//
//	import "github.com/pointstream/pccodec"
//
//	data, err := pccodec.Encode(positions, colors)
//	if err != nil {
//	    return err
//	}
//
//	pc, err := pccodec.Decode(data)
//	if err != nil {
//	    return err
//	}
//	// pc.Positions, pc.Colors are parallel arrays ordered by point index.
//
// Custom encoder settings:
//
//	data, err := pccodec.Encode(positions, colors,
//	    codec.WithPositionQuantization(14),
//	    codec.WithPositionCompression(format.CompressionLZ4),
//	)
//
// # Guarantees
//
//   - Point order is preserved and the color channel round-trips exactly.
//   - Quantized positions round-trip within half a grid step per axis.
//   - Returned buffers and arrays are freshly allocated and caller-owned.
//   - Every failure is an error rooted in the errs package; nothing panics
//     on malformed input.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, plus container sniffing across the formats the module can read.
// For configured encoder reuse, use the codec package directly. The ply
// package reads and writes the ASCII PLY interchange format; transform and
// sample prepare clouds before encoding.
package pccodec

import (
	"bytes"
	"fmt"

	"github.com/pointstream/pccodec/cloud"
	"github.com/pointstream/pccodec/codec"
	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
	"github.com/pointstream/pccodec/ply"
	"github.com/pointstream/pccodec/section"
)

// plyMagic is the signature of a PLY file.
var plyMagic = []byte("ply")

// Encode encodes flat position and color arrays into a compressed buffer
// using default settings plus the given options.
//
// Parameters:
//   - positions: 3 float32 components (x, y, z) per point; non-nil, length a
//     multiple of 3.
//   - colors: 3 uint8 components (r, g, b) per point; non-nil, same length
//     as positions.
//   - opts: Optional configuration (see codec.EncoderOption).
//
// Returns:
//   - []byte: Freshly allocated encoded buffer owned by the caller.
//   - error: Input validation or encoding error; the buffer is nil on error.
func Encode(positions []float32, colors []uint8, opts ...codec.EncoderOption) ([]byte, error) {
	encoder, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(positions, colors)
}

// Decode decodes a buffer produced by Encode back into a point cloud.
//
// Returns:
//   - *cloud.PointCloud: Cloud with caller-owned arrays ordered by point index.
//   - error: Header, checksum, attribute or decompression error; the cloud
//     is nil on error.
func Decode(data []byte) (*cloud.PointCloud, error) {
	return codec.Decode(data)
}

// DetectFormat sniffs the container format of data without decoding it.
//
// Returns format.ContainerPLY for PLY files, format.ContainerNative for the
// binary container, and format.ContainerUnknown otherwise.
func DetectFormat(data []byte) format.ContainerType {
	if len(data) >= len(plyMagic) && bytes.Equal(data[:len(plyMagic)], plyMagic) {
		return format.ContainerPLY
	}
	if len(data) >= 2 {
		// The options word is little-endian regardless of payload endianness.
		options := uint16(data[0]) | (uint16(data[1]) << 8)
		if options&section.MagicNumberMask == section.MagicCloudV1Opt {
			return format.ContainerNative
		}
	}

	return format.ContainerUnknown
}

// DecodeAny decodes a buffer in any supported container format, dispatching
// on the detected format.
//
// Returns:
//   - *cloud.PointCloud: The decoded cloud.
//   - error: errs.ErrInvalidMagic if the format is not recognized, or the
//     decode error of the matching codec.
func DecodeAny(data []byte) (*cloud.PointCloud, error) {
	switch DetectFormat(data) {
	case format.ContainerNative:
		return codec.Decode(data)
	case format.ContainerPLY:
		return ply.Unmarshal(data)
	default:
		return nil, fmt.Errorf("%w: unrecognized container", errs.ErrInvalidMagic)
	}
}
