package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/pointstream/pccodec/cloud"
	"github.com/pointstream/pccodec/compress"
	"github.com/pointstream/pccodec/encoding"
	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
	"github.com/pointstream/pccodec/section"
)

// Decoder parses and decodes a single encoded point cloud buffer.
//
// NewDecoder validates the header, payload bounds and checksum eagerly, so a
// successful construction means the buffer is structurally sound; Decode then
// only has to decompress and reconstruct the attribute arrays.
type Decoder struct {
	header     section.CloudHeader
	posPayload []byte
	colPayload []byte
}

// NewDecoder creates a Decoder over an encoded buffer.
//
// The buffer is referenced, not copied; it must not be modified until Decode
// returns.
//
// Returns:
//   - *Decoder: Decoder ready to decode the buffer.
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
//     errs.ErrInvalidEncoding, errs.ErrInvalidCompression,
//     errs.ErrMissingPosition, errs.ErrMissingColor,
//     errs.ErrPayloadTruncated or errs.ErrChecksumMismatch.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseCloudHeader(data)
	if err != nil {
		return nil, err
	}

	// Both attributes are mandatory. A buffer that carries only one of them
	// is a hard failure, never a partial result.
	if !header.Flag.HasPosition() {
		return nil, errs.ErrMissingPosition
	}
	if !header.Flag.HasColor() {
		return nil, errs.ErrMissingColor
	}

	posEnd := section.HeaderSize + int(header.PositionPayloadSize)
	colEnd := posEnd + int(header.ColorPayloadSize)
	if colEnd > len(data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrPayloadTruncated, colEnd, len(data))
	}

	posPayload := data[section.HeaderSize:posEnd]
	colPayload := data[posEnd:colEnd]

	digest := xxhash.New()
	_, _ = digest.Write(posPayload)
	_, _ = digest.Write(colPayload)
	if digest.Sum64() != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return &Decoder{
		header:     header,
		posPayload: posPayload,
		colPayload: colPayload,
	}, nil
}

// Header returns the parsed container header.
func (d *Decoder) Header() section.CloudHeader {
	return d.header
}

// Decode decompresses the payloads and reconstructs the point cloud.
//
// Returns:
//   - *cloud.PointCloud: Cloud with freshly allocated, caller-owned arrays
//     ordered by point index.
//   - error: Wrapped decompression errors, or errs.ErrPointCountMismatch if
//     a payload does not match the header's point count. The cloud is always
//     nil on error.
func (d *Decoder) Decode() (*cloud.PointCloud, error) {
	header := d.header
	engine := header.Flag.GetEndianEngine()
	numPoints := int(header.PointCount)

	posCodec, err := compress.GetCodec(header.Flag.PositionCompression())
	if err != nil {
		return nil, err
	}
	colorCodec, err := compress.GetCodec(header.Flag.ColorCompression())
	if err != nil {
		return nil, err
	}

	posData, err := posCodec.Decompress(d.posPayload)
	if err != nil {
		return nil, fmt.Errorf("decompress position payload: %w", err)
	}

	var positions []float32
	switch header.Flag.PositionEncoding() {
	case format.EncodingQuantized:
		grid, gerr := encoding.NewGrid(header.Origin, header.Range, header.QuantBits)
		if gerr != nil {
			return nil, gerr
		}
		positions, err = encoding.DecodeQuantizedPositions(posData, numPoints, grid, engine)
	case format.EncodingRaw:
		positions, err = encoding.DecodeRawPositions(posData, numPoints, engine)
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, header.Flag.PositionEncoding())
	}
	if err != nil {
		return nil, err
	}

	colorData, err := colorCodec.Decompress(d.colPayload)
	if err != nil {
		return nil, fmt.Errorf("decompress color payload: %w", err)
	}
	if len(colorData) != numPoints*cloud.Components {
		return nil, errs.ErrPointCountMismatch
	}

	// Copy colors out of the decompression buffer so the result never aliases
	// decoder-internal memory (the no-op codec returns the input slice).
	colors := make([]uint8, len(colorData))
	copy(colors, colorData)

	return &cloud.PointCloud{Positions: positions, Colors: colors}, nil
}

// Decode is a convenience that parses and decodes an encoded buffer in one
// call. See NewDecoder and Decoder.Decode for the error contract.
func Decode(data []byte) (*cloud.PointCloud, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
