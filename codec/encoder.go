package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/pointstream/pccodec/cloud"
	"github.com/pointstream/pccodec/encoding"
	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
	"github.com/pointstream/pccodec/internal/options"
	"github.com/pointstream/pccodec/internal/pool"
	"github.com/pointstream/pccodec/section"
)

// Encoder encodes point clouds into the binary container format.
//
// An Encoder is immutable after construction and safe for concurrent use;
// each Encode call works on call-local state only.
type Encoder struct {
	cfg *EncoderConfig
}

// NewEncoder creates an Encoder with the given options applied on top of the
// defaults (quantized positions at 11 bits, zstd compression, little-endian).
//
// Returns:
//   - *Encoder: The configured encoder.
//   - error: An error if any option is invalid.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.setCodecs(); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode encodes flat position and color arrays into a compressed buffer.
//
// Parameters:
//   - positions: 3 float32 components (x, y, z) per point; must be non-nil
//     and a multiple of 3 in length. A zero-length array is legal and yields
//     a header-only buffer.
//   - colors: 3 uint8 components (r, g, b) per point; must be non-nil and
//     match the position array length.
//
// Returns:
//   - []byte: Freshly allocated buffer owned by the caller.
//   - error: errs.ErrNilInput, errs.ErrInvalidPointCount or
//     errs.ErrLengthMismatch for invalid input; wrapped compression errors
//     otherwise. The buffer is always nil on error.
func (e *Encoder) Encode(positions []float32, colors []uint8) ([]byte, error) {
	pc, err := cloud.FromArrays(positions, colors)
	if err != nil {
		return nil, err
	}

	return e.EncodeCloud(pc)
}

// EncodeCloud encodes a point cloud into a compressed buffer.
//
// See Encode for the buffer ownership and error contract.
func (e *Encoder) EncodeCloud(pc *cloud.PointCloud) ([]byte, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	cfg := e.cfg
	header := section.CloudHeader{
		Flag:       cfg.flag,
		PointCount: uint32(pc.NumPoints()),
	}

	// Stage 1: encode the position payload into pooled scratch space.
	scratch := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(scratch)

	switch cfg.flag.PositionEncoding() {
	case format.EncodingQuantized:
		grid, err := encoding.GridFromPositions(pc.Positions, cfg.bits)
		if err != nil {
			return nil, err
		}
		header.QuantBits = cfg.bits
		header.Origin = grid.Origin
		header.Range = grid.Range
		scratch.B = encoding.AppendQuantizedPositions(scratch.B, pc.Positions, grid, cfg.engine)
	case format.EncodingRaw:
		scratch.B = encoding.AppendRawPositions(scratch.B, pc.Positions, cfg.engine)
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, cfg.flag.PositionEncoding())
	}

	// Stage 2: compress both payloads. Colors are raw uint8 triads already,
	// so they skip the encoding stage and stay lossless.
	posPayload, err := cfg.posCodec.Compress(scratch.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress position payload: %w", err)
	}

	colorPayload, err := cfg.colorCodec.Compress(pc.Colors)
	if err != nil {
		return nil, fmt.Errorf("compress color payload: %w", err)
	}

	header.PositionPayloadSize = uint32(len(posPayload))
	header.ColorPayloadSize = uint32(len(colorPayload))

	digest := xxhash.New()
	_, _ = digest.Write(posPayload)
	_, _ = digest.Write(colorPayload)
	header.Checksum = digest.Sum64()

	buf := make([]byte, 0, section.HeaderSize+len(posPayload)+len(colorPayload))
	buf = append(buf, header.Bytes()...)
	buf = append(buf, posPayload...)
	buf = append(buf, colorPayload...)

	return buf, nil
}
