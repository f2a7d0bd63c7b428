package section

import (
	"math"

	"github.com/pointstream/pccodec/errs"
)

// CloudHeader is the fixed-size header at the start of an encoded point cloud.
//
// Byte layout (48 bytes):
//
//	 0-3   flag (options, position encoding, payload compression)
//	 4-7   point count
//	 8     quantization bit depth
//	 9-11  reserved, zero
//	12-23  bounding box origin, 3 x float32
//	24-27  bounding box range, float32 (largest axis extent)
//	28-31  compressed position payload size
//	32-35  compressed color payload size
//	36-43  xxHash64 checksum over both compressed payloads
//	44-47  reserved, zero
type CloudHeader struct {
	// PointCount is the number of points stored in the payloads.
	PointCount uint32
	// QuantBits is the position quantization bit depth. Only meaningful for
	// quantized position encoding; zero for raw encoding.
	QuantBits uint8
	// Origin is the minimum corner of the cloud's bounding box.
	Origin [3]float32
	// Range is the largest axis extent of the bounding box. The quantization
	// step is Range / (2^QuantBits - 1).
	Range float32
	// PositionPayloadSize is the compressed position payload size in bytes.
	PositionPayloadSize uint32
	// ColorPayloadSize is the compressed color payload size in bytes.
	ColorPayloadSize uint32
	// Checksum is the xxHash64 digest of the compressed position payload
	// followed by the compressed color payload.
	Checksum uint64

	// Flag is the packed field for options and the magic number.
	Flag CloudFlag
}

// NewCloudHeader creates a CloudHeader with default flags. Point count,
// bounding box, payload sizes and checksum are filled in by the encoder.
func NewCloudHeader() *CloudHeader {
	return &CloudHeader{
		Flag:      NewCloudFlag(),
		QuantBits: DefaultQuantBits,
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not 48 bytes, or flag
//     validation errors.
func (h *CloudHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian; it carries the
	// endianness of everything that follows.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.PointCount = engine.Uint32(data[4:8])
	h.QuantBits = data[8]
	h.Origin[0] = math.Float32frombits(engine.Uint32(data[12:16]))
	h.Origin[1] = math.Float32frombits(engine.Uint32(data[16:20]))
	h.Origin[2] = math.Float32frombits(engine.Uint32(data[20:24]))
	h.Range = math.Float32frombits(engine.Uint32(data[24:28]))
	h.PositionPayloadSize = engine.Uint32(data[28:32])
	h.ColorPayloadSize = engine.Uint32(data[32:36])
	h.Checksum = engine.Uint64(data[36:44])

	return nil
}

// Bytes serializes the CloudHeader into a byte slice.
func (h *CloudHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.PointCount)
	b[8] = h.QuantBits
	engine.PutUint32(b[12:16], math.Float32bits(h.Origin[0]))
	engine.PutUint32(b[16:20], math.Float32bits(h.Origin[1]))
	engine.PutUint32(b[20:24], math.Float32bits(h.Origin[2]))
	engine.PutUint32(b[24:28], math.Float32bits(h.Range))
	engine.PutUint32(b[28:32], h.PositionPayloadSize)
	engine.PutUint32(b[32:36], h.ColorPayloadSize)
	engine.PutUint64(b[36:44], h.Checksum)

	return b
}

// ParseCloudHeader parses a CloudHeader from the start of a byte slice.
//
// Returns:
//   - CloudHeader: Parsed header struct.
//   - error: errs.ErrInvalidHeaderSize or flag validation errors.
func ParseCloudHeader(data []byte) (CloudHeader, error) {
	if len(data) < HeaderSize {
		return CloudHeader{}, errs.ErrInvalidHeaderSize
	}

	h := CloudHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return CloudHeader{}, err
	}

	return h, nil
}
