package section

import (
	"github.com/pointstream/pccodec/endian"
	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
)

// CloudFlag represents the packed flag field at the start of the cloud header.
type CloudFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is the position attribute presence flag.
	// Bit 2 is the color attribute presence flag.
	// Bit 3 is the color normalization flag (colors are normalized uint8 values).
	// Bits 4-15 are the magic number identifying the container format:
	//   - 0xDC10: point cloud container format v1
	Options uint16

	// EncodingType is the position encoding, one of format.EncodingType.
	EncodingType uint8

	// CompressionType packs the compression selection for both payloads:
	// bits 0-3 for the position payload, bits 4-7 for the color payload.
	CompressionType uint8
}

var validEncodings = map[uint8]struct{}{
	uint8(format.EncodingRaw):       {},
	uint8(format.EncodingQuantized): {},
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone):   {},
	uint8(format.CompressionZstd):   {},
	uint8(format.CompressionS2):     {},
	uint8(format.CompressionLZ4):    {},
	uint8(format.CompressionSnappy): {},
}

// NewCloudFlag creates a CloudFlag with default settings: little-endian,
// both attributes present, normalized colors, quantized positions, and
// zstd compression for both payloads.
func NewCloudFlag() CloudFlag {
	flag := CloudFlag{
		Options:      MagicCloudV1Opt | PositionMask | ColorMask | ColorNormalizedMask,
		EncodingType: uint8(format.EncodingQuantized),
	}
	flag.SetPositionCompression(format.CompressionZstd)
	flag.SetColorCompression(format.CompressionZstd)

	return flag
}

// HasPosition returns whether the position attribute is present.
func (f CloudFlag) HasPosition() bool {
	return (f.Options & PositionMask) != 0
}

// SetHasPosition sets the position attribute presence bit.
func (f *CloudFlag) SetHasPosition(present bool) {
	if present {
		f.Options |= PositionMask
	} else {
		f.Options &^= PositionMask
	}
}

// HasColor returns whether the color attribute is present.
func (f CloudFlag) HasColor() bool {
	return (f.Options & ColorMask) != 0
}

// SetHasColor sets the color attribute presence bit.
func (f *CloudFlag) SetHasColor(present bool) {
	if present {
		f.Options |= ColorMask
	} else {
		f.Options &^= ColorMask
	}
}

// ColorsNormalized returns whether color values are flagged as normalized.
func (f CloudFlag) ColorsNormalized() bool {
	return (f.Options & ColorNormalizedMask) != 0
}

// SetColorsNormalized sets the color normalization bit.
func (f *CloudFlag) SetColorsNormalized(normalized bool) {
	if normalized {
		f.Options |= ColorNormalizedMask
	} else {
		f.Options &^= ColorNormalizedMask
	}
}

// IsLittleEndian returns whether payload data is little-endian.
func (f CloudFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *CloudFlag) WithLittleEndian() {
	f.Options &^= uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *CloudFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f CloudFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f CloudFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// PositionEncoding returns the position encoding type.
func (f CloudFlag) PositionEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetPositionEncoding sets the position encoding type.
func (f *CloudFlag) SetPositionEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// PositionCompression returns the compression type of the position payload.
func (f CloudFlag) PositionCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType & 0x0F)
}

// SetPositionCompression sets the compression type of the position payload.
func (f *CloudFlag) SetPositionCompression(comp format.CompressionType) {
	f.CompressionType = (f.CompressionType & 0xF0) | (uint8(comp) & 0x0F)
}

// ColorCompression returns the compression type of the color payload.
func (f CloudFlag) ColorCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType >> 4)
}

// SetColorCompression sets the compression type of the color payload.
func (f *CloudFlag) SetColorCompression(comp format.CompressionType) {
	f.CompressionType = (f.CompressionType & 0x0F) | (uint8(comp) << 4)
}

// Validate checks the magic number, encoding and compression fields.
func (f CloudFlag) Validate() error {
	if f.GetMagicNumber() != MagicCloudV1Opt {
		return errs.ErrInvalidMagic
	}
	if _, ok := validEncodings[f.EncodingType]; !ok {
		return errs.ErrInvalidEncoding
	}
	if _, ok := validCompressions[uint8(f.PositionCompression())]; !ok {
		return errs.ErrInvalidCompression
	}
	if _, ok := validCompressions[uint8(f.ColorCompression())]; !ok {
		return errs.ErrInvalidCompression
	}

	return nil
}
