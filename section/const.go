package section

const (
	// Bit masks for the packed Options field.
	EndiannessMask      = 0x0001 // Mask for endianness bit (bit 0): 0=little, 1=big
	PositionMask        = 0x0002 // Mask for position attribute presence bit (bit 1)
	ColorMask           = 0x0004 // Mask for color attribute presence bit (bit 2)
	ColorNormalizedMask = 0x0008 // Mask for color normalization bit (bit 3)
	MagicNumberMask     = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicCloudV1Opt is the version 1 magic number for the point cloud container format.
	MagicCloudV1Opt = 0xDC10
)

// Header layout constants.
const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 48
)

// Quantization bit depth limits. Quantized components are stored as uint16,
// so depths above 16 bits cannot be represented.
const (
	MinQuantBits     = 1
	MaxQuantBits     = 16
	DefaultQuantBits = 11
)
