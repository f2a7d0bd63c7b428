package format

type (
	EncodingType    uint8
	CompressionType uint8
	ContainerType   uint8
)

const (
	EncodingRaw       EncodingType = 0x1 // EncodingRaw stores position components as raw float32 values.
	EncodingQuantized EncodingType = 0x2 // EncodingQuantized stores positions on a fixed-bit grid over the bounding box.

	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
)

const (
	ContainerUnknown ContainerType = iota // ContainerUnknown is data that matches no known container.
	ContainerNative                       // ContainerNative is the binary point-cloud container of this module.
	ContainerPLY                          // ContainerPLY is an ASCII PLY file.
)

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingQuantized:
		return "Quantized"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

func (c ContainerType) String() string {
	switch c {
	case ContainerNative:
		return "Native"
	case ContainerPLY:
		return "PLY"
	default:
		return "Unknown"
	}
}
