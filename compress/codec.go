package compress

import (
	"fmt"

	"github.com/pointstream/pccodec/format"
)

// Compressor compresses a point cloud attribute payload.
//
// Payloads are the already-encoded position or color sections of a cloud:
// quantized position grids compress extremely well, raw float positions and
// color triads less so but still meaningfully for real-world scans.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a point cloud attribute payload.
//
// The input must have been produced by the matching Compressor; the
// implementation validates the data format and returns an error if the data
// is corrupted or uses an incompatible format.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// All built-in codecs are stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, LZ4, or Snappy)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
