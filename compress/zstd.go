package compress

// ZstdCompressor provides Zstandard compression for point cloud payloads.
//
// Zstd is the default codec for both payload sections: quantized position
// grids are highly repetitive and compress 3:1 or better, and color triads
// from real-world scans carry enough spatial coherence to benefit as well.
//
// Two implementations exist behind build tags:
//   - default: pure-Go klauspost/compress/zstd with pooled encoder/decoder
//   - gozstd tag: cgo bindings to libzstd for throughput-critical builds
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
