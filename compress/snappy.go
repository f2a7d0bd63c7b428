package compress

import "github.com/golang/snappy"

// SnappyCompressor provides Snappy block compression.
//
// Snappy trades compression ratio for very low latency on both sides, which
// suits live streaming of per-frame clouds where the decoder runs on
// constrained clients.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses the input data using Snappy block compression.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses Snappy-compressed data.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Decode(nil, data)
}
