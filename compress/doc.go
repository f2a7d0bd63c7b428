// Package compress provides compression and decompression codecs for point
// cloud attribute payloads.
//
// Compression is the second of two stages applied by the encoder:
//
//  1. Encoding: positions are reduced to a fixed-bit quantization grid (or
//     kept as raw float32), colors stay as raw uint8 triads
//  2. Compression: the encoded payload bytes are compressed with a
//     general-purpose algorithm
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, the default for both payloads
//   - S2: balanced ratio and speed
//   - LZ4: fast decompression, moderate ratio
//   - Snappy: lowest latency, lowest ratio
//
// Each payload section selects its codec independently, so a stream can pair
// zstd positions with snappy colors when decode latency of the lossless
// channel matters more.
//
// All built-in codecs are stateless values, safe for concurrent use; the
// zstd and lz4 implementations reuse pooled encoder state internally.
package compress
