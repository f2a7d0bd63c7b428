// Package encoding implements the attribute-level encoding stage of the
// point cloud codec: mapping position components onto a fixed-bit
// quantization grid and packing attribute arrays into the byte payloads
// that the compress package then compresses.
//
// Two position encodings are supported:
//
//   - Quantized: each component is snapped to a uniform grid over the
//     cloud's bounding box and stored as a uint16 level. Lossy, bounded by
//     half a grid step per axis; 6 bytes per point before compression.
//   - Raw: each component keeps its exact float32 bit pattern. Lossless;
//     12 bytes per point before compression.
//
// Colors are not handled here: they are already byte triads and go to the
// compressor unchanged, which keeps the color channel lossless.
package encoding
