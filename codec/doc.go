// Package codec implements the encoder and decoder for the binary point
// cloud container format.
//
// The encoder takes flat attribute arrays (positions as 3 float32 per point,
// colors as 3 uint8 per point), reduces positions to a quantization grid
// over the cloud's bounding box (11 bits by default), compresses both
// payloads independently, and emits a single self-describing buffer with a
// fixed 48-byte header. The decoder reverses the process and returns the
// attribute arrays ordered by point index.
//
// Basic usage:
//
//	encoder, _ := codec.NewEncoder()
//	data, err := encoder.Encode(positions, colors)
//	if err != nil {
//	    return err
//	}
//
//	pc, err := codec.Decode(data)
//	if err != nil {
//	    return err
//	}
//
// Guarantees:
//
//   - Point order is preserved: point i in equals point i out.
//   - The color channel is lossless.
//   - With quantized encoding, each decoded position component is within
//     half a grid step of the original (range / (2^bits - 1) / 2).
//   - All returned buffers and arrays are freshly allocated and owned by
//     the caller.
//   - Failures are reported as errors rooted in the errs package; no call
//     panics on malformed input.
package codec
