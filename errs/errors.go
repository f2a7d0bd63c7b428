// Package errs defines the sentinel errors shared across the pccodec packages.
//
// Every failure the codec can report is rooted in one of these values, so
// callers can classify failures with errors.Is instead of matching message
// strings. Errors returned by the encoder and decoder wrap these sentinels
// with additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

// Input validation errors.
var (
	// ErrNilInput indicates a nil position or color slice was passed to the encoder.
	ErrNilInput = errors.New("nil input array")

	// ErrInvalidPointCount indicates the position array length is not a multiple of 3.
	ErrInvalidPointCount = errors.New("position count must be a multiple of 3")

	// ErrLengthMismatch indicates the color array length does not match the point count.
	ErrLengthMismatch = errors.New("color count does not match point count")

	// ErrInvalidQuantBits indicates a quantization bit depth outside the supported range.
	ErrInvalidQuantBits = errors.New("quantization bits out of range")
)

// Container format errors.
var (
	// ErrInvalidHeaderSize indicates the data is too short to contain a header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagic indicates the header magic number does not identify a known format.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidEncoding indicates an unknown or unsupported position encoding.
	ErrInvalidEncoding = errors.New("invalid position encoding")

	// ErrInvalidCompression indicates an unknown or unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrPayloadTruncated indicates the payload section is shorter than the header declares.
	ErrPayloadTruncated = errors.New("payload truncated")

	// ErrChecksumMismatch indicates the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrPointCountMismatch indicates a decoded payload yields a different number
	// of points than the header declares.
	ErrPointCountMismatch = errors.New("decoded point count mismatch")
)

// Attribute errors. Both attributes are mandatory: a cloud without either
// one is a hard decode failure, never a partial result.
var (
	// ErrMissingPosition indicates the position attribute is absent.
	ErrMissingPosition = errors.New("position attribute not found")

	// ErrMissingColor indicates the color attribute is absent.
	ErrMissingColor = errors.New("color attribute not found")
)
