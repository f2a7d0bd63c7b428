// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface so encoders can both read fixed offsets
// and append values without intermediate buffers.
//
// The native container format is little-endian by default; big-endian is
// supported for interoperability and selected through the header flag.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any code
// written against the standard library interfaces keeps working.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
