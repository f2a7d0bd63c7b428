// Package pool provides pooled byte buffers for encoder scratch space.
//
// The encoder builds uncompressed attribute payloads in pooled buffers
// before handing them to a compressor; the compressed output is always a
// fresh allocation owned by the caller, so pooled memory never escapes.
package pool

import "sync"

const (
	// PayloadBufferDefaultSize is the initial capacity of buffers obtained
	// from the pool. Sized for ~10k quantized points (6 bytes per point).
	PayloadBufferDefaultSize = 64 * 1024

	// payloadBufferMaxThreshold is the largest buffer the pool retains.
	// Oversized buffers from unusually large clouds are dropped instead of
	// pinning memory.
	payloadBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

var payloadBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, PayloadBufferDefaultSize)}
	},
}

// GetPayloadBuffer obtains an empty ByteBuffer from the pool.
func GetPayloadBuffer() *ByteBuffer {
	bb, _ := payloadBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutPayloadBuffer returns a ByteBuffer to the pool. Buffers that grew past
// the retention threshold are dropped.
func PutPayloadBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > payloadBufferMaxThreshold {
		return
	}

	payloadBufferPool.Put(bb)
}
