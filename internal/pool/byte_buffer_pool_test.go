package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadBufferReuse(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	PutPayloadBuffer(bb)

	// A fresh Get must always hand back an empty buffer, pooled or not.
	again := GetPayloadBuffer()
	require.Zero(t, again.Len())
	PutPayloadBuffer(again)
}

func TestPutNilIsSafe(t *testing.T) {
	require.NotPanics(t, func() {
		PutPayloadBuffer(nil)
	})
}

func TestOversizedBufferDropped(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, payloadBufferMaxThreshold+1)}
	require.NotPanics(t, func() {
		PutPayloadBuffer(bb)
	})
}
