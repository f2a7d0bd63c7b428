package codec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
	"github.com/pointstream/pccodec/section"
)

// ==============================================================================
// Helper Functions
// ==============================================================================

// randomCloud generates n random points inside [-10, 10]^3 with random colors.
func randomCloud(n int) ([]float32, []uint8) {
	positions := make([]float32, n*3)
	colors := make([]uint8, n*3)
	for i := range positions {
		positions[i] = float32(rand.Float64()*20 - 10)
		colors[i] = uint8(rand.Intn(256))
	}

	return positions, colors
}

// quantBound computes the worst-case per-axis reconstruction error for the
// given positions at the given bit depth: half the grid step over the
// largest bounding box extent.
func quantBound(positions []float32, bits uint8) float64 {
	if len(positions) == 0 {
		return 0
	}

	var minC, maxC [3]float64
	for axis := 0; axis < 3; axis++ {
		minC[axis] = float64(positions[axis])
		maxC[axis] = minC[axis]
	}
	for i := 3; i+2 < len(positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := float64(positions[i+axis])
			minC[axis] = math.Min(minC[axis], v)
			maxC[axis] = math.Max(maxC[axis], v)
		}
	}

	var rng float64
	for axis := 0; axis < 3; axis++ {
		rng = math.Max(rng, maxC[axis]-minC[axis])
	}

	step := rng / float64((uint32(1)<<bits)-1)

	return step/2 + 1e-5 // small slack for float32 rounding
}

func encodeDecode(t *testing.T, positions []float32, colors []uint8, opts ...EncoderOption) ([]byte, []float32, []uint8) {
	t.Helper()

	encoder, err := NewEncoder(opts...)
	require.NoError(t, err)

	data, err := encoder.Encode(positions, colors)
	require.NoError(t, err)
	require.NotNil(t, data)

	pc, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, pc)

	return data, pc.Positions, pc.Colors
}

// ==============================================================================
// Round-trip Tests
// ==============================================================================

func TestRoundTripQuantized(t *testing.T) {
	positions, colors := randomCloud(1000)

	_, gotPos, gotColors := encodeDecode(t, positions, colors)

	require.Len(t, gotPos, len(positions))
	require.Equal(t, colors, gotColors, "color channel must be lossless")

	bound := quantBound(positions, section.DefaultQuantBits)
	for i := range positions {
		require.InDelta(t, positions[i], gotPos[i], bound,
			"position component %d outside quantization bound", i)
	}
}

func TestRoundTripRawLossless(t *testing.T) {
	positions, colors := randomCloud(500)

	_, gotPos, gotColors := encodeDecode(t, positions, colors,
		WithPositionEncoding(format.EncodingRaw))

	require.Equal(t, positions, gotPos)
	require.Equal(t, colors, gotColors)
}

func TestRoundTripQuantizationBits(t *testing.T) {
	positions, colors := randomCloud(300)

	for _, bits := range []uint8{1, 8, 11, 14, 16} {
		_, gotPos, gotColors := encodeDecode(t, positions, colors,
			WithPositionQuantization(bits))

		require.Equal(t, colors, gotColors)

		bound := quantBound(positions, bits)
		for i := range positions {
			require.InDelta(t, positions[i], gotPos[i], bound,
				"bits=%d component %d", bits, i)
		}
	}
}

func TestRoundTripCompressionTypes(t *testing.T) {
	positions, colors := randomCloud(200)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionSnappy,
	}

	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			_, gotPos, gotColors := encodeDecode(t, positions, colors,
				WithPositionCompression(comp),
				WithColorCompression(comp))

			require.Len(t, gotPos, len(positions))
			require.Equal(t, colors, gotColors)
		})
	}
}

func TestRoundTripBigEndian(t *testing.T) {
	positions, colors := randomCloud(100)

	data, gotPos, gotColors := encodeDecode(t, positions, colors,
		WithBigEndian(),
		WithPositionEncoding(format.EncodingRaw))

	header, err := section.ParseCloudHeader(data)
	require.NoError(t, err)
	require.False(t, header.Flag.IsLittleEndian())

	require.Equal(t, positions, gotPos)
	require.Equal(t, colors, gotColors)
}

func TestRoundTripEmptyCloud(t *testing.T) {
	data, gotPos, gotColors := encodeDecode(t, []float32{}, []uint8{})

	require.Empty(t, gotPos)
	require.Empty(t, gotColors)
	require.Len(t, data, section.HeaderSize)
}

func TestRoundTripSinglePoint(t *testing.T) {
	positions := []float32{1.25, -2.5, 3.75}
	colors := []uint8{255, 0, 127}

	_, gotPos, gotColors := encodeDecode(t, positions, colors)

	// Degenerate bounding box: the single point reconstructs exactly.
	require.Equal(t, positions, gotPos)
	require.Equal(t, colors, gotColors)
}

func TestRoundTripIdenticalPoints(t *testing.T) {
	positions := []float32{5, 5, 5, 5, 5, 5, 5, 5, 5}
	colors := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}

	_, gotPos, gotColors := encodeDecode(t, positions, colors)

	require.Equal(t, positions, gotPos)
	require.Equal(t, colors, gotColors)
}

// ==============================================================================
// Encoder Validation Tests
// ==============================================================================

func TestEncodeNilInputs(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	_, colors := randomCloud(10)
	positions, _ := randomCloud(10)

	data, err := encoder.Encode(nil, colors)
	require.ErrorIs(t, err, errs.ErrNilInput)
	require.Nil(t, data)

	data, err = encoder.Encode(positions, nil)
	require.ErrorIs(t, err, errs.ErrNilInput)
	require.Nil(t, data)
}

func TestEncodeInvalidPointCount(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.Encode([]float32{1, 2, 3, 4}, []uint8{1, 2, 3, 4})
	require.ErrorIs(t, err, errs.ErrInvalidPointCount)
	require.Nil(t, data)
}

func TestEncodeLengthMismatch(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.Encode([]float32{1, 2, 3}, []uint8{1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
	require.Nil(t, data)
}

func TestNewEncoderInvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithPositionQuantization(0))
	require.ErrorIs(t, err, errs.ErrInvalidQuantBits)

	_, err = NewEncoder(WithPositionQuantization(17))
	require.ErrorIs(t, err, errs.ErrInvalidQuantBits)

	_, err = NewEncoder(WithPositionEncoding(format.EncodingType(0x9)))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = NewEncoder(WithPositionCompression(format.CompressionType(0x9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

// ==============================================================================
// Decoder Failure Tests
// ==============================================================================

func encodeValid(t *testing.T, n int) []byte {
	t.Helper()

	positions, colors := randomCloud(n)
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.Encode(positions, colors)
	require.NoError(t, err)

	return data
}

func TestDecodeTooShort(t *testing.T) {
	pc, err := Decode([]byte{0x10, 0xDC})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	require.Nil(t, pc)
}

func TestDecodeBadMagic(t *testing.T) {
	data := encodeValid(t, 10)
	data[1] ^= 0xFF // clobber the magic bits of the options word

	pc, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
	require.Nil(t, pc)
}

func TestDecodeMissingColorAttribute(t *testing.T) {
	data := encodeValid(t, 10)
	data[0] &^= section.ColorMask // clear the color presence bit

	pc, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrMissingColor)
	require.Nil(t, pc)
}

func TestDecodeMissingPositionAttribute(t *testing.T) {
	data := encodeValid(t, 10)
	data[0] &^= section.PositionMask

	pc, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrMissingPosition)
	require.Nil(t, pc)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data := encodeValid(t, 50)
	data[section.HeaderSize] ^= 0xFF // corrupt the first payload byte

	pc, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	require.Nil(t, pc)
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data := encodeValid(t, 50)

	pc, err := Decode(data[:len(data)-5])
	require.ErrorIs(t, err, errs.ErrPayloadTruncated)
	require.Nil(t, pc)
}

func TestDecodeHeaderOnlyWithDeclaredPayload(t *testing.T) {
	data := encodeValid(t, 50)

	pc, err := Decode(data[:section.HeaderSize])
	require.ErrorIs(t, err, errs.ErrPayloadTruncated)
	require.Nil(t, pc)
}

// ==============================================================================
// Result Ownership Tests
// ==============================================================================

func TestDecodeResultDoesNotAliasInput(t *testing.T) {
	positions := []float32{1, 2, 3}
	colors := []uint8{10, 20, 30}

	encoder, err := NewEncoder(
		WithPositionCompression(format.CompressionNone),
		WithColorCompression(format.CompressionNone))
	require.NoError(t, err)

	data, err := encoder.Encode(positions, colors)
	require.NoError(t, err)

	pc, err := Decode(data)
	require.NoError(t, err)

	// Corrupting the encoded buffer afterwards must not affect the result.
	for i := section.HeaderSize; i < len(data); i++ {
		data[i] = 0xAA
	}
	require.Equal(t, []uint8{10, 20, 30}, pc.Colors)
}

func TestEncoderReuse(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	for pass := 0; pass < 3; pass++ {
		positions, colors := randomCloud(20)
		data, err := encoder.Encode(positions, colors)
		require.NoError(t, err)

		pc, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, colors, pc.Colors)
	}
}

func TestHeaderReflectsOptions(t *testing.T) {
	positions, colors := randomCloud(10)

	encoder, err := NewEncoder(
		WithPositionQuantization(14),
		WithPositionCompression(format.CompressionLZ4),
		WithColorCompression(format.CompressionSnappy),
		WithColorsNormalized(false))
	require.NoError(t, err)

	data, err := encoder.Encode(positions, colors)
	require.NoError(t, err)

	header, err := section.ParseCloudHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint8(14), header.QuantBits)
	require.Equal(t, format.CompressionLZ4, header.Flag.PositionCompression())
	require.Equal(t, format.CompressionSnappy, header.Flag.ColorCompression())
	require.False(t, header.Flag.ColorsNormalized())
	require.Equal(t, uint32(10), header.PointCount)
}
