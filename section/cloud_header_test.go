package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
)

func testHeader() *CloudHeader {
	h := NewCloudHeader()
	h.PointCount = 1234
	h.QuantBits = 11
	h.Origin = [3]float32{-1.5, 2.25, 0}
	h.Range = 42.5
	h.PositionPayloadSize = 7404
	h.ColorPayloadSize = 3702
	h.Checksum = 0xDEADBEEFCAFEF00D

	return h
}

func TestCloudHeaderRoundTrip(t *testing.T) {
	h := testHeader()

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseCloudHeader(data)
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
}

func TestCloudHeaderRoundTripBigEndian(t *testing.T) {
	h := testHeader()
	h.Flag.WithBigEndian()

	parsed, err := ParseCloudHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
	require.False(t, parsed.Flag.IsLittleEndian())
}

func TestCloudHeaderInvalidSize(t *testing.T) {
	h := CloudHeader{}
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize-1)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)

	_, err := ParseCloudHeader(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestCloudHeaderBadMagic(t *testing.T) {
	data := testHeader().Bytes()
	data[1] ^= 0xF0

	_, err := ParseCloudHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestCloudHeaderInvalidEncoding(t *testing.T) {
	data := testHeader().Bytes()
	data[2] = 0x9

	_, err := ParseCloudHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestCloudHeaderInvalidCompression(t *testing.T) {
	data := testHeader().Bytes()
	data[3] = 0x0F // invalid position compression nibble

	_, err := ParseCloudHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	data = testHeader().Bytes()
	data[3] = (data[3] & 0x0F) | 0xF0 // invalid color compression nibble

	_, err = ParseCloudHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCloudFlagDefaults(t *testing.T) {
	flag := NewCloudFlag()

	require.Equal(t, uint16(MagicCloudV1Opt), flag.GetMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.True(t, flag.HasPosition())
	require.True(t, flag.HasColor())
	require.True(t, flag.ColorsNormalized())
	require.Equal(t, format.EncodingQuantized, flag.PositionEncoding())
	require.Equal(t, format.CompressionZstd, flag.PositionCompression())
	require.Equal(t, format.CompressionZstd, flag.ColorCompression())
	require.NoError(t, flag.Validate())
}

func TestCloudFlagBits(t *testing.T) {
	flag := NewCloudFlag()

	flag.SetHasColor(false)
	require.False(t, flag.HasColor())
	require.True(t, flag.HasPosition())

	flag.SetHasPosition(false)
	require.False(t, flag.HasPosition())

	flag.SetHasColor(true)
	flag.SetHasPosition(true)
	require.True(t, flag.HasColor())
	require.True(t, flag.HasPosition())

	flag.SetColorsNormalized(false)
	require.False(t, flag.ColorsNormalized())

	flag.WithBigEndian()
	require.False(t, flag.IsLittleEndian())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	// Flag bit churn must never disturb the magic number.
	require.Equal(t, uint16(MagicCloudV1Opt), flag.GetMagicNumber())
}

func TestCloudFlagCompressionNibbles(t *testing.T) {
	flag := NewCloudFlag()

	flag.SetPositionCompression(format.CompressionLZ4)
	flag.SetColorCompression(format.CompressionSnappy)

	require.Equal(t, format.CompressionLZ4, flag.PositionCompression())
	require.Equal(t, format.CompressionSnappy, flag.ColorCompression())

	// Setting one nibble must not clobber the other.
	flag.SetPositionCompression(format.CompressionNone)
	require.Equal(t, format.CompressionSnappy, flag.ColorCompression())
}
