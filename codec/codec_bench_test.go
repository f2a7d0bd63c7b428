package codec

import (
	"testing"

	"github.com/pointstream/pccodec/format"
)

func benchmarkEncode(b *testing.B, n int, opts ...EncoderOption) {
	positions, colors := randomCloud(n)
	encoder, err := NewEncoder(opts...)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := encoder.Encode(positions, colors); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeQuantizedZstd10k(b *testing.B) {
	benchmarkEncode(b, 10_000)
}

func BenchmarkEncodeQuantizedSnappy10k(b *testing.B) {
	benchmarkEncode(b, 10_000,
		WithPositionCompression(format.CompressionSnappy),
		WithColorCompression(format.CompressionSnappy))
}

func BenchmarkEncodeRawZstd10k(b *testing.B) {
	benchmarkEncode(b, 10_000, WithPositionEncoding(format.EncodingRaw))
}

func BenchmarkDecodeQuantizedZstd10k(b *testing.B) {
	positions, colors := randomCloud(10_000)
	encoder, err := NewEncoder()
	if err != nil {
		b.Fatal(err)
	}
	data, err := encoder.Encode(positions, colors)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
