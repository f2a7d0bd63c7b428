package codec

import (
	"fmt"

	"github.com/pointstream/pccodec/compress"
	"github.com/pointstream/pccodec/endian"
	"github.com/pointstream/pccodec/errs"
	"github.com/pointstream/pccodec/format"
	"github.com/pointstream/pccodec/internal/options"
	"github.com/pointstream/pccodec/section"
)

// EncoderConfig holds the validated configuration shared by encoder instances.
//
// This struct separates configuration handling from the encoding logic, so
// the Encoder can focus on payload construction.
type EncoderConfig struct {
	flag   section.CloudFlag
	bits   uint8
	engine endian.EndianEngine

	posCodec   compress.Codec
	colorCodec compress.Codec
}

// newEncoderConfig creates an EncoderConfig with default settings: quantized
// positions at 11 bits, normalized colors, zstd compression for both
// payloads, little-endian byte order.
func newEncoderConfig() *EncoderConfig {
	flag := section.NewCloudFlag()

	return &EncoderConfig{
		flag:   flag,
		bits:   section.DefaultQuantBits,
		engine: flag.GetEndianEngine(),
	}
}

// setPositionEncoding sets the position encoding type.
func (c *EncoderConfig) setPositionEncoding(enc format.EncodingType) error {
	switch enc {
	case format.EncodingRaw, format.EncodingQuantized:
		c.flag.SetPositionEncoding(enc)
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, enc)
	}
}

// setQuantBits sets the position quantization bit depth.
func (c *EncoderConfig) setQuantBits(bits uint8) error {
	if bits < section.MinQuantBits || bits > section.MaxQuantBits {
		return fmt.Errorf("%w: %d (must be %d to %d)",
			errs.ErrInvalidQuantBits, bits, section.MinQuantBits, section.MaxQuantBits)
	}
	c.bits = bits

	return nil
}

// setPositionCompression sets the compression type of the position payload.
func (c *EncoderConfig) setPositionCompression(comp format.CompressionType) error {
	if _, err := compress.GetCodec(comp); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
	}
	c.flag.SetPositionCompression(comp)

	return nil
}

// setColorCompression sets the compression type of the color payload.
func (c *EncoderConfig) setColorCompression(comp format.CompressionType) error {
	if _, err := compress.GetCodec(comp); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
	}
	c.flag.SetColorCompression(comp)

	return nil
}

// setCodecs resolves the compression codecs from the flag after all options
// have been applied.
func (c *EncoderConfig) setCodecs() error {
	posCodec, err := compress.CreateCodec(c.flag.PositionCompression(), "position")
	if err != nil {
		return err
	}

	colorCodec, err := compress.CreateCodec(c.flag.ColorCompression(), "color")
	if err != nil {
		return err
	}

	c.posCodec = posCodec
	c.colorCodec = colorCodec

	return nil
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian sets the encoder to use little-endian byte order.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithLittleEndian()
		c.engine = c.flag.GetEndianEngine()
	})
}

// WithBigEndian sets the encoder to use big-endian byte order.
// It rarely needs to be used unless interoperability with big-endian systems
// is required.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithBigEndian()
		c.engine = c.flag.GetEndianEngine()
	})
}

// WithPositionEncoding sets the position encoding type.
//
// EncodingQuantized (the default) snaps positions to a bounded grid;
// EncodingRaw keeps exact float32 values at the cost of a larger payload.
func WithPositionEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setPositionEncoding(enc)
	})
}

// WithPositionQuantization sets the quantization bit depth for quantized
// position encoding. The default is 11 bits. Has no effect on raw encoding.
func WithPositionQuantization(bits uint8) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setQuantBits(bits)
	})
}

// WithPositionCompression sets the compression type for the position payload.
func WithPositionCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setPositionCompression(comp)
	})
}

// WithColorCompression sets the compression type for the color payload.
func WithColorCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setColorCompression(comp)
	})
}

// WithColorsNormalized marks the color channel as normalized uint8 values.
// Enabled by default; the flag is informational and carried in the header
// for consumers that distinguish normalized from raw integer colors.
func WithColorsNormalized(normalized bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.SetColorsNormalized(normalized)
	})
}
