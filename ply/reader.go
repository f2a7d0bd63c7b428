package ply

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pointstream/pccodec/cloud"
	"github.com/pointstream/pccodec/errs"
)

// Reader errors.
var (
	// ErrInvalidHeader indicates a missing or malformed PLY header.
	ErrInvalidHeader = errors.New("invalid ply header")

	// ErrUnsupportedFormat indicates a PLY format other than ascii 1.0.
	ErrUnsupportedFormat = errors.New("unsupported ply format")
)

// vertexProps tracks column indices of the required vertex properties.
type vertexProps struct {
	x, y, z    int
	r, g, b    int
	totalProps int
}

func newVertexProps() vertexProps {
	return vertexProps{x: -1, y: -1, z: -1, r: -1, g: -1, b: -1}
}

// validate requires all six properties, mapping absences onto the codec's
// attribute errors: a cloud without positions or colors is a hard failure.
func (p vertexProps) validate() error {
	if p.x < 0 || p.y < 0 || p.z < 0 {
		return errs.ErrMissingPosition
	}
	if p.r < 0 || p.g < 0 || p.b < 0 {
		return errs.ErrMissingColor
	}

	return nil
}

// Read parses an ASCII PLY file from r into a point cloud.
//
// The file must declare a "vertex" element with x/y/z and red/green/blue
// properties; additional properties are tolerated and skipped. Elements
// other than vertex are ignored.
//
// Returns:
//   - *cloud.PointCloud: Parsed cloud with freshly allocated arrays.
//   - error: ErrInvalidHeader, ErrUnsupportedFormat, errs.ErrMissingPosition,
//     errs.ErrMissingColor, or a parse error describing the offending line.
func Read(r io.Reader) (*cloud.PointCloud, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, ErrInvalidHeader
	}

	var (
		vertexCount  = -1
		props        = newVertexProps()
		inVertex     bool
		formatSeen   bool
		headerClosed bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "comment") {
			continue
		}
		if line == "end_header" {
			headerClosed = true
			break
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "format":
			if len(fields) < 3 || fields[1] != "ascii" || fields[2] != "1.0" {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, line)
			}
			formatSeen = true
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: %s", ErrInvalidHeader, line)
			}
			inVertex = fields[1] == "vertex"
			if inVertex {
				n, err := strconv.Atoi(fields[2])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: bad vertex count %q", ErrInvalidHeader, fields[2])
				}
				vertexCount = n
			}
		case "property":
			if !inVertex || len(fields) < 3 {
				continue
			}
			switch fields[len(fields)-1] {
			case "x":
				props.x = props.totalProps
			case "y":
				props.y = props.totalProps
			case "z":
				props.z = props.totalProps
			case "red":
				props.r = props.totalProps
			case "green":
				props.g = props.totalProps
			case "blue":
				props.b = props.totalProps
			}
			props.totalProps++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerClosed || !formatSeen || vertexCount < 0 {
		return nil, ErrInvalidHeader
	}
	if err := props.validate(); err != nil {
		return nil, err
	}

	pc := cloud.New(vertexCount)
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %d of %d vertices", errs.ErrPayloadTruncated, i, vertexCount)
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < props.totalProps {
			return nil, fmt.Errorf("vertex %d: expected %d properties, got %d", i, props.totalProps, len(fields))
		}

		x, err := parseFloat(fields[props.x])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		y, err := parseFloat(fields[props.y])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		z, err := parseFloat(fields[props.z])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		r, err := parseUchar(fields[props.r])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		g, err := parseUchar(fields[props.g])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		b, err := parseUchar(fields[props.b])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}

		pc.Append(x, y, z, r, g, b)
	}

	return pc, nil
}

// Unmarshal parses an ASCII PLY file from a byte slice. See Read.
func Unmarshal(data []byte) (*cloud.PointCloud, error) {
	return Read(bytes.NewReader(data))
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}

	return float32(v), nil
}

func parseUchar(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}

	return uint8(v), nil
}
