package ply

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pointstream/pccodec/cloud"
)

// Write writes a point cloud to w as an ASCII PLY file with a single
// "vertex" element carrying x/y/z float and red/green/blue uchar properties.
func Write(w io.Writer, pc *cloud.PointCloud) error {
	if err := pc.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	bw.WriteString("ply\n")
	bw.WriteString("format ascii 1.0\n")
	bw.WriteString("element vertex ")
	bw.WriteString(strconv.Itoa(pc.NumPoints()))
	bw.WriteByte('\n')
	bw.WriteString("property float x\n")
	bw.WriteString("property float y\n")
	bw.WriteString("property float z\n")
	bw.WriteString("property uchar red\n")
	bw.WriteString("property uchar green\n")
	bw.WriteString("property uchar blue\n")
	bw.WriteString("end_header\n")

	// One vertex per line, properties in declaration order.
	var line []byte
	for i := 0; i < pc.NumPoints(); i++ {
		x, y, z := pc.Position(i)
		r, g, b := pc.Color(i)

		line = line[:0]
		line = appendFloat(line, x)
		line = append(line, ' ')
		line = appendFloat(line, y)
		line = append(line, ' ')
		line = appendFloat(line, z)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(r), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(g), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(b), 10)
		line = append(line, '\n')

		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Marshal encodes a point cloud as an ASCII PLY file and returns the bytes.
func Marshal(pc *cloud.PointCloud) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, pc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// appendFloat formats a float32 with the shortest representation that
// round-trips exactly.
func appendFloat(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}
