package cloud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointstream/pccodec/errs"
)

func TestFromArrays(t *testing.T) {
	pc, err := FromArrays([]float32{1, 2, 3, 4, 5, 6}, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 2, pc.NumPoints())

	x, y, z := pc.Position(1)
	require.Equal(t, float32(4), x)
	require.Equal(t, float32(5), y)
	require.Equal(t, float32(6), z)

	r, g, b := pc.Color(0)
	require.Equal(t, uint8(1), r)
	require.Equal(t, uint8(2), g)
	require.Equal(t, uint8(3), b)
}

func TestFromArraysNil(t *testing.T) {
	_, err := FromArrays(nil, []uint8{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrNilInput)

	_, err = FromArrays([]float32{1, 2, 3}, nil)
	require.ErrorIs(t, err, errs.ErrNilInput)
}

func TestFromArraysInvalidLengths(t *testing.T) {
	_, err := FromArrays([]float32{1, 2}, []uint8{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidPointCount)

	_, err = FromArrays([]float32{1, 2, 3}, []uint8{1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestAppendAndClone(t *testing.T) {
	pc := New(2)
	pc.Append(1, 2, 3, 10, 20, 30)
	pc.Append(4, 5, 6, 40, 50, 60)
	require.Equal(t, 2, pc.NumPoints())
	require.NoError(t, pc.Validate())

	dup := pc.Clone()
	require.Equal(t, pc.Positions, dup.Positions)
	require.Equal(t, pc.Colors, dup.Colors)

	dup.Positions[0] = 99
	dup.Colors[0] = 99
	require.Equal(t, float32(1), pc.Positions[0])
	require.Equal(t, uint8(10), pc.Colors[0])
}

func TestEmptyCloudIsValid(t *testing.T) {
	pc, err := FromArrays([]float32{}, []uint8{})
	require.NoError(t, err)
	require.Zero(t, pc.NumPoints())
}
