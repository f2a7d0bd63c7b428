// Package sample reduces point clouds to a target size before encoding.
//
// Down-sampling trades fidelity for bitrate: a stream under pressure can
// encode an exact-count random subset, or partition one cloud into disjoint
// layers of decreasing share so receivers can drop the tail layers first.
package sample

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/pointstream/pccodec/cloud"
)

// ErrTargetTooLarge indicates the requested sample exceeds the input size.
var ErrTargetTooLarge = errors.New("target count exceeds input size")

// ErrInvalidPercentages indicates partition percentages outside 0-100 or
// summing above 100.
var ErrInvalidPercentages = errors.New("percentages must each be 0-100 and sum to at most 100")

// Indices selects exactly target indices out of n uniformly at random,
// returned in increasing order.
//
// Uses selection sampling: each index i is taken with probability
// remaining_slots / remaining_items, which yields an exact-count uniform
// sample in a single pass without shuffling.
func Indices(n, target int) ([]int, error) {
	if target > n {
		return nil, ErrTargetTooLarge
	}

	indices := make([]int, 0, target)
	slots := target
	remaining := n

	for i := 0; i < n && slots > 0; i++ {
		if rand.Float64()*float64(remaining) < float64(slots) {
			indices = append(indices, i)
			slots--
		}
		remaining--
	}

	return indices, nil
}

// Slice selects exactly target elements from data uniformly at random,
// preserving their relative order.
func Slice[T any](data []T, target int) ([]T, error) {
	indices, err := Indices(len(data), target)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, target)
	for _, i := range indices {
		out = append(out, data[i])
	}

	return out, nil
}

// Rate keeps each element of data independently with the given probability.
// The result size is binomially distributed around rate*len(data).
func Rate[T any](data []T, rate float64) []T {
	out := make([]T, 0, int(float64(len(data))*rate))
	for _, v := range data {
		if rand.Float64() < rate {
			out = append(out, v)
		}
	}

	return out
}

// Cloud returns a new point cloud holding exactly target points sampled
// uniformly from pc, preserving point order.
//
// Returns:
//   - *cloud.PointCloud: Sampled cloud with freshly allocated arrays.
//   - error: ErrTargetTooLarge if target exceeds the cloud size.
func Cloud(pc *cloud.PointCloud, target int) (*cloud.PointCloud, error) {
	indices, err := Indices(pc.NumPoints(), target)
	if err != nil {
		return nil, err
	}

	return gather(pc, indices), nil
}

// PartitionCloud splits pc into disjoint sub-clouds whose sizes follow the
// given percentages of the total point count.
//
// Each percentage must be 0-100 and their sum must not exceed 100; points
// left over when the sum is below 100 are simply unused. Assignment of
// points to buckets is random, but point order within each bucket follows
// the original cloud.
//
// Returns:
//   - []*cloud.PointCloud: One cloud per percentage, in the same order.
//   - error: ErrInvalidPercentages.
func PartitionCloud(pc *cloud.PointCloud, percentages []uint8) ([]*cloud.PointCloud, error) {
	sum := 0
	for _, p := range percentages {
		if p > 100 {
			return nil, ErrInvalidPercentages
		}
		sum += int(p)
	}
	if sum > 100 {
		return nil, ErrInvalidPercentages
	}

	n := pc.NumPoints()
	shuffled := rand.Perm(n)

	buckets := make([]*cloud.PointCloud, 0, len(percentages))
	offset := 0
	for _, pct := range percentages {
		take := int(pct) * n / 100
		indices := make([]int, take)
		copy(indices, shuffled[offset:offset+take])
		slices.Sort(indices)

		buckets = append(buckets, gather(pc, indices))
		offset += take
	}

	return buckets, nil
}

// gather builds a new cloud from the points at the given indices.
func gather(pc *cloud.PointCloud, indices []int) *cloud.PointCloud {
	out := cloud.New(len(indices))
	for _, i := range indices {
		x, y, z := pc.Position(i)
		r, g, b := pc.Color(i)
		out.Append(x, y, z, r, g, b)
	}

	return out
}
