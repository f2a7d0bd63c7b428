// Package ply reads and writes point clouds as ASCII PLY files.
//
// The writer emits a single "vertex" element with x/y/z float properties and
// red/green/blue uchar properties. The reader accepts any ASCII 1.0 PLY file
// whose vertex element carries those six properties, in any order and mixed
// with extra properties, which are skipped.
//
// PLY is the interchange format of the codec: lossless, self-describing and
// readable by standard point cloud tooling, at the cost of being far larger
// than the binary container.
package ply
