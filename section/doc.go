// Package section defines the low-level binary structures and constants of
// the point cloud container format.
//
// It handles binary serialization and deserialization of the fixed-size
// header and its packed flag field, ensuring a consistent byte-level
// representation across platforms.
//
// # Container Structure
//
// An encoded point cloud consists of a fixed-size header followed by two
// variable-size payloads:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (48 bytes, fixed)                                 │
//	│  - Flag (4 bytes): magic/options/encoding/compression    │
//	│  - PointCount (4 bytes)                                  │
//	│  - QuantBits (1 byte) + reserved (3 bytes)               │
//	│  - Bounding box (16 bytes): origin 3x float32, range     │
//	│  - Payload sizes (8 bytes): positions, colors            │
//	│  - Checksum (8 bytes): xxHash64 of both payloads         │
//	│  - Reserved (4 bytes)                                    │
//	├──────────────────────────────────────────────────────────┤
//	│ Position payload (compressed, variable)                  │
//	├──────────────────────────────────────────────────────────┤
//	│ Color payload (compressed, variable)                     │
//	└──────────────────────────────────────────────────────────┘
//
// The flag's magic number (bits 4-15 of the options word) identifies the
// container and its version; decoders reject data whose magic does not
// match before touching any payload bytes.
package section
