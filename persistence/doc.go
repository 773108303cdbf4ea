// Package persistence provides binary serialization for fitted canopy
// models.
//
// A model snapshot is a single self-describing artifact: a fixed header
// (magic, format version, metric code, center count, dimensionality,
// compression type, payload checksum) followed by the center matrix as raw
// little-endian float64 rows, optionally LZ4- or Zstd-compressed.
//
// Snapshots are written once by a completed fit and read eagerly; the
// format favors simplicity and integrity checking over random access.
package persistence
