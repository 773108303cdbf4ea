package persistence

import "errors"

const (
	// MagicNumber identifies canopy model snapshot files (ASCII: "CNP1").
	MagicNumber = 0x434E5031
	// Version is the current snapshot format version.
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("persistence: invalid magic number")
	ErrInvalidVersion     = errors.New("persistence: unsupported version")
	ErrChecksumMismatch   = errors.New("persistence: payload checksum mismatch")
	ErrInvalidCompression = errors.New("persistence: unknown compression type")
	ErrTruncated          = errors.New("persistence: truncated snapshot")
)

// FileHeader is the fixed-size header at the start of every model snapshot.
type FileHeader struct {
	Magic       uint32 // 0x434E5031 ("CNP1")
	Version     uint32 // Snapshot format version
	Metric      uint32 // distance.Metric code
	Compression uint8  // CompressionType of the payload
	Padding1    [3]byte
	CenterCount uint64 // Number of canopy centers
	Dimension   uint32 // Center dimensionality
	Checksum    uint32 // CRC32 (IEEE) of the stored payload bytes
	Reserved    [8]byte
}
