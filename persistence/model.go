package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/Sathyasri1/mahout/canopy"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

// WriteModel writes a fitted model snapshot to w. Sparse centers are
// materialized as dense rows; the snapshot always stores a dense matrix.
func WriteModel(w io.Writer, m *canopy.Model, compression CompressionType) error {
	if !compression.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}

	centers := m.Centers()
	dim := m.Dim()

	payload := make([]byte, 0, len(centers)*dim*8)
	for _, c := range centers {
		row := vector.ToDense(c)
		for _, v := range row {
			payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(v))
		}
	}

	stored, err := compressBlock(payload, compression)
	if err != nil {
		return err
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Metric:      uint32(m.Metric()),
		Compression: uint8(compression),
		CenterCount: uint64(len(centers)),
		Dimension:   uint32(dim),
		Checksum:    crc32.ChecksumIEEE(stored),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	_, err = w.Write(stored)
	return err
}

// ReadModel reads a model snapshot written by WriteModel. The header is
// validated (magic, version, checksum) before the payload is decoded;
// corruption surfaces as an error, never as a partially-loaded model.
func ReadModel(r io.Reader) (*canopy.Model, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}

	metric, err := distance.FromCode(float64(header.Metric))
	if err != nil {
		return nil, err
	}

	stored, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(stored) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	payload, err := decompressBlock(stored, CompressionType(header.Compression))
	if err != nil {
		return nil, err
	}

	count := int(header.CenterCount)
	dim := int(header.Dimension)
	if len(payload) != count*dim*8 {
		return nil, ErrTruncated
	}

	centers := make([]vector.Vector, count)
	for i := 0; i < count; i++ {
		row := make(vector.Dense, dim)
		for j := 0; j < dim; j++ {
			bits := binary.LittleEndian.Uint64(payload[(i*dim+j)*8:])
			row[j] = math.Float64frombits(bits)
		}
		centers[i] = row
	}

	return canopy.NewModel(centers, metric), nil
}
