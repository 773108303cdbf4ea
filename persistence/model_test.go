package persistence

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathyasri1/mahout/canopy"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

func testModel(t *testing.T) *canopy.Model {
	t.Helper()
	return canopy.NewModel([]vector.Vector{
		vector.Dense{0, 0, 0},
		vector.Dense{10, 10, 10},
		vector.Dense{-1.5, 2.25, 1e-9},
	}, distance.MetricEuclidean)
}

func TestWriteReadModel_RoundTrip(t *testing.T) {
	for _, comp := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(comp.String(), func(t *testing.T) {
			m := testModel(t)

			var buf bytes.Buffer
			require.NoError(t, WriteModel(&buf, m, comp))

			got, err := ReadModel(&buf)
			require.NoError(t, err)

			assert.Equal(t, m.NumCenters(), got.NumCenters())
			assert.Equal(t, m.Metric(), got.Metric())
			assert.Equal(t, m.Dim(), got.Dim())
			for i, c := range m.Centers() {
				assert.Equal(t, vector.ToDense(c), vector.ToDense(got.Centers()[i]))
			}
		})
	}
}

func TestWriteModel_SparseCentersStoredDense(t *testing.T) {
	s, err := vector.NewSparse(4, []int{1, 3}, []float64{5, 7})
	require.NoError(t, err)
	m := canopy.NewModel([]vector.Vector{s}, distance.MetricCosine)

	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, m, CompressionNone))

	got, err := ReadModel(&buf)
	require.NoError(t, err)

	require.Equal(t, 1, got.NumCenters())
	assert.Equal(t, vector.Dense{0, 5, 0, 7}, vector.ToDense(got.Centers()[0]))
	assert.Equal(t, distance.MetricCosine, got.Metric())
}

func TestWriteModel_InvalidCompression(t *testing.T) {
	var buf bytes.Buffer
	err := WriteModel(&buf, testModel(t), CompressionType(42))
	assert.ErrorIs(t, err, ErrInvalidCompression)
}

func TestReadModel_BadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, testModel(t), CompressionNone))

	data := buf.Bytes()
	data[0] ^= 0xFF

	_, err := ReadModel(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadModel_BadVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, testModel(t), CompressionNone))

	data := buf.Bytes()
	data[4] ^= 0xFF

	_, err := ReadModel(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestReadModel_CorruptedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, testModel(t), CompressionZSTD))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := ReadModel(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestReadModel_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, testModel(t), CompressionNone))

	_, err := ReadModel(bytes.NewReader(buf.Bytes()[:8]))
	assert.Error(t, err)
}

func TestCompressBlock_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Repetitive data compresses; the block must survive a round trip intact.
	block := bytes.Repeat([]byte("canopy"), 1024)
	// Random data may be stored uncompressed; that path round-trips too.
	noise := make([]byte, 4096)
	rng.Read(noise)

	for _, comp := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for name, data := range map[string][]byte{"repetitive": block, "noise": noise} {
			stored, err := compressBlock(data, comp)
			require.NoError(t, err, "%s %s", comp, name)

			got, err := decompressBlock(stored, comp)
			require.NoError(t, err, "%s %s", comp, name)
			assert.Equal(t, data, got, "%s %s", comp, name)
		}
	}
}

func TestCompressBlock_Compresses(t *testing.T) {
	block := bytes.Repeat([]byte("canopy"), 1024)

	for _, comp := range []CompressionType{CompressionLZ4, CompressionZSTD} {
		stored, err := compressBlock(block, comp)
		require.NoError(t, err)
		assert.Less(t, len(stored), len(block), "%s", comp)
	}
}
