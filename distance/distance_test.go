package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathyasri1/mahout/vector"
)

func sparse(t *testing.T, n int, idx []int, val []float64) vector.Sparse {
	t.Helper()
	s, err := vector.NewSparse(n, idx, val)
	require.NoError(t, err)
	return s
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
	assert.Equal(t, "Manhattan", MetricManhattan.String())
	assert.Equal(t, "Cosine", MetricCosine.String())
	assert.Equal(t, "Chebyshev", MetricChebyshev.String())
	assert.Equal(t, "Tanimoto", MetricTanimoto.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}

func TestParse(t *testing.T) {
	m, err := Parse("euclidean")
	require.NoError(t, err)
	assert.Equal(t, MetricEuclidean, m)

	m, err = Parse("Cosine")
	require.NoError(t, err)
	assert.Equal(t, MetricCosine, m)

	_, err = Parse("mahalanobis")
	assert.Error(t, err)
}

func TestFromCode(t *testing.T) {
	m, err := FromCode(3)
	require.NoError(t, err)
	assert.Equal(t, MetricCosine, m)

	_, err = FromCode(99)
	assert.Error(t, err)

	_, err = FromCode(1.5)
	assert.Error(t, err)

	_, err = FromCode(-1)
	assert.Error(t, err)
}

func TestProvider_Unknown(t *testing.T) {
	_, err := Provider(Metric(999))
	assert.Error(t, err)
}

func TestEuclidean(t *testing.T) {
	a := vector.Dense{0, 0}
	b := vector.Dense{3, 4}

	assert.Equal(t, 5.0, Euclidean(a, b))
	assert.Equal(t, 25.0, SquaredL2(a, b))
}

func TestManhattan(t *testing.T) {
	a := vector.Dense{1, -2, 3}
	b := vector.Dense{4, 2, 3}

	assert.Equal(t, 7.0, Manhattan(a, b))
}

func TestChebyshev(t *testing.T) {
	a := vector.Dense{1, -2, 3}
	b := vector.Dense{4, 2, 3}

	assert.Equal(t, 4.0, Chebyshev(a, b))
}

func TestCosine(t *testing.T) {
	// Parallel vectors: distance 0.
	assert.InDelta(t, 0, Cosine(vector.Dense{1, 0}, vector.Dense{5, 0}), 1e-12)
	// Orthogonal vectors: distance 1.
	assert.InDelta(t, 1, Cosine(vector.Dense{1, 0}, vector.Dense{0, 3}), 1e-12)
	// Opposite vectors: distance 2.
	assert.InDelta(t, 2, Cosine(vector.Dense{1, 0}, vector.Dense{-2, 0}), 1e-12)
	// Zero-norm operand: maximally far, not an error.
	assert.Equal(t, 1.0, Cosine(vector.Dense{0, 0}, vector.Dense{1, 1}))
}

func TestTanimoto(t *testing.T) {
	// Identical vectors: distance 0.
	assert.InDelta(t, 0, Tanimoto(vector.Dense{1, 2}, vector.Dense{1, 2}), 1e-12)
	// Disjoint support: distance 1.
	assert.InDelta(t, 1, Tanimoto(vector.Dense{1, 0}, vector.Dense{0, 1}), 1e-12)
	// Both zero: distance 0 by convention.
	assert.Equal(t, 0.0, Tanimoto(vector.Dense{0, 0}, vector.Dense{0, 0}))
}

// Sparse and mixed representations agree with the dense kernels.
func TestKernels_RepresentationEquivalence(t *testing.T) {
	da := vector.Dense{1, 0, 2, 0, 3}
	db := vector.Dense{0, 4, 0, 0, 1}
	sa := sparse(t, 5, []int{0, 2, 4}, []float64{1, 2, 3})
	sb := sparse(t, 5, []int{1, 4}, []float64{4, 1})

	fns := map[string]Func{
		"SquaredL2": SquaredL2,
		"Euclidean": Euclidean,
		"Manhattan": Manhattan,
		"Chebyshev": Chebyshev,
		"Cosine":    Cosine,
		"Tanimoto":  Tanimoto,
	}

	for name, fn := range fns {
		want := fn(da, db)
		assert.InDelta(t, want, fn(sa, sb), 1e-12, "%s sparse/sparse", name)
		assert.InDelta(t, want, fn(sa, db), 1e-12, "%s sparse/dense", name)
		assert.InDelta(t, want, fn(da, sb), 1e-12, "%s dense/sparse", name)
	}
}

func TestKernels_DimensionMismatchPanics(t *testing.T) {
	a := vector.Dense{1, 2}
	b := vector.Dense{1, 2, 3}

	assert.Panics(t, func() { SquaredL2(a, b) })
	assert.Panics(t, func() { Cosine(a, b) })
}

func TestKernels_NonNegative(t *testing.T) {
	a := vector.Dense{-1, 2, -3}
	b := vector.Dense{4, -5, 6}

	for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean, MetricManhattan, MetricCosine, MetricChebyshev, MetricTanimoto} {
		fn, err := Provider(m)
		require.NoError(t, err)
		d := fn(a, b)
		assert.GreaterOrEqual(t, d, 0.0, "%s", m)
		assert.False(t, math.IsNaN(d), "%s", m)
	}
}
