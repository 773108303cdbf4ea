package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, Dot([]float64{1, 2, 3}, []float64{3, 1, 2}))
	assert.Equal(t, 0.0, Dot(nil, nil))
}

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, 25.0, SquaredL2([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 0.0, SquaredL2([]float64{1, 2}, []float64{1, 2}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm([]float64{3, 4}))
	assert.Equal(t, 0.0, Norm([]float64{0, 0}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7.0, Manhattan([]float64{1, -2, 3}, []float64{4, 2, 3}))
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 4.0, Chebyshev([]float64{1, -2, 3}, []float64{4, 2, 3}))
	assert.Equal(t, 0.0, Chebyshev([]float64{5}, []float64{5}))
}
