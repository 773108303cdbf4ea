package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	d := Dense{1, 2, 3}

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2.0, d.At(1))
}

func TestNewSparse(t *testing.T) {
	// Unsorted input is accepted and ordered internally.
	s, err := NewSparse(5, []int{4, 0, 2}, []float64{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 3, s.NNZ())
	assert.Equal(t, 1.0, s.At(0))
	assert.Equal(t, 0.0, s.At(1))
	assert.Equal(t, 2.0, s.At(2))
	assert.Equal(t, 3.0, s.At(4))
}

func TestNewSparse_Errors(t *testing.T) {
	_, err := NewSparse(3, []int{0, 1}, []float64{1})
	assert.Error(t, err, "length mismatch")

	_, err = NewSparse(3, []int{3}, []float64{1})
	assert.Error(t, err, "index out of range")

	_, err = NewSparse(3, []int{-1}, []float64{1})
	assert.Error(t, err, "negative index")

	_, err = NewSparse(3, []int{1, 1}, []float64{1, 2})
	assert.Error(t, err, "duplicate index")
}

func TestNewSparse_DoesNotAliasInput(t *testing.T) {
	idx := []int{0, 1}
	val := []float64{1, 2}

	s, err := NewSparse(2, idx, val)
	require.NoError(t, err)

	val[0] = 99
	assert.Equal(t, 1.0, s.At(0))
}

func TestSparse_AtPanicsOutOfRange(t *testing.T) {
	s, err := NewSparse(2, []int{0}, []float64{1})
	require.NoError(t, err)

	assert.Panics(t, func() { s.At(2) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestSparse_Iterate(t *testing.T) {
	s, err := NewSparse(6, []int{5, 1, 3}, []float64{50, 10, 30})
	require.NoError(t, err)

	var gotIdx []int
	var gotVal []float64
	s.Iterate(func(i int, v float64) {
		gotIdx = append(gotIdx, i)
		gotVal = append(gotVal, v)
	})

	assert.Equal(t, []int{1, 3, 5}, gotIdx)
	assert.Equal(t, []float64{10, 30, 50}, gotVal)
}

func TestSparse_Dense(t *testing.T) {
	s, err := NewSparse(4, []int{0, 3}, []float64{1, 4})
	require.NoError(t, err)

	assert.Equal(t, Dense{1, 0, 0, 4}, s.Dense())
}

func TestClone_Dense(t *testing.T) {
	orig := Dense{1, 2}
	c := Clone(orig)

	orig[0] = 99
	assert.Equal(t, 1.0, c.At(0))
}

func TestClone_Sparse(t *testing.T) {
	s, err := NewSparse(3, []int{1}, []float64{7})
	require.NoError(t, err)

	c := Clone(s)
	cs, ok := c.(Sparse)
	require.True(t, ok, "sparse clones stay sparse")
	assert.Equal(t, 7.0, cs.At(1))
	assert.Equal(t, 3, cs.Len())
}

func TestToDense(t *testing.T) {
	s, err := NewSparse(3, []int{2}, []float64{5})
	require.NoError(t, err)

	assert.Equal(t, Dense{0, 0, 5}, ToDense(s))
	assert.Equal(t, Dense{1, 2}, ToDense(Dense{1, 2}))
}
