// Package vector defines the row-vector types consumed by the clustering
// pipeline. Rows are either Dense (a plain float64 slice) or Sparse
// (sorted index/value pairs with a logical length).
//
// Vectors are treated as immutable by every consumer in this module: the
// canopy engine tracks consumption in its own state and never mutates or
// zeroes a row.
package vector

import (
	"fmt"
	"sort"
)

// Vector is a read-only row vector of fixed dimensionality.
type Vector interface {
	// Len returns the dimensionality of the vector.
	Len() int
	// At returns the value at index i. It panics if i is out of range.
	At(i int) float64
}

// Dense is a dense row vector backed by a float64 slice.
type Dense []float64

// Len returns the dimensionality of the vector.
func (d Dense) Len() int { return len(d) }

// At returns the value at index i.
func (d Dense) At(i int) float64 { return d[i] }

// Sparse is a sparse row vector: sorted indices with their values and a
// logical dimensionality. Entries not listed are zero.
type Sparse struct {
	n   int
	idx []int
	val []float64
}

// NewSparse creates a sparse vector of dimensionality n from index/value
// pairs. Indices need not be sorted; they must be unique and in [0, n).
func NewSparse(n int, indices []int, values []float64) (Sparse, error) {
	if len(indices) != len(values) {
		return Sparse{}, fmt.Errorf("vector: %d indices but %d values", len(indices), len(values))
	}

	idx := make([]int, len(indices))
	val := make([]float64, len(values))
	copy(idx, indices)
	copy(val, values)

	sort.Sort(&sparseSorter{idx: idx, val: val})

	for i, j := range idx {
		if j < 0 || j >= n {
			return Sparse{}, fmt.Errorf("vector: index %d out of range [0, %d)", j, n)
		}
		if i > 0 && idx[i-1] == j {
			return Sparse{}, fmt.Errorf("vector: duplicate index %d", j)
		}
	}

	return Sparse{n: n, idx: idx, val: val}, nil
}

// Len returns the dimensionality of the vector.
func (s Sparse) Len() int { return s.n }

// At returns the value at index i.
func (s Sparse) At(i int) float64 {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, s.n))
	}
	j := sort.SearchInts(s.idx, i)
	if j < len(s.idx) && s.idx[j] == i {
		return s.val[j]
	}
	return 0
}

// NNZ returns the number of explicitly stored entries.
func (s Sparse) NNZ() int { return len(s.idx) }

// Iterate calls fn for every explicitly stored entry in index order.
func (s Sparse) Iterate(fn func(i int, v float64)) {
	for k, i := range s.idx {
		fn(i, s.val[k])
	}
}

// Dense materializes the sparse vector as a Dense row.
func (s Sparse) Dense() Dense {
	d := make(Dense, s.n)
	for k, i := range s.idx {
		d[i] = s.val[k]
	}
	return d
}

// Clone returns a deep copy of v. Canopy centers are copies of the seed
// row, so later callers can hold them without aliasing the input matrix.
func Clone(v Vector) Vector {
	switch t := v.(type) {
	case Dense:
		out := make(Dense, len(t))
		copy(out, t)
		return out
	case Sparse:
		idx := make([]int, len(t.idx))
		val := make([]float64, len(t.val))
		copy(idx, t.idx)
		copy(val, t.val)
		return Sparse{n: t.n, idx: idx, val: val}
	default:
		out := make(Dense, v.Len())
		for i := range out {
			out[i] = v.At(i)
		}
		return out
	}
}

// ToDense returns v as a Dense row, copying if necessary.
func ToDense(v Vector) Dense {
	switch t := v.(type) {
	case Dense:
		out := make(Dense, len(t))
		copy(out, t)
		return out
	case Sparse:
		return t.Dense()
	default:
		out := make(Dense, v.Len())
		for i := range out {
			out[i] = v.At(i)
		}
		return out
	}
}

type sparseSorter struct {
	idx []int
	val []float64
}

func (s *sparseSorter) Len() int           { return len(s.idx) }
func (s *sparseSorter) Less(i, j int) bool { return s.idx[i] < s.idx[j] }
func (s *sparseSorter) Swap(i, j int) {
	s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
	s.val[i], s.val[j] = s.val[j], s.val[i]
}
