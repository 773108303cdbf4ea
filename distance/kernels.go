package distance

import (
	"math"

	"github.com/Sathyasri1/mahout/internal/floats"
	"github.com/Sathyasri1/mahout/vector"
)

// The kernels below dispatch on the concrete vector types: dense/dense pairs
// hit the flat float64 kernels, sparse/sparse pairs use merge walks over the
// stored entries, and mixed pairs fall back to an element-wise scan.

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vector.Vector) float64 {
	checkDims(a, b)

	if da, ok := a.(vector.Dense); ok {
		if db, ok := b.(vector.Dense); ok {
			return floats.SquaredL2(da, db)
		}
	}
	if sa, ok := a.(vector.Sparse); ok {
		if sb, ok := b.(vector.Sparse); ok {
			var sum float64
			sparseUnion(sa, sb, func(va, vb float64) {
				sum += (va - vb) * (va - vb)
			})
			return sum
		}
	}

	var sum float64
	for i := 0; i < a.Len(); i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b vector.Vector) float64 {
	checkDims(a, b)

	if da, ok := a.(vector.Dense); ok {
		if db, ok := b.(vector.Dense); ok {
			return floats.Manhattan(da, db)
		}
	}
	if sa, ok := a.(vector.Sparse); ok {
		if sb, ok := b.(vector.Sparse); ok {
			var sum float64
			sparseUnion(sa, sb, func(va, vb float64) {
				sum += math.Abs(va - vb)
			})
			return sum
		}
	}

	var sum float64
	for i := 0; i < a.Len(); i++ {
		sum += math.Abs(a.At(i) - b.At(i))
	}
	return sum
}

// Chebyshev calculates the L-infinity distance between two vectors.
func Chebyshev(a, b vector.Vector) float64 {
	checkDims(a, b)

	if da, ok := a.(vector.Dense); ok {
		if db, ok := b.(vector.Dense); ok {
			return floats.Chebyshev(da, db)
		}
	}
	if sa, ok := a.(vector.Sparse); ok {
		if sb, ok := b.(vector.Sparse); ok {
			var max float64
			sparseUnion(sa, sb, func(va, vb float64) {
				if d := math.Abs(va - vb); d > max {
					max = d
				}
			})
			return max
		}
	}

	var max float64
	for i := 0; i < a.Len(); i++ {
		if d := math.Abs(a.At(i) - b.At(i)); d > max {
			max = d
		}
	}
	return max
}

func dot(a, b vector.Vector) float64 {
	if da, ok := a.(vector.Dense); ok {
		if db, ok := b.(vector.Dense); ok {
			return floats.Dot(da, db)
		}
	}
	if sa, ok := a.(vector.Sparse); ok {
		if sb, ok := b.(vector.Sparse); ok {
			var sum float64
			sparseIntersect(sa, sb, func(va, vb float64) {
				sum += va * vb
			})
			return sum
		}
	}

	var sum float64
	for i := 0; i < a.Len(); i++ {
		sum += a.At(i) * b.At(i)
	}
	return sum
}

func selfDot(a vector.Vector) float64 {
	switch t := a.(type) {
	case vector.Dense:
		return floats.Dot(t, t)
	case vector.Sparse:
		var sum float64
		t.Iterate(func(_ int, v float64) {
			sum += v * v
		})
		return sum
	default:
		var sum float64
		for i := 0; i < a.Len(); i++ {
			v := a.At(i)
			sum += v * v
		}
		return sum
	}
}

// sparseUnion walks the union of stored indices of a and b in index order,
// passing the two values at each index (zero where absent).
func sparseUnion(a, b vector.Sparse, fn func(va, vb float64)) {
	ai, bi := sparseEntries(a), sparseEntries(b)
	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		switch {
		case ai[i].idx == bi[j].idx:
			fn(ai[i].val, bi[j].val)
			i++
			j++
		case ai[i].idx < bi[j].idx:
			fn(ai[i].val, 0)
			i++
		default:
			fn(0, bi[j].val)
			j++
		}
	}
	for ; i < len(ai); i++ {
		fn(ai[i].val, 0)
	}
	for ; j < len(bi); j++ {
		fn(0, bi[j].val)
	}
}

// sparseIntersect walks only the indices stored in both a and b.
func sparseIntersect(a, b vector.Sparse, fn func(va, vb float64)) {
	ai, bi := sparseEntries(a), sparseEntries(b)
	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		switch {
		case ai[i].idx == bi[j].idx:
			fn(ai[i].val, bi[j].val)
			i++
			j++
		case ai[i].idx < bi[j].idx:
			i++
		default:
			j++
		}
	}
}

type sparseEntry struct {
	idx int
	val float64
}

func sparseEntries(s vector.Sparse) []sparseEntry {
	out := make([]sparseEntry, 0, s.NNZ())
	s.Iterate(func(i int, v float64) {
		out = append(out, sparseEntry{idx: i, val: v})
	})
	return out
}
