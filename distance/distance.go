package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/Sathyasri1/mahout/vector"
)

// Metric identifies a distance measure. The numeric values are part of the
// wire contract: they are embedded in broadcast parameter vectors and in
// persisted model snapshots, so they must never be renumbered.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricCosine
	MetricChebyshev
	MetricTanimoto
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricCosine:
		return "Cosine"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricTanimoto:
		return "Tanimoto"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Parse resolves a metric by its symbolic name (case-insensitive).
func Parse(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "euclidean":
		return MetricEuclidean, nil
	case "squaredeuclidean":
		return MetricSquaredEuclidean, nil
	case "manhattan":
		return MetricManhattan, nil
	case "cosine":
		return MetricCosine, nil
	case "chebyshev":
		return MetricChebyshev, nil
	case "tanimoto":
		return MetricTanimoto, nil
	default:
		return 0, fmt.Errorf("unknown distance measure: %q", name)
	}
}

// FromCode resolves a metric from its numeric code as carried inside a
// broadcast parameter vector.
func FromCode(code float64) (Metric, error) {
	m := Metric(int(code))
	if float64(int(code)) != code || !m.valid() {
		return 0, fmt.Errorf("unknown distance measure code: %v", code)
	}
	return m, nil
}

func (m Metric) valid() bool {
	return m >= MetricEuclidean && m <= MetricTanimoto
}

// Func is a function type for distance calculation between two row vectors.
// Implementations panic on dimensionality mismatch: that is a contract
// violation by the caller, not a recoverable runtime condition.
type Func func(a, b vector.Vector) float64

// Provider returns the distance function for the given metric.
// An unknown metric is a configuration error and is surfaced here.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricTanimoto:
		return Tanimoto, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b vector.Vector) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Cosine calculates the cosine distance (1 - cosine similarity).
// If either operand has zero norm the distance is 1 (maximally far).
func Cosine(a, b vector.Vector) float64 {
	checkDims(a, b)

	dot := dot(a, b)
	na := math.Sqrt(selfDot(a))
	nb := math.Sqrt(selfDot(b))

	// Avoid division by zero
	if na == 0 || nb == 0 {
		return 1
	}

	return 1 - dot/(na*nb)
}

// Tanimoto calculates the Tanimoto distance
// (1 - dot / (|a|^2 + |b|^2 - dot)).
func Tanimoto(a, b vector.Vector) float64 {
	checkDims(a, b)

	dot := dot(a, b)
	denom := selfDot(a) + selfDot(b) - dot
	if denom == 0 {
		return 0
	}

	return 1 - dot/denom
}

func checkDims(a, b vector.Vector) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("distance: dimension mismatch: %d vs %d", a.Len(), b.Len()))
	}
}
