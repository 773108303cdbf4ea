// Package testutil provides deterministic data generation for tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/Sathyasri1/mahout/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformVectors generates num dense vectors with coordinates in [0, 1).
func (r *RNG) UniformVectors(num, dim int) []vector.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector, num)
	for i := range out {
		row := make(vector.Dense, dim)
		for j := range row {
			row[j] = r.rand.Float64()
		}
		out[i] = row
	}
	return out
}

// ClusteredVectors generates perCluster dense vectors around each of the
// given cluster centers, jittered by a uniform offset in [-spread, spread)
// per coordinate. Rows are emitted cluster by cluster, in center order.
func (r *RNG) ClusteredVectors(centers [][]float64, perCluster int, spread float64) []vector.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			row := make(vector.Dense, len(c))
			for j := range row {
				row[j] = c[j] + (r.rand.Float64()*2-1)*spread
			}
			out = append(out, row)
		}
	}
	return out
}
