// Package blockmat provides an in-process, horizontally partitioned row
// matrix: the input collection is split into contiguous blocks, each block
// is processed independently, and per-block results are combined by a
// pairwise tree reduction.
//
// This is the execution substrate for canopy fit and assign: MapPartitions
// covers the map phase, TreeReduce the reduce phase. The combine function
// handed to TreeReduce must tolerate being applied in any pairing order
// across the reduction tree.
package blockmat

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Sathyasri1/mahout/vector"
)

// ErrNoPartitions is returned when a reduction is attempted over zero
// partition results.
var ErrNoPartitions = errors.New("blockmat: no partitions to reduce")

// Matrix is a row matrix split into contiguous blocks. Blocks are immutable
// once constructed; no block is ever mutated by map or reduce operations.
type Matrix struct {
	blocks [][]vector.Vector
	rows   int
}

// New splits rows into numBlocks contiguous blocks of near-equal size.
// If numBlocks is not positive, one block per logical CPU is used. Blocks
// may be empty when there are fewer rows than blocks.
func New(rows []vector.Vector, numBlocks int) *Matrix {
	if numBlocks <= 0 {
		numBlocks = runtime.GOMAXPROCS(0)
	}

	blocks := make([][]vector.Vector, 0, numBlocks)
	n := len(rows)
	for i := 0; i < numBlocks; i++ {
		lo := i * n / numBlocks
		hi := (i + 1) * n / numBlocks
		blocks = append(blocks, rows[lo:hi])
	}

	return &Matrix{blocks: blocks, rows: n}
}

// FromBlocks wraps pre-partitioned blocks without copying.
func FromBlocks(blocks [][]vector.Vector) *Matrix {
	rows := 0
	for _, b := range blocks {
		rows += len(b)
	}
	return &Matrix{blocks: blocks, rows: rows}
}

// Rows returns the total number of rows across all blocks.
func (m *Matrix) Rows() int { return m.rows }

// NumBlocks returns the number of partitions.
func (m *Matrix) NumBlocks() int { return len(m.blocks) }

// Block returns partition i. The returned slice must not be mutated.
func (m *Matrix) Block(i int) []vector.Vector { return m.blocks[i] }

// MapPartitions applies fn to every block concurrently and returns one
// result per block, in block order. parallelism bounds the number of
// in-flight blocks; zero or negative means GOMAXPROCS. The first error
// cancels the remaining work and is returned.
func MapPartitions[T any](ctx context.Context, m *Matrix, parallelism int, fn func(block []vector.Vector) (T, error)) ([]T, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]T, m.NumBlocks())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := range m.blocks {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(m.blocks[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TreeReduce combines partition results pairwise until one remains.
// Each level pairs neighbors (an odd result carries over unchanged) and the
// pairs of a level run concurrently. The combine function sees results in
// a deterministic left-to-right pairing for a given partition count, but
// callers must not rely on any particular pairing: the contract is that of
// an associative combine, applied over an arbitrary binary tree.
func TreeReduce[T any](ctx context.Context, parts []T, combine func(a, b T) (T, error)) (T, error) {
	var zero T
	if len(parts) == 0 {
		return zero, ErrNoPartitions
	}

	level := parts
	for len(level) > 1 {
		next := make([]T, (len(level)+1)/2)

		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < len(level)-1; i += 2 {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				merged, err := combine(level[i], level[i+1])
				if err != nil {
					return err
				}
				next[i/2] = merged
				return nil
			})
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}

		if err := g.Wait(); err != nil {
			return zero, err
		}
		level = next
	}

	return level[0], nil
}
