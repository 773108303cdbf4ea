package canopy

import (
	"context"
	"math"

	"github.com/Sathyasri1/mahout/blockmat"
	"github.com/Sathyasri1/mahout/broadcast"
	"github.com/Sathyasri1/mahout/codec"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

// Params holds the fit-time hyperparameters.
//
// T1/T2 are the loose/tight thresholds of the per-partition map phase,
// T3/T4 the loose/tight thresholds of the cross-partition reduce phase.
// The zero value is not usable; start from DefaultParams.
type Params struct {
	T1     float64
	T2     float64
	T3     float64
	T4     float64
	Metric distance.Metric
}

// DefaultParams returns the documented defaults: T1=0.5, T2=0.1, the reduce
// pair inheriting the map pair, and the Cosine measure.
func DefaultParams() Params {
	return Params{
		T1:     0.5,
		T2:     0.1,
		T3:     0.5,
		T4:     0.1,
		Metric: distance.MetricCosine,
	}
}

// Validate rejects non-finite or negative thresholds and any pair with
// tight > loose. The engine itself never checks the ordering; behavior
// under tight > loose is unspecified by the algorithm, so the configuration
// surface refuses it up front.
func (p Params) Validate() error {
	if !validPair(p.T1, p.T2) {
		return &ErrInvalidThresholds{Phase: "map", Loose: p.T1, Tight: p.T2}
	}
	if !validPair(p.T3, p.T4) {
		return &ErrInvalidThresholds{Phase: "reduce", Loose: p.T3, Tight: p.T4}
	}
	if _, err := distance.Provider(p.Metric); err != nil {
		return err
	}
	return nil
}

func validPair(loose, tight float64) bool {
	if math.IsNaN(loose) || math.IsInf(loose, 0) || loose < 0 {
		return false
	}
	if math.IsNaN(tight) || math.IsInf(tight, 0) || tight < 0 {
		return false
	}
	return tight <= loose
}

// paramSlots is the layout of the broadcast parameter vector:
// [T1, T2, T3, T4, metric code].
const paramSlots = 5

// Clusterer fits a canopy model over a partitioned input matrix.
type Clusterer struct {
	// Params are the fit hyperparameters. Validated on Fit.
	Params Params
	// Parallelism bounds the number of concurrently processed partitions.
	// Zero means GOMAXPROCS.
	Parallelism int
	// Codec serializes broadcast payloads. Nil means codec.Default.
	Codec codec.Codec
}

// Fit runs the two-phase fit: the engine once per partition with (T1, T2),
// then a pairwise tree reduction of the partial center matrices with
// (T3, T4). The thresholds and metric travel to the partition closures as a
// broadcast parameter vector.
//
// Fit does not retry: the first partition or merge failure cancels the rest
// and propagates. An input with zero rows yields ErrEmptyInput, never a
// model.
func (c *Clusterer) Fit(ctx context.Context, m *blockmat.Matrix) (*Model, error) {
	if err := c.Params.Validate(); err != nil {
		return nil, err
	}
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyInput
	}

	params, err := broadcast.New(c.Codec, []float64{
		c.Params.T1,
		c.Params.T2,
		c.Params.T3,
		c.Params.T4,
		float64(c.Params.Metric),
	})
	if err != nil {
		return nil, err
	}

	partials, err := blockmat.MapPartitions(ctx, m, c.Parallelism, func(block []vector.Vector) ([]vector.Vector, error) {
		p, dist, err := resolveParams(params)
		if err != nil {
			return nil, err
		}
		// Empty partition: empty center contribution, no greedy loop.
		return FormCanopies(block, dist, p[0], p[1]), nil
	})
	if err != nil {
		return nil, err
	}

	centers, err := blockmat.TreeReduce(ctx, partials, func(a, b []vector.Vector) ([]vector.Vector, error) {
		p, dist, err := resolveParams(params)
		if err != nil {
			return nil, err
		}
		merged := make([]vector.Vector, 0, len(a)+len(b))
		merged = append(merged, a...)
		merged = append(merged, b...)
		return FormCanopies(merged, dist, p[2], p[3]), nil
	})
	if err != nil {
		return nil, err
	}

	return NewModel(centers, c.Params.Metric), nil
}

func resolveParams(params *broadcast.Var[[]float64]) ([]float64, distance.Func, error) {
	p, err := params.Value()
	if err != nil {
		return nil, nil, err
	}
	metric, err := distance.FromCode(p[paramSlots-1])
	if err != nil {
		return nil, nil, err
	}
	dist, err := distance.Provider(metric)
	if err != nil {
		return nil, nil, err
	}
	return p, dist, nil
}
