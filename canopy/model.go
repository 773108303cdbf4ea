package canopy

import (
	"context"
	"fmt"
	"math"

	"github.com/Sathyasri1/mahout/blockmat"
	"github.com/Sathyasri1/mahout/broadcast"
	"github.com/Sathyasri1/mahout/codec"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

// Model is a fitted canopy model: the final center matrix plus the metric
// it was fitted under. Read-only after creation; a new fit produces a new
// model.
type Model struct {
	centers []vector.Vector
	metric  distance.Metric
}

// NewModel wraps a center matrix and metric into a model. The caller must
// not mutate centers afterwards.
func NewModel(centers []vector.Vector, metric distance.Metric) *Model {
	return &Model{centers: centers, metric: metric}
}

// Centers returns the center matrix in discovery order.
// The returned slice and its rows must be treated as read-only.
func (m *Model) Centers() []vector.Vector { return m.centers }

// NumCenters returns the number of canopy centers.
func (m *Model) NumCenters() int { return len(m.centers) }

// Metric returns the distance measure the model was fitted under.
func (m *Model) Metric() distance.Metric { return m.metric }

// Dim returns the center dimensionality, or 0 for an empty model.
func (m *Model) Dim() int {
	if len(m.centers) == 0 {
		return 0
	}
	return m.centers[0].Len()
}

// Summary returns a human-readable description of the fitted model.
// Informational only; nothing consumes it.
func (m *Model) Summary() string {
	return fmt.Sprintf("CanopyModel: centers=%d metric=%s dim=%d", len(m.centers), m.metric, m.Dim())
}

// centerPayload is the broadcast form of the model: centers materialized as
// dense rows plus the metric code.
type centerPayload struct {
	Centers [][]float64 `json:"centers"`
	Metric  int         `json:"metric"`
}

// Assign labels every row of data with the index of its nearest center,
// in [0, numCenters). The center matrix is broadcast once; each partition
// decodes its own read-only copy and scans rows independently. Ties keep
// the lower center index (strict less-than against the running minimum).
//
// The returned labels follow the row order of data. Assign uses default
// parallelism and codec; use AssignWith to override either.
func (m *Model) Assign(ctx context.Context, data *blockmat.Matrix) ([]int, error) {
	return m.AssignWith(ctx, data, 0, nil)
}

// AssignWith is Assign with explicit parallelism (zero means GOMAXPROCS)
// and broadcast codec (nil means codec.Default).
func (m *Model) AssignWith(ctx context.Context, data *blockmat.Matrix, parallelism int, c codec.Codec) ([]int, error) {
	if len(m.centers) == 0 {
		return nil, ErrNoCenters
	}
	if data == nil || data.Rows() == 0 {
		return nil, nil
	}

	payload := centerPayload{
		Centers: make([][]float64, len(m.centers)),
		Metric:  int(m.metric),
	}
	for i, c := range m.centers {
		payload.Centers[i] = vector.ToDense(c)
	}

	bv, err := broadcast.New(c, payload)
	if err != nil {
		return nil, err
	}

	blockLabels, err := blockmat.MapPartitions(ctx, data, parallelism, func(block []vector.Vector) ([]int, error) {
		p, err := bv.Value()
		if err != nil {
			return nil, err
		}
		metric, err := distance.FromCode(float64(p.Metric))
		if err != nil {
			return nil, err
		}
		dist, err := distance.Provider(metric)
		if err != nil {
			return nil, err
		}

		centers := make([]vector.Vector, len(p.Centers))
		for i, row := range p.Centers {
			centers[i] = vector.Dense(row)
		}

		dim := 0
		if len(centers) > 0 {
			dim = centers[0].Len()
		}

		labels := make([]int, len(block))
		for i, row := range block {
			if row.Len() != dim {
				return nil, &ErrDimensionMismatch{Expected: dim, Actual: row.Len()}
			}
			labels[i] = nearestCenter(row, centers, dist)
		}
		return labels, nil
	})
	if err != nil {
		return nil, err
	}

	labels := make([]int, 0, data.Rows())
	for _, bl := range blockLabels {
		labels = append(labels, bl...)
	}
	return labels, nil
}

// nearestCenter scans all centers linearly and returns the index of the
// minimum-distance one. Strict less-than keeps the earlier index on ties.
func nearestCenter(row vector.Vector, centers []vector.Vector, dist distance.Func) int {
	best := 0
	minDist := math.Inf(1)
	for j, c := range centers {
		if d := dist(row, c); d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}
