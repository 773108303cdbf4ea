package mahout

import (
	"context"
	"io"
	"time"

	"github.com/Sathyasri1/mahout/blockmat"
	"github.com/Sathyasri1/mahout/canopy"
	"github.com/Sathyasri1/mahout/codec"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/persistence"
	"github.com/Sathyasri1/mahout/vector"
)

// CanopyClusterer is the configured entry point for canopy fitting.
// It wraps the canopy driver with validation, logging and metrics.
// Safe for concurrent use; each Fit is independent.
type CanopyClusterer struct {
	params      canopy.Params
	parallelism int
	codec       codec.Codec
	logger      *Logger
	metrics     MetricsCollector
}

// NewCanopyClusterer creates a clusterer from the given options.
// Threshold pairs are validated here: a pair with tight > loose, or any
// non-finite or negative threshold, is rejected before any data is touched.
func NewCanopyClusterer(optFns ...Option) (*CanopyClusterer, error) {
	o := applyOptions(optFns)
	if o.metricErr != nil {
		return nil, o.metricErr
	}

	params := canopy.Params{
		T1:     o.t1,
		T2:     o.t2,
		T3:     o.t1,
		T4:     o.t2,
		Metric: o.metric,
	}
	if o.t3 != nil {
		params.T3 = *o.t3
	}
	if o.t4 != nil {
		params.T4 = *o.t4
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &CanopyClusterer{
		params:      params,
		parallelism: o.parallelism,
		codec:       o.codec,
		logger:      o.logger,
		metrics:     o.metrics,
	}, nil
}

// Params returns the validated fit hyperparameters.
func (c *CanopyClusterer) Params() canopy.Params { return c.params }

// Fit runs the two-phase canopy fit over the partitioned input and returns
// the fitted model. Failures propagate unretried; a failed fit yields no
// model.
func (c *CanopyClusterer) Fit(ctx context.Context, m *blockmat.Matrix) (*CanopyModel, error) {
	start := time.Now()

	driver := &canopy.Clusterer{
		Params:      c.params,
		Parallelism: c.parallelism,
		Codec:       c.codec,
	}
	model, err := driver.Fit(ctx, m)

	partitions := 0
	if m != nil {
		partitions = m.NumBlocks()
	}
	centers := 0
	if model != nil {
		centers = model.NumCenters()
	}
	c.metrics.RecordFit(partitions, time.Since(start), err)
	c.logger.LogFit(ctx, partitions, centers, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return &CanopyModel{
		model:       model,
		parallelism: c.parallelism,
		codec:       c.codec,
		logger:      c.logger,
		metrics:     c.metrics,
	}, nil
}

// CanopyModel is a fitted model bound to the clusterer's execution options.
// Read-only; a new fit produces a new model.
type CanopyModel struct {
	model       *canopy.Model
	parallelism int
	codec       codec.Codec
	logger      *Logger
	metrics     MetricsCollector
}

// Assign labels every row of data with the index of its nearest center in
// [0, NumCenters). Ties keep the lower center index.
func (m *CanopyModel) Assign(ctx context.Context, data *blockmat.Matrix) ([]int, error) {
	start := time.Now()
	labels, err := m.model.AssignWith(ctx, data, m.parallelism, m.codec)
	m.metrics.RecordAssign(len(labels), time.Since(start), err)
	m.logger.LogAssign(ctx, len(labels), m.model.NumCenters(), time.Since(start), err)
	return labels, err
}

// Membership groups the rows behind a label column by canopy.
func (m *CanopyModel) Membership(labels []int) (*canopy.Membership, error) {
	return canopy.NewMembership(labels, m.model.NumCenters())
}

// Centers returns the center matrix in discovery order (read-only).
func (m *CanopyModel) Centers() []vector.Vector { return m.model.Centers() }

// NumCenters returns the number of canopy centers.
func (m *CanopyModel) NumCenters() int { return m.model.NumCenters() }

// Metric returns the distance measure the model was fitted under.
func (m *CanopyModel) Metric() distance.Metric { return m.model.Metric() }

// Summary returns a human-readable description of the fitted model.
func (m *CanopyModel) Summary() string { return m.model.Summary() }

// Model returns the underlying canopy model, e.g. for persistence.
func (m *CanopyModel) Model() *canopy.Model { return m.model }

// Save writes the model as a binary snapshot to w.
func (m *CanopyModel) Save(w io.Writer, compression persistence.CompressionType) error {
	return persistence.WriteModel(w, m.model, compression)
}

// LoadModel reads a model snapshot and binds it to the given options, so
// assignment can run in a process that never saw the fit.
func LoadModel(r io.Reader, optFns ...Option) (*CanopyModel, error) {
	o := applyOptions(optFns)
	if o.metricErr != nil {
		return nil, o.metricErr
	}

	model, err := persistence.ReadModel(r)
	if err != nil {
		return nil, err
	}

	return &CanopyModel{
		model:       model,
		parallelism: o.parallelism,
		codec:       o.codec,
		logger:      o.logger,
		metrics:     o.metrics,
	}, nil
}
