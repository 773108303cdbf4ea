package mahout

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// partitions is the number of input partitions, duration the total time
	// taken, err nil on success.
	RecordFit(partitions int, duration time.Duration, err error)

	// RecordAssign is called after each assignment operation.
	// rows is the number of labeled rows.
	RecordAssign(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordAssign(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount         atomic.Int64
	FitErrors        atomic.Int64
	FitTotalNanos    atomic.Int64
	AssignCount      atomic.Int64
	AssignErrors     atomic.Int64
	AssignRows       atomic.Int64
	AssignTotalNanos atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(partitions int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(rows int, duration time.Duration, err error) {
	b.AssignCount.Add(1)
	b.AssignRows.Add(int64(rows))
	b.AssignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AssignErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	FitCount       int64
	FitErrors      int64
	FitAvgNanos    int64
	AssignCount    int64
	AssignErrors   int64
	AssignRows     int64
	AssignAvgNanos int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		FitCount:     b.FitCount.Load(),
		FitErrors:    b.FitErrors.Load(),
		AssignCount:  b.AssignCount.Load(),
		AssignErrors: b.AssignErrors.Load(),
		AssignRows:   b.AssignRows.Load(),
	}
	if stats.FitCount > 0 {
		stats.FitAvgNanos = b.FitTotalNanos.Load() / stats.FitCount
	}
	if stats.AssignCount > 0 {
		stats.AssignAvgNanos = b.AssignTotalNanos.Load() / stats.AssignCount
	}
	return stats
}
