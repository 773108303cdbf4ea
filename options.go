package mahout

import (
	"log/slog"

	"github.com/Sathyasri1/mahout/codec"
	"github.com/Sathyasri1/mahout/distance"
)

type options struct {
	t1          float64
	t2          float64
	t3          *float64
	t4          *float64
	metric      distance.Metric
	metricErr   error
	parallelism int
	codec       codec.Codec
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures a CanopyClusterer.
type Option func(*options)

// WithT1 sets the loose threshold of the map phase (default 0.5).
func WithT1(t1 float64) Option {
	return func(o *options) {
		o.t1 = t1
	}
}

// WithT2 sets the tight threshold of the map phase (default 0.1).
func WithT2(t2 float64) Option {
	return func(o *options) {
		o.t2 = t2
	}
}

// WithThresholds sets both map-phase thresholds at once: loose (T1) and
// tight (T2). Unless overridden via WithT3/WithT4, the reduce phase
// inherits the same pair.
func WithThresholds(loose, tight float64) Option {
	return func(o *options) {
		o.t1 = loose
		o.t2 = tight
	}
}

// WithT3 sets the loose threshold of the reduce phase (default: T1).
func WithT3(t3 float64) Option {
	return func(o *options) {
		o.t3 = &t3
	}
}

// WithT4 sets the tight threshold of the reduce phase (default: T2).
func WithT4(t4 float64) Option {
	return func(o *options) {
		o.t4 = &t4
	}
}

// WithMetric sets the distance measure (default Cosine).
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithDistanceMeasure sets the distance measure by its symbolic name
// (case-insensitive, e.g. "Euclidean"). An unknown name surfaces as an
// error from NewCanopyClusterer.
func WithDistanceMeasure(name string) Option {
	return func(o *options) {
		o.metric, o.metricErr = distance.Parse(name)
	}
}

// WithParallelism bounds the number of concurrently processed partitions
// during fit and assign. Zero or negative means GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithCodec configures the codec used for broadcast payloads.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		t1:      0.5,
		t2:      0.1,
		metric:  distance.MetricCosine,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
