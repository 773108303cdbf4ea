// Package distance provides the distance-measure registry used by canopy
// formation and nearest-center assignment.
//
// Every measure is identified by a Metric code that is stable across process
// boundaries, so a metric can be embedded as a plain numeric value inside a
// broadcast parameter vector and resolved again on the worker side.
//
// All measures return non-negative values where smaller means closer. Cosine
// is exposed as a distance (1 - similarity), not a similarity, so callers can
// run the same strict less-than nearest scan regardless of metric.
package distance
