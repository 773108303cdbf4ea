// Package canopy implements canopy pre-clustering: a cheap, single-pass,
// greedy procedure that reduces an unbounded point collection to a small
// set of representative centers, suitable as a seeding step for a more
// expensive downstream clusterer.
//
// # Algorithm
//
// One engine pass walks the point pool in row order. The lowest-indexed
// available point becomes the next canopy's seed (its vector, verbatim, is
// the center - centers are never averaged). Every remaining available point
// within the tight threshold is absorbed; every one within the loose
// threshold becomes a loose member. Either way the point is consumed and can
// never seed or join a later canopy in the same pass. The pass ends when no
// point is available.
//
// The procedure is intentionally order-dependent: the same points in a
// different row order can produce a different number of canopies and
// different centers. For a fixed row order it is fully deterministic.
//
// # Distributed fit
//
// Clusterer runs the engine once per partition with the map-phase
// thresholds (T1, T2), then tree-reduces the per-partition center matrices:
// each combine concatenates two center matrices and re-runs the engine with
// the reduce-phase thresholds (T3, T4). The combine is order-sensitive, so
// the global center set is an approximation that may vary with partition
// count and reduction-tree shape; that is accepted, not hidden.
package canopy
