// Package mahout provides canopy pre-clustering for Go: a cheap,
// single-pass technique that reduces a large, partitioned collection of
// vectors to a small set of representative centers, then assigns every
// point to its nearest center. The centers are meant to seed a more
// expensive downstream clustering step, not to replace one.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	clusterer, _ := mahout.NewCanopyClusterer(
//	    mahout.WithThresholds(3.0, 1.5),
//	    mahout.WithMetric(distance.MetricEuclidean),
//	)
//
//	data := blockmat.New(rows, 4) // 4 partitions
//	model, _ := clusterer.Fit(ctx, data)
//
//	labels, _ := model.Assign(ctx, data)
//	fmt.Println(model.Summary())
//
// # Two-phase fit
//
// Fit maps the canopy-formation engine over every partition with the
// map-phase thresholds (T1, T2), then merges the per-partition center
// matrices pairwise with the reduce-phase thresholds (T3, T4), which
// default to the map pair. Canopy formation is greedy and order-dependent;
// for a fixed row order and partitioning the result is deterministic, but
// re-ordering rows or changing the partition count can change the centers.
// That trade is what makes the pass cheap.
//
// # Persistence
//
// A fitted model can be written as a compact binary snapshot (see the
// persistence package) and shipped through a modelstore backend (local
// directory, S3, MinIO) to wherever assignment runs.
package mahout
