package canopy

import (
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

// FormCanopies runs one greedy canopy-formation pass over points and
// returns the discovered centers in discovery order. Each center is a copy
// of the seed row it came from.
//
// The pass is O(N*C) for N points and C canopies, single-threaded, and
// deterministic for a fixed row order. Empty input returns nil without
// entering the loop. A dimensionality mismatch between rows panics inside
// dist: that is a caller contract violation, not a runtime condition.
func FormCanopies(points []vector.Vector, dist distance.Func, loose, tight float64) []vector.Vector {
	if len(points) == 0 {
		return nil
	}

	consumed := newConsumedSet(len(points))
	var centers []vector.Vector

	// The scan order makes the lowest available index the next seed: every
	// index below the cursor was consumed by an earlier iteration, either
	// as a seed or as a member.
	for seed := 0; seed < len(points); seed++ {
		if consumed.has(seed) {
			continue
		}

		center := vector.Clone(points[seed])
		centers = append(centers, center)
		consumed.mark(seed)

		for i := seed + 1; i < len(points); i++ {
			if consumed.has(i) {
				continue
			}
			d := dist(center, points[i])
			switch {
			case d < tight:
				// Fully absorbed by this canopy.
				consumed.mark(i)
			case d < loose:
				// Loose member: consumed all the same, so it can never seed
				// or join a later canopy in this pass.
				consumed.mark(i)
			}
		}

		if consumed.remaining() == 0 {
			break
		}
	}

	return centers
}
