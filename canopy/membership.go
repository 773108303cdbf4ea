package canopy

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Membership groups row indices by the canopy they were assigned to.
// It is built from the label column produced by Model.Assign and gives
// downstream consumers set operations over per-canopy membership.
type Membership struct {
	sets []*roaring.Bitmap
}

// NewMembership builds per-canopy row-index sets from labels.
// Every label must lie in [0, numCanopies).
func NewMembership(labels []int, numCanopies int) (*Membership, error) {
	sets := make([]*roaring.Bitmap, numCanopies)
	for i := range sets {
		sets[i] = roaring.New()
	}

	for row, label := range labels {
		if label < 0 || label >= numCanopies {
			return nil, fmt.Errorf("canopy: label %d for row %d out of range [0, %d)", label, row, numCanopies)
		}
		sets[label].Add(uint32(row))
	}

	return &Membership{sets: sets}, nil
}

// NumCanopies returns the number of canopies.
func (m *Membership) NumCanopies() int { return len(m.sets) }

// Members returns the row-index set of canopy i.
// The returned bitmap must be treated as read-only.
func (m *Membership) Members(i int) *roaring.Bitmap { return m.sets[i] }

// Count returns the number of rows assigned to canopy i.
func (m *Membership) Count(i int) uint64 { return m.sets[i].GetCardinality() }

// Counts returns the per-canopy row counts in canopy index order.
func (m *Membership) Counts() []uint64 {
	out := make([]uint64, len(m.sets))
	for i, s := range m.sets {
		out[i] = s.GetCardinality()
	}
	return out
}
