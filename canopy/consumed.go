package canopy

// consumedSet tracks which pool indices have been consumed by a canopy.
// The marker is the sole source of truth for availability: vectors are
// never zeroed or mutated to signal consumption.
type consumedSet struct {
	bits []uint64
	left int
}

func newConsumedSet(n int) *consumedSet {
	return &consumedSet{
		bits: make([]uint64, (n+63)/64),
		left: n,
	}
}

// mark consumes index i. Marking an already-consumed index is a no-op.
func (c *consumedSet) mark(i int) {
	word := i >> 6
	mask := uint64(1) << (i & 63)
	if c.bits[word]&mask == 0 {
		c.bits[word] |= mask
		c.left--
	}
}

// has reports whether index i has been consumed.
func (c *consumedSet) has(i int) bool {
	return c.bits[i>>6]&(uint64(1)<<(i&63)) != 0
}

// remaining returns the number of still-available indices.
func (c *consumedSet) remaining() int { return c.left }
