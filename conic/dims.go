package conic

// ConeDims is the ordered cone-dimension descriptor for the rows of G.
// The first Linear rows belong to the nonnegative orthant, followed by one
// block per entry of SOC (second-order cones of the given sizes), followed by
// ExpCones exponential cones of three rows each.
type ConeDims struct {
	// Linear is the number of nonnegative-orthant rows.
	Linear int

	// SOC lists the size of each second-order cone block, in row order.
	SOC []int

	// ExpCones is the number of exponential cones.
	ExpCones int
}

// Sum returns the total number of rows covered by the descriptor.
// It must equal the row count of G in a valid Problem.
func (d ConeDims) Sum() int {
	total := d.Linear
	for _, q := range d.SOC {
		total += q
	}
	return total + 3*d.ExpCones
}

// Clone returns a deep copy of the descriptor. Adapters that need to
// augment the descriptor with solver-specific fields work on a clone so the
// caller-owned descriptor stays untouched.
func (d ConeDims) Clone() ConeDims {
	c := d
	if d.SOC != nil {
		c.SOC = make([]int, len(d.SOC))
		copy(c.SOC, d.SOC)
	}
	return c
}
