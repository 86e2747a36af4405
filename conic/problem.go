// Package conic defines the canonical conic-form problem contract shared
// between the canonicalization pipeline and solver adapters.
//
// A canonical problem has the shape:
//
//	Minimize:    C · x + Offset
//	Subject to:  A·x  =  B
//	And:         G·x ≤_K H
//
// where K is an ordered product of cones described by Dims. Adapters treat a
// Problem as read-only: the matrices, vectors and the Dims descriptor may be
// shared with other adapters and must never be mutated in place.
package conic

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Matrix is a sparse matrix in triplet form with an explicit shape.
// Rows and Cols bound the triplet indices; entries outside the shape are a
// contract violation detected by the consuming adapter.
type Matrix struct {
	Rows     int
	Cols     int
	Nonzeros []Nonzero
}

// Variable describes one decision variable's slice of the flat vector x.
// Offset and Size locate the slice; the discreteness flags mark variables
// declared boolean or integer upstream.
type Variable struct {
	ID      int
	Offset  int
	Size    int
	Boolean bool
	Integer bool
}

// Problem is a convex optimization problem reduced to canonical conic form.
type Problem struct {
	// C are the linear objective coefficients.
	C []float64

	// Offset is a constant added to the optimal value after solving.
	Offset float64

	// A and B define the equality constraints A·x = B.
	A Matrix
	B []float64

	// G and H define the cone constraints G·x ≤_K H. Row order determines
	// cone membership relative to Dims and must be preserved by adapters.
	G Matrix
	H []float64

	// F is an optional nonlinear constraint block, solver-specific.
	F *Matrix

	// Dims describes how the rows of G partition into cone blocks.
	Dims ConeDims

	// Vars lists the declared variables with their (offset, size) slices
	// of x. The slices partition [0, len(C)) without gaps or overlaps.
	Vars []Variable

	// PSD lists semidefinite block sizes, if any. Adapters for solvers
	// without SDP support reject problems with a non-empty PSD list.
	PSD []int
}

// NumVars returns the length of the flat decision vector x.
func (p *Problem) NumVars() int {
	return len(p.C)
}
