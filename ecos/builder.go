package ecos

import (
	"sort"

	"github.com/conic-go/goecos/conic"
)

// ProblemData is the argument bundle for one native solver call. It is built
// fresh per solve and never cached; the solver consumes it and the bundle is
// discarded after result translation.
type ProblemData struct {
	// C are the objective coefficients and Offset the constant term that
	// is added back to the primal cost during result translation.
	C      []float64
	Offset float64

	// A, B define the equality constraints; G, H the cone constraints.
	// Both matrices are in the column-compressed layout ECOS expects,
	// with row order exactly as supplied upstream.
	A CSCMatrix
	B []float64
	G CSCMatrix
	H []float64

	// F is the optional nonlinear block, passed through untouched.
	F *CSCMatrix

	// Dims is the cone descriptor in the solver's native shape.
	Dims Dims

	// BoolIdx and IntIdx are the flat indices of declared boolean and
	// integer variables: disjoint, sorted, each a subset of [0, len(C)).
	BoolIdx []int
	IntIdx  []int
}

// Dims is the cone-dimension block in the layout the native solver expects.
// It is always a copy of the upstream conic.ConeDims, never an alias, so
// that augmenting it here cannot leak into other adapters' view of the
// same problem.
type Dims struct {
	// L is the number of nonnegative-orthant rows.
	L int

	// Q lists the second-order cone sizes in row order.
	Q []int

	// ExpCones is the exponential-cone count under its upstream name.
	ExpCones int

	// E mirrors ExpCones under the field name the native call reads.
	// Both fields are kept; downstream consumers expect either name.
	E int
}

// Sum returns the total number of cone rows described.
func (d Dims) Sum() int {
	total := d.L
	for _, q := range d.Q {
		total += q
	}
	return total + 3*d.ExpCones
}

// BuildProblemData translates a canonical problem into the argument bundle
// for a native ECOS call. The problem is treated as read-only; all numeric
// content passes through with no loss of precision and the upstream cone
// descriptor is never mutated.
//
// Returns ErrInvalidProblemShape if the problem violates the canonical-form
// size invariants, and ErrUnsupportedConstraint if it carries a constraint
// kind ECOS cannot handle.
func BuildProblemData(p *conic.Problem) (*ProblemData, error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}

	a, err := tripletsToCSC(p.A)
	if err != nil {
		return nil, err
	}
	g, err := tripletsToCSC(p.G)
	if err != nil {
		return nil, err
	}

	data := &ProblemData{
		C:      p.C,
		Offset: p.Offset,
		A:      a,
		B:      p.B,
		G:      g,
		H:      p.H,
		Dims:   nativeDims(p.Dims),
	}

	if p.F != nil {
		f, err := tripletsToCSC(*p.F)
		if err != nil {
			return nil, err
		}
		data.F = &f
	}

	data.BoolIdx, data.IntIdx = discreteIndexSets(p.Vars)
	return data, nil
}

// nativeDims copies the upstream descriptor into the solver-native shape
// and sets the exponential-cone alias field. The copy is deep: the Q slice
// never aliases the upstream SOC slice.
func nativeDims(d conic.ConeDims) Dims {
	c := d.Clone()
	return Dims{
		L:        c.Linear,
		Q:        c.SOC,
		ExpCones: c.ExpCones,
		E:        c.ExpCones,
	}
}

// discreteIndexSets expands the declared boolean and integer variables into
// their flat index ranges. A variable flagged both boolean and integer
// counts as boolean. The returned sets are sorted and disjoint.
func discreteIndexSets(vars []conic.Variable) (boolIdx, intIdx []int) {
	ordered := make([]conic.Variable, len(vars))
	copy(ordered, vars)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Offset < ordered[j].Offset
	})

	for _, v := range ordered {
		switch {
		case v.Boolean:
			boolIdx = expandIndexRange(boolIdx, v.Offset, v.Size)
		case v.Integer:
			intIdx = expandIndexRange(intIdx, v.Offset, v.Size)
		}
	}
	return boolIdx, intIdx
}

// validateProblem checks the canonical-form invariants before any
// translation work. Problems with semidefinite blocks are rejected eagerly
// rather than left to a routing layer, so a misrouted problem fails here
// instead of inside the native call.
func validateProblem(p *conic.Problem) error {
	n := p.NumVars()

	if p.A.Rows != len(p.B) {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"equality matrix has %d rows but rhs has %d entries", p.A.Rows, len(p.B))
	}
	if p.G.Rows != len(p.H) {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"inequality matrix has %d rows but rhs has %d entries", p.G.Rows, len(p.H))
	}
	if p.A.Rows > 0 && p.A.Cols != n {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"equality matrix has %d columns for %d variables", p.A.Cols, n)
	}
	if p.G.Rows > 0 && p.G.Cols != n {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"inequality matrix has %d columns for %d variables", p.G.Cols, n)
	}
	if sum := p.Dims.Sum(); sum != p.G.Rows {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"cone dimensions sum to %d but inequality matrix has %d rows", sum, p.G.Rows)
	}
	if len(p.PSD) > 0 {
		return newError("BuildProblemData", ErrUnsupportedConstraint,
			"problem contains semidefinite blocks")
	}

	return validateVariables(p.Vars, n)
}

// validateVariables checks that the declared (offset, size) slices partition
// [0, n) without gaps or overlaps. An empty table is allowed: upstream may
// omit it for problems with no declared variables.
func validateVariables(vars []conic.Variable, n int) error {
	if len(vars) == 0 {
		return nil
	}

	ordered := make([]conic.Variable, len(vars))
	copy(ordered, vars)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Offset < ordered[j].Offset
	})

	next := 0
	for _, v := range ordered {
		if v.Size <= 0 {
			return newErrorf("BuildProblemData", ErrInvalidProblemShape,
				"variable %d has size %d", v.ID, v.Size)
		}
		if v.Offset != next {
			return newErrorf("BuildProblemData", ErrInvalidProblemShape,
				"variable %d at offset %d leaves a gap or overlap at %d", v.ID, v.Offset, next)
		}
		next = v.Offset + v.Size
	}
	if next != n {
		return newErrorf("BuildProblemData", ErrInvalidProblemShape,
			"variables cover [0,%d) but problem has %d variables", next, n)
	}
	return nil
}
