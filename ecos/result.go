package ecos

// Status is the solver-independent outcome of a solve. It is a closed
// enumeration: every native exit code maps to exactly one Status, and an
// unmapped exit code is an error, never a default Status.
type Status int

const (
	// StatusOptimal indicates the problem was solved to optimality.
	StatusOptimal Status = iota
	// StatusInfeasible indicates a certificate of primal infeasibility.
	StatusInfeasible
	// StatusUnbounded indicates a certificate of dual infeasibility.
	StatusUnbounded
	// StatusOptimalInaccurate indicates optimality at reduced tolerances.
	StatusOptimalInaccurate
	// StatusInfeasibleInaccurate indicates infeasibility at reduced tolerances.
	StatusInfeasibleInaccurate
	// StatusUnboundedInaccurate indicates unboundedness at reduced tolerances.
	StatusUnboundedInaccurate
	// StatusSolverError indicates a recognized unsuccessful exit
	// (numerical breakdown, iteration limit, interrupt). It is a normal
	// result value, not an error: diagnostics remain inspectable.
	StatusSolverError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	names := []string{
		"Optimal", "Infeasible", "Unbounded",
		"OptimalInaccurate", "InfeasibleInaccurate", "UnboundedInaccurate",
		"SolverError",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// HasSolution returns true if results with this status carry an optimal
// value and primal/dual vectors.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusOptimalInaccurate
}

// ExitCode is a native ECOS exit flag.
//
// Native exit codes:
//
//	ECOS_OPTIMAL  (0)   Problem solved to optimality
//	ECOS_PINF     (1)   Found certificate of primal infeasibility
//	ECOS_DINF     (2)   Found certificate of dual infeasibility
//	ECOS_INACC_OFFSET (10)  Offset exitflag at inaccurate results
//	ECOS_MAXIT    (-1)  Maximum number of iterations reached
//	ECOS_NUMERICS (-2)  Search direction unreliable
//	ECOS_OUTCONE  (-3)  s or z got outside the cone, numerics?
//	ECOS_SIGINT   (-4)  solver interrupted by a signal/ctrl-c
//	ECOS_FATAL    (-7)  Unknown problem in solver
type ExitCode int

const (
	ExitOptimal          ExitCode = 0
	ExitPrimalInfeasible ExitCode = 1
	ExitDualInfeasible   ExitCode = 2
	ExitMaxIters         ExitCode = -1
	ExitNumerics         ExitCode = -2
	ExitOutsideCone      ExitCode = -3
	ExitInterrupted      ExitCode = -4
	ExitFatal            ExitCode = -7

	// ExitInaccurateOffset is added to the three terminal codes when the
	// solver only reached its relaxed tolerances.
	ExitInaccurateOffset ExitCode = 10
)

// statusByExit maps every native exit code to its canonical status. The
// table is exhaustive over the codes ECOS can emit; a code absent here is
// version skew in the binding and surfaces as ErrUnknownExitCode.
var statusByExit = map[ExitCode]Status{
	ExitOptimal:          StatusOptimal,
	ExitPrimalInfeasible: StatusInfeasible,
	ExitDualInfeasible:   StatusUnbounded,

	ExitOptimal + ExitInaccurateOffset:          StatusOptimalInaccurate,
	ExitPrimalInfeasible + ExitInaccurateOffset: StatusInfeasibleInaccurate,
	ExitDualInfeasible + ExitInaccurateOffset:   StatusUnboundedInaccurate,

	ExitMaxIters:    StatusSolverError,
	ExitNumerics:    StatusSolverError,
	ExitOutsideCone: StatusSolverError,
	ExitInterrupted: StatusSolverError,
	ExitFatal:       StatusSolverError,
}

// Result is the normalized outcome of one solve call.
type Result struct {
	// Status is the canonical, solver-independent outcome.
	Status Status

	// Value is the optimal objective value including the problem's
	// offset. Only meaningful when Status.HasSolution() is true.
	Value float64

	// X is the primal solution, Y the equality duals and Z the cone
	// duals. All three are nil unless Status.HasSolution() is true.
	// Dual sign conventions are ECOS-native and not renormalized here.
	X []float64
	Y []float64
	Z []float64

	// Diagnostics, populated for every recognized exit code.
	Iterations int
	SetupTime  float64
	SolveTime  float64
}

// IsOptimal returns true if the solve reached optimality, possibly at
// reduced tolerances.
func (r *Result) IsOptimal() bool {
	return r.Status == StatusOptimal || r.Status == StatusOptimalInaccurate
}

// IsInfeasible returns true if the problem was proven infeasible.
func (r *Result) IsInfeasible() bool {
	return r.Status == StatusInfeasible || r.Status == StatusInfeasibleInaccurate
}

// IsUnbounded returns true if the problem was proven unbounded.
func (r *Result) IsUnbounded() bool {
	return r.Status == StatusUnbounded || r.Status == StatusUnboundedInaccurate
}

// HasSolution returns true if the result carries a value and vectors.
func (r *Result) HasSolution() bool {
	return r.Status.HasSolution()
}

// translate converts the solver's raw response into a normalized result.
// Timing and iteration diagnostics always carry over; the optimal value and
// the primal/dual vectors carry over only for solution-present statuses,
// with the bundle's objective offset added back onto the raw primal cost.
func translate(raw *RawResult, data *ProblemData) (*Result, error) {
	status, ok := statusByExit[raw.Info.ExitFlag]
	if !ok {
		return nil, newErrorf("translate", ErrUnknownExitCode,
			"exit code %d", raw.Info.ExitFlag)
	}

	res := &Result{
		Status:     status,
		Iterations: raw.Info.Iter,
		SetupTime:  raw.Info.Timing.Setup,
		SolveTime:  raw.Info.Timing.Solve,
	}

	if status.HasSolution() {
		res.Value = raw.Info.PCost + data.Offset
		res.X = append([]float64(nil), raw.X...)
		res.Y = append([]float64(nil), raw.Y...)
		res.Z = append([]float64(nil), raw.Z...)
	}

	return res, nil
}
