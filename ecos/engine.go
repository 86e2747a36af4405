package ecos

// Engine is the native solver entry point the adapter invokes. The adapter
// treats it as a black box: it hands over a fully built ProblemData bundle
// and receives the solver's raw response.
//
// NewNativeEngine returns an Engine backed by the ECOS C library when the
// package is built with the "ecos" build tag; callers may also supply their
// own implementation (e.g., an out-of-process solver).
type Engine interface {
	// Solve runs the solver on the given argument bundle. A returned error
	// means the invocation itself failed; unsuccessful solves are reported
	// through the exit flag in the RawResult instead.
	Solve(data *ProblemData, verbose bool, opts Options) (*RawResult, error)
}

// Options are free-form native solver options, opaque to the adapter.
// Recognized names are engine-specific; the native ECOS engine accepts
// "feastol", "abstol", "reltol" (and their "_inacc" variants) as float
// options and "maxit" as an integer option.
type Options struct {
	Float map[string]float64
	Int   map[string]int
}

// RawResult is the solver's native response for one solve call.
type RawResult struct {
	// X is the primal solution vector.
	X []float64

	// Y is the dual vector for the equality constraints.
	Y []float64

	// Z is the dual vector for the cone constraints.
	Z []float64

	// Info is the solver's diagnostic block.
	Info Info
}

// Info mirrors the solver's native info block.
type Info struct {
	// ExitFlag is the solver's terminal status code.
	ExitFlag ExitCode

	// PCost is the primal objective value at termination, excluding the
	// problem's objective offset.
	PCost float64

	// Iter is the number of interior-point iterations performed.
	Iter int

	// Timing holds the solver's setup and solve timers.
	Timing Timing
}

// Timing holds the solver's timing counters, in seconds.
type Timing struct {
	Setup float64
	Solve float64
}
