// Package ecos adapts canonical conic-form problems to the ECOS
// interior-point solver.
//
// ECOS solves problems of the form:
//
//	Minimize:    C · x + Offset
//	Subject to:  A·x  =  B
//	And:         G·x ≤_K H
//
// where K is a product of the nonnegative orthant, second-order cones and
// exponential cones. The adapter translates a conic.Problem into the exact
// argument layout a native ECOS call expects, invokes an Engine, and
// normalizes the solver's raw exit code and vectors into a Result with a
// solver-independent Status.
//
// # Example
//
//	engine, err := ecos.NewNativeEngine()
//	if err != nil {
//		log.Fatal(err)
//	}
//	adapter := ecos.New(engine)
//
//	result, err := adapter.Solve(problem, ecos.WithVerbose(false))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.IsOptimal() {
//		fmt.Println("Optimal value:", result.Value)
//	}
//
// Each Solve call builds its own argument bundle from the supplied problem
// and discards it afterwards; no state is shared between calls, so a single
// Adapter may be used from multiple goroutines as long as each problem is
// not concurrently mutated.
package ecos

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/conic-go/goecos/conic"
)

// Capabilities describes the problem classes a solver adapter accepts.
// A routing layer consults these flags to decide adapter eligibility;
// the adapter itself only enforces the unsupported-constraint check in
// BuildProblemData.
type Capabilities struct {
	LP      bool
	SOCP    bool
	SDP     bool
	ExpCone bool
	MIP     bool
}

// SolverCapabilities are the static capability flags for ECOS.
var SolverCapabilities = Capabilities{
	LP:      true,
	SOCP:    true,
	SDP:     false,
	ExpCone: true,
	MIP:     false,
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Str("solver", "ecos").Logger()

// SetLogger overrides the package logger used for verbose solves.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Adapter translates canonical conic problems to and from one Engine.
type Adapter struct {
	engine Engine
}

// New returns an adapter that invokes the given engine.
func New(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Solve builds the native argument bundle for p, invokes the engine and
// returns the normalized result.
//
// One call is one atomic unit of work: no partial results are observable
// and nothing is retained between calls. The problem is read-only to the
// adapter.
//
// Options can be set using SolveOptions:
//
//	result, err := adapter.Solve(p,
//		ecos.WithVerbose(true),
//		ecos.WithFloatOption("feastol", 1e-9),
//	)
func (a *Adapter) Solve(p *conic.Problem, opts ...SolveOption) (*Result, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := BuildProblemData(p)
	if err != nil {
		return nil, err
	}

	if cfg.verbose {
		log.Info().
			Int("vars", len(data.C)).
			Int("eq_rows", data.A.Rows).
			Int("cone_rows", data.G.Rows).
			Int("soc_blocks", len(data.Dims.Q)).
			Int("exp_cones", data.Dims.ExpCones).
			Msg("solving")
	}

	raw, err := a.engine.Solve(data, cfg.verbose, cfg.options)
	if err != nil {
		return nil, newErrorf("Solve", ErrSolverFailure, "%v", err)
	}

	res, err := translate(raw, data)
	if err != nil {
		return nil, err
	}

	if cfg.verbose {
		log.Info().
			Stringer("status", res.Status).
			Int("iterations", res.Iterations).
			Float64("solve_time", res.SolveTime).
			Msg("solved")
	}

	return res, nil
}

// SolveOption configures one solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	verbose   bool
	warmStart bool
	options   Options
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		options: Options{
			Float: make(map[string]float64),
			Int:   make(map[string]int),
		},
	}
}

// WithVerbose enables solver output and adapter logging.
func WithVerbose(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.verbose = enabled
	}
}

// WithWarmStart requests a warm start. ECOS has no warm-start support, so
// the flag is accepted for interface compatibility and ignored.
func WithWarmStart(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.warmStart = enabled
	}
}

// WithFloatOption sets a native floating-point solver option, passed to the
// engine without interpretation.
func WithFloatOption(name string, value float64) SolveOption {
	return func(c *solveConfig) {
		c.options.Float[name] = value
	}
}

// WithIntOption sets a native integer solver option, passed to the engine
// without interpretation.
func WithIntOption(name string, value int) SolveOption {
	return func(c *solveConfig) {
		c.options.Int[name] = value
	}
}
