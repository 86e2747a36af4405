package ecos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawWithExit(code ExitCode) *RawResult {
	return &RawResult{
		X: []float64{1.0, 2.0},
		Y: []float64{0.5},
		Z: []float64{-0.25, 0.75},
		Info: Info{
			ExitFlag: code,
			PCost:    5.0,
			Iter:     12,
			Timing:   Timing{Setup: 0.001, Solve: 0.014},
		},
	}
}

func TestTranslateStatusTable(t *testing.T) {
	cases := []struct {
		code ExitCode
		want Status
	}{
		{0, StatusOptimal},
		{1, StatusInfeasible},
		{2, StatusUnbounded},
		{10, StatusOptimalInaccurate},
		{11, StatusInfeasibleInaccurate},
		{12, StatusUnboundedInaccurate},
		{-1, StatusSolverError},
		{-2, StatusSolverError},
		{-3, StatusSolverError},
		{-4, StatusSolverError},
		{-7, StatusSolverError},
	}
	require.Len(t, statusByExit, len(cases), "every mapped exit code must be covered here")

	data := &ProblemData{Offset: 2.5}
	for _, tc := range cases {
		res, err := translate(rawWithExit(tc.code), data)
		require.NoError(t, err, "exit code %d", tc.code)
		assert.Equal(t, tc.want, res.Status, "exit code %d", tc.code)
	}
}

func TestTranslateUnknownExitCode(t *testing.T) {
	data := &ProblemData{}
	for _, code := range []ExitCode{3, 9, 13, -5, 42} {
		_, err := translate(rawWithExit(code), data)
		require.Error(t, err, "exit code %d", code)
		assert.ErrorIs(t, err, ErrUnknownExitCode)
	}
}

func TestTranslateAppliesObjectiveOffset(t *testing.T) {
	res, err := translate(rawWithExit(ExitOptimal), &ProblemData{Offset: 2.5})
	require.NoError(t, err)

	// Exact floating-point equality: translation adds the offset and
	// introduces no rounding of its own.
	assert.Equal(t, 7.5, res.Value)
}

func TestTranslateSolutionPresent(t *testing.T) {
	raw := rawWithExit(ExitOptimal + ExitInaccurateOffset)
	res, err := translate(raw, &ProblemData{Offset: -1.0})
	require.NoError(t, err)

	assert.Equal(t, StatusOptimalInaccurate, res.Status)
	assert.True(t, res.HasSolution())
	assert.Equal(t, 4.0, res.Value)
	assert.Equal(t, []float64{1.0, 2.0}, res.X)
	assert.Equal(t, []float64{0.5}, res.Y)
	assert.Equal(t, []float64{-0.25, 0.75}, res.Z)

	// Vectors are copies, not aliases of the raw response.
	raw.X[0] = 99
	assert.Equal(t, 1.0, res.X[0])
}

func TestTranslateSolutionAbsent(t *testing.T) {
	// The raw result carries vectors, but non-solution statuses must not
	// expose them.
	for _, code := range []ExitCode{ExitPrimalInfeasible, ExitDualInfeasible, ExitNumerics} {
		res, err := translate(rawWithExit(code), &ProblemData{Offset: 2.5})
		require.NoError(t, err, "exit code %d", code)

		assert.False(t, res.HasSolution())
		assert.Nil(t, res.X)
		assert.Nil(t, res.Y)
		assert.Nil(t, res.Z)
		assert.Zero(t, res.Value)
	}
}

func TestTranslateDiagnosticsAlwaysPopulated(t *testing.T) {
	res, err := translate(rawWithExit(ExitNumerics), &ProblemData{})
	require.NoError(t, err)

	assert.Equal(t, StatusSolverError, res.Status)
	assert.Equal(t, 12, res.Iterations)
	assert.Equal(t, 0.001, res.SetupTime)
	assert.Equal(t, 0.014, res.SolveTime)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusOptimal.HasSolution())
	assert.True(t, StatusOptimalInaccurate.HasSolution())
	for _, s := range []Status{
		StatusInfeasible, StatusUnbounded,
		StatusInfeasibleInaccurate, StatusUnboundedInaccurate,
		StatusSolverError,
	} {
		assert.False(t, s.HasSolution(), s.String())
	}

	r := &Result{Status: StatusInfeasibleInaccurate}
	assert.True(t, r.IsInfeasible())
	assert.False(t, r.IsOptimal())
	assert.False(t, r.IsUnbounded())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Optimal", StatusOptimal.String())
	assert.Equal(t, "SolverError", StatusSolverError.String())
	assert.Equal(t, "Unknown", Status(42).String())
}
