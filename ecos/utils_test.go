package ecos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conic-go/goecos/conic"
)

func TestTripletsToCSCEmpty(t *testing.T) {
	m, err := tripletsToCSC(conic.Matrix{Rows: 0, Cols: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, m.ColPtr)
	assert.Zero(t, m.NumNonzero())
}

func TestTripletsToCSCUnsortedInput(t *testing.T) {
	// Storage order of the input must not matter.
	m, err := tripletsToCSC(conic.Matrix{
		Rows: 3, Cols: 2,
		Nonzeros: []conic.Nonzero{
			{Row: 2, Col: 1, Val: 4.0},
			{Row: 0, Col: 0, Val: 1.0},
			{Row: 0, Col: 1, Val: 3.0},
			{Row: 2, Col: 0, Val: 2.0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, m.ColPtr)
	assert.Equal(t, []int{0, 2, 0, 2}, m.RowIdx)
	assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0}, m.Values)
}

func TestTripletsToCSCDuplicatesKeepLast(t *testing.T) {
	m, err := tripletsToCSC(conic.Matrix{
		Rows: 2, Cols: 1,
		Nonzeros: []conic.Nonzero{
			{Row: 1, Col: 0, Val: 1.0},
			{Row: 1, Col: 0, Val: 5.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0}, m.Values)
	assert.Equal(t, 1, m.NumNonzero())
}

func TestTripletsToCSCOutOfShape(t *testing.T) {
	cases := []conic.Nonzero{
		{Row: -1, Col: 0, Val: 1.0},
		{Row: 0, Col: -1, Val: 1.0},
		{Row: 2, Col: 0, Val: 1.0},
		{Row: 0, Col: 3, Val: 1.0},
	}
	for _, nz := range cases {
		_, err := tripletsToCSC(conic.Matrix{Rows: 2, Cols: 3, Nonzeros: []conic.Nonzero{nz}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidProblemShape)
	}
}
