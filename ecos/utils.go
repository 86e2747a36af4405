package ecos

import (
	"sort"

	"github.com/conic-go/goecos/conic"
)

// CSCMatrix is a sparse matrix in compressed sparse column format, the
// storage layout the ECOS C API expects. ColPtr has Cols+1 entries; the
// row indices within each column are strictly increasing.
type CSCMatrix struct {
	Rows   int
	Cols   int
	ColPtr []int
	RowIdx []int
	Values []float64
}

// NumNonzero returns the number of stored entries.
func (m *CSCMatrix) NumNonzero() int {
	return len(m.Values)
}

// tripletsToCSC converts a triplet-form matrix to compressed sparse column
// format. Triplet values and row indices pass through untouched; only the
// storage order changes. Duplicate (row, col) entries keep the last value.
func tripletsToCSC(m conic.Matrix) (CSCMatrix, error) {
	out := CSCMatrix{
		Rows:   m.Rows,
		Cols:   m.Cols,
		ColPtr: make([]int, m.Cols+1),
	}
	if len(m.Nonzeros) == 0 {
		return out, nil
	}

	// Sort by column, then by row
	sorted := make([]conic.Nonzero, len(m.Nonzeros))
	copy(sorted, m.Nonzeros)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})

	// Validate and deduplicate
	filtered := make([]conic.Nonzero, 0, len(sorted))
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 || n.Row >= m.Rows || n.Col >= m.Cols {
			return CSCMatrix{}, newErrorf("tripletsToCSC", ErrInvalidProblemShape,
				"entry (%d,%d) outside %dx%d shape", n.Row, n.Col, m.Rows, m.Cols)
		}
		// Merge duplicates (keep last value)
		if len(filtered) > 0 && filtered[len(filtered)-1].Row == n.Row && filtered[len(filtered)-1].Col == n.Col {
			filtered[len(filtered)-1].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	out.RowIdx = make([]int, len(filtered))
	out.Values = make([]float64, len(filtered))
	for i, n := range filtered {
		out.ColPtr[n.Col+1]++
		out.RowIdx[i] = n.Row
		out.Values[i] = n.Val
	}
	for c := 0; c < m.Cols; c++ {
		out.ColPtr[c+1] += out.ColPtr[c]
	}

	return out, nil
}

// expandIndexRange appends the flat indices [offset, offset+size) to idx.
func expandIndexRange(idx []int, offset, size int) []int {
	for i := offset; i < offset+size; i++ {
		idx = append(idx, i)
	}
	return idx
}
