// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse implements the compressed-sparse-row container that every
// per-constraint derivative row is assembled into, and that a stack of
// rows forms into the constraint Jacobian (§3 CSRMatrix, §4.H).
package sparse

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/adgraph/aderr"
)

// CSRMatrix holds the indptr/indices/values triple of one or many rows
// (§3). Indptr has length NRow+1; Indices and Values each have length
// NNZ. Within each row, Indices are distinct and lie in [0, NCol).
type CSRMatrix struct {
	NRow    int
	NCol    int
	NNZ     int
	Indptr  []int
	Indices []int
	Values  []float64
}

// NewRow builds a 1×ncol CSRMatrix from one row's variable indices and
// derivative values, in the order discovery produced them (no numeric
// sort is required, §3). It validates the CSR invariants and returns an
// *aderr.InternalError if they are violated — that would mean an
// upstream AD bug, not a bad numeric input, so it is returned rather than
// silently tolerated.
func NewRow(ncol int, indices []int, values []float64) (*CSRMatrix, error) {
	if len(indices) != len(values) {
		return nil, aderr.NewInternalError("CSR row: len(indices)=%d != len(values)=%d", len(indices), len(values))
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= ncol {
			return nil, aderr.NewInternalError("CSR row: index %d out of range [0,%d)", idx, ncol)
		}
		if seen[idx] {
			return nil, aderr.NewInternalError("CSR row: duplicate index %d", idx)
		}
		seen[idx] = true
	}
	nnz := len(indices)
	return &CSRMatrix{
		NRow:    1,
		NCol:    ncol,
		NNZ:     nnz,
		Indptr:  []int{0, nnz},
		Indices: append([]int(nil), indices...),
		Values:  append([]float64(nil), values...),
	}, nil
}

// Stack concatenates a sequence of single- or multi-row CSRMatrix values,
// all sharing the same NCol, into one matrix — the Jacobian of the
// constraint vector obtained by stacking each constraint's derivative row
// (§1, §4.H "or many rows").
func Stack(rows []*CSRMatrix) (*CSRMatrix, error) {
	if len(rows) == 0 {
		return &CSRMatrix{Indptr: []int{0}}, nil
	}
	ncol := rows[0].NCol
	nrow := 0
	nnz := 0
	for _, r := range rows {
		if r.NCol != ncol {
			return nil, chk.Err("cannot stack rows with differing NCol: %d != %d", r.NCol, ncol)
		}
		nrow += r.NRow
		nnz += r.NNZ
	}
	indptr := make([]int, nrow+1)
	indices := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)
	rowOut := 0
	for _, r := range rows {
		for i := 0; i < r.NRow; i++ {
			lo, hi := r.Indptr[i], r.Indptr[i+1]
			indices = append(indices, r.Indices[lo:hi]...)
			values = append(values, r.Values[lo:hi]...)
			indptr[rowOut+1] = indptr[rowOut] + (hi - lo)
			rowOut++
		}
	}
	return &CSRMatrix{
		NRow:    nrow,
		NCol:    ncol,
		NNZ:     len(indices),
		Indptr:  indptr,
		Indices: indices,
		Values:  values,
	}, nil
}

// ToTriplet converts to gosl's own sparse assembly type, for callers that
// want to interoperate with the rest of the gosl ecosystem (e.g. gosl's
// linear solvers) instead of consuming the CSR triple directly.
func (o *CSRMatrix) ToTriplet() *la.Triplet {
	t := new(la.Triplet)
	t.Init(o.NRow, o.NCol, o.NNZ)
	for i := 0; i < o.NRow; i++ {
		for k := o.Indptr[i]; k < o.Indptr[i+1]; k++ {
			t.Put(i, o.Indices[k], o.Values[k])
		}
	}
	return t
}

// FromTriplet builds a CSRMatrix from a gosl Triplet, for readers that
// assembled their data gosl's way and want the CSR form this module
// otherwise produces directly. la.CCMatrix is column-compressed (Ap
// indexes columns, Ai holds row indices), so this transposes into the
// row-major grouping CSRMatrix needs.
func FromTriplet(t *la.Triplet) (*CSRMatrix, error) {
	m := t.ToMatrix(nil)
	nrow, ncol := m.M, m.N
	rowCols := make([][]int, nrow)
	rowData := make([][]float64, nrow)
	for j := 0; j < ncol; j++ {
		for k := m.Ap[j]; k < m.Ap[j+1]; k++ {
			i := m.Ai[k]
			rowCols[i] = append(rowCols[i], j)
			rowData[i] = append(rowData[i], m.Ax[k])
		}
	}
	indptr := make([]int, nrow+1)
	var indices []int
	var values []float64
	for i := 0; i < nrow; i++ {
		indices = append(indices, rowCols[i]...)
		values = append(values, rowData[i]...)
		indptr[i+1] = len(indices)
	}
	return &CSRMatrix{
		NRow:    nrow,
		NCol:    ncol,
		NNZ:     len(indices),
		Indptr:  indptr,
		Indices: indices,
		Values:  values,
	}, nil
}
