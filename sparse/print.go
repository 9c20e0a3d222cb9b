// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"fmt"
	"io"

	gio "github.com/cpmech/gosl/io"
)

// Print writes the §6 diagnostic CSR dump to w: shape, nnz, and the
// (index, value) pairs of every row. The format is diagnostic only, not
// a stable interface, matching original_source/src/sparse.h's
// print_csrmatrix.
func Print(w io.Writer, m *CSRMatrix) {
	fmt.Fprintf(w, "\n==========\n")
	fmt.Fprintf(w, "CSR Matrix\n")
	fmt.Fprintf(w, "==========\n")
	fmt.Fprintf(w, "shape = %d x %d\n", m.NRow, m.NCol)
	fmt.Fprintf(w, "NNZ   = %d\n", m.NNZ)
	fmt.Fprintf(w, "----------\n")
	for i := 0; i < m.NRow; i++ {
		fmt.Fprintf(w, "Row %d:", i)
		for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
			fmt.Fprintf(w, " (%d, %1.3f)", m.Indices[k], m.Values[k])
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "==========\n")
}

// PrintStdout writes the CSR dump to standard output via gosl/io.Pf, the
// same console-output helper every gofem diagnostic routine uses.
func PrintStdout(m *CSRMatrix) {
	gio.Pf("\n==========\n")
	gio.Pf("CSR Matrix\n")
	gio.Pf("==========\n")
	gio.Pf("shape = %d x %d\n", m.NRow, m.NCol)
	gio.Pf("NNZ   = %d\n", m.NNZ)
	gio.Pf("----------\n")
	for i := 0; i < m.NRow; i++ {
		gio.Pf("Row %d:", i)
		for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
			gio.Pf(" (%d, %1.3f)", m.Indices[k], m.Values[k])
		}
		gio.Pf("\n")
	}
	gio.Pf("==========\n")
}
