// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"math"

	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/expr"
)

// CheckAgreement runs both forward and reverse mode over root and
// compares them element-wise, exercising Testable property 1 (§8:
// "forward- and reverse-mode derivative rows are equal element-wise to
// within 1e-10 relative or 1e-12 absolute"). It returns a descriptive
// error on the first disagreement, nil if the rows agree (same nnz, same
// index set, same values within tolerance).
func CheckAgreement(root expr.Node, nvar int) error {
	fwd, err := ForwardRow(root, 0, expr.NewLastSeen(nvar), nvar)
	if err != nil {
		return err
	}
	rev, err := ReverseRow(root, 1, expr.NewLastSeen(nvar), nvar)
	if err != nil {
		return err
	}
	if fwd.NNZ != rev.NNZ {
		return aderr.NewInternalError("forward/reverse disagreement: nnz %d != %d", fwd.NNZ, rev.NNZ)
	}
	fval := make(map[int]float64, fwd.NNZ)
	for k := 0; k < fwd.NNZ; k++ {
		fval[fwd.Indices[k]] = fwd.Values[k]
	}
	for k := 0; k < rev.NNZ; k++ {
		j := rev.Indices[k]
		a, ok := fval[j]
		if !ok {
			return aderr.NewInternalError("forward/reverse disagreement: column %d present in reverse but not forward", j)
		}
		b := rev.Values[k]
		if !closeEnough(a, b, 1e-10, 1e-12) {
			return aderr.NewInternalError("forward/reverse disagreement at column %d: %v != %v", j, a, b)
		}
	}
	return nil
}

func closeEnough(a, b, relTol, absTol float64) bool {
	diff := math.Abs(a - b)
	if diff <= absTol {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= relTol*scale
}
