// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ad implements forward- and reverse-mode automatic
// differentiation of a single expression, and the per-expression facade
// that combines variable discovery, one of the two propagation modes, and
// CSR assembly into a sparse derivative row (§4.F, §4.G, §4.I). Grounded
// on original_source/src/forward_diff.h and reverse_diff.h.
package ad

import (
	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/opderiv"
	"github.com/cpmech/adgraph/sparse"
)

// ForwardRow differentiates root with respect to every variable it
// references, using forward-mode propagation, and assembles the result
// into a 1×nvar CSR row (§4.F + the facade steps of §4.I).
func ForwardRow(root expr.Node, eidx int, lastSeen []int, nvar int) (*sparse.CSRMatrix, error) {
	wrt, err := expr.Discover(root, eidx, lastSeen)
	if err != nil {
		return nil, err
	}
	d := make([]float64, nvar)
	if err := forwardWalk(root, d); err != nil {
		return nil, err
	}
	indices := make([]int, len(wrt))
	values := make([]float64, len(wrt))
	for i, v := range wrt {
		indices[i] = v.Index
		values[i] = d[v.Index]
	}
	return sparse.NewRow(nvar, indices, values)
}

// forwardWalk propagates a dense length-nvar derivative vector d upward
// from leaves into d: a Const contributes 0 everywhere, a VarRef
// contributes 1 at its own position, and an Op recurses into each
// argument with its own freshly-zeroed vector, then folds
// d += partial_i * d_i componentwise (§4.F). Every argument gets its own
// fresh vector, as original_source/src/forward_diff.h's per-argument
// arg_values does, so a VarRef leaf is always handed a zeroed vector and
// the "already visited" check on it does not fire for a repeated variable.
func forwardWalk(n expr.Node, d []float64) error {
	switch e := n.(type) {
	case *expr.Const:
		return nil
	case *expr.VarRef:
		idx := e.V.Index
		if d[idx] != 0 {
			return aderr.NewInternalError(
				"forward mode: derivative position for variable %d already has a value; expressions must be trees with no shared variable leaves",
				idx,
			)
		}
		d[idx] = 1.0
		return nil
	case *expr.Op:
		partials, err := opderiv.Partials(e)
		if err != nil {
			return err
		}
		for i, arg := range e.Args {
			di := make([]float64, len(d))
			if err := forwardWalk(arg, di); err != nil {
				return err
			}
			p := partials[i]
			for j := range d {
				d[j] += p * di[j]
			}
		}
		return nil
	default:
		return aderr.NewInternalError("unknown node type %T", n)
	}
}
