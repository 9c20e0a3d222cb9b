// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/opderiv"
	"github.com/cpmech/adgraph/sparse"
)

// ReverseRow differentiates root with respect to every variable it
// references, using reverse-mode adjoint propagation, and assembles the
// result into a 1×nvar CSR row (§4.G + the facade steps of §4.I).
func ReverseRow(root expr.Node, eidx int, lastSeen []int, nvar int) (*sparse.CSRMatrix, error) {
	wrt, err := expr.Discover(root, eidx, lastSeen)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(wrt))
	position := make(map[int]int, len(wrt))
	for i, v := range wrt {
		position[v.Index] = i
	}

	adj := expr.NewAdjoints()
	adj.Set(root, 1.0)
	if err := reverseWalk(root, adj, position, values); err != nil {
		return nil, err
	}

	indices := make([]int, len(wrt))
	for i, v := range wrt {
		indices[i] = v.Index
	}
	return sparse.NewRow(nvar, indices, values)
}

// reverseWalk propagates adjoints depth-first from root toward the
// leaves (§4.G, §5 "depth-first for reverse mode"). Constants are a
// no-op; a VarRef accumulates its node's adjoint into the result at its
// wrt position; an Op computes its local partials, assigns each
// argument's adjoint as partial_i * self.adjoint (assignment, not
// accumulation, is valid because every operator node here has exactly
// one parent, §4.G/§9), and recurses.
func reverseWalk(n expr.Node, adj expr.Adjoints, position map[int]int, values []float64) error {
	switch e := n.(type) {
	case *expr.Const:
		return nil
	case *expr.VarRef:
		idx := e.V.Index
		pos, ok := position[idx]
		if !ok {
			return aderr.NewInternalError("variable %d visited in reverse mode but absent from its own discovered set", idx)
		}
		values[pos] += adj.Get(n)
		return nil
	case *expr.Op:
		partials, err := opderiv.Partials(e)
		if err != nil {
			return err
		}
		self := adj.Get(n)
		for i, arg := range e.Args {
			adj.Set(arg, partials[i]*self)
			if err := reverseWalk(arg, adj, position, values); err != nil {
				return err
			}
		}
		return nil
	default:
		return aderr.NewInternalError("unknown node type %T", n)
	}
}
