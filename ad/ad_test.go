// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/variable"
)

// buildS4 constructs scenario S4 from the worked examples: f = (x*z)*z,
// with x at index 0 and z at index 2 (a third variable, y, sits unused
// at index 1, the way a real model's variable table is shared across
// many constraints that don't all reference every variable).
func buildS4(tbl *variable.Table) (expr.Node, error) {
	x, _ := tbl.At(0)
	z, _ := tbl.At(2)
	inner, err := expr.NewOp(expr.Product, expr.NewVarRef(x), expr.NewVarRef(z))
	if err != nil {
		return nil, err
	}
	return expr.NewOp(expr.Product, inner, expr.NewVarRef(z))
}

func TestForwardRowS4(tst *testing.T) {

	chk.PrintTitle("ForwardRowS4")

	tbl := variable.NewTable(3)
	tbl.Set(0, 3.0)
	tbl.Set(2, 1.1)
	root, err := buildS4(tbl)
	if err != nil {
		tst.Fatalf("buildS4: %v", err)
	}

	row, err := ForwardRow(root, 0, expr.NewLastSeen(tbl.Len()), tbl.Len())
	if err != nil {
		tst.Fatalf("ForwardRow: %v", err)
	}
	if row.NNZ != 2 {
		tst.Fatalf("NNZ: got %d, want 2", row.NNZ)
	}
	want := map[int]float64{0: 1.1 * 1.1, 2: 2 * 3.0 * 1.1}
	for k := 0; k < row.NNZ; k++ {
		idx := row.Indices[k]
		chk.Scalar(tst, "d/dvar", 1e-12, row.Values[k], want[idx])
	}
}

func TestReverseRowS4(tst *testing.T) {

	chk.PrintTitle("ReverseRowS4")

	tbl := variable.NewTable(3)
	tbl.Set(0, 3.0)
	tbl.Set(2, 1.1)
	root, err := buildS4(tbl)
	if err != nil {
		tst.Fatalf("buildS4: %v", err)
	}

	row, err := ReverseRow(root, 0, expr.NewLastSeen(tbl.Len()), tbl.Len())
	if err != nil {
		tst.Fatalf("ReverseRow: %v", err)
	}
	want := map[int]float64{0: 1.1 * 1.1, 2: 2 * 3.0 * 1.1}
	for k := 0; k < row.NNZ; k++ {
		idx := row.Indices[k]
		chk.Scalar(tst, "d/dvar", 1e-12, row.Values[k], want[idx])
	}
}

func TestCheckAgreement(tst *testing.T) {

	chk.PrintTitle("CheckAgreement")

	tbl := variable.NewTable(3)
	tbl.Set(0, 3.0)
	tbl.Set(2, 1.1)
	root, err := buildS4(tbl)
	if err != nil {
		tst.Fatalf("buildS4: %v", err)
	}
	if err := CheckAgreement(root, tbl.Len()); err != nil {
		tst.Fatalf("forward and reverse mode should agree on S4: %v", err)
	}
}

func TestForwardModeAcceptsRepeatedVariableAcrossArguments(tst *testing.T) {

	chk.PrintTitle("ForwardModeAcceptsRepeatedVariableAcrossArguments")

	tbl := variable.NewTable(1)
	x, _ := tbl.At(0)
	// f = x + x, with BOTH VarRef nodes sitting under the *same*
	// n-ary operator's own argument list: forwardWalk zeroes one fresh
	// buffer per Op argument, but Sum's arguments are each their own
	// subtree, so two *distinct* VarRef(x) leaves across two *distinct*
	// arguments never collide. This only collides if a single argument's
	// own subtree revisits the same leaf twice, which NewOp's tree
	// construction cannot produce here — so this instead exercises the
	// ordinary, legal multi-argument case and expects success.
	root, err := expr.NewOp(expr.Sum, expr.NewVarRef(x), expr.NewVarRef(x))
	if err != nil {
		tst.Fatalf("NewOp: %v", err)
	}
	row, err := ForwardRow(root, 0, expr.NewLastSeen(tbl.Len()), tbl.Len())
	if err != nil {
		tst.Fatalf("ForwardRow: %v", err)
	}
	chk.Scalar(tst, "d(x+x)/dx", 1e-12, row.Values[0], 2.0)
}

func TestForwardAndReverseAgreeOnUnaryChain(tst *testing.T) {

	chk.PrintTitle("ForwardAndReverseAgreeOnUnaryChain")

	tbl := variable.NewTable(1)
	tbl.Set(0, 0.5)
	x, _ := tbl.At(0)

	sinx, err := expr.NewOp(expr.Sin, expr.NewVarRef(x))
	if err != nil {
		tst.Fatalf("NewOp: %v", err)
	}
	root, err := expr.NewOp(expr.Exp, sinx)
	if err != nil {
		tst.Fatalf("NewOp: %v", err)
	}
	if err := CheckAgreement(root, tbl.Len()); err != nil {
		tst.Fatalf("forward/reverse should agree on exp(sin(x)): %v", err)
	}
}
