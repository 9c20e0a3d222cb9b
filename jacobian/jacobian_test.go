// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobian

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/variable"
)

func TestDifferentiateAllStacksOneRowPerConstraint(tst *testing.T) {

	chk.PrintTitle("DifferentiateAllStacksOneRowPerConstraint")

	tbl := variable.NewTable(2)
	tbl.Set(0, 2.0)
	tbl.Set(1, 5.0)
	x, _ := tbl.At(0)
	y, _ := tbl.At(1)

	// c0: x + y
	c0, err := expr.NewOp(expr.Sum, expr.NewVarRef(x), expr.NewVarRef(y))
	if err != nil {
		tst.Fatalf("NewOp: %v", err)
	}
	// c1: x * y
	c1, err := expr.NewOp(expr.Product, expr.NewVarRef(x), expr.NewVarRef(y))
	if err != nil {
		tst.Fatalf("NewOp: %v", err)
	}

	for _, mode := range []Mode{Forward, Reverse} {
		jac, err := DifferentiateAll([]expr.Node{c0, c1}, tbl.Len(), mode)
		if err != nil {
			tst.Fatalf("DifferentiateAll(mode=%d): %v", mode, err)
		}
		if jac.NRow != 2 || jac.NCol != 2 {
			tst.Fatalf("unexpected Jacobian shape: %+v", jac)
		}
		// row 0: d(x+y)/dx=1, d(x+y)/dy=1
		row0 := jac.Values[jac.Indptr[0]:jac.Indptr[1]]
		for _, v := range row0 {
			chk.Scalar(tst, "d(x+y)", 1e-12, v, 1.0)
		}
		// row 1: d(x*y)/dx=y=5, d(x*y)/dy=x=2
		row1 := jac.Values[jac.Indptr[1]:jac.Indptr[2]]
		col1 := jac.Indices[jac.Indptr[1]:jac.Indptr[2]]
		want := map[int]float64{x.Index: y.Value, y.Index: x.Value}
		for k, c := range col1 {
			chk.Scalar(tst, "d(x*y)", 1e-12, row1[k], want[c])
		}
	}
}

func TestDifferentiateAllPropagatesConstraintIndexOnError(tst *testing.T) {

	chk.PrintTitle("DifferentiateAllPropagatesConstraintIndexOnError")

	tbl := variable.NewTable(2)
	tbl.Set(0, 1.0)
	tbl.Set(1, 0.0)
	x, _ := tbl.At(0)
	y, _ := tbl.At(1)

	good, _ := expr.NewOp(expr.Sum, expr.NewVarRef(x), expr.NewVarRef(y))
	bad, _ := expr.NewOp(expr.Division, expr.NewVarRef(x), expr.NewVarRef(y))

	_, err := DifferentiateAll([]expr.Node{good, bad}, tbl.Len(), Forward)
	if err == nil {
		tst.Fatalf("division by zero in constraint 1 should have failed")
	}
	if !strings.Contains(err.Error(), "constraint 1") {
		tst.Fatalf("error should name constraint 1: %v", err)
	}
}
