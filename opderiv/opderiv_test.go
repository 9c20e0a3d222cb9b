// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opderiv

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/variable"
)

// checkPartial cross-checks Partials' i-th analytic entry against a
// central-difference estimate obtained by perturbing args[i]'s
// variable, the same analytic-vs-numeric pattern as
// mdl/solid/t_hyperelast1_test.go's num.DerivCen + chk.AnaNum.
func checkPartial(tst *testing.T, name string, tol float64, op *expr.Op, vs []*variable.Variable, i int) {
	partials, err := Partials(op)
	if err != nil {
		tst.Fatalf("%s: Partials: %v", name, err)
	}
	v := vs[i]
	orig := v.Value
	dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		v.Value = x
		res, _ = expr.Evaluate(op)
		return
	}, orig)
	v.Value = orig
	chk.AnaNum(tst, name, tol, partials[i], dnum, false)
}

func TestPartialsAgainstFiniteDifference(tst *testing.T) {

	chk.PrintTitle("PartialsAgainstFiniteDifference")

	tbl := variable.NewTable(2)
	tbl.Set(0, 1.7)
	tbl.Set(1, 0.6)
	a, _ := tbl.At(0)
	b, _ := tbl.At(1)

	cases := []struct {
		kind expr.Kind
	}{
		{expr.Sum}, {expr.Product}, {expr.Subtraction}, {expr.Division}, {expr.Power},
	}
	for _, c := range cases {
		op, err := expr.NewOp(c.kind, expr.NewVarRef(a), expr.NewVarRef(b))
		if err != nil {
			tst.Fatalf("NewOp(%v): %v", c.kind, err)
		}
		checkPartial(tst, c.kind.String()+"_d0", 1e-6, op.(*expr.Op), []*variable.Variable{a, b}, 0)
		checkPartial(tst, c.kind.String()+"_d1", 1e-6, op.(*expr.Op), []*variable.Variable{a, b}, 1)
	}

	unary := []expr.Kind{expr.Negate, expr.Sqrt, expr.Exp, expr.Log, expr.Sin, expr.Cos, expr.Tan}
	for _, k := range unary {
		op, err := expr.NewOp(k, expr.NewVarRef(a))
		if err != nil {
			tst.Fatalf("NewOp(%v): %v", k, err)
		}
		checkPartial(tst, k.String(), 1e-6, op.(*expr.Op), []*variable.Variable{a}, 0)
	}
}

func TestDivisionByZeroIsDomainError(tst *testing.T) {

	chk.PrintTitle("DivisionByZeroIsDomainError")

	tbl := variable.NewTable(2)
	tbl.Set(0, 1.0)
	tbl.Set(1, 0.0)
	a, _ := tbl.At(0)
	b, _ := tbl.At(1)

	op, _ := expr.NewOp(expr.Division, expr.NewVarRef(a), expr.NewVarRef(b))
	if _, err := Partials(op.(*expr.Op)); err == nil {
		tst.Fatalf("division by zero should have produced a DomainError")
	}
}

func TestSqrtOfNegativeIsDomainError(tst *testing.T) {

	chk.PrintTitle("SqrtOfNegativeIsDomainError")

	tbl := variable.NewTable(1)
	tbl.Set(0, -4.0)
	a, _ := tbl.At(0)

	op, _ := expr.NewOp(expr.Sqrt, expr.NewVarRef(a))
	if _, err := Partials(op.(*expr.Op)); err == nil {
		tst.Fatalf("sqrt of a negative argument should have produced a DomainError")
	}
}

func TestLogOfNonPositiveIsDomainError(tst *testing.T) {

	chk.PrintTitle("LogOfNonPositiveIsDomainError")

	tbl := variable.NewTable(1)
	tbl.Set(0, 0.0)
	a, _ := tbl.At(0)

	op, _ := expr.NewOp(expr.Log, expr.NewVarRef(a))
	if _, err := Partials(op.(*expr.Op)); err == nil {
		tst.Fatalf("log of zero should have produced a DomainError")
	}
}

func TestPowerSecondPartialAtSpecialBase(tst *testing.T) {

	chk.PrintTitle("PowerSecondPartialAtSpecialBase")

	tbl := variable.NewTable(2)
	tbl.Set(0, 0.0)
	tbl.Set(1, 3.0)
	a, _ := tbl.At(0)
	b, _ := tbl.At(1)

	op, _ := expr.NewOp(expr.Power, expr.NewVarRef(a), expr.NewVarRef(b))
	partials, err := Partials(op.(*expr.Op))
	if err != nil {
		tst.Fatalf("Partials: %v", err)
	}
	chk.Scalar(tst, "d/db a^b at a=0", 1e-15, partials[1], 0.0)
}
