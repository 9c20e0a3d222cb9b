// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opderiv computes, for an operator node, the local partial
// derivatives of its result with respect to each of its operands at the
// current evaluation (§4.D). Grounded on original_source/src/op_derivs.h;
// dispatch is a switch on expr.Kind rather than a C function-pointer
// array, matching the switch-dispatch idiom gofem uses elsewhere (e.g.
// ana/materials_and_sections.go) for small closed enums.
package opderiv

import (
	"math"

	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/expr"
)

// Partials returns the vector of partial derivatives of op with respect
// to each of its arguments, evaluated at the arguments' current values.
// The returned slice has length equal to op's arity. Division, Sqrt and
// Log return a *aderr.DomainError when the operand is outside the
// operator's domain (§7); Power never errors, defining its second
// partial as 0 when the base is 0 or 1 (§4.D).
func Partials(op *expr.Op) ([]float64, error) {
	switch op.Kind {
	case expr.Sum:
		return diffSum(op)
	case expr.Product:
		return diffProduct(op)
	case expr.Subtraction:
		return diffSubtraction(op)
	case expr.Division:
		return diffDivision(op)
	case expr.Power:
		return diffPower(op)
	case expr.Negate:
		return diffNegate(op)
	case expr.Sqrt:
		return diffSqrt(op)
	case expr.Exp:
		return diffExp(op)
	case expr.Log:
		return diffLog(op)
	case expr.Sin:
		return diffSin(op)
	case expr.Cos:
		return diffCos(op)
	case expr.Tan:
		return diffTan(op)
	default:
		return nil, aderr.NewInternalError("unknown operator kind %d", int(op.Kind))
	}
}

func evalArgs(op *expr.Op) ([]float64, error) {
	vals := make([]float64, len(op.Args))
	for i, a := range op.Args {
		v, err := expr.Evaluate(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func diffSum(op *expr.Op) ([]float64, error) {
	d := make([]float64, len(op.Args))
	for i := range d {
		d[i] = 1.0
	}
	return d, nil
}

func diffProduct(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := 0; j < n; j++ {
			if j != i {
				p *= vals[j]
			}
		}
		d[i] = p
	}
	return d, nil
}

func diffSubtraction(op *expr.Op) ([]float64, error) {
	return []float64{1.0, -1.0}, nil
}

func diffDivision(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	a, b := vals[0], vals[1]
	if b == 0.0 {
		return nil, aderr.NewDomainError("/", expr.Render(op.Args[1]), b)
	}
	return []float64{1.0 / b, -a / (b * b)}, nil
}

func diffPower(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	a, b := vals[0], vals[1]
	d0 := b * math.Pow(a, b-1.0)
	var d1 float64
	if a == 0.0 || a == 1.0 {
		d1 = 0.0
	} else {
		d1 = math.Pow(a, b) * math.Log(a)
	}
	return []float64{d0, d1}, nil
}

func diffNegate(op *expr.Op) ([]float64, error) {
	return []float64{-1.0}, nil
}

func diffSqrt(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	a := vals[0]
	if a < 0.0 {
		return nil, aderr.NewDomainError("sqrt", expr.Render(op.Args[0]), a)
	}
	return []float64{1.0 / (2.0 * math.Sqrt(a))}, nil
}

func diffExp(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	return []float64{math.Exp(vals[0])}, nil
}

func diffLog(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	a := vals[0]
	if a <= 0.0 {
		return nil, aderr.NewDomainError("log", expr.Render(op.Args[0]), a)
	}
	return []float64{1.0 / a}, nil
}

func diffSin(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	return []float64{math.Cos(vals[0])}, nil
}

func diffCos(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	return []float64{-math.Sin(vals[0])}, nil
}

func diffTan(op *expr.Op) ([]float64, error) {
	vals, err := evalArgs(op)
	if err != nil {
		return nil, err
	}
	c := math.Cos(vals[0])
	return []float64{1.0 / (c * c)}, nil
}
