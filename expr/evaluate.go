// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"

	"github.com/cpmech/adgraph/aderr"
)

// Evaluate recursively evaluates expr to a real number (§4.C). It is pure
// with respect to the current variable values and caches nothing:
// repeated calls over the same subtree re-evaluate from scratch (a known
// inefficiency inherited from the design this module follows, see §9).
//
// Evaluate itself never returns a DomainError: raw evaluation of e.g. 1/0
// is +Inf in Go's floating point, not a failure. DomainError is reserved
// for derivative evaluation (package opderiv), per §7.
func Evaluate(n Node) (float64, error) {
	switch e := n.(type) {
	case *Const:
		return e.Value, nil
	case *VarRef:
		return e.V.Value, nil
	case *Op:
		return evaluateOp(e)
	default:
		return 0, aderr.NewInternalError("unknown node type %T", n)
	}
}

func evaluateOp(e *Op) (float64, error) {
	args := make([]float64, len(e.Args))
	for i, a := range e.Args {
		v, err := Evaluate(a)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	switch e.Kind {
	case Sum:
		sum := 0.0
		for _, a := range args {
			sum += a
		}
		return sum, nil
	case Product:
		prod := 1.0
		for _, a := range args {
			prod *= a
		}
		return prod, nil
	case Subtraction:
		return args[0] - args[1], nil
	case Division:
		return args[0] / args[1], nil
	case Power:
		return math.Pow(args[0], args[1]), nil
	case Negate:
		return -args[0], nil
	case Sqrt:
		return math.Sqrt(args[0]), nil
	case Exp:
		return math.Exp(args[0]), nil
	case Log:
		return math.Log(args[0]), nil
	case Sin:
		return math.Sin(args[0]), nil
	case Cos:
		return math.Cos(args[0]), nil
	case Tan:
		return math.Tan(args[0]), nil
	default:
		return 0, aderr.NewInternalError("unknown operator kind %d", int(e.Kind))
	}
}
