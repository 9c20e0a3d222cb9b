// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the shared expression representation: constants,
// references to shared variables, and n-ary operator nodes, plus the
// evaluator and variable-discovery pass that operate on them.
//
// Node and Kind are closed sums; dispatch is a single type switch or table
// lookup. Operators are never modeled via subclassing — a new operator is
// added by extending the kind-indexed tables (arity here, local derivatives
// in package opderiv) in lockstep.
package expr

// Kind identifies an operator. The zero value is Sum; NewOp rejects any
// value outside the named constants below.
type Kind int

const (
	Sum Kind = iota
	Product
	Subtraction
	Division
	Power
	Negate
	Sqrt
	Exp
	Log
	Sin
	Cos
	Tan
	nKinds
)

// symbols names each Kind for rendering (§9 to_string analogue) and error
// messages. Order must match the Kind constants above.
var symbols = [nKinds]string{
	Sum:         "+",
	Product:     "*",
	Subtraction: "-",
	Division:    "/",
	Power:       "^",
	Negate:      "-",
	Sqrt:        "sqrt",
	Exp:         "exp",
	Log:         "log",
	Sin:         "sin",
	Cos:         "cos",
	Tan:         "tan",
}

// nAry is the sentinel arity meaning "two or more arguments" (Sum, Product).
const nAry = -1

// arities gives the fixed arity of each Kind, or nAry for n-ary operators.
var arities = [nKinds]int{
	Sum:         nAry,
	Product:     nAry,
	Subtraction: 2,
	Division:    2,
	Power:       2,
	Negate:      1,
	Sqrt:        1,
	Exp:         1,
	Log:         1,
	Sin:         1,
	Cos:         1,
	Tan:         1,
}

// String returns the operator's display symbol.
func (k Kind) String() string {
	if k < 0 || k >= nKinds {
		return "?"
	}
	return symbols[k]
}

// arityOK reports whether nargs is a legal argument count for k.
func arityOK(k Kind, nargs int) bool {
	want := arities[k]
	if want == nAry {
		return nargs >= 2
	}
	return nargs == want
}

// FixedArity returns k's fixed argument count, or -1 if k is n-ary
// (Sum, Product). Exported for callers outside this package, such as
// package nlfile, that need to know how many sub-expressions to expect
// for a unary or binary operator.
func (k Kind) FixedArity() int {
	return arities[k]
}
