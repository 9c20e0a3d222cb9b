// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nlfile reads the textual .nl constraint-expression format
// (§3's opcode stream) into the shared variable.Table / expr.Node
// representation, and loads the surrounding run configuration from a
// JSON sidecar file. Grounded on original_source/src/nl.h and
// nl_opcodes.h (the structure of the reader), and on inp/sim.go (the
// JSON config idiom, gosl/io.ReadFile + encoding/json.Unmarshal).
package nlfile

import (
	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/expr"
)

// nOpcodes is the size of the opcode table in the .nl "Writing .nl
// files" Table 6 layout; most slots are operators this engine (and the
// original prototype) doesn't support.
const nOpcodes = 56

// unsupported marks an opcode slot with no corresponding expr.Kind.
const unsupported = expr.Kind(-1)

// OpcodeTable maps a .nl "oNN" opcode to the expr.Kind it represents,
// mirroring original_source/src/nl_opcodes.h's OP_LOOKUP[56] table.
// Most entries are unsupported: AMPL's full opcode space covers many
// operators (rem, min, max, piecewise-linear, string functions, ...)
// this engine never implements (§2 Non-goals).
var OpcodeTable = [nOpcodes]expr.Kind{
	0:  expr.Sum,
	1:  expr.Subtraction,
	2:  expr.Product,
	3:  expr.Division,
	4:  unsupported, // "rem"
	5:  expr.Power,
	6:  unsupported,
	7:  unsupported,
	8:  unsupported,
	9:  unsupported,
	10: unsupported,
	11: unsupported,
	12: unsupported,
	13: unsupported,
	14: unsupported,
	15: unsupported,
	16: expr.Negate,
	17: unsupported,
	18: unsupported,
	19: unsupported,
	20: unsupported,
	21: unsupported,
	22: unsupported,
	23: unsupported,
	24: unsupported,
	25: unsupported,
	26: unsupported,
	27: unsupported,
	28: unsupported,
	29: unsupported,
	30: unsupported,
	31: unsupported,
	32: unsupported,
	33: unsupported,
	34: unsupported,
	35: unsupported,
	36: unsupported,
	37: unsupported,
	38: expr.Tan,
	39: expr.Sqrt,
	40: unsupported,
	41: expr.Sin,
	42: unsupported,
	43: expr.Log,
	44: expr.Exp,
	45: unsupported,
	46: expr.Cos,
	47: unsupported,
	48: unsupported,
	49: unsupported,
	50: unsupported,
	51: unsupported,
	52: unsupported,
	53: unsupported,
	54: unsupported,
	55: unsupported,
}

// Supported reports whether opcode op names an operator this reader
// understands. Out-of-range opcodes are treated as unsupported rather
// than indexed out of bounds.
func Supported(op int) bool {
	if op < 0 || op >= nOpcodes {
		return false
	}
	return OpcodeTable[op] != unsupported
}

// nlArity returns how many argument sub-expressions follow opcode op in
// the .nl stream. The textual format this reader accepts encodes Sum
// and Product as strictly binary operators (original_source/src/expr.h's
// OPERATOR_DATA gives SUM and PRODUCT nargs == 2), even though
// expr.NewOp accepts two or more arguments for those kinds; every other
// supported opcode has the fixed arity expr.Kind already carries.
func nlArity(k expr.Kind) int {
	switch k {
	case expr.Sum, expr.Product:
		return 2
	default:
		return k.FixedArity()
	}
}

// Decode resolves opcode op to its expr.Kind, failing with
// *aderr.UnsupportedOperatorError if op names an operator outside
// OpcodeTable's supported set.
func Decode(op int) (expr.Kind, error) {
	if !Supported(op) {
		return 0, aderr.NewUnsupportedOperatorError(op)
	}
	return OpcodeTable[op], nil
}
