// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlfile

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/variable"
)

// sample is a minimal two-variable, one-constraint .nl body: the ten
// header lines (ReadHeader retains line 1's format letter, line 2's
// nvar/ncon/nobj, line 8's nonzero counts and the sum of line 10's
// subexpression counts), a variable-initialization
// segment ("x2" followed by two "index value" lines), and a single
// constraint segment ("C0" followed by its expression in prefix
// notation: o0 is Sum, so "o0 v0 v1" means x0 + x1).
const sample = `g
2 1 0
0 0
0 0
0 0 0
0 0
0 0 0 0 0
0 0
0 0
0 0 0 0 0
x2
0 2
1 5
C0
o0
v0
v1
`

func TestReadHeaderAndBody(tst *testing.T) {

	chk.PrintTitle("ReadHeaderAndBody")

	rd := NewReader(strings.NewReader(sample))
	h, err := rd.ReadHeader()
	if err != nil {
		tst.Fatalf("ReadHeader: %v", err)
	}
	if h.NVar != 2 || h.NCon != 1 || h.NObj != 0 {
		tst.Fatalf("unexpected header: %+v", h)
	}

	tbl := variable.NewTable(h.NVar)
	if err := rd.ReadVariables(tbl); err != nil {
		tst.Fatalf("ReadVariables: %v", err)
	}
	chk.Vector(tst, "initial values", 1e-15, tbl.Values(), []float64{2, 5})

	roots, err := rd.ReadConstraints(tbl, h.NCon)
	if err != nil {
		tst.Fatalf("ReadConstraints: %v", err)
	}
	if len(roots) != 1 {
		tst.Fatalf("expected 1 constraint, got %d", len(roots))
	}
	val, err := expr.Evaluate(roots[0])
	if err != nil {
		tst.Fatalf("Evaluate: %v", err)
	}
	chk.Scalar(tst, "x0+x1", 1e-12, val, 7.0)
}

func TestOpcodeTableSupported(tst *testing.T) {

	chk.PrintTitle("OpcodeTableSupported")

	if !Supported(0) || !Supported(5) || !Supported(39) {
		tst.Fatalf("opcodes 0 (SUM), 5 (POWER), 39 (SQRT) should be supported")
	}
	if Supported(4) || Supported(99) || Supported(-1) {
		tst.Fatalf("opcode 4 (rem), an out-of-table opcode, and a negative opcode should not be supported")
	}
}

func TestDecodeUnsupportedOpcode(tst *testing.T) {

	chk.PrintTitle("DecodeUnsupportedOpcode")

	if _, err := Decode(4); err == nil {
		tst.Fatalf("opcode 4 (rem) should have been rejected as unsupported")
	}
}

func TestReadConstraintsOutOfOrder(tst *testing.T) {

	chk.PrintTitle("ReadConstraintsOutOfOrder")

	body := `g
2 2 0
0 0
0 0
0 0 0
0 0
0 0 0 0 0
0 0
0 0
0 0 0 0 0
x2
0 1
1 1
C1
v1
C0
v0
`
	rd := NewReader(strings.NewReader(body))
	h, err := rd.ReadHeader()
	if err != nil {
		tst.Fatalf("ReadHeader: %v", err)
	}
	tbl := variable.NewTable(h.NVar)
	if err := rd.ReadVariables(tbl); err != nil {
		tst.Fatalf("ReadVariables: %v", err)
	}
	roots, err := rd.ReadConstraints(tbl, h.NCon)
	if err != nil {
		tst.Fatalf("ReadConstraints: %v", err)
	}
	v0, _ := expr.Evaluate(roots[0])
	v1, _ := expr.Evaluate(roots[1])
	chk.Scalar(tst, "constraint 0 (var0)", 1e-15, v0, 1.0)
	chk.Scalar(tst, "constraint 1 (var1)", 1e-15, v1, 1.0)
}
