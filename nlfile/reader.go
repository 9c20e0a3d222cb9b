// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/variable"
)

// Header carries the subset of the .nl header this reader uses: the
// variable/constraint/objective counts and nonzero counts, following
// original_source/src/nl.h's NLHeader. Most of the ten header lines
// (network constraints, discrete variables, common-subexpression
// partitions, ...) describe AMPL features this engine does not support
// and are read past without being retained, mirroring the original
// reader's own comments to that effect.
type Header struct {
	Binary bool // 'b' (binary) vs. 'g' (ASCII text) indicator
	NVar   int
	NCon   int
	NObj   int
	JNNZ   int // nonzeros in the constraint Jacobian
	GNNZ   int // nonzeros in the objective gradient
	NExpr  int // total common subexpressions across all partitions
}

// Reader wraps a bufio.Scanner positioned over a .nl file's lines,
// giving ReadHeader, ReadVariables, and ReadExpression a shared cursor,
// the same line-oriented single-pass structure as the original's
// sequential fgets/fscanf calls against one FILE*.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader wraps r for textual .nl parsing.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 4096), 1<<20)
	return &Reader{sc: sc}
}

// nextLine returns the next line's text, stripped of its trailing
// newline, or an error if the file ends early.
func (o *Reader) nextLine() (string, error) {
	if !o.sc.Scan() {
		if err := o.sc.Err(); err != nil {
			return "", chk.Err("nlfile: reading line %d: %v", o.line+1, err)
		}
		return "", chk.Err("nlfile: unexpected end of file at line %d", o.line+1)
	}
	o.line++
	return o.sc.Text(), nil
}

// ReadHeader reads the ten .nl header lines (§3's header block). Only
// the fields Header retains are parsed out of each line; the remainder
// of every header line's integers are read and discarded, following
// original_source/src/nl.h's read_nl_header.
func (o *Reader) ReadHeader() (Header, error) {
	var h Header

	first, err := o.nextLine()
	if err != nil {
		return h, err
	}
	if len(first) == 0 {
		return h, chk.Err("nlfile: empty first header line")
	}
	switch first[0] {
	case 'g':
		h.Binary = false
	case 'b':
		h.Binary = true
	default:
		return h, chk.Err("nlfile: expected 'g' or 'b' as the first header character, got %q", first[0])
	}

	// Line 2: nvar ncon nobj ...
	fields, err := o.headerFields(2)
	if err != nil {
		return h, err
	}
	if len(fields) < 3 {
		return h, chk.Err("nlfile: header line 2 has %d fields, want at least 3", len(fields))
	}
	h.NVar, h.NCon, h.NObj = fields[0], fields[1], fields[2]

	// Lines 3-7: nonlinear/network/discrete-variable counts this engine
	// does not track.
	for i := 3; i <= 7; i++ {
		if _, err := o.nextLine(); err != nil {
			return h, err
		}
	}

	// Line 8: nonzeros in Jacobian and gradient.
	fields, err = o.headerFields(8)
	if err != nil {
		return h, err
	}
	if len(fields) < 2 {
		return h, chk.Err("nlfile: header line 8 has %d fields, want at least 2", len(fields))
	}
	h.JNNZ, h.GNNZ = fields[0], fields[1]

	// Line 9: max name lengths, unused.
	if _, err := o.nextLine(); err != nil {
		return h, err
	}

	// Line 10: common-subexpression partition counts, summed per the
	// original reader's own convention.
	fields, err = o.headerFields(10)
	if err != nil {
		return h, err
	}
	for _, f := range fields {
		h.NExpr += f
	}

	return h, nil
}

// headerFields reads one header line and splits it into whitespace-
// separated integers, used for ReadHeader's numeric lines.
func (o *Reader) headerFields(lineNo int) ([]int, error) {
	text, err := o.nextLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, chk.Err("nlfile: header line %d: field %q is not an integer", lineNo, f)
		}
		out[i] = n
	}
	return out, nil
}

// ReadVariables reads the "xNVAR" segment header and the nvar
// "index value" initialization lines that follow it, populating tbl
// with each variable's starting value (§3, original_source/src/nl.h's
// read_nl_variables). Lines before the "x..." segment (the linear part
// of the objective/constraints, which this engine does not use) are
// skipped.
func (o *Reader) ReadVariables(tbl *variable.Table) error {
	var segLine string
	for {
		line, err := o.nextLine()
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, "x") {
			segLine = line
			break
		}
	}

	var segCount int
	if _, err := fmt.Sscanf(segLine[1:], "%d", &segCount); err != nil {
		return chk.Err("nlfile: malformed variable-segment header %q: %v", segLine, err)
	}
	if segCount != tbl.Len() {
		return chk.Err("nlfile: variable segment declares %d variables, header declared %d", segCount, tbl.Len())
	}

	for i := 0; i < tbl.Len(); i++ {
		line, err := o.nextLine()
		if err != nil {
			return err
		}
		var vidx int
		var value float64
		if _, err := fmt.Sscanf(line, "%d %g", &vidx, &value); err != nil {
			return chk.Err("nlfile: malformed variable initialization line %q: %v", line, err)
		}
		if err := tbl.Set(vidx, value); err != nil {
			return err
		}
	}
	return nil
}

// ReadExpression reads one constraint's expression tree in prefix
// (Polish) notation off the stream, recursively, following
// original_source/src/nl.h's read_nl_expression / _read_nl_constant /
// _read_nl_variable / _read_nl_expression. The next line must begin
// with 'n' (a numeric constant), 'v' (a variable reference), or 'o' (an
// operator, followed recursively by its arguments' own expressions).
func (o *Reader) ReadExpression(tbl *variable.Table) (expr.Node, error) {
	line, err := o.nextLine()
	if err != nil {
		return nil, err
	}
	if len(line) == 0 {
		return nil, chk.Err("nlfile: empty expression line at line %d", o.line)
	}
	switch line[0] {
	case 'n':
		var value float64
		if _, err := fmt.Sscanf(line[1:], "%g", &value); err != nil {
			return nil, chk.Err("nlfile: malformed constant %q: %v", line, err)
		}
		return expr.NewConst(value), nil
	case 'v':
		var vidx int
		if _, err := fmt.Sscanf(line[1:], "%d", &vidx); err != nil {
			return nil, chk.Err("nlfile: malformed variable reference %q: %v", line, err)
		}
		v, err := tbl.At(vidx)
		if err != nil {
			return nil, err
		}
		return expr.NewVarRef(v), nil
	case 'o':
		var opnum int
		if _, err := fmt.Sscanf(line[1:], "%d", &opnum); err != nil {
			return nil, chk.Err("nlfile: malformed opcode %q: %v", line, err)
		}
		kind, err := Decode(opnum)
		if err != nil {
			return nil, err
		}
		nargs := nlArity(kind)
		args := make([]expr.Node, nargs)
		for i := 0; i < nargs; i++ {
			arg, err := o.ReadExpression(tbl)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return expr.NewOp(kind, args...)
	default:
		return nil, chk.Err("nlfile: unexpected expression line %q at line %d (want 'n', 'v', or 'o')", line, o.line)
	}
}

// ReadConstraints advances past the per-constraint segment header
// lines (bounds, etc., which this engine does not use) and reads each
// "Ck" marker followed by its expression, returning one expr.Node per
// constraint in index order (§3, original_source/src/nl.h's
// read_nl_constraints).
func (o *Reader) ReadConstraints(tbl *variable.Table, ncon int) ([]expr.Node, error) {
	roots := make([]expr.Node, ncon)
	found := make([]bool, ncon)
	remaining := ncon

	for remaining > 0 {
		line, err := o.nextLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 || line[0] != 'C' {
			continue
		}
		var cidx int
		if _, err := fmt.Sscanf(line[1:], "%d", &cidx); err != nil {
			return nil, chk.Err("nlfile: malformed constraint marker %q: %v", line, err)
		}
		if cidx < 0 || cidx >= ncon {
			return nil, chk.Err("nlfile: constraint index %d out of range [0,%d)", cidx, ncon)
		}
		if found[cidx] {
			return nil, chk.Err("nlfile: constraint %d encountered twice", cidx)
		}
		root, err := o.ReadExpression(tbl)
		if err != nil {
			return nil, err
		}
		roots[cidx] = root
		found[cidx] = true
		remaining--
	}
	return roots, nil
}
