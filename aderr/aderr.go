// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aderr defines the typed error values produced by the AD core
// (spec §7). All are fatal for the row that produced them and must be
// surfaced to the caller: the core never recovers locally or retries.
// Each wraps a github.com/cpmech/gosl/chk.Err message so it prints the
// same caller-located, formatted text as the rest of this module while
// still being distinguishable with errors.As.
package aderr

import (
	"github.com/cpmech/gosl/chk"
)

// DomainError reports an operator evaluated outside its domain: division
// by zero, square root of a negative number, or log of a non-positive
// number. Op, ArgText and Value carry the diagnostic payload §7 requires.
type DomainError struct {
	Op      string  // offending operator's symbol
	ArgText string  // offending argument, rendered as text
	Value   float64 // the ill-defined value
	msg     error
}

func NewDomainError(op, argText string, value float64) *DomainError {
	return &DomainError{
		Op:      op,
		ArgText: argText,
		Value:   value,
		msg:     chk.Err("%s: argument %q evaluates to %v, outside the operator's domain", op, argText, value),
	}
}

func (e *DomainError) Error() string { return e.msg.Error() }
func (e *DomainError) Unwrap() error { return e.msg }

// ArityError reports an operator node observed with an argument count
// inconsistent with its kind.
type ArityError struct {
	Op     string
	Nargs  int
	Wanted string
	msg    error
}

func NewArityError(op string, nargs int, wanted string) *ArityError {
	return &ArityError{
		Op:     op,
		Nargs:  nargs,
		Wanted: wanted,
		msg:    chk.Err("%s: got %d argument(s), want %s", op, nargs, wanted),
	}
}

func (e *ArityError) Error() string { return e.msg.Error() }
func (e *ArityError) Unwrap() error { return e.msg }

// InternalError reports a violated invariant of the core itself: a
// forward-mode variable leaf visited twice, a variable index out of
// range during discovery, or a broken CSR invariant. These indicate a
// malformed expression tree (e.g. a shared variable leaf in what must be
// a tree) rather than a bad numeric input.
type InternalError struct {
	msg error
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{msg: chk.Err(format, args...)}
}

func (e *InternalError) Error() string { return e.msg.Error() }
func (e *InternalError) Unwrap() error { return e.msg }

// UnsupportedOperatorError is surfaced by the .nl reader (package nlfile)
// when an opcode maps to the unsupported sentinel. The core never
// produces this error, but assumes the reader's guarantee that it will
// never see an unsupported opcode reach an expression tree.
type UnsupportedOperatorError struct {
	Opcode int
	msg    error
}

func NewUnsupportedOperatorError(opcode int) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{
		Opcode: opcode,
		msg:    chk.Err("opcode %d does not map to a supported operator", opcode),
	}
}

func (e *UnsupportedOperatorError) Error() string { return e.msg.Error() }
func (e *UnsupportedOperatorError) Unwrap() error { return e.msg }
