// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variable owns the decision variables shared by every expression
// in a model: a contiguous table indexed by position, holding the current
// value the core reads (and only the core's caller writes) between AD
// passes.
package variable

import (
	"github.com/cpmech/gosl/chk"
)

// Variable is a single decision variable. Index is stable and equals the
// variable's position in its owning Table. Value is mutated only
// externally, between AD passes; the core treats it as read-only.
type Variable struct {
	Index int
	Value float64
}

// Table is a contiguous sequence of Variables, constructed once by the
// reader. No operation in this module allocates new variables.
type Table struct {
	vars []*Variable
}

// NewTable allocates a table of n variables with index 0..n-1 and value 0.
func NewTable(n int) *Table {
	vars := make([]*Variable, n)
	for i := range vars {
		vars[i] = &Variable{Index: i}
	}
	return &Table{vars: vars}
}

// Len returns the number of variables in the table (nvar).
func (o *Table) Len() int {
	return len(o.vars)
}

// At returns the variable at index i, shared by reference with every
// expression leaf that mentions it.
func (o *Table) At(i int) (*Variable, error) {
	if i < 0 || i >= len(o.vars) {
		return nil, chk.Err("variable index out of range: %d (nvar=%d)", i, len(o.vars))
	}
	return o.vars[i], nil
}

// Set assigns the value of variable i. Used by the reader to set initial
// values, and by callers between AD passes; never by the core itself.
func (o *Table) Set(i int, value float64) error {
	v, err := o.At(i)
	if err != nil {
		return err
	}
	v.Value = value
	return nil
}

// Values returns a freshly-allocated dense snapshot of every variable's
// current value, ordered by index. Convenient for finite-difference tests
// that need to perturb one coordinate and restore it.
func (o *Table) Values() []float64 {
	x := make([]float64, len(o.vars))
	for i, v := range o.vars {
		x[i] = v.Value
	}
	return x
}
