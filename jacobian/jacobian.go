// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jacobian assembles the constraint Jacobian by differentiating
// each constraint expression into a CSR row and stacking the rows,
// mirroring the way gofem's finite elements each contribute a stiffness
// block into one shared global la.Triplet (package fem's AddToKb), except
// the contributions here are full rows rather than overlapping blocks.
package jacobian

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/adgraph/ad"
	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/sparse"
)

// Mode selects the differentiation algorithm used per constraint row.
type Mode int

const (
	// Forward selects forward-mode AD (§4.F).
	Forward Mode = iota
	// Reverse selects reverse-mode AD (§4.G).
	Reverse
)

// Builder accumulates one CSR row per constraint before freezing them
// into the stacked Jacobian, the same "stage rows, then assemble" shape
// as gofem's la.Triplet usage (fem/essenbcs.go: stage Puts, then
// A.ToMatrix once).
type Builder struct {
	rows []*sparse.CSRMatrix
}

// NewBuilder creates an empty Builder expected to receive n rows.
func NewBuilder(n int) *Builder {
	return &Builder{rows: make([]*sparse.CSRMatrix, 0, n)}
}

// Add stages one constraint's derivative row.
func (o *Builder) Add(row *sparse.CSRMatrix) {
	o.rows = append(o.rows, row)
}

// Build freezes every staged row into the stacked Jacobian.
func (o *Builder) Build() (*sparse.CSRMatrix, error) {
	return sparse.Stack(o.rows)
}

// DifferentiateAll is the one-shot facade a driver calls: for each
// constraint expression in roots, discover its variables, differentiate
// in the requested mode, and stack the resulting rows into the full
// constraint Jacobian (§1's closing sentence: derivative rows "stacked
// across constraints, constitute the Jacobian of the constraint
// vector"). lastSeen is allocated once and amortized across constraints,
// as §4.E recommends.
func DifferentiateAll(roots []expr.Node, nvar int, mode Mode) (*sparse.CSRMatrix, error) {
	lastSeen := expr.NewLastSeen(nvar)
	b := NewBuilder(len(roots))
	for eidx, root := range roots {
		var row *sparse.CSRMatrix
		var err error
		switch mode {
		case Forward:
			row, err = ad.ForwardRow(root, eidx, lastSeen, nvar)
		case Reverse:
			row, err = ad.ReverseRow(root, eidx, lastSeen, nvar)
		default:
			return nil, chk.Err("jacobian: unknown mode %d", int(mode))
		}
		if err != nil {
			return nil, chk.Err("constraint %d: %v", eidx, err)
		}
		b.Add(row)
	}
	return b.Build()
}
