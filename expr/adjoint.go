// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Adjoints is the side table reverse-mode AD uses to hold each visited
// node's adjoint (§3 "a mutable adjoint... logically scoped to a [reverse]
// pass"). Keying by the Node's own pointer identity plays the role of the
// arena index §9 describes ("a side table keyed by node identity... reset
// per pass"); a fresh Adjoints is created for every reverse-mode call and
// discarded at the end of it, so concurrent reverse passes over disjoint
// expression graphs never share state (§5).
type Adjoints map[Node]float64

// NewAdjoints allocates an empty adjoint table.
func NewAdjoints() Adjoints { return make(Adjoints) }

// Set assigns (not accumulates) the adjoint of n. Assignment, rather than
// accumulation, is valid because expressions here are trees: each
// operator node has exactly one parent (§4.G, §9).
func (a Adjoints) Set(n Node, value float64) { a[n] = value }

// Get returns the adjoint of n, or 0 if n has not been visited yet.
func (a Adjoints) Get(n Node) float64 { return a[n] }
