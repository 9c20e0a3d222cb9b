// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/variable"
)

// Node is a tagged variant over three cases: Const, VarRef, Op. It carries
// no adjoint field of its own — reverse mode keeps adjoints in a side
// table keyed by node identity (§9 "eliminate the adjoint field"), so a
// Node is otherwise an inert, shareable description of its subtree.
type Node interface {
	isNode()
}

// Const is a constant leaf.
type Const struct {
	Value float64
}

func (*Const) isNode() {}

// NewConst builds a constant node.
func NewConst(v float64) Node { return &Const{Value: v} }

// VarRef is a non-owning reference to a Variable in a shared Table. Its
// lifetime expectation is that the Table outlives every expression that
// references it; VarRef never releases the Variable it points to.
type VarRef struct {
	V *variable.Variable
}

func (*VarRef) isNode() {}

// NewVarRef builds a reference to a shared variable.
func NewVarRef(v *variable.Variable) Node { return &VarRef{V: v} }

// Op is an n-ary operator node. It exclusively owns Args and, through
// them, the entire subgraph rooted at it — destroying an Op releases its
// whole owned subtree, but never the Variables its VarRef leaves point to.
type Op struct {
	Kind Kind
	Args []Node
}

func (*Op) isNode() {}

// NewOp builds an operator node, validating that len(args) is a legal
// arity for kind (§3 "arity is an invariant of op").
func NewOp(kind Kind, args ...Node) (Node, error) {
	if kind < 0 || kind >= nKinds {
		return nil, aderr.NewInternalError("unknown operator kind %d", int(kind))
	}
	if !arityOK(kind, len(args)) {
		want := "exactly 2"
		switch {
		case arities[kind] == nAry:
			want = "at least 2"
		case arities[kind] == 1:
			want = "exactly 1"
		}
		return nil, aderr.NewArityError(kind.String(), len(args), want)
	}
	return &Op{Kind: kind, Args: args}, nil
}
