// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/adgraph/aderr"
	"github.com/cpmech/adgraph/variable"
)

// varListNode is the internal head-insertion linked list used during
// discovery, grounded on original_source/src/sparse.h's VarListNode.
type varListNode struct {
	next *varListNode
	v    *variable.Variable
}

// Discover walks expr in pre-order and returns the distinct variables it
// references, in the reverse of first-encounter order (§3, §4.E — an
// artifact of head-insertion during discovery). lastSeen is a
// caller-owned buffer of length nvar, initialized to -1 by the caller and
// amortized across constraints by passing a distinct eidx per call; this
// function stamps the positions of variables it visits with eidx so a
// repeat within this one expression is skipped in O(1).
//
// The returned slice's length is nnz, the number of structural non-zeros
// the resulting derivative row will have.
func Discover(root Node, eidx int, lastSeen []int) ([]*variable.Variable, error) {
	var head *varListNode
	if _, err := discover(root, eidx, lastSeen, &head); err != nil {
		return nil, err
	}
	nnz := 0
	for n := head; n != nil; n = n.next {
		nnz++
	}
	wrt := make([]*variable.Variable, nnz)
	n := head
	for i := 0; i < nnz; i++ {
		wrt[i] = n.v
		n = n.next
	}
	return wrt, nil
}

func discover(n Node, eidx int, lastSeen []int, head **varListNode) (int, error) {
	switch e := n.(type) {
	case *Const:
		return 0, nil
	case *VarRef:
		idx := e.V.Index
		if idx < 0 || idx >= len(lastSeen) {
			return 0, aderr.NewInternalError("variable index %d out of range (nvar=%d)", idx, len(lastSeen))
		}
		if lastSeen[idx] == eidx {
			return 0, nil
		}
		lastSeen[idx] = eidx
		*head = &varListNode{next: *head, v: e.V}
		return 1, nil
	case *Op:
		count := 0
		for _, a := range e.Args {
			c, err := discover(a, eidx, lastSeen, head)
			if err != nil {
				return 0, err
			}
			count += c
		}
		return count, nil
	default:
		return 0, aderr.NewInternalError("unknown node type %T", n)
	}
}

// NewLastSeen allocates a lastSeen buffer of length nvar, initialized to
// the sentinel -1, ready to be amortized across many Discover calls with
// distinct eidx values.
func NewLastSeen(nvar int) []int {
	buf := make([]int, nvar)
	for i := range buf {
		buf[i] = -1
	}
	return buf
}
