// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// Render renders an expression as infix text, for diagnostics only (§6
// says diagnostic output is not a stable interface). Grounded on
// original_source/src/expr.h's to_string/_expr_to_string.
func Render(n Node) string {
	switch e := n.(type) {
	case *Const:
		return io.Sf("%1.3f", e.Value)
	case *VarRef:
		return io.Sf("v%d", e.V.Index)
	case *Op:
		return renderOp(e)
	default:
		return "?"
	}
}

func renderOp(e *Op) string {
	sym := e.Kind.String()
	if len(e.Args) == 1 {
		return io.Sf("%s(%s)", sym, Render(e.Args[0]))
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = Render(a)
	}
	return "(" + strings.Join(parts, " "+sym+" ") + ")"
}
