// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command adgraph reads a .nl constraint file and its JSON run
// configuration, differentiates every constraint, and prints the
// resulting Jacobian. Grounded on the teacher's top-level main.go:
// flag-based argument parsing, a deferred recover boundary reporting
// through gosl/chk and gosl/io, the mpi start/stop bracket dropped
// since this module is explicitly single-threaded (§5 Non-goals).
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/adgraph/ad"
	"github.com/cpmech/adgraph/expr"
	"github.com/cpmech/adgraph/jacobian"
	"github.com/cpmech/adgraph/nlfile"
	"github.com/cpmech/adgraph/sparse"
	"github.com/cpmech/adgraph/variable"
)

var (
	spy      = flag.Bool("spy", false, "also write a sparsity-pattern plot of the Jacobian into <outfile>_spy_dir, or /tmp/adgraph when printing to stdout")
	sweepVar = flag.Int("sweep-var", -1, "re-differentiate across a range of values for this variable index; -1 disables")
	sweepLo  = flag.Float64("sweep-lo", 0, "sweep range lower bound")
	sweepHi  = flag.Float64("sweep-hi", 1, "sweep range upper bound")
	sweepN   = flag.Int("sweep-n", 11, "number of sweep points")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.Pf("\nadgraph -- automatic differentiation over .nl constraint files\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide a configuration filename. Ex.: adgraph run.json")
	}
	cfgPath := flag.Arg(0)

	cfg, err := nlfile.ReadConfig(cfgPath)
	if err != nil {
		chk.Panic("%v", err)
	}

	fp, err := os.Open(cfg.NLFile)
	if err != nil {
		chk.Panic("cannot open .nl file %q: %v", cfg.NLFile, err)
	}
	defer fp.Close()

	rd := nlfile.NewReader(fp)
	header, err := rd.ReadHeader()
	if err != nil {
		chk.Panic("%v", err)
	}

	tbl := variable.NewTable(header.NVar)
	if err := rd.ReadVariables(tbl); err != nil {
		chk.Panic("%v", err)
	}
	if err := cfg.ApplyOverrides(tbl); err != nil {
		chk.Panic("%v", err)
	}
	roots, err := rd.ReadConstraints(tbl, header.NCon)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("read %d variables, %d constraints from %q\n", header.NVar, header.NCon, cfg.NLFile)

	if cfg.Check {
		for i, root := range roots {
			if err := ad.CheckAgreement(root, header.NVar); err != nil {
				chk.Panic("constraint %d: forward/reverse disagreement: %v", i, err)
			}
		}
		io.Pfgreen("forward and reverse mode agree on every constraint\n")
	}

	mode := jacobian.Forward
	if cfg.Mode == nlfile.ReverseMode {
		mode = jacobian.Reverse
	}
	jac, err := jacobian.DifferentiateAll(roots, header.NVar, mode)
	if err != nil {
		chk.Panic("%v", err)
	}

	if cfg.OutFile != "" {
		out, err := os.Create(cfg.OutFile)
		if err != nil {
			chk.Panic("cannot create output file %q: %v", cfg.OutFile, err)
		}
		defer out.Close()
		sparse.Print(out, jac)
	} else {
		sparse.PrintStdout(jac)
	}

	if *spy {
		writeSpyPlot(jac, cfg.OutFile)
	}

	if *sweepVar >= 0 {
		runSweep(roots, tbl, header.NVar, mode, *sweepVar)
	}
}

// runSweep re-differentiates every constraint at a range of values for
// one variable, reporting how the Jacobian's entries respond — a quick
// sanity sweep before trusting a Jacobian at a single point. The sweep
// points come from gosl/utl.LinSpace, the same helper
// mdl/solid/t_hyperelast1_test.go uses to build its own strain sweeps.
func runSweep(roots []expr.Node, tbl *variable.Table, nvar int, mode jacobian.Mode, varIdx int) {
	orig := tbl.Values()[varIdx]
	defer tbl.Set(varIdx, orig)

	xs := utl.LinSpace(*sweepLo, *sweepHi, *sweepN)
	io.Pf("\nsweeping variable %d over %d points in [%g, %g]\n", varIdx, *sweepN, *sweepLo, *sweepHi)
	for _, x := range xs {
		if err := tbl.Set(varIdx, x); err != nil {
			chk.Panic("%v", err)
		}
		jac, err := jacobian.DifferentiateAll(roots, nvar, mode)
		if err != nil {
			chk.Panic("sweep at x=%g: %v", x, err)
		}
		io.Pf("  x=%-10.4f nnz=%d\n", x, jac.NNZ)
	}
}

// writeSpyPlot renders the Jacobian's sparsity pattern via gosl/plt,
// the same plotting library gofem's ana and mdl packages use for
// diagnostic output (e.g. ana/t_colpresfluid_test.go's Plot/Gll/Save
// sequence), saved as "adgraph_spy.eps" in the directory
// "<outfile>_spy_dir", or in /tmp/adgraph when printing to stdout.
func writeSpyPlot(m *sparse.CSRMatrix, outfile string) {
	rows := make([]float64, 0, m.NNZ)
	cols := make([]float64, 0, m.NNZ)
	for i := 0; i < m.NRow; i++ {
		for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
			rows = append(rows, float64(i))
			cols = append(cols, float64(m.Indices[k]))
		}
	}
	plt.Plot(cols, rows, &plt.A{C: "b", Ls: "."})
	plt.Gll("column", "row", nil)

	dir := "/tmp/adgraph"
	if outfile != "" {
		dir = outfile + "_spy_dir"
	}
	plt.Save(dir, "adgraph_spy.eps")
}
