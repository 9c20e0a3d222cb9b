// Copyright 2026 The Adgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlfile

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/adgraph/variable"
)

// ModeName selects a differentiation mode by its JSON config name; the
// driver (package cmd/adgraph) translates it into a jacobian.Mode.
type ModeName string

const (
	ForwardMode ModeName = "forward"
	ReverseMode ModeName = "reverse"
)

// Config holds the run configuration that accompanies a .nl file: which
// differentiation mode to use, whether to cross-check forward against
// reverse mode, and where to write the resulting Jacobian. It is a JSON
// sidecar to the .nl file itself, the same split gofem uses between a
// .sim JSON config and the mesh/material files it references
// (inp/sim.go's Data).
type Config struct {
	NLFile    string    `json:"nlfile"`    // path to the .nl file, relative to the config file's directory
	Mode      ModeName  `json:"mode"`      // "forward" or "reverse"
	Check     bool      `json:"check"`     // cross-check forward vs. reverse agreement before reporting (§8 property 1)
	OutFile   string    `json:"outfile"`   // optional path to write the CSR dump; empty means stdout
	Overrides []fun.Prm `json:"overrides"` // variable initial-value overrides, applied after the .nl file's own "x" segment
}

// ApplyOverrides assigns each override's value into tbl, keyed by the
// variable's index encoded as the override's name (fun.Prm's N field),
// the same named-parameter-list shape mdl/solid's material models use
// for their own construction-time parameter lists. Lets a config file
// pin a handful of starting values without editing the .nl file.
func (o *Config) ApplyOverrides(tbl *variable.Table) error {
	for _, prm := range o.Overrides {
		idx, err := strconv.Atoi(prm.N)
		if err != nil {
			return chk.Err("nlfile: override name %q is not a variable index", prm.N)
		}
		if err := tbl.Set(idx, prm.V); err != nil {
			return err
		}
	}
	return nil
}

// SetDefault fills in Config fields left unset (zero value) by the
// JSON file, mirroring inp/sim.go's SetDefault pattern for its
// sub-structs.
func (o *Config) SetDefault() {
	if o.Mode == "" {
		o.Mode = ForwardMode
	}
}

// ReadConfig reads and unmarshals a JSON run configuration from
// path, resolving its NLFile field relative to path's directory so the
// config can be invoked from any working directory. Grounded on
// inp/sim.go's ReadSim: gosl/io.ReadFile followed by
// encoding/json.Unmarshal.
func ReadConfig(path string) (*Config, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("nlfile: cannot read config file %q: %v", path, err)
	}

	var cfg Config
	cfg.SetDefault()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, chk.Err("nlfile: cannot unmarshal config file %q: %v", path, err)
	}

	if cfg.NLFile == "" {
		return nil, chk.Err("nlfile: config file %q has no \"nlfile\" field", path)
	}
	if cfg.Mode != ForwardMode && cfg.Mode != ReverseMode {
		return nil, chk.Err("nlfile: config file %q has unknown mode %q, want %q or %q", path, cfg.Mode, ForwardMode, ReverseMode)
	}
	if !filepath.IsAbs(cfg.NLFile) {
		cfg.NLFile = filepath.Join(filepath.Dir(path), cfg.NLFile)
	}

	return &cfg, nil
}
