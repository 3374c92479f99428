// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/joho/godotenv"
)

// environment variables
const (
	EnvWorkers = "GOFRM_WORKERS" // number of concurrent load cases
	EnvVerbose = "GOFRM_VERBOSE" // show messages
	EnvDirOut  = "GOFRM_DIROUT"  // directory for result documents
	EnvSolver  = "GOFRM_SOLVER"  // overrides the model's linear solver
)

// Config holds run options
type Config struct {
	Workers int    // max number of cases running at the same time; ≤ 0 => number of CPUs
	Verbose bool   // show messages
	DirOut  string // directory for result documents
	Solver  string // linear solver name; empty => use model's choice
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.Workers = 0
	o.Verbose = false
	o.DirOut = "/tmp/gofrm"
	o.Solver = ""
}

// LoadConfig returns a configuration with defaults overridden by environment variables.
// Variables in envfiles are loaded first without overriding the ones already set; a missing
// file is not an error.
func LoadConfig(envfiles ...string) (o *Config, err error) {
	for _, fn := range envfiles {
		if _, e := os.Stat(fn); e != nil {
			continue
		}
		if err = godotenv.Load(fn); err != nil {
			return nil, chk.Err("cannot load environment file %q:\n%v", fn, err)
		}
	}
	o = new(Config)
	o.SetDefault()
	if s := os.Getenv(EnvWorkers); s != "" {
		if o.Workers, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return nil, chk.Err("%s must be an integer; got %q", EnvWorkers, s)
		}
	}
	if s := os.Getenv(EnvVerbose); s != "" {
		if o.Verbose, err = strconv.ParseBool(strings.TrimSpace(s)); err != nil {
			return nil, chk.Err("%s must be a boolean; got %q", EnvVerbose, s)
		}
	}
	if s := os.Getenv(EnvDirOut); s != "" {
		o.DirOut = os.ExpandEnv(s)
	}
	if s := os.Getenv(EnvSolver); s != "" {
		o.Solver = strings.TrimSpace(s)
	}
	return
}
