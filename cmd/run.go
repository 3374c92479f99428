// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/fem"
	"github.com/gofrm/gofrm/inp"
	"github.com/gofrm/gofrm/out"
	"github.com/spf13/cobra"
)

var (
	runWorkers int
	runVerbose bool
	runDirOut  string
	runSolver  string
	runEnvFile string
)

var runCmd = &cobra.Command{
	Use:   "run MODEL...",
	Short: "Solve all load cases of one or more models",
	Long: `Solve all load cases of one or more models and write one results
document per model to the output directory.

Examples:
  # Solve a model with the default options
  gofrm run examples/portal.json

  # Use 4 workers and write results to ./results
  gofrm run --workers 4 --dirout results examples/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", 0, "Max number of cases solved at the same time; 0 => number of CPUs")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show messages")
	runCmd.Flags().StringVarP(&runDirOut, "dirout", "o", "", "Directory for results documents")
	runCmd.Flags().StringVar(&runSolver, "solver", "", "Linear solver: band, lu or chol")
	runCmd.Flags().StringVar(&runEnvFile, "env", ".env", "Environment file with GOFRM_* variables")
}

func runModels(cmd *cobra.Command, args []string) (err error) {

	// configuration
	cfg, err := inp.LoadConfig(runEnvFile)
	if err != nil {
		return
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = runWorkers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if flags.Changed("dirout") {
		cfg.DirOut = runDirOut
	}
	if flags.Changed("solver") {
		cfg.Solver = runSolver
	}

	// models
	nfailed := 0
	for _, fn := range args {
		if e := runModel(fn, cfg); e != nil {
			io.PfRed("%s: %v\n", fn, e)
			nfailed++
		}
	}
	if nfailed > 0 {
		return chk.Err("%d of %d models failed", nfailed, len(args))
	}
	return
}

// runModel solves one model and writes its results document
func runModel(fn string, cfg *inp.Config) (err error) {
	m, err := fem.NewMain(fn, cfg)
	if err != nil {
		return
	}
	runErr := m.Run()
	doc := out.NewDocument(m)
	res, err := out.Write(cfg.DirOut, m.Model.Key, doc)
	if err != nil {
		return
	}
	io.Pf("%s", out.Summary(doc))
	io.Pf("file <%s> written\n", res)
	return runErr
}
