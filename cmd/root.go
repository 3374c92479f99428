// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofrm",
	Short: "Linear static analysis of 3D frames and flat shells",
	Long: `gofrm - Go Finite Element Method for 3D frames

Solves all load cases of a structural model given as a JSON document
(optionally gzipped) and writes displacements, support reactions and
section forces of each case to a results document.

Options are read from a .env file in the working directory, then from
GOFRM_* environment variables, then from command line flags.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
