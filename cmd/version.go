// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version of gofrm
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofrm",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("gofrm v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
