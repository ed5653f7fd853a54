// SPDX-License-Identifier: MIT
// Package cli: the version command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags="-X github.com/katalvlaran/sparsesim/internal/cli.version=1.0.0"
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sparsesim",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sparsesim", version)
		},
	}
}
