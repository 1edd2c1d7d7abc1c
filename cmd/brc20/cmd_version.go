// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoostyLabs/brc20/bitcoin/ord/brc20"
)

// Version defines brc20 command version, overridden on build with -ldflags.
var Version = "v0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show brc20 version",
		// config and logger are not needed.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (protocol %s)\n", Version, brc20.ProtocolID)
		},
	}
}
