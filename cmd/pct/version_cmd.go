// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in pct's version
	VersionMajor = 0
	// VersionMinor is the minor number in pct's version
	VersionMinor = 1
	// VersionPatch is the patch number in pct's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pct",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pct v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
