// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/partition"
)

type partitionsCmdConfig struct {
	*rootCmdConfig
	size    int
	blocks  int
	symbols []string
	count   bool
}

func partitionsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	pc := &partitionsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "partitions",
		Short: "Enumerate the partitions of an alphabet",
		Long:  `Enumerate set partitions in restricted growth string order, all of them or those with a given number of blocks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var a *alphabet.Alphabet
			if len(pc.symbols) > 0 {
				var err error
				if a, err = alphabet.New(pc.symbols...); err != nil {
					return err
				}
				pc.size = a.Size()
			}
			out := cmd.OutOrStdout()
			if pc.count {
				if pc.blocks > 0 {
					fmt.Fprintln(out, partition.Stirling2(pc.size, pc.blocks))
				} else {
					fmt.Fprintln(out, partition.Bell(pc.size))
				}
				return nil
			}

			var parts []partition.Partition
			var err error
			if pc.blocks > 0 {
				parts, err = partition.Generate(pc.size, pc.blocks)
			} else {
				parts, err = partition.All(pc.size)
			}
			if err != nil {
				return err
			}
			for _, p := range parts {
				if a == nil {
					fmt.Fprintln(out, p)
					continue
				}
				blocks := make([]string, len(p))
				for i, l := range p {
					blocks[i] = a.Format(l)
				}
				fmt.Fprintln(out, strings.Join(blocks, " "))
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&(pc.size), "size", "n", 3, "number of elements (ignored with --alphabet)")
	cmd.Flags().IntVarP(&(pc.blocks), "blocks", "b", 0, "exact number of blocks (0 enumerates every block count)")
	cmd.Flags().StringSliceVarP(&(pc.symbols), "alphabet", "a", nil, "render blocks with these symbols")
	cmd.Flags().BoolVar(&(pc.count), "count", false, "print only the number of partitions")

	return cmd
}
