// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderodde/pctree/dataset"
)

type generateCmdConfig struct {
	*rootCmdConfig
	symbols []string
	rows    int
	depth   int
	seed    int64
	signal  float64
	output  string
}

func generateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	gc := &generateCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic CSV dataset",
		Long:  `Generate a reproducible dataset whose response copies the last explanatory symbol with the given probability and is uniform otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.Generate(gc.symbols, gc.rows, gc.depth,
				dataset.WithSeed(gc.seed),
				dataset.WithSignal(gc.signal),
			)
			if err != nil {
				return err
			}
			gc.logger.Debug("dataset generated", slog.Int("rows", d.Len()), slog.Int("depth", d.Depth()))

			if gc.output == "" {
				return dataset.WriteCSV(cmd.OutOrStdout(), d)
			}

			return writeFile(gc.output, func(w io.Writer) error { return dataset.WriteCSV(w, d) })
		},
	}
	cmd.Flags().StringSliceVarP(&(gc.symbols), "alphabet", "a", []string{"A", "C", "G", "T"}, "symbols to draw from")
	cmd.Flags().IntVarP(&(gc.rows), "rows", "n", 100, "number of rows")
	cmd.Flags().IntVarP(&(gc.depth), "depth", "d", 2, "explanatory symbols per row")
	cmd.Flags().Int64Var(&(gc.seed), "seed", 1, "random seed")
	cmd.Flags().Float64Var(&(gc.signal), "signal", 0.5, "probability that the response copies the last explanatory symbol")
	cmd.Flags().StringVarP(&(gc.output), "output", "o", "", "path to the CSV file to write (defaults to STDOUT)")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
