// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coderodde/pctree/config"
	"github.com/coderodde/pctree/learn"
	"github.com/coderodde/pctree/metrics"
	"github.com/coderodde/pctree/store"
	"github.com/coderodde/pctree/tree"
)

type learnCmdConfig struct {
	*rootCmdConfig
	inputConfig
	inputs      []string
	algorithm   string
	output      string
	asJSON      bool
	scores      bool
	storePath   string
	metricsFile string
}

type learnResult struct {
	input     string
	algorithm learn.Algorithm
	tree      *tree.Tree
	key       string
}

func learnCmd(rootConfig *rootCmdConfig) *cobra.Command {
	lc := &learnCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn a context tree from data",
		Long:  `Learn the BIC-optimal parsimonious context tree of every input file. Several inputs are learned concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lc.Validate(); err != nil {
				return err
			}
			cfg := lc.cfg
			if lc.algorithm != "" {
				cfg.Algorithm = lc.algorithm
			}
			if lc.storePath != "" {
				cfg.Store.Path = lc.storePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return lc.run(cmd, cfg)
		},
	}
	cmd.Flags().StringSliceVarP(&(lc.inputs), "input", "i", nil, "path to an input file; repeat for several (defaults to STDIN, '-')")
	cmd.Flags().StringVarP(&(lc.format), "format", "f", "csv", "input format: csv (explanatory symbols then response per record) or sequence (symbol stream)")
	cmd.Flags().IntVarP(&(lc.depth), "depth", "d", 0, "context depth for sequence input")
	cmd.Flags().BoolVar(&(lc.perRune), "per-rune", false, "treat every character of a sequence as a symbol")
	cmd.Flags().StringVar(&(lc.comma), "comma", ",", "CSV field separator")
	cmd.Flags().StringSliceVarP(&(lc.symbols), "alphabet", "a", nil, "alphabet symbols (defaults to the sorted symbols of each input)")
	cmd.Flags().StringVar(&(lc.algorithm), "algorithm", "", "optimal, greedy, random or independence (overrides the configuration)")
	cmd.Flags().StringVarP(&(lc.output), "output", "o", "", "path to a file the tree is written to in JSON (single input only)")
	cmd.Flags().BoolVar(&(lc.asJSON), "json", false, "print trees as JSON instead of the indented dump")
	cmd.Flags().BoolVar(&(lc.scores), "scores", false, "include node scores, weights and distributions in the dump")
	cmd.Flags().StringVar(&(lc.storePath), "store", "", "BadgerDB directory learned trees are saved to (overrides the configuration)")
	cmd.Flags().StringVar(&(lc.metricsFile), "metrics-file", "", "path to write Prometheus metrics to in text format")

	return cmd
}

func (lc *learnCmdConfig) Validate() error {
	if err := lc.inputConfig.Validate(); err != nil {
		return err
	}
	if len(lc.inputs) == 0 {
		lc.inputs = []string{stdinPath}
	}
	stdin := 0
	for _, in := range lc.inputs {
		if in == stdinPath {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("standard input can only be read once")
	}
	if lc.output != "" && len(lc.inputs) > 1 {
		return fmt.Errorf("output flag requires a single input")
	}

	return nil
}

func (lc *learnCmdConfig) run(cmd *cobra.Command, cfg config.Config) error {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	results := make([]learnResult, len(lc.inputs))
	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i, in := range lc.inputs {
		i, in := i, in
		g.Go(func() error {
			r, err := lc.learnOne(cmd.InOrStdin(), cfg, rec, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			results[i] = r

			return nil
		})
	}
	err := g.Wait()
	if lc.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(lc.metricsFile, reg); werr != nil {
			lc.logger.Error("writing metrics", slog.String("path", lc.metricsFile), slog.String("error", werr.Error()))
		}
	}
	if err != nil {
		return err
	}

	if cfg.Store.Path != "" {
		if err := lc.save(cfg, results); err != nil {
			return err
		}
	}
	if lc.output != "" {
		return writeTreeFile(lc.output, results[0].tree)
	}

	return lc.print(cmd.OutOrStdout(), results)
}

func (lc *learnCmdConfig) learnOne(stdin io.Reader, cfg config.Config, rec *metrics.Recorder, in string) (learnResult, error) {
	d, err := lc.readDataset(in, stdin)
	if err != nil {
		return learnResult{}, err
	}
	a, err := lc.alphabetFor(d)
	if err != nil {
		return learnResult{}, err
	}
	logger := lc.logger.With(slog.String("input", in))
	l, err := cfg.LearnerFor(a.Size(), logger, rec.Options)
	if err != nil {
		return learnResult{}, err
	}
	alg := l.Algorithm()

	logger.Info("learning",
		slog.Int("rows", d.Len()),
		slog.Int("depth", d.Depth()),
		slog.String("alphabet", a.String()),
		slog.String("algorithm", alg.String()),
	)
	start := time.Now()
	t, err := l.Learn(a, d)
	elapsed := time.Since(start)
	rec.ObserveRun(alg, t, err, elapsed)
	if err != nil {
		return learnResult{}, err
	}
	logger.Info("learned",
		slog.Float64("score", t.Score()),
		slog.Int("leaves", len(t.Leaves())),
		slog.Duration("elapsed", elapsed),
	)

	return learnResult{input: in, algorithm: alg, tree: t}, nil
}

func (lc *learnCmdConfig) save(cfg config.Config, results []learnResult) error {
	st, err := store.OpenBadger(store.Config{
		Path:       cfg.Store.Path,
		SyncWrites: cfg.Store.SyncWrites,
		Logger:     lc.logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	for i := range results {
		key := uuid.NewString()
		if err := st.Put(key, results[i].tree); err != nil {
			return fmt.Errorf("%s: %w", results[i].input, err)
		}
		results[i].key = key
		lc.logger.Info("tree stored", slog.String("input", results[i].input), slog.String("key", key))
	}

	return nil
}

func (lc *learnCmdConfig) print(w io.Writer, results []learnResult) error {
	for _, r := range results {
		if lc.asJSON {
			data, err := json.Marshal(r.tree)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
			continue
		}
		header := []string{"# " + r.input, "algorithm=" + r.algorithm.String(), fmt.Sprintf("score=%.6f", r.tree.Score())}
		if r.key != "" {
			header = append(header, "key="+r.key)
		}
		if _, err := fmt.Fprintln(w, strings.Join(header, " ")); err != nil {
			return err
		}
		if err := r.tree.Dump(w, lc.scores); err != nil {
			return err
		}
	}

	return nil
}

func writeTreeFile(path string, t *tree.Tree) error {
	return writeFile(path, func(w io.Writer) error { return json.NewEncoder(w).Encode(t) })
}
