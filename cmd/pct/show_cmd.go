// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coderodde/pctree/store"
	"github.com/coderodde/pctree/tree"
)

type showCmdConfig struct {
	*rootCmdConfig
	treeInput string
	storePath string
	key       string
	list      bool
	scores    bool
	context   string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	sc := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a learned tree",
		Long:  `Show a tree read from a JSON file or a tree store, optionally with the prediction for a context.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sc.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sc.list {
				return sc.listKeys(out)
			}
			t, err := sc.loadTree()
			if err != nil {
				return err
			}
			if sc.context != "" {
				return printPrediction(out, t, strings.Split(sc.context, ","))
			}
			fmt.Fprintf(out, "# depth=%d leaves=%d score=%.6f\n", t.Depth(), len(t.Leaves()), t.Score())

			return t.Dump(out, sc.scores)
		},
	}
	cmd.Flags().StringVarP(&(sc.treeInput), "tree", "t", "", "path to a JSON tree written by learn")
	cmd.Flags().StringVar(&(sc.storePath), "store", "", "BadgerDB directory to read the tree from (defaults to the configured store)")
	cmd.Flags().StringVarP(&(sc.key), "key", "k", "", "key of the tree in the store")
	cmd.Flags().BoolVarP(&(sc.list), "list", "l", false, "list the keys in the store")
	cmd.Flags().BoolVar(&(sc.scores), "scores", false, "include node scores, weights and distributions")
	cmd.Flags().StringVar(&(sc.context), "context", "", "comma-separated context, oldest symbol first, to predict the response for")

	return cmd
}

func (sc *showCmdConfig) Validate() error {
	if sc.storePath == "" {
		sc.storePath = sc.cfg.Store.Path
	}
	if sc.list {
		if sc.storePath == "" {
			return fmt.Errorf("list flag requires a store")
		}
		return nil
	}
	if (sc.treeInput == "") == (sc.key == "") {
		return fmt.Errorf("exactly one of the tree and key flags must be set")
	}
	if sc.key != "" && sc.storePath == "" {
		return fmt.Errorf("key flag requires a store")
	}

	return nil
}

func (sc *showCmdConfig) openStore() (*store.Badger, error) {
	return store.OpenBadger(store.Config{Path: sc.storePath, Logger: sc.logger})
}

func (sc *showCmdConfig) listKeys(w io.Writer) error {
	st, err := sc.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	keys, err := st.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(w, k)
	}

	return nil
}

func (sc *showCmdConfig) loadTree() (*tree.Tree, error) {
	if sc.key != "" {
		st, err := sc.openStore()
		if err != nil {
			return nil, err
		}
		defer st.Close()

		return st.Get(sc.key)
	}

	f, err := os.Open(sc.treeInput)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %w", sc.treeInput, err)
	}
	defer f.Close()
	t := new(tree.Tree)
	if err := json.NewDecoder(f).Decode(t); err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %w", sc.treeInput, err)
	}

	return t, nil
}

func printPrediction(w io.Writer, t *tree.Tree, context []string) error {
	for i := range context {
		context[i] = strings.TrimSpace(context[i])
	}
	leaf, err := t.Leaf(context)
	if err != nil {
		return err
	}
	a := t.Alphabet()
	fmt.Fprintf(w, "# leaf %s weight=%d\n", a.Format(leaf.Label), leaf.Weight)
	for i, p := range leaf.Distribution {
		fmt.Fprintf(w, "%s\t%.6f\n", a.Symbol(i), p)
	}

	return nil
}
