// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
)

const stdinPath = "-"

// inputConfig describes how data files are parsed.
type inputConfig struct {
	format  string
	depth   int
	perRune bool
	comma   string
	symbols []string
}

func (ic *inputConfig) Validate() error {
	switch ic.format {
	case "csv":
		if utf8.RuneCountInString(ic.comma) != 1 {
			return fmt.Errorf("comma must be a single character, got %q", ic.comma)
		}
	case "sequence":
		if ic.depth < 1 {
			return fmt.Errorf("sequence input requires a positive depth flag")
		}
	default:
		return fmt.Errorf("unknown input format %q (csv, sequence)", ic.format)
	}

	return nil
}

// readDataset parses path, or standard input for "-".
func (ic *inputConfig) readDataset(path string, stdin io.Reader) (*dataset.Dataset, error) {
	r := stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening data at %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if ic.format == "sequence" {
		return dataset.ReadSequence(r, ic.depth, ic.perRune)
	}
	c, _ := utf8.DecodeRuneInString(ic.comma)

	return dataset.ReadCSV(r, c)
}

// alphabetFor returns the configured alphabet, or the sorted symbols of d.
func (ic *inputConfig) alphabetFor(d *dataset.Dataset) (*alphabet.Alphabet, error) {
	if len(ic.symbols) > 0 {
		return alphabet.New(ic.symbols...)
	}
	syms := d.Symbols()
	slices.Sort(syms)

	return alphabet.New(syms...)
}
