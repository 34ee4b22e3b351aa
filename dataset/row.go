// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Row is an immutable observation: explanatory symbols x₀…x_{d−1} followed by
// the response symbol y.
type Row struct {
	symbols []string
}

// NewRow builds a row from its symbols; the last one is the response.
func NewRow(symbols ...string) (Row, error) {
	if len(symbols) < 2 {
		return Row{}, fmt.Errorf("%w: got %d symbols", ErrRowTooShort, len(symbols))
	}
	for i, s := range symbols {
		if s == "" {
			return Row{}, fmt.Errorf("%w at position %d", ErrEmptySymbol, i)
		}
	}
	cp := make([]string, len(symbols))
	copy(cp, symbols)

	return Row{symbols: cp}, nil
}

// MustRow is NewRow for fixtures; it panics on error.
func MustRow(symbols ...string) Row {
	r, err := NewRow(symbols...)
	if err != nil {
		panic(err)
	}

	return r
}

// Len returns the explanatory length d.
func (r Row) Len() int {
	if len(r.symbols) == 0 {
		return 0
	}

	return len(r.symbols) - 1
}

// Explanatory returns x_i.
func (r Row) Explanatory(i int) string { return r.symbols[i] }

// Response returns y.
func (r Row) Response() string { return r.symbols[len(r.symbols)-1] }

// Symbols returns a copy of all symbols, response last.
func (r Row) Symbols() []string {
	out := make([]string, len(r.symbols))
	copy(out, r.symbols)

	return out
}

func (r Row) String() string {
	return "(" + strings.Join(r.symbols, ",") + ")"
}
