// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"strings"
)

// MaxSize is the largest supported alphabet: every symbol needs one bit of a
// Label and the full label must stay below 1<<63 so counts fit an int.
const MaxSize = 63

// Alphabet is an ordered, deduplicated, non-empty set of symbols.
// It is immutable after New and safe for concurrent use.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// New builds an alphabet from symbols, dropping duplicates while keeping the
// position of the first occurrence.
//
// Errors: ErrEmptyAlphabet, ErrEmptySymbol, ErrTooManySymbols.
func New(symbols ...string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		symbols: make([]string, 0, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for _, s := range symbols {
		if s == "" {
			return nil, ErrEmptySymbol
		}
		if _, dup := a.index[s]; dup {
			continue
		}
		if len(a.symbols) == MaxSize {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManySymbols, MaxSize)
		}
		a.index[s] = len(a.symbols)
		a.symbols = append(a.symbols, s)
	}

	return a, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Contains reports whether s is a symbol of a.
func (a *Alphabet) Contains(s string) bool {
	_, ok := a.index[s]
	return ok
}

// Index returns the position of s, or false when s is unknown.
func (a *Alphabet) Index(s string) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// Symbol returns the symbol at position i. It panics when i is out of range,
// like a slice index would.
func (a *Alphabet) Symbol(i int) string { return a.symbols[i] }

// Symbols returns a copy of the symbols in insertion order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Full returns the label holding every symbol.
func (a *Alphabet) Full() Label { return Label(1)<<uint(len(a.symbols)) - 1 }

// LabelCount returns the number of non-empty subsets, 2ⁿ−1.
func (a *Alphabet) LabelCount() int { return int(a.Full()) }

// Labels enumerates all non-empty subsets in increasing bit order, so the
// label L sits at position L−1.
//
// Complexity: O(2ⁿ) time and memory.
func (a *Alphabet) Labels() []Label {
	full := a.Full()
	out := make([]Label, 0, int(full))
	for l := Label(1); l <= full; l++ {
		out = append(out, l)
	}

	return out
}

// LabelOf returns the label of the given symbols. Duplicates are harmless.
func (a *Alphabet) LabelOf(symbols ...string) (Label, error) {
	var l Label
	for _, s := range symbols {
		i, ok := a.index[s]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
		}
		l |= 1 << uint(i)
	}

	return l, nil
}

// SymbolsOf returns the symbols of l in alphabet order. Bits beyond the
// alphabet are ignored.
func (a *Alphabet) SymbolsOf(l Label) []string {
	l &= a.Full()
	out := make([]string, 0, l.Len())
	for _, i := range l.Indices() {
		out = append(out, a.symbols[i])
	}

	return out
}

// Format renders l as a symbol set, e.g. "{A, C}". The empty label is "{}".
func (a *Alphabet) Format(l Label) string {
	return "{" + strings.Join(a.SymbolsOf(l), ", ") + "}"
}

// String renders the whole alphabet as a symbol set.
func (a *Alphabet) String() string { return a.Format(a.Full()) }
