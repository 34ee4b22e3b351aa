// SPDX-License-Identifier: MIT

package alphabet

import "errors"

var (
	// ErrEmptyAlphabet is returned when an alphabet is built from no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")

	// ErrEmptySymbol is returned when "" is offered as a symbol.
	ErrEmptySymbol = errors.New("alphabet: empty symbol")

	// ErrTooManySymbols is returned when the deduplicated symbols do not fit
	// into a Label.
	ErrTooManySymbols = errors.New("alphabet: too many symbols")

	// ErrUnknownSymbol is returned when a symbol is not part of the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")
)
