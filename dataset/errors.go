// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when a dataset would hold no rows.
	ErrEmptyDataset = errors.New("dataset: no rows")

	// ErrRowTooShort is returned for rows with fewer than two symbols.
	ErrRowTooShort = errors.New("dataset: row needs at least one explanatory and one response symbol")

	// ErrInconsistentLength is returned when rows disagree on their
	// explanatory length.
	ErrInconsistentLength = errors.New("dataset: inconsistent row length")

	// ErrEmptySymbol is returned when a row contains "".
	ErrEmptySymbol = errors.New("dataset: empty symbol")

	// ErrBadSize is returned for non-positive sizes (depth, row count,
	// symbol count) given to loaders and the generator.
	ErrBadSize = errors.New("dataset: invalid size")

	// ErrOptionViolation is returned when a generator option is meaningless.
	ErrOptionViolation = errors.New("dataset: invalid option value")
)
