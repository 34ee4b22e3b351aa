// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Dataset is a non-empty, immutable, ordered collection of rows with equal
// explanatory length. The zero value is invalid; use New.
type Dataset struct {
	rows  []Row
	depth int
}

// New validates rows and wraps them into a Dataset.
//
// Errors: ErrEmptyDataset, ErrRowTooShort (zero Row values),
// ErrInconsistentLength.
func New(rows ...Row) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	depth := rows[0].Len()
	for i, r := range rows {
		if r.Len() == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrRowTooShort, i)
		}
		if r.Len() != depth {
			return nil, fmt.Errorf("%w: row %d has %d explanatory symbols, want %d",
				ErrInconsistentLength, i, r.Len(), depth)
		}
	}
	cp := make([]Row, len(rows))
	copy(cp, rows)

	return &Dataset{rows: cp, depth: depth}, nil
}

// FromRecords builds a dataset from raw symbol records, each one turned into
// a Row with NewRow.
func FromRecords(records [][]string) (*Dataset, error) {
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		r, err := NewRow(rec...)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, r)
	}

	return New(rows...)
}

// Len returns the number of rows N.
func (d *Dataset) Len() int { return len(d.rows) }

// Depth returns the shared explanatory length d.
func (d *Dataset) Depth() int { return d.depth }

// Row returns the i-th row.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Rows returns a copy of the row slice. Rows themselves are immutable.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)

	return out
}

// Symbols returns every distinct symbol (explanatory or response) in order
// of first appearance, scanning rows left to right. It is the natural input
// for alphabet.New when no alphabet is declared up front.
func (d *Dataset) Symbols() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.rows {
		for _, s := range r.symbols {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
