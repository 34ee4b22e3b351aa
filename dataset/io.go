// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ReadCSV reads one row per record: explanatory symbols first, response last.
// Fields are trimmed; lines starting with '#' are comments. A zero comma
// means ','.
func ReadCSV(r io.Reader, comma rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // length checks belong to New

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: reading csv: %w", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		records = append(records, rec)
	}

	return FromRecords(records)
}

// WriteCSV writes d in the format ReadCSV accepts.
func WriteCSV(w io.Writer, d *Dataset) error {
	cw := csv.NewWriter(w)
	for _, r := range d.rows {
		if err := cw.Write(r.symbols); err != nil {
			return fmt.Errorf("dataset: writing csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadSequence reads a symbol stream and cuts it into sliding windows of the
// given depth (see Windows). With perRune every non-space rune is a symbol
// ("ACGTTA"); otherwise symbols are whitespace-separated tokens.
func ReadSequence(r io.Reader, depth int, perRune bool) (*Dataset, error) {
	var seq []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if perRune {
			for _, c := range line {
				if !unicode.IsSpace(c) {
					seq = append(seq, string(c))
				}
			}
			continue
		}
		seq = append(seq, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading sequence: %w", err)
	}

	return Windows(seq, depth)
}

// Windows turns seq into rows (seq[t−depth], …, seq[t−1], seq[t]) for every
// t ≥ depth, so the explanatory symbol nearest to the response is the last
// one.
func Windows(seq []string, depth int) (*Dataset, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth %d", ErrBadSize, depth)
	}
	if len(seq) <= depth {
		return nil, fmt.Errorf("%w: sequence of %d symbols is too short for depth %d",
			ErrEmptyDataset, len(seq), depth)
	}
	rows := make([]Row, 0, len(seq)-depth)
	for t := depth; t < len(seq); t++ {
		r, err := NewRow(seq[t-depth : t+1]...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}

	return New(rows...)
}
