// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads and writes the tabular datasets the enrichment
// pipeline operates on. Tables are plain string matrices with named
// columns; absent columns read as empty values so missing-column input
// degrades instead of failing.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// utf8BOM is prepended to written CSVs so spreadsheet tools detect the
// encoding of the Korean headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is an in-memory tabular dataset.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds an empty table with the given columns.
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Get returns the value at (row, column name), or "" when the column is
// absent or the row is ragged.
func (t *Table) Get(row int, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// EnsureColumn returns the index of the named column, appending it
// (with empty values in every row) when it does not exist yet.
func (t *Table) EnsureColumn(name string) int {
	if i := t.ColumnIndex(name); i >= 0 {
		return i
	}
	t.Columns = append(t.Columns, name)
	i := len(t.Columns) - 1
	t.index[name] = i
	for r := range t.Rows {
		for len(t.Rows[r]) < len(t.Columns) {
			t.Rows[r] = append(t.Rows[r], "")
		}
	}
	return i
}

// Set writes value at (row, column index), growing ragged rows.
func (t *Table) Set(row, col int, value string) {
	for len(t.Rows[row]) <= col {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = value
}

// Project returns a new table holding only the named columns, in order.
// Columns absent from t come out as empty columns.
func (t *Table) Project(columns []string) *Table {
	out := NewTable(append([]string(nil), columns...))
	out.Rows = make([][]string, len(t.Rows))
	for r := range t.Rows {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = t.Get(r, c)
		}
		out.Rows[r] = row
	}
	return out
}

// DropUnnamed removes columns whose header starts with "Unnamed",
// index artifacts left behind by spreadsheet round-trips.
func (t *Table) DropUnnamed() {
	keep := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if strings.HasPrefix(c, "Unnamed") {
			continue
		}
		keep = append(keep, i)
	}
	if len(keep) == len(t.Columns) {
		return
	}

	cols := make([]string, len(keep))
	for n, i := range keep {
		cols[n] = t.Columns[i]
	}
	for r := range t.Rows {
		row := make([]string, len(keep))
		for n, i := range keep {
			if i < len(t.Rows[r]) {
				row[n] = t.Rows[r][i]
			}
		}
		t.Rows[r] = row
	}
	t.Columns = cols
	t.reindex()
}

// ReadCSV loads a CSV file into a table. The first record is the
// header; a leading UTF-8 BOM is stripped. Any parse error is fatal for
// the run: no partially-read table is returned.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && string(peek) == string(utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing CSV %s: no header row", path)
	}

	t := NewTable(records[0])
	t.Rows = records[1:]
	return t, nil
}

// WriteCSV writes the table to path with a UTF-8 BOM and a header row.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for r := range t.Rows {
		row := t.Rows[r]
		if len(row) < len(t.Columns) {
			padded := make([]string, len(t.Columns))
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}
