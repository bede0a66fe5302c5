// SPDX-License-Identifier: MIT

// Package core - Table storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the integer array container used for face tables (F, FF),
//     unique edges (uE) and dense adjacency (TT, TTi).
//   - Cache-friendly row-major buffer with the index formula i*cols + j.
//   - Checked accessors (At/Set) return errors; unchecked Get/Put serve hot
//     loops whose bounds were validated once up front.
//
// Complexity quicksheet:
//   - NewTable: O(r*c) zero-init; At/Set/Get/Put: O(1); Clone: O(r*c).

package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// tableErrorf attaches method context and coordinates to a sentinel.
func tableErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Table.%s(%d,%d)", method, row, col)
}

// Table is a rows×cols matrix of int stored row-major.
// Zero rows is a legal shape (an empty face list keeps its width).
type Table struct {
	r, c int
	data []int // len == r*c, offset = i*c + j
}

// NewTable creates a zero-filled rows×cols table.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
func NewTable(rows, cols int) (*Table, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "NewTable(%d,%d)", rows, cols)
	}

	return &Table{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFilledTable creates a rows×cols table with every cell set to v.
// Used for sentinel-initialized outputs (dense adjacency starts at -1).
func NewFilledTable(rows, cols, v int) (*Table, error) {
	t, err := NewTable(rows, cols)
	if err != nil {
		return nil, err
	}
	t.Fill(v)

	return t, nil
}

// TableFromRows copies a [][]int into a new Table.
// An empty input yields a 0×0 table.
//
// Errors:
//   - ErrRagged when rows have differing lengths.
func TableFromRows(rows [][]int) (*Table, error) {
	if len(rows) == 0 {
		return &Table{}, nil
	}
	cols := len(rows[0])
	t := &Table{r: len(rows), c: cols, data: make([]int, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRagged, "TableFromRows: row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(t.data[i*cols:(i+1)*cols], row)
	}

	return t, nil
}

// MustTable is TableFromRows that panics on error. Meant for literals in
// tests and examples.
func MustTable(rows [][]int) *Table {
	t, err := TableFromRows(rows)
	if err != nil {
		panic(err)
	}

	return t
}

// Rows returns the number of rows (0 for a nil table).
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}

	return t.r
}

// Cols returns the number of columns (0 for a nil table).
func (t *Table) Cols() int {
	if t == nil {
		return 0
	}

	return t.c
}

// Len returns Rows()*Cols().
func (t *Table) Len() int { return t.Rows() * t.Cols() }

// At returns the element at (i, j).
func (t *Table) At(i, j int) (int, error) {
	if t == nil {
		return 0, tableErrorf(ctxAt, i, j, ErrNilTable)
	}
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return 0, tableErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return t.data[i*t.c+j], nil
}

// Set writes v at (i, j).
func (t *Table) Set(i, j, v int) error {
	if t == nil {
		return tableErrorf(ctxSet, i, j, ErrNilTable)
	}
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return tableErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	t.data[i*t.c+j] = v

	return nil
}

// Get is the unchecked read. Out-of-range indices panic like slice indexing.
func (t *Table) Get(i, j int) int { return t.data[i*t.c+j] }

// Put is the unchecked write. Out-of-range indices panic like slice indexing.
func (t *Table) Put(i, j, v int) { t.data[i*t.c+j] = v }

// Row returns row i as a slice sharing the table's storage.
// Callers that keep or modify the row must copy it.
func (t *Table) Row(i int) []int {
	off := i * t.c

	return t.data[off : off+t.c : off+t.c]
}

// SetRow copies src into row i. len(src) must equal Cols().
func (t *Table) SetRow(i int, src []int) error {
	if t == nil {
		return ErrNilTable
	}
	if i < 0 || i >= t.r {
		return tableErrorf(ctxSet, i, 0, ErrOutOfRange)
	}
	if len(src) != t.c {
		return errors.Wrapf(ErrDimensionMismatch, "Table.SetRow(%d): got %d values, want %d", i, len(src), t.c)
	}
	copy(t.Row(i), src)

	return nil
}

// Fill sets every cell to v.
func (t *Table) Fill(v int) {
	for k := range t.data {
		t.data[k] = v
	}
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	data := make([]int, len(t.data))
	copy(data, t.data)

	return &Table{r: t.r, c: t.c, data: data}
}

// Equal reports whether t and o have the same shape and contents.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.r != o.r || t.c != o.c {
		return false
	}
	for k, v := range t.data {
		if o.data[k] != v {
			return false
		}
	}

	return true
}

// ToRows copies the table into a fresh [][]int.
func (t *Table) ToRows() [][]int {
	out := make([][]int, t.Rows())
	for i := range out {
		out[i] = append([]int(nil), t.Row(i)...)
	}

	return out
}

// String renders one bracketed row per line: "[0, 1, 2]\n[1, 0, 3]\n".
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.Rows(); i++ {
		sb.WriteString("[")
		for j, v := range t.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
