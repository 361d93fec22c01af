// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import "sort"

// A Cell is the state of a coverage matrix cell.
//
type Cell uint8

// Cell states. Once Discarded, a cell never changes again.
//
const (
	Unresolved0 Cell = iota // implicant does not cover the minterm
	Unresolved1             // implicant covers the minterm
	Discarded               // row selected or column covered
)

// String returns the table notation of c: "X" for Unresolved1, "#" for
// Discarded and a blank otherwise.
//
func (c Cell) String() string {
	switch c {
	case Unresolved1:
		return "X"
	case Discarded:
		return "#"
	default:
		return " "
	}
}

// A Matrix is a prime implicant × minterm coverage matrix.
//
type Matrix struct {
	// Minterms holds the column labels.
	Minterms []int
	// Cells[r][c] is the state of implicant r for minterm Minterms[c].
	Cells   [][]Cell
	covered []bool
}

// NewMatrix builds the coverage matrix of the prime implicants pis over the
// given minterms. Minterms are sorted and deduplicated to form the columns.
//
func NewMatrix(pis []*Term, minterms []int) *Matrix {
	cols := distinct(minterms)
	m := &Matrix{
		Minterms: cols,
		Cells:    make([][]Cell, len(pis)),
		covered:  make([]bool, len(cols)),
	}
	for r, t := range pis {
		src := make(map[int]struct{}, len(t.Sources))
		for _, s := range t.Sources {
			src[s] = struct{}{}
		}
		row := make([]Cell, len(cols))
		for c, mt := range cols {
			if _, ok := src[mt]; ok {
				row[c] = Unresolved1
			}
		}
		m.Cells[r] = row
	}
	return m
}

// Rows returns the number of implicant rows.
//
func (m *Matrix) Rows() int { return len(m.Cells) }

// Cols returns the number of minterm columns.
//
func (m *Matrix) Cols() int { return len(m.Minterms) }

// At returns the state of cell (r, c).
//
func (m *Matrix) At(r, c int) Cell { return m.Cells[r][c] }

// Covered returns true if column c has been covered by a selected row.
//
func (m *Matrix) Covered(c int) bool { return m.covered[c] }

// Uncovered returns the number of columns not yet covered.
//
func (m *Matrix) Uncovered() int {
	n := 0
	for _, cv := range m.covered {
		if !cv {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m.
//
func (m *Matrix) Clone() *Matrix {
	cl := &Matrix{
		Minterms: append([]int(nil), m.Minterms...),
		Cells:    make([][]Cell, len(m.Cells)),
		covered:  append([]bool(nil), m.covered...),
	}
	for r, row := range m.Cells {
		cl.Cells[r] = append([]Cell(nil), row...)
	}
	return cl
}

// count returns the number of uncovered columns covered by row r.
//
func (m *Matrix) count(r int) int {
	n := 0
	for c, cell := range m.Cells[r] {
		if cell == Unresolved1 && !m.covered[c] {
			n++
		}
	}
	return n
}

// take selects row r: every column it covers is marked covered and discarded
// in all rows, then the whole row is discarded. It returns the newly covered
// columns.
//
func (m *Matrix) take(r int) []int {
	var cols []int
	row := m.Cells[r]
	for c, cell := range row {
		if cell != Unresolved1 || m.covered[c] {
			continue
		}
		m.covered[c] = true
		cols = append(cols, c)
		for x := range m.Cells {
			m.Cells[x][c] = Discarded
		}
	}
	for c := range row {
		row[c] = Discarded
	}
	return cols
}

func distinct(ms []int) []int {
	out := append([]int(nil), ms...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i > 0 && v == out[n-1] {
			continue
		}
		out[n] = v
		n++
	}
	return out[:n]
}
