// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import "go.uber.org/zap"

// Reason tells why a row was selected.
//
type Reason uint8

// Selection reasons.
//
const (
	Essential Reason = iota // only row covering some minterm
	Greedy                  // row covering the most uncovered minterms
)

func (r Reason) String() string {
	if r == Essential {
		return "essential"
	}
	return "greedy"
}

// A Selection is a row picked by Reduce.
//
type Selection struct {
	Row    int
	Reason Reason
	// Columns lists the columns covered by this selection that were not
	// already covered.
	Columns []int
}

// Reduce selects rows of m until every column is covered and returns them in
// selection order.
//
// Essential rows (the only row covering some uncovered column) are selected
// first, in ascending row order, until no column has a single covering row.
// The remaining columns are then covered greedily: each step selects the row
// covering the most uncovered columns, the lowest row index winning ties.
// This is a heuristic; the result is not guaranteed to be a minimum cover.
//
// Reduce modifies m in place. A non-nil error wraps ErrInvariantViolation.
//
func Reduce(m *Matrix, opts ...Option) ([]Selection, error) {
	cfg := newConfig(opts)
	var sel []Selection

	take := func(r int, why Reason) error {
		if r < 0 || r >= m.Rows() {
			return invariant("row %d out of range [0, %d)", r, m.Rows())
		}
		cols := m.take(r)
		if len(cols) == 0 {
			return invariant("%s row %d covers no uncovered column", why, r)
		}
		s := Selection{Row: r, Reason: why, Columns: cols}
		sel = append(sel, s)
		cfg.log.Debug("row selected",
			zap.Int("row", r),
			zap.Stringer("reason", why),
			zap.Ints("columns", cols),
			zap.Int("uncovered", m.Uncovered()))
		if cfg.observe != nil {
			cfg.observe(s, m)
		}
		return nil
	}

	// essential rows
	for m.Uncovered() > 0 {
		rows := essentialRows(m)
		if len(rows) == 0 {
			break
		}
		for _, r := range rows {
			if err := take(r, Essential); err != nil {
				return sel, err
			}
		}
	}

	// greedy
	for m.Uncovered() > 0 {
		best, max := -1, 0
		for r := range m.Cells {
			if n := m.count(r); n > max {
				best, max = r, n
			}
		}
		if best < 0 {
			return sel, invariant("%d columns left uncovered by %d rows", m.Uncovered(), m.Rows())
		}
		if err := take(best, Greedy); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

// essentialRows returns, in ascending order and without duplicates, the rows
// that are the single covering row of some uncovered column.
//
func essentialRows(m *Matrix) []int {
	mark := make([]bool, m.Rows())
	for c := 0; c < m.Cols(); c++ {
		if m.covered[c] {
			continue
		}
		row, n := -1, 0
		for r := range m.Cells {
			if m.Cells[r][c] == Unresolved1 {
				row = r
				n++
			}
		}
		if n == 1 {
			mark[row] = true
		}
	}
	var rows []int
	for r, ok := range mark {
		if ok {
			rows = append(rows, r)
		}
	}
	return rows
}
