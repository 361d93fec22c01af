// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package report renders minimization results.
//
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/db47h/qmc"
	"github.com/pkg/errors"
)

// Term is the serializable form of a generation table entry.
//
type Term struct {
	Pattern    string `json:"pattern" yaml:"pattern"`
	Sources    []int  `json:"sources" yaml:"sources,flow"`
	Expression string `json:"expression" yaml:"expression"`
	Prime      bool   `json:"prime,omitempty" yaml:"prime,omitempty"`
}

// Selection is the serializable form of a selected prime implicant.
//
type Selection struct {
	Row        int    `json:"row" yaml:"row"`
	Reason     string `json:"reason" yaml:"reason"`
	Expression string `json:"expression" yaml:"expression"`
	Covers     []int  `json:"covers" yaml:"covers,flow"`
}

// Report is the serializable form of a qmc.Result.
//
type Report struct {
	Minterms        []int       `json:"minterms" yaml:"minterms,flow"`
	Variables       []string    `json:"variables" yaml:"variables,flow"`
	Generations     [][]Term    `json:"generations" yaml:"generations"`
	PrimeImplicants []Term      `json:"primeImplicants" yaml:"primeImplicants"`
	Selection       []Selection `json:"selection" yaml:"selection"`
	Expression      string      `json:"expression" yaml:"expression"`
}

func term(t *qmc.Term) Term {
	return Term{
		Pattern:    string(t.Pattern),
		Sources:    t.Sources,
		Expression: t.Expr,
		Prime:      !t.Used,
	}
}

// New returns the report for res.
//
func New(res *qmc.Result) *Report {
	r := &Report{
		Minterms:    res.Minterms,
		Variables:   res.Symbols,
		Generations: make([][]Term, len(res.Generations)),
		Expression:  res.Expression(),
	}
	for g, ts := range res.Generations {
		r.Generations[g] = make([]Term, len(ts))
		for i, t := range ts {
			r.Generations[g][i] = term(t)
		}
	}
	for _, t := range res.Primes {
		r.PrimeImplicants = append(r.PrimeImplicants, term(t))
	}
	for _, s := range res.Steps {
		covers := make([]int, len(s.Columns))
		for i, c := range s.Columns {
			covers[i] = res.Coverage.Minterms[c]
		}
		r.Selection = append(r.Selection, Selection{
			Row:        s.Row,
			Reason:     s.Reason.String(),
			Expression: res.Primes[s.Row].Expr,
			Covers:     covers,
		})
	}
	return r
}

func sources(t *qmc.Term) string {
	var b strings.Builder
	b.WriteString("m(")
	for i, m := range t.Sources {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(strconv.Itoa(m))
	}
	b.WriteRune(')')
	return b.String()
}

// WriteGenerations writes the generation table of res, one column per
// generation. Prime implicants are marked with a '*'.
//
func WriteGenerations(w io.Writer, res *qmc.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	rows := 0
	for g, ts := range res.Generations {
		if g == 0 {
			fmt.Fprint(tw, "Minterms")
		} else {
			fmt.Fprintf(tw, "\tCombination %d", g)
		}
		if len(ts) > rows {
			rows = len(ts)
		}
	}
	fmt.Fprintln(tw)
	for i := 0; i < rows; i++ {
		for g, ts := range res.Generations {
			if g > 0 {
				fmt.Fprint(tw, "\t")
			}
			if i >= len(ts) {
				continue
			}
			t := ts[i]
			mark := " "
			if !t.Used {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s%s -> %s", mark, sources(t), t.Pattern)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "write generation table")
	}
	_, err := fmt.Fprintln(w, "\n* : prime implicants (never merged)")
	return err
}

// WriteMatrix writes a coverage matrix: one row per prime implicant, one
// column per minterm. Covering cells are marked with an X, discarded cells
// with a '#'.
//
func WriteMatrix(w io.Writer, m *qmc.Matrix, primes []*qmc.Term) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprint(tw, "Implicant")
	for _, mt := range m.Minterms {
		fmt.Fprintf(tw, "\t%d", mt)
	}
	fmt.Fprintln(tw, "\tExpression")
	for r := 0; r < m.Rows(); r++ {
		fmt.Fprint(tw, sources(primes[r]))
		for c := 0; c < m.Cols(); c++ {
			fmt.Fprintf(tw, "\t%s", m.At(r, c))
		}
		fmt.Fprintf(tw, "\t%s\n", primes[r].Expr)
	}
	return errors.Wrap(tw.Flush(), "write coverage matrix")
}

// WriteExpression writes the minimized expression of res.
//
func WriteExpression(w io.Writer, res *qmc.Result) error {
	_, err := fmt.Fprintf(w, "Expression: %s\n", res.Expression())
	return err
}

const rule = "===================================================================="

// WriteText writes the minimized expression of res. If tables is true, it is
// preceded by the generation table, the initial coverage matrix and the
// matrix after each selection.
//
func WriteText(w io.Writer, res *qmc.Result, tables bool) error {
	if !tables {
		return WriteExpression(w, res)
	}
	fmt.Fprintf(w, "%s\nGenerations\n\n", rule)
	if err := WriteGenerations(w, res); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\nPrime implicant chart\n\n", rule)
	if err := WriteMatrix(w, res.Coverage, res.Primes); err != nil {
		return err
	}
	for _, s := range res.Steps {
		fmt.Fprintf(w, "%s\nSelect row %d (%s)\n\n", rule, s.Row, s.Reason)
		if err := WriteMatrix(w, s.Matrix, res.Primes); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s\n", rule)
	return WriteExpression(w, res)
}
