// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Disjunction is the operator joining the products of a sum of products.
//
const Disjunction = " + "

type config struct {
	log     *zap.Logger
	workers int
	observe func(Selection, *Matrix)
}

func newConfig(opts []Option) *config {
	cfg := &config{log: zap.NewNop(), workers: 1}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// An Option configures Minimize, Combine or Reduce.
//
type Option func(*config)

// WithLogger sets the logger receiving debug traces of the minimization. The
// default is a no-op logger.
//
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithWorkers sets the number of goroutines used to look for mergeable pairs
// within a generation. If n is less or equal to 0, the value of GOMAXPROCS
// is used. The default is 1. Results do not depend on the number of workers.
//
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(-1)
		}
		if n <= 0 {
			n = 1
		}
		c.workers = n
	}
}

// WithObserver sets a function called by Reduce after each selection, with
// the matrix in its post-selection state. fn must not modify m.
//
func WithObserver(fn func(s Selection, m *Matrix)) Option {
	return func(c *config) { c.observe = fn }
}

// A Step is a selection together with a snapshot of the coverage matrix right
// after it.
//
type Step struct {
	Selection
	Matrix *Matrix
}

// Result holds the outputs of a minimization.
//
type Result struct {
	// Minterms are the sorted, distinct input minterms.
	Minterms []int
	// Width is the number of variables.
	Width   int
	Symbols Symbols
	// Generations is the full generation table.
	Generations Generations
	// NonEmpty is the number of non-empty generations.
	NonEmpty int
	// Primes lists the prime implicants.
	Primes []*Term
	// Coverage is the coverage matrix before reduction.
	Coverage *Matrix
	// Steps records every selection, in order.
	Steps []Step
}

// Cover returns the selected prime implicants in selection order.
//
func (r *Result) Cover() []*Term {
	ts := make([]*Term, len(r.Steps))
	for i, s := range r.Steps {
		ts[i] = r.Primes[s.Row]
	}
	return ts
}

// Rows returns the selected row indices in selection order.
//
func (r *Result) Rows() []int {
	rows := make([]int, len(r.Steps))
	for i, s := range r.Steps {
		rows[i] = s.Row
	}
	return rows
}

// Expression returns the minimized sum of products.
//
func (r *Result) Expression() string {
	var b strings.Builder
	for i, t := range r.Cover() {
		if i > 0 {
			b.WriteString(Disjunction)
		}
		b.WriteString(t.Expr)
	}
	return b.String()
}

// Minimize runs the Quine-McCluskey method on the given minterms: terms are
// merged into prime implicants, then a cover is selected from the prime
// implicants (see Reduce).
//
// The minterms may be given in any order; they are sorted before
// classification. Duplicates are kept in generation 0, so a duplicated
// minterm yields duplicate terms that may keep an implicant from being
// essential. The coverage matrix columns and Result.Minterms hold distinct
// minterms only. An empty list or a negative minterm yields an error wrapping
// ErrInvalidInput.
//
func Minimize(minterms []int, opts ...Option) (*Result, error) {
	if len(minterms) == 0 {
		return nil, invalidInput("empty minterm list")
	}
	max := 0
	for i, m := range minterms {
		if m < 0 {
			return nil, invalidInput("negative minterm %d at index %d", m, i)
		}
		if m > max {
			max = m
		}
	}

	cfg := newConfig(opts)
	ms := distinct(minterms)
	if len(ms) != len(minterms) {
		cfg.log.Debug("duplicate minterms", zap.Int("count", len(minterms)-len(ms)))
	}
	width := BitWidth(max)
	sym := NewSymbols(width)
	cfg.log.Debug("bit width", zap.Int("max", max), zap.Int("width", width))

	res := &Result{
		Minterms: ms,
		Width:    width,
		Symbols:  sym,
	}
	res.Generations, res.NonEmpty = Combine(Classify(minterms, width, sym), sym, opts...)
	res.Primes = PrimeImplicants(res.Generations)
	cfg.log.Debug("prime implicants", zap.Int("count", len(res.Primes)))

	res.Coverage = NewMatrix(res.Primes, ms)
	m := res.Coverage.Clone()
	user := cfg.observe
	ropts := append(append([]Option(nil), opts...), WithObserver(func(s Selection, m *Matrix) {
		res.Steps = append(res.Steps, Step{s, m.Clone()})
		if user != nil {
			user(s, m)
		}
	}))
	if _, err := Reduce(m, ropts...); err != nil {
		return nil, errors.Wrapf(err, "minterms %v, %d prime implicants", ms, len(res.Primes))
	}
	return res, nil
}
