// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import (
	"github.com/crillab/gophersat/bf"
	"github.com/pkg/errors"
)

// Product returns the conjunction of the literals of p, using s for
// variable names. A pattern without literals yields the tautology v || !v on
// the first variable.
//
func (s Symbols) Product(p Pattern) bf.Formula {
	var lits []bf.Formula
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case One:
			lits = append(lits, bf.Var(s[i]))
		case Zero:
			lits = append(lits, bf.Not(bf.Var(s[i])))
		}
	}
	switch len(lits) {
	case 0:
		v := bf.Var(s[0])
		return bf.Or(v, bf.Not(v))
	case 1:
		return lits[0]
	}
	return bf.And(lits...)
}

// SumOfProducts returns the disjunction of the products of ps. An empty list
// yields the contradiction v && !v on the first variable.
//
// Constants are never used so that formulas built here can be handed to the
// SAT solver in any combination.
//
func (s Symbols) SumOfProducts(ps ...Pattern) bf.Formula {
	switch len(ps) {
	case 0:
		v := bf.Var(s[0])
		return bf.And(v, bf.Not(v))
	case 1:
		return s.Product(ps[0])
	}
	fs := make([]bf.Formula, len(ps))
	for i, p := range ps {
		fs[i] = s.Product(p)
	}
	return bf.Or(fs...)
}

// SumOfMinterms returns the canonical disjunctive form of the function true
// for the given minterms.
//
func (s Symbols) SumOfMinterms(minterms ...int) bf.Formula {
	ps := make([]Pattern, len(minterms))
	for i, m := range minterms {
		ps[i] = NewPattern(m, len(s))
	}
	return s.SumOfProducts(ps...)
}

// Minterm returns the minterm matching the variable assignment in model.
// Variables missing from model are false.
//
func (s Symbols) Minterm(model map[string]bool) int {
	m := 0
	for _, name := range s {
		m <<= 1
		if model[name] {
			m |= 1
		}
	}
	return m
}

// Equivalent returns true if the sums of products f and g evaluate
// identically for every assignment. If they differ, it also returns an
// assignment where they do.
//
// Each direction is checked separately (f && !g, then !f && g): both formulas
// stay a conjunction of a sum of products and of clauses, which the bf
// package converts to CNF without nesting.
//
func Equivalent(f, g bf.Formula) (bool, map[string]bool) {
	if model := bf.Solve(bf.And(f, bf.Not(g))); model != nil {
		return false, model
	}
	if model := bf.Solve(bf.And(bf.Not(f), g)); model != nil {
		return false, model
	}
	return true, nil
}

// Formula returns the selected cover of r as a Boolean formula.
//
func (r *Result) Formula() bf.Formula {
	cover := r.Cover()
	ps := make([]Pattern, len(cover))
	for i, t := range cover {
		ps[i] = t.Pattern
	}
	return r.Symbols.SumOfProducts(ps...)
}

// Verify proves with a SAT solver that the selected cover is equivalent to
// the sum of the input minterms. On failure, the returned error wraps
// ErrInvariantViolation and names a minterm where both functions differ.
//
func (r *Result) Verify() error {
	ok, model := Equivalent(r.Symbols.SumOfMinterms(r.Minterms...), r.Formula())
	if ok {
		return nil
	}
	return errors.Wrapf(ErrInvariantViolation, "cover %q differs from minterms %v at minterm %d",
		r.Expression(), r.Minterms, r.Symbols.Minterm(model))
}
