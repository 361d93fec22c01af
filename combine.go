// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generations is a generation table. Generations[0] holds the classified
// minterms and Generations[g] the terms obtained by merging pairs of terms of
// Generations[g-1]. A term of generation g has exactly g wildcards.
//
type Generations [][]*Term

// Terms returns the number of terms in all generations.
//
func (gs Generations) Terms() int {
	n := 0
	for _, g := range gs {
		n += len(g)
	}
	return n
}

// candidate is a mergeable pair (j, k) of a generation and the merged pattern.
type candidate struct {
	j, k int
	p    Pattern
}

type combiner struct {
	sym     Symbols
	workers int
	log     *zap.Logger
}

// Combine merges terms generation by generation, starting with gen0, until a
// generation yields no new term. Two terms are merged if their patterns
// differ in exactly one non-wildcard position (see Pattern.Combine). Both
// parents of a merge are marked as used, even when the merged pattern is
// already present in the next generation, in which case no duplicate is
// inserted.
//
// It returns the generation table and the number of non-empty generations.
// The number of generations never exceeds len(sym)+1.
//
func Combine(gen0 []*Term, sym Symbols, opts ...Option) (Generations, int) {
	cfg := newConfig(opts)
	c := &combiner{sym: sym, workers: cfg.workers, log: cfg.log}
	width := len(sym)

	gs := Generations{gen0}
	count := 0
	for g := 0; g < len(gs) && g <= width; g++ {
		cur := gs[g]
		if len(cur) == 0 {
			break
		}
		count++
		next := c.merge(cur)
		c.log.Debug("generation merged",
			zap.Int("generation", g),
			zap.Int("terms", len(cur)),
			zap.Int("merged", len(next)))
		if len(next) > 0 {
			gs = append(gs, next)
		}
	}
	return gs, count
}

// merge builds the next generation from cur.
//
func (c *combiner) merge(cur []*Term) []*Term {
	var next []*Term
	seen := make(map[Pattern]struct{})
	for _, cs := range c.scan(cur) {
		for _, cd := range cs {
			a, b := cur[cd.j], cur[cd.k]
			a.Used = true
			b.Used = true
			if _, ok := seen[cd.p]; ok {
				continue
			}
			seen[cd.p] = struct{}{}
			src := make([]int, 0, len(a.Sources)+len(b.Sources))
			src = append(src, a.Sources...)
			src = append(src, b.Sources...)
			next = append(next, &Term{
				Pattern: cd.p,
				Sources: src,
				Expr:    c.sym.Expression(cd.p),
			})
		}
	}
	return next
}

// scan returns, for each term j of cur, the terms k > j it can be merged with.
// With more than one worker, terms are scanned concurrently. Scanning only
// reads patterns: Used flags are set afterwards by merge, in (j, k) order, so
// that the result does not depend on the number of workers.
//
func (c *combiner) scan(cur []*Term) [][]candidate {
	res := make([][]candidate, len(cur))
	if c.workers <= 1 || len(cur) < 2*c.workers {
		for j := range cur {
			res[j] = pairs(cur, j)
		}
		return res
	}
	var eg errgroup.Group
	eg.SetLimit(c.workers)
	for j := range cur {
		j := j
		eg.Go(func() error {
			res[j] = pairs(cur, j)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
	return res
}

func pairs(cur []*Term, j int) []candidate {
	var cs []candidate
	pj := cur[j].Pattern
	for k := j + 1; k < len(cur); k++ {
		if p, ok := pj.Combine(cur[k].Pattern); ok {
			cs = append(cs, candidate{j, k, p})
		}
	}
	return cs
}
