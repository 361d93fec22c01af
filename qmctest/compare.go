// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package qmctest provides utility functions for testing minimized covers.
//
package qmctest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/qmc"
	"github.com/db47h/qmc/circuit"
)

// RandomMinterms returns a random non-empty set of minterms of a function of
// width variables, in random order.
//
func RandomMinterms(r *rand.Rand, width int) []int {
	var ms []int
	for len(ms) == 0 {
		for m := 0; m < 1<<uint(width); m++ {
			if r.Int63()&(1<<62) != 0 {
				ms = append(ms, m)
			}
		}
	}
	r.Shuffle(len(ms), func(i, j int) { ms[i], ms[j] = ms[j], ms[i] })
	return ms
}

// CheckSelection checks the structural invariants of the selection in res:
// no row is selected twice and the union of the source minterms of the
// selected implicants is exactly res.Minterms.
//
func CheckSelection(t testing.TB, res *qmc.Result) {
	t.Helper()

	seen := make(map[int]bool)
	for _, r := range res.Rows() {
		if seen[r] {
			t.Fatalf("row %d selected twice in %v", r, res.Rows())
		}
		seen[r] = true
	}

	union := make(map[int]bool)
	for _, pi := range res.Cover() {
		for _, m := range pi.Sources {
			union[m] = true
		}
	}
	if len(union) != len(res.Minterms) {
		t.Fatalf("cover %q covers %d minterms, expected %d", res.Expression(), len(union), len(res.Minterms))
	}
	for _, m := range res.Minterms {
		if !union[m] {
			t.Fatalf("minterm %d not covered by %q", m, res.Expression())
		}
	}
}

// CompareCover checks that the selected cover of res is true for exactly the
// minterms of res. The cover is synthesized into a circuit and simulated for
// every input (up to circuit.MaxInputs variables), then proven equivalent to
// the sum of minterms with a SAT solver.
//
func CompareCover(t testing.TB, res *qmc.Result) {
	t.Helper()

	cover := res.Cover()
	ps := make([]qmc.Pattern, len(cover))
	for i, pi := range cover {
		ps[i] = pi.Pattern
	}

	if res.Width <= circuit.MaxInputs {
		start := time.Now()
		f, err := circuit.Synthesize(res.Width, ps, 0)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Dispose()

		expect := make(map[int]bool, len(res.Minterms))
		for _, m := range res.Minterms {
			expect[m] = true
		}
		for m := 0; m < 1<<uint(res.Width); m++ {
			if got := f.Eval(m); got != expect[m] {
				t.Fatal(errString(res, m, expect[m], got))
			}
		}
		elapsed := time.Since(start)
		c := f.Circuit()
		t.Logf("%d components, depth %d. %d steps in %v", c.Size(), c.Depth(), c.Steps(), elapsed)
	}

	if err := res.Verify(); err != nil {
		t.Fatal(err)
	}
}

func errString(res *qmc.Result, m int, ex, got bool) string {
	var b strings.Builder
	p := qmc.NewPattern(m, res.Width)
	for i, s := range res.Symbols {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
		b.WriteRune('=')
		b.WriteByte(p[i])
	}
	return fmt.Sprintf("\n%s\nExpected %s => %v\nGot %v", res.Expression(), b.String(), ex, got)
}
