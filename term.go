// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import (
	"sort"
	"strconv"
	"strings"
)

// Pattern symbols.
//
const (
	Zero     = '0'
	One      = '1'
	Wildcard = '_'
)

// Complement is the marker appended to a variable symbol for a complemented
// literal.
//
const Complement = "'"

// True is the expression of a term without any literal (constant true).
//
const True = "1"

// BitWidth returns the number of bits needed to represent max in unsigned
// binary. A max of 0 yields a width of 1 so that the function of the single
// minterm 0 still has one variable.
//
func BitWidth(max int) int {
	n := 0
	for max > 0 {
		n++
		max >>= 1
	}
	if n == 0 {
		return 1
	}
	return n
}

// A Pattern is the bit pattern of a term, most significant bit first. Each
// position is one of Zero, One or Wildcard.
//
type Pattern string

// NewPattern returns the zero-extended binary representation of m on width
// bits. It panics if m is negative or does not fit in width bits.
//
func NewPattern(m, width int) Pattern {
	if m < 0 || width < 63 && m >= 1<<uint(width) {
		panic("minterm " + strconv.Itoa(m) + " does not fit in " + strconv.Itoa(width) + " bits")
	}
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = Zero + byte(m&1)
		m >>= 1
	}
	return Pattern(b)
}

// Wildcards returns the number of eliminated variables in p.
//
func (p Pattern) Wildcards() int {
	return strings.Count(string(p), string(Wildcard))
}

// Literals returns the number of literals in the expression of p.
//
func (p Pattern) Literals() int {
	return len(p) - p.Wildcards()
}

// Combine merges p and q if they differ in exactly one position that is not a
// wildcard in either pattern. Wildcards must occupy the same positions in both
// patterns. The returned pattern has a wildcard at the differing position.
//
// Combine panics if p and q have different lengths.
//
func (p Pattern) Combine(q Pattern) (Pattern, bool) {
	if len(p) != len(q) {
		panic("pattern width mismatch: " + string(p) + " vs. " + string(q))
	}
	pos := -1
	for i := 0; i < len(p); i++ {
		if p[i] == q[i] {
			continue
		}
		if p[i] == Wildcard || q[i] == Wildcard || pos >= 0 {
			return "", false
		}
		pos = i
	}
	if pos < 0 {
		return "", false
	}
	b := []byte(p)
	b[pos] = Wildcard
	return Pattern(b), true
}

// Covers returns true if minterm m matches every non-wildcard position of p.
//
func (p Pattern) Covers(m int) bool {
	if m < 0 {
		return false
	}
	w := len(p)
	if w < 63 && m >= 1<<uint(w) {
		return false
	}
	for i := 0; i < w; i++ {
		bit := byte(Zero + (m>>uint(w-1-i))&1)
		if p[i] != Wildcard && p[i] != bit {
			return false
		}
	}
	return true
}

// Symbols maps bit positions (0 is the most significant bit) to variable
// names.
//
type Symbols []string

// NewSymbols returns the symbol table for width variables: the last width
// letters of the alphabet in order (x, y, z for a width of 3). Functions with
// more than 26 variables use indexed names x[0], x[1], etc.
//
func NewSymbols(width int) Symbols {
	s := make(Symbols, width)
	if width <= 26 {
		for i := range s {
			s[i] = string(rune('z' - width + 1 + i))
		}
		return s
	}
	for i := range s {
		s[i] = "x[" + strconv.Itoa(i) + "]"
	}
	return s
}

// Expression returns the product of literals for pattern p: the symbol of a
// One position, the symbol followed by Complement for a Zero position, and
// nothing for a wildcard. A pattern without literals yields True.
//
func (s Symbols) Expression(p Pattern) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case One:
			b.WriteString(s[i])
		case Zero:
			b.WriteString(s[i])
			b.WriteString(Complement)
		}
	}
	if b.Len() == 0 {
		return True
	}
	return b.String()
}

// A Term is an entry in a generation table.
//
type Term struct {
	Pattern Pattern
	// Sources lists the minterms this term was merged from, in merge order.
	// It is not deduplicated and may contain repeats.
	Sources []int
	// Used is set once the term has been merged with another term.
	Used bool
	// Expr is the product of literals of Pattern.
	Expr string
}

// Minterms returns the sorted set of distinct minterms in t.Sources.
//
func (t *Term) Minterms() []int {
	seen := make(map[int]struct{}, len(t.Sources))
	out := make([]int, 0, len(t.Sources))
	for _, m := range t.Sources {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// Classify builds generation 0: one term per minterm, in ascending minterm
// order, with patterns of the given width. Duplicates are kept.
//
// Classify panics if a minterm is negative or does not fit in width bits.
//
func Classify(minterms []int, width int, sym Symbols) []*Term {
	sorted := append([]int(nil), minterms...)
	sort.Ints(sorted)
	terms := make([]*Term, 0, len(sorted))
	for _, m := range sorted {
		p := NewPattern(m, width)
		terms = append(terms, &Term{
			Pattern: p,
			Sources: []int{m},
			Expr:    sym.Expression(p),
		})
	}
	return terms
}
