// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package parse parses minterm lists.
//
// A list is a sequence of non-negative integers or inclusive ranges (a..b),
// separated by commas or white space, optionally wrapped in m( ):
//
//	0, 4, 5, 7
//	m(0 4..5 7)
//
package parse

import (
	"github.com/db47h/lex"
	"github.com/db47h/qmc"
	"github.com/pkg/errors"
)

// MaxRange is the maximum number of minterms a single range may expand to.
//
const MaxRange = 1 << 20

type item struct {
	tok lex.Token
	pos int
	val interface{}
}

// Minterms parses the minterm list in input. Errors wrap qmc.ErrInvalidInput.
//
func Minterms(input string) ([]int, error) {
	var out []int

	l := NewLexer(input)
	next := func() item {
		tok, pos, v := l.Lex()
		if tok == EOF {
			pos = len(input)
		}
		return item{tok, pos, v}
	}

	i := next()
	wrapped := false
	if i.tok == Ident {
		if i.val.(string) != "m" {
			return nil, parseError(input, i.pos, "expected m( or minterm")
		}
		i = next()
		if i.tok != ParenOpen {
			return nil, parseError(input, i.pos, "expected (")
		}
		wrapped = true
		i = next()
	}

	for {
		switch i.tok {
		case EOF:
			if wrapped {
				return nil, parseError(input, i.pos, "missing close parenthesis")
			}
			return out, nil
		case ParenClose:
			if !wrapped {
				return nil, parseError(input, i.pos, "unexpected close parenthesis")
			}
			i = next()
			if i.tok != EOF {
				return nil, parseError(input, i.pos, "expected end of input")
			}
			return out, nil
		case Comma:
			i = next()
			continue
		case Minus:
			return nil, parseError(input, i.pos, "negative minterm")
		case Int:
		default:
			return nil, parseError(input, i.pos, "expected minterm")
		}

		start := i.val.(int)
		i = next()
		if i.tok != Range {
			out = append(out, start)
			continue
		}
		i = next()
		if i.tok != Int {
			return nil, parseError(input, i.pos, "missing range end")
		}
		end := i.val.(int)
		if end < start {
			return nil, parseError(input, i.pos, "range end before range start")
		}
		n := end - start
		if n >= MaxRange {
			return nil, parseError(input, i.pos, "range too large")
		}
		for k := 0; k <= n; k++ {
			out = append(out, start+k)
		}
		i = next()
	}
}

func parseError(in string, pos int, msg string) error {
	return errors.Wrapf(qmc.ErrInvalidInput, "in %q at pos %d: %s", in, pos+1, msg)
}
