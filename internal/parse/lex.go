// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/lex"
)

// Tokens
const (
	EOF lex.Token = iota
	Raw
	Ident
	ParenOpen
	ParenClose
	Comma
	Minus
	Int
	Range
)

// NewLexer returns a new lexer for minterm lists. Once the end of input is
// reached, the lexer only emits EOF.
//
func NewLexer(input string) *lex.Lexer {
	return lex.NewLexer(lex.NewFile("minterms", strings.NewReader(input)), lexInit)
}

func lexInit(l *lex.State) lex.StateFn {
	r := l.Next()
	pos := l.Pos()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		return nil
	case unicode.IsLetter(r):
		return lexIdent
	case r == '(':
		l.Emit(pos, ParenOpen, "(")
	case r == ')':
		l.Emit(pos, ParenClose, ")")
	case r == ',':
		l.Emit(pos, Comma, ",")
	case r == '-':
		l.Emit(pos, Minus, "-")
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '.':
		if l.Next() == '.' {
			l.Emit(pos, Range, "..")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(pos, Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *lex.State) lex.StateFn {
	var buf strings.Builder
	pos := l.Pos()
	buf.WriteRune(l.Current())
	r := l.Next()
	for '0' <= r && r <= '9' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	i, err := strconv.Atoi(buf.String())
	if err != nil {
		l.Emit(pos, Raw, buf.String())
		return lexEOF
	}
	l.Emit(pos, Int, i)
	return nil
}

func lexIdent(l *lex.State) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	pos := l.Pos()
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(pos, Ident, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.State) lex.StateFn {
	l.Emit(l.Pos(), EOF, "end of input")
	return lexEOF
}
