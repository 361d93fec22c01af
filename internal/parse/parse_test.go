package parse_test

import (
	"reflect"
	"testing"

	"github.com/db47h/lex"
	"github.com/db47h/qmc"
	"github.com/db47h/qmc/internal/parse"
	"github.com/pkg/errors"
)

func TestMinterms(t *testing.T) {
	data := []struct {
		in  string
		out []int
		err string
	}{
		{"0, 4, 5, 7", []int{0, 4, 5, 7}, ""},
		{"0 4 5 7", []int{0, 4, 5, 7}, ""},
		{"  0,4,,5\n7\t", []int{0, 4, 5, 7}, ""},
		{"m(0, 4..5, 7)", []int{0, 4, 5, 7}, ""},
		{"m( 12 )", []int{12}, ""},
		{"8..11 3", []int{8, 9, 10, 11, 3}, ""},
		{"", nil, ""},
		{"1, -2", nil, `in "1, -2" at pos 4: negative minterm: invalid input`},
		{"1, x", nil, `in "1, x" at pos 4: expected minterm: invalid input`},
		{"x(1)", nil, `in "x(1)" at pos 1: expected m( or minterm: invalid input`},
		{"m 1", nil, `in "m 1" at pos 3: expected (: invalid input`},
		{"m(1, 2", nil, `in "m(1, 2" at pos 7: missing close parenthesis: invalid input`},
		{"m(1) 2", nil, `in "m(1) 2" at pos 6: expected end of input: invalid input`},
		{"1)", nil, `in "1)" at pos 2: unexpected close parenthesis: invalid input`},
		{"3..1", nil, `in "3..1" at pos 4: range end before range start: invalid input`},
		{"3..", nil, `in "3.." at pos 4: missing range end: invalid input`},
		{"1.5", nil, `in "1.5" at pos 2: expected minterm: invalid input`},
		{"1; 2", nil, `in "1; 2" at pos 2: expected minterm: invalid input`},
		{"9223372036854775806..9223372036854775807", []int{9223372036854775806, 9223372036854775807}, ""},
		{"9223372036854775807..9223372036854775807", []int{9223372036854775807}, ""},
		{"99999999999999999999", nil, `in "99999999999999999999" at pos 1: expected minterm: invalid input`},
		{"0..1048576", nil, `in "0..1048576" at pos 4: range too large: invalid input`},
	}
	for _, d := range data {
		t.Run(d.in, func(t *testing.T) {
			out, err := parse.Minterms(d.in)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Fatalf("Got error %q, expected %q", err, d.err)
			}
			if err != nil {
				if errors.Cause(err) != qmc.ErrInvalidInput {
					t.Errorf("error %v does not wrap ErrInvalidInput", err)
				}
				return
			}
			if !reflect.DeepEqual(out, d.out) {
				t.Errorf("Minterms(%q) = %v, expected %v", d.in, out, d.out)
			}
		})
	}
}

func TestLexer(t *testing.T) {
	l := parse.NewLexer("m(1..20)")
	exp := []struct {
		tok lex.Token
		pos int
	}{
		{parse.Ident, 0}, {parse.ParenOpen, 1}, {parse.Int, 2}, {parse.Range, 3},
		{parse.Int, 5}, {parse.ParenClose, 7}, {parse.EOF, -1}, {parse.EOF, -1},
	}
	for n, e := range exp {
		tok, pos, _ := l.Lex()
		if tok != e.tok {
			t.Fatalf("item %d: got token %d, expected %d", n, tok, e.tok)
		}
		if e.pos >= 0 && pos != e.pos {
			t.Errorf("item %d: got pos %d, expected %d", n, pos, e.pos)
		}
	}
}
