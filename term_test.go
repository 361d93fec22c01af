package qmc

import (
	"reflect"
	"testing"
)

func TestBitWidth(t *testing.T) {
	data := []struct {
		max, width int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {7, 3}, {8, 4}, {15, 4}, {16, 5}, {1023, 10}, {1024, 11},
	}
	for _, d := range data {
		if w := BitWidth(d.max); w != d.width {
			t.Errorf("BitWidth(%d) = %d, expected %d", d.max, w, d.width)
		}
	}
}

func TestNewPattern(t *testing.T) {
	data := []struct {
		m, width int
		p        Pattern
	}{
		{0, 1, "0"}, {0, 4, "0000"}, {5, 3, "101"}, {5, 6, "000101"}, {15, 4, "1111"},
	}
	for _, d := range data {
		if p := NewPattern(d.m, d.width); p != d.p {
			t.Errorf("NewPattern(%d, %d) = %q, expected %q", d.m, d.width, p, d.p)
		}
	}
}

func TestNewPattern_overflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewPattern(8, 3)
}

func TestPattern_Combine(t *testing.T) {
	data := []struct {
		p, q Pattern
		r    Pattern
		ok   bool
	}{
		{"000", "001", "00_", true},
		{"100", "000", "_00", true},
		{"0_1", "1_1", "__1", true},
		{"000", "000", "", false},
		{"000", "011", "", false},
		{"0_0", "00_", "", false},
		{"0_0", "000", "", false}, // wildcard mismatch
		{"__1", "__0", "___", true},
	}
	for _, d := range data {
		r, ok := d.p.Combine(d.q)
		if r != d.r || ok != d.ok {
			t.Errorf("%q.Combine(%q) = %q, %v, expected %q, %v", d.p, d.q, r, ok, d.r, d.ok)
		}
	}
}

func TestPattern_Covers(t *testing.T) {
	p := Pattern("1_0")
	for m := 0; m < 16; m++ {
		exp := m == 4 || m == 6
		if p.Covers(m) != exp {
			t.Errorf("%q.Covers(%d) = %v", p, m, !exp)
		}
	}
	if Pattern("___").Covers(-1) {
		t.Error("negative minterm covered")
	}
}

func TestSymbols(t *testing.T) {
	if s := NewSymbols(3); !reflect.DeepEqual(s, Symbols{"x", "y", "z"}) {
		t.Errorf("NewSymbols(3) = %v", s)
	}
	if s := NewSymbols(26); s[0] != "a" || s[25] != "z" {
		t.Errorf("NewSymbols(26) = %v", s)
	}
	s := NewSymbols(27)
	if s[0] != "x[0]" || s[26] != "x[26]" {
		t.Errorf("NewSymbols(27) = %v", s)
	}
}

func TestSymbols_Expression(t *testing.T) {
	sym := NewSymbols(4)
	data := []struct {
		p Pattern
		e string
	}{
		{"0000", "w'x'y'z'"},
		{"1111", "wxyz"},
		{"__00", "y'z'"},
		{"1_11", "wyz"},
		{"____", True},
	}
	for _, d := range data {
		if e := sym.Expression(d.p); e != d.e {
			t.Errorf("Expression(%q) = %q, expected %q", d.p, e, d.e)
		}
	}
}

func TestClassify(t *testing.T) {
	sym := NewSymbols(3)
	ts := Classify([]int{5, 4, 5}, 3, sym)
	exp := []*Term{
		{Pattern: "100", Sources: []int{4}, Expr: "xy'z'"},
		{Pattern: "101", Sources: []int{5}, Expr: "xy'z"},
		{Pattern: "101", Sources: []int{5}, Expr: "xy'z"},
	}
	if !reflect.DeepEqual(ts, exp) {
		t.Fatalf("Classify() = %v, expected %v", ts, exp)
	}
}

func TestTerm_Minterms(t *testing.T) {
	tm := &Term{Sources: []int{8, 0, 4, 0, 12}}
	if ms := tm.Minterms(); !reflect.DeepEqual(ms, []int{0, 4, 8, 12}) {
		t.Errorf("Minterms() = %v", ms)
	}
}
