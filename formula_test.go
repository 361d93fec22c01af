package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func model(sym Symbols, m int) map[string]bool {
	p := NewPattern(m, len(sym))
	mdl := make(map[string]bool, len(sym))
	for i, s := range sym {
		mdl[s] = p[i] == One
	}
	return mdl
}

func TestSymbols_Product(t *testing.T) {
	sym := NewSymbols(3)
	for _, p := range []Pattern{"000", "1_0", "__1", "___", "111"} {
		f := sym.Product(p)
		for m := 0; m < 8; m++ {
			assert.Equal(t, p.Covers(m), f.Eval(model(sym, m)), "%s at %d (%s)", p, m, f)
		}
	}
}

func TestSymbols_SumOfMinterms(t *testing.T) {
	sym := NewSymbols(4)
	ms := map[int]bool{0: true, 5: true, 9: true, 15: true}
	f := sym.SumOfMinterms(0, 5, 9, 15)
	for m := 0; m < 16; m++ {
		assert.Equal(t, ms[m], f.Eval(model(sym, m)), "minterm %d", m)
	}
	empty := sym.SumOfProducts()
	assert.False(t, empty.Eval(model(sym, 0)))
}

func TestSymbols_Minterm(t *testing.T) {
	sym := NewSymbols(4)
	for m := 0; m < 16; m++ {
		assert.Equal(t, m, sym.Minterm(model(sym, m)))
	}
}

func TestEquivalent(t *testing.T) {
	sym := NewSymbols(3)
	ok, _ := Equivalent(sym.SumOfMinterms(4, 5, 6, 7), sym.SumOfProducts("1__"))
	assert.True(t, ok)
	ok, _ = Equivalent(sym.SumOfMinterms(0, 1, 2, 3, 4, 5, 6, 7), sym.SumOfProducts("___"))
	assert.True(t, ok)
	ok, _ = Equivalent(sym.SumOfMinterms(0, 1, 2, 5, 6, 7), sym.SumOfProducts("00_", "_10", "1_1"))
	assert.True(t, ok)

	ok, mdl := Equivalent(sym.SumOfMinterms(4, 5), sym.SumOfProducts("1__"))
	assert.False(t, ok)
	m := sym.Minterm(mdl)
	assert.True(t, m == 6 || m == 7, "counter example %d", m)
}
