// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"github.com/db47h/qmc"
	"github.com/pkg/errors"
)

// MaxInputs is the maximum number of variables of a synthesized function.
//
const MaxInputs = 20

// A Function is a simulated two-level AND/OR network.
//
type Function struct {
	c   *Circuit
	in  []bool
	out int
}

// Synthesize builds the gate network of the sum of products cover of a
// function of width variables: one AND tree per product, feeding an OR tree.
// Complemented literals share one NOT gate per variable.
//
// Synthesize returns an error wrapping qmc.ErrCapacityExceeded if width is
// greater than MaxInputs. Callers must call Dispose() on the returned Function.
//
func Synthesize(width int, cover []qmc.Pattern, workers int) (*Function, error) {
	if width > MaxInputs {
		return nil, errors.Wrapf(qmc.ErrCapacityExceeded, "%d variables, max %d", width, MaxInputs)
	}
	if width <= 0 {
		return nil, errors.Errorf("invalid function width %d", width)
	}
	f := &Function{in: make([]bool, width)}
	b := NewBuilder()
	ins := make([]int, width)
	for i := range ins {
		v := &f.in[i]
		ins[i] = b.Input(func() bool { return *v })
	}
	nots := make([]int, width)
	for i := range nots {
		nots[i] = -1
	}

	var products []int
	for _, p := range cover {
		if len(p) != width {
			return nil, errors.Errorf("pattern %q: width mismatch, expected %d", p, width)
		}
		var lits []int
		for i := 0; i < width; i++ {
			switch p[i] {
			case qmc.One:
				lits = append(lits, ins[i])
			case qmc.Zero:
				if nots[i] < 0 {
					nots[i] = b.Not(ins[i])
				}
				lits = append(lits, nots[i])
			}
		}
		products = append(products, b.AndN(lits...))
	}
	f.out = b.OrN(products...)

	c, err := b.Build(workers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build circuit")
	}
	f.c = c
	return f, nil
}

// Eval returns the output of f for the input assignment of minterm m, most
// significant bit first.
//
func (f *Function) Eval(m int) bool {
	w := len(f.in)
	for i := range f.in {
		f.in[i] = m&(1<<uint(w-1-i)) != 0
	}
	f.c.Settle()
	return f.c.Get(f.out)
}

// Minterms returns the sorted list of minterms for which f is true.
//
func (f *Function) Minterms() []int {
	var ms []int
	for m := 0; m < 1<<uint(len(f.in)); m++ {
		if f.Eval(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

// Circuit returns the underlying circuit.
//
func (f *Function) Circuit() *Circuit { return f.c }

// Dispose releases the resources of the underlying circuit.
//
func (f *Function) Dispose() { f.c.Dispose() }
