// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

// A Builder allocates pins and wires gates into a netlist.
//
type Builder struct {
	count  int
	cs     []Component
	levels []int // steps needed for a pin to settle
}

// NewBuilder returns a new Builder with the constant pins False and True
// allocated.
//
func NewBuilder() *Builder {
	return &Builder{count: cstCount, levels: make([]int, cstCount)}
}

// allocPin allocates a pin and returns its number.
//
func (b *Builder) allocPin(level int) int {
	n := b.count
	b.count++
	b.levels = append(b.levels, level)
	return n
}

func (b *Builder) depth() int {
	d := 0
	for _, l := range b.levels {
		if l > d {
			d = l
		}
	}
	return d
}

// Input returns a new pin set to the value of f each step.
//
func (b *Builder) Input(f func() bool) int {
	out := b.allocPin(1)
	b.cs = append(b.cs, func(c *Circuit) { c.Set(out, f()) })
	return out
}

// Not returns the output pin of a NOT gate fed by pin in.
//
//	Function: out = !in
//
func (b *Builder) Not(in int) int {
	out := b.allocPin(b.levels[in] + 1)
	b.cs = append(b.cs, func(c *Circuit) { c.Set(out, !c.Get(in)) })
	return out
}

// two input gates
type gate func(a, b bool) bool

var (
	and gate = func(a, b bool) bool { return a && b }
	or  gate = func(a, b bool) bool { return a || b }
)

func (b *Builder) gate(g gate, x, y int) int {
	l := b.levels[x]
	if b.levels[y] > l {
		l = b.levels[y]
	}
	out := b.allocPin(l + 1)
	b.cs = append(b.cs, func(c *Circuit) { c.Set(out, g(c.Get(x), c.Get(y))) })
	return out
}

// And returns the output pin of a AND gate fed by pins x and y.
//
//	Function: out = x && y
//
func (b *Builder) And(x, y int) int { return b.gate(and, x, y) }

// Or returns the output pin of a OR gate fed by pins x and y.
//
//	Function: out = x || y
//
func (b *Builder) Or(x, y int) int { return b.gate(or, x, y) }

// AndN returns the output pin of a balanced tree of AND gates fed by pins.
// It returns True if pins is empty.
//
func (b *Builder) AndN(pins ...int) int { return b.tree(and, True, pins) }

// OrN returns the output pin of a balanced tree of OR gates fed by pins.
// It returns False if pins is empty.
//
func (b *Builder) OrN(pins ...int) int { return b.tree(or, False, pins) }

func (b *Builder) tree(g gate, empty int, pins []int) int {
	if len(pins) == 0 {
		return empty
	}
	for len(pins) > 1 {
		next := make([]int, 0, (len(pins)+1)/2)
		for i := 0; i+1 < len(pins); i += 2 {
			next = append(next, b.gate(g, pins[i], pins[i+1]))
		}
		if len(pins)%2 == 1 {
			next = append(next, pins[len(pins)-1])
		}
		pins = next
	}
	return pins[0]
}

// Build returns a runnable Circuit. See newCircuit for the workers argument.
// Callers must call Dispose() on the returned circuit once it is no longer
// needed.
//
func (b *Builder) Build(workers int) (*Circuit, error) {
	return newCircuit(workers, b)
}
