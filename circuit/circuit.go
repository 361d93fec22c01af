// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuit synthesizes sum of products covers into gate networks and
// simulates them.
//
// A circuit is a set of pins (wires) updated by components. Each simulation
// step, every component reads pin states from the current frame and writes
// its outputs to the next frame, so a gate takes one step to update its
// output.
//
// Circuits are purely combinational and unclocked: there are no ticks,
// tocks or flip-flops. The Builder records the level of every pin (inputs
// are level 1, a gate is one level above its deepest input), and Depth is
// the highest level. After new input values, Settle runs exactly Depth steps,
// by which time every pin holds a value derived from the new inputs only.
//
package circuit

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// A Component updates the output pins of a part. Components must only call
// Set on pins they own.
//
type Component func(c *Circuit)

// Constant pins.
//
const (
	False = iota
	True
	cstCount
)

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	s0    []bool // pin states frame #0
	s1    []bool // pin states frame #1
	cs    []Component
	depth int
	steps uint

	wc []chan struct{}
	wg sync.WaitGroup
}

// newCircuit builds a circuit from the components of b.
//
// workers is the number of goroutines used to update the state of the
// Circuit each step of the simulation. If less or equal to 0, the value of
// GOMAXPROCS will be used.
//
func newCircuit(workers int, b *Builder) (*Circuit, error) {
	if len(b.cs) == 0 {
		return nil, errors.New("empty component list")
	}
	c := &Circuit{
		s0:    make([]bool, b.count),
		s1:    make([]bool, b.count),
		cs:    b.cs,
		depth: b.depth(),
	}
	c.s0[True] = true
	c.s1[True] = true

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers <= 0 {
		workers = 1
	}
	cs := c.cs
	for len(cs) > 0 {
		size := len(cs) / workers
		if size*workers < len(cs) {
			size++
		}
		wc := make(chan struct{}, 1)
		c.wc = append(c.wc, wc)
		go worker(c, cs[:size], wc)
		cs = cs[size:]
	}
	return c, nil
}

// Dispose stops the worker goroutines of c. c must not be used afterwards.
//
func (c *Circuit) Dispose() {
	for _, wc := range c.wc {
		close(wc)
	}
}

// worker runs its share of components once per signal on wc, until wc is
// closed.
//
func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for range wc {
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
}

// Get returns the state of pin n in the current frame.
//
func (c *Circuit) Get(n int) bool { return c.s0[n] }

// Set sets the state of pin n in the next frame.
//
func (c *Circuit) Set(n int, s bool) { c.s1[n] = s }

// Step runs every component once, waits for all workers, then makes the
// next frame current.
//
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}
	c.wg.Wait()
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Settle runs the simulation until every output has been updated from the
// current inputs, that is Depth() steps.
//
func (c *Circuit) Settle() {
	for i := 0; i < c.depth; i++ {
		c.Step()
	}
}

// Depth returns the number of steps needed for a change of inputs to reach
// the deepest output.
//
func (c *Circuit) Depth() int { return c.depth }

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint { return c.steps }

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
