package circuit_test

import (
	"testing"

	"github.com/db47h/qmc"
	"github.com/db47h/qmc/circuit"
	"github.com/pkg/errors"
)

func testGate(t *testing.T, name string, gate func(b *circuit.Builder, x, y int) int, result []bool) {
	t.Helper()
	var a, b bool
	bld := circuit.NewBuilder()
	out := gate(bld, bld.Input(func() bool { return a }), bld.Input(func() bool { return b }))
	c, err := bld.Build(0)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for i := 0; i < 4; i++ {
		a, b = i&2 != 0, i&1 != 0
		c.Settle()
		if got := c.Get(out); got != result[i] {
			t.Errorf("%s(%v, %v) = %v, expected %v", name, a, b, got, result[i])
		}
	}
}

func Test_gates(t *testing.T) {
	testGate(t, "AND", (*circuit.Builder).And, []bool{false, false, false, true})
	testGate(t, "OR", (*circuit.Builder).Or, []bool{false, true, true, true})
	testGate(t, "NOT(AND)", func(b *circuit.Builder, x, y int) int { return b.Not(b.And(x, y)) },
		[]bool{true, true, true, false})
}

func TestBuilder_trees(t *testing.T) {
	var in [5]bool
	b := circuit.NewBuilder()
	pins := make([]int, len(in))
	for i := range pins {
		v := &in[i]
		pins[i] = b.Input(func() bool { return *v })
	}
	and, or := b.AndN(pins...), b.OrN(pins...)
	if b.AndN() != circuit.True || b.OrN() != circuit.False {
		t.Fatal("empty trees must return constant pins")
	}
	if b.AndN(pins[2]) != pins[2] {
		t.Fatal("single pin tree must return that pin")
	}
	c, err := b.Build(2)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	if c.Depth() != 4 {
		t.Errorf("depth = %d, expected 4", c.Depth())
	}
	for m := 0; m < 1<<uint(len(in)); m++ {
		all, some := true, false
		for i := range in {
			in[i] = m&(1<<uint(i)) != 0
			all = all && in[i]
			some = some || in[i]
		}
		c.Settle()
		if c.Get(and) != all || c.Get(or) != some {
			t.Errorf("inputs %v: and = %v, or = %v", in, c.Get(and), c.Get(or))
		}
	}
	if c.Steps() != uint(32*c.Depth()) {
		t.Errorf("steps = %d", c.Steps())
	}
}

func TestSynthesize(t *testing.T) {
	data := []struct {
		name  string
		width int
		cover []qmc.Pattern
		ms    []int
	}{
		{"true", 2, []qmc.Pattern{"__"}, []int{0, 1, 2, 3}},
		{"single", 3, []qmc.Pattern{"111"}, []int{7}},
		{"merged", 3, []qmc.Pattern{"10_"}, []int{4, 5}},
		{"sop", 4, []qmc.Pattern{"1_11", "__00", "01_1"}, []int{0, 4, 5, 7, 8, 11, 12, 15}},
		{"empty", 2, nil, nil},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			for _, workers := range []int{1, 3} {
				f, err := circuit.Synthesize(d.width, d.cover, workers)
				if err != nil {
					t.Fatal(err)
				}
				ms := f.Minterms()
				f.Dispose()
				if len(ms) != len(d.ms) {
					t.Fatalf("%d workers: got minterms %v, expected %v", workers, ms, d.ms)
				}
				for i := range ms {
					if ms[i] != d.ms[i] {
						t.Fatalf("%d workers: got minterms %v, expected %v", workers, ms, d.ms)
					}
				}
			}
		})
	}
}

func TestSynthesize_errors(t *testing.T) {
	_, err := circuit.Synthesize(circuit.MaxInputs+1, nil, 1)
	if errors.Cause(err) != qmc.ErrCapacityExceeded {
		t.Errorf("got error %v, expected %v", err, qmc.ErrCapacityExceeded)
	}
	_, err = circuit.Synthesize(3, []qmc.Pattern{"1_"}, 1)
	if err == nil {
		t.Error("expected width mismatch error")
	}
}

func TestCircuit_settle(t *testing.T) {
	var in bool
	b := circuit.NewBuilder()
	out := b.Not(b.Not(b.Not(b.Input(func() bool { return in }))))
	c, err := b.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	if c.Depth() != 4 {
		t.Fatalf("depth = %d, expected 4", c.Depth())
	}
	c.Settle()
	if !c.Get(out) {
		t.Fatal("NOT(NOT(NOT(false))) = false")
	}

	in = true
	for i := 1; i < c.Depth(); i++ {
		c.Step()
		if !c.Get(out) {
			t.Fatalf("output changed after %d steps, expected %d", i, c.Depth())
		}
	}
	c.Step()
	if c.Get(out) {
		t.Errorf("NOT(NOT(NOT(true))) = true after %d steps", c.Depth())
	}
	if c.Steps() != 8 {
		t.Errorf("steps = %d, expected 8", c.Steps())
	}
}
