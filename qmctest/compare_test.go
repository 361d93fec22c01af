package qmctest_test

import (
	"math/rand"
	"testing"

	"github.com/db47h/qmc"
	"github.com/db47h/qmc/qmctest"
)

func TestCompareCover(t *testing.T) {
	res, err := qmc.Minimize([]int{0, 4, 5, 7, 8, 11, 12, 15})
	if err != nil {
		t.Fatal(err)
	}
	qmctest.CheckSelection(t, res)
	qmctest.CompareCover(t, res)
}

func TestRandomMinterms(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		ms := qmctest.RandomMinterms(r, 4)
		if len(ms) == 0 {
			t.Fatal("empty minterm set")
		}
		seen := make(map[int]bool)
		for _, m := range ms {
			if m < 0 || m >= 16 || seen[m] {
				t.Fatalf("invalid minterm set %v", ms)
			}
			seen[m] = true
		}
	}
}
