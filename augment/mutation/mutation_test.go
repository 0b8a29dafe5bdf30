package mutation

import "math/rand"
import "testing"

import "github.com/evoaug/evoaug/sequence"

func TestApplyBoundsChangedColumns(t *testing.T) {
	rand.Seed(51)
	x := sequence.RandomBatch(6, sequence.Alphabet, 100)
	aug := MustNew(0.15)
	o := aug.Apply(x)
	if o.L != x.L {
		t.Errorf("mutation changed length: %d", o.L)
	}
	limit := aug.NumMutations(x.L)
	for n := 0; n < x.N; n++ {
		var changed int
		for l := 0; l < x.L; l++ {
			for a := 0; a < x.A; a++ {
				if x.At(n, a, l) != o.At(n, a, l) {
					changed++
					break
				}
			}
		}
		if changed > limit {
			t.Errorf("sequence %d: %d columns changed, limit %d", n, changed, limit)
		}
	}
}

func TestZeroFracIsIdentity(t *testing.T) {
	rand.Seed(52)
	x := sequence.RandomBatch(3, sequence.Alphabet, 40)
	o := MustNew(0).Apply(x)
	if !o.Equal(x) {
		t.Errorf("zero mutation fraction modified the batch")
	}
}

func TestFullFracRedrawsEveryColumn(t *testing.T) {
	rand.Seed(53)
	x := sequence.RandomBatch(2, sequence.Alphabet, 10)
	aug := MustNew(1)
	if got := aug.NumMutations(x.L); got != x.L {
		t.Errorf("NumMutations(%d) = %d, want cap at %d", x.L, got, x.L)
	}
	o := aug.Apply(x)
	if o.L != x.L {
		t.Errorf("mutation changed length: %d", o.L)
	}
	for n := 0; n < o.N; n++ {
		for l := 0; l < o.L; l++ {
			var sum float32
			for a := 0; a < o.A; a++ {
				sum += o.At(n, a, l)
			}
			if sum != 1 {
				t.Errorf("sequence %d position %d is not one-hot", n, l)
			}
		}
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(-0.1); err == nil {
		t.Errorf("negative fraction accepted")
	}
	if _, err := New(1.1); err == nil {
		t.Errorf("fraction above 1 accepted")
	}
}
