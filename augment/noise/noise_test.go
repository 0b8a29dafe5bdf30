package noise

import "math/rand"
import "testing"

import "github.com/evoaug/evoaug/sequence"

func TestZeroStdAddsMean(t *testing.T) {
	x := sequence.Encode("ACGT")
	o := MustNew(1, 0).Apply(x)
	for i := range o.Data {
		if o.Data[i] != x.Data[i]+1 {
			t.Errorf("element %d: got %f want %f", i, o.Data[i], x.Data[i]+1)
		}
	}
}

func TestApplyKeepsShape(t *testing.T) {
	rand.Seed(71)
	x := sequence.RandomBatch(3, sequence.Alphabet, 12)
	o := MustNew(0, 0.2).Apply(x)
	if o.N != x.N || o.A != x.A || o.L != x.L {
		t.Errorf("noise changed shape: %d %d %d", o.N, o.A, o.L)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(0, -0.2); err == nil {
		t.Errorf("negative std accepted")
	}
}
