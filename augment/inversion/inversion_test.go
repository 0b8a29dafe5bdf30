package inversion

import "math/rand"
import "testing"

import "github.com/evoaug/evoaug/sequence"

func TestFullWindowEqualsReverseComplement(t *testing.T) {
	rand.Seed(41)
	x := sequence.Encode("ACGTACGTACGT")
	o := MustNew(x.L, x.L).Apply(x)
	want := x.Clone()
	want.ReverseComplement(0)
	if !o.Equal(want) {
		t.Errorf("full-length inversion is not the reverse complement: %s", o.Decode(0))
	}
}

func TestZeroInversionIsIdentity(t *testing.T) {
	rand.Seed(42)
	x := sequence.RandomBatch(4, sequence.Alphabet, 30)
	o := MustNew(0, 0).Apply(x)
	if !o.Equal(x) {
		t.Errorf("zero-length inversion modified the batch")
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(-1, 3); err == nil {
		t.Errorf("negative InvertMin accepted")
	}
}
