package rc

import "math/rand"
import "testing"

import "github.com/evoaug/evoaug/sequence"

func TestProbOneFlipsEverySequence(t *testing.T) {
	rand.Seed(61)
	x := sequence.Encode("ACGTT", "GGATC")
	o := MustNew(1).Apply(x)
	if o.Decode(0) != "AACGT" {
		t.Errorf("bad reverse complement: %s", o.Decode(0))
	}
	if o.Decode(1) != "GATCC" {
		t.Errorf("bad reverse complement: %s", o.Decode(1))
	}
}

func TestProbZeroIsIdentity(t *testing.T) {
	rand.Seed(62)
	x := sequence.RandomBatch(5, sequence.Alphabet, 20)
	o := MustNew(0).Apply(x)
	if !o.Equal(x) {
		t.Errorf("zero probability modified the batch")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rand.Seed(63)
	x := sequence.RandomBatch(4, sequence.Alphabet, 16)
	snapshot := x.Clone()
	MustNew(1).Apply(x)
	if !x.Equal(snapshot) {
		t.Errorf("input batch was mutated")
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(1.5); err == nil {
		t.Errorf("probability above 1 accepted")
	}
}
