package linear

import "testing"

import "github.com/evoaug/evoaug/loss"
import "github.com/evoaug/evoaug/optimize"
import "github.com/evoaug/evoaug/sequence"

func TestZeroModelPredictsHalf(t *testing.T) {
	m := New(sequence.Alphabet, 4)
	pred := m.Forward(sequence.Encode("ACGT"))
	if pred[0] != 0.5 {
		t.Errorf("zero model should predict 0.5: %f", pred[0])
	}
}

func TestLearnsSeparableToy(t *testing.T) {
	// positives start with A, negatives with T
	x := sequence.Encode("AAAA", "ACGT", "TTTT", "TCGA")
	y := []float32{1, 1, 0, 0}

	m := New(sequence.Alphabet, 4)
	criterion := loss.BCE{}
	opt := &optimize.SGD{LR: 0.5}
	dPred := make([]float32, 4)
	for i := 0; i < 200; i++ {
		pred := m.Forward(x)
		criterion.Grad(pred, y, dPred)
		m.ZeroGrad()
		m.Backward(x, dPred)
		opt.Step(m.Weights(), m.Grads())
	}
	pred := m.Forward(x)
	for i := range y {
		if y[i] == 1 && pred[i] < 0.8 {
			t.Errorf("positive %d predicted %f", i, pred[i])
		}
		if y[i] == 0 && pred[i] > 0.2 {
			t.Errorf("negative %d predicted %f", i, pred[i])
		}
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mismatched input did not panic")
		}
	}()
	New(sequence.Alphabet, 8).Forward(sequence.Encode("ACGT"))
}
