package optimize

import "testing"

func TestSGDStep(t *testing.T) {
	w := []float32{1, -1}
	g := []float32{0.5, -0.5}
	(&SGD{LR: 0.1}).Step(w, g)
	if w[0] != 0.95 || w[1] != -0.95 {
		t.Errorf("bad sgd update: %v", w)
	}
}

func TestSGDMomentumAccumulates(t *testing.T) {
	s := &SGD{LR: 0.1, Momentum: 0.9}
	w := []float32{0}
	s.Step(w, []float32{1})
	first := w[0]
	s.Step(w, []float32{1})
	second := w[0] - first
	if !(second < first) {
		t.Errorf("momentum did not grow the step: %f then %f", first, second)
	}
	s.Reset()
	if s.velocity != nil {
		t.Errorf("reset kept velocity")
	}
}

func TestAdamDescendsQuadratic(t *testing.T) {
	// minimize (w-3)^2 from w=0
	a := &Adam{LR: 0.1}
	w := []float32{0}
	g := make([]float32, 1)
	for i := 0; i < 500; i++ {
		g[0] = 2 * (w[0] - 3)
		a.Step(w, g)
	}
	if w[0] < 2.5 || w[0] > 3.5 {
		t.Errorf("adam did not converge: %f", w[0])
	}
}
