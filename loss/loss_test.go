package loss

import "math"
import "testing"

func TestBCEPerfectPrediction(t *testing.T) {
	l := BCE{}.Loss([]float32{1, 0}, []float32{1, 0})
	if l > 1e-5 {
		t.Errorf("perfect prediction loss too high: %f", l)
	}
}

func TestBCEGradSign(t *testing.T) {
	dPred := make([]float32, 2)
	BCE{}.Grad([]float32{0.3, 0.8}, []float32{1, 0}, dPred)
	if dPred[0] >= 0 {
		t.Errorf("underprediction of a positive should have negative gradient: %f", dPred[0])
	}
	if dPred[1] <= 0 {
		t.Errorf("overprediction of a negative should have positive gradient: %f", dPred[1])
	}
}

func TestMSE(t *testing.T) {
	l := MSE{}.Loss([]float32{1, 3}, []float32{0, 1})
	if math.Abs(l-2.5) > 1e-6 {
		t.Errorf("bad mse: %f", l)
	}
	dPred := make([]float32, 2)
	MSE{}.Grad([]float32{1, 3}, []float32{0, 1}, dPred)
	if math.Abs(float64(dPred[0])-1) > 1e-6 || math.Abs(float64(dPred[1])-2) > 1e-6 {
		t.Errorf("bad mse gradient: %v", dPred)
	}
}
