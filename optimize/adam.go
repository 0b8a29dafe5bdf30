package optimize

import "math"

// Adam is the Adam optimizer. Zero-valued coefficient fields fall back to
// the usual defaults (Beta1 0.9, Beta2 0.999, Eps 1e-8).
type Adam struct {
	LR    float64 // learning rate
	Beta1 float64 // first-moment decay
	Beta2 float64 // second-moment decay
	Eps   float64 // denominator fuzz

	m, v []float64
	t    int
}

func (a *Adam) defaults() (b1, b2, eps float64) {
	b1, b2, eps = a.Beta1, a.Beta2, a.Eps
	if b1 == 0 {
		b1 = 0.9
	}
	if b2 == 0 {
		b2 = 0.999
	}
	if eps == 0 {
		eps = 1e-8
	}
	return
}

// Step applies one Adam update in place.
func (a *Adam) Step(weights, grads []float32) {
	b1, b2, eps := a.defaults()
	if len(a.m) != len(weights) {
		a.m = make([]float64, len(weights))
		a.v = make([]float64, len(weights))
		a.t = 0
	}
	a.t++
	c1 := 1 - math.Pow(b1, float64(a.t))
	c2 := 1 - math.Pow(b2, float64(a.t))
	for i := range weights {
		g := float64(grads[i])
		a.m[i] = b1*a.m[i] + (1-b1)*g
		a.v[i] = b2*a.v[i] + (1-b2)*g*g
		mhat := a.m[i] / c1
		vhat := a.v[i] / c2
		weights[i] -= float32(a.LR * mhat / (math.Sqrt(vhat) + eps))
	}
}

// Reset clears moment estimates between training phases.
func (a *Adam) Reset() {
	a.m = nil
	a.v = nil
	a.t = 0
}
