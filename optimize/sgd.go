// Package optimize implements gradient-descent optimizers for the
// robust-model wrapper
package optimize

// SGD is stochastic gradient descent with optional momentum.
type SGD struct {
	LR       float64 // learning rate
	Momentum float64 // momentum coefficient, 0 disables it

	velocity []float32
}

// Step applies one descent update in place.
func (s *SGD) Step(weights, grads []float32) {
	if s.Momentum == 0 {
		for i := range weights {
			weights[i] -= float32(s.LR) * grads[i]
		}
		return
	}
	if len(s.velocity) != len(weights) {
		s.velocity = make([]float32, len(weights))
	}
	for i := range weights {
		s.velocity[i] = float32(s.Momentum)*s.velocity[i] + grads[i]
		weights[i] -= float32(s.LR) * s.velocity[i]
	}
}

// Reset clears momentum state.
func (s *SGD) Reset() {
	s.velocity = nil
}
