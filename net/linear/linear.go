// Package linear implements a logistic-regression reference model over
// flattened one-hot sequence batches
package linear

import "math"

import "github.com/evoaug/evoaug/sequence"

// Linear predicts a probability per sequence as sigmoid(w·x + b) over the
// flattened one-hot input. It implements the robust.Model interface.
type Linear struct {
	// A and L fix the input shape the model accepts
	A, L int

	weights []float32 // A*L weights followed by the bias
	grads   []float32
}

// New creates a zero-initialized linear model for inputs of alphabet size a
// and sequence length l. When the model sits behind a robust wrapper with
// an extending augmentation, l must be the padded target length.
func New(a, l int) *Linear {
	return &Linear{
		A:       a,
		L:       l,
		weights: make([]float32, a*l+1),
		grads:   make([]float32, a*l+1),
	}
}

func sigmoid(z float64) float32 {
	return float32(1 / (1 + math.Exp(-z)))
}

// Forward computes one probability per sequence.
func (m *Linear) Forward(x *sequence.Batch) []float32 {
	if x.A != m.A || x.L != m.L {
		panic("linear: input shape does not match model")
	}
	pred := make([]float32, x.N)
	in := m.A * m.L
	for n := 0; n < x.N; n++ {
		z := float64(m.weights[in])
		row := x.Data[n*in : (n+1)*in]
		for i, v := range row {
			z += float64(m.weights[i]) * float64(v)
		}
		pred[n] = sigmoid(z)
	}
	return pred
}

// Backward accumulates gradients given the loss gradient with respect to
// the sigmoid outputs.
func (m *Linear) Backward(x *sequence.Batch, dPred []float32) {
	in := m.A * m.L
	pred := m.Forward(x)
	for n := 0; n < x.N; n++ {
		// chain through the sigmoid
		dz := dPred[n] * pred[n] * (1 - pred[n])
		row := x.Data[n*in : (n+1)*in]
		for i, v := range row {
			m.grads[i] += dz * v
		}
		m.grads[in] += dz
	}
}

// ZeroGrad clears accumulated gradients.
func (m *Linear) ZeroGrad() {
	for i := range m.grads {
		m.grads[i] = 0
	}
}

// Weights exposes the flat parameter vector.
func (m *Linear) Weights() []float32 {
	return m.weights
}

// Grads exposes the flat gradient vector.
func (m *Linear) Grads() []float32 {
	return m.grads
}
