// Package loss implements training criteria over batch predictions
package loss

import "math"

// BCE is binary cross-entropy over probability predictions.
type BCE struct{}

const eps = 1e-7

func clamp(p float32) float64 {
	v := float64(p)
	if v < eps {
		return eps
	}
	if v > 1-eps {
		return 1 - eps
	}
	return v
}

// Loss computes the mean binary cross-entropy of the batch.
func (BCE) Loss(pred, target []float32) float64 {
	var sum float64
	for i := range pred {
		p := clamp(pred[i])
		y := float64(target[i])
		sum += -(y*math.Log(p) + (1-y)*math.Log(1-p))
	}
	if len(pred) == 0 {
		return 0
	}
	return sum / float64(len(pred))
}

// Grad writes the mean-loss gradient with respect to each prediction.
func (BCE) Grad(pred, target, dPred []float32) {
	n := float64(len(pred))
	for i := range pred {
		p := clamp(pred[i])
		y := float64(target[i])
		dPred[i] = float32((p - y) / (p * (1 - p)) / n)
	}
}

// MSE is mean squared error.
type MSE struct{}

// Loss computes the mean squared error of the batch.
func (MSE) Loss(pred, target []float32) float64 {
	var sum float64
	for i := range pred {
		d := float64(pred[i]) - float64(target[i])
		sum += d * d
	}
	if len(pred) == 0 {
		return 0
	}
	return sum / float64(len(pred))
}

// Grad writes the mean-loss gradient with respect to each prediction.
func (MSE) Grad(pred, target, dPred []float32) {
	n := float64(len(pred))
	for i := range pred {
		dPred[i] = float32(2 * (float64(pred[i]) - float64(target[i])) / n)
	}
}
