// Package robust implements a robust-model wrapper which perturbs training
// batches with evolution-inspired augmentations before they reach the
// wrapped model
package robust

import "github.com/evoaug/evoaug/augment"
import "github.com/evoaug/evoaug/sequence"

// Model is a trainable predictor over one-hot sequence batches.
type Model interface {

	// Forward computes one prediction per sequence in the batch
	Forward(x *sequence.Batch) []float32

	// Backward accumulates parameter gradients from the loss gradient
	// with respect to the predictions
	Backward(x *sequence.Batch, dPred []float32)

	// ZeroGrad clears accumulated gradients
	ZeroGrad()

	// Weights exposes the flat mutable parameter vector
	Weights() []float32

	// Grads exposes the flat accumulated gradient vector
	Grads() []float32
}

// Criterion is a differentiable loss over predictions and targets.
type Criterion interface {

	// Loss computes the mean loss of the batch
	Loss(pred, target []float32) float64

	// Grad writes the loss gradient with respect to each prediction
	Grad(pred, target, dPred []float32)
}

// Optimizer updates weights in place from accumulated gradients.
type Optimizer interface {

	// Step applies one update
	Step(weights, grads []float32)

	// Reset clears optimizer state between training phases
	Reset()
}

// RobustModel wraps a model with an augmentation list and a sampling
// policy. The list and policy flags are fixed for the lifetime of the
// wrapper; fine-tuning only swaps the optimizer and stops drawing
// augmentations.
type RobustModel struct {
	Model     Model
	Criterion Criterion

	// Optimizer drives the pre-training phase
	Optimizer Optimizer

	// FineTuneOptimizer, when set, replaces Optimizer after SetFineTune
	FineTuneOptimizer Optimizer

	// Augments is the ordered augmentation list sampled at training time
	Augments []augment.Augment

	// MaxAugsPerSeq bounds how many augmentations apply per batch
	MaxAugsPerSeq int

	// HardAug applies exactly MaxAugsPerSeq augmentations instead of a
	// uniformly sampled count
	HardAug bool

	// InferenceAug keeps augmentations active in Predict
	InferenceAug bool

	finetune bool
}

// New creates a robust-model wrapper with the given augmentation list and
// sampling policy.
func New(model Model, criterion Criterion, optimizer Optimizer, augments []augment.Augment,
	maxAugsPerSeq int, hardAug, inferenceAug bool) *RobustModel {
	return &RobustModel{
		Model:         model,
		Criterion:     criterion,
		Optimizer:     optimizer,
		Augments:      augments,
		MaxAugsPerSeq: maxAugsPerSeq,
		HardAug:       hardAug,
		InferenceAug:  inferenceAug,
	}
}

// SetFineTune toggles the fine-tuning phase: augmentation sampling is
// disabled (end padding still applies so input lengths match the
// pre-trained model) and the fine-tune optimizer takes over when set.
func (rm *RobustModel) SetFineTune(finetune bool) {
	rm.finetune = finetune
	if opt := rm.optimizer(); opt != nil {
		opt.Reset()
	}
}

// FineTune reports whether the wrapper is in the fine-tuning phase.
func (rm *RobustModel) FineTune() bool {
	return rm.finetune
}

func (rm *RobustModel) optimizer() Optimizer {
	if rm.finetune && rm.FineTuneOptimizer != nil {
		return rm.FineTuneOptimizer
	}
	return rm.Optimizer
}

// Step runs one training step on the batch: augment, forward, loss,
// backward and optimizer update. It returns the batch loss.
func (rm *RobustModel) Step(x *sequence.Batch, y []float32) float64 {
	x = rm.Augment(x)
	pred := rm.Model.Forward(x)
	loss := rm.Criterion.Loss(pred, y)
	dPred := make([]float32, len(pred))
	rm.Criterion.Grad(pred, y, dPred)
	rm.Model.ZeroGrad()
	rm.Model.Backward(x, dPred)
	rm.optimizer().Step(rm.Model.Weights(), rm.Model.Grads())
	return loss
}

// Eval computes predictions and the batch loss without touching gradients
// or augmentations beyond end padding.
func (rm *RobustModel) Eval(x *sequence.Batch, y []float32) ([]float32, float64) {
	pred := rm.Predict(x)
	return pred, rm.Criterion.Loss(pred, y)
}

// Predict runs inference. Augmentations apply only when InferenceAug is
// set; otherwise the batch is only end-padded to the length the model was
// trained on, which is the identity when no extending augmentation is
// configured.
func (rm *RobustModel) Predict(x *sequence.Batch) []float32 {
	if rm.InferenceAug {
		return rm.Model.Forward(rm.Augment(x))
	}
	return rm.Model.Forward(rm.pad(x))
}
