// Package augment defines the augmentation interface implemented by the
// evolution-inspired sequence transformations in its subpackages
package augment

import "github.com/evoaug/evoaug/sequence"

// Augment is a randomized transformation of a batch of one-hot sequences.
// Apply must not mutate its input and must preserve batch cardinality.
type Augment interface {

	// Apply returns the transformed batch
	Apply(x *sequence.Batch) *sequence.Batch
}

// Extender is implemented by augmentations which grow sequence length on
// every application (insertion). The dispatcher uses it to keep batch
// lengths constant across sampled combinations.
type Extender interface {

	// ExtendLen reports by how many positions an application grows L
	ExtendLen() int
}

// TargetLen is the sequence length a batch of length l has after passing
// any combination of the listed augmentations through a dispatcher that
// pads unapplied extensions.
func TargetLen(augments []Augment, l int) int {
	for _, a := range augments {
		if e, ok := a.(Extender); ok {
			l += e.ExtendLen()
		}
	}
	return l
}
