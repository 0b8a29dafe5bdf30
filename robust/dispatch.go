package robust

import "math/rand"
import "sort"

import "github.com/evoaug/evoaug/augment"
import "github.com/evoaug/evoaug/sequence"

// sampleCombo draws the augmentation indices for one batch: exactly
// min(MaxAugsPerSeq, len(Augments)) under the hard policy, a uniform count
// in [0, MaxAugsPerSeq] otherwise, chosen without replacement and applied
// in augment-list order.
func (rm *RobustModel) sampleCombo() []int {
	max := rm.MaxAugsPerSeq
	if max > len(rm.Augments) {
		max = len(rm.Augments)
	}
	if max < 0 {
		max = 0
	}
	count := max
	if !rm.HardAug {
		count = rand.Intn(max + 1)
	}
	combo := rand.Perm(len(rm.Augments))[:count]
	sort.Ints(combo)
	return combo
}

// Augment applies one sampled augmentation combination to the batch and
// pads the result with random DNA up to the fixed target length. In the
// fine-tuning phase no augmentations are drawn and only the padding
// remains.
func (rm *RobustModel) Augment(x *sequence.Batch) *sequence.Batch {
	target := augment.TargetLen(rm.Augments, x.L)
	if rm.finetune {
		return sequence.PadEndRandom(x, target-x.L)
	}
	for _, i := range rm.sampleCombo() {
		x = rm.Augments[i].Apply(x)
	}
	return sequence.PadEndRandom(x, target-x.L)
}

// pad end-pads a batch to the trained input length without augmenting.
func (rm *RobustModel) pad(x *sequence.Batch) *sequence.Batch {
	target := augment.TargetLen(rm.Augments, x.L)
	if target == x.L {
		return x
	}
	return sequence.PadEndRandom(x, target-x.L)
}
