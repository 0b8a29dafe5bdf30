package trainer

import "github.com/evoaug/evoaug/datasets"
import "github.com/evoaug/evoaug/robust"

// Train runs the full training loop: for each epoch the training set is
// visited through a fresh prime-stride permutation in mini-batches, then
// the evaluate closure measures validation accuracy and checkpoints
// improvements. The loop stops after Epochs passes, after Patience epochs
// without improvement, or when the weights stop changing between epochs.
// It returns the best validation accuracy seen.
func (t *Trainer) Train(rm *robust.RobustModel, train datasets.Dataset, evaluate func() (int, [32]byte)) int {
	bs := t.batchSize()
	best, state := evaluate()
	stale := 0

	for epoch := 0; epoch < t.Epochs; epoch++ {
		perm := datasets.StridePerm(train.Len(), t.Seed+int64(epoch))

		var lossSum float64
		var steps int
		for lo := 0; lo < len(perm); lo += bs {
			hi := lo + bs
			if hi > len(perm) {
				hi = len(perm)
			}
			x, y := datasets.Assemble(train, perm[lo:hi])
			lossSum += rm.Step(x, y)
			steps++
		}

		success, newState := evaluate()
		if steps > 0 {
			t.logf("epoch %d: loss %f, validation %d%%\n", epoch, lossSum/float64(steps), success)
		}

		if success > best {
			best = success
			stale = 0
		} else {
			stale++
		}
		if t.Patience > 0 && stale >= t.Patience {
			t.logf("no improvement in %d epochs, stopping\n", stale)
			break
		}
		if newState == state {
			t.logf("weights unchanged, stopping\n")
			break
		}
		state = newState
	}
	return best
}
