package trainer

import "crypto/sha256"
import "encoding/binary"
import "fmt"
import "math"
import "sync/atomic"

import "github.com/evoaug/evoaug/datasets"
import "github.com/evoaug/evoaug/parallel"
import "github.com/evoaug/evoaug/robust"

// Evaluate computes the whole-percent classification accuracy of the
// wrapper over a validation dataset, batching sequences and running
// batches concurrently.
func (t *Trainer) Evaluate(rm *robust.RobustModel, val datasets.Dataset) int {
	if val.Len() == 0 {
		return 0
	}
	bs := t.batchSize()
	chunks := (val.Len() + bs - 1) / bs

	var correct int64
	parallel.ForEach(chunks, t.EvalLimit, func(c int) {
		lo := c * bs
		hi := lo + bs
		if hi > val.Len() {
			hi = val.Len()
		}
		indices := make([]int, hi-lo)
		for i := range indices {
			indices[i] = lo + i
		}
		x, y := datasets.Assemble(val, indices)
		pred := rm.Predict(x)
		var ok int64
		for i := range pred {
			if (pred[i] >= 0.5) == (y[i] >= 0.5) {
				ok++
			}
		}
		atomic.AddInt64(&correct, ok)
	})
	return int(correct) * 100 / val.Len()
}

// stateHash fingerprints the model weights, so the loop can detect
// training plateaus.
func stateHash(rm *robust.RobustModel) [32]byte {
	h := sha256.New()
	var buf [4]byte
	for _, w := range rm.Model.Weights() {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(w))
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// NewEvaluateFunc builds the per-epoch evaluation closure: it measures
// validation accuracy, checkpoints the model whenever it improves on
// *succ (or unconditionally to an auto-named file when dstmodel is empty)
// and reports the accuracy with a fingerprint of the weights.
func (t *Trainer) NewEvaluateFunc(rm *robust.RobustModel, val datasets.Dataset, succ *int, dstmodel *string) func() (int, [32]byte) {
	return func() (int, [32]byte) {
		success := t.Evaluate(rm, val)

		if dstmodel == nil || *dstmodel == "" {
			err := rm.WriteCheckpointToFile(fmt.Sprintf("checkpoint.%s.%d.ckpt.lzw", t.name(), success))
			if err != nil {
				println(err.Error())
			}
		} else if succ == nil || success > *succ {
			err := rm.WriteCheckpointToFile(*dstmodel)
			if err != nil {
				println(err.Error())
			}
		}
		if succ != nil && success > *succ {
			*succ = success
		}

		return success, stateHash(rm)
	}
}
