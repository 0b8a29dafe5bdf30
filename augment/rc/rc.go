// Package rc implements the random reverse-complement augmentation
package rc

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomRC reverse-complements each sequence independently with
// probability RCProb.
type RandomRC struct {
	RCProb float64
}

// New creates a random reverse-complement augmentation.
func New(rcProb float64) (*RandomRC, error) {
	if rcProb < 0 || rcProb > 1 {
		return nil, errors.New("rc: need RCProb in [0, 1]")
	}
	return &RandomRC{RCProb: rcProb}, nil
}

// MustNew creates a random reverse-complement augmentation
func MustNew(rcProb float64) *RandomRC {
	o, err := New(rcProb)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Apply flips a random subset of the batch to the opposite strand.
func (r *RandomRC) Apply(x *sequence.Batch) *sequence.Batch {
	o := x.Clone()
	for n := 0; n < o.N; n++ {
		if rand.Float64() < r.RCProb {
			o.ReverseComplement(n)
		}
	}
	return o
}
