// Package inversion implements the random inversion augmentation
package inversion

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomInversion reverse-complements a contiguous window of random length
// between InvertMin and InvertMax in each sequence, mimicking a genomic
// inversion event. Sequence length is unchanged.
type RandomInversion struct {
	InvertMin, InvertMax int
}

// New creates a random inversion augmentation.
func New(invertMin, invertMax int) (*RandomInversion, error) {
	if invertMin < 0 || invertMax < invertMin {
		return nil, errors.New("inversion: need 0 <= InvertMin <= InvertMax")
	}
	return &RandomInversion{InvertMin: invertMin, InvertMax: invertMax}, nil
}

// MustNew creates a random inversion augmentation
func MustNew(invertMin, invertMax int) *RandomInversion {
	o, err := New(invertMin, invertMax)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Apply inverts a different random window in each sequence.
func (i *RandomInversion) Apply(x *sequence.Batch) *sequence.Batch {
	o := x.Clone()
	for n := 0; n < o.N; n++ {
		invertLen := i.InvertMin + rand.Intn(i.InvertMax-i.InvertMin+1)
		invertInd := rand.Intn(x.L - i.InvertMax + 1)
		o.ReverseComplementRange(n, invertInd, invertInd+invertLen)
	}
	return o
}
