// Package translocation implements the random translocation augmentation
package translocation

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomTranslocation cuts each sequence in two pieces and swaps their
// order, implemented as a circular roll of random magnitude between
// ShiftMin and ShiftMax with random sign.
type RandomTranslocation struct {
	ShiftMin, ShiftMax int
}

// New creates a random translocation augmentation.
func New(shiftMin, shiftMax int) (*RandomTranslocation, error) {
	if shiftMin < 0 || shiftMax < shiftMin {
		return nil, errors.New("translocation: need 0 <= ShiftMin <= ShiftMax")
	}
	return &RandomTranslocation{ShiftMin: shiftMin, ShiftMax: shiftMax}, nil
}

// MustNew creates a random translocation augmentation
func MustNew(shiftMin, shiftMax int) *RandomTranslocation {
	o, err := New(shiftMin, shiftMax)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Apply rolls each sequence by its own random shift.
func (t *RandomTranslocation) Apply(x *sequence.Batch) *sequence.Batch {
	o := x.Clone()
	for n := 0; n < o.N; n++ {
		shift := t.ShiftMin + rand.Intn(t.ShiftMax-t.ShiftMin+1)
		if rand.Float64() < 0.5 {
			shift = -shift
		}
		o.Roll(n, shift)
	}
	return o
}
