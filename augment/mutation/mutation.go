// Package mutation implements the random mutation augmentation
package mutation

import "errors"
import "math"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomMutation replaces a MutateFrac fraction of positions in each
// sequence with random one-hot DNA. The number of mutated positions is
// round(MutateFrac/0.75*L); the divisor compensates for silent mutations
// which redraw the original base.
type RandomMutation struct {
	MutateFrac float64
}

// New creates a random mutation augmentation.
func New(mutateFrac float64) (*RandomMutation, error) {
	if mutateFrac < 0 || mutateFrac > 1 {
		return nil, errors.New("mutation: need MutateFrac in [0, 1]")
	}
	return &RandomMutation{MutateFrac: mutateFrac}, nil
}

// MustNew creates a random mutation augmentation
func MustNew(mutateFrac float64) *RandomMutation {
	o, err := New(mutateFrac)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// NumMutations reports how many positions are redrawn per sequence of
// length l, capped at l since fractions above 0.75 would otherwise ask for
// more positions than the sequence has.
func (m *RandomMutation) NumMutations(l int) int {
	num := int(math.Round(m.MutateFrac / 0.75 * float64(l)))
	if num > l {
		num = l
	}
	return num
}

// Apply redraws a different random set of positions in each sequence.
func (m *RandomMutation) Apply(x *sequence.Batch) *sequence.Batch {
	o := x.Clone()
	num := m.NumMutations(x.L)
	for n := 0; n < o.N; n++ {
		perm := rand.Perm(x.L)
		for _, l := range perm[:num] {
			o.SetColumn(n, l, rand.Intn(x.A))
		}
	}
	return o
}
