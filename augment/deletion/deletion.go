// Package deletion implements the random deletion augmentation
package deletion

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomDeletion deletes a contiguous stretch of random length between
// DeleteMin and DeleteMax from each sequence and pads both ends with random
// DNA so sequence length is unchanged.
type RandomDeletion struct {
	DeleteMin, DeleteMax int
}

// New creates a random deletion augmentation.
func New(deleteMin, deleteMax int) (*RandomDeletion, error) {
	if deleteMin < 0 || deleteMax < deleteMin {
		return nil, errors.New("deletion: need 0 <= DeleteMin <= DeleteMax")
	}
	return &RandomDeletion{DeleteMin: deleteMin, DeleteMax: deleteMax}, nil
}

// MustNew creates a random deletion augmentation
func MustNew(deleteMin, deleteMax int) *RandomDeletion {
	o, err := New(deleteMin, deleteMax)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Apply deletes a different random segment from each sequence. Half of the
// deleted length is refilled with random DNA at the front, the rest at the
// back, keeping every sequence at its original length.
func (d *RandomDeletion) Apply(x *sequence.Batch) *sequence.Batch {
	o := sequence.NewBatch(x.N, x.A, x.L)
	for n := 0; n < x.N; n++ {
		deleteLen := d.DeleteMin + rand.Intn(d.DeleteMax-d.DeleteMin+1)
		deleteInd := rand.Intn(x.L - d.DeleteMax + 1)

		padBegin := deleteLen / 2
		padEnd := deleteLen - padBegin

		for l := 0; l < padBegin; l++ {
			o.SetColumn(n, l, rand.Intn(x.A))
		}
		pos := padBegin
		for l := 0; l < deleteInd; l++ {
			for a := 0; a < x.A; a++ {
				o.Set(n, a, pos, x.At(n, a, l))
			}
			pos++
		}
		for l := deleteInd + deleteLen; l < x.L; l++ {
			for a := 0; a < x.A; a++ {
				o.Set(n, a, pos, x.At(n, a, l))
			}
			pos++
		}
		for l := 0; l < padEnd; l++ {
			o.SetColumn(n, pos, rand.Intn(x.A))
			pos++
		}
	}
	return o
}
