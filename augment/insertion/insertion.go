// Package insertion implements the random insertion augmentation
package insertion

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomInsertion inserts a contiguous stretch of random DNA of random
// length between InsertMin and InsertMax into each sequence. Every output
// sequence is padded with the remainder of an InsertMax-length random
// stretch so the whole batch grows to L+InsertMax.
type RandomInsertion struct {
	InsertMin, InsertMax int
}

// New creates a random insertion augmentation.
func New(insertMin, insertMax int) (*RandomInsertion, error) {
	if insertMin < 0 || insertMax < insertMin {
		return nil, errors.New("insertion: need 0 <= InsertMin <= InsertMax")
	}
	return &RandomInsertion{InsertMin: insertMin, InsertMax: insertMax}, nil
}

// MustNew creates a random insertion augmentation
func MustNew(insertMin, insertMax int) *RandomInsertion {
	o, err := New(insertMin, insertMax)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// ExtendLen reports the length growth of every application.
func (i *RandomInsertion) ExtendLen() int {
	return i.InsertMax
}

// Apply inserts a different random segment into each sequence, splitting the
// leftover random DNA between the two sequence ends.
func (i *RandomInsertion) Apply(x *sequence.Batch) *sequence.Batch {
	o := sequence.NewBatch(x.N, x.A, x.L+i.InsertMax)
	for n := 0; n < x.N; n++ {
		insertLen := i.InsertMin + rand.Intn(i.InsertMax-i.InsertMin+1)
		insertInd := rand.Intn(x.L)

		beginLen := (i.InsertMax - insertLen) / 2
		pos := 0
		for l := 0; l < beginLen; l++ {
			o.SetColumn(n, pos, rand.Intn(x.A))
			pos++
		}
		for l := 0; l < insertInd; l++ {
			for a := 0; a < x.A; a++ {
				o.Set(n, a, pos, x.At(n, a, l))
			}
			pos++
		}
		for l := 0; l < insertLen; l++ {
			o.SetColumn(n, pos, rand.Intn(x.A))
			pos++
		}
		for l := insertInd; l < x.L; l++ {
			for a := 0; a < x.A; a++ {
				o.Set(n, a, pos, x.At(n, a, l))
			}
			pos++
		}
		for pos < o.L {
			o.SetColumn(n, pos, rand.Intn(x.A))
			pos++
		}
	}
	return o
}
