// Package sequence implements one-hot encoded genomic sequence batches
package sequence

import "math/rand"

// Alphabet is the default nucleotide alphabet size. The channel order is
// A, C, G, T so that the complement of channel a is channel Alphabet-1-a.
const Alphabet = 4

// Batch is a batch of N one-hot sequences over an alphabet of size A,
// each of length L. Data is stored flat, sequence-major then channel-major.
type Batch struct {
	Data []float32
	N, A, L int
}

// NewBatch allocates a zeroed batch of n sequences of length l over an
// alphabet of size a.
func NewBatch(n, a, l int) *Batch {
	return &Batch{
		Data: make([]float32, n*a*l),
		N:    n,
		A:    a,
		L:    l,
	}
}

// At returns the value at sequence n, channel a, position l.
func (b *Batch) At(n, a, l int) float32 {
	return b.Data[(n*b.A+a)*b.L+l]
}

// Set stores v at sequence n, channel a, position l.
func (b *Batch) Set(n, a, l int, v float32) {
	b.Data[(n*b.A+a)*b.L+l] = v
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	o := NewBatch(b.N, b.A, b.L)
	copy(o.Data, b.Data)
	return o
}

// Equal reports whether two batches have the same shape and contents.
func (b *Batch) Equal(o *Batch) bool {
	if b.N != o.N || b.A != o.A || b.L != o.L {
		return false
	}
	for i := range b.Data {
		if b.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

// SetColumn writes a one-hot column for base a at sequence n, position l.
func (b *Batch) SetColumn(n, l, a int) {
	for c := 0; c < b.A; c++ {
		if c == a {
			b.Data[(n*b.A+c)*b.L+l] = 1
		} else {
			b.Data[(n*b.A+c)*b.L+l] = 0
		}
	}
}

// Column returns the argmax channel at sequence n, position l.
func (b *Batch) Column(n, l int) int {
	var best int
	var bestv float32 = -1
	for c := 0; c < b.A; c++ {
		if v := b.Data[(n*b.A+c)*b.L+l]; v > bestv {
			bestv = v
			best = c
		}
	}
	return best
}

// FillRandom overwrites positions [from, to) of every sequence with
// uniformly random one-hot DNA.
func (b *Batch) FillRandom(from, to int) {
	for n := 0; n < b.N; n++ {
		for l := from; l < to; l++ {
			b.SetColumn(n, l, rand.Intn(b.A))
		}
	}
}

// RandomBatch samples a batch of uniformly random one-hot DNA.
func RandomBatch(n, a, l int) *Batch {
	b := NewBatch(n, a, l)
	b.FillRandom(0, l)
	return b
}

// PadEndRandom returns a copy of the batch with pad random one-hot columns
// appended to the end of every sequence. A zero pad returns a plain clone.
func PadEndRandom(b *Batch, pad int) *Batch {
	if pad <= 0 {
		return b.Clone()
	}
	o := NewBatch(b.N, b.A, b.L+pad)
	for n := 0; n < b.N; n++ {
		for a := 0; a < b.A; a++ {
			copy(o.Data[(n*o.A+a)*o.L:(n*o.A+a)*o.L+b.L], b.Data[(n*b.A+a)*b.L:(n*b.A+a+1)*b.L])
		}
		for l := b.L; l < o.L; l++ {
			o.SetColumn(n, l, rand.Intn(o.A))
		}
	}
	return o
}

// ReverseComplement reverse-complements sequence n in place: positions are
// reversed and each channel is swapped with its complement channel.
func (b *Batch) ReverseComplement(n int) {
	b.ReverseComplementRange(n, 0, b.L)
}

// ReverseComplementRange reverse-complements positions [from, to) of
// sequence n in place.
func (b *Batch) ReverseComplementRange(n, from, to int) {
	w := to - from
	if w <= 0 {
		return
	}
	tmp := make([]float32, b.A*w)
	for a := 0; a < b.A; a++ {
		for l := from; l < to; l++ {
			tmp[a*w+l-from] = b.At(n, a, l)
		}
	}
	for a := 0; a < b.A; a++ {
		ca := b.A - 1 - a
		for l := 0; l < w; l++ {
			b.Set(n, a, from+l, tmp[ca*w+w-1-l])
		}
	}
}

// Roll circularly shifts sequence n by k positions (positive shifts move
// content toward higher positions).
func (b *Batch) Roll(n, k int) {
	k %= b.L
	if k < 0 {
		k += b.L
	}
	if k == 0 {
		return
	}
	tmp := make([]float32, b.L)
	for a := 0; a < b.A; a++ {
		row := b.Data[(n*b.A+a)*b.L : (n*b.A+a+1)*b.L]
		copy(tmp[k:], row[:b.L-k])
		copy(tmp[:k], row[b.L-k:])
		copy(row, tmp)
	}
}
