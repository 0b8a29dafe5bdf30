// Package datasets implements the labeled sequence dataset type consumed
// by the trainer
package datasets

import "github.com/jbarham/primegen"

import "github.com/evoaug/evoaug/sequence"

// Sample is one labeled nucleotide sequence.
type Sample struct {
	Seq   string
	Label float32
}

// Dataset is a random-access collection of samples.
type Dataset interface {
	Get(n int) Sample
	Len() int
}

// Assemble one-hot encodes the selected samples into a training batch and
// a label vector.
func Assemble(d Dataset, indices []int) (*sequence.Batch, []float32) {
	seqs := make([]string, len(indices))
	labels := make([]float32, len(indices))
	for i, idx := range indices {
		s := d.Get(idx)
		seqs[i] = s.Seq
		labels[i] = s.Label
	}
	return sequence.Encode(seqs...), labels
}

// subset is a view of a dataset through an index list.
type subset struct {
	d   Dataset
	idx []int
}

func (s subset) Get(n int) Sample {
	return s.d.Get(s.idx[n])
}

func (s subset) Len() int {
	return len(s.idx)
}

// Split deterministically splits a dataset into a training view and a
// validation view holding roughly a valFrac fraction of the samples,
// interleaved so both views cover the whole set.
func Split(d Dataset, valFrac float64) (train, val Dataset) {
	if valFrac <= 0 {
		return d, subset{d: d}
	}
	every := int(1 / valFrac)
	if every < 2 {
		every = 2
	}
	var trainIdx, valIdx []int
	for i := 0; i < d.Len(); i++ {
		if i%every == 0 {
			valIdx = append(valIdx, i)
		} else {
			trainIdx = append(trainIdx, i)
		}
	}
	return subset{d: d, idx: trainIdx}, subset{d: d, idx: valIdx}
}

// StridePerm returns a permutation of [0, n) built from a prime stride
// larger than n, so every epoch visits all samples in a decorrelated order
// without a full shuffle. The seed picks the prime and the starting offset.
func StridePerm(n int, seed int64) []int {
	o := make([]int, n)
	if n <= 1 {
		for i := range o {
			o[i] = i
		}
		return o
	}
	g := primegen.New()
	p := g.Next()
	for int64(p) <= int64(n) {
		p = g.Next()
	}
	// advance to a seed-dependent prime above n
	for skip := seed % 16; skip > 0; skip-- {
		p = g.Next()
	}
	stride := int(p % uint64(n))
	offset := int(seed % int64(n))
	if offset < 0 {
		offset += n
	}
	for i := range o {
		o[i] = (offset + i*stride) % n
	}
	return o
}
