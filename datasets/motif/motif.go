// Package motif implements a synthetic planted-motif classification
// dataset for exercising augmented training end to end
package motif

import "errors"
import "math/rand"
import "strings"

import "github.com/neurlang/quaternary"

import "github.com/evoaug/evoaug/datasets"
import "github.com/evoaug/evoaug/sequence"

const bases = "ACGT"

// Dataslice is a balanced dataset of random DNA sequences where the
// positive half contains a planted motif (on either strand) at a random
// position.
type Dataslice struct {
	samples []datasets.Sample

	motif  string
	k      int
	filter quaternary.Filter
}

// New generates a dataset of n samples of length l around the given motif.
// Negative samples are redrawn until they are motif-free on both strands,
// checked against a quaternary filter over the complete k-mer domain.
func New(n, l int, motif string) (*Dataslice, error) {
	motif = strings.ToUpper(motif)
	// the filter enumerates the full 4^k k-mer domain
	if len(motif) == 0 || len(motif) > 10 {
		return nil, errors.New("motif: motif length must be in [1, 10]")
	}
	if l < len(motif) {
		return nil, errors.New("motif: sequence length shorter than motif")
	}
	for i := 0; i < len(motif); i++ {
		if !strings.ContainsRune(bases, rune(motif[i])) {
			return nil, errors.New("motif: motif must be plain ACGT")
		}
	}

	d := &Dataslice{
		motif:  motif,
		k:      len(motif),
		filter: makeFilter(motif),
	}

	d.samples = make([]datasets.Sample, n)
	for i := range d.samples {
		if i%2 == 0 {
			d.samples[i] = datasets.Sample{Seq: d.positive(l), Label: 1}
		} else {
			d.samples[i] = datasets.Sample{Seq: d.negative(l), Label: 0}
		}
	}
	return d, nil
}

// MustNew generates a planted-motif dataset
func MustNew(n, l int, motif string) *Dataslice {
	d, err := New(n, l, motif)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Get returns the n-th sample.
func (d *Dataslice) Get(n int) datasets.Sample {
	return d.samples[n]
}

// Len returns the number of samples.
func (d *Dataslice) Len() int {
	return len(d.samples)
}

// Motif returns the planted motif.
func (d *Dataslice) Motif() string {
	return d.motif
}

// ContainsMotif reports whether the sequence carries the motif on either
// strand.
func (d *Dataslice) ContainsMotif(seq string) bool {
	if len(seq) < d.k {
		return false
	}
	var key, mask uint32
	mask = (1 << uint(2*d.k)) - 1
	for i := 0; i < len(seq); i++ {
		key = (key<<2 | packBase(seq[i])) & mask
		if i >= d.k-1 && d.filter.GetUint32(key) {
			return true
		}
	}
	return false
}

func (d *Dataslice) positive(l int) string {
	seq := []byte(randomSeq(l))
	planted := d.motif
	if rand.Float64() < 0.5 {
		planted = revComp(planted)
	}
	pos := rand.Intn(l - d.k + 1)
	copy(seq[pos:], planted)
	return string(seq)
}

func (d *Dataslice) negative(l int) string {
	for {
		seq := randomSeq(l)
		if !d.ContainsMotif(seq) {
			return seq
		}
	}
}

// makeFilter stores the motif membership function over the complete k-mer
// domain, so lookups are exact for every possible k-mer.
func makeFilter(motif string) quaternary.Filter {
	k := len(motif)
	target := packKmer(motif)
	targetRC := packKmer(revComp(motif))
	m := make(map[uint32]bool, 1<<uint(2*k))
	for key := uint32(0); key < 1<<uint(2*k); key++ {
		m[key] = key == target || key == targetRC
	}
	return quaternary.Make(m)
}

func randomSeq(l int) string {
	var sb strings.Builder
	sb.Grow(l)
	for i := 0; i < l; i++ {
		sb.WriteByte(bases[rand.Intn(sequence.Alphabet)])
	}
	return sb.String()
}

func revComp(s string) string {
	o := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[len(s)-1-i] {
		case 'A':
			o[i] = 'T'
		case 'C':
			o[i] = 'G'
		case 'G':
			o[i] = 'C'
		default:
			o[i] = 'A'
		}
	}
	return string(o)
}

func packBase(b byte) uint32 {
	switch b {
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return 0
}

func packKmer(s string) uint32 {
	var key uint32
	for i := 0; i < len(s); i++ {
		key = key<<2 | packBase(s[i])
	}
	return key
}
