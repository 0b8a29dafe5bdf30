package sequence

import "strings"

var baseIndex = map[byte]int{'A': 0, 'C': 1, 'G': 2, 'T': 3, 'a': 0, 'c': 1, 'g': 2, 't': 3}

const baseLetters = "ACGT"

// Encode one-hot encodes equal-length nucleotide strings into a batch.
// Characters outside ACGT (e.g. N) encode as all-zero columns.
func Encode(seqs ...string) *Batch {
	if len(seqs) == 0 {
		return NewBatch(0, Alphabet, 0)
	}
	b := NewBatch(len(seqs), Alphabet, len(seqs[0]))
	for n, s := range seqs {
		for l := 0; l < len(s) && l < b.L; l++ {
			if a, ok := baseIndex[s[l]]; ok {
				b.Set(n, a, l, 1)
			}
		}
	}
	return b
}

// Decode renders sequence n of the batch as a nucleotide string, using the
// strongest channel per position and N for all-zero columns.
func (b *Batch) Decode(n int) string {
	var sb strings.Builder
	sb.Grow(b.L)
	for l := 0; l < b.L; l++ {
		var best int
		var bestv float32
		for c := 0; c < b.A; c++ {
			if v := b.At(n, c, l); v > bestv {
				bestv = v
				best = c
			}
		}
		if bestv <= 0 || best >= len(baseLetters) {
			sb.WriteByte('N')
		} else {
			sb.WriteByte(baseLetters[best])
		}
	}
	return sb.String()
}
