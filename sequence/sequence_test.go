package sequence

import "math/rand"
import "testing"

func TestEncodeDecode(t *testing.T) {
	b := Encode("ACGT", "TTGA")
	if b.N != 2 || b.A != Alphabet || b.L != 4 {
		t.Errorf("bad shape: %d %d %d", b.N, b.A, b.L)
	}
	if b.Decode(0) != "ACGT" {
		t.Errorf("bad decode: %s", b.Decode(0))
	}
	if b.Decode(1) != "TTGA" {
		t.Errorf("bad decode: %s", b.Decode(1))
	}
}

func TestReverseComplement(t *testing.T) {
	b := Encode("ACGTT")
	b.ReverseComplement(0)
	if b.Decode(0) != "AACGT" {
		t.Errorf("bad reverse complement: %s", b.Decode(0))
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	rand.Seed(7)
	b := RandomBatch(3, Alphabet, 20)
	o := b.Clone()
	o.ReverseComplement(1)
	o.ReverseComplement(1)
	if !b.Equal(o) {
		t.Errorf("double reverse complement is not identity")
	}
}

func TestReverseComplementRange(t *testing.T) {
	b := Encode("AAACGTAA")
	b.ReverseComplementRange(0, 3, 6)
	if b.Decode(0) != "AAAACGAA" {
		t.Errorf("bad windowed reverse complement: %s", b.Decode(0))
	}
}

func TestRoll(t *testing.T) {
	b := Encode("ACGT")
	b.Roll(0, 1)
	if b.Decode(0) != "TACG" {
		t.Errorf("bad positive roll: %s", b.Decode(0))
	}
	b.Roll(0, -1)
	if b.Decode(0) != "ACGT" {
		t.Errorf("bad negative roll: %s", b.Decode(0))
	}
}

func TestPadEndRandom(t *testing.T) {
	rand.Seed(1)
	b := Encode("ACGT")
	o := PadEndRandom(b, 3)
	if o.L != 7 {
		t.Errorf("bad padded length: %d", o.L)
	}
	if o.Decode(0)[:4] != "ACGT" {
		t.Errorf("padding clobbered prefix: %s", o.Decode(0))
	}
	var sum float32
	for l := 4; l < 7; l++ {
		for a := 0; a < o.A; a++ {
			sum += o.At(0, a, l)
		}
	}
	if sum != 3 {
		t.Errorf("padding is not one-hot: %f", sum)
	}
}

func TestRandomBatchOneHot(t *testing.T) {
	rand.Seed(2)
	b := RandomBatch(4, Alphabet, 16)
	for n := 0; n < b.N; n++ {
		for l := 0; l < b.L; l++ {
			var sum float32
			for a := 0; a < b.A; a++ {
				sum += b.At(n, a, l)
			}
			if sum != 1 {
				t.Errorf("column %d,%d is not one-hot", n, l)
			}
		}
	}
}
