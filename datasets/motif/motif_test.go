package motif

import "math/rand"
import "strings"
import "testing"

func TestNewBalancedAndPlanted(t *testing.T) {
	rand.Seed(201)
	d := MustNew(50, 60, "TGACTCA")
	if d.Len() != 50 {
		t.Errorf("bad dataset size: %d", d.Len())
	}
	for i := 0; i < d.Len(); i++ {
		s := d.Get(i)
		if len(s.Seq) != 60 {
			t.Errorf("sample %d has length %d", i, len(s.Seq))
		}
		has := d.ContainsMotif(s.Seq)
		if s.Label == 1 && !has {
			t.Errorf("positive sample %d lacks motif: %s", i, s.Seq)
		}
		if s.Label == 0 && has {
			t.Errorf("negative sample %d carries motif: %s", i, s.Seq)
		}
	}
}

func TestContainsMotifBothStrands(t *testing.T) {
	rand.Seed(202)
	d := MustNew(2, 30, "TGACTCA")
	if !d.ContainsMotif("AAAAAAAATGACTCAAAAA") {
		t.Errorf("forward motif not found")
	}
	if !d.ContainsMotif("AAAAAAAATGAGTCAAAAA") {
		t.Errorf("reverse-complement motif not found")
	}
	if d.ContainsMotif(strings.Repeat("A", 30)) {
		t.Errorf("motif found in poly-A")
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(10, 5, "TGACTCA"); err == nil {
		t.Errorf("sequence shorter than motif accepted")
	}
	if _, err := New(10, 50, "TGACNCA"); err == nil {
		t.Errorf("ambiguous motif accepted")
	}
	if _, err := New(10, 50, ""); err == nil {
		t.Errorf("empty motif accepted")
	}
}
