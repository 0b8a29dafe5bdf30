package fasta

import "strings"
import "testing"

const example = `>seq1 label=1
ACGTACGT
ACGT
>seq2 label=0
tttt

>seq3
GGGG
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(example))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("bad record count: %d", d.Len())
	}
	if d[0].ID != "seq1" || d[0].Seq != "ACGTACGTACGT" || d[0].Label != 1 {
		t.Errorf("bad first record: %+v", d[0])
	}
	if d[1].Seq != "TTTT" || d[1].Label != 0 {
		t.Errorf("bad second record: %+v", d[1])
	}
	if d[2].ID != "seq3" || d[2].Label != 0 {
		t.Errorf("bad third record: %+v", d[2])
	}
	s := d.Get(0)
	if s.Label != 1 || s.Seq != "ACGTACGTACGT" {
		t.Errorf("bad sample adapter: %+v", s)
	}
}

func TestReadRejectsHeaderlessData(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n")); err == nil {
		t.Errorf("headerless data accepted")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("no-such-file.fa"); err == nil {
		t.Errorf("missing file accepted")
	}
}
