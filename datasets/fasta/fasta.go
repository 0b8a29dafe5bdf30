// Package fasta reads labeled sequence datasets from FASTA files
package fasta

import "bufio"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"

import "github.com/evoaug/evoaug/datasets"

// Record is one FASTA entry. The label is parsed from a "label=<x>" field
// in the header line and defaults to zero when absent.
type Record struct {
	ID    string
	Seq   string
	Label float32
}

// Dataslice adapts FASTA records to the datasets interface.
type Dataslice []Record

// Get returns the n-th sample.
func (d Dataslice) Get(n int) datasets.Sample {
	return datasets.Sample{Seq: d[n].Seq, Label: d[n].Label}
}

// Len returns the number of records.
func (d Dataslice) Len() int {
	return len(d)
}

// ReadFile reads all records from a FASTA file.
func ReadFile(path string) (Dataslice, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening fasta")
	}
	defer file.Close()
	d, err := Read(file)
	return d, errors.Wrapf(err, "reading fasta %s", path)
}

// Read reads all records from FASTA-formatted input. Sequences may span
// multiple lines; blank lines are skipped.
func Read(r io.Reader) (Dataslice, error) {
	var d Dataslice
	var cur *Record
	var seq strings.Builder

	flush := func() {
		if cur != nil {
			cur.Seq = strings.ToUpper(seq.String())
			d = append(d, *cur)
			seq.Reset()
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<24)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			rec := parseHeader(line[1:])
			cur = &rec
			continue
		}
		if cur == nil {
			return nil, errors.New("fasta: sequence data before first header")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning fasta")
	}
	flush()
	return d, nil
}

func parseHeader(h string) Record {
	fields := strings.Fields(h)
	rec := Record{}
	if len(fields) > 0 {
		rec.ID = fields[0]
	}
	for _, f := range fields[1:] {
		if v, ok := cutPrefix(f, "label="); ok {
			if x, err := strconv.ParseFloat(v, 32); err == nil {
				rec.Label = float32(x)
			}
		}
	}
	return rec
}

func cutPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
