package cmd

import (
	"github.com/evoaug/evoaug/augment"
	"github.com/evoaug/evoaug/config"
	"github.com/evoaug/evoaug/datasets"
	"github.com/evoaug/evoaug/datasets/fasta"
	"github.com/evoaug/evoaug/datasets/motif"
	"github.com/evoaug/evoaug/loss"
	"github.com/evoaug/evoaug/net/linear"
	"github.com/evoaug/evoaug/optimize"
	"github.com/evoaug/evoaug/robust"
	"github.com/evoaug/evoaug/sequence"
	"github.com/pkg/errors"
)

// loadDataset opens the labeled FASTA file when one is configured and
// otherwise generates a balanced synthetic motif dataset. It also reports
// the sequence length of the data.
func loadDataset(c config.Config) (datasets.Dataset, int, error) {
	if c.Data.Fasta != "" {
		d, err := fasta.ReadFile(c.Data.Fasta)
		if err != nil {
			return nil, 0, err
		}
		if d.Len() == 0 {
			return nil, 0, errors.Errorf("no records in %s", c.Data.Fasta)
		}
		return d, len(d[0].Seq), nil
	}

	d, err := motif.New(c.Data.Count, c.Data.SeqLen, c.Data.Motif)
	if err != nil {
		return nil, 0, err
	}
	return d, c.Data.SeqLen, nil
}

// newWrapper assembles the robust-model wrapper from the settings: the
// enabled augmentation list, a linear model sized for the post-augmentation
// sequence length, binary cross-entropy and Adam for both phases.
func newWrapper(c config.Config, seqLen int) (*robust.RobustModel, error) {
	augments, err := c.Augments()
	if err != nil {
		return nil, err
	}

	m := linear.New(sequence.Alphabet, augment.TargetLen(augments, seqLen))
	rm := robust.New(m, loss.BCE{}, &optimize.Adam{LR: c.Train.LR},
		augments, c.Policy.MaxAugsPerSeq, c.Policy.HardAug, c.Policy.InferenceAug)
	rm.FineTuneOptimizer = &optimize.Adam{LR: c.Train.FineTuneLR}
	return rm, nil
}
