package cmd

import (
	"fmt"
	"log"

	"github.com/evoaug/evoaug/config"
	"github.com/evoaug/evoaug/datasets/fasta"
	"github.com/evoaug/evoaug/sequence"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// augmentCmd applies the configured augmentations to FASTA sequences and
// prints the perturbed set, for inspecting what the model trains on
var augmentCmd = &cobra.Command{
	Use:                        "augment",
	Short:                      "Apply the configured augmentations to FASTA sequences",
	Run:                        runAugment,
	SuggestionsMinimumDistance: 2,
	Long: `Read sequences from a FASTA file, draw an augmentation combination per
round exactly as the training loop does and print the perturbed sequences
as FASTA to stdout.`,
}

func runAugment(cm *cobra.Command, args []string) {
	c := config.New()

	recs, err := fasta.ReadFile(viper.GetString("augment-fasta"))
	if err != nil {
		log.Fatalf("loading sequences: %v", err)
	}
	if recs.Len() == 0 {
		log.Fatalf("no sequences to augment")
	}

	rm, err := newWrapper(c, len(recs[0].Seq))
	if err != nil {
		log.Fatalf("building augmentations: %v", err)
	}

	seqs := make([]string, recs.Len())
	for i, rec := range recs {
		seqs[i] = rec.Seq
	}
	rounds := viper.GetInt("rounds")
	for round := 0; round < rounds; round++ {
		out := rm.Augment(sequence.Encode(seqs...))
		for i := range recs {
			fmt.Printf(">%s round=%d\n%s\n", recs[i].ID, round, out.Decode(i))
		}
	}
}

// set flags
func init() {
	augmentCmd.Flags().StringP("fasta", "i", "", "FASTA file with sequences to augment")
	augmentCmd.Flags().IntP("rounds", "n", 1, "augmentation rounds to print")
	augmentCmd.MarkFlagRequired("fasta")

	viper.BindPFlag("augment-fasta", augmentCmd.Flags().Lookup("fasta"))
	viper.BindPFlag("rounds", augmentCmd.Flags().Lookup("rounds"))

	rootCmd.AddCommand(augmentCmd)
}
