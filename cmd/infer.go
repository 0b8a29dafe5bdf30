package cmd

import (
	"fmt"
	"log"

	"github.com/evoaug/evoaug/config"
	"github.com/evoaug/evoaug/datasets"
	"github.com/evoaug/evoaug/datasets/fasta"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// inferCmd scores FASTA sequences with a trained checkpoint
var inferCmd = &cobra.Command{
	Use:                        "infer",
	Short:                      "Score FASTA sequences with a trained checkpoint",
	Run:                        runInfer,
	SuggestionsMinimumDistance: 2,
	Long: `Load a checkpoint written by 'evoaug train' and print one prediction per
input sequence. The augmentation settings must match the ones the model
was trained with so the input is padded to the trained length.`,
}

func runInfer(cm *cobra.Command, args []string) {
	c := config.New()

	recs, err := fasta.ReadFile(viper.GetString("infer-fasta"))
	if err != nil {
		log.Fatalf("loading sequences: %v", err)
	}
	if recs.Len() == 0 {
		log.Fatalf("no sequences to score")
	}

	rm, err := newWrapper(c, len(recs[0].Seq))
	if err != nil {
		log.Fatalf("building model: %v", err)
	}
	if err := rm.ReadCheckpointFromFile(viper.GetString("infer-model")); err != nil {
		log.Fatalf("loading checkpoint: %v", err)
	}

	indices := make([]int, recs.Len())
	for i := range indices {
		indices[i] = i
	}
	x, _ := datasets.Assemble(recs, indices)
	pred := rm.Predict(x)
	for i, p := range pred {
		fmt.Printf("%s\t%.4f\n", recs[i].ID, p)
	}
}

// set flags
func init() {
	inferCmd.Flags().StringP("model", "m", "evoaug.ckpt.lzw", "checkpoint file to load")
	inferCmd.Flags().StringP("fasta", "i", "", "FASTA file with sequences to score")
	inferCmd.MarkFlagRequired("fasta")

	// keys are per command so the train binding of "model" cannot shadow this one
	viper.BindPFlag("infer-model", inferCmd.Flags().Lookup("model"))
	viper.BindPFlag("infer-fasta", inferCmd.Flags().Lookup("fasta"))

	rootCmd.AddCommand(inferCmd)
}
