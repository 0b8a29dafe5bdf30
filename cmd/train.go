package cmd

import (
	"log"

	"github.com/evoaug/evoaug/config"
	"github.com/evoaug/evoaug/datasets"
	"github.com/evoaug/evoaug/trainer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// trainCmd pre-trains a model with stochastic augmentations and optionally
// fine-tunes it on the original data afterwards
var trainCmd = &cobra.Command{
	Use:                        "train",
	Short:                      "Train a model with evolution-inspired augmentations",
	Run:                        runTrain,
	SuggestionsMinimumDistance: 2,
	Long: `Pre-train a model on augmented batches, checkpointing whenever validation
accuracy improves. With --finetune the best checkpoint is reloaded and
trained further without augmentations at a lower learning rate, which
removes the distribution shift the augmentations introduce.`,
}

func runTrain(cm *cobra.Command, args []string) {
	c := config.New()

	data, seqLen, err := loadDataset(c)
	if err != nil {
		log.Fatalf("loading dataset: %v", err)
	}
	train, val := datasets.Split(data, c.Data.ValFrac)

	rm, err := newWrapper(c, seqLen)
	if err != nil {
		log.Fatalf("building model: %v", err)
	}

	tr := &trainer.Trainer{
		Epochs:    c.Train.Epochs,
		BatchSize: c.Train.BatchSize,
		Patience:  c.Train.Patience,
		Seed:      c.Train.Seed,
	}
	if logfile := viper.GetString("log"); logfile != "" {
		tr.SetLogger(logfile)
	}

	dstmodel := viper.GetString("model")
	doResume := viper.GetBool("resume")
	trainer.Resume(rm, &doResume, &dstmodel)

	var success int
	best := tr.Train(rm, train, tr.NewEvaluateFunc(rm, val, &success, &dstmodel))
	log.Printf("pre-training done, best validation accuracy %d%%", best)

	if viper.GetBool("finetune") {
		if err := rm.ReadCheckpointFromFile(dstmodel); err != nil {
			println(err.Error())
		}
		rm.SetFineTune(true)
		best = tr.Train(rm, train, tr.NewEvaluateFunc(rm, val, &success, &dstmodel))
		log.Printf("fine-tuning done, best validation accuracy %d%%", best)
	}
}

// set flags
func init() {
	trainCmd.Flags().StringP("model", "m", "evoaug.ckpt.lzw", "checkpoint file to write")
	trainCmd.Flags().StringP("log", "l", "", "log file, stdout when empty")
	trainCmd.Flags().BoolP("resume", "r", false, "resume from the checkpoint file")
	trainCmd.Flags().BoolP("finetune", "f", false, "fine-tune without augmentations after pre-training")
	trainCmd.Flags().StringP("fasta", "i", "", "labeled FASTA training data, synthetic when empty")
	trainCmd.Flags().IntP("epochs", "e", 50, "training epochs per phase")
	trainCmd.Flags().IntP("batch-size", "b", 32, "minibatch size")

	// Bind the parameters to viper
	viper.BindPFlag("model", trainCmd.Flags().Lookup("model"))
	viper.BindPFlag("log", trainCmd.Flags().Lookup("log"))
	viper.BindPFlag("resume", trainCmd.Flags().Lookup("resume"))
	viper.BindPFlag("finetune", trainCmd.Flags().Lookup("finetune"))
	viper.BindPFlag("data.fasta", trainCmd.Flags().Lookup("fasta"))
	viper.BindPFlag("train.epochs", trainCmd.Flags().Lookup("epochs"))
	viper.BindPFlag("train.batch-size", trainCmd.Flags().Lookup("batch-size"))

	rootCmd.AddCommand(trainCmd)
}
