// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/evoaug/evoaug/augment"
	"github.com/evoaug/evoaug/augment/deletion"
	"github.com/evoaug/evoaug/augment/insertion"
	"github.com/evoaug/evoaug/augment/inversion"
	"github.com/evoaug/evoaug/augment/mutation"
	"github.com/evoaug/evoaug/augment/noise"
	"github.com/evoaug/evoaug/augment/rc"
	"github.com/evoaug/evoaug/augment/translocation"
	"github.com/spf13/viper"
)

// RangeConfig configures a min/max augmentation and whether it is part of
// the augmentation list
type RangeConfig struct {
	Enable bool `mapstructure:"enable"`

	Min int `mapstructure:"min"`

	Max int `mapstructure:"max"`
}

// FracConfig configures a single-fraction augmentation
type FracConfig struct {
	Enable bool `mapstructure:"enable"`

	// the mutated fraction or strand-flip probability
	Frac float64 `mapstructure:"frac"`
}

// NoiseConfig configures the Gaussian noise augmentation
type NoiseConfig struct {
	Enable bool `mapstructure:"enable"`

	Mean float64 `mapstructure:"mean"`

	Std float64 `mapstructure:"std"`
}

// PolicyConfig is the augmentation sampling policy of the wrapper
type PolicyConfig struct {
	// the maximum number of augmentations applied per batch
	MaxAugsPerSeq int `mapstructure:"max-augs-per-seq"`

	// apply exactly the maximum instead of a sampled count
	HardAug bool `mapstructure:"hard-aug"`

	// keep augmenting at inference time
	InferenceAug bool `mapstructure:"inference-aug"`
}

// TrainConfig is settings for the training loop
type TrainConfig struct {
	Epochs int `mapstructure:"epochs"`

	BatchSize int `mapstructure:"batch-size"`

	// epochs without improvement before early stop, 0 disables
	Patience int `mapstructure:"patience"`

	Seed int64 `mapstructure:"seed"`

	// learning rate of the augmented pre-training phase
	LR float64 `mapstructure:"learning-rate"`

	// learning rate of the fine-tuning phase
	FineTuneLR float64 `mapstructure:"finetune-learning-rate"`
}

// DataConfig is settings about the training data
type DataConfig struct {
	// path to a labeled FASTA file; a synthetic motif dataset is
	// generated when empty
	Fasta string `mapstructure:"fasta"`

	// planted motif of the synthetic dataset
	Motif string `mapstructure:"motif"`

	// number of synthetic samples
	Count int `mapstructure:"count"`

	// synthetic sequence length
	SeqLen int `mapstructure:"seq-length"`

	// fraction of samples held out for validation
	ValFrac float64 `mapstructure:"val-frac"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	Deletion      RangeConfig `mapstructure:"deletion"`
	Insertion     RangeConfig `mapstructure:"insertion"`
	Translocation RangeConfig `mapstructure:"translocation"`
	Inversion     RangeConfig `mapstructure:"inversion"`
	Mutation      FracConfig  `mapstructure:"mutation"`
	RC            FracConfig  `mapstructure:"rc"`
	Noise         NoiseConfig `mapstructure:"noise"`

	Policy PolicyConfig `mapstructure:"policy"`
	Train  TrainConfig  `mapstructure:"train"`
	Data   DataConfig   `mapstructure:"data"`
}

// SetDefaults seeds viper with the augmentation parameters of the original
// EvoAug study and a small default training setup.
func SetDefaults() {
	viper.SetDefault("deletion.enable", true)
	viper.SetDefault("deletion.min", 0)
	viper.SetDefault("deletion.max", 30)
	viper.SetDefault("insertion.enable", true)
	viper.SetDefault("insertion.min", 0)
	viper.SetDefault("insertion.max", 30)
	viper.SetDefault("translocation.enable", true)
	viper.SetDefault("translocation.min", 0)
	viper.SetDefault("translocation.max", 30)
	viper.SetDefault("inversion.enable", false)
	viper.SetDefault("inversion.min", 0)
	viper.SetDefault("inversion.max", 30)
	viper.SetDefault("mutation.enable", true)
	viper.SetDefault("mutation.frac", 0.1)
	viper.SetDefault("rc.enable", true)
	viper.SetDefault("rc.frac", 0.5)
	viper.SetDefault("noise.enable", true)
	viper.SetDefault("noise.mean", 0.0)
	viper.SetDefault("noise.std", 0.2)

	viper.SetDefault("policy.max-augs-per-seq", 2)
	viper.SetDefault("policy.hard-aug", true)
	viper.SetDefault("policy.inference-aug", false)

	viper.SetDefault("train.epochs", 50)
	viper.SetDefault("train.batch-size", 32)
	viper.SetDefault("train.patience", 10)
	viper.SetDefault("train.learning-rate", 0.01)
	viper.SetDefault("train.finetune-learning-rate", 0.001)

	viper.SetDefault("data.motif", "TGACTCA")
	viper.SetDefault("data.count", 2000)
	viper.SetDefault("data.seq-length", 200)
	viper.SetDefault("data.val-frac", 0.2)
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml) and/or command line arguments
func New() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// Augments materializes the enabled augmentation list in canonical order:
// deletion, rc, insertion, translocation, inversion, mutation, noise.
func (c Config) Augments() ([]augment.Augment, error) {
	var list []augment.Augment
	if c.Deletion.Enable {
		a, err := deletion.New(c.Deletion.Min, c.Deletion.Max)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.RC.Enable {
		a, err := rc.New(c.RC.Frac)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.Insertion.Enable {
		a, err := insertion.New(c.Insertion.Min, c.Insertion.Max)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.Translocation.Enable {
		a, err := translocation.New(c.Translocation.Min, c.Translocation.Max)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.Inversion.Enable {
		a, err := inversion.New(c.Inversion.Min, c.Inversion.Max)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.Mutation.Enable {
		a, err := mutation.New(c.Mutation.Frac)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if c.Noise.Enable {
		a, err := noise.New(c.Noise.Mean, c.Noise.Std)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}
