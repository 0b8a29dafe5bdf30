// Package cmd is for command line interactions with the evoaug application
package cmd

import (
	"log"

	"github.com/evoaug/evoaug/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "evoaug",
	Short: `Train sequence models on one-hot genomic data with evolution-inspired
augmentations: deletions, insertions, translocations, inversions, mutations,
reverse complements and Gaussian noise`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// settings is an optional parameter for a settings file overriding the defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", "augmentation and training settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}

// initConfig seeds defaults and merges the settings file when one is passed.
func initConfig() {
	config.SetDefaults()

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}
}
