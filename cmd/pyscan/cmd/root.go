package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aldebaran-lang/pyscan/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "pyscan",
		Short:        "pyscan",
		SilenceUsage: true,
		Long:         `Tokenize Python source files and print or inspect the resulting token stream.`,
	}

	directory string
	cfg       config.Config
	log       = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory pyscan.yaml is loaded from")
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		loaded, err := config.Load(directory)
		if err != nil {
			log.WithError(err).Fatal("failed to load pyscan.yaml")
		}
		cfg = loaded

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
	})
}
