package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"

	"github.com/aldebaran-lang/pyscan"
)

var showComments bool

func init() {
	tokenizeCmd.Flags().BoolVar(&showComments, "comments", false, "include attached comments in the printed token list")
	rootCmd.AddCommand(tokenizeCmd)
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "tokenize a Python source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		runID, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("unable to generate run id: %w", err)
		}
		entry := log.WithField("run", runID.String())

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", path, err)
		}

		entry.WithField("bytes", len(data)).Debug("tokenizing")

		tok := pyscan.New(pyscan.WithTabWidth(cfg.TabWidth), pyscan.WithLogger(entry))
		out := tok.TokenizeAll(data)

		entry.WithField("tokens", out.Tokens.Count()).Info("tokenization complete")

		for _, t := range out.TokenValues {
			if !showComments {
				t.Comments = nil
			}
			repr.Println(t)
		}
		return nil
	},
}
