package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/facet/internal/tokenize"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages the tokenizer recognizes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range tokenize.Languages() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
