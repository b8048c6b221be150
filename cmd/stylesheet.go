package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/facet/pkg/format"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS stylesheet derived from a theme",
	Long: `Print the CSS rules a theme derives for HTML fragments.

Fragments rendered without --standalone carry class names only; serve this
stylesheet alongside them to get colors.

Examples:
  facet css > highlight.css
  facet css -t espresso
  facet css --theme-file mytheme.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), format.CSS(theme))
		return err
	},
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Print the LaTeX macro preamble derived from a theme",
	Long: `Print the \newcommand definitions a theme derives for LaTeX fragments.

Fragments rendered without --standalone reference \kw, \st and friends;
paste this preamble into the including document to define them.

Examples:
  facet macros >> preamble.tex
  facet macros -t kate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), format.LaTeXMacros(theme))
		return err
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(macrosCmd)
}
