package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/facet/internal/preview"
	"github.com/zjrosen/facet/pkg/style"
)

var dumpTheme string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in themes with terminal previews",
	Long: `List every built-in theme with a preview of its token colors.

Examples:
  # Browse the built-in themes
  facet themes

  # Start a custom theme from the espresso palette
  facet themes --dump espresso > mytheme.yaml
  facet --theme-file mytheme.yaml main.go`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpTheme != "" {
			theme, ok := style.Lookup(dumpTheme)
			if !ok {
				return fmt.Errorf("unknown theme %q", dumpTheme)
			}
			data, err := style.MarshalTheme(theme)
			if err != nil {
				return fmt.Errorf("rendering theme as YAML: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		nameStyle := lipgloss.NewStyle().Bold(true)
		out := cmd.OutOrStdout()
		for _, name := range style.Names() {
			theme, _ := style.Lookup(name)
			fmt.Fprintf(out, "%s  %s\n", nameStyle.Render(name), theme.Description)
			fmt.Fprintln(out, preview.Swatch(theme))
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	themesCmd.Flags().StringVar(&dumpTheme, "dump", "",
		"print the named theme as YAML instead of listing")
	rootCmd.AddCommand(themesCmd)
}
