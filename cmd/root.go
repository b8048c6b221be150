package cmd

import (
	"fmt"
	"html"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/facet/internal/config"
	"github.com/zjrosen/facet/internal/log"
	"github.com/zjrosen/facet/internal/tokenize"
	"github.com/zjrosen/facet/internal/watch"
	"github.com/zjrosen/facet/pkg/format"
	"github.com/zjrosen/facet/pkg/style"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	flagLanguage   string
	flagFrom       int
	flagInline     bool
	flagStandalone bool
	flagOut        string
	flagWatch      bool
)

var rootCmd = &cobra.Command{
	Use:   "facet [file]",
	Short: "Render syntax-highlighted source as HTML or LaTeX",
	Long: `Facet tokenizes source code and renders it as an HTML or LaTeX fragment,
with stylesheets and macro preambles derived from a color theme.

Reads from a file argument, or from stdin when the argument is "-" or absent.

Examples:
  # Highlight a file as an HTML fragment
  facet main.go

  # A complete page, numbered, in the espresso theme
  facet --standalone -n -t espresso main.go -o main.html

  # LaTeX from stdin, with the language stated explicitly
  cat snippet.txt | facet -f latex -l python

  # Re-render on every save
  facet --watch -o main.html main.go`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/facet/config.yaml)")
	rootCmd.PersistentFlags().StringP("theme", "t", "",
		"built-in theme for stylesheets and macros")
	rootCmd.PersistentFlags().String("theme-file", "",
		"YAML theme file, overrides --theme")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to facet.log")

	rootCmd.Flags().StringP("format", "f", "",
		"output format: html or latex")
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "",
		"source language (default: inferred from the filename or content)")
	rootCmd.Flags().BoolP("numbers", "n", false,
		"number source lines")
	rootCmd.Flags().IntVar(&flagFrom, "from", 1,
		"first line number")
	rootCmd.Flags().Bool("anchors", false,
		"wrap line numbers in anchors for deep linking (HTML)")
	rootCmd.Flags().Bool("titles", false,
		"add category names as title attributes (HTML)")
	rootCmd.Flags().BoolVar(&flagInline, "inline", false,
		"render a bare inline fragment with no block container")
	rootCmd.Flags().BoolVar(&flagStandalone, "standalone", false,
		"render a complete document embedding the theme's stylesheet")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "",
		"write output to a file instead of stdout")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false,
		"re-render whenever the input file changes (requires a file and --out)")

	// Bind flags to viper so they win over config file values
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("theme_file", rootCmd.PersistentFlags().Lookup("theme-file"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("numbers", rootCmd.Flags().Lookup("numbers"))
	_ = viper.BindPFlag("anchors", rootCmd.Flags().Lookup("anchors"))
	_ = viper.BindPFlag("titles", rootCmd.Flags().Lookup("titles"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("theme", defaults.Theme)
	viper.SetDefault("format", defaults.Format)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .facet/config.yaml (current directory)
		// 2. ~/.config/facet/config.yaml (user config)
		if _, err := os.Stat(".facet/config.yaml"); err == nil {
			viper.SetConfigFile(".facet/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "facet"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .facet/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".facet/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupLogging enables the debug log when asked for. The returned cleanup is
// a no-op when logging stays off.
func setupLogging() func() {
	if !cfg.Debug && os.Getenv("FACET_DEBUG") == "" {
		return func() {}
	}
	cleanup, err := log.Init("facet.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "facet: debug log unavailable: %v\n", err)
		return func() {}
	}
	return cleanup
}

func runRender(cmd *cobra.Command, args []string) error {
	cleanup := setupLogging()
	defer cleanup()

	if err := config.Validate(cfg); err != nil {
		return err
	}
	theme, err := resolveTheme(cfg)
	if err != nil {
		return err
	}

	if flagWatch {
		return runWatch(cmd, args, theme)
	}

	out, err := renderOnce(cmd, args, theme)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// renderOnce runs the full pipeline for one input snapshot.
func renderOnce(cmd *cobra.Command, args []string, theme style.Theme) (string, error) {
	src, filename, err := readInput(args)
	if err != nil {
		return "", err
	}

	lines, language, err := tokenize.Source(flagLanguage, filename, src)
	if err != nil {
		return "", err
	}
	log.Debug(log.CatRender, "Rendering", "format", cfg.Format, "language", language, "lines", len(lines))

	opts := renderOptions(cfg, flagInline, flagFrom, cmd.Flags().Changed("from"))

	switch cfg.Format {
	case "latex":
		out := format.RenderLaTeX(opts, lines)
		if flagStandalone {
			out = latexDocument(theme, out)
		}
		return out, nil
	default:
		out := format.RenderHTML(opts, language, lines)
		if flagStandalone {
			out = htmlPage(theme, pageTitle(filename), out)
		}
		return out, nil
	}
}

// renderOptions translates resolved configuration into render options.
// NumberFrom is only passed along when the flag was given, so the renderers
// see their own default otherwise.
func renderOptions(cfg config.Config, inline bool, from int, fromSet bool) format.Options {
	var opts format.Options
	if cfg.Numbers {
		opts = append(opts, format.NumberLines)
	}
	if fromSet {
		opts = append(opts, format.NumberFrom(from))
	}
	if cfg.Anchors {
		opts = append(opts, format.LineAnchors)
	}
	if cfg.Titles {
		opts = append(opts, format.TitleAttributes)
	}
	if inline {
		opts = append(opts, format.Inline)
	}
	return opts
}

// resolveTheme picks the theme a command renders with: an explicit theme
// file wins, then the named built-in, then the default.
func resolveTheme(cfg config.Config) (style.Theme, error) {
	if cfg.ThemeFile != "" {
		data, err := os.ReadFile(cfg.ThemeFile)
		if err != nil {
			return style.Theme{}, fmt.Errorf("reading theme file: %w", err)
		}
		theme, err := style.ParseTheme(data)
		if err != nil {
			return style.Theme{}, fmt.Errorf("parsing theme file %s: %w", cfg.ThemeFile, err)
		}
		log.Debug(log.CatTheme, "Loaded theme file", "path", cfg.ThemeFile, "name", theme.Name)
		return theme, nil
	}

	theme, ok := style.Lookup(cfg.Theme)
	if !ok {
		return style.Theme{}, fmt.Errorf("unknown theme %q (available: %s)",
			cfg.Theme, strings.Join(style.Names(), ", "))
	}
	return theme, nil
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return src, "", nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return src, args[0], nil
}

func pageTitle(filename string) string {
	if filename == "" {
		return "facet"
	}
	return filepath.Base(filename)
}

// writeOutput sends the rendered document to --out or stdout, ensuring a
// final newline either way.
func writeOutput(cmd *cobra.Command, out string) error {
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if flagOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(flagOut, []byte(out), 0o644); err != nil { //nolint:gosec // G306: rendered output is not sensitive
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	return nil
}

// runWatch re-renders on every debounced change to the input file until
// interrupted.
func runWatch(cmd *cobra.Command, args []string, theme style.Theme) error {
	if len(args) == 0 || args[0] == "-" {
		return fmt.Errorf("--watch requires a file argument")
	}
	if flagOut == "" {
		return fmt.Errorf("--watch requires --out so renders land in a file")
	}

	render := func() {
		out, err := renderOnce(cmd, args, theme)
		if err != nil {
			log.ErrorErr(log.CatWatch, "Render failed", err, "file", args[0])
			fmt.Fprintf(os.Stderr, "facet: %v\n", err)
			return
		}
		if err := writeOutput(cmd, out); err != nil {
			log.ErrorErr(log.CatWatch, "Write failed", err, "out", flagOut)
			fmt.Fprintf(os.Stderr, "facet: %v\n", err)
		}
	}

	w, err := watch.New(watch.DefaultConfig(args[0]))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	render()
	fmt.Fprintf(os.Stderr, "facet: watching %s, writing %s (ctrl-c to stop)\n", args[0], flagOut)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-changes:
			log.Debug(log.CatWatch, "Change detected", "file", args[0])
			render()
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nfacet: received %s, stopping\n", sig)
			return nil
		}
	}
}

// htmlPage wraps an HTML fragment in a complete page with the theme's
// stylesheet inlined.
func htmlPage(theme style.Theme, title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\" />\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	b.WriteString(format.CSS(theme))
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// latexDocument wraps a LaTeX fragment in a compilable article with the
// theme's macro preamble. A themed background shades the block via the
// framed package's shaded environment.
func latexDocument(theme style.Theme, body string) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString(format.LaTeXMacros(theme))
	b.WriteString("\\begin{document}\n")
	if theme.Background != nil {
		b.WriteString("\\begin{shaded}\n")
		b.WriteString(body)
		b.WriteString("\n\\end{shaded}\n")
	} else {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
