package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zjrosen/facet/pkg/style"
	"github.com/zjrosen/facet/pkg/token"
)

// latexEscaper rewrites the three characters that would break out of a
// commandchars verbatim. Everything else, % and $ included, is protected by
// the environment itself. Replacer output is never rescanned, so the braces
// inside \textbackslash{} survive.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
)

// commandChars lets \XX{...} macros work inside the verbatim environments.
const commandChars = `commandchars=\\\{\}`

// RenderLaTeX renders token lines as a LaTeX fragment built on fancyvrb.
// Inline yields a \Verb command with lines joined by interior newlines;
// otherwise a Verbatim environment whose body carries a trailing newline
// after every line, including the last.
func RenderLaTeX(opts Options, lines []token.Line) string {
	var b strings.Builder

	if opts.inline() {
		b.WriteString(`\Verb[` + commandChars + `]{`)
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeLaTeXLine(&b, line)
		}
		b.WriteByte('}')
		return b.String()
	}

	b.WriteString(`\begin{Verbatim}[`)
	if opts.numberLines() {
		b.WriteString(`numbers=left,`)
		if from := opts.numberFrom(); from != 1 {
			b.WriteString(`firstnumber=`)
			b.WriteString(strconv.Itoa(from))
			b.WriteByte(',')
		}
	}
	b.WriteString(commandChars)
	b.WriteString("]\n")
	for _, line := range lines {
		writeLaTeXLine(&b, line)
		b.WriteByte('\n')
	}
	b.WriteString(`\end{Verbatim}`)
	return b.String()
}

// writeLaTeXLine emits one line: Normal text escaped bare, styled
// categories as \XX{escaped}. Out-of-range categories degrade to bare text.
func writeLaTeXLine(b *strings.Builder, line token.Line) {
	for _, tok := range line {
		short := tok.Type.Short()
		if short == "" {
			b.WriteString(latexEscaper.Replace(tok.Text))
			continue
		}
		b.WriteByte('\\')
		b.WriteString(short)
		b.WriteByte('{')
		b.WriteString(latexEscaper.Replace(tok.Text))
		b.WriteByte('}')
	}
}

// LaTeXMacros derives the preamble for LaTeX output: the package imports,
// a shadecolor definition when the theme sets a document background, then
// one \newcommand per styled category in canonical order. Effects nest in a
// fixed order with the foreground color innermost:
//
//	\underline{\textit{\textbf{\colorbox[rgb]{..}{\textcolor[rgb]{..}{#1}}}}}
//
// Color channels render with two decimal places; the small rounding drift
// against the 8-bit source values matches the reference output and is kept.
func LaTeXMacros(theme style.Theme) string {
	var b strings.Builder
	b.WriteString("\\usepackage{color}\n")
	b.WriteString("\\usepackage{fancyvrb}\n")
	b.WriteString("\\usepackage{framed}\n")

	if theme.Background != nil {
		c := theme.Background
		fmt.Fprintf(&b, "\\definecolor{shadecolor}{RGB}{%d,%d,%d}\n", c.R, c.G, c.B)
	}

	for t := token.Keyword; t <= token.Error; t++ {
		s, ok := theme.Styles[t]
		if !ok {
			continue
		}
		body := "#1"
		if s.Color != nil {
			body = wrapColor(`\textcolor`, *s.Color, body)
		}
		if s.Background != nil {
			body = wrapColor(`\colorbox`, *s.Background, body)
		}
		if s.Bold {
			body = `\textbf{` + body + `}`
		}
		if s.Italic {
			body = `\textit{` + body + `}`
		}
		if s.Underline {
			body = `\underline{` + body + `}`
		}
		fmt.Fprintf(&b, "\\newcommand{\\%s}[1]{%s}\n", t.Short(), body)
	}
	return b.String()
}

func wrapColor(command string, c style.Color, body string) string {
	r, g, b := c.Normalized()
	return fmt.Sprintf("%s[rgb]{%.2f,%.2f,%.2f}{%s}", command, r, g, b, body)
}
