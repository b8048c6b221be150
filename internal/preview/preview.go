// Package preview renders terminal swatches of themes for the CLI listing.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/facet/pkg/style"
	"github.com/zjrosen/facet/pkg/token"
)

// sampleLines is the fixed program every swatch renders. It touches each
// category a built-in theme styles, so differences between themes are
// visible at a glance.
var sampleLines = []token.Line{
	{
		{Type: token.Keyword, Text: "func"},
		{Type: token.Normal, Text: " "},
		{Type: token.Function, Text: "measure"},
		{Type: token.Normal, Text: "(s "},
		{Type: token.DataType, Text: "string"},
		{Type: token.Normal, Text: ") { "},
		{Type: token.Comment, Text: "// how wide?"},
	},
	{
		{Type: token.Normal, Text: "    n := "},
		{Type: token.DecimalValue, Text: "42"},
		{Type: token.Normal, Text: " + "},
		{Type: token.BaseNValue, Text: "0x2a"},
		{Type: token.Normal, Text: " - "},
		{Type: token.FloatValue, Text: "3.14"},
	},
	{
		{Type: token.Normal, Text: "    say("},
		{Type: token.StringLiteral, Text: `"hi"`},
		{Type: token.Normal, Text: ", "},
		{Type: token.CharLiteral, Text: "'x'"},
		{Type: token.Normal, Text: ", n)"},
	},
	{
		{Type: token.Normal, Text: "} "},
		{Type: token.Alert, Text: "// TODO"},
		{Type: token.Normal, Text: " "},
		{Type: token.Error, Text: "@!"},
	},
}

// Swatch renders the sample program with the theme's token styles, one
// styled line per sample line.
func Swatch(theme style.Theme) string {
	var b strings.Builder
	for i, line := range sampleLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, tok := range line {
			b.WriteString(tokenStyle(theme, tok.Type).Render(tok.Text))
		}
	}
	return b.String()
}

// tokenStyle maps one category's theme style onto a lipgloss style. The
// theme's document foreground fills in for tokens without their own color.
func tokenStyle(theme style.Theme, t token.Type) lipgloss.Style {
	s := lipgloss.NewStyle()

	st := theme.Styles[t]
	if st.Color != nil {
		s = s.Foreground(lipgloss.Color(st.Color.Hex()))
	} else if theme.Foreground != nil {
		s = s.Foreground(lipgloss.Color(theme.Foreground.Hex()))
	}
	if st.Background != nil {
		s = s.Background(lipgloss.Color(st.Background.Hex()))
	}
	if st.Bold {
		s = s.Bold(true)
	}
	if st.Italic {
		s = s.Italic(true)
	}
	if st.Underline {
		s = s.Underline(true)
	}
	return s
}
