package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/facet/pkg/style"
	"github.com/zjrosen/facet/pkg/token"
)

func colorRef(s string) *style.Color {
	c, ok := style.ParseColor(s)
	if !ok {
		panic("bad test color " + s)
	}
	return &c
}

// ============================================================================
// Document default rule
// ============================================================================

func TestCSSDocumentDefaults(t *testing.T) {
	tests := []struct {
		name  string
		theme style.Theme
		want  string
	}{
		{
			"both colors",
			style.Theme{Foreground: colorRef("#bdae9d"), Background: colorRef("#2a211c")},
			"code.sourceCode { color: #bdae9d; background-color: #2a211c; }\n",
		},
		{
			"foreground only",
			style.Theme{Foreground: colorRef("#bdae9d")},
			"code.sourceCode { color: #bdae9d; }\n",
		},
		{
			"background only",
			style.Theme{Background: colorRef("#f8f8f8")},
			"code.sourceCode { background-color: #f8f8f8; }\n",
		},
		{
			"neither",
			style.Theme{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CSS(tt.theme),
				"a theme with no styles derives exactly the document rule")
		})
	}
}

// ============================================================================
// Category rules
// ============================================================================

func TestCSSDeclarationOrder(t *testing.T) {
	theme := style.Theme{Styles: map[token.Type]style.Style{
		token.Alert: {
			Color:      colorRef("#ff0000"),
			Background: colorRef("#ffffff"),
			Bold:       true,
			Italic:     true,
			Underline:  true,
		},
	}}
	require.Equal(t,
		"code > span.al { color: #ff0000; background-color: #ffffff; font-weight: bold; font-style: italic; text-decoration: underline; }\n",
		CSS(theme))
}

func TestCSSOmitsUnsetDeclarations(t *testing.T) {
	theme := style.Theme{Styles: map[token.Type]style.Style{
		token.Keyword: {Bold: true},
	}}
	require.Equal(t, "code > span.kw { font-weight: bold; }\n", CSS(theme),
		"a colorless style emits no color declarations")
}

func TestCSSSkipsUnstyledCategories(t *testing.T) {
	out := CSS(style.Pygments)
	require.NotContains(t, out, "span.re", "pygments styles no region markers")
	require.NotContains(t, out, "code.sourceCode {", "pygments sets no document colors")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(style.Pygments.Styles),
		"one rule per styled category and nothing else; pygments has no document colors")
	for _, line := range lines {
		require.True(t, strings.HasSuffix(line, " }"), "every rule closes on its own line: %q", line)
	}
}

func TestCSSCanonicalOrder(t *testing.T) {
	out := CSS(style.Kate)
	kwAt := strings.Index(out, "span.kw")
	dtAt := strings.Index(out, "span.dt")
	erAt := strings.Index(out, "span.er")
	require.True(t, kwAt >= 0 && dtAt >= 0 && erAt >= 0, out)
	require.Less(t, kwAt, dtAt, "rules follow the category declaration order")
	require.Less(t, dtAt, erAt)
}
