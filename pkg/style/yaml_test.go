package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/facet/pkg/token"
)

func TestParseTheme(t *testing.T) {
	data := []byte(`
name: midnight
description: A test theme
foreground: "#c0c0c0"
background: "#101010"
styles:
  keyword:
    color: "#ff8700"
    bold: true
  dt:
    underline: true
  Comment:
    color: "5f8787"
    italic: true
  stringliteral:
    background: "#202020"
`)

	theme, err := ParseTheme(data)
	require.NoError(t, err)
	require.Equal(t, "midnight", theme.Name)
	require.Equal(t, "A test theme", theme.Description)
	require.Equal(t, "#c0c0c0", theme.Foreground.Hex())
	require.Equal(t, "#101010", theme.Background.Hex())
	require.Len(t, theme.Styles, 4)

	kw := theme.Styles[token.Keyword]
	require.Equal(t, "#ff8700", kw.Color.Hex())
	require.True(t, kw.Bold)

	require.True(t, theme.Styles[token.DataType].Underline, "short codes are accepted as keys")

	co := theme.Styles[token.Comment]
	require.True(t, co.Italic, "full names are case-insensitive")
	require.Equal(t, "#5f8787", co.Color.Hex(), "bare hex digits parse")

	st := theme.Styles[token.StringLiteral]
	require.Nil(t, st.Color)
	require.Equal(t, "#202020", st.Background.Hex())
}

func TestParseThemeMinimal(t *testing.T) {
	theme, err := ParseTheme([]byte("name: bare\n"))
	require.NoError(t, err)
	require.Equal(t, "bare", theme.Name)
	require.Nil(t, theme.Foreground)
	require.Nil(t, theme.Background)
	require.Empty(t, theme.Styles)
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		errContains string
	}{
		{
			name:        "not yaml",
			data:        "{::",
			errContains: "parsing theme",
		},
		{
			name:        "unknown category",
			data:        "styles:\n  punctuation:\n    bold: true\n",
			errContains: `unknown category "punctuation"`,
		},
		{
			name:        "bad style color",
			data:        "styles:\n  keyword:\n    color: \"#ggg\"\n",
			errContains: "invalid color",
		},
		{
			name:        "bad foreground",
			data:        "foreground: blue\n",
			errContains: "theme foreground",
		},
		{
			name:        "shorthand background",
			data:        "background: \"#fff\"\n",
			errContains: "theme background",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestMarshalTheme(t *testing.T) {
	out, err := MarshalTheme(Espresso)
	require.NoError(t, err)
	text := string(out)

	require.Contains(t, text, "name: espresso")
	require.Contains(t, text, "#bdae9d", "document foreground is present")
	require.Contains(t, text, "#2a211c", "document background is present")

	// Style keys appear in canonical category order, not alphabetical.
	kwAt := strings.Index(text, "Keyword:")
	coAt := strings.Index(text, "Comment:")
	erAt := strings.Index(text, "Error:")
	require.True(t, kwAt >= 0 && coAt >= 0 && erAt >= 0, "expected styled categories in output:\n%s", text)
	require.Less(t, kwAt, coAt, "Keyword precedes Comment")
	require.Less(t, coAt, erAt, "Comment precedes Error")
}

func TestThemeYAMLRoundTrip(t *testing.T) {
	for name, theme := range Themes {
		t.Run(name, func(t *testing.T) {
			out, err := MarshalTheme(theme)
			require.NoError(t, err)
			back, err := ParseTheme(out)
			require.NoError(t, err)
			require.Equal(t, theme, back, "marshal/parse must preserve the theme")
		})
	}
}
