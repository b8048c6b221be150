package format

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/facet/pkg/style"
	"github.com/zjrosen/facet/pkg/token"
)

// ============================================================================
// Fixtures
// ============================================================================

// ifLine is the canonical three-token example: a keyword followed by plain
// text.
func ifLine() token.Line {
	return token.Line{
		{Type: token.Keyword, Text: "if"},
		{Type: token.Normal, Text: " "},
		{Type: token.Normal, Text: "x"},
	}
}

// sampleLines is a small function definition covering styled tokens, an
// empty line, and characters that need escaping in both output formats.
func sampleLines() []token.Line {
	return []token.Line{
		{
			{Type: token.Keyword, Text: "func"},
			{Type: token.Normal, Text: " "},
			{Type: token.Function, Text: "greet"},
			{Type: token.Normal, Text: "(name "},
			{Type: token.DataType, Text: "string"},
			{Type: token.Normal, Text: ") {"},
		},
		{
			{Type: token.Normal, Text: "    fmt."},
			{Type: token.Function, Text: "Println"},
			{Type: token.Normal, Text: "("},
			{Type: token.StringLiteral, Text: `"hi <" + name`},
			{Type: token.Normal, Text: ")"},
		},
		{},
		{
			{Type: token.Normal, Text: "}"},
			{Type: token.Normal, Text: " "},
			{Type: token.Comment, Text: "// done & dusted"},
		},
	}
}

// ============================================================================
// Token and line rendering
// ============================================================================

func TestRenderHTMLKeywordExample(t *testing.T) {
	got := RenderHTML(Options{Inline}, "", []token.Line{ifLine()})
	require.Equal(t, `<code class="sourceCode"><span class="kw">if</span> x</code>`, got,
		"keyword wrapped in a span, normal text bare, all inside one code element")
}

func TestRenderHTMLTitleAttributes(t *testing.T) {
	got := RenderHTML(Options{Inline, TitleAttributes}, "go", []token.Line{ifLine()})
	require.Equal(t, `<code class="sourceCode go"><span class="kw" title="Keyword">if</span> x</code>`, got)

	got = RenderHTML(Options{Inline}, "go", []token.Line{ifLine()})
	require.NotContains(t, got, "title=", "no titles unless asked for")
}

func TestRenderHTMLEscapesTokenText(t *testing.T) {
	line := token.Line{
		{Type: token.Normal, Text: `a<b&"c"'d'>`},
		{Type: token.StringLiteral, Text: `"x<y"`},
	}
	got := RenderHTML(Options{Inline}, "", []token.Line{line})
	require.Equal(t,
		`<code class="sourceCode">a&lt;b&amp;&#34;c&#34;&#39;d&#39;&gt;<span class="st">&#34;x&lt;y&#34;</span></code>`,
		got)
}

func TestRenderHTMLEscapesLanguage(t *testing.T) {
	got := RenderHTML(Options{Inline}, `c<&">`, nil)
	require.Equal(t, `<code class="sourceCode c&lt;&amp;&#34;&gt;"></code>`, got,
		"the language lands in an attribute and must be escaped")
}

func TestRenderHTMLOmitsEmptyLanguageClass(t *testing.T) {
	got := RenderHTML(Options{Inline}, "", nil)
	require.Equal(t, `<code class="sourceCode"></code>`, got,
		"no trailing space in the class list when the language is empty")
}

func TestRenderHTMLJoinsLinesWithNewlines(t *testing.T) {
	lines := []token.Line{
		{{Type: token.Keyword, Text: "if"}},
		{},
		{{Type: token.Normal, Text: "y"}},
	}
	got := RenderHTML(Options{Inline}, "", lines)
	require.Equal(t, "<code class=\"sourceCode\"><span class=\"kw\">if</span>\n\ny</code>", got,
		"single newline between lines, empty lines contribute only a separator, no trailing newline")
}

// ============================================================================
// Containers
// ============================================================================

func TestRenderHTMLInlineHasNoBlockStructure(t *testing.T) {
	got := RenderHTML(Options{Inline, NumberLines, LineAnchors}, "go", sampleLines())
	require.NotContains(t, got, "<pre", "inline output carries no preformatted block")
	require.NotContains(t, got, "<table", "inline output carries no numbering table")
	require.True(t, strings.HasPrefix(got, "<code"), "inline output is exactly the code element")
	require.True(t, strings.HasSuffix(got, "</code>"))
}

func TestRenderHTMLBlock(t *testing.T) {
	got := RenderHTML(nil, "go", []token.Line{ifLine()})
	require.Equal(t, `<pre class="sourceCode"><code class="sourceCode go"><span class="kw">if</span> x</code></pre>`, got)
}

func TestRenderHTMLNumberedTable(t *testing.T) {
	lines := []token.Line{
		{{Type: token.Normal, Text: "a"}},
		{{Type: token.Normal, Text: "b"}},
		{{Type: token.Normal, Text: "c"}},
	}
	got := RenderHTML(Options{NumberLines, NumberFrom(5)}, "", lines)
	want := `<table class="sourceCode"><tr class="sourceCode"><td class="lineNumbers"><pre>5` + "\n6\n7" +
		`</pre></td><td class="sourceCode"><pre class="sourceCode">` +
		"<code class=\"sourceCode\">a\nb\nc</code>" +
		`</pre></td></tr></table>`
	require.Equal(t, want, got)
}

func TestRenderHTMLLineAnchors(t *testing.T) {
	lines := []token.Line{
		{{Type: token.Normal, Text: "a"}},
		{{Type: token.Normal, Text: "b"}},
	}
	got := RenderHTML(Options{NumberLines, LineAnchors}, "", lines)
	require.Contains(t, got, `<a id="1">1</a>`+"\n"+`<a id="2">2</a>`)

	got = RenderHTML(Options{NumberLines}, "", lines)
	require.NotContains(t, got, "<a id=", "anchors appear only when asked for")
}

func TestRenderHTMLEmptyInput(t *testing.T) {
	require.Equal(t, `<pre class="sourceCode"><code class="sourceCode"></code></pre>`,
		RenderHTML(nil, "", nil))

	got := RenderHTML(Options{NumberLines}, "", nil)
	require.Equal(t,
		`<table class="sourceCode"><tr class="sourceCode"><td class="lineNumbers"><pre></pre></td>`+
			`<td class="sourceCode"><pre class="sourceCode"><code class="sourceCode"></code></pre></td></tr></table>`,
		got, "zero lines keep the table skeleton with empty cells")
}

// ============================================================================
// Properties
// ============================================================================

func TestProperty_GutterNumbering(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(-3, 500).Draw(rt, "start")
		n := rapid.IntRange(0, 12).Draw(rt, "lines")
		anchored := rapid.Bool().Draw(rt, "anchored")

		lines := make([]token.Line, n)
		for i := range lines {
			lines[i] = token.Line{{Type: token.Normal, Text: "x"}}
		}

		opts := Options{NumberLines, NumberFrom(start)}
		if anchored {
			opts = append(opts, LineAnchors)
		}
		got := RenderHTML(opts, "", lines)

		var gutter strings.Builder
		for i := 0; i < n; i++ {
			if i > 0 {
				gutter.WriteByte('\n')
			}
			num := strconv.Itoa(start + i)
			if anchored {
				fmt.Fprintf(&gutter, `<a id="%s">%s</a>`, num, num)
			} else {
				gutter.WriteString(num)
			}
		}
		want := `<td class="lineNumbers"><pre>` + gutter.String() + `</pre></td>`
		if !strings.Contains(got, want) {
			rt.Fatalf("gutter mismatch for start=%d n=%d anchored=%v:\n%s", start, n, anchored, got)
		}
	})
}

func TestProperty_NormalTextRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "lines")
		lines := make([]token.Line, n)
		var plain []string
		for i := range lines {
			text := rapid.String().Draw(rt, "text")
			text = strings.NewReplacer("\n", " ", "\r", " ").Replace(text)
			lines[i] = token.Line{{Type: token.Normal, Text: text}}
			plain = append(plain, text)
		}

		got := RenderHTML(Options{Inline}, "", lines)
		inner := strings.TrimSuffix(strings.TrimPrefix(got, `<code class="sourceCode">`), `</code>`)
		if html.UnescapeString(inner) != strings.Join(plain, "\n") {
			rt.Fatalf("escaping is not lossless for %q", plain)
		}
	})
}

// ============================================================================
// Golden documents
// ============================================================================

func TestGoldenHTMLDocument(t *testing.T) {
	out := RenderHTML(Options{NumberLines, NumberFrom(3), LineAnchors, TitleAttributes}, "go", sampleLines())
	teatest.RequireEqualOutput(t, []byte(out))
}

func TestGoldenEspressoCSS(t *testing.T) {
	teatest.RequireEqualOutput(t, []byte(CSS(style.Espresso)))
}
