package format

import (
	"html"
	"strconv"
	"strings"

	"github.com/zjrosen/facet/pkg/style"
	"github.com/zjrosen/facet/pkg/token"
)

// RenderHTML renders token lines as an HTML fragment. Token text and the
// language name pass through html.EscapeString; nothing else is rewritten.
// Inline yields the bare <code> container; otherwise the container is
// wrapped in <pre>, or in a two-column table when NumberLines is set.
func RenderHTML(opts Options, language string, lines []token.Line) string {
	code := htmlCode(opts, language, lines)
	if opts.inline() {
		return code
	}
	if !opts.numberLines() {
		return `<pre class="sourceCode">` + code + `</pre>`
	}

	var b strings.Builder
	b.WriteString(`<table class="sourceCode"><tr class="sourceCode"><td class="lineNumbers"><pre>`)
	writeGutter(&b, opts, len(lines))
	b.WriteString(`</pre></td><td class="sourceCode"><pre class="sourceCode">`)
	b.WriteString(code)
	b.WriteString(`</pre></td></tr></table>`)
	return b.String()
}

// htmlCode builds the <code> container: per-line fragments joined with a
// single newline between lines, no trailing newline.
func htmlCode(opts Options, language string, lines []token.Line) string {
	var b strings.Builder
	b.WriteString(`<code class="sourceCode`)
	if language != "" {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(language))
	}
	b.WriteString(`">`)
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, tok := range line {
			writeHTMLToken(&b, opts, tok)
		}
	}
	b.WriteString(`</code>`)
	return b.String()
}

// writeHTMLToken emits one token. Normal text renders bare; styled
// categories wrap it in a span classed with the category's short code. A
// category outside the declared set degrades to bare text so no broken
// class name is ever emitted.
func writeHTMLToken(b *strings.Builder, opts Options, tok token.Token) {
	short := tok.Type.Short()
	if short == "" {
		b.WriteString(html.EscapeString(tok.Text))
		return
	}
	b.WriteString(`<span class="`)
	b.WriteString(short)
	b.WriteByte('"')
	if opts.titleAttributes() {
		b.WriteString(` title="`)
		b.WriteString(tok.Type.String())
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(tok.Text))
	b.WriteString(`</span>`)
}

// writeGutter emits n line numbers starting at the resolved NumberFrom, one
// per line, each wrapped in an <a id="N"> anchor when LineAnchors is set.
func writeGutter(b *strings.Builder, opts Options, n int) {
	start := opts.numberFrom()
	anchors := opts.lineAnchors()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		num := strconv.Itoa(start + i)
		if anchors {
			b.WriteString(`<a id="`)
			b.WriteString(num)
			b.WriteString(`">`)
			b.WriteString(num)
			b.WriteString(`</a>`)
		} else {
			b.WriteString(num)
		}
	}
}

// CSS derives a stylesheet for HTML output: at most one rule for the
// theme's document defaults on the root code element, then one rule per
// styled category in canonical order. Only set fields emit declarations, so
// an unset color is genuinely absent rather than defaulted.
func CSS(theme style.Theme) string {
	var b strings.Builder

	if theme.Foreground != nil || theme.Background != nil {
		b.WriteString(`code.sourceCode {`)
		if theme.Foreground != nil {
			b.WriteString(` color: `)
			b.WriteString(theme.Foreground.Hex())
			b.WriteByte(';')
		}
		if theme.Background != nil {
			b.WriteString(` background-color: `)
			b.WriteString(theme.Background.Hex())
			b.WriteByte(';')
		}
		b.WriteString(" }\n")
	}

	for t := token.Keyword; t <= token.Error; t++ {
		s, ok := theme.Styles[t]
		if !ok {
			continue
		}
		b.WriteString(`code > span.`)
		b.WriteString(t.Short())
		b.WriteString(` {`)
		if s.Color != nil {
			b.WriteString(` color: `)
			b.WriteString(s.Color.Hex())
			b.WriteByte(';')
		}
		if s.Background != nil {
			b.WriteString(` background-color: `)
			b.WriteString(s.Background.Hex())
			b.WriteByte(';')
		}
		if s.Bold {
			b.WriteString(` font-weight: bold;`)
		}
		if s.Italic {
			b.WriteString(` font-style: italic;`)
		}
		if s.Underline {
			b.WriteString(` text-decoration: underline;`)
		}
		b.WriteString(" }\n")
	}
	return b.String()
}
