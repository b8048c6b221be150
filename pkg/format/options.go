// Package format renders lines of categorized tokens as HTML or LaTeX
// fragments and derives the stylesheets (CSS rules, LaTeX macros) that give
// those fragments their colors. Rendering is pure: no shared state, no
// caches, and byte-identical output for identical input.
package format

// optionKind discriminates Option values. The zero kind matches nothing, so
// a zero Option is inert.
type optionKind uint8

const (
	optNone optionKind = iota
	optNumberLines
	optNumberFrom
	optLineAnchors
	optTitleAttributes
	optInline
)

// Option is one rendering option. The set is sealed: build values from the
// package-level options and NumberFrom.
type Option struct {
	kind optionKind
	from int
}

var (
	// NumberLines adds a line-number gutter (HTML) or numbers=left (LaTeX).
	NumberLines = Option{kind: optNumberLines}

	// LineAnchors wraps each HTML line number in an anchor whose id is the
	// number's decimal string. Ignored by the LaTeX renderer.
	LineAnchors = Option{kind: optLineAnchors}

	// TitleAttributes adds a title attribute holding the category's full
	// name to every styled HTML span. Ignored by the LaTeX renderer.
	TitleAttributes = Option{kind: optTitleAttributes}

	// Inline renders a bare inline fragment instead of a block container.
	Inline = Option{kind: optInline}
)

// NumberFrom sets the first line number. Any value is accepted, including
// zero and negatives; numbering renders it as-is.
func NumberFrom(n int) Option {
	return Option{kind: optNumberFrom, from: n}
}

// Options is an ordered option list. Boolean options hold anywhere in the
// list; NumberFrom resolves to the first occurrence scanning front to back,
// so duplicates are harmless and the earliest value wins.
type Options []Option

func (os Options) has(k optionKind) bool {
	for _, o := range os {
		if o.kind == k {
			return true
		}
	}
	return false
}

func (os Options) numberLines() bool     { return os.has(optNumberLines) }
func (os Options) lineAnchors() bool     { return os.has(optLineAnchors) }
func (os Options) titleAttributes() bool { return os.has(optTitleAttributes) }
func (os Options) inline() bool          { return os.has(optInline) }

// numberFrom returns the first NumberFrom value, or 1 when none is present.
func (os Options) numberFrom() int {
	for _, o := range os {
		if o.kind == optNumberFrom {
			return o.from
		}
	}
	return 1
}
