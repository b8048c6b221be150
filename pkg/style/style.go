package style

import (
	"sort"
	"strings"

	"github.com/zjrosen/facet/pkg/token"
)

// Style is the visual treatment for one token category. Nil colors mean
// "unset": an unset field never contributes a CSS declaration or a LaTeX
// macro layer, which is different from explicitly styling with a default.
type Style struct {
	Color      *Color
	Background *Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// IsZero reports whether the style sets nothing at all.
func (s Style) IsZero() bool {
	return s.Color == nil && s.Background == nil && !s.Bold && !s.Italic && !s.Underline
}

// Theme is a named set of category styles plus optional document-wide
// default colors. Themes are read-only snapshots: nothing in this module
// mutates one after construction, and callers should not either.
type Theme struct {
	Name        string
	Description string

	// Foreground and Background are document-wide defaults applied to the
	// whole rendered block, not to individual tokens.
	Foreground *Color
	Background *Color

	// Styles maps only the categories the theme actually styles.
	Styles map[token.Type]Style
}

// Lookup resolves a built-in theme by name, case-insensitively. The empty
// string and "default" resolve to Default.
func Lookup(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default, true
	}
	t, ok := Themes[strings.ToLower(name)]
	return t, ok
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
