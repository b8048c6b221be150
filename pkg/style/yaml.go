package style

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/facet/pkg/token"
)

// themeFile is the on-disk YAML shape of a theme. Style keys accept either
// a category's full name ("Keyword", any case) or its short code ("kw").
type themeFile struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Foreground  string               `yaml:"foreground"`
	Background  string               `yaml:"background"`
	Styles      map[string]styleFile `yaml:"styles"`
}

type styleFile struct {
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
}

// ParseTheme reads a custom theme from YAML. Unlike ParseColor, a malformed
// color here is an error rather than an absence: theme files are user input
// and deserve a diagnostic naming the bad field.
func ParseTheme(data []byte) (Theme, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}

	t := Theme{
		Name:        tf.Name,
		Description: tf.Description,
	}

	var err error
	if t.Foreground, err = parseOptional(tf.Foreground); err != nil {
		return Theme{}, fmt.Errorf("theme foreground: %w", err)
	}
	if t.Background, err = parseOptional(tf.Background); err != nil {
		return Theme{}, fmt.Errorf("theme background: %w", err)
	}

	if len(tf.Styles) == 0 {
		return t, nil
	}

	t.Styles = make(map[token.Type]Style, len(tf.Styles))
	for key, sf := range tf.Styles {
		typ, ok := token.TypeByName(key)
		if !ok {
			return Theme{}, fmt.Errorf("theme styles: unknown category %q", key)
		}
		s := Style{
			Bold:      sf.Bold,
			Italic:    sf.Italic,
			Underline: sf.Underline,
		}
		if s.Color, err = parseOptional(sf.Color); err != nil {
			return Theme{}, fmt.Errorf("style %q color: %w", key, err)
		}
		if s.Background, err = parseOptional(sf.Background); err != nil {
			return Theme{}, fmt.Errorf("style %q background: %w", key, err)
		}
		t.Styles[typ] = s
	}
	return t, nil
}

// parseOptional treats the empty string as an unset color and anything else
// as a value that must parse.
func parseOptional(s string) (*Color, error) {
	if s == "" {
		return nil, nil
	}
	c, ok := ParseColor(s)
	if !ok {
		return nil, fmt.Errorf("invalid color %q (want six hex digits, \"#\" optional)", s)
	}
	return &c, nil
}

// MarshalTheme renders a theme as YAML with style keys in canonical
// category order. Built via yaml.Node because map marshaling would order
// keys alphabetically instead.
func MarshalTheme(t Theme) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	appendScalar := func(node *yaml.Node, key, value string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: value},
		)
	}
	appendBool := func(node *yaml.Node, key string, value bool) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatBool(value), Tag: "!!bool"},
		)
	}

	appendScalar(root, "name", t.Name)
	if t.Description != "" {
		appendScalar(root, "description", t.Description)
	}
	if t.Foreground != nil {
		appendScalar(root, "foreground", t.Foreground.Hex())
	}
	if t.Background != nil {
		appendScalar(root, "background", t.Background.Hex())
	}

	styles := &yaml.Node{Kind: yaml.MappingNode}
	for _, typ := range token.Types() {
		s, ok := t.Styles[typ]
		if !ok {
			continue
		}
		entry := &yaml.Node{Kind: yaml.MappingNode}
		if s.Color != nil {
			appendScalar(entry, "color", s.Color.Hex())
		}
		if s.Background != nil {
			appendScalar(entry, "background", s.Background.Hex())
		}
		if s.Bold {
			appendBool(entry, "bold", true)
		}
		if s.Italic {
			appendBool(entry, "italic", true)
		}
		if s.Underline {
			appendBool(entry, "underline", true)
		}
		styles.Content = append(styles.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: typ.String()},
			entry,
		)
	}
	if len(styles.Content) > 0 {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "styles"},
			styles,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("marshaling theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling theme: %w", err)
	}
	return buf.Bytes(), nil
}
