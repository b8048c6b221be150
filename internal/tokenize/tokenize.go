// Package tokenize bridges chroma's lexer registry to the token categories
// the renderers consume. It owns lexer selection and the line splitting that
// keeps token text free of line terminators.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/zjrosen/facet/internal/log"
	"github.com/zjrosen/facet/pkg/token"
)

// Source tokenizes src into terminator-free lines. The lexer comes from the
// explicit language name when given, else the filename, else content
// analysis, else the plain-text fallback. An unknown explicit language is an
// error; the other stages fall through silently. The second return is the
// lowercased lexer name, which the HTML renderer uses as a class.
func Source(language, filename string, src []byte) ([]token.Line, string, error) {
	lexer, err := selectLexer(language, filename, string(src))
	if err != nil {
		return nil, "", err
	}
	name := strings.ToLower(lexer.Config().Name)
	log.Debug(log.CatTokenize, "Selected lexer", "lexer", name, "language", language, "filename", filename)

	lexer = chroma.Coalesce(lexer)
	it, err := lexer.Tokenise(nil, string(src))
	if err != nil {
		return nil, "", fmt.Errorf("tokenizing with %s lexer: %w", name, err)
	}

	return splitLines(it), name, nil
}

func selectLexer(language, filename, src string) (chroma.Lexer, error) {
	if language != "" {
		lexer := lexers.Get(language)
		if lexer == nil {
			return nil, fmt.Errorf("unknown language %q", language)
		}
		return lexer, nil
	}
	if filename != "" {
		if lexer := lexers.Match(filename); lexer != nil {
			return lexer, nil
		}
	}
	if lexer := lexers.Analyse(src); lexer != nil {
		return lexer, nil
	}
	return lexers.Fallback, nil
}

// splitLines distributes tokens across lines. A chroma token value may span
// lines, so each value is split on "\n"; the segment before the first break
// extends the current line and every break starts a new one. The line open
// after the final token is kept only if it has content, which drops the
// phantom line a trailing newline would otherwise produce.
func splitLines(it chroma.Iterator) []token.Line {
	var lines []token.Line
	var current token.Line

	for tok := it(); tok != chroma.EOF; tok = it() {
		t := mapType(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = nil
			}
			if part != "" {
				current = append(current, token.Token{Type: t, Text: part})
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// mapType folds chroma's token lattice onto the closed category set.
// Anything without a counterpart (operators, punctuation, whitespace,
// generic output) renders as plain text.
func mapType(t chroma.TokenType) token.Type {
	switch {
	case t == chroma.Error, t == chroma.GenericError:
		return token.Error
	case t == chroma.KeywordType:
		return token.DataType
	case t.InCategory(chroma.Keyword):
		return token.Keyword
	case t == chroma.NameClass:
		return token.DataType
	case t == chroma.NameFunction:
		return token.Function
	case t == chroma.LiteralStringChar:
		return token.CharLiteral
	case t.InSubCategory(chroma.LiteralString):
		return token.StringLiteral
	case t == chroma.LiteralNumberFloat:
		return token.FloatValue
	case t == chroma.LiteralNumberBin, t == chroma.LiteralNumberHex, t == chroma.LiteralNumberOct:
		return token.BaseNValue
	case t.InSubCategory(chroma.LiteralNumber):
		return token.DecimalValue
	case t == chroma.CommentPreproc, t == chroma.CommentPreprocFile:
		return token.Other
	case t == chroma.CommentSpecial:
		return token.Alert
	case t.InCategory(chroma.Comment):
		return token.Comment
	default:
		return token.Normal
	}
}

// Languages returns the sorted names of every registered lexer.
func Languages() []string {
	return lexers.Names(false)
}
