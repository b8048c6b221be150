// Package token defines the closed set of syntactic categories a tokenizer
// assigns to source text, and the Token/Line values the renderers consume.
package token

import (
	"fmt"
	"strings"
)

// Type classifies a run of source text. The set is closed: tokenizers must
// map their own taxonomies onto these categories.
type Type uint8

const (
	Normal Type = iota // unstyled text; the zero value

	Keyword
	DataType
	DecimalValue
	BaseNValue // non-decimal radix literals (hex, octal, binary)
	FloatValue
	CharLiteral
	StringLiteral
	Comment
	Other // preprocessor directives, attributes, anything without a better home
	Alert // TODO/FIXME-style markers inside comments
	Function
	RegionMarker // fold/region markers emitted by some tokenizers
	Error
)

// Short returns the two-letter code used as the HTML class and the LaTeX
// macro name for the category. Normal has no code and renders bare.
func (t Type) Short() string {
	switch t {
	case Keyword:
		return "kw"
	case DataType:
		return "dt"
	case DecimalValue:
		return "dv"
	case BaseNValue:
		return "bn"
	case FloatValue:
		return "fl"
	case CharLiteral:
		return "ch"
	case StringLiteral:
		return "st"
	case Comment:
		return "co"
	case Other:
		return "ot"
	case Alert:
		return "al"
	case Function:
		return "fu"
	case RegionMarker:
		return "re"
	case Error:
		return "er"
	default:
		return ""
	}
}

// String returns the full category name, used for HTML title attributes.
func (t Type) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Keyword:
		return "Keyword"
	case DataType:
		return "DataType"
	case DecimalValue:
		return "DecimalValue"
	case BaseNValue:
		return "BaseNValue"
	case FloatValue:
		return "FloatValue"
	case CharLiteral:
		return "CharLiteral"
	case StringLiteral:
		return "StringLiteral"
	case Comment:
		return "Comment"
	case Other:
		return "Other"
	case Alert:
		return "Alert"
	case Function:
		return "Function"
	case RegionMarker:
		return "RegionMarker"
	case Error:
		return "Error"
	default:
		return "Invalid"
	}
}

// IsValid reports whether t is one of the declared categories.
func (t Type) IsValid() bool {
	return t <= Error
}

// names maps lowercased full names and short codes back to categories.
// Normal is reachable by name only; its short code is the empty string.
var names = map[string]Type{
	"normal":        Normal,
	"keyword":       Keyword,
	"kw":            Keyword,
	"datatype":      DataType,
	"dt":            DataType,
	"decimalvalue":  DecimalValue,
	"dv":            DecimalValue,
	"basenvalue":    BaseNValue,
	"bn":            BaseNValue,
	"floatvalue":    FloatValue,
	"fl":            FloatValue,
	"charliteral":   CharLiteral,
	"ch":            CharLiteral,
	"stringliteral": StringLiteral,
	"st":            StringLiteral,
	"comment":       Comment,
	"co":            Comment,
	"other":         Other,
	"ot":            Other,
	"alert":         Alert,
	"al":            Alert,
	"function":      Function,
	"fu":            Function,
	"regionmarker":  RegionMarker,
	"re":            RegionMarker,
	"error":         Error,
	"er":            Error,
}

// TypeByName resolves a category from its full name (any letter case) or
// its two-letter short code. ok is false for anything else.
func TypeByName(s string) (Type, bool) {
	t, ok := names[strings.ToLower(s)]
	return t, ok
}

// Types returns every category in canonical order: Normal first, then the
// styled categories in the order derived stylesheets list them.
func Types() []Type {
	ts := make([]Type, 0, int(Error)+1)
	for t := Normal; t <= Error; t++ {
		ts = append(ts, t)
	}
	return ts
}

// Token is one categorized run of text. Text must not contain line
// terminators; renderers pass it through verbatim apart from escaping.
type Token struct {
	Type Type
	Text string
}

// New builds a Token, rejecting categories outside the declared set so bad
// values surface at construction rather than as broken markup downstream.
func New(t Type, text string) (Token, error) {
	if !t.IsValid() {
		return Token{}, fmt.Errorf("invalid token category %d", t)
	}
	return Token{Type: t, Text: text}, nil
}

// Line is a single line of source: zero or more tokens, no terminator.
type Line []Token
