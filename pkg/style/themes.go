package style

import "github.com/zjrosen/facet/pkg/token"

// Pygments approximates the default colors of the pygments highlighter.
// It styles tokens only, leaving document colors to the page.
var Pygments = Theme{
	Name:        "pygments",
	Description: "Light token colors in the manner of pygments",
	Styles: map[token.Type]Style{
		token.Keyword:       {Color: hex("#007020"), Bold: true},
		token.DataType:      {Color: hex("#902000")},
		token.DecimalValue:  {Color: hex("#40a070")},
		token.BaseNValue:    {Color: hex("#40a070")},
		token.FloatValue:    {Color: hex("#40a070")},
		token.CharLiteral:   {Color: hex("#4070a0")},
		token.StringLiteral: {Color: hex("#4070a0")},
		token.Comment:       {Color: hex("#60a0b0"), Italic: true},
		token.Other:         {Color: hex("#007020")},
		token.Alert:         {Color: hex("#ff0000"), Bold: true},
		token.Function:      {Color: hex("#06287e")},
		token.Error:         {Color: hex("#ff0000"), Bold: true},
	},
}

// Kate approximates the default schema of the Kate editor. Keywords are
// bold without a color of their own.
var Kate = Theme{
	Name:        "kate",
	Description: "The Kate editor's default schema",
	Styles: map[token.Type]Style{
		token.Keyword:       {Bold: true},
		token.DataType:      {Color: hex("#800000")},
		token.DecimalValue:  {Color: hex("#0000ff")},
		token.BaseNValue:    {Color: hex("#0000ff")},
		token.FloatValue:    {Color: hex("#800080")},
		token.CharLiteral:   {Color: hex("#ff00ff")},
		token.StringLiteral: {Color: hex("#dd0000")},
		token.Comment:       {Color: hex("#808080"), Italic: true},
		token.Alert:         {Color: hex("#00ff00"), Bold: true},
		token.Function:      {Color: hex("#000080")},
		token.Error:         {Color: hex("#ff0000"), Bold: true},
	},
}

// Tango uses the GNOME Tango palette on a light page background.
var Tango = Theme{
	Name:        "tango",
	Description: "GNOME Tango palette on a light background",
	Background:  hex("#f8f8f8"),
	Styles: map[token.Type]Style{
		token.Keyword:       {Color: hex("#204a87"), Bold: true},
		token.DataType:      {Color: hex("#204a87")},
		token.DecimalValue:  {Color: hex("#0000cf")},
		token.BaseNValue:    {Color: hex("#0000cf")},
		token.FloatValue:    {Color: hex("#0000cf")},
		token.CharLiteral:   {Color: hex("#4e9a06")},
		token.StringLiteral: {Color: hex("#4e9a06")},
		token.Comment:       {Color: hex("#8f5902"), Italic: true},
		token.Other:         {Color: hex("#8f5902")},
		token.Alert:         {Color: hex("#ef2929")},
		token.Function:      {Color: hex("#000000")},
		token.Error:         {Color: hex("#a40000"), Bold: true},
	},
}

// Espresso is the one dark built-in: warm coffee background with muted
// foreground text and underlined data types.
var Espresso = Theme{
	Name:        "espresso",
	Description: "Dark coffee background with bright token colors",
	Foreground:  hex("#bdae9d"), // latte
	Background:  hex("#2a211c"), // roast
	Styles: map[token.Type]Style{
		token.Keyword:       {Color: hex("#43a8ed"), Bold: true},
		token.DataType:      {Underline: true},
		token.DecimalValue:  {Color: hex("#44aa43")},
		token.BaseNValue:    {Color: hex("#44aa43")},
		token.FloatValue:    {Color: hex("#44aa43")},
		token.CharLiteral:   {Color: hex("#049b0a")},
		token.StringLiteral: {Color: hex("#049b0a")},
		token.Comment:       {Color: hex("#0066ff"), Italic: true},
		token.Alert:         {Color: hex("#ffff00")},
		token.Function:      {Color: hex("#ff9358"), Bold: true},
		token.Error:         {Color: hex("#ffff00"), Bold: true},
	},
}

// Default is the theme used when none is named.
var Default = Pygments

// Themes maps built-in theme names to their palettes. Lookup additionally
// resolves "default" (and the empty string) to Default.
var Themes = map[string]Theme{
	"pygments": Pygments,
	"kate":     Kate,
	"tango":    Tango,
	"espresso": Espresso,
}
