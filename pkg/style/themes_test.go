package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/facet/pkg/token"
)

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"espresso", "kate", "pygments", "tango"}, Names())
	require.Equal(t, Pygments, Default, "pygments is the designated default")

	got, ok := Lookup("espresso")
	require.True(t, ok)
	require.Equal(t, Espresso, got)

	got, ok = Lookup("ESPRESSO")
	require.True(t, ok, "lookup is case-insensitive")
	require.Equal(t, Espresso, got)

	got, ok = Lookup("default")
	require.True(t, ok)
	require.Equal(t, Default, got)

	got, ok = Lookup("")
	require.True(t, ok, "the empty name means the default theme")
	require.Equal(t, Default, got)

	_, ok = Lookup("zenburn")
	require.False(t, ok)
}

func TestBuiltinsAreWellFormed(t *testing.T) {
	for name, theme := range Themes {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, theme.Name, "registry key matches theme name")
			require.NotEmpty(t, theme.Description)
			require.NotEmpty(t, theme.Styles)
			for typ, s := range theme.Styles {
				require.True(t, typ.IsValid(), "category %d out of range", typ)
				require.NotEqual(t, token.Normal, typ, "Normal is never styled")
				require.False(t, s.IsZero(), "style for %s sets nothing", typ)
			}
		})
	}
}

func TestPygmentsPalette(t *testing.T) {
	kw := Pygments.Styles[token.Keyword]
	require.NotNil(t, kw.Color)
	require.Equal(t, "#007020", kw.Color.Hex())
	require.True(t, kw.Bold)

	require.Nil(t, Pygments.Foreground, "pygments leaves document colors unset")
	require.Nil(t, Pygments.Background)

	co := Pygments.Styles[token.Comment]
	require.True(t, co.Italic)
	require.Equal(t, "#60a0b0", co.Color.Hex())

	_, styled := Pygments.Styles[token.RegionMarker]
	require.False(t, styled, "region markers render unstyled")
}

func TestKatePalette(t *testing.T) {
	kw := Kate.Styles[token.Keyword]
	require.Nil(t, kw.Color, "kate keywords are bold only")
	require.True(t, kw.Bold)

	al := Kate.Styles[token.Alert]
	require.Equal(t, "#00ff00", al.Color.Hex())
	require.True(t, al.Bold)

	require.Equal(t, "#0000ff", Kate.Styles[token.DecimalValue].Color.Hex())
	require.Equal(t, "#800080", Kate.Styles[token.FloatValue].Color.Hex())
}

func TestTangoPalette(t *testing.T) {
	require.Nil(t, Tango.Foreground)
	require.NotNil(t, Tango.Background)
	require.Equal(t, "#f8f8f8", Tango.Background.Hex())
	require.Equal(t, "#204a87", Tango.Styles[token.Keyword].Color.Hex())
	require.False(t, Tango.Styles[token.Alert].Bold, "tango alerts are plain red")
}

func TestEspressoPalette(t *testing.T) {
	require.NotNil(t, Espresso.Foreground)
	require.NotNil(t, Espresso.Background)
	require.Equal(t, "#bdae9d", Espresso.Foreground.Hex())
	require.Equal(t, "#2a211c", Espresso.Background.Hex())

	dt := Espresso.Styles[token.DataType]
	require.Nil(t, dt.Color, "espresso data types carry only an underline")
	require.True(t, dt.Underline)

	require.Equal(t, "#43a8ed", Espresso.Styles[token.Keyword].Color.Hex())
}

func TestStyleIsZero(t *testing.T) {
	require.True(t, Style{}.IsZero())
	require.False(t, Style{Bold: true}.IsZero())
	require.False(t, Style{Color: hex("#000000")}.IsZero())
	require.False(t, Style{Underline: true}.IsZero())
}
