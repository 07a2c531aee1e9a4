package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uistyle/pkg/synonyms"
)

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "?!"} {
		in := Parse(text)
		assert.Equal(t, TypeUnknown, in.Type, "%q", text)
		assert.Zero(t, in.Confidence)
		assert.Equal(t, text, in.Raw)
	}
}

func TestParse_PresetPhrasesIdempotent(t *testing.T) {
	for _, phrase := range synonyms.PresetPhraseKeys() {
		want, _ := synonyms.PresetPhrase(phrase)
		for _, variant := range []string{phrase, strings.ToUpper(phrase), "  " + strings.ReplaceAll(phrase, " ", "   ") + "\t"} {
			in := Parse(variant)
			assert.Equal(t, TypePreset, in.Type, "%q", variant)
			assert.Equal(t, want, in.Value, "%q", variant)
			assert.GreaterOrEqual(t, in.Confidence, 0.95, "%q", variant)
		}
	}
}

func TestParse_Style(t *testing.T) {
	tests := []struct {
		text   string
		target string
		value  string
		scope  Scope
	}{
		{"make the background blue", "background", "blue", ""},
		{"Make the background blue.", "background", "blue", ""},
		{"please make the background light blue", "background", "light blue", ""},
		{"change the primary color to #ff0000", "primary color", "#ff0000", ""},
		{"set primary to hsl(217, 91%, 60%)", "primary", "hsl(217, 91%, 60%)", ""},
		{"make the primary 217 91% 60%", "primary", "217 91% 60%", ""},
		{"the sidebar should be navy", "sidebar", "navy", ""},
		{"primary: blue", "primary", "blue", ""},
		{"accent = teal", "accent", "teal", ""},
		{"i want the cards to be white", "cards", "white", ""},
		{"i want a pink background", "background", "pink", ""},
		{"blue background", "background", "blue", ""},
		{"dark green buttons", "buttons", "dark green", ""},
		{"make it purple", "it", "purple", ScopeSelected},
		{"make this button red", "button", "red", ScopeSelected},
		{"make everything blue", "", "blue", ScopeGlobal},
		{"blue", "", "blue", ""},
		{"light blue", "", "light blue", ""},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			in := Parse(tc.text)
			require.Equal(t, TypeStyle, in.Type)
			assert.Equal(t, tc.target, in.Target)
			assert.Equal(t, tc.value, in.Value)
			assert.Empty(t, in.Delta)
			assert.Equal(t, tc.scope, in.Scope)
			assert.Greater(t, in.Confidence, minConfidence)
			assert.Equal(t, tc.text, in.Raw)
		})
	}
}

func TestParse_Relative(t *testing.T) {
	tests := []struct {
		text   string
		target string
		value  string
		delta  Delta
	}{
		{"more rounded", "", "rounded", DeltaMore},
		{"less spacing", "", "spacing", DeltaLess},
		{"a bit more padding on the cards", "cards", "padding", DeltaMore},
		{"less saturated background", "background", "saturated", DeltaLess},
		{"make the buttons more rounded", "buttons", "rounded", DeltaMore},
		{"make it a little less bright", "it", "bright", DeltaLess},
		{"the corners should be more rounded", "corners", "rounded", DeltaMore},
		{"increase the saturation of the primary", "primary", "saturation", DeltaMore},
		{"lower the contrast", "", "contrast", DeltaLess},
		{"darken the accent", "accent", synonyms.PropertyLightness, DeltaLess},
		{"lighten up", "", synonyms.PropertyLightness, DeltaMore},
		{"round off the corners", "corners", synonyms.PropertyRounded, DeltaMore},
		{"rounder", "", synonyms.PropertyRounded, DeltaMore},
		{"make the buttons bigger", "buttons", synonyms.PropertySize, DeltaMore},
		{"a bit darker", "", synonyms.PropertyLightness, DeltaLess},
		{"make the header darker", "header", synonyms.PropertyLightness, DeltaLess},
		{"sharper corners", "corners", synonyms.PropertyRounded, DeltaLess},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			in := Parse(tc.text)
			require.Equal(t, TypeStyle, in.Type)
			assert.Equal(t, tc.target, in.Target)
			assert.Equal(t, tc.value, in.Value)
			assert.Equal(t, tc.delta, in.Delta)
			assert.True(t, in.IsRelative())
		})
	}
}

func TestParse_RelativeUnknownWordStillParses(t *testing.T) {
	in := Parse("more flobber")
	assert.Equal(t, TypeStyle, in.Type)
	assert.Equal(t, "flobber", in.Value)
	assert.Equal(t, DeltaMore, in.Delta)
	assert.Equal(t, unresolvedRelativeConfidence, in.Confidence)
}

func TestParse_UnknownComparativeDiscarded(t *testing.T) {
	in := Parse("glimmer")
	assert.Equal(t, TypeUnknown, in.Type)
	assert.Zero(t, in.Confidence)
}

func TestParse_Mode(t *testing.T) {
	tests := map[string]string{
		"dark mode":            "dark",
		"Switch to light mode": "light",
		"night mode":           "dark",
		"go dark":              "dark",
		"light":                "light",
		"toggle theme":         "toggle",
		"switch":               "toggle",
	}
	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			in := Parse(text)
			require.Equal(t, TypeMode, in.Type)
			assert.Equal(t, want, in.Value)
		})
	}
}

func TestParse_UndoRedo(t *testing.T) {
	assert.Equal(t, TypeUndo, Parse("undo").Type)
	assert.Equal(t, TypeUndo, Parse("Undo the last change").Type)
	assert.Equal(t, TypeRedo, Parse("redo that").Type)
}

func TestParse_PresetAdjectives(t *testing.T) {
	tests := map[string]string{
		"make it look more corporate": "professional",
		"more playful":                "playful",
		"minimal":                     "minimal",
		"i want something elegant":    "elegant",
		"high-contrast":               "high-contrast",
	}
	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			in := Parse(text)
			require.Equal(t, TypePreset, in.Type)
			assert.Equal(t, want, in.Value)
		})
	}
}

func TestParse_MoreRelativeWordIsNotPreset(t *testing.T) {
	tests := []struct {
		text, value string
	}{
		{"more muted", "muted"},
		{"more vibrant", "vibrant"},
		{"make it more muted", "muted"},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			in := Parse(tc.text)
			require.Equal(t, TypeStyle, in.Type)
			assert.Equal(t, tc.value, in.Value)
			assert.Equal(t, DeltaMore, in.Delta)
			assert.Empty(t, in.Target)
		})
	}

	assert.Equal(t, TypePreset, Parse("muted").Type)
}

func TestParse_Layout(t *testing.T) {
	tests := []struct {
		text, target, value string
	}{
		{"3 columns", "columns", "3"},
		{"use a three-column layout", "columns", "3"},
		{"put the sidebar on the right", "sidebar", "right"},
		{"dashboard layout", "layout", "dashboard"},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			in := Parse(tc.text)
			require.Equal(t, TypeLayout, in.Type)
			assert.Equal(t, tc.target, in.Target)
			assert.Equal(t, tc.value, in.Value)
		})
	}
}

func TestParse_Visibility(t *testing.T) {
	in := Parse("hide the sidebar")
	require.Equal(t, TypeVisibility, in.Type)
	assert.Equal(t, "sidebar", in.Target)
	assert.Equal(t, "hide", in.Value)

	in = Parse("I don't need the footer")
	require.Equal(t, TypeVisibility, in.Type)
	assert.Equal(t, "footer", in.Target)
	assert.Equal(t, "hide", in.Value)

	in = Parse("show the chart")
	require.Equal(t, TypeVisibility, in.Type)
	assert.Equal(t, "show", in.Value)
}

func TestParse_PositionalFallback(t *testing.T) {
	in := Parse("backgroud pink")
	require.Equal(t, TypeStyle, in.Type)
	assert.Equal(t, "backgroud", in.Target)
	assert.Equal(t, "pink", in.Value)
	assert.Equal(t, 0.4, in.Confidence)

	in = Parse("primay is teal")
	require.Equal(t, TypeStyle, in.Type)
	assert.Equal(t, "primay", in.Target)
	assert.Equal(t, "teal", in.Value)
	assert.Equal(t, 0.5, in.Confidence)
}

func TestParse_Gibberish(t *testing.T) {
	for _, text := range []string{"xyzzyqux flobbernaut", "xyzzy to flob", "what is the weather like today"} {
		in := Parse(text)
		assert.Equal(t, TypeUnknown, in.Type, text)
		assert.Zero(t, in.Confidence, text)
	}
}

func TestParser_Cache(t *testing.T) {
	p := NewParser(ParserConfig{CacheSize: 2}, nil)

	first := p.Parse("Dark mode")
	second := p.Parse("  dark   MODE ")

	assert.Equal(t, TypeMode, second.Type)
	assert.Equal(t, "Dark mode", first.Raw)
	assert.Equal(t, "  dark   MODE ", second.Raw)

	stats := p.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)

	p.Parse("undo")
	p.Parse("redo")
	assert.Equal(t, 2, p.Stats().Entries)

	p.Purge()
	assert.Zero(t, p.Stats().Entries)
}

func TestParser_MatchesParse(t *testing.T) {
	p := NewParser(ParserConfig{}, nil)
	for _, text := range []string{"make the background blue", "more rounded", "xyzzyqux flobbernaut"} {
		assert.Equal(t, Parse(text), p.Parse(text))
		assert.Equal(t, Parse(text), p.Parse(text))
	}
}

func TestDelta(t *testing.T) {
	d, ok := ParseDelta("fewer")
	require.True(t, ok)
	assert.Equal(t, DeltaLess, d)
	assert.Equal(t, DeltaMore, d.Invert())

	_, ok = ParseDelta("plenty")
	assert.False(t, ok)
}
