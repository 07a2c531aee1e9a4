package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHSL(t *testing.T) {
	c, err := ParseHSL("222.2 84% 4.9%")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 222.2, S: 84, L: 4.9}, c)
	assert.Equal(t, "222.2 84% 4.9%", c.String())

	_, err = ParseHSL("#ff0000")
	assert.ErrorIs(t, err, ErrInvalidHSL)

	_, err = ParseHSL("217 91 60")
	assert.ErrorIs(t, err, ErrInvalidHSL)
}

func TestHSL_StringRounds(t *testing.T) {
	assert.Equal(t, "217 91% 60%", HSL{H: 217, S: 91, L: 60}.String())
	assert.Equal(t, "10.3 50% 33.3%", HSL{H: 10.26, S: 50.04, L: 33.333}.String())
}

func TestHSL_Clamp(t *testing.T) {
	assert.Equal(t, HSL{H: 330, S: 100, L: 0}, HSL{H: -30, S: 120, L: -5}.Clamp())
	assert.Equal(t, HSL{H: 10, S: 50, L: 50}, HSL{H: 370, S: 50, L: 50}.Clamp())
}

func TestHSL_Hex(t *testing.T) {
	assert.Equal(t, "#ffffff", HSL{H: 0, S: 0, L: 100}.Hex())
	assert.Equal(t, "#000000", HSL{H: 0, S: 0, L: 0}.Hex())

	hex, ok := Hex("rgb(255, 0, 0)")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", hex)
}

func TestIsRawColor(t *testing.T) {
	valid := []string{
		"217 91% 60%",
		"#fff",
		"#1E90FF",
		"rgb(10, 20, 30)",
		"rgba(10, 20, 30, 0.5)",
		"hsl(217, 91%, 60%)",
		"hsl(217deg 91% 60%)",
	}
	for _, v := range valid {
		assert.True(t, IsRawColor(v), v)
	}

	invalid := []string{"", "blue", "#ggg", "#12345", "rgb(300, 0, 0)", "hsl(10, 120%, 50%)", "1rem"}
	for _, v := range invalid {
		assert.False(t, IsRawColor(v), v)
	}
}

func TestLightness(t *testing.T) {
	l, ok := Lightness("217 91% 60%")
	require.True(t, ok)
	assert.Equal(t, 60.0, l)

	l, ok = Lightness("#ffffff")
	require.True(t, ok)
	assert.InDelta(t, 100.0, l, 0.01)

	_, ok = Lightness("teal")
	assert.False(t, ok)
}

func TestContrastingForeground(t *testing.T) {
	fg, ok := ContrastingForeground(ColorValues["white"])
	require.True(t, ok)
	assert.Equal(t, DarkForeground, fg)

	fg, ok = ContrastingForeground(ColorValues["navy"])
	require.True(t, ok)
	assert.Equal(t, LightForeground, fg)

	// exactly 50 is not "light"
	fg, _ = ContrastingForeground("38 92% 50%")
	assert.Equal(t, LightForeground, fg)
}

func TestColorValues_AreHSL(t *testing.T) {
	for name, v := range ColorValues {
		assert.True(t, IsHSLTriple(v), name)
	}
	assert.Equal(t, "217 91% 60%", ColorValues["blue"])
}

func TestScale_Locate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "none"},
		{"0.5rem", "md"},
		{"9999px", "full"},
		{"12px", "lg"},
		{"0.3rem", "sm"},
		{"40px", "xl"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			i := RadiusScale.Locate(tc.value)
			require.GreaterOrEqual(t, i, 0)
			assert.Equal(t, tc.want, RadiusScale[i].Name)
		})
	}

	assert.Equal(t, -1, RadiusScale.Locate("rounded"))
}

func TestScale_StepSaturates(t *testing.T) {
	assert.Equal(t, "lg", RadiusScale.Step(2, 1).Name)
	assert.Equal(t, "full", RadiusScale.Step(5, 1).Name)
	assert.Equal(t, "none", RadiusScale.Step(0, -1).Name)
	assert.Equal(t, "3xl", FontSizeScale.Step(6, 4).Name)
}

func TestScale_ValueAndNames(t *testing.T) {
	v, ok := SpacingScale.Value("lg")
	require.True(t, ok)
	assert.Equal(t, "1.5rem", v)

	_, ok = SpacingScale.Value("huge")
	assert.False(t, ok)

	assert.Equal(t, []string{"none", "sm", "md", "lg", "xl", "full"}, RadiusScale.Names())
}

func TestDefaultTokens_ShapeOnScale(t *testing.T) {
	assert.GreaterOrEqual(t, RadiusScale.Locate(DefaultLight[RadiusTokenID]), 0)
	assert.GreaterOrEqual(t, SpacingScale.Locate(DefaultLight[SpacingTokenID]), 0)
	assert.GreaterOrEqual(t, FontSizeScale.Locate(DefaultLight[FontSizeTokenID]), 0)

	for id := range DefaultDark {
		_, ok := DefaultLight[id]
		assert.True(t, ok, "dark override %q has no light value", id)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("dim")
	assert.Error(t, err)
}

func TestMemoryStore_DarkOverrides(t *testing.T) {
	s := NewDefaultStore()
	assert.Equal(t, ModeLight, s.Mode())
	assert.Equal(t, "0 0% 100%", s.Get("background"))

	s.SetMode(ModeDark)
	assert.Equal(t, "222.2 84% 4.9%", s.Get("background"))
	assert.Equal(t, "0.5rem", s.Get("radius"))

	// overridden token: dark set only
	s.Set("background", "0 0% 10%")
	assert.Equal(t, "0 0% 10%", s.Get("background"))
	s.SetMode(ModeLight)
	assert.Equal(t, "0 0% 100%", s.Get("background"))

	// shared token: visible in both modes
	s.SetMode(ModeDark)
	s.Set("radius", "1rem")
	s.SetMode(ModeLight)
	assert.Equal(t, "1rem", s.Get("radius"))

	assert.Equal(t, "", s.Get("does-not-exist"))
}

type plainStore struct{ mode Mode }

func (p *plainStore) Get(string) string { return "" }
func (p *plainStore) Set(string, string) {}
func (p *plainStore) Mode() Mode { return p.mode }
func (p *plainStore) SetMode(mode Mode) { p.mode = mode }

func TestWritesDark(t *testing.T) {
	s := NewDefaultStore()
	assert.False(t, WritesDark(s, "background"))

	s.SetMode(ModeDark)
	assert.True(t, s.HasDarkOverride("background"))
	assert.True(t, WritesDark(s, "background"))
	assert.False(t, WritesDark(s, RadiusTokenID))

	p := &plainStore{mode: ModeDark}
	assert.True(t, WritesDark(p, RadiusTokenID))
	p.SetMode(ModeLight)
	assert.False(t, WritesDark(p, RadiusTokenID))
}

func TestMemoryStore_CopiesInput(t *testing.T) {
	base := map[string]string{"primary": "0 0% 0%"}
	s := NewMemoryStore(base, nil, "")
	base["primary"] = "changed"

	assert.Equal(t, "0 0% 0%", s.Get("primary"))
	assert.Equal(t, ModeLight, s.Mode())
}

func TestMemoryStore_Subscribe(t *testing.T) {
	s := NewDefaultStore()

	var got []Change
	unsubscribe := s.Subscribe(func(c Change) { got = append(got, c) })

	s.Set("primary", "217 91% 60%")
	s.SetMode(ModeDark)
	s.SetMode(ModeDark) // no-op, no change record

	require.Len(t, got, 2)
	assert.Equal(t, Change{TokenID: "primary", OldValue: "222.2 47.4% 11.2%", NewValue: "217 91% 60%"}, got[0])
	assert.Equal(t, Change{TokenID: ModeTokenID, OldValue: "light", NewValue: "dark"}, got[1])

	unsubscribe()
	s.Set("primary", "0 0% 0%")
	assert.Len(t, got, 2)
}

func TestMemoryStore_SnapshotAndIDs(t *testing.T) {
	s := NewMemoryStore(
		map[string]string{"background": "0 0% 100%", "radius": "0.5rem"},
		map[string]string{"background": "0 0% 0%"},
		ModeDark,
	)

	assert.Equal(t, map[string]string{"background": "0 0% 0%", "radius": "0.5rem"}, s.Snapshot())
	assert.Equal(t, []string{"background", "radius"}, s.IDs())

	s.Replace(map[string]string{"ring": "0 0% 50%"}, nil)
	assert.Equal(t, []string{"ring"}, s.IDs())
	assert.Equal(t, ModeDark, s.Mode())
}
