package relative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/synonyms"
	"github.com/gnana997/uistyle/pkg/tokens"
)

func TestCompute_RadiusSaturatesAtFull(t *testing.T) {
	store := tokens.NewDefaultStore()
	c := NewComputer(store)

	allowed := make(map[string]bool)
	for _, st := range tokens.RadiusScale {
		allowed[st.Value] = true
	}

	var last Result
	for i := 0; i < len(tokens.RadiusScale)+3; i++ {
		res, err := c.Compute("rounded", command.DeltaMore, "primary")
		require.NoError(t, err)
		assert.True(t, allowed[res.NewValue], res.NewValue)
		assert.Equal(t, tokens.RadiusTokenID, res.TokenID)
		store.Set(res.TokenID, res.NewValue)
		last = res
	}
	assert.Equal(t, "full", last.Step)
	assert.Equal(t, "9999px", last.NewValue)
	assert.Equal(t, "9999px", last.OldValue)
}

func TestCompute_TwoStepsFromDefault(t *testing.T) {
	store := tokens.NewDefaultStore()
	c := NewComputer(store)

	first, err := c.Compute("rounded", command.DeltaMore, "")
	require.NoError(t, err)
	assert.Equal(t, "0.5rem", first.OldValue)
	assert.Equal(t, "lg", first.Step)
	store.Set(first.TokenID, first.NewValue)

	second, err := c.Compute("rounded", command.DeltaMore, "")
	require.NoError(t, err)
	assert.Equal(t, first.NewValue, second.OldValue)
	assert.Equal(t, "xl", second.Step)
}

func TestCompute_InvertedWords(t *testing.T) {
	store := tokens.NewMemoryStore(map[string]string{
		"radius":  "0.5rem",
		"primary": "217 91% 60%",
	}, nil, tokens.ModeLight)
	c := NewComputer(store)

	res, err := c.Compute("sharp", command.DeltaMore, "primary")
	require.NoError(t, err)
	assert.Equal(t, "sm", res.Step)

	res, err = c.Compute("dark", command.DeltaMore, "primary")
	require.NoError(t, err)
	assert.Equal(t, "217 91% 50%", res.NewValue)
	assert.Equal(t, synonyms.PropertyLightness, res.Property)
}

func TestCompute_OffScaleUsesFallback(t *testing.T) {
	store := tokens.NewMemoryStore(map[string]string{"spacing": "wide"}, nil, "")
	res, err := NewComputer(store).Compute("spacing", command.DeltaLess, "")
	require.NoError(t, err)
	assert.Equal(t, "sm", res.Step)
	assert.Equal(t, "wide", res.OldValue)
}

func TestCompute_FontSizeDown(t *testing.T) {
	store := tokens.NewDefaultStore()
	res, err := NewComputer(store).Compute("size", command.DeltaLess, "")
	require.NoError(t, err)
	assert.Equal(t, tokens.FontSizeTokenID, res.TokenID)
	assert.Equal(t, "0.875rem", res.NewValue)
}

func TestCompute_Errors(t *testing.T) {
	store := tokens.NewMemoryStore(map[string]string{"primary": "var(--brand)"}, nil, "")
	c := NewComputer(store)

	_, err := c.Compute("flobber", command.DeltaMore, "primary")
	require.ErrorIs(t, err, ErrUnknownProperty)
	assert.Contains(t, err.Error(), "cannot compute relative change for flobber")

	_, err = c.Compute("saturation", command.DeltaMore, "primary")
	assert.ErrorIs(t, err, ErrInvalidCurrentValue)
}

func TestComputeColor(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		direction command.Delta
		property  string
		want      string
	}{
		{"lightness clamps high", "0 0% 95%", command.DeltaMore, synonyms.PropertyLightness, "0 0% 100%"},
		{"lightness clamps low", "0 0% 4%", command.DeltaLess, synonyms.PropertyLightness, "0 0% 0%"},
		{"saturation up", "217 50% 60%", command.DeltaMore, synonyms.PropertySaturation, "217 60% 60%"},
		{"saturation clamps", "217 95% 60%", command.DeltaMore, synonyms.PropertySaturation, "217 100% 60%"},
		{"hue wraps forward", "350 50% 50%", command.DeltaMore, synonyms.PropertyHue, "20 50% 50%"},
		{"hue wraps back", "10 50% 50%", command.DeltaLess, synonyms.PropertyHue, "340 50% 50%"},
		{"contrast on light color", "217 50% 60%", command.DeltaMore, synonyms.PropertyContrast, "217 65% 65%"},
		{"contrast on dark color", "217 50% 30%", command.DeltaMore, synonyms.PropertyContrast, "217 65% 25%"},
		{"less contrast", "217 50% 30%", command.DeltaLess, synonyms.PropertyContrast, "217 35% 35%"},
		{"decimals kept", "222.2 47.4% 11.2%", command.DeltaMore, synonyms.PropertyLightness, "222.2 47.4% 21.2%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeColor(tc.value, tc.direction, tc.property)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompute_RawColorValues(t *testing.T) {
	store := tokens.NewMemoryStore(map[string]string{
		"primary":   "#3366ff",
		"secondary": "rgb(255, 0, 0)",
		"accent":    "hsl(200, 50%, 40%)",
	}, nil, "")
	c := NewComputer(store)

	res, err := c.Compute("light", command.DeltaMore, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#3366ff", res.OldValue)
	assert.Equal(t, "225 100% 70%", res.NewValue)

	res, err = c.Compute("dark", command.DeltaMore, "secondary")
	require.NoError(t, err)
	assert.Equal(t, "0 100% 40%", res.NewValue)

	res, err = c.Compute("saturation", command.DeltaLess, "accent")
	require.NoError(t, err)
	assert.Equal(t, "200 40% 40%", res.NewValue)
}

func TestComputeColor_Invalid(t *testing.T) {
	_, err := ComputeColor("blue", command.DeltaMore, synonyms.PropertyLightness)
	assert.ErrorIs(t, err, ErrInvalidCurrentValue)

	_, err = ComputeColor("0 0% 50%", command.DeltaMore, synonyms.PropertyRounded)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestShade(t *testing.T) {
	got, err := Shade("217 91% 60%", 20)
	require.NoError(t, err)
	assert.Equal(t, "217 91% 80%", got)

	got, err = Shade("217 91% 90%", 20)
	require.NoError(t, err)
	assert.Equal(t, "217 91% 100%", got)

	got, err = Shade("#3366ff", -20)
	require.NoError(t, err)
	assert.Equal(t, "225 100% 40%", got)

	_, err = Shade("nope", 20)
	assert.ErrorIs(t, err, ErrInvalidCurrentValue)
}
