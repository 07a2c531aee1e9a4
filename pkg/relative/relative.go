// Package relative computes new token values for "more"/"less" commands by
// stepping discrete scales or adjusting HSL components.
package relative

import (
	"errors"
	"fmt"
	"math"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/synonyms"
	"github.com/gnana997/uistyle/pkg/tokens"
)

// Adjustment sizes for continuous color properties.
const (
	LightnessStep      = 10.0
	SaturationStep     = 10.0
	HueStep            = 30.0
	ContrastSaturation = 15.0
	ContrastLightness  = 5.0
	contrastPivot      = 50.0
)

var (
	// ErrUnknownProperty is returned for value words with no relative meaning.
	ErrUnknownProperty = errors.New("cannot compute relative change")

	// ErrInvalidCurrentValue is returned when the bound token does not hold a
	// color in any supported encoding.
	ErrInvalidCurrentValue = errors.New("current value is not a color")
)

// Result is the outcome of a relative computation.
type Result struct {
	// TokenID is the token the new value belongs to. Scale properties write
	// their own token (radius, spacing, font-size) regardless of the target.
	TokenID  string `json:"token_id"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
	Property string `json:"property"`
	// Step is the scale step name for scale properties.
	Step string `json:"step,omitempty"`
}

type scaleProperty struct {
	tokenID string
	scale   tokens.Scale
	// fallback is the step assumed when the current value is off-scale.
	fallback string
}

var scales = map[string]scaleProperty{
	synonyms.PropertyRounded: {tokenID: tokens.RadiusTokenID, scale: tokens.RadiusScale, fallback: "md"},
	synonyms.PropertySpacing: {tokenID: tokens.SpacingTokenID, scale: tokens.SpacingScale, fallback: "md"},
	synonyms.PropertySize:    {tokenID: tokens.FontSizeTokenID, scale: tokens.FontSizeScale, fallback: "md"},
}

// Reader is the read side of the token store.
type Reader interface {
	Get(tokenID string) string
}

// Computer reads current values from a token store. It never writes.
type Computer struct {
	store Reader
}

// NewComputer creates a Computer reading from store.
func NewComputer(store Reader) *Computer {
	return &Computer{store: store}
}

// Compute applies direction to the property named by word. tokenID is the
// color token bound by context resolution; scale properties ignore it.
func (c *Computer) Compute(word string, direction command.Delta, tokenID string) (Result, error) {
	rw, ok := synonyms.Relative(word)
	if !ok {
		return Result{}, fmt.Errorf("%w for %s", ErrUnknownProperty, word)
	}
	if rw.Inverted {
		direction = direction.Invert()
	}

	if sp, ok := scales[rw.Property]; ok {
		return c.stepScale(sp, rw.Property, direction), nil
	}

	current := c.store.Get(tokenID)
	next, err := ComputeColor(current, direction, rw.Property)
	if err != nil {
		return Result{}, fmt.Errorf("%s (%s): %w", tokenID, current, err)
	}
	return Result{
		TokenID:  tokenID,
		OldValue: current,
		NewValue: next,
		Property: rw.Property,
	}, nil
}

func (c *Computer) stepScale(sp scaleProperty, property string, direction command.Delta) Result {
	current := c.store.Get(sp.tokenID)

	i := sp.scale.Locate(current)
	if i < 0 {
		i = sp.scale.Index(sp.fallback)
	}

	delta := 1
	if direction == command.DeltaLess {
		delta = -1
	}
	step := sp.scale.Step(i, delta)

	return Result{
		TokenID:  sp.tokenID,
		OldValue: current,
		NewValue: step.Value,
		Property: property,
		Step:     step.Name,
	}
}

// ComputeColor adjusts one HSL component of value. Lightness and saturation
// move by 10 points and clamp to 0..100; hue moves by 30 degrees and wraps;
// contrast moves saturation by 15 and pushes lightness 5 points away from
// the midpoint. Raw #hex, rgb() and hsl() values are read as well; the result
// is always in the "H S% L%" encoding.
func ComputeColor(value string, direction command.Delta, property string) (string, error) {
	c, ok := tokens.ToHSL(value)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrentValue, value)
	}

	sign := 1.0
	if direction == command.DeltaLess {
		sign = -1
	}

	switch property {
	case synonyms.PropertyLightness:
		c.L += sign * LightnessStep
	case synonyms.PropertySaturation:
		c.S += sign * SaturationStep
	case synonyms.PropertyHue:
		c.H += sign * HueStep
	case synonyms.PropertyContrast:
		c.S += sign * ContrastSaturation
		away := 1.0
		if c.L < contrastPivot {
			away = -1
		}
		c.L += sign * away * ContrastLightness
	default:
		return "", fmt.Errorf("%w for %s", ErrUnknownProperty, property)
	}

	return c.Clamp().String(), nil
}

// Shade shifts the lightness of an HSL value by delta points, clamped. It
// backs "light blue" / "dark blue".
func Shade(value string, delta float64) (string, error) {
	c, ok := tokens.ToHSL(value)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrentValue, value)
	}
	c.L = math.Round((c.L+delta)*10) / 10
	return c.Clamp().String(), nil
}
