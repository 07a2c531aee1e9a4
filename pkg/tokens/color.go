package tokens

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHSL is returned when a token value is not an "H S% L%" triple.
var ErrInvalidHSL = errors.New("invalid HSL value")

var (
	hslTriple = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%\s+(\d+(?:\.\d+)?)%$`)
	hexColor  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbFunc   = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
	hslFunc   = regexp.MustCompile(`^hsla?\(\s*(-?\d+(?:\.\d+)?)(?:deg)?\s*[, ]\s*(\d+(?:\.\d+)?)%\s*[, ]\s*(\d+(?:\.\d+)?)%\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
)

// HSL is a color in the token encoding: hue in degrees, saturation and
// lightness in percent.
type HSL struct {
	H float64
	S float64
	L float64
}

// ParseHSL parses a token value of the form "H S% L%".
func ParseHSL(s string) (HSL, error) {
	m := hslTriple.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidHSL, s)
	}
	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)
	return HSL{H: h, S: sat, L: l}, nil
}

// String formats the color as "H S% L%" with at most one decimal place.
func (c HSL) String() string {
	return fmt.Sprintf("%s %s%% %s%%", formatComponent(c.H), formatComponent(c.S), formatComponent(c.L))
}

// Hex converts the color to "#rrggbb".
func (c HSL) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

// Clamp keeps saturation and lightness in [0,100] and wraps hue into [0,360).
func (c HSL) Clamp() HSL {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: clamp(c.S, 0, 100), L: clamp(c.L, 0, 100)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// IsHSLTriple reports whether s is in the token "H S% L%" encoding.
func IsHSLTriple(s string) bool {
	return hslTriple.MatchString(strings.TrimSpace(s))
}

// IsRawColor reports whether s is already a usable color encoding:
// "H S% L%", #hex, rgb(...) or hsl(...).
func IsRawColor(s string) bool {
	_, ok := toColorful(s)
	return ok
}

// Lightness returns the HSL lightness (0-100) of any raw color encoding.
func Lightness(s string) (float64, bool) {
	if c, err := ParseHSL(s); err == nil {
		return c.L, true
	}
	col, ok := toColorful(s)
	if !ok {
		return 0, false
	}
	_, _, l := col.Hsl()
	return l * 100, true
}

// Hex converts any raw color encoding to "#rrggbb".
func Hex(s string) (string, bool) {
	col, ok := toColorful(s)
	if !ok {
		return "", false
	}
	return col.Clamped().Hex(), true
}

// ToHSL converts any raw color encoding to the token HSL form.
func ToHSL(s string) (HSL, bool) {
	if c, err := ParseHSL(s); err == nil {
		return c, true
	}
	col, ok := toColorful(s)
	if !ok {
		return HSL{}, false
	}
	h, sat, l := col.Clamped().Hsl()
	return HSL{H: h, S: sat * 100, L: l * 100}, true
}

func toColorful(s string) (colorful.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(s))

	if c, err := ParseHSL(v); err == nil {
		return colorful.Hsl(c.H, c.S/100, c.L/100), true
	}

	if hexColor.MatchString(v) {
		col, err := colorful.Hex(v)
		return col, err == nil
	}

	if m := rgbFunc.FindStringSubmatch(v); m != nil {
		var rgb [3]float64
		for i := range rgb {
			n, _ := strconv.Atoi(m[i+1])
			if n > 255 {
				return colorful.Color{}, false
			}
			rgb[i] = float64(n) / 255
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
	}

	if m := hslFunc.FindStringSubmatch(v); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if sat > 100 || l > 100 {
			return colorful.Color{}, false
		}
		return colorful.Hsl(h, sat/100, l/100), true
	}

	return colorful.Color{}, false
}
