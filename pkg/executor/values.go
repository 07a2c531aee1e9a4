package executor

import (
	"fmt"
	"strings"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/match"
	"github.com/gnana997/uistyle/pkg/relative"
	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/synonyms"
	"github.com/gnana997/uistyle/pkg/tokens"
)

type scaleTable struct {
	lookup func(string) (string, bool)
	keys   []string
	scale  tokens.Scale
	noun   string
}

var scaleTables = map[string]scaleTable{
	tokens.RadiusTokenID:   {lookup: synonyms.Radius, keys: synonyms.RadiusKeys(), scale: tokens.RadiusScale, noun: "radius"},
	tokens.SpacingTokenID:  {lookup: synonyms.Spacing, keys: synonyms.SpacingKeys(), scale: tokens.SpacingScale, noun: "spacing"},
	tokens.FontSizeTokenID: {lookup: synonyms.FontSize, keys: synonyms.FontSizeKeys(), scale: tokens.FontSizeScale, noun: "font size"},
}

var colorKeys = synonyms.ColorKeys()

// shadeShifts are the lightness offsets for "light blue", "dark blue", ...
var shadeShifts = map[string]float64{
	"light":  20,
	"pale":   20,
	"bright": 10,
	"dark":   -20,
	"deep":   -20,
}

// resolveValue turns a value word into a token value for the resolved
// target. The returned note is non-empty when the word was fuzzy-matched.
// A bare shade word ("dark", "pale") shifts the lightness of current.
func resolveValue(rc resolve.ResolvedContext, raw, current string) (value, note string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	switch rc.Category {
	case resolve.CategorySpacing, resolve.CategoryTypography:
		return resolveScaleValue(tableFor(rc.TokenID), raw)
	}
	if shift, ok := shadeShifts[synonyms.Normalize(raw)]; ok {
		shaded, err := relative.Shade(current, shift)
		return shaded, "", err == nil
	}
	return resolveColor(raw)
}

func tableFor(tokenID string) scaleTable {
	if t, ok := scaleTables[tokenID]; ok {
		return t
	}
	return scaleTables[tokens.RadiusTokenID]
}

func resolveScaleValue(t scaleTable, raw string) (string, string, bool) {
	if step, ok := t.lookup(raw); ok {
		v, found := t.scale.Value(step)
		return v, "", found
	}

	if m := match.FindBestMatch(raw, t.keys, match.DefaultOptions()); m != nil {
		if step, ok := t.lookup(m.Candidate); ok {
			v, found := t.scale.Value(step)
			if m.Exact {
				return v, "", found
			}
			return v, interpreted(raw, m.Candidate), found
		}
	}

	if tokens.IsLength(raw) {
		return strings.TrimSpace(raw), "", true
	}
	return "", "", false
}

// resolveColor tries the palette synonyms, shade modifiers, fuzzy palette
// matching and finally raw color encodings, which are kept verbatim.
func resolveColor(raw string) (string, string, bool) {
	n := synonyms.Normalize(raw)

	if name, ok := synonyms.Color(n); ok {
		if v, ok := tokens.ColorValues[name]; ok {
			return v, "", true
		}
	}

	if mod, base, found := strings.Cut(n, " "); found {
		if shift, ok := shadeShifts[mod]; ok {
			if v, note, ok := resolveColor(base); ok {
				if shaded, err := relative.Shade(v, shift); err == nil {
					return shaded, note, true
				}
			}
		}
	}

	if !strings.ContainsAny(n, "#(%0123456789") {
		if m := match.FindBestMatch(n, colorKeys, match.DefaultOptions()); m != nil {
			if name, ok := synonyms.Color(m.Candidate); ok {
				return tokens.ColorValues[name], interpreted(raw, name), true
			}
		}
	}

	if tokens.IsRawColor(raw) {
		return strings.TrimSpace(raw), "", true
	}
	return "", "", false
}

func suggestValues(rc resolve.ResolvedContext, raw string) []string {
	switch rc.Category {
	case resolve.CategorySpacing, resolve.CategoryTypography:
		return suggest(raw, tableFor(rc.TokenID).scale.Names())
	}
	return suggest(raw, synonyms.CanonicalColors())
}

func suggest(input string, candidates []string) []string {
	return match.Suggest(input, candidates, 3)
}

func interpreted(from, to string) string {
	return fmt.Sprintf("Interpreted %q as %q", from, to)
}

func describeTarget(rc resolve.ResolvedContext) string {
	if rc.Scope == resolve.ScopeComponent {
		return "the selected " + rc.Target
	}
	return rc.Target
}

func describeCategory(rc resolve.ResolvedContext) string {
	switch rc.Category {
	case resolve.CategorySpacing, resolve.CategoryTypography:
		return tableFor(rc.TokenID).noun
	}
	return "color"
}

func describeValue(raw, value string) string {
	if synonyms.Normalize(raw) == value {
		return value
	}
	return fmt.Sprintf("%s (%s)", raw, value)
}

var propertyNouns = map[string]string{
	synonyms.PropertyRounded:    "corner radius",
	synonyms.PropertySpacing:    "spacing",
	synonyms.PropertySize:       "font size",
	synonyms.PropertyLightness:  "lightness",
	synonyms.PropertySaturation: "saturation",
	synonyms.PropertyHue:        "hue",
	synonyms.PropertyContrast:   "contrast",
}

func directionVerb(d command.Delta) string {
	if d == command.DeltaLess {
		return "Decreased"
	}
	return "Increased"
}

func ofTarget(rc resolve.ResolvedContext, out relative.Result) string {
	noun := propertyNouns[out.Property]
	if out.TokenID != rc.TokenID {
		return noun
	}
	return noun + " of " + describeTarget(rc)
}

func visibilityGuidance(in command.ParsedIntent) ExecutionResult {
	verb := "Showing"
	if in.Value == "hide" {
		verb = "Hiding"
	}
	target := in.Target
	if target == "" {
		target = "that"
	}
	return succeed(fmt.Sprintf(
		"%s %q changes the page structure, not the theme. Use the component tree in the page editor to %s it.",
		verb, target, in.Value))
}

func layoutGuidance(in command.ParsedIntent) ExecutionResult {
	var what string
	switch in.Target {
	case "columns":
		what = in.Value + " columns"
	case "sidebar":
		what = "the sidebar on the " + in.Value
	default:
		what = "a " + in.Value + " layout"
		if in.Value == "" {
			what = "layout changes"
		}
	}
	return succeed(fmt.Sprintf(
		"To get %s, use the layout panel in the page editor. Style commands only change theme tokens.", what))
}
