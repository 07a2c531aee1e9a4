// Package synonyms holds the static dictionaries that map free-form words and
// phrases to canonical names: targets, colors, radius/spacing/font-size steps,
// modes and style presets. All lookups are case-insensitive and trimmed.
//
// The tables are read-only after package initialisation. Matching logic lives
// in the consumers; this package only answers exact lookups and exposes the
// key sets for fuzzy fallback.
package synonyms

import (
	"sort"
	"strings"
)

// normalize lowercases, trims and collapses internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Normalize is the canonical form used for every lookup in this package.
func Normalize(s string) string {
	return normalize(s)
}

func lookup(table map[string]string, s string) (string, bool) {
	v, ok := table[normalize(s)]
	return v, ok
}

// Target returns the canonical target for s.
func Target(s string) (string, bool) { return lookup(targetSynonyms, s) }

// IsContextual reports whether s refers to the current selection ("this", "it").
func IsContextual(s string) bool { return contextualMarkers[normalize(s)] }

// Color returns the canonical palette name for s.
func Color(s string) (string, bool) { return lookup(colorSynonyms, s) }

// Radius returns the radius scale step for s.
func Radius(s string) (string, bool) { return lookup(radiusSynonyms, s) }

// Spacing returns the spacing scale step for s.
func Spacing(s string) (string, bool) { return lookup(spacingSynonyms, s) }

// FontSize returns the font-size scale step for s.
func FontSize(s string) (string, bool) { return lookup(fontSizeSynonyms, s) }

// Mode returns "dark", "light" or "toggle" for s.
func Mode(s string) (string, bool) { return lookup(modeSynonyms, s) }

// PresetPhrase returns the preset name for an exact casual phrase.
func PresetPhrase(s string) (string, bool) { return lookup(presetPhrases, s) }

// PresetAdjective returns the preset named by a single adjective.
func PresetAdjective(s string) (string, bool) { return lookup(presetAdjectives, s) }

// LookupPreset returns the preset with the given canonical name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[normalize(name)]
	return p, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedValues(m map[string]string) []string {
	seen := make(map[string]bool, len(m))
	out := make([]string, 0, len(m))
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// TargetKeys returns every target synonym, sorted.
func TargetKeys() []string { return sortedKeys(targetSynonyms) }

// ColorKeys returns every color synonym, sorted.
func ColorKeys() []string { return sortedKeys(colorSynonyms) }

// RadiusKeys returns every radius synonym, sorted.
func RadiusKeys() []string { return sortedKeys(radiusSynonyms) }

// SpacingKeys returns every spacing synonym, sorted.
func SpacingKeys() []string { return sortedKeys(spacingSynonyms) }

// FontSizeKeys returns every font-size synonym, sorted.
func FontSizeKeys() []string { return sortedKeys(fontSizeSynonyms) }

// ModeKeys returns every mode synonym, sorted.
func ModeKeys() []string { return sortedKeys(modeSynonyms) }

// PresetPhraseKeys returns every exact preset phrase, sorted.
func PresetPhraseKeys() []string { return sortedKeys(presetPhrases) }

// PresetAdjectiveKeys returns every preset adjective, sorted.
func PresetAdjectiveKeys() []string { return sortedKeys(presetAdjectives) }

// PresetNames returns the canonical preset names, sorted.
func PresetNames() []string { return sortedKeys(presets) }

// CanonicalTargets returns the distinct canonical target names, sorted.
func CanonicalTargets() []string { return sortedValues(targetSynonyms) }

// CanonicalColors returns the distinct canonical color names, sorted.
func CanonicalColors() []string { return sortedValues(colorSynonyms) }

// CanonicalRadii returns the distinct radius steps, sorted.
func CanonicalRadii() []string { return sortedValues(radiusSynonyms) }

// CanonicalSpacings returns the distinct spacing steps, sorted.
func CanonicalSpacings() []string { return sortedValues(spacingSynonyms) }

// CanonicalFontSizes returns the distinct font-size steps, sorted.
func CanonicalFontSizes() []string { return sortedValues(fontSizeSynonyms) }

// IsValueWord reports whether s is a known color, radius, spacing, font-size
// or mode word. It is used to judge positional guesses.
func IsValueWord(s string) bool {
	if _, ok := Color(s); ok {
		return true
	}
	if _, ok := Radius(s); ok {
		return true
	}
	if _, ok := Spacing(s); ok {
		return true
	}
	if _, ok := FontSize(s); ok {
		return true
	}
	_, ok := Mode(s)
	return ok
}
