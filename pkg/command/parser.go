package command

import (
	"regexp"
	"strings"

	"github.com/gnana997/uistyle/pkg/synonyms"
	"github.com/gnana997/uistyle/pkg/tokens"
)

const (
	// minConfidence is the floor an extraction must clear; extractions at or
	// below it are skipped and the cascade moves on.
	minConfidence = 0.3

	presetPhraseConfidence = 0.95

	// unresolvedRelativeConfidence is used for "more X" where X is not a
	// known relative word. It clears the floor so the executor can report
	// the failed relative change instead of "not understood".
	unresolvedRelativeConfidence = 0.5
)

type pattern struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) ParsedIntent
}

// Shared fragments.
const (
	modifiers = `(?:(?:a|bit|little|lot|tad|much|slightly|way|even|somewhat|very|really|super|extra) )*`
	shade     = `(?:(?:light|dark|pale|deep|bright) )?`

	// valueToken is one value at the end of a phrase: a word (optionally
	// shaded), a CSS color function or an "H S% L%" triple.
	valueToken = `(` + shade + `\S+|(?:rgba?|hsla?)\([^)]*\)|-?\d+(?:\.\d+)? \d+(?:\.\d+)?% \d+(?:\.\d+)?%)`
)

// patterns is evaluated top to bottom and the first extraction above the
// confidence floor wins. Keep specific phrasings above loose ones.
var patterns = []pattern{
	{
		name:    "undo",
		re:      regexp.MustCompile(`^(?:undo|undo (?:that|it|the last change|last change|last)|revert(?: that| it)?|go back|take (?:that|it) back)$`),
		extract: fixed(TypeUndo),
	},
	{
		name:    "redo",
		re:      regexp.MustCompile(`^(?:redo|redo (?:that|it|the last change|last change|last)|do (?:that|it) again)$`),
		extract: fixed(TypeRedo),
	},
	{
		name: "mode-toggle",
		re:   regexp.MustCompile(`^(?:toggle|switch|flip|invert|swap)(?: the)?(?: (?:dark|light|color|colour|display))?(?: (?:mode|modes|theme|themes))?$`),
		extract: func(m []string) ParsedIntent {
			return modeIntent("toggle", 0.9)
		},
	},
	{
		name: "mode-named",
		re:   regexp.MustCompile(`^(?:(?:switch|change|go|set|turn|put|use|enable|activate|i want|give me)(?: it| the app| the theme| the mode| everything)?(?: to| into| on)? )?(\w+) (?:mode|theme)$`),
		extract: func(m []string) ParsedIntent {
			return modeIntent(m[1], 0.9)
		},
	},
	{
		name: "mode-bare",
		re:   regexp.MustCompile(`^(?:(?:switch|change|go|set|turn|put|make)(?: it| the app| the theme| everything)?(?: to| into)? )?(dark|light|night|day)$`),
		extract: func(m []string) ParsedIntent {
			return modeIntent(m[1], 0.85)
		},
	},
	{
		name:    "preset-adjective",
		re:      regexp.MustCompile(`^(?:(?:make|style) (?:it|this|everything|the (?:ui|app|site|page|design|theme))(?: look| feel)? |i want (?:it|this|something) |(?:go|look|feel|be) )?` + modifiers + `(more )?([a-z]+(?:-[a-z]+)?)(?: (?:look|feel|style|theme|vibe|design))?$`),
		extract: presetAdjectiveIntent,
	},
	{
		name: "layout-columns",
		re:   regexp.MustCompile(`^(?:(?:use|make it|switch to|change to|give me|show|set|i want|with) )?(?:a |an )?(\d+|one|two|three|four|five|six)[ -]col(?:umn)?s?(?: (?:layout|grid|view))?$`),
		extract: func(m []string) ParsedIntent {
			return ParsedIntent{Type: TypeLayout, Target: "columns", Value: numberWord(m[1]), Confidence: 0.9}
		},
	},
	{
		name: "layout-sidebar",
		re:   regexp.MustCompile(`^(?:(?:move|put|place|show|dock|i want|switch) )?(?:the |a )?(?:sidebar|side bar|nav|navigation|menu)(?: on| to)?(?: the)? (left|right)(?: side| hand side)?$`),
		extract: func(m []string) ParsedIntent {
			return ParsedIntent{Type: TypeLayout, Target: "sidebar", Value: m[1], Confidence: 0.9}
		},
	},
	{
		name: "layout-kind",
		re:   regexp.MustCompile(`^(?:(?:use|make it|switch to|change to|give me|show|i want|try)(?: a| an| the)? )?(grid|dashboard|list|stacked|single column|split|masonry|card|cards|table)(?: layout| view)$`),
		extract: func(m []string) ParsedIntent {
			return ParsedIntent{Type: TypeLayout, Target: "layout", Value: m[1], Confidence: 0.85}
		},
	},
	{
		name: "make-more-less",
		re:   regexp.MustCompile(`^(?:make|have|get) (.+?) ` + modifiers + `(more|less) (.+)$`),
		extract: func(m []string) ParsedIntent {
			return relativeIntent(m[3], m[2], m[1], 0.85)
		},
	},
	{
		name: "more-less",
		re:   regexp.MustCompile(`^(?:(?:add|use|with|i want|i'd like|give it|give me|need) )?` + modifiers + `(more|less|fewer) (.+)$`),
		extract: func(m []string) ParsedIntent {
			return relativeIntent(m[2], m[1], "", 0.8)
		},
	},
	{
		name:    "adjust",
		re:      regexp.MustCompile(`^(increase|decrease|raise|lower|reduce|boost|bump up|bump|turn up|turn down|tone down|amp up|dial up|dial down|up|cut) (?:the )?(.+)$`),
		extract: adjustIntent,
	},
	{
		name:    "verb-adjust",
		re:      regexp.MustCompile(`^(darken|lighten|brighten|dim|saturate|desaturate|sharpen|round off|round|enlarge|shrink|tighten|loosen|space out|spread out|condense|embolden)(?: (.+))?$`),
		extract: verbIntent,
	},
	{
		name:    "comparative",
		re:      regexp.MustCompile(`^(?:(?:make|get|have) (.+?) )?` + modifiers + `([a-z]+er)(?: (.+))?$`),
		extract: comparativeIntent,
	},
	{
		name: "change-to",
		re:   regexp.MustCompile(`^(?:change|set|switch|turn|update|paint|color|colour|make) (.+?) (?:to|into)(?: be)? (.+)$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.9)
		},
	},
	{
		name: "should-be",
		re:   regexp.MustCompile(`^(.+?) (?:should|must|could|needs to|has to|ought to) be (.+)$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.9)
		},
	},
	{
		name: "want-to-be",
		re:   regexp.MustCompile(`^(?:i want|i'd like|i would like) (.+?) to be (.+)$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.85)
		},
	},
	{
		name: "i-want",
		re:   regexp.MustCompile(`^(?:i want|i'd like|i would like|give me|let's have|lets have|let's use|use) (.+) ` + valueToken + `$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.8)
		},
	},
	{
		name: "assign",
		re:   regexp.MustCompile(`^([^=:]+?) ?[=:] ?(.+)$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.9)
		},
	},
	{
		name: "make-xy",
		re:   regexp.MustCompile(`^(?:make|paint|color|colour|turn|set|have) (.+?) (?:(?:look|be|in|a|an) )*` + valueToken + `$`),
		extract: func(m []string) ParsedIntent {
			return styleIntent(m[1], m[2], 0.8)
		},
	},
	{
		name: "dont-need",
		re:   regexp.MustCompile(`^i (?:don't|dont|do not) (?:need|want|like)(?: the| a| an| any)? (.+)$`),
		extract: func(m []string) ParsedIntent {
			return ParsedIntent{Type: TypeVisibility, Target: cleanTarget(m[1]), Value: "hide", Confidence: 0.85}
		},
	},
	{
		name:    "visibility",
		re:      regexp.MustCompile(`^(hide|show|remove|add|delete|display|get rid of|drop|include|unhide|reveal)(?: the| a| an| some| my)? (.+)$`),
		extract: visibilityIntent,
	},
	{
		name:    "bare-color",
		re:      regexp.MustCompile(`^(?:(?:go|use|try|pick|choose|something) )?([a-z]+|#[0-9a-f]{3}|#[0-9a-f]{6})$`),
		extract: colorOnlyIntent,
	},
	{
		name:    "shade-color",
		re:      regexp.MustCompile(`^((?:light|dark|pale|deep|bright) [a-z]+)$`),
		extract: colorOnlyIntent,
	},
	{
		name: "color-target",
		re:   regexp.MustCompile(`^(` + shade + `[a-z]+|#[0-9a-f]{3}|#[0-9a-f]{6}) (.+)$`),
		extract: func(m []string) ParsedIntent {
			if !isColorWord(m[1]) {
				return ParsedIntent{}
			}
			return styleIntent(m[2], m[1], 0.7)
		},
	},
}

var (
	trailingPunct = regexp.MustCompile(`[.!?,;]+$`)
	politePrefix  = regexp.MustCompile(`^(?:(?:please|pls|kindly|can you|could you|would you) )+`)
	politeSuffix  = regexp.MustCompile(`(?: (?:please|pls|thanks|thank you))+$`)
	leadingFiller = regexp.MustCompile(`^(?:(?:the|my|our|all|a|an|every|each|some) )+`)
	particles     = regexp.MustCompile(`^(?:(?:up|out|off|down|a|bit|little|slightly|things)(?: |$))+`)
	connector     = regexp.MustCompile(`^(?:on|for|of|to|in|at) `)
	deltaPrefix   = regexp.MustCompile(`^` + modifiers + `(more|less|fewer) (.+)$`)
	ofTarget      = regexp.MustCompile(`^(.+?) (?:of|on|for|in) (.+)$`)
	selectedRef   = regexp.MustCompile(`^(?:this|that|the selected|selected|current) (.+)$`)
)

// Parse classifies text into an intent. It never fails: input that matches
// nothing comes back as TypeUnknown with zero confidence.
func Parse(text string) ParsedIntent {
	in := parseNormalized(normalize(text))
	in.Raw = text
	return in
}

// normalize lowercases, collapses whitespace and drops politeness and
// trailing punctuation.
func normalize(text string) string {
	s := strings.ReplaceAll(synonyms.Normalize(text), "’", "'")
	s = trailingPunct.ReplaceAllString(s, "")
	s = politePrefix.ReplaceAllString(s, "")
	s = politeSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parseNormalized(s string) ParsedIntent {
	if s == "" {
		return ParsedIntent{Type: TypeUnknown}
	}

	if name, ok := synonyms.PresetPhrase(s); ok {
		return ParsedIntent{Type: TypePreset, Value: name, Confidence: presetPhraseConfidence}
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		in := p.extract(m)
		if in.Confidence <= minConfidence {
			continue
		}
		return in
	}

	return fallback(s)
}

// fallback applies positional heuristics: "X Y" and "X to/is Y". A guess is
// only made when one side is recognisable, so gibberish stays unknown.
func fallback(s string) ParsedIntent {
	words := strings.Fields(s)
	switch {
	case len(words) == 2 && plausiblePair(words[0], words[1]):
		return styleIntent(words[0], words[1], 0.4)
	case len(words) == 3 && (words[1] == "to" || words[1] == "is") && plausiblePair(words[0], words[2]):
		return styleIntent(words[0], words[2], 0.5)
	}
	return ParsedIntent{Type: TypeUnknown}
}

func plausiblePair(target, value string) bool {
	if _, ok := synonyms.Target(target); ok {
		return true
	}
	return synonyms.IsValueWord(value) || tokens.IsRawColor(value)
}

func fixed(t IntentType) func([]string) ParsedIntent {
	return func([]string) ParsedIntent {
		return ParsedIntent{Type: t, Confidence: 0.95}
	}
}

func modeIntent(word string, conf float64) ParsedIntent {
	mode, ok := synonyms.Mode(word)
	if !ok {
		return ParsedIntent{}
	}
	return ParsedIntent{Type: TypeMode, Target: "mode", Value: mode, Confidence: conf}
}

// presetAdjectiveIntent maps "playful" or "more corporate" to a preset.
// "more muted" and other relative words stay relative adjustments.
func presetAdjectiveIntent(m []string) ParsedIntent {
	word := m[2]
	if m[1] != "" {
		if _, ok := synonyms.Relative(word); ok {
			return relativeIntent(word, "more", "", 0.8)
		}
	}
	name, ok := synonyms.PresetAdjective(word)
	if !ok {
		p, found := synonyms.LookupPreset(word)
		if !found {
			return ParsedIntent{}
		}
		name = p.Name
	}
	return ParsedIntent{Type: TypePreset, Value: name, Confidence: 0.85}
}

// styleIntent builds an absolute style intent, falling through to a
// relative one when the value is "more X" or a comparative.
func styleIntent(target, value string, conf float64) ParsedIntent {
	target = cleanTarget(target)
	value = strings.TrimSpace(leadingFiller.ReplaceAllString(value, ""))

	if shouldSwap(target, value) {
		target, value = value, target
	}

	if m := deltaPrefix.FindStringSubmatch(value); m != nil {
		return relativeIntent(m[2], m[1], target, conf)
	}

	in := ParsedIntent{Type: TypeStyle, Target: target, Value: value, Confidence: conf}
	if cmp, ok := synonyms.Comparative(value); ok {
		in.Value, in.Delta = cmp.Value, Delta(cmp.Delta)
	}
	return withScope(in)
}

// relativeIntent builds a more/less intent. rest holds the relative word and
// optionally the target ("padding on the cards", "primary saturation").
func relativeIntent(rest, deltaWord, target string, conf float64) ParsedIntent {
	d, _ := ParseDelta(deltaWord)
	value, tail := splitRelative(rest)
	if target == "" {
		target = tail
	}

	in := ParsedIntent{Type: TypeStyle, Target: cleanTarget(target), Value: value, Delta: d, Confidence: conf}
	if _, ok := synonyms.Relative(value); !ok {
		in.Confidence = unresolvedRelativeConfidence
	}
	return withScope(in)
}

var adjustDirections = map[string]Delta{
	"increase":  DeltaMore, "raise": DeltaMore, "boost": DeltaMore, "bump": DeltaMore,
	"bump up":   DeltaMore, "turn up": DeltaMore, "amp up": DeltaMore, "dial up": DeltaMore,
	"up":        DeltaMore,
	"decrease":  DeltaLess, "lower": DeltaLess, "reduce": DeltaLess, "turn down": DeltaLess,
	"tone down": DeltaLess, "dial down": DeltaLess, "cut": DeltaLess,
}

func adjustIntent(m []string) ParsedIntent {
	rest, target := m[2], ""
	if of := ofTarget.FindStringSubmatch(rest); of != nil {
		if _, ok := relativeLookup(of[1]); ok {
			rest, target = of[1], of[2]
		}
	}
	return relativeIntent(rest, string(adjustDirections[m[1]]), target, 0.85)
}

type verbAdjustment struct {
	property string
	delta    Delta
}

var adjustmentVerbs = map[string]verbAdjustment{
	"darken":     {synonyms.PropertyLightness, DeltaLess},
	"dim":        {synonyms.PropertyLightness, DeltaLess},
	"lighten":    {synonyms.PropertyLightness, DeltaMore},
	"brighten":   {synonyms.PropertyLightness, DeltaMore},
	"saturate":   {synonyms.PropertySaturation, DeltaMore},
	"desaturate": {synonyms.PropertySaturation, DeltaLess},
	"embolden":   {synonyms.PropertyContrast, DeltaMore},
	"sharpen":    {synonyms.PropertyRounded, DeltaLess},
	"round":      {synonyms.PropertyRounded, DeltaMore},
	"round off":  {synonyms.PropertyRounded, DeltaMore},
	"enlarge":    {synonyms.PropertySize, DeltaMore},
	"shrink":     {synonyms.PropertySize, DeltaLess},
	"tighten":    {synonyms.PropertySpacing, DeltaLess},
	"condense":   {synonyms.PropertySpacing, DeltaLess},
	"loosen":     {synonyms.PropertySpacing, DeltaMore},
	"space out":  {synonyms.PropertySpacing, DeltaMore},
	"spread out": {synonyms.PropertySpacing, DeltaMore},
}

func verbIntent(m []string) ParsedIntent {
	adj := adjustmentVerbs[m[1]]
	target := particles.ReplaceAllString(m[2], "")
	return withScope(ParsedIntent{
		Type:       TypeStyle,
		Target:     cleanTarget(target),
		Value:      adj.property,
		Delta:      adj.delta,
		Confidence: 0.85,
	})
}

func comparativeIntent(m []string) ParsedIntent {
	cmp, ok := synonyms.Comparative(m[2])
	if !ok {
		return ParsedIntent{Type: TypeStyle, Value: m[2], Confidence: minConfidence}
	}
	target := m[1]
	if target == "" {
		target = m[3]
	}
	return withScope(ParsedIntent{
		Type:       TypeStyle,
		Target:     cleanTarget(target),
		Value:      cmp.Value,
		Delta:      Delta(cmp.Delta),
		Confidence: 0.8,
	})
}

func visibilityIntent(m []string) ParsedIntent {
	value := "show"
	switch m[1] {
	case "hide", "remove", "delete", "get rid of", "drop":
		value = "hide"
	}
	return ParsedIntent{Type: TypeVisibility, Target: cleanTarget(m[2]), Value: value, Confidence: 0.85}
}

func colorOnlyIntent(m []string) ParsedIntent {
	if !isColorWord(m[1]) {
		return ParsedIntent{}
	}
	return ParsedIntent{Type: TypeStyle, Value: m[1], Confidence: 0.75}
}

// cleanTarget strips leading connectors and articles.
func cleanTarget(s string) string {
	s = strings.TrimSpace(s)
	s = connector.ReplaceAllString(s, "")
	return strings.TrimSpace(leadingFiller.ReplaceAllString(s, ""))
}

var globalTargets = map[string]bool{
	"everything": true, "whole thing": true, "whole app": true, "entire app": true,
	"everywhere": true, "globally": true, "all": true,
}

// withScope marks contextual targets ("it", "this button") as selection
// scoped and "everything" phrasings as global with no explicit target.
func withScope(in ParsedIntent) ParsedIntent {
	switch {
	case synonyms.IsContextual(in.Target):
		in.Scope = ScopeSelected
	case globalTargets[in.Target]:
		in.Target, in.Scope = "", ScopeGlobal
	default:
		if m := selectedRef.FindStringSubmatch(in.Target); m != nil {
			in.Target, in.Scope = m[1], ScopeSelected
		}
	}
	return in
}

// splitRelative separates a relative word from a target in either order:
// "padding on the cards" or "primary saturation".
func splitRelative(rest string) (value, target string) {
	words := strings.Fields(rest)
	for n := len(words); n >= 1; n-- {
		if v, ok := relativeLookup(strings.Join(words[:n], " ")); ok {
			return v, strings.Join(words[n:], " ")
		}
	}
	for n := len(words) - 1; n >= 1; n-- {
		if v, ok := relativeLookup(strings.Join(words[len(words)-n:], " ")); ok {
			return v, strings.Join(words[:len(words)-n], " ")
		}
	}
	return strings.TrimSpace(rest), ""
}

// relativeLookup finds a relative word, accepting a plural "s".
func relativeLookup(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if _, ok := synonyms.Relative(word); ok {
		return word, true
	}
	if singular := strings.TrimSuffix(word, "s"); singular != word {
		if _, ok := synonyms.Relative(singular); ok {
			return singular, true
		}
	}
	return "", false
}

func shouldSwap(target, value string) bool {
	if _, ok := synonyms.Target(target); ok {
		return false
	}
	if _, ok := synonyms.Target(value); !ok {
		return false
	}
	return synonyms.IsValueWord(target) || isColorWord(target)
}

// isColorWord reports whether s names a color: a palette word, a raw
// encoding or a "light/dark <palette word>" pair.
func isColorWord(s string) bool {
	if _, ok := synonyms.Color(s); ok {
		return true
	}
	if tokens.IsRawColor(s) {
		return true
	}
	if mod, base, ok := strings.Cut(s, " "); ok {
		switch mod {
		case "light", "dark", "pale", "deep", "bright":
			_, isColor := synonyms.Color(base)
			return isColor
		}
	}
	return false
}

var numberWords = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5", "six": "6",
}

func numberWord(s string) string {
	if n, ok := numberWords[s]; ok {
		return n
	}
	return s
}
