package synonyms

// Directive is one style change inside a preset. Exactly one of Value or
// Delta is set: Value is an absolute word ("blue", "sm"), Delta is "more" or
// "less" applied to the relative property named in Property.
type Directive struct {
	Target   string `json:"target"`
	Value    string `json:"value,omitempty"`
	Property string `json:"property,omitempty"`
	Delta    string `json:"delta,omitempty"`
}

// Preset is a named bundle of style directives.
type Preset struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Directives  []Directive `json:"directives"`
}

var presets = map[string]Preset{
	"vibrant": {
		Name:        "vibrant",
		Description: "Boosted saturation and contrast so the interface pops",
		Directives: []Directive{
			{Target: "primary", Property: "saturation", Delta: "more"},
			{Target: "primary", Property: "contrast", Delta: "more"},
			{Target: "accent", Property: "saturation", Delta: "more"},
		},
	},
	"muted": {
		Name:        "muted",
		Description: "Lower saturation for a calmer, quieter look",
		Directives: []Directive{
			{Target: "primary", Property: "saturation", Delta: "less"},
			{Target: "accent", Property: "saturation", Delta: "less"},
		},
	},
	"professional": {
		Name:        "professional",
		Description: "Corporate blue with tight corners and regular spacing",
		Directives: []Directive{
			{Target: "primary", Value: "blue"},
			{Target: "radius", Value: "sm"},
			{Target: "spacing", Value: "md"},
		},
	},
	"playful": {
		Name:        "playful",
		Description: "Bright purple and pink with generous rounding",
		Directives: []Directive{
			{Target: "primary", Value: "purple"},
			{Target: "accent", Value: "pink"},
			{Target: "radius", Value: "xl"},
		},
	},
	"minimal": {
		Name:        "minimal",
		Description: "Neutral colors and square corners",
		Directives: []Directive{
			{Target: "primary", Value: "neutral"},
			{Target: "accent", Value: "gray"},
			{Target: "radius", Value: "none"},
		},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Pure white background, black text and a stronger primary",
		Directives: []Directive{
			{Target: "background", Value: "white"},
			{Target: "foreground", Value: "black"},
			{Target: "primary", Property: "contrast", Delta: "more"},
		},
	},
	"soft": {
		Name:        "soft",
		Description: "Rounder corners and a lighter, gentler primary",
		Directives: []Directive{
			{Target: "radius", Value: "xl"},
			{Target: "primary", Property: "lightness", Delta: "more"},
			{Target: "primary", Property: "saturation", Delta: "less"},
		},
	},
	"modern": {
		Name:        "modern",
		Description: "Indigo primary with large rounded corners",
		Directives: []Directive{
			{Target: "primary", Value: "indigo"},
			{Target: "radius", Value: "lg"},
		},
	},
	"warm": {
		Name:        "warm",
		Description: "Orange and amber tones",
		Directives: []Directive{
			{Target: "primary", Value: "orange"},
			{Target: "accent", Value: "amber"},
		},
	},
	"cool": {
		Name:        "cool",
		Description: "Sky and teal tones",
		Directives: []Directive{
			{Target: "primary", Value: "sky"},
			{Target: "accent", Value: "teal"},
		},
	},
	"elegant": {
		Name:        "elegant",
		Description: "Deep navy with gold accents and subtle corners",
		Directives: []Directive{
			{Target: "primary", Value: "navy"},
			{Target: "accent", Value: "amber"},
			{Target: "radius", Value: "sm"},
		},
	},
}

// presetPhrases maps exact casual phrases to preset names.
var presetPhrases = map[string]string{
	"make it pop":          "vibrant",
	"make it stand out":    "vibrant",
	"add some color":       "vibrant",
	"add some colour":      "vibrant",
	"spice it up":          "vibrant",
	"liven it up":          "vibrant",
	"tone it down":         "muted",
	"calm it down":         "muted",
	"less flashy":          "muted",
	"too loud":             "muted",
	"too bright":           "muted",
	"make it professional": "professional",
	"more professional":    "professional",
	"look professional":    "professional",
	"business like":        "professional",
	"make it playful":      "playful",
	"make it fun":          "playful",
	"more fun":             "playful",
	"keep it simple":       "minimal",
	"clean it up":          "minimal",
	"make it minimal":      "minimal",
	"less is more":         "minimal",
	"high contrast":        "high-contrast",
	"accessible":           "high-contrast",
	"make it accessible":   "high-contrast",
	"easier to read":       "high-contrast",
	"soften it":            "soft",
	"soften it up":         "soft",
	"make it soft":         "soft",
	"make it modern":       "modern",
	"modernize":            "modern",
	"modernise":            "modern",
	"warm it up":           "warm",
	"make it warm":         "warm",
	"cool it down":         "cool",
	"make it cool":         "cool",
	"make it elegant":      "elegant",
	"make it fancy":        "elegant",
}

// presetAdjectives are single words that name a preset inside longer phrases
// such as "make it look more corporate".
var presetAdjectives = map[string]string{
	"vibrant":      "vibrant",
	"vivid":        "vibrant",
	"punchy":       "vibrant",
	"lively":       "vibrant",
	"energetic":    "vibrant",
	"muted":        "muted",
	"calm":         "muted",
	"calmer":       "muted",
	"subdued":      "muted",
	"quiet":        "muted",
	"professional": "professional",
	"corporate":    "professional",
	"businesslike": "professional",
	"serious":      "professional",
	"playful":      "playful",
	"fun":          "playful",
	"friendly":     "playful",
	"whimsical":    "playful",
	"minimal":      "minimal",
	"minimalist":   "minimal",
	"clean":        "minimal",
	"simple":       "minimal",
	"accessible":   "high-contrast",
	"soft":         "soft",
	"gentle":       "soft",
	"modern":       "modern",
	"sleek":        "modern",
	"warm":         "warm",
	"cozy":         "warm",
	"cool":         "cool",
	"icy":          "cool",
	"elegant":      "elegant",
	"classy":       "elegant",
	"luxurious":    "elegant",
	"fancy":        "elegant",
}
