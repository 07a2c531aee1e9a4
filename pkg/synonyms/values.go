package synonyms

// colorSynonyms maps color words to canonical palette names.
var colorSynonyms = map[string]string{
	"red":     "red",
	"crimson": "red",
	"scarlet": "red",
	"cherry":  "red",
	"ruby":    "red",
	"maroon":  "red",
	"wine":    "red",

	"orange":    "orange",
	"tangerine": "orange",
	"coral":     "orange",
	"peach":     "orange",
	"rust":      "orange",

	"amber":  "amber",
	"gold":   "amber",
	"golden": "amber",
	"honey":  "amber",

	"yellow":  "yellow",
	"lemon":   "yellow",
	"mustard": "yellow",
	"sunny":   "yellow",

	"lime":       "lime",
	"chartreuse": "lime",

	"green":  "green",
	"forest": "green",
	"olive":  "green",
	"grass":  "green",
	"sage":   "green",
	"mint":   "emerald",

	"emerald": "emerald",
	"jade":    "emerald",

	"teal":      "teal",
	"turquoise": "teal",
	"aqua":      "cyan",

	"cyan": "cyan",

	"sky":       "sky",
	"sky blue":  "sky",
	"baby blue": "sky",
	"azure":     "sky",

	"blue":     "blue",
	"cobalt":   "blue",
	"royal":    "blue",
	"ocean":    "blue",
	"sapphire": "blue",
	"navy":     "navy",

	"indigo": "indigo",

	"violet":   "violet",
	"lavender": "violet",

	"purple":  "purple",
	"plum":    "purple",
	"grape":   "purple",
	"magenta": "fuchsia",

	"fuchsia": "fuchsia",

	"pink":     "pink",
	"hot pink": "pink",
	"blush":    "pink",
	"salmon":   "pink",

	"rose": "rose",

	"brown":     "brown",
	"chocolate": "brown",
	"coffee":    "brown",
	"tan":       "brown",

	"slate":    "slate",
	"gray":     "gray",
	"grey":     "gray",
	"silver":   "gray",
	"charcoal": "zinc",
	"zinc":     "zinc",
	"neutral":  "neutral",
	"stone":    "stone",
	"beige":    "stone",

	"white": "white",
	"snow":  "white",
	"ivory": "white",
	"cream": "white",

	"black": "black",
	"ink":   "black",
	"jet":   "black",
}

// radiusSynonyms maps corner-rounding words to radius scale steps.
var radiusSynonyms = map[string]string{
	"none":    "none",
	"no":      "none",
	"zero":    "none",
	"square":  "none",
	"squared": "none",
	"sharp":   "none",
	"flat":    "none",
	"boxy":    "none",

	"sm":               "sm",
	"small":            "sm",
	"slight":           "sm",
	"slightly rounded": "sm",
	"subtle":           "sm",
	"tight":            "sm",

	"md":      "md",
	"medium":  "md",
	"normal":  "md",
	"default": "md",
	"regular": "md",

	"lg":      "lg",
	"large":   "lg",
	"round":   "lg",
	"rounded": "lg",
	"soft":    "lg",

	"xl":             "xl",
	"extra large":    "xl",
	"very rounded":   "xl",
	"really rounded": "xl",
	"curvy":          "xl",

	"full":     "full",
	"pill":     "full",
	"pills":    "full",
	"circle":   "full",
	"circular": "full",
	"max":      "full",
	"maximum":  "full",
}

// spacingSynonyms maps density words to spacing scale steps.
var spacingSynonyms = map[string]string{
	"xs":          "xs",
	"tiny":        "xs",
	"compact":     "xs",
	"dense":       "xs",
	"sm":          "sm",
	"small":       "sm",
	"tight":       "sm",
	"cozy":        "sm",
	"md":          "md",
	"medium":      "md",
	"normal":      "md",
	"default":     "md",
	"comfortable": "md",
	"lg":          "lg",
	"large":       "lg",
	"roomy":       "lg",
	"relaxed":     "lg",
	"xl":          "xl",
	"spacious":    "xl",
	"airy":        "xl",
	"2xl":         "2xl",
	"huge":        "2xl",
	"loose":       "2xl",
}

// fontSizeSynonyms maps size words to font-size scale steps.
var fontSizeSynonyms = map[string]string{
	"xs":          "xs",
	"tiny":        "xs",
	"sm":          "sm",
	"small":       "sm",
	"md":          "md",
	"base":        "md",
	"medium":      "md",
	"normal":      "md",
	"default":     "md",
	"regular":     "md",
	"lg":          "lg",
	"large":       "lg",
	"big":         "lg",
	"xl":          "xl",
	"extra large": "xl",
	"bigger":      "xl",
	"2xl":         "2xl",
	"huge":        "2xl",
	"3xl":         "3xl",
	"giant":       "3xl",
	"massive":     "3xl",
}

// modeSynonyms maps appearance words to dark, light or toggle.
var modeSynonyms = map[string]string{
	"dark":       "dark",
	"dark mode":  "dark",
	"night":      "dark",
	"night mode": "dark",
	"dim":        "dark",
	"black":      "dark",
	"dark theme": "dark",

	"light":       "light",
	"light mode":  "light",
	"day":         "light",
	"day mode":    "light",
	"bright":      "light",
	"white":       "light",
	"light theme": "light",

	"toggle":      "toggle",
	"switch":      "toggle",
	"flip":        "toggle",
	"invert":      "toggle",
	"other":       "toggle",
	"toggle mode": "toggle",
}
