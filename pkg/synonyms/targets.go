package synonyms

// targetSynonyms maps free-form words and phrases to canonical target names.
// Common misspellings are listed explicitly so they resolve on the fast path.
var targetSynonyms = map[string]string{
	// background
	"background":        "background",
	"backgrounds":       "background",
	"background color":  "background",
	"background colour": "background",
	"bg":                "background",
	"back ground":       "background",
	"backround":         "background",
	"backgorund":        "background",
	"bakground":         "background",
	"page":              "background",
	"page background":   "background",
	"canvas":            "background",
	"base":              "background",
	"app background":    "background",
	"body":              "background",
	"surface":           "background",
	"backdrop":          "background",

	// foreground
	"foreground":  "foreground",
	"fg":          "foreground",
	"text":        "foreground",
	"text color":  "foreground",
	"text colour": "foreground",
	"font color":  "foreground",
	"font colour": "foreground",
	"body text":   "foreground",
	"copy":        "foreground",
	"forground":   "foreground",
	"foregound":   "foreground",
	"writing":     "foreground",

	// primary
	"primary":         "primary",
	"primary color":   "primary",
	"primary colour":  "primary",
	"main":            "primary",
	"main color":      "primary",
	"main colour":     "primary",
	"brand":           "primary",
	"brand color":     "primary",
	"brand colour":    "primary",
	"theme color":     "primary",
	"theme colour":    "primary",
	"button":          "primary",
	"buttons":         "primary",
	"button color":    "primary",
	"primary button":  "primary",
	"primary buttons": "primary",
	"cta":             "primary",
	"call to action":  "primary",
	"link":            "primary",
	"links":           "primary",
	"primay":          "primary",
	"pirmary":         "primary",
	"primery":         "primary",
	"prmary":          "primary",
	"highlight color": "primary",
	"key color":       "primary",

	// secondary
	"secondary":         "secondary",
	"secondary color":   "secondary",
	"secondary colour":  "secondary",
	"secondary button":  "secondary",
	"secondary buttons": "secondary",
	"second color":      "secondary",
	"alt":               "secondary",
	"alternate":         "secondary",
	"secundary":         "secondary",
	"seconday":          "secondary",
	"secodary":          "secondary",

	// accent
	"accent":        "accent",
	"accents":       "accent",
	"accent color":  "accent",
	"accent colour": "accent",
	"highlight":     "accent",
	"highlights":    "accent",
	"hover":         "accent",
	"hover color":   "accent",
	"accnet":        "accent",
	"acent":         "accent",
	"accant":        "accent",

	// muted
	"muted":          "muted",
	"muted color":    "muted",
	"subtle":         "muted",
	"subdued":        "muted",
	"disabled":       "muted",
	"placeholder":    "muted",
	"muted text":     "muted",
	"secondary text": "muted",
	"mutted":         "muted",

	// card
	"card":            "card",
	"cards":           "card",
	"card background": "card",
	"card color":      "card",
	"panel":           "card",
	"panels":          "card",
	"tile":            "card",
	"tiles":           "card",
	"box":             "card",
	"boxes":           "card",
	"container":       "card",
	"crad":            "card",
	"carde":           "card",

	// popover
	"popover":   "popover",
	"popovers":  "popover",
	"popup":     "popover",
	"popups":    "popover",
	"pop up":    "popover",
	"dropdown":  "popover",
	"dropdowns": "popover",
	"menu":      "popover",
	"menus":     "popover",
	"tooltip":   "popover",
	"tooltips":  "popover",
	"modal":     "popover",
	"dialog":    "popover",
	"popovr":    "popover",

	// border
	"border":        "border",
	"borders":       "border",
	"border color":  "border",
	"border colour": "border",
	"outline":       "border",
	"outlines":      "border",
	"divider":       "border",
	"dividers":      "border",
	"lines":         "border",
	"stroke":        "border",
	"boarder":       "border",
	"boader":        "border",
	"bordr":         "border",

	// input
	"input":       "input",
	"inputs":      "input",
	"input field": "input",
	"fields":      "input",
	"field":       "input",
	"form":        "input",
	"forms":       "input",
	"textbox":     "input",
	"text field":  "input",
	"imput":       "input",

	// ring
	"ring":          "ring",
	"focus":         "ring",
	"focus ring":    "ring",
	"focus color":   "ring",
	"focus outline": "ring",

	// destructive
	"destructive":   "destructive",
	"danger":        "destructive",
	"error":         "destructive",
	"errors":        "destructive",
	"warning":       "destructive",
	"delete button": "destructive",
	"alert":         "destructive",
	"alerts":        "destructive",
	"destuctive":    "destructive",
	"destrutive":    "destructive",

	// sidebar
	"sidebar":            "sidebar",
	"side bar":           "sidebar",
	"sidebar background": "sidebar",
	"nav":                "sidebar",
	"navigation":         "sidebar",
	"side nav":           "sidebar",
	"sidenav":            "sidebar",
	"drawer":             "sidebar",
	"sidbar":             "sidebar",
	"sidebr":             "sidebar",

	// chart
	"chart":         "chart",
	"charts":        "chart",
	"chart color":   "chart",
	"graph":         "chart",
	"graphs":        "chart",
	"data viz":      "chart",
	"visualization": "chart",

	// radius
	"radius":         "radius",
	"border radius":  "radius",
	"corner":         "radius",
	"corners":        "radius",
	"rounding":       "radius",
	"roundness":      "radius",
	"corner radius":  "radius",
	"curves":         "radius",
	"raduis":         "radius",
	"radious":        "radius",
	"corners radius": "radius",

	// spacing
	"spacing":    "spacing",
	"space":      "spacing",
	"padding":    "spacing",
	"margin":     "spacing",
	"margins":    "spacing",
	"gap":        "spacing",
	"gaps":       "spacing",
	"gutter":     "spacing",
	"density":    "spacing",
	"whitespace": "spacing",
	"spaceing":   "spacing",
	"spacng":     "spacing",

	// font
	"font":       "font",
	"fonts":      "font",
	"font size":  "font",
	"text size":  "font",
	"type":       "font",
	"typography": "font",
	"letters":    "font",
	"heading":    "font",
	"headings":   "font",
	"fotn":       "font",

	// mode
	"mode":         "mode",
	"theme":        "mode",
	"color mode":   "mode",
	"colour mode":  "mode",
	"appearance":   "mode",
	"scheme":       "mode",
	"color scheme": "mode",

	// layout
	"layout":      "layout",
	"grid":        "layout",
	"columns":     "layout",
	"structure":   "layout",
	"arrangement": "layout",
	"lyout":       "layout",
}

// contextualMarkers refer to the current selection rather than a named target.
var contextualMarkers = map[string]bool{
	"this":      true,
	"it":        true,
	"that":      true,
	"these":     true,
	"those":     true,
	"selected":  true,
	"selection": true,
	"this one":  true,
}
