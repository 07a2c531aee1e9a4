package resolve

import (
	"sort"

	"github.com/gnana997/uistyle/pkg/tokens"
)

// Category groups targets by how their values are resolved.
type Category string

const (
	CategoryColor      Category = "color"
	CategoryTypography Category = "typography"
	CategorySpacing    Category = "spacing"
	CategoryLayout     Category = "layout"
	CategoryMode       Category = "mode"
)

// TargetDefinition binds a canonical target to its token.
type TargetDefinition struct {
	TokenID                 string   `json:"token_id"`
	PairedForegroundTokenID string   `json:"paired_foreground_token_id,omitempty"`
	PersistencePath         string   `json:"persistence_path"`
	Description             string   `json:"description"`
	Category                Category `json:"category"`
}

// definitions is keyed by every canonical target the synonym tables produce.
var definitions = map[string]TargetDefinition{
	"background": {
		TokenID:         "background",
		PersistencePath: "colors.background",
		Description:     "Page background color",
		Category:        CategoryColor,
	},
	"foreground": {
		TokenID:         "foreground",
		PersistencePath: "colors.foreground",
		Description:     "Default text color",
		Category:        CategoryColor,
	},
	"primary": {
		TokenID:                 "primary",
		PairedForegroundTokenID: "primary-foreground",
		PersistencePath:         "colors.primary",
		Description:             "Brand color used by primary buttons and links",
		Category:                CategoryColor,
	},
	"secondary": {
		TokenID:                 "secondary",
		PairedForegroundTokenID: "secondary-foreground",
		PersistencePath:         "colors.secondary",
		Description:             "Secondary buttons and less prominent surfaces",
		Category:                CategoryColor,
	},
	"accent": {
		TokenID:                 "accent",
		PairedForegroundTokenID: "accent-foreground",
		PersistencePath:         "colors.accent",
		Description:             "Hover and highlight color",
		Category:                CategoryColor,
	},
	"muted": {
		TokenID:                 "muted",
		PairedForegroundTokenID: "muted-foreground",
		PersistencePath:         "colors.muted",
		Description:             "Subdued surfaces and placeholder text",
		Category:                CategoryColor,
	},
	"card": {
		TokenID:                 "card",
		PairedForegroundTokenID: "card-foreground",
		PersistencePath:         "colors.card",
		Description:             "Card and panel background",
		Category:                CategoryColor,
	},
	"popover": {
		TokenID:                 "popover",
		PairedForegroundTokenID: "popover-foreground",
		PersistencePath:         "colors.popover",
		Description:             "Popovers, menus, dialogs and tooltips",
		Category:                CategoryColor,
	},
	"border": {
		TokenID:         "border",
		PersistencePath: "colors.border",
		Description:     "Borders and dividers",
		Category:        CategoryColor,
	},
	"input": {
		TokenID:         "input",
		PersistencePath: "colors.input",
		Description:     "Form input borders",
		Category:        CategoryColor,
	},
	"ring": {
		TokenID:         "ring",
		PersistencePath: "colors.ring",
		Description:     "Focus ring",
		Category:        CategoryColor,
	},
	"destructive": {
		TokenID:                 "destructive",
		PairedForegroundTokenID: "destructive-foreground",
		PersistencePath:         "colors.destructive",
		Description:             "Errors and destructive actions",
		Category:                CategoryColor,
	},
	"sidebar": {
		TokenID:                 "sidebar-background",
		PairedForegroundTokenID: "sidebar-foreground",
		PersistencePath:         "colors.sidebar",
		Description:             "Sidebar navigation background",
		Category:                CategoryColor,
	},
	"chart": {
		TokenID:         "chart-1",
		PersistencePath: "colors.chart1",
		Description:     "First chart series color",
		Category:        CategoryColor,
	},
	"radius": {
		TokenID:         tokens.RadiusTokenID,
		PersistencePath: "radius",
		Description:     "Corner radius",
		Category:        CategorySpacing,
	},
	"spacing": {
		TokenID:         tokens.SpacingTokenID,
		PersistencePath: "spacing",
		Description:     "Base spacing unit",
		Category:        CategorySpacing,
	},
	"font": {
		TokenID:         tokens.FontSizeTokenID,
		PersistencePath: "typography.fontSize",
		Description:     "Base font size",
		Category:        CategoryTypography,
	},
	"mode": {
		TokenID:         tokens.ModeTokenID,
		PersistencePath: "mode",
		Description:     "Light or dark appearance",
		Category:        CategoryMode,
	},
	"layout": {
		TokenID:     "layout",
		Description: "Page structure (edited in the layout panel, not through tokens)",
		Category:    CategoryLayout,
	},
}

// componentTargets maps a selected component kind to the target its main
// color comes from.
var componentTargets = map[string]string{
	"button":       "primary",
	"link":         "primary",
	"badge":        "primary",
	"checkbox":     "primary",
	"switch":       "primary",
	"radio":        "primary",
	"slider":       "primary",
	"progress":     "primary",
	"toggle":       "secondary",
	"tabs":         "secondary",
	"avatar":       "secondary",
	"card":         "card",
	"table":        "card",
	"accordion":    "card",
	"input":        "input",
	"textarea":     "input",
	"select":       "input",
	"form":         "input",
	"dialog":       "popover",
	"modal":        "popover",
	"popover":      "popover",
	"dropdown":     "popover",
	"dropdownmenu": "popover",
	"tooltip":      "popover",
	"sheet":        "popover",
	"alert":        "destructive",
	"toast":        "popover",
	"sidebar":      "sidebar",
	"nav":          "sidebar",
	"navigation":   "sidebar",
	"chart":        "chart",
	"separator":    "border",
	"divider":      "border",
	"text":         "foreground",
	"heading":      "foreground",
	"paragraph":    "foreground",
	"label":        "foreground",
	"page":         "background",
	"section":      "background",
	"container":    "background",
}

// Definition returns the definition of a canonical target.
func Definition(target string) (TargetDefinition, bool) {
	def, ok := definitions[target]
	return def, ok
}

// Targets returns the canonical target names, sorted.
func Targets() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComponentTarget returns the target a component kind styles by default.
// Unknown kinds use the primary color.
func ComponentTarget(kind string) string {
	if t, ok := componentTargets[kind]; ok {
		return t
	}
	return "primary"
}

// DefinitionForToken finds the target that owns tokenID.
func DefinitionForToken(tokenID string) (string, TargetDefinition, bool) {
	for name, def := range definitions {
		if def.TokenID == tokenID {
			return name, def, true
		}
	}
	return "", TargetDefinition{}, false
}

// DefinitionForPath finds the target persisted under path.
func DefinitionForPath(path string) (string, TargetDefinition, bool) {
	if path == "" {
		return "", TargetDefinition{}, false
	}
	for name, def := range definitions {
		if def.PersistencePath == path {
			return name, def, true
		}
	}
	return "", TargetDefinition{}, false
}
