package tokens

// Foreground constants written to paired foreground tokens. The pick is a
// plain lightness threshold, not a perceptual contrast calculation.
const (
	DarkForeground  = "222.2 84% 4.9%"
	LightForeground = "210 40% 98%"

	foregroundThreshold = 50
)

// Token IDs with special handling.
const (
	RadiusTokenID   = "radius"
	SpacingTokenID  = "spacing"
	FontSizeTokenID = "font-size"
)

// ColorValues maps canonical palette names to HSL token values.
var ColorValues = map[string]string{
	"red":     "0 84% 60%",
	"orange":  "25 95% 53%",
	"amber":   "38 92% 50%",
	"yellow":  "48 96% 53%",
	"lime":    "84 81% 44%",
	"green":   "142 71% 45%",
	"emerald": "160 84% 39%",
	"teal":    "173 80% 40%",
	"cyan":    "189 94% 43%",
	"sky":     "199 89% 48%",
	"blue":    "217 91% 60%",
	"navy":    "222 47% 20%",
	"indigo":  "239 84% 67%",
	"violet":  "258 90% 66%",
	"purple":  "271 91% 65%",
	"fuchsia": "292 84% 61%",
	"pink":    "330 81% 60%",
	"rose":    "350 89% 60%",
	"brown":   "25 45% 35%",
	"slate":   "215 16% 47%",
	"gray":    "220 9% 46%",
	"zinc":    "240 4% 46%",
	"neutral": "0 0% 45%",
	"stone":   "25 5% 45%",
	"white":   "0 0% 100%",
	"black":   "0 0% 0%",
}

// RadiusScale is the ordered corner radius scale.
var RadiusScale = Scale{
	{Name: "none", Value: "0"},
	{Name: "sm", Value: "0.25rem"},
	{Name: "md", Value: "0.5rem"},
	{Name: "lg", Value: "0.75rem"},
	{Name: "xl", Value: "1rem"},
	{Name: "full", Value: "9999px"},
}

// SpacingScale is the ordered base spacing scale.
var SpacingScale = Scale{
	{Name: "xs", Value: "0.5rem"},
	{Name: "sm", Value: "0.75rem"},
	{Name: "md", Value: "1rem"},
	{Name: "lg", Value: "1.5rem"},
	{Name: "xl", Value: "2rem"},
	{Name: "2xl", Value: "3rem"},
}

// FontSizeScale is the ordered base font-size scale.
var FontSizeScale = Scale{
	{Name: "xs", Value: "0.75rem"},
	{Name: "sm", Value: "0.875rem"},
	{Name: "md", Value: "1rem"},
	{Name: "lg", Value: "1.125rem"},
	{Name: "xl", Value: "1.25rem"},
	{Name: "2xl", Value: "1.5rem"},
	{Name: "3xl", Value: "1.875rem"},
}

// DefaultLight is the built-in light token set.
var DefaultLight = map[string]string{
	"background":             "0 0% 100%",
	"foreground":             "222.2 84% 4.9%",
	"card":                   "0 0% 100%",
	"card-foreground":        "222.2 84% 4.9%",
	"popover":                "0 0% 100%",
	"popover-foreground":     "222.2 84% 4.9%",
	"primary":                "222.2 47.4% 11.2%",
	"primary-foreground":     "210 40% 98%",
	"secondary":              "210 40% 96.1%",
	"secondary-foreground":   "222.2 47.4% 11.2%",
	"muted":                  "210 40% 96.1%",
	"muted-foreground":       "215.4 16.3% 46.9%",
	"accent":                 "210 40% 96.1%",
	"accent-foreground":      "222.2 47.4% 11.2%",
	"destructive":            "0 84.2% 60.2%",
	"destructive-foreground": "210 40% 98%",
	"border":                 "214.3 31.8% 91.4%",
	"input":                  "214.3 31.8% 91.4%",
	"ring":                   "222.2 84% 4.9%",
	"sidebar-background":     "0 0% 98%",
	"sidebar-foreground":     "240 5.3% 26.1%",
	"chart-1":                "12 76% 61%",
	"radius":                 "0.5rem",
	"spacing":                "1rem",
	"font-size":              "1rem",
}

// DefaultDark holds the dark-mode overrides for DefaultLight.
var DefaultDark = map[string]string{
	"background":             "222.2 84% 4.9%",
	"foreground":             "210 40% 98%",
	"card":                   "222.2 84% 4.9%",
	"card-foreground":        "210 40% 98%",
	"popover":                "222.2 84% 4.9%",
	"popover-foreground":     "210 40% 98%",
	"primary":                "210 40% 98%",
	"primary-foreground":     "222.2 47.4% 11.2%",
	"secondary":              "217.2 32.6% 17.5%",
	"secondary-foreground":   "210 40% 98%",
	"muted":                  "217.2 32.6% 17.5%",
	"muted-foreground":       "215 20.2% 65.1%",
	"accent":                 "217.2 32.6% 17.5%",
	"accent-foreground":      "210 40% 98%",
	"destructive":            "0 62.8% 30.6%",
	"destructive-foreground": "210 40% 98%",
	"border":                 "217.2 32.6% 17.5%",
	"input":                  "217.2 32.6% 17.5%",
	"ring":                   "212.7 26.8% 83.9%",
	"sidebar-background":     "240 5.9% 10%",
	"sidebar-foreground":     "240 4.8% 95.9%",
	"chart-1":                "220 70% 50%",
}

// ContrastingForeground picks the foreground constant for a background value:
// dark text on light colors (lightness > 50), light text otherwise.
func ContrastingForeground(value string) (string, bool) {
	l, ok := Lightness(value)
	if !ok {
		return "", false
	}
	if l > foregroundThreshold {
		return DarkForeground, true
	}
	return LightForeground, true
}
