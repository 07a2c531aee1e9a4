package synonyms

import "strings"

// Relative property names understood by the relative value computer.
const (
	PropertyRounded    = "rounded"
	PropertySpacing    = "spacing"
	PropertySize       = "size"
	PropertyLightness  = "lightness"
	PropertySaturation = "saturation"
	PropertyHue        = "hue"
	PropertyContrast   = "contrast"
)

// RelativeWord is a value word used with more/less. Inverted words flip the
// direction: "more dark" lowers lightness.
type RelativeWord struct {
	Property string
	Inverted bool
}

var relativeWords = map[string]RelativeWord{
	"rounded":   {Property: PropertyRounded},
	"round":     {Property: PropertyRounded},
	"roundness": {Property: PropertyRounded},
	"rounding":  {Property: PropertyRounded},
	"radius":    {Property: PropertyRounded},
	"corners":   {Property: PropertyRounded},
	"curvy":     {Property: PropertyRounded},
	"curved":    {Property: PropertyRounded},
	"sharp":     {Property: PropertyRounded, Inverted: true},
	"square":    {Property: PropertyRounded, Inverted: true},
	"boxy":      {Property: PropertyRounded, Inverted: true},

	"spacing":  {Property: PropertySpacing},
	"space":    {Property: PropertySpacing},
	"padding":  {Property: PropertySpacing},
	"spacious": {Property: PropertySpacing},
	"airy":     {Property: PropertySpacing},
	"room":     {Property: PropertySpacing},
	"roomy":    {Property: PropertySpacing},
	"gap":      {Property: PropertySpacing},
	"margin":   {Property: PropertySpacing},
	"compact":  {Property: PropertySpacing, Inverted: true},
	"dense":    {Property: PropertySpacing, Inverted: true},
	"tight":    {Property: PropertySpacing, Inverted: true},
	"cramped":  {Property: PropertySpacing, Inverted: true},

	"size":      {Property: PropertySize},
	"font":      {Property: PropertySize},
	"font size": {Property: PropertySize},
	"text":      {Property: PropertySize},
	"text size": {Property: PropertySize},
	"big":       {Property: PropertySize},
	"large":     {Property: PropertySize},
	"readable":  {Property: PropertySize},
	"small":     {Property: PropertySize, Inverted: true},
	"tiny":      {Property: PropertySize, Inverted: true},

	"light":      {Property: PropertyLightness},
	"lightness":  {Property: PropertyLightness},
	"bright":     {Property: PropertyLightness},
	"brightness": {Property: PropertyLightness},
	"pale":       {Property: PropertyLightness},
	"dark":       {Property: PropertyLightness, Inverted: true},
	"darkness":   {Property: PropertyLightness, Inverted: true},
	"dim":        {Property: PropertyLightness, Inverted: true},
	"deep":       {Property: PropertyLightness, Inverted: true},

	"saturation":  {Property: PropertySaturation},
	"saturated":   {Property: PropertySaturation},
	"vibrant":     {Property: PropertySaturation},
	"vivid":       {Property: PropertySaturation},
	"colorful":    {Property: PropertySaturation},
	"colourful":   {Property: PropertySaturation},
	"intense":     {Property: PropertySaturation},
	"rich":        {Property: PropertySaturation},
	"color":       {Property: PropertySaturation},
	"colour":      {Property: PropertySaturation},
	"muted":       {Property: PropertySaturation, Inverted: true},
	"dull":        {Property: PropertySaturation, Inverted: true},
	"washed out":  {Property: PropertySaturation, Inverted: true},
	"desaturated": {Property: PropertySaturation, Inverted: true},
	"pastel":      {Property: PropertySaturation, Inverted: true},
	"gray":        {Property: PropertySaturation, Inverted: true},
	"grey":        {Property: PropertySaturation, Inverted: true},

	"hue":   {Property: PropertyHue},
	"tint":  {Property: PropertyHue},
	"shift": {Property: PropertyHue},

	"contrast":  {Property: PropertyContrast},
	"pop":       {Property: PropertyContrast},
	"punchy":    {Property: PropertyContrast},
	"contrasty": {Property: PropertyContrast},
	"bold":      {Property: PropertyContrast},
	"striking":  {Property: PropertyContrast},
}

// ComparativeReading is the canonical reading of an "-er" word.
type ComparativeReading struct {
	Value string
	Delta string
}

// comparativeStems is keyed by the word with its "-er" suffix removed.
var comparativeStems = map[string]ComparativeReading{
	"round":  {Value: PropertyRounded, Delta: "more"},
	"curvi":  {Value: PropertyRounded, Delta: "more"},
	"sharp":  {Value: PropertyRounded, Delta: "less"},
	"boxi":   {Value: PropertyRounded, Delta: "less"},
	"big":    {Value: PropertySize, Delta: "more"},
	"large":  {Value: PropertySize, Delta: "more"},
	"small":  {Value: PropertySize, Delta: "less"},
	"tini":   {Value: PropertySize, Delta: "less"},
	"bold":   {Value: PropertyContrast, Delta: "more"},
	"punchi": {Value: PropertyContrast, Delta: "more"},
	"dark":   {Value: PropertyLightness, Delta: "less"},
	"deep":   {Value: PropertyLightness, Delta: "less"},
	"dim":    {Value: PropertyLightness, Delta: "less"},
	"light":  {Value: PropertyLightness, Delta: "more"},
	"bright": {Value: PropertyLightness, Delta: "more"},
	"pale":   {Value: PropertyLightness, Delta: "more"},
	"rich":   {Value: PropertySaturation, Delta: "more"},
	"dull":   {Value: PropertySaturation, Delta: "less"},
	"calm":   {Value: PropertySaturation, Delta: "less"},
	"tight":  {Value: PropertySpacing, Delta: "less"},
	"dense":  {Value: PropertySpacing, Delta: "less"},
	"loose":  {Value: PropertySpacing, Delta: "more"},
	"wide":   {Value: PropertySpacing, Delta: "more"},
	"roomi":  {Value: PropertySpacing, Delta: "more"},
	"airi":   {Value: PropertySpacing, Delta: "more"},
}

// Relative looks up a value word usable with more/less.
func Relative(word string) (RelativeWord, bool) {
	rw, ok := relativeWords[normalize(word)]
	return rw, ok
}

// IsComparativeForm reports whether word has the shape of an "-er" comparative.
func IsComparativeForm(word string) bool {
	w := normalize(word)
	return len(w) > 3 && strings.HasSuffix(w, "er") && !strings.Contains(w, " ")
}

// Comparative strips a trailing "-er" from word and maps the stem. Doubled
// final consonants ("bigger") and a dropped silent "e" ("larger") are tried too.
func Comparative(word string) (ComparativeReading, bool) {
	if !IsComparativeForm(word) {
		return ComparativeReading{}, false
	}
	stem := strings.TrimSuffix(normalize(word), "er")

	candidates := []string{stem, stem + "e"}
	if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
		candidates = append(candidates, stem[:n-1])
	}
	for _, c := range candidates {
		if cmp, ok := comparativeStems[c]; ok {
			return cmp, true
		}
	}
	return ComparativeReading{}, false
}
