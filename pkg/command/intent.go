// Package command classifies free-text style commands into typed intents.
//
// Parsing is a strictly ordered cascade: exact preset phrases first, then a
// list of grammar patterns from most to least specific, then positional
// heuristics. The first pattern whose extraction clears the confidence floor
// wins, so the order of the pattern list is part of the grammar.
package command

// IntentType is the kind of command a text was classified as.
type IntentType string

const (
	TypeStyle      IntentType = "style"
	TypeVisibility IntentType = "visibility"
	TypeLayout     IntentType = "layout"
	TypeMode       IntentType = "mode"
	TypePreset     IntentType = "preset"
	TypeUndo       IntentType = "undo"
	TypeRedo       IntentType = "redo"
	TypeUnknown    IntentType = "unknown"
)

// Delta is the direction of a relative change.
type Delta string

const (
	DeltaMore Delta = "more"
	DeltaLess Delta = "less"
)

// ParseDelta converts "more"/"less" (and "fewer") to a Delta.
func ParseDelta(s string) (Delta, bool) {
	switch s {
	case "more":
		return DeltaMore, true
	case "less", "fewer":
		return DeltaLess, true
	}
	return "", false
}

// Invert flips the direction.
func (d Delta) Invert() Delta {
	if d == DeltaMore {
		return DeltaLess
	}
	return DeltaMore
}

// Scope narrows where a style change applies.
type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopeSelected Scope = "selected"
)

// ParsedIntent is the structured reading of one command. Values are never
// mutated after Parse returns them.
type ParsedIntent struct {
	Type       IntentType `json:"type"`
	Target     string     `json:"target,omitempty"`
	Value      string     `json:"value,omitempty"`
	Delta      Delta      `json:"delta,omitempty"`
	Scope      Scope      `json:"scope,omitempty"`
	Raw        string     `json:"raw"`
	Confidence float64    `json:"confidence"`
}

// IsRelative reports whether the intent asks for a directional change.
func (p ParsedIntent) IsRelative() bool {
	return p.Delta != ""
}
