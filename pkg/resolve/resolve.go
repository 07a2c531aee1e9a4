// Package resolve binds a parsed command to a concrete design token, either by
// name (with synonym and fuzzy fallback) or through the current selection.
package resolve

import (
	"fmt"
	"strings"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/match"
	"github.com/gnana997/uistyle/pkg/synonyms"
)

// ErrorUnknownTarget is the ResolvedContext.Error value for a target that
// could not be matched.
const ErrorUnknownTarget = "unknown_target"

// Scope is where a resolved change applies.
type Scope string

const (
	ScopeGlobal    Scope = "global"
	ScopeComponent Scope = "component"
	ScopeElement   Scope = "element"
)

// ResolvedContext is the outcome of binding an intent to a token.
type ResolvedContext struct {
	Success                 bool     `json:"success"`
	Target                  string   `json:"target,omitempty"`
	TokenID                 string   `json:"token_id,omitempty"`
	PairedForegroundTokenID string   `json:"paired_foreground_token_id,omitempty"`
	PersistencePath         string   `json:"persistence_path,omitempty"`
	Scope                   Scope    `json:"scope,omitempty"`
	ComponentID             string   `json:"component_id,omitempty"`
	Interpretation          string   `json:"interpretation,omitempty"`
	Category                Category `json:"category,omitempty"`
	Error                   string   `json:"error,omitempty"`
	Message                 string   `json:"message,omitempty"`
	Suggestions             []string `json:"suggestions,omitempty"`
}

// targetKeys is the fuzzy candidate set: every target synonym.
var targetKeys = synonyms.TargetKeys()

// Resolve binds intent to a token. Contextual references ("this", "it", or a
// selection-scoped intent) go through sel; named targets go through the
// synonym tables and then fuzzy matching; no target means primary.
func Resolve(intent command.ParsedIntent, sel Selection) ResolvedContext {
	target := strings.TrimSpace(intent.Target)
	contextual := synonyms.IsContextual(target)

	if contextual || intent.Scope == command.ScopeSelected {
		switch sel.Kind() {
		case SelectionComponent:
			rc := fromDefinition(ComponentTarget(sel.ComponentKind()), ScopeComponent)
			rc.ComponentID = sel.ID()
			return rc
		case SelectionPage:
			return fromDefinition("background", ScopeGlobal)
		case SelectionNone, SelectionOther:
			if contextual || target == "" {
				return fromDefinition("primary", ScopeGlobal)
			}
		}
	}

	if target == "" {
		return fromDefinition("primary", ScopeGlobal)
	}
	return resolveNamed(target)
}

func resolveNamed(target string) ResolvedContext {
	if canonical, ok := synonyms.Target(target); ok {
		return fromDefinition(canonical, ScopeGlobal)
	}

	n := synonyms.Normalize(target)
	for _, suffix := range []string{" color", " colour"} {
		if stripped, found := strings.CutSuffix(n, suffix); found {
			if canonical, ok := synonyms.Target(stripped); ok {
				return fromDefinition(canonical, ScopeGlobal)
			}
		}
	}

	// "main buttons", "nav on the left": try the individual words.
	if words := strings.Fields(n); len(words) > 1 {
		for i := len(words) - 1; i >= 0; i-- {
			if canonical, ok := synonyms.Target(words[i]); ok {
				rc := fromDefinition(canonical, ScopeGlobal)
				rc.Interpretation = interpreted(target, canonical)
				return rc
			}
		}
	}

	if m := match.FindBestMatch(n, targetKeys, match.DefaultOptions()); m != nil {
		if canonical, ok := synonyms.Target(m.Candidate); ok {
			rc := fromDefinition(canonical, ScopeGlobal)
			if !m.Exact {
				rc.Interpretation = interpreted(target, canonical)
			}
			return rc
		}
	}

	return unknownTarget(target)
}

func fromDefinition(canonical string, scope Scope) ResolvedContext {
	def, ok := definitions[canonical]
	if !ok {
		return unknownTarget(canonical)
	}
	return ResolvedContext{
		Success:                 true,
		Target:                  canonical,
		TokenID:                 def.TokenID,
		PairedForegroundTokenID: def.PairedForegroundTokenID,
		PersistencePath:         def.PersistencePath,
		Scope:                   scope,
		Category:                def.Category,
	}
}

func unknownTarget(target string) ResolvedContext {
	suggestions := suggestTargets(target)

	msg := fmt.Sprintf("I don't know what %q refers to.", target)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" Did you mean %s?", strings.Join(suggestions, ", "))
	} else {
		msg += " Try background, primary, accent, border or radius."
	}

	return ResolvedContext{
		Error:       ErrorUnknownTarget,
		Message:     msg,
		Suggestions: suggestions,
	}
}

// suggestTargets returns up to three canonical targets close to target.
func suggestTargets(target string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, key := range match.Suggest(target, targetKeys, 6) {
		canonical, ok := synonyms.Target(key)
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func interpreted(from, to string) string {
	return fmt.Sprintf("Interpreted %q as %q", from, to)
}
