// Package executor runs natural-language style commands against a token
// store: parse, resolve the target, resolve or compute the value, mutate the
// store and optionally schedule persistence.
//
// User-input problems never surface as Go errors. Every call returns an
// ExecutionResult; failures carry Success=false, a plain-language Message and
// a machine-readable Kind.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/relative"
	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/synonyms"
	"github.com/gnana997/uistyle/pkg/tokens"
)

// Persister receives theme patches after successful style changes. Calls are
// fire-and-forget: implementations must not block and own their own error
// reporting.
type Persister interface {
	SchedulePersist(key string, patch map[string]string)
}

// ExecutionResult is the outcome of one command.
type ExecutionResult struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message"`
	Changes        []tokens.Change      `json:"changes"`
	Error          Kind                 `json:"error,omitempty"`
	Interpretation string               `json:"interpretation,omitempty"`
	Suggestions    []string             `json:"suggestions,omitempty"`
	Intent         command.ParsedIntent `json:"intent"`
}

// Err returns nil for a successful result, otherwise an error wrapping the
// Kind sentinel so callers can use errors.Is.
func (r ExecutionResult) Err() error {
	if r.Success {
		return nil
	}
	if sentinel := r.Error.Err(); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, r.Message)
	}
	return errors.New(r.Message)
}

// Config configures an Executor. Store is required.
type Config struct {
	Store tokens.Store

	// Parser memoises parsing; nil uses command.Parse directly.
	Parser *command.Parser

	// Persister is optional; without it persistence keys are ignored.
	Persister Persister

	Logger *slog.Logger
}

// Executor is safe for concurrent use as long as its Store is.
type Executor struct {
	store     tokens.Store
	parser    *command.Parser
	persister Persister
	computer  *relative.Computer
	logger    *slog.Logger
}

// New creates an Executor.
func New(config Config) *Executor {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		store:     config.Store,
		parser:    config.Parser,
		persister: config.Persister,
		computer:  relative.NewComputer(config.Store),
		logger:    logger,
	}
}

// QuickExecute runs text with no selection and no persistence.
func (e *Executor) QuickExecute(text string) ExecutionResult {
	return e.Execute(context.Background(), text, resolve.NoSelection(), "")
}

// Execute runs one command. persistKey, when non-empty, names the theme the
// resulting patch is scheduled against.
func (e *Executor) Execute(ctx context.Context, text string, sel resolve.Selection, persistKey string) ExecutionResult {
	if isHelp(text) {
		return ExecutionResult{Success: true, Message: HelpText, Changes: []tokens.Change{}}
	}

	intent := e.parse(text)
	e.logger.DebugContext(ctx, "parsed command",
		"text", text,
		"type", intent.Type,
		"target", intent.Target,
		"value", intent.Value,
		"delta", intent.Delta,
		"confidence", intent.Confidence,
	)

	var res ExecutionResult
	switch intent.Type {
	case command.TypeUndo:
		res = succeed("Use the editor's undo button (Ctrl+Z / Cmd+Z) to undo the last change.")
	case command.TypeRedo:
		res = succeed("Use the editor's redo button (Ctrl+Shift+Z / Cmd+Shift+Z) to redo a change.")
	case command.TypeMode:
		res = e.applyMode(ctx, intent.Value, persistKey)
	case command.TypeVisibility:
		res = visibilityGuidance(intent)
	case command.TypeLayout:
		res = layoutGuidance(intent)
	case command.TypePreset:
		res = e.applyPreset(ctx, intent.Value, persistKey)
	case command.TypeStyle:
		res = e.applyStyle(ctx, intent, sel, persistKey)
	default:
		res = fail(KindUnparseable, unparseableMessage(text))
	}

	res.Intent = intent
	if res.Changes == nil {
		res.Changes = []tokens.Change{}
	}
	if !res.Success {
		e.logger.DebugContext(ctx, "command failed", "text", text, "error", res.Error)
	}
	return res
}

func (e *Executor) parse(text string) command.ParsedIntent {
	if e.parser != nil {
		return e.parser.Parse(text)
	}
	return command.Parse(text)
}

func (e *Executor) applyMode(ctx context.Context, value, persistKey string) ExecutionResult {
	current := e.store.Mode()

	var next tokens.Mode
	switch value {
	case "dark":
		next = tokens.ModeDark
	case "light":
		next = tokens.ModeLight
	case "toggle":
		next = tokens.ModeDark
		if current == tokens.ModeDark {
			next = tokens.ModeLight
		}
	default:
		return fail(KindUnknownValue, fmt.Sprintf("%q is not a mode. Try \"dark mode\", \"light mode\" or \"toggle mode\".", value))
	}

	e.store.SetMode(next)
	e.logger.InfoContext(ctx, "mode changed", "from", current, "to", next)
	e.schedule(persistKey, map[string]string{"mode": string(next)})

	label := "Light"
	if next == tokens.ModeDark {
		label = "Dark"
	}
	return ExecutionResult{
		Success: true,
		Message: label + " mode enabled",
		Changes: []tokens.Change{{TokenID: tokens.ModeTokenID, OldValue: string(current), NewValue: string(next)}},
	}
}

func (e *Executor) applyPreset(ctx context.Context, name, persistKey string) ExecutionResult {
	preset, ok := synonyms.LookupPreset(name)
	if !ok {
		res := fail(KindUnknownPreset, fmt.Sprintf("I don't know a %q style.", name))
		res.Suggestions = suggest(name, synonyms.PresetNames())
		if len(res.Suggestions) > 0 {
			res.Message += " Try " + strings.Join(res.Suggestions, ", ") + "."
		}
		return res
	}

	var changes []tokens.Change
	for _, d := range preset.Directives {
		intent := command.ParsedIntent{Type: command.TypeStyle, Target: d.Target, Value: d.Value, Confidence: 1}
		if d.Delta != "" {
			intent.Value, intent.Delta = d.Property, command.Delta(d.Delta)
		}

		r := e.applyStyle(ctx, intent, resolve.NoSelection(), persistKey)
		if !r.Success {
			e.logger.WarnContext(ctx, "preset directive failed",
				"preset", preset.Name, "target", d.Target, "error", r.Error, "message", r.Message)
			continue
		}
		changes = append(changes, r.Changes...)
	}

	return ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Applied the %s style: %s", preset.Name, preset.Description),
		Changes: changes,
	}
}

func (e *Executor) applyStyle(ctx context.Context, intent command.ParsedIntent, sel resolve.Selection, persistKey string) ExecutionResult {
	rc := resolve.Resolve(intent, sel)
	if !rc.Success {
		res := fail(KindUnknownTarget, rc.Message)
		res.Suggestions = rc.Suggestions
		return res
	}

	switch rc.Category {
	case resolve.CategoryMode:
		mode, ok := synonyms.Mode(intent.Value)
		if !ok {
			return fail(KindUnknownValue, fmt.Sprintf("%q is not a mode. Try \"dark mode\" or \"light mode\".", intent.Value))
		}
		return e.applyMode(ctx, mode, persistKey)
	case resolve.CategoryLayout:
		return layoutGuidance(intent)
	}

	if intent.IsRelative() {
		return e.applyRelative(ctx, intent, rc, persistKey)
	}
	return e.applyAbsolute(ctx, intent, rc, persistKey)
}

func (e *Executor) applyRelative(ctx context.Context, intent command.ParsedIntent, rc resolve.ResolvedContext, persistKey string) ExecutionResult {
	out, err := e.computer.Compute(intent.Value, intent.Delta, rc.TokenID)
	if err != nil {
		if errors.Is(err, relative.ErrInvalidCurrentValue) {
			return fail(KindInvalidCurrentValue,
				fmt.Sprintf("The current %s value %q is not a color I can adjust.", rc.Target, e.store.Get(rc.TokenID)))
		}
		return fail(KindUnresolvableRelative,
			fmt.Sprintf("I can't make %s %s %s: cannot compute relative change for %s.", describeTarget(rc), intent.Delta, intent.Value, intent.Value))
	}

	res := ExecutionResult{Success: true, Interpretation: rc.Interpretation}
	res.Changes = append(res.Changes, e.set(ctx, out.TokenID, out.NewValue))

	path := rc.PersistencePath
	if out.TokenID != rc.TokenID {
		// scale properties write their own token
		_, def, _ := resolve.DefinitionForToken(out.TokenID)
		path = def.PersistencePath
	} else if fg := e.pairForeground(ctx, rc, out.NewValue); fg != nil {
		res.Changes = append(res.Changes, *fg)
	}

	res.Message = fmt.Sprintf("%s %s (%s → %s)", directionVerb(intent.Delta), ofTarget(rc, out), out.OldValue, out.NewValue)
	e.schedulePath(persistKey, path, out.TokenID, out.NewValue)
	return res
}

func (e *Executor) applyAbsolute(ctx context.Context, intent command.ParsedIntent, rc resolve.ResolvedContext, persistKey string) ExecutionResult {
	value, valueNote, ok := resolveValue(rc, intent.Value, e.store.Get(rc.TokenID))
	if !ok {
		res := fail(KindUnknownValue, fmt.Sprintf("I don't know the %s value %q.", describeCategory(rc), intent.Value))
		res.Suggestions = suggestValues(rc, intent.Value)
		if len(res.Suggestions) > 0 {
			res.Message += " Did you mean " + strings.Join(res.Suggestions, ", ") + "?"
		}
		return res
	}

	res := ExecutionResult{Success: true, Interpretation: joinNotes(rc.Interpretation, valueNote)}
	res.Changes = append(res.Changes, e.set(ctx, rc.TokenID, value))
	if fg := e.pairForeground(ctx, rc, value); fg != nil {
		res.Changes = append(res.Changes, *fg)
	}

	res.Message = fmt.Sprintf("Set %s to %s", describeTarget(rc), describeValue(intent.Value, value))
	if rc.Scope == resolve.ScopeComponent {
		res.Message += " for the selected component"
	}
	e.schedulePath(persistKey, rc.PersistencePath, rc.TokenID, value)
	return res
}

// pairForeground writes the contrasting foreground for a background-like
// target. Returns nil when the target has no pair or value has no lightness.
func (e *Executor) pairForeground(ctx context.Context, rc resolve.ResolvedContext, value string) *tokens.Change {
	if rc.PairedForegroundTokenID == "" {
		return nil
	}
	fg, ok := tokens.ContrastingForeground(value)
	if !ok {
		return nil
	}
	c := e.set(ctx, rc.PairedForegroundTokenID, fg)
	return &c
}

func (e *Executor) set(ctx context.Context, tokenID, value string) tokens.Change {
	old := e.store.Get(tokenID)
	e.store.Set(tokenID, value)
	e.logger.InfoContext(ctx, "token updated", "token", tokenID, "old", old, "new", value)
	return tokens.Change{TokenID: tokenID, OldValue: old, NewValue: value}
}

// schedulePath persists value under path, prefixed with
// tokens.DarkPathPrefix when the write landed in the dark token set.
func (e *Executor) schedulePath(key, path, tokenID, value string) {
	if path == "" {
		return
	}
	if tokens.WritesDark(e.store, tokenID) {
		path = tokens.DarkPathPrefix + path
	}
	e.schedule(key, map[string]string{path: value})
}

func (e *Executor) schedule(key string, patch map[string]string) {
	if key == "" || e.persister == nil {
		return
	}
	e.persister.SchedulePersist(key, patch)
}

func succeed(msg string) ExecutionResult {
	return ExecutionResult{Success: true, Message: msg}
}

func fail(kind Kind, msg string) ExecutionResult {
	return ExecutionResult{Success: false, Error: kind, Message: msg}
}

func joinNotes(notes ...string) string {
	var out []string
	for _, n := range notes {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, "; ")
}
