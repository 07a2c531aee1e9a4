package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/executor"
	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/theme"
	"github.com/gnana997/uistyle/pkg/tokens"
)

// styles holds the lipgloss styles used for terminal output.
type styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Header  lipgloss.Style
}

func newStyles() styles {
	return styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// swatch renders a two-cell block in the given token color, or two spaces
// when the value is not a color.
func swatch(value string) string {
	hex, ok := tokens.Hex(value)
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func renderResult(w io.Writer, st styles, res executor.ExecutionResult) {
	if res.Success {
		fmt.Fprintf(w, "%s %s\n", st.Success.Render("✓"), res.Message)
	} else {
		fmt.Fprintf(w, "%s %s\n", st.Error.Render("✗"), res.Message)
	}

	if res.Interpretation != "" {
		fmt.Fprintf(w, "  %s\n", st.Muted.Render(res.Interpretation))
	}

	width := 0
	for _, c := range res.Changes {
		width = max(width, len(c.TokenID))
	}
	for _, c := range res.Changes {
		fmt.Fprintf(w, "  %s %-*s  %s → %s\n",
			swatch(c.NewValue), width, c.TokenID, st.Muted.Render(c.OldValue), c.NewValue)
	}

	if len(res.Suggestions) > 0 && !strings.Contains(res.Message, res.Suggestions[0]) {
		fmt.Fprintf(w, "  %s %s\n", st.Muted.Render("suggestions:"), strings.Join(res.Suggestions, ", "))
	}
}

func renderIntent(w io.Writer, st styles, in command.ParsedIntent) {
	rows := [][2]string{
		{"type", string(in.Type)},
		{"target", in.Target},
		{"value", in.Value},
		{"delta", string(in.Delta)},
		{"scope", string(in.Scope)},
		{"confidence", fmt.Sprintf("%.2f", in.Confidence)},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", st.Accent.Render(fmt.Sprintf("%-10s", r[0])), r[1])
	}
}

func renderTargets(w io.Writer, st styles, store tokens.Store, names []string) {
	width := len("TARGET")
	for _, n := range names {
		width = max(width, len(n))
	}

	fmt.Fprintln(w, st.Header.Render(fmt.Sprintf("%-*s  %-10s  %-20s  %s", width, "TARGET", "CATEGORY", "TOKEN", "VALUE")))
	for _, n := range names {
		def, _ := resolve.Definition(n)
		value := targetValue(store, def)
		fmt.Fprintf(w, "%-*s  %-10s  %-20s  %s %s\n", width, n, def.Category, def.TokenID, swatch(value), value)
		if def.Description != "" {
			fmt.Fprintf(w, "%-*s  %s\n", width, "", st.Muted.Render(def.Description))
		}
	}
}

// targetValue is the current value shown for a target: the mode for the mode
// target, nothing for layout.
func targetValue(store tokens.Store, def resolve.TargetDefinition) string {
	switch def.Category {
	case resolve.CategoryLayout:
		return ""
	case resolve.CategoryMode:
		return string(store.Mode())
	}
	return store.Get(def.TokenID)
}

func renderTokens(w io.Writer, st styles, snapshot map[string]string, mode tokens.Mode) {
	ids := make([]string, 0, len(snapshot))
	width := 0
	for id := range snapshot {
		ids = append(ids, id)
		width = max(width, len(id))
	}
	sort.Strings(ids)

	fmt.Fprintln(w, st.Header.Render(fmt.Sprintf("Tokens (%s mode)", mode)))
	for _, id := range ids {
		fmt.Fprintf(w, "%s %-*s  %s\n", swatch(snapshot[id]), width, id, snapshot[id])
	}
}

func renderThemes(w io.Writer, st styles, summaries []theme.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No theme files found.")
		return
	}
	for _, s := range summaries {
		if s.Error != "" {
			fmt.Fprintf(w, "%s %s\n  %s\n", st.Error.Render("✗"), s.Path, st.Muted.Render(s.Error))
			continue
		}
		meta := fmt.Sprintf("%d tokens", s.Tokens)
		if s.Version != "" {
			meta = "v" + s.Version + ", " + meta
		}
		fmt.Fprintf(w, "%s %s  %s %s\n", st.Success.Render("✓"), s.Path, st.Accent.Render(s.Name), st.Muted.Render(meta))
	}
}
