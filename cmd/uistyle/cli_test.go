package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/persist"
	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/theme"
)

// --- helpers ---

// runCLI runs one invocation with a missing config file so the working
// directory never influences the result.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if len(args) > 1 {
		args = append([]string{args[0], "--config", filepath.Join(t.TempDir(), "none.yaml")}, args[1:]...)
	}
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const forestTheme = `{
  "name": "forest",
  "version": "2.0.0",
  "tokens": [
    {"name": "background", "value": "0 0% 100%", "dark": "150 30% 8%", "category": "color"},
    {"name": "primary", "value": "142 71% 45%", "category": "color"},
    {"name": "primary-foreground", "value": "0 0% 100%", "category": "color"},
    {"name": "radius", "value": "0.25rem", "category": "radius"}
  ]
}`

// --- flags ---

func TestParseArgs(t *testing.T) {
	positional, flags, err := parseArgs([]string{"make", "--theme", "t.json", "it", "--json", "--select=component:button", "blue"})
	require.NoError(t, err)
	assert.Equal(t, []string{"make", "it", "blue"}, positional)
	assert.Equal(t, "t.json", flags.get("theme", ""))
	assert.Equal(t, "component:button", flags.get("select", ""))
	assert.True(t, flags.has("json"))
	assert.False(t, flags.has("watch"))
	assert.Equal(t, "fallback", flags.get("persist-key", "fallback"))
}

func TestParseArgs_DoubleDash(t *testing.T) {
	positional, flags, err := parseArgs([]string{"--no-persist", "--", "--json", "red"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--json", "red"}, positional)
	assert.True(t, flags.has("no-persist"))
	assert.False(t, flags.has("json"))
}

func TestParseArgs_Errors(t *testing.T) {
	_, _, err := parseArgs([]string{"--theme"})
	assert.ErrorContains(t, err, "needs a value")

	_, _, err = parseArgs([]string{"--json=yes"})
	assert.ErrorContains(t, err, "takes no value")
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("")
	require.NoError(t, err)
	assert.Nil(t, sel)

	sel, err = parseSelection("component:Button:hero-cta")
	require.NoError(t, err)
	assert.Equal(t, &resolve.SelectionContext{Kind: "component", ComponentKind: "Button", ID: "hero-cta"}, sel)
	assert.Equal(t, "button", resolve.FromContext(sel).ComponentKind())

	sel, err = parseSelection("page:home")
	require.NoError(t, err)
	assert.Equal(t, resolve.SelectionPage, resolve.FromContext(sel).Kind())

	for _, bad := range []string{"component", "component:", "widget:x"} {
		_, err := parseSelection(bad)
		assert.Error(t, err, bad)
	}
}

// --- config ---

func TestLoadProjectConfig(t *testing.T) {
	cfg, err := loadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "theme_path: themes/brand.theme.json\ndebounce_ms: 50\ncache_size: 64\nlog_level: debug\n")
	cfg, err = loadProjectConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "themes/brand.theme.json", cfg.ThemePath)
	assert.Equal(t, 50, cfg.DebounceMs)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)

	writeFile(t, path, "theme_path: [unclosed\n")
	_, err = loadProjectConfig(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestResolveOptions_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "theme_path: from-config.json\npersist_key: site\ndebounce_ms: 50\n")

	opts, err := resolveOptions(flagSet{"config": path, "theme": "from-flag.json"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", opts.ThemePath)
	assert.Equal(t, "site", opts.PersistKey)
	assert.Equal(t, 50, opts.DebounceMs)
	assert.Equal(t, command.DefaultCacheSize, opts.CacheSize)
	assert.Equal(t, filepath.Join(".uistyle", "themes"), opts.PersistDir)
	assert.False(t, opts.NoPersist)

	opts, err = resolveOptions(flagSet{"config": path, "debounce-ms": "0", "no-persist": "true"})
	require.NoError(t, err)
	assert.Equal(t, 0, opts.DebounceMs)
	assert.True(t, opts.NoPersist)

	_, err = resolveOptions(flagSet{"config": path, "debounce-ms": "soon"})
	assert.Error(t, err)
}

func TestResolveOptions_Defaults(t *testing.T) {
	opts, err := resolveOptions(flagSet{"config": filepath.Join(t.TempDir(), "none.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "", opts.ThemePath)
	assert.Equal(t, "theme", opts.PersistKey)
	assert.Equal(t, persist.DefaultDebounceMs, opts.DebounceMs)
	assert.Equal(t, "warn", opts.LogLevel)
}

// --- commands ---

func TestRun_VersionAndUsage(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "uistyle "+version+"\n", out)

	code, _, errOut := runCLI(t, "", "paint")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command: paint")

	code, _, errOut = runCLI(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Usage: uistyle")

	code, out, _ = runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "dark mode")
}

func TestRun_Parse(t *testing.T) {
	code, out, _ := runCLI(t, "", "parse", "--json", "make", "the", "buttons", "more", "rounded")
	require.Equal(t, 0, code)

	var intent command.ParsedIntent
	require.NoError(t, json.Unmarshal([]byte(out), &intent))
	assert.Equal(t, command.TypeStyle, intent.Type)
	assert.Equal(t, "buttons", intent.Target)
	assert.Equal(t, command.DeltaMore, intent.Delta)

	code, out, _ = runCLI(t, "", "parse", "dark", "mode")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "mode")
	assert.Contains(t, out, "dark")

	code, _, errOut := runCLI(t, "", "parse", "--json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "usage: uistyle parse")
}

func TestRun_ExecPersistsAndRestores(t *testing.T) {
	dir := t.TempDir()

	code, out, errOut := runCLI(t, "", "exec", "--persist-dir", dir, "make the background blue")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Set background to blue (217 91% 60%)")
	assert.Contains(t, out, "217 91% 60%")

	patch, err := persist.NewFileSink(dir).Load("theme")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"colors.background": "217 91% 60%"}, patch)

	code, out, _ = runCLI(t, "", "targets", "--persist-dir", dir, "--category", "color", "--json")
	require.Equal(t, 0, code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	values := map[string]any{}
	for _, r := range rows {
		values[r["name"].(string)] = r["value"]
	}
	assert.Equal(t, "217 91% 60%", values["background"])
}

func TestRun_ExecJSONFailure(t *testing.T) {
	code, out, errOut := runCLI(t, "", "exec", "--no-persist", "--json", "xyzzyqux flobbernaut")
	assert.Equal(t, 1, code)
	assert.Empty(t, errOut)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, false, res["success"])
	assert.Equal(t, "unparseable_command", res["error"])
}

func TestRun_ExecSelection(t *testing.T) {
	code, out, errOut := runCLI(t, "", "exec", "--no-persist", "--json", "--select", "component:card", "make it purple")
	require.Equal(t, 0, code, errOut)

	var res struct {
		Changes []struct {
			TokenID  string `json:"token_id"`
			NewValue string `json:"new_value"`
		} `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Changes)
	assert.Equal(t, "card", res.Changes[0].TokenID)
	assert.Equal(t, "271 91% 65%", res.Changes[0].NewValue)
}

func TestRun_ExecWithThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.theme.json")
	writeFile(t, path, forestTheme)

	code, out, errOut := runCLI(t, "", "exec", "--no-persist", "--theme", path, "more rounded")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "0.25rem → 0.5rem")

	code, _, errOut = runCLI(t, "", "exec", "--no-persist", "--theme", filepath.Join(t.TempDir(), "nope.json"), "dark mode")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to read theme file")
}

func TestRun_Targets(t *testing.T) {
	code, out, _ := runCLI(t, "", "targets", "--no-persist", "--category", "spacing")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "TARGET")
	assert.Contains(t, out, "radius")
	assert.Contains(t, out, "0.5rem")
	assert.NotContains(t, out, "background")

	code, out, _ = runCLI(t, "", "targets", "--no-persist", "--json", "--category", "mode")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"value": "light"`)
}

func TestRun_Themes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "brand", "forest.theme.json"), forestTheme)
	writeFile(t, filepath.Join(root, "broken.theme.json"), `{"name": ""}`)
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "theme.json"), forestTheme)
	writeFile(t, filepath.Join(root, "notes.json"), `{}`)

	code, out, _ := runCLI(t, "", "themes", "--json", root)
	require.Equal(t, 0, code)

	var summaries []theme.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, filepath.Join(root, "brand", "forest.theme.json"), summaries[0].Path)
	assert.Equal(t, "forest", summaries[0].Name)
	assert.Equal(t, 4, summaries[0].Tokens)
	assert.Contains(t, summaries[1].Error, "theme validation failed")

	code, out, _ = runCLI(t, "", "themes", "--exclude", "brand/**", root)
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "forest")
	assert.Contains(t, out, "broken.theme.json")
}

func TestRepl(t *testing.T) {
	dir := t.TempDir()
	input := "dark mode\n\ntokens\nmake the primary green\nexit\nmake it red\n"

	code, out, errOut := runCLI(t, input, "repl", "--persist-dir", dir, "--persist-key", "session")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Dark mode enabled")
	assert.Contains(t, out, "Tokens (dark mode)")
	assert.Contains(t, out, "Set primary to green")
	assert.NotContains(t, out, "Set primary to red")

	patch, err := persist.NewFileSink(dir).Load("session")
	require.NoError(t, err)
	assert.Equal(t, "dark", patch["mode"])
	assert.Contains(t, patch, "dark.colors.primary")
	assert.NotContains(t, patch, "colors.primary")
}

func TestRepl_EOF(t *testing.T) {
	code, out, _ := runCLI(t, "help\n", "repl", "--no-persist")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Style commands")
}
