package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/executor"
	mcpserver "github.com/gnana997/uistyle/pkg/mcp"
	"github.com/gnana997/uistyle/pkg/mcplog"
	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/theme"
)

// errReported means the failure was already printed for the user.
var errReported = errors.New("command failed")

// cli carries the streams a command reads and writes.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	styles styles
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseSelection reads "component:button", "component:button:hero-cta" or
// "page:home".
func parseSelection(s string) (*resolve.SelectionContext, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, ":", 3)
	sel := &resolve.SelectionContext{Kind: parts[0]}
	switch parts[0] {
	case "component":
		if len(parts) < 2 || parts[1] == "" {
			return nil, fmt.Errorf("invalid --select %q (expected component:<kind>[:<id>])", s)
		}
		sel.ComponentKind = parts[1]
		if len(parts) == 3 {
			sel.ID = parts[2]
		}
	case "page":
		if len(parts) > 1 {
			sel.ID = strings.Join(parts[1:], ":")
		}
	default:
		return nil, fmt.Errorf("invalid --select %q (kind must be component or page)", s)
	}
	return sel, nil
}

// --- exec ---

func (c *cli) runExec(args []string) error {
	positional, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(positional, " "))
	if text == "" {
		return errors.New("usage: uistyle exec [--select kind:name] [--json] <command>")
	}
	sel, err := parseSelection(flags.get("select", ""))
	if err != nil {
		return err
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}
	a, err := newApp(opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	res := a.exec.Execute(ctx, text, resolve.FromContext(sel), a.persistKey())
	if err := a.close(ctx); err != nil {
		fmt.Fprintf(c.stderr, "warning: %v\n", err)
	}

	if flags.has("json") {
		if err := writeJSON(c.stdout, res); err != nil {
			return err
		}
	} else {
		renderResult(c.stdout, c.styles, res)
	}
	if !res.Success {
		return errReported
	}
	return nil
}

// --- parse ---

func (c *cli) runParse(args []string) error {
	positional, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(positional, " "))
	if text == "" {
		return errors.New("usage: uistyle parse [--json] <command>")
	}

	intent := command.Parse(text)
	if flags.has("json") {
		return writeJSON(c.stdout, intent)
	}
	renderIntent(c.stdout, c.styles, intent)
	return nil
}

// --- repl ---

func (c *cli) runRepl(args []string) error {
	_, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	sel, err := parseSelection(flags.get("select", ""))
	if err != nil {
		return err
	}
	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer func() {
		if err := a.close(ctx); err != nil {
			fmt.Fprintf(c.stderr, "warning: %v\n", err)
		}
	}()

	if flags.has("watch") {
		w, err := a.watchTheme()
		if err != nil {
			return err
		}
		if w != nil {
			defer w.Stop()
		}
	}

	c.repl(ctx, a, resolve.FromContext(sel))
	return nil
}

// repl reads one command per line until EOF, "exit" or "quit".
func (c *cli) repl(ctx context.Context, a *app, sel resolve.Selection) {
	fmt.Fprintln(c.stdout, c.styles.Muted.Render(`Type a style command, "tokens" to list tokens, "help" for examples, "exit" to quit.`))

	scanner := bufio.NewScanner(c.stdin)
	for {
		fmt.Fprint(c.stdout, c.styles.Accent.Render("style> "))
		if !scanner.Scan() {
			fmt.Fprintln(c.stdout)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return
		case "tokens":
			renderTokens(c.stdout, c.styles, a.store.Snapshot(), a.store.Mode())
			continue
		}
		renderResult(c.stdout, c.styles, a.exec.Execute(ctx, line, sel, a.persistKey()))
	}
}

// --- serve ---

func (c *cli) runServe(args []string) error {
	_, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}
	a, err := newApp(opts)
	if err != nil {
		return err
	}

	callLog, err := mcplog.NewLogger(opts.CallLog)
	if err != nil {
		_ = a.close(context.Background())
		return err
	}
	defer callLog.Close()

	w, err := a.watchTheme()
	if err != nil {
		_ = a.close(context.Background())
		return err
	}
	if w != nil {
		defer w.Stop()
	}

	// ServeStdio returns on SIGINT/SIGTERM, so pending writes are flushed below.
	srv := mcpserver.NewServer(a.exec, a.store, mcpserver.Options{
		Parser:     a.parser,
		PersistKey: a.persistKey(),
		CallLog:    callLog,
		Logger:     a.logger,
	})
	serveErr := srv.ServeStdio()
	if err := a.close(context.Background()); err != nil {
		fmt.Fprintf(c.stderr, "warning: %v\n", err)
	}
	if serveErr != nil {
		return fmt.Errorf("server error: %w", serveErr)
	}
	return nil
}

// --- targets ---

func (c *cli) runTargets(args []string) error {
	_, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	category := strings.ToLower(flags.get("category", ""))

	var names []string
	for _, n := range resolve.Targets() {
		def, _ := resolve.Definition(n)
		if category == "" || string(def.Category) == category {
			names = append(names, n)
		}
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close(context.Background())
	store := a.store

	if flags.has("json") {
		type row struct {
			Name string `json:"name"`
			resolve.TargetDefinition
			Value string `json:"value,omitempty"`
		}
		rows := make([]row, 0, len(names))
		for _, n := range names {
			def, _ := resolve.Definition(n)
			rows = append(rows, row{Name: n, TargetDefinition: def, Value: targetValue(store, def)})
		}
		return writeJSON(c.stdout, rows)
	}
	renderTargets(c.stdout, c.styles, store, names)
	return nil
}

// --- themes ---

func (c *cli) runThemes(args []string) error {
	positional, flags, err := parseArgs(args)
	if err != nil {
		return err
	}
	root := "."
	if len(positional) > 0 {
		root = positional[0]
	}

	exclude := theme.DefaultExclude
	if v := flags.get("exclude", ""); v != "" {
		exclude = append(append([]string{}, exclude...), strings.Split(v, ",")...)
	}

	paths, err := theme.Discover(root, theme.DefaultInclude, exclude)
	if err != nil {
		return err
	}
	summaries := theme.Summarize(paths)

	if flags.has("json") {
		return writeJSON(c.stdout, summaries)
	}
	renderThemes(c.stdout, c.styles, summaries)
	return nil
}

// --- help ---

func (c *cli) runHelp() {
	printUsage(c.stdout)
	fmt.Fprintln(c.stdout)
	fmt.Fprintln(c.stdout, executor.HelpText)
}
