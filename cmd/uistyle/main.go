package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches one CLI invocation and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, styles: newStyles()}

	var err error
	switch args[0] {
	case "exec":
		err = c.runExec(args[1:])
	case "parse":
		err = c.runParse(args[1:])
	case "repl":
		err = c.runRepl(args[1:])
	case "serve":
		err = c.runServe(args[1:])
	case "targets":
		err = c.runTargets(args[1:])
	case "themes":
		err = c.runThemes(args[1:])
	case "version":
		fmt.Fprintf(stdout, "uistyle %s\n", version)
	case "help", "--help", "-h":
		c.runHelp()
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uistyle <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  exec       Run one style command against the theme")
	fmt.Fprintln(w, "  parse      Show how a command is understood, without applying it")
	fmt.Fprintln(w, "  repl       Read style commands interactively")
	fmt.Fprintln(w, "  serve      Start MCP server on stdio")
	fmt.Fprintln(w, "  targets    List styleable targets and their current values")
	fmt.Fprintln(w, "  themes     Find and summarise theme files under a directory")
	fmt.Fprintln(w, "  version    Print version")
	fmt.Fprintln(w, "  help       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --config <path>       Project config (default .uistyle/config.yaml)")
	fmt.Fprintln(w, "  --theme <path>        Theme file, JSON or TOML (default: built-in theme)")
	fmt.Fprintln(w, "  --persist-dir <dir>   Where theme patches are saved (default .uistyle/themes)")
	fmt.Fprintln(w, "  --persist-key <key>   Name of the saved patch (default theme)")
	fmt.Fprintln(w, "  --no-persist          Do not save changes")
	fmt.Fprintln(w, "  --select <kind:name>  Selection context, e.g. component:button or page:home")
	fmt.Fprintln(w, "  --watch               Reload the theme file when it changes (repl)")
	fmt.Fprintln(w, "  --json                Print JSON instead of styled text")
	fmt.Fprintln(w, "  --log-level <level>   debug, info, warn or error")
}
