package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/executor"
	"github.com/gnana997/uistyle/pkg/persist"
	"github.com/gnana997/uistyle/pkg/theme"
	"github.com/gnana997/uistyle/pkg/tokens"
	"github.com/gnana997/uistyle/pkg/util"
)

// app wires the interpreter for one CLI invocation: theme, token store,
// parser cache, persistence and executor.
type app struct {
	opts      options
	logger    *slog.Logger
	closeLog  func() error
	theme     *theme.Theme
	store     *tokens.MemoryStore
	parser    *command.Parser
	sink      *persist.FileSink
	scheduler *persist.Scheduler
	exec      *executor.Executor
}

func newApp(opts options) (*app, error) {
	level, err := util.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := util.ParseFormat(opts.LogFormat)
	if err != nil {
		return nil, err
	}
	out, closeLog, err := util.OpenLogFile(opts.LogFile)
	if err != nil {
		return nil, err
	}
	logger := util.NewLogger(util.LoggerConfig{Level: level, Format: format, Output: out})

	th, err := loadTheme(opts.ThemePath)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	a := &app{
		opts:     opts,
		logger:   logger,
		closeLog: closeLog,
		theme:    th,
		store:    th.NewStore(),
		parser:   command.NewParser(command.ParserConfig{CacheSize: opts.CacheSize, Debug: level == util.LevelDebug}, logger),
	}

	cfg := executor.Config{Store: a.store, Parser: a.parser, Logger: logger}
	if a.persistKey() != "" {
		a.sink = persist.NewFileSink(opts.PersistDir)
		a.scheduler = persist.NewScheduler(a.sink, persist.Options{DebounceMs: opts.DebounceMs}, logger)
		cfg.Persister = a.scheduler
		if err := a.restore(); err != nil {
			_ = closeLog()
			return nil, err
		}
	}
	a.exec = executor.New(cfg)

	logger.Debug("uistyle ready",
		"theme", th.Name,
		"tokens", len(th.Tokens),
		"persist_key", a.persistKey(),
	)
	return a, nil
}

func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		th, _, err := theme.Default()
		return th, err
	}
	th, _, err := theme.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return th, nil
}

// persistKey is empty when persistence is disabled.
func (a *app) persistKey() string {
	if a.opts.NoPersist || a.opts.PersistDir == "" {
		return ""
	}
	return a.opts.PersistKey
}

// restore re-applies the persisted patch for the current key on top of the
// theme.
func (a *app) restore() error {
	if a.sink == nil {
		return nil
	}
	patch, err := a.sink.Load(a.persistKey())
	if err != nil {
		return fmt.Errorf("failed to restore persisted tokens: %w", err)
	}
	changes, unknown := theme.ApplyPatch(a.store, patch)
	if len(unknown) > 0 {
		a.logger.Warn("ignoring unknown persisted paths", "paths", unknown)
	}
	if len(changes) > 0 {
		a.logger.Debug("restored persisted tokens", "key", a.persistKey(), "changes", len(changes))
	}
	return nil
}

// watchTheme reloads the theme file into the store on change and re-applies
// the persisted patch. Returns nil when the built-in theme is in use.
func (a *app) watchTheme() (*theme.Watcher, error) {
	if a.opts.ThemePath == "" {
		return nil, nil
	}
	w, err := theme.NewWatcher(a.opts.ThemePath, a.store, theme.WatchOptions{
		OnReload: func(_ *theme.Theme, err error) {
			if err != nil {
				return
			}
			if a.scheduler != nil {
				_ = a.scheduler.Flush(context.Background())
			}
			if err := a.restore(); err != nil {
				a.logger.Warn("Failed to re-apply persisted tokens", "error", err)
			}
		},
	}, a.logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}

// close flushes pending writes and releases the log file.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.closeLog(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
