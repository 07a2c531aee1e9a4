package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/persist"
)

const defaultConfigPath = ".uistyle/config.yaml"

// ProjectConfig holds the contents of .uistyle/config.yaml.
type ProjectConfig struct {
	ThemePath  string `yaml:"theme_path"`
	PersistDir string `yaml:"persist_dir"`
	PersistKey string `yaml:"persist_key"`
	DebounceMs int    `yaml:"debounce_ms"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	LogFile    string `yaml:"log_file"`
	CallLog    string `yaml:"call_log"`
	CacheSize  int    `yaml:"cache_size"`
}

// loadProjectConfig reads a project config file.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// options is the effective configuration of one CLI invocation.
type options struct {
	ThemePath  string
	PersistDir string
	PersistKey string
	NoPersist  bool
	DebounceMs int
	LogLevel   string
	LogFormat  string
	LogFile    string
	CallLog    string
	CacheSize  int
}

func defaultOptions() options {
	return options{
		PersistDir: filepath.Join(".uistyle", "themes"),
		PersistKey: "theme",
		DebounceMs: persist.DefaultDebounceMs,
		LogLevel:   "warn",
		LogFormat:  "text",
		CacheSize:  command.DefaultCacheSize,
	}
}

// resolveOptions applies the fallback chain:
//  1. Explicit flags (--theme, --persist-dir, ...)
//  2. Values from the project config file (--config, default .uistyle/config.yaml)
//  3. Built-in defaults
func resolveOptions(f flagSet) (options, error) {
	opts := defaultOptions()

	path := f.get("config", defaultConfigPath)
	cfg, err := loadProjectConfig(path)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		setString(&opts.ThemePath, cfg.ThemePath)
		setString(&opts.PersistDir, cfg.PersistDir)
		setString(&opts.PersistKey, cfg.PersistKey)
		setString(&opts.LogLevel, cfg.LogLevel)
		setString(&opts.LogFormat, cfg.LogFormat)
		setString(&opts.LogFile, cfg.LogFile)
		setString(&opts.CallLog, cfg.CallLog)
		if cfg.DebounceMs > 0 {
			opts.DebounceMs = cfg.DebounceMs
		}
		if cfg.CacheSize > 0 {
			opts.CacheSize = cfg.CacheSize
		}
	}

	setString(&opts.ThemePath, f.get("theme", ""))
	setString(&opts.PersistDir, f.get("persist-dir", ""))
	setString(&opts.PersistKey, f.get("persist-key", ""))
	setString(&opts.LogLevel, f.get("log-level", ""))
	setString(&opts.LogFormat, f.get("log-format", ""))
	setString(&opts.LogFile, f.get("log-file", ""))
	setString(&opts.CallLog, f.get("call-log", ""))
	opts.NoPersist = f.has("no-persist")

	if v := f.get("debounce-ms", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid --debounce-ms %q", v)
		}
		opts.DebounceMs = n
	}
	return opts, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
