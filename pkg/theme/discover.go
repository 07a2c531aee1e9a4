package theme

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches theme documents in any directory.
var DefaultInclude = []string{"**/*.theme.json", "**/*.theme.toml", "**/theme.json", "**/theme.toml"}

// DefaultExclude skips dependency, VCS and build directories.
var DefaultExclude = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	".next/**",
}

// Discover walks rootDir and returns the theme files matching include and
// not matching exclude, as sorted absolute paths. Nil include uses
// DefaultInclude.
func Discover(rootDir string, include, exclude []string) ([]string, error) {
	if include == nil {
		include = DefaultInclude
	}
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if matchAny(exclude, relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !matchAny(include, relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func matchAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if m, _ := doublestar.PathMatch(pattern, relPath); m {
			return true
		}
	}
	return false
}

// Summary describes a discovered theme file.
type Summary struct {
	Path    string `json:"path"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Tokens  int    `json:"tokens"`
	Error   string `json:"error,omitempty"`
}

// Summarize loads each path and reports its name and token count, or the
// load error.
func Summarize(paths []string) []Summary {
	out := make([]Summary, 0, len(paths))
	for _, p := range paths {
		s := Summary{Path: p}
		t, _, err := LoadFromFile(p)
		if err != nil {
			s.Error = err.Error()
		} else {
			s.Name, s.Version, s.Tokens = t.Name, t.Version, len(t.Tokens)
		}
		out = append(out, s)
	}
	return out
}
