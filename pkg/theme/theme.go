// Package theme loads theme documents (JSON or TOML), validates them and
// seeds a token store from them.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gnana997/uistyle/pkg/tokens"
	"github.com/gnana997/uistyle/themes"
)

// Token categories.
const (
	CategoryColor      = "color"
	CategoryRadius     = "radius"
	CategorySpacing    = "spacing"
	CategoryTypography = "typography"
)

// Theme is a named set of design tokens with optional dark-mode values.
type Theme struct {
	Name        string  `json:"name" toml:"name"`
	Version     string  `json:"version" toml:"version"`
	Description string  `json:"description,omitempty" toml:"description,omitempty"`
	Mode        string  `json:"mode,omitempty" toml:"mode,omitempty"`
	Tokens      []Token `json:"tokens" toml:"tokens"`
}

// Token is one design token. Dark, when set, replaces Value in dark mode.
type Token struct {
	Name     string `json:"name" toml:"name"`
	Value    string `json:"value" toml:"value"`
	Dark     string `json:"dark,omitempty" toml:"dark,omitempty"`
	Category string `json:"category" toml:"category"`
}

// Index provides O(1) lookups into a theme.
type Index struct {
	// TokenByName maps token name -> *Token.
	TokenByName map[string]*Token

	// TokensByCategory maps category -> tokens in document order.
	TokensByCategory map[string][]*Token
}

// Format is a theme document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .toml is read as JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

var validators = map[string]func(string) bool{
	CategoryColor:      tokens.IsRawColor,
	CategoryRadius:     tokens.IsLength,
	CategorySpacing:    tokens.IsLength,
	CategoryTypography: tokens.IsLength,
}

// Validate checks the theme for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (t *Theme) Validate() []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("theme name is required"))
	}
	if t.Version == "" {
		errs = append(errs, fmt.Errorf("theme version is required"))
	}
	if t.Mode != "" {
		if _, err := tokens.ParseMode(t.Mode); err != nil {
			errs = append(errs, fmt.Errorf("theme mode: %w", err))
		}
	}
	if len(t.Tokens) == 0 {
		errs = append(errs, fmt.Errorf("theme must define at least one token"))
	}

	names := make(map[string]bool, len(t.Tokens))
	for i, tok := range t.Tokens {
		if tok.Name == "" {
			errs = append(errs, fmt.Errorf("tokens[%d]: name is required", i))
			continue
		}
		if names[tok.Name] {
			errs = append(errs, fmt.Errorf("token %q: duplicate token name", tok.Name))
			continue
		}
		names[tok.Name] = true

		valid, ok := validators[tok.Category]
		if !ok {
			errs = append(errs, fmt.Errorf("token %q: invalid category %q (must be color/radius/spacing/typography)", tok.Name, tok.Category))
			continue
		}
		if !valid(tok.Value) {
			errs = append(errs, fmt.Errorf("token %q: value %q is not a valid %s", tok.Name, tok.Value, tok.Category))
		}
		if tok.Dark != "" && !valid(tok.Dark) {
			errs = append(errs, fmt.Errorf("token %q: dark value %q is not a valid %s", tok.Name, tok.Dark, tok.Category))
		}
	}

	return errs
}

// BuildIndex creates lookup maps for fast access.
// Should be called after Validate() passes.
func (t *Theme) BuildIndex() *Index {
	idx := &Index{
		TokenByName:      make(map[string]*Token, len(t.Tokens)),
		TokensByCategory: make(map[string][]*Token),
	}
	for i := range t.Tokens {
		tok := &t.Tokens[i]
		idx.TokenByName[tok.Name] = tok
		idx.TokensByCategory[tok.Category] = append(idx.TokensByCategory[tok.Category], tok)
	}
	return idx
}

// LoadFromFile loads a theme file, validates it, and builds the index. The
// format follows the file extension.
func LoadFromFile(path string) (*Theme, *Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return LoadFromBytes(data, FormatForPath(path))
}

// LoadFromBytes parses a theme document, validates it, and builds the index.
func LoadFromBytes(data []byte, format Format) (*Theme, *Index, error) {
	var theme Theme
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &theme); err != nil {
			return nil, nil, fmt.Errorf("failed to parse theme TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &theme); err != nil {
			return nil, nil, fmt.Errorf("failed to parse theme JSON: %w", err)
		}
	}

	if errs := theme.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("theme validation failed: %w", errors.Join(errs...))
	}

	return &theme, theme.BuildIndex(), nil
}

// Default returns the embedded default theme.
func Default() (*Theme, *Index, error) {
	return LoadFromBytes(themes.DefaultJSON, FormatJSON)
}
