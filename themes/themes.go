// Package themes provides the embedded built-in theme documents.
package themes

import _ "embed"

// DefaultJSON is the bundled default theme, embedded at build time.
//
//go:embed default/theme.json
var DefaultJSON []byte
