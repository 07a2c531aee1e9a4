package theme

import (
	"sort"
	"strings"

	"github.com/gnana997/uistyle/pkg/resolve"
	"github.com/gnana997/uistyle/pkg/tokens"
)

const modePath = "mode"

// Sets splits the theme into the base token set and the dark overrides.
func (t *Theme) Sets() (base, dark map[string]string) {
	base = make(map[string]string, len(t.Tokens))
	dark = make(map[string]string)
	for _, tok := range t.Tokens {
		base[tok.Name] = tok.Value
		if tok.Dark != "" {
			dark[tok.Name] = tok.Dark
		}
	}
	return base, dark
}

// NewStore creates a MemoryStore seeded from the theme.
func (t *Theme) NewStore() *tokens.MemoryStore {
	base, dark := t.Sets()
	mode, err := tokens.ParseMode(t.Mode)
	if err != nil {
		mode = tokens.ModeLight
	}
	return tokens.NewMemoryStore(base, dark, mode)
}

// Apply replaces the token sets of store with the theme's, keeping the active
// mode.
func (t *Theme) Apply(store *tokens.MemoryStore) {
	store.Replace(t.Sets())
}

// ApplyPatch writes a persisted patch (persistence path -> value) back into
// store. Paths prefixed with tokens.DarkPathPrefix are written with the store
// in dark mode, the rest in light mode; the patch's mode (or the store's
// current mode) is active afterwards. Paired foreground tokens are recomputed
// the same way a style command computes them. Paths no target owns are
// returned.
func ApplyPatch(store tokens.Store, patch map[string]string) (changes []tokens.Change, unknown []string) {
	initial := store.Mode()
	final := initial

	var light, dark []string
	for path, value := range patch {
		switch {
		case path == modePath:
			mode, err := tokens.ParseMode(value)
			if err != nil {
				unknown = append(unknown, path)
				continue
			}
			final = mode
		case strings.HasPrefix(path, tokens.DarkPathPrefix):
			dark = append(dark, path)
		default:
			light = append(light, path)
		}
	}
	sort.Strings(light)
	sort.Strings(dark)

	set := func(id, value string) {
		changes = append(changes, tokens.Change{TokenID: id, OldValue: store.Get(id), NewValue: value})
		store.Set(id, value)
	}

	apply := func(mode tokens.Mode, paths []string) {
		if len(paths) == 0 {
			return
		}
		store.SetMode(mode)
		for _, path := range paths {
			value := patch[path]
			_, def, ok := resolve.DefinitionForPath(strings.TrimPrefix(path, tokens.DarkPathPrefix))
			if !ok || def.Category == resolve.CategoryMode || def.Category == resolve.CategoryLayout {
				unknown = append(unknown, path)
				continue
			}

			set(def.TokenID, value)
			if def.PairedForegroundTokenID != "" {
				if fg, ok := tokens.ContrastingForeground(value); ok {
					set(def.PairedForegroundTokenID, fg)
				}
			}
		}
	}

	apply(tokens.ModeLight, light)
	apply(tokens.ModeDark, dark)

	store.SetMode(final)
	if final != initial {
		changes = append(changes, tokens.Change{TokenID: tokens.ModeTokenID, OldValue: string(initial), NewValue: string(final)})
	}

	sort.Strings(unknown)
	return changes, unknown
}
