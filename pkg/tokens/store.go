// Package tokens defines the design-token store boundary used by the command
// interpreter, an in-memory store implementation, and the concrete value tables
// (palette colors, radius/spacing/font-size scales) canonical names resolve to.
package tokens

import (
	"fmt"
	"maps"
	"sort"
	"sync"
)

// Mode is the current appearance of the token set.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ModeTokenID is the pseudo token reported in change records for mode switches.
const ModeTokenID = "mode"

// DarkPathPrefix marks persisted paths that belong to the dark token set.
const DarkPathPrefix = "dark."

// ParseMode converts "light" or "dark" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q (must be light or dark)", s)
}

// Store is the token store the interpreter reads and mutates. Implementations
// own their own synchronisation; callers never lock around them.
type Store interface {
	Get(tokenID string) string
	Set(tokenID, value string)
	Mode() Mode
	SetMode(mode Mode)
}

// darkOverrides is implemented by stores that keep separate dark values for
// some tokens only.
type darkOverrides interface {
	HasDarkOverride(tokenID string) bool
}

// WritesDark reports whether a Set of tokenID on s lands in the dark token
// set. Stores that do not report their overrides are assumed to keep every
// token per mode.
func WritesDark(s Store, tokenID string) bool {
	if s.Mode() != ModeDark {
		return false
	}
	if d, ok := s.(darkOverrides); ok {
		return d.HasDarkOverride(tokenID)
	}
	return true
}

// Change describes one mutation observed by a subscriber.
type Change struct {
	TokenID  string `json:"token_id"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// MemoryStore is a thread-safe Store holding a base token set and optional
// dark-mode overrides. In dark mode reads prefer the override; writes go to the
// override only when the token has one, so shape tokens stay shared.
type MemoryStore struct {
	mu          sync.RWMutex
	mode        Mode
	base        map[string]string
	dark        map[string]string
	subscribers map[int]func(Change)
	nextSubID   int
}

// NewMemoryStore creates a store from base values and dark overrides. The maps
// are copied.
func NewMemoryStore(base, dark map[string]string, mode Mode) *MemoryStore {
	if mode == "" {
		mode = ModeLight
	}
	s := &MemoryStore{
		mode:        mode,
		base:        make(map[string]string, len(base)),
		dark:        make(map[string]string, len(dark)),
		subscribers: make(map[int]func(Change)),
	}
	maps.Copy(s.base, base)
	maps.Copy(s.dark, dark)
	return s
}

// NewDefaultStore returns a MemoryStore seeded with DefaultLight and DefaultDark.
func NewDefaultStore() *MemoryStore {
	return NewMemoryStore(DefaultLight, DefaultDark, ModeLight)
}

// Get returns the current value of tokenID, or "" if unknown.
func (s *MemoryStore) Get(tokenID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(tokenID)
}

func (s *MemoryStore) getLocked(tokenID string) string {
	if s.mode == ModeDark {
		if v, ok := s.dark[tokenID]; ok {
			return v
		}
	}
	return s.base[tokenID]
}

// Set writes tokenID in the active token set and notifies subscribers.
func (s *MemoryStore) Set(tokenID, value string) {
	s.mu.Lock()
	old := s.getLocked(tokenID)
	if _, ok := s.dark[tokenID]; ok && s.mode == ModeDark {
		s.dark[tokenID] = value
	} else {
		s.base[tokenID] = value
	}
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, Change{TokenID: tokenID, OldValue: old, NewValue: value})
}

// HasDarkOverride reports whether tokenID has its own dark-mode value.
func (s *MemoryStore) HasDarkOverride(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dark[tokenID]
	return ok
}

// Mode returns the active mode.
func (s *MemoryStore) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the active mode and notifies subscribers with a "mode" change.
func (s *MemoryStore) SetMode(mode Mode) {
	s.mu.Lock()
	old := s.mode
	s.mode = mode
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if old != mode {
		notify(subs, Change{TokenID: ModeTokenID, OldValue: string(old), NewValue: string(mode)})
	}
}

// Replace swaps both token sets at once, keeping the active mode. Used when a
// theme file is reloaded.
func (s *MemoryStore) Replace(base, dark map[string]string) {
	s.mu.Lock()
	s.base = make(map[string]string, len(base))
	s.dark = make(map[string]string, len(dark))
	maps.Copy(s.base, base)
	maps.Copy(s.dark, dark)
	s.mu.Unlock()
}

// Subscribe registers fn for every change. The returned func unsubscribes.
// fn runs synchronously on the writer's goroutine, outside the store lock.
func (s *MemoryStore) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the effective token values for the active mode.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.base))
	for id := range s.base {
		out[id] = s.getLocked(id)
	}
	if s.mode == ModeDark {
		for id, v := range s.dark {
			out[id] = v
		}
	}
	return out
}

// IDs returns the known token IDs, sorted.
func (s *MemoryStore) IDs() []string {
	snap := s.Snapshot()
	ids := make([]string, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *MemoryStore) subscribersLocked() []func(Change) {
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	subs := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subscribers[id])
	}
	return subs
}

func notify(subs []func(Change), c Change) {
	for _, fn := range subs {
		fn(c)
	}
}
