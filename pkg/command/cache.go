package command

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of normalised commands a Parser remembers.
const DefaultCacheSize = 512

// ParserConfig configures a memoising Parser.
type ParserConfig struct {
	// CacheSize bounds the LRU cache (default: DefaultCacheSize).
	CacheSize int

	// Debug logs cache evictions.
	Debug bool
}

// ParserStats reports cache effectiveness.
type ParserStats struct {
	Entries int     `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// Parser wraps Parse with an LRU cache keyed by the normalised text.
// Intents are values, so cached entries are shared safely; only Raw is
// rewritten per call.
//
// Safe for concurrent use.
type Parser struct {
	cache  *lru.Cache[string, ParsedIntent]
	hits   atomic.Int64
	misses atomic.Int64
	logger *slog.Logger
}

// NewParser creates a memoising parser.
func NewParser(config ParserConfig, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}

	cache, err := lru.NewWithEvict(config.CacheSize, func(key string, value ParsedIntent) {
		if config.Debug {
			logger.Debug("parser cache evicting command", "text", key, "type", value.Type)
		}
	})
	if err != nil {
		// only fails for a non-positive size, which is defaulted above
		panic(fmt.Sprintf("failed to create parser cache: %v", err))
	}

	return &Parser{cache: cache, logger: logger}
}

// Parse classifies text, serving repeated commands from the cache.
func (p *Parser) Parse(text string) ParsedIntent {
	key := normalize(text)

	if in, ok := p.cache.Get(key); ok {
		p.hits.Add(1)
		in.Raw = text
		return in
	}
	p.misses.Add(1)

	in := parseNormalized(key)
	p.cache.Add(key, in)

	in.Raw = text
	return in
}

// Purge drops every cached intent.
func (p *Parser) Purge() {
	p.cache.Purge()
}

// Stats returns cache counters.
func (p *Parser) Stats() ParserStats {
	hits, misses := p.hits.Load(), p.misses.Load()
	rate := 0.0
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return ParserStats{
		Entries: p.cache.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
	}
}
