// Package persist batches theme patches produced by style commands and writes
// them to a Sink after a quiet period.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDebounceMs is used when Options.DebounceMs is zero.
const DefaultDebounceMs = 500

// Sink stores a merged patch for a theme key.
type Sink interface {
	Write(ctx context.Context, key string, patch map[string]string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, key string, patch map[string]string) error

// Write calls f.
func (f SinkFunc) Write(ctx context.Context, key string, patch map[string]string) error {
	return f(ctx, key, patch)
}

// Options configures a Scheduler.
type Options struct {
	// DebounceMs is the quiet period after the last patch for a key before it
	// is written.
	DebounceMs int
}

// Scheduler owns the pending patches. Patches for the same key merge (later
// values win) and restart that key's timer; each key is written once its
// timer fires.
//
// **Usage:**
//
//	s := persist.NewScheduler(persist.NewFileSink(dir), persist.Options{}, logger)
//	defer s.Stop(context.Background())
//	s.SchedulePersist("site", map[string]string{"colors.primary": "217 91% 60%"})
//
// Write failures are logged and counted. Callers never see them.
type Scheduler struct {
	sink   Sink
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]*pendingWrite
	stopped bool

	flushed atomic.Int64
	failed  atomic.Int64
}

type pendingWrite struct {
	patch map[string]string
	timer *time.Timer
}

// Stats is a point-in-time view of a Scheduler.
type Stats struct {
	Pending int   `json:"pending"`
	Flushed int64 `json:"flushed"`
	Failed  int64 `json:"failed"`
}

// NewScheduler creates a Scheduler writing to sink.
func NewScheduler(sink Sink, options Options, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if options.DebounceMs <= 0 {
		options.DebounceMs = DefaultDebounceMs
	}
	return &Scheduler{
		sink:    sink,
		delay:   time.Duration(options.DebounceMs) * time.Millisecond,
		logger:  logger,
		pending: make(map[string]*pendingWrite),
	}
}

// SchedulePersist merges patch into the pending write for key. It never
// blocks on I/O. Patches scheduled after Stop are dropped.
func (s *Scheduler) SchedulePersist(key string, patch map[string]string) {
	if key == "" || len(patch) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.Warn("Dropping theme patch after scheduler stop", "key", key, "fields", len(patch))
		return
	}

	pw, ok := s.pending[key]
	if ok {
		pw.timer.Stop()
	} else {
		pw = &pendingWrite{patch: make(map[string]string, len(patch))}
		s.pending[key] = pw
	}
	for path, value := range patch {
		pw.patch[path] = value
	}

	pw.timer = time.AfterFunc(s.delay, func() {
		s.fire(key, pw)
	})
}

func (s *Scheduler) fire(key string, pw *pendingWrite) {
	s.mu.Lock()
	if s.pending[key] != pw {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	_ = s.write(context.Background(), key, pw.patch)
}

func (s *Scheduler) write(ctx context.Context, key string, patch map[string]string) error {
	if err := s.sink.Write(ctx, key, patch); err != nil {
		s.failed.Add(1)
		s.logger.Warn("Failed to persist theme patch", "key", key, "fields", len(patch), "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	s.flushed.Add(1)
	s.logger.Debug("Persisted theme patch", "key", key, "fields", len(patch))
	return nil
}

// Flush writes every pending patch now, in key order, and returns the joined
// write errors.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[string]*pendingWrite)
	for _, pw := range batch {
		pw.timer.Stop()
	}
	s.mu.Unlock()

	keys := make([]string, 0, len(batch))
	for key := range batch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.write(ctx, key, batch[key].patch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stop flushes pending patches and rejects new ones. Safe to call more than
// once.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	return s.Flush(ctx)
}

// Pending returns the keys with unwritten patches, sorted.
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Stats returns scheduler counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	n := len(s.pending)
	s.mu.Unlock()

	return Stats{
		Pending: n,
		Flushed: s.flushed.Load(),
		Failed:  s.failed.Load(),
	}
}
