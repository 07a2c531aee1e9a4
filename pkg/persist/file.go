package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileSink keeps one JSON document per key under a directory. Each Write
// merges the patch into the existing document.
type FileSink struct {
	dir string
	mu  sync.Mutex
}

// NewFileSink creates a FileSink rooted at dir. The directory is created on
// first write.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Path returns the file that holds key.
func (f *FileSink) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Write merges patch into <dir>/<key>.json.
func (f *FileSink) Write(ctx context.Context, key string, patch map[string]string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load(key)
	if err != nil {
		return err
	}
	for path, value := range patch {
		doc[path] = value
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", f.dir, err)
	}

	tmp := f.Path(key) + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.Path(key), err)
	}
	return nil
}

// Load returns the stored document for key, or an empty map when nothing has
// been written yet.
func (f *FileSink) Load(key string) (map[string]string, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(key)
}

func (f *FileSink) load(key string) (map[string]string, error) {
	doc := make(map[string]string)

	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path(key), err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path(key), err)
	}
	return doc, nil
}

func validKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid persistence key %q", key)
	}
	return nil
}
