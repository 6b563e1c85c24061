package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=cache.go -destination=../mocks/dictionary/mock_cache_store.go -package=mock_dictionary

// CacheStore persists envelope blobs under string keys. Read returns
// (nil, nil) on a miss; a corrupt stored blob is treated as a miss and
// cleared, never surfaced as an error.
type CacheStore interface {
	Read(ctx context.Context, key string) (*Envelope, error)
	Write(ctx context.Context, key string, envelope *Envelope) error
	Clear(ctx context.Context, key string) error
}

// FileStore is a CacheStore keeping one JSON file per key under a root
// directory.
type FileStore struct {
	rootDir string
}

// NewFileStore creates a FileStore rooted at cacheDirectory.
func NewFileStore(cacheDirectory string) *FileStore {
	return &FileStore{
		rootDir: cacheDirectory,
	}
}

func (f *FileStore) filePath(key string) string {
	return filepath.Join(f.rootDir, key+".json")
}

// Read loads the envelope stored under key. Missing and unparsable files are
// both misses; unparsable files are removed.
func (f *FileStore) Read(ctx context.Context, key string) (*Envelope, error) {
	contents, err := os.ReadFile(f.filePath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(contents, &envelope); err != nil {
		slog.Warn("clearing unparsable cache entry", "key", key, "error", err)
		if clearErr := f.Clear(ctx, key); clearErr != nil {
			return nil, fmt.Errorf("f.Clear > %w", clearErr)
		}
		return nil, nil
	}
	return &envelope, nil
}

// Write stores the envelope under key, creating the root directory on demand.
func (f *FileStore) Write(_ context.Context, key string, envelope *Envelope) error {
	if err := os.MkdirAll(f.rootDir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	contents, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	file, err := os.Create(f.filePath(key))
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

// Clear removes the entry stored under key. A missing entry is not an error.
func (f *FileStore) Clear(_ context.Context, key string) error {
	if err := os.Remove(f.filePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}
