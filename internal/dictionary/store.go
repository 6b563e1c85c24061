package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// SnapshotVersion is the schema version stamped on persisted snapshots.
	// Bump it when the bulk dataset shape changes; stale envelopes are then
	// discarded regardless of age.
	SnapshotVersion = "2"
	// MeaningsVersion versions the meaning cache independently.
	MeaningsVersion = "1"

	snapshotKey = "dictionary_snapshot"
	meaningsKey = "meanings"
)

// Store owns the process-wide dictionary snapshot and meaning cache. The
// snapshot loads at most once per process; concurrent callers during a load
// in flight wait for that load instead of fetching again. Meaning-cache
// writes are append-only.
type Store struct {
	fetcher Fetcher
	cache   CacheStore
	ttl     time.Duration
	now     func() time.Time

	snapshotMu sync.Mutex
	loaded     bool
	snapshot   *Snapshot

	meaningsMu     sync.RWMutex
	meaningsLoaded bool
	meanings       map[string]MeaningEntry
}

// StoreOption adjusts a Store.
type StoreOption func(*Store)

// WithTTL overrides the envelope TTL.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store over the given fetch and persistence dependencies.
func NewStore(fetcher Fetcher, cache CacheStore, opts ...StoreOption) *Store {
	s := &Store{
		fetcher: fetcher,
		cache:   cache,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the loaded snapshot, loading it on first use. It returns
// nil when neither the persisted cache nor the network can produce a valid
// payload; callers degrade to the linguistic-library strategy in that case.
// A failed load is not latched, so a later call tries again.
func (s *Store) Snapshot(ctx context.Context) *Snapshot {
	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	if s.loaded {
		return s.snapshot
	}

	if snapshot := s.loadSnapshotFromCache(ctx); snapshot != nil {
		s.snapshot = snapshot
		s.loaded = true
		return s.snapshot
	}

	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		slog.Warn("dictionary snapshot unavailable", "error", err)
		return nil
	}
	s.snapshot = snapshot
	s.loaded = true
	return s.snapshot
}

func (s *Store) loadSnapshotFromCache(ctx context.Context) *Snapshot {
	envelope, err := s.cache.Read(ctx, snapshotKey)
	if err != nil {
		slog.Warn("reading snapshot cache failed", "error", err)
		return nil
	}
	if !envelope.Fresh(SnapshotVersion, s.ttl, s.now()) {
		if envelope != nil {
			slog.Debug("discarding stale snapshot cache",
				"cachedVersion", envelope.Version,
				"wantVersion", SnapshotVersion,
				"age", s.now().Sub(envelope.Timestamp))
			if err := s.cache.Clear(ctx, snapshotKey); err != nil {
				slog.Warn("clearing stale snapshot cache failed", "error", err)
			}
		}
		return nil
	}

	snapshot, err := ParseSnapshot(envelope.Data)
	if err != nil {
		slog.Warn("clearing malformed snapshot cache", "error", err)
		if clearErr := s.cache.Clear(ctx, snapshotKey); clearErr != nil {
			slog.Warn("clearing snapshot cache failed", "error", clearErr)
		}
		return nil
	}
	return snapshot
}

func (s *Store) fetchSnapshot(ctx context.Context) (*Snapshot, error) {
	payload, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch > %w", err)
	}
	snapshot, err := ParseSnapshot(payload)
	if err != nil {
		return nil, fmt.Errorf("ParseSnapshot > %w", err)
	}

	envelope := NewEnvelope(payload, SnapshotVersion, s.now())
	if err := s.cache.Write(ctx, snapshotKey, envelope); err != nil {
		// Persisting is best effort; the in-memory snapshot still serves.
		slog.Warn("persisting snapshot cache failed", "error", err)
	}
	slog.Info("dictionary snapshot loaded", "entries", snapshot.Len())
	return snapshot, nil
}

// Meaning returns the cached meaning entry of a character.
func (s *Store) Meaning(ctx context.Context, char string) (MeaningEntry, bool) {
	s.ensureMeanings(ctx)
	s.meaningsMu.RLock()
	defer s.meaningsMu.RUnlock()
	entry, ok := s.meanings[char]
	return entry, ok
}

// PutMeaning records a resolved meaning. Existing keys are never overwritten;
// the cache grows append-only.
func (s *Store) PutMeaning(ctx context.Context, char string, entry MeaningEntry) {
	s.ensureMeanings(ctx)
	s.meaningsMu.Lock()
	defer s.meaningsMu.Unlock()

	if _, ok := s.meanings[char]; ok {
		return
	}
	s.meanings[char] = entry
	s.persistMeaningsLocked(ctx)
}

func (s *Store) ensureMeanings(ctx context.Context) {
	s.meaningsMu.Lock()
	defer s.meaningsMu.Unlock()
	if s.meaningsLoaded {
		return
	}
	s.meanings = make(map[string]MeaningEntry)
	s.meaningsLoaded = true

	envelope, err := s.cache.Read(ctx, meaningsKey)
	if err != nil {
		slog.Warn("reading meaning cache failed", "error", err)
		return
	}
	if !envelope.Fresh(MeaningsVersion, s.ttl, s.now()) {
		if envelope != nil {
			if err := s.cache.Clear(ctx, meaningsKey); err != nil {
				slog.Warn("clearing stale meaning cache failed", "error", err)
			}
		}
		return
	}

	var meanings map[string]MeaningEntry
	if err := json.Unmarshal(envelope.Data, &meanings); err != nil {
		slog.Warn("clearing malformed meaning cache", "error", err)
		if clearErr := s.cache.Clear(ctx, meaningsKey); clearErr != nil {
			slog.Warn("clearing meaning cache failed", "error", clearErr)
		}
		return
	}
	s.meanings = meanings
}

func (s *Store) persistMeaningsLocked(ctx context.Context) {
	payload, err := json.Marshal(s.meanings)
	if err != nil {
		slog.Warn("encoding meaning cache failed", "error", err)
		return
	}
	envelope := NewEnvelope(payload, MeaningsVersion, s.now())
	if err := s.cache.Write(ctx, meaningsKey, envelope); err != nil {
		slog.Warn("persisting meaning cache failed", "error", err)
	}
}

// CacheStatus describes one persisted envelope for the cache inspection
// command.
type CacheStatus struct {
	Key       string
	Present   bool
	Version   string
	Timestamp time.Time
	Fresh     bool
}

// Status reports the state of both persisted envelopes.
func (s *Store) Status(ctx context.Context) []CacheStatus {
	statuses := make([]CacheStatus, 0, 2)
	for _, probe := range []struct {
		key     string
		version string
	}{
		{key: snapshotKey, version: SnapshotVersion},
		{key: meaningsKey, version: MeaningsVersion},
	} {
		status := CacheStatus{Key: probe.key}
		envelope, err := s.cache.Read(ctx, probe.key)
		if err == nil && envelope != nil {
			status.Present = true
			status.Version = envelope.Version
			status.Timestamp = envelope.Timestamp
			status.Fresh = envelope.Fresh(probe.version, s.ttl, s.now())
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// ClearCaches removes both persisted envelopes and resets the in-memory
// loaded state so the next query reloads.
func (s *Store) ClearCaches(ctx context.Context) error {
	if err := s.cache.Clear(ctx, snapshotKey); err != nil {
		return fmt.Errorf("cache.Clear(snapshot) > %w", err)
	}
	if err := s.cache.Clear(ctx, meaningsKey); err != nil {
		return fmt.Errorf("cache.Clear(meanings) > %w", err)
	}

	s.snapshotMu.Lock()
	s.loaded = false
	s.snapshot = nil
	s.snapshotMu.Unlock()

	s.meaningsMu.Lock()
	s.meaningsLoaded = false
	s.meanings = nil
	s.meaningsMu.Unlock()
	return nil
}
