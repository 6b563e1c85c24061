package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type envelopeRow struct {
	CacheKey  string    `db:"cache_key"`
	Payload   []byte    `db:"payload"`
	Version   string    `db:"version"`
	Timestamp time.Time `db:"timestamp"`
}

// DBStore implements CacheStore on MySQL, for deployments where several
// processes share one envelope cache instead of per-machine files.
type DBStore struct {
	db *sqlx.DB
}

var _ CacheStore = (*DBStore)(nil)

// NewDBStore creates a DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Read returns the envelope stored under key, or (nil, nil) when absent.
func (r *DBStore) Read(ctx context.Context, key string) (*Envelope, error) {
	var row envelopeRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM cache_envelopes WHERE cache_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(cache_envelope) > %w", err)
	}
	return &Envelope{
		Data:      row.Payload,
		Version:   row.Version,
		Timestamp: row.Timestamp,
	}, nil
}

// Write inserts or updates the envelope stored under key.
func (r *DBStore) Write(ctx context.Context, key string, envelope *Envelope) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cache_envelopes (cache_key, payload, version, timestamp)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload), version = VALUES(version), timestamp = VALUES(timestamp)`,
		key, []byte(envelope.Data), envelope.Version, envelope.Timestamp)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert cache_envelope) > %w", err)
	}
	return nil
}

// Clear removes the envelope stored under key. A missing row is not an error.
func (r *DBStore) Clear(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cache_envelopes WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("db.ExecContext(delete cache_envelope) > %w", err)
	}
	return nil
}
