package dictionary

import (
	"encoding/json"
	"time"
)

// DefaultTTL is how long a persisted envelope stays fresh.
const DefaultTTL = 30 * 24 * time.Hour

// Envelope wraps a cached payload with the schema version it was written
// under and its load timestamp.
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope stamps data with version and now.
func NewEnvelope(data []byte, version string, now time.Time) *Envelope {
	return &Envelope{
		Data:      data,
		Version:   version,
		Timestamp: now,
	}
}

// Fresh reports whether the envelope was written under the wanted schema
// version and has not outlived ttl. A version mismatch invalidates the
// envelope even before the TTL expires.
func (e *Envelope) Fresh(version string, ttl time.Duration, now time.Time) bool {
	if e == nil {
		return false
	}
	if e.Version != version {
		return false
	}
	return now.Sub(e.Timestamp) <= ttl
}
