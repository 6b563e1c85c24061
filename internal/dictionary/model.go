// Package dictionary holds the two character-data sources: the bulk
// HTTP-fetched snapshot and the lazily populated meaning cache, both persisted
// through versioned, TTL-stamped envelopes.
package dictionary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/hanzikit/hanzikit/internal/pinyin"
)

// PronunciationMap maps a toned pinyin syllable to its ordered definitions.
// Definition order is source-preserved: the first entry is the primary sense.
type PronunciationMap map[string][]string

// Readings returns the map's toned syllables in deterministic order.
func (m PronunciationMap) Readings() []string {
	readings := make([]string, 0, len(m))
	for reading := range m {
		readings = append(readings, reading)
	}
	sort.Strings(readings)
	return readings
}

// PlaceholderGloss stands in when neither source has a meaning for a
// character.
const PlaceholderGloss = "暂无释义"

// JoinDefinitions renders one reading's definition list for display.
func JoinDefinitions(definitions []string) string {
	return strings.Join(definitions, "；")
}

// Aggregate renders the whole map as one meaning string: a single reading's
// definitions joined directly, a polyphonic entry as bracketed-reading blocks
// separated by blank lines.
func (m PronunciationMap) Aggregate() string {
	readings := m.Readings()
	if len(readings) == 0 {
		return ""
	}
	if len(readings) == 1 {
		return JoinDefinitions(m[readings[0]])
	}
	blocks := make([]string, 0, len(readings))
	for _, reading := range readings {
		blocks = append(blocks, "["+reading+"] "+JoinDefinitions(m[reading]))
	}
	return strings.Join(blocks, "\n\n")
}

// Pronunciation is one reading or a list of readings of a character. The JSON
// form is a bare string for a single reading and an array otherwise.
type Pronunciation struct {
	readings []string
}

// Single wraps one reading.
func Single(reading string) Pronunciation {
	return Pronunciation{readings: []string{reading}}
}

// Multiple wraps a list of readings.
func Multiple(readings []string) Pronunciation {
	return Pronunciation{readings: readings}
}

// Readings returns the underlying reading list.
func (p Pronunciation) Readings() []string {
	return p.readings
}

// IsSingle reports whether exactly one reading is carried.
func (p Pronunciation) IsSingle() bool {
	return len(p.readings) == 1
}

// Display renders the pronunciation for the UI: a lone reading as-is,
// multiple readings slash-joined.
func (p Pronunciation) Display() string {
	return strings.Join(p.readings, "/")
}

// MarshalJSON writes a single reading as a string and multiple as an array.
func (p Pronunciation) MarshalJSON() ([]byte, error) {
	if p.IsSingle() {
		return json.Marshal(p.readings[0])
	}
	return json.Marshal(p.readings)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var readings []string
		if err := json.Unmarshal(data, &readings); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.readings = readings
		return nil
	}
	var reading string
	if err := json.Unmarshal(data, &reading); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.readings = []string{reading}
	return nil
}

// MeaningEntry is one meaning-cache record.
type MeaningEntry struct {
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples"`
}

// ScanPair is one (character, toned pronunciation) pair produced by a
// snapshot prefix scan.
type ScanPair struct {
	Char  rune
	Toned string
}

// Snapshot is the in-memory form of the bulk dictionary dataset, with a
// prefix index over toneless readings for the matcher's first strategy.
type Snapshot struct {
	entries map[rune]PronunciationMap
	index   *patricia.Trie
}

// ParseSnapshot deserializes and validates the bulk dataset, shaped
// { character: { tonedPinyin: [definitions] } }. Keys that are not a single
// CJK character are skipped; a payload with no valid entry fails closed.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}

	entries := make(map[rune]PronunciationMap, len(raw))
	for key, pronunciations := range raw {
		r, ok := pinyin.SingleHan(key)
		if !ok {
			continue
		}
		if len(pronunciations) == 0 {
			continue
		}
		entries[r] = PronunciationMap(pronunciations)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid character entries in payload of %d keys", len(raw))
	}

	snapshot := &Snapshot{
		entries: entries,
		index:   patricia.NewTrie(),
	}
	for r, pronunciations := range entries {
		for toned := range pronunciations {
			snapshot.index.Insert(indexKey(pinyin.Normalize(toned), r, toned), ScanPair{Char: r, Toned: toned})
		}
	}
	return snapshot, nil
}

// indexKey lays out trie keys as toneless reading, character, toned reading,
// NUL-separated, so traversal order is lexicographic by toneless reading and a
// query prefix matches exactly the pairs whose toneless reading extends it.
func indexKey(toneless string, r rune, toned string) patricia.Prefix {
	return patricia.Prefix(toneless + "\x00" + string(r) + "\x00" + toned)
}

// Lookup returns the pronunciation map of r, or nil when absent.
func (s *Snapshot) Lookup(r rune) PronunciationMap {
	if s == nil {
		return nil
	}
	return s.entries[r]
}

// Len returns the number of character entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// errScanDone stops a trie traversal once the admission cap is reached.
var errScanDone = fmt.Errorf("scan done")

// ScanPrefix returns every (character, pronunciation) pair whose toneless
// reading starts with the toneless prefix, in lexicographic toneless order,
// capped at limit admissions.
func (s *Snapshot) ScanPrefix(prefix string, limit int) []ScanPair {
	if s == nil || prefix == "" || limit <= 0 {
		return nil
	}

	var pairs []ScanPair
	err := s.index.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		pair, ok := item.(ScanPair)
		if !ok {
			return nil
		}
		if !strings.HasPrefix(pinyin.Normalize(pair.Toned), prefix) {
			return nil
		}
		pairs = append(pairs, pair)
		if len(pairs) >= limit {
			return errScanDone
		}
		return nil
	})
	if err != nil && err != errScanDone {
		return pairs
	}
	return pairs
}
