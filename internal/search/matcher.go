package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/frequency"
	"github.com/hanzikit/hanzikit/internal/linguist"
	"github.com/hanzikit/hanzikit/internal/pinyin"
)

const (
	// scanCap bounds strategy 1's admissions so a one-letter query cannot
	// walk the whole dictionary.
	scanCap = 500
	// lowThreshold triggers the shortened-prefix retry when strategies 1-2
	// produce fewer results.
	lowThreshold = 10
	// spellToWordCap bounds strategy 2's reverse-lookup candidates, keeping
	// the most frequent characters.
	spellToWordCap = 50
)

// matcher produces the unordered candidate set for a normalized query by
// running its strategies in priority order against a shared result set.
type matcher struct {
	store *dictionary.Store
	ling  linguist.Library
	freq  frequency.Ranker
}

// run executes strategies 1 and 2 in order against set. Later strategies only
// fill gaps: the merge rules in resultSet decide admission.
func (m *matcher) run(ctx context.Context, normalized, raw string, set *resultSet) {
	runStrategy("dictionary scan", func() {
		m.scanStrategy(ctx, normalized, set)
	})
	runStrategy("spell to word", func() {
		m.spellStrategy(ctx, normalized, raw, set)
	})
}

// runStrategy isolates one strategy: a panic inside it contributes zero
// results instead of failing the search.
func runStrategy(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("search strategy failed", "strategy", name, "panic", r)
		}
	}()
	fn()
}

// scanStrategy admits every snapshot (character, pronunciation) pair whose
// toneless reading starts with the query, capped at scanCap.
func (m *matcher) scanStrategy(ctx context.Context, normalized string, set *resultSet) {
	snapshot := m.store.Snapshot(ctx)
	if snapshot == nil {
		return
	}
	for _, pair := range snapshot.ScanPrefix(normalized, scanCap) {
		set.add(candidate{
			char:          pair.Char,
			pronunciation: dictionary.Single(pair.Toned),
			toneless:      pinyin.Normalize(pair.Toned),
			meaning:       dictionary.JoinDefinitions(snapshot.Lookup(pair.Char)[pair.Toned]),
		})
	}
}

// spellStrategy asks the linguistic library for characters spelling the raw
// query and admits their readings, skipping any character the dictionary scan
// already covered under any pronunciation.
func (m *matcher) spellStrategy(ctx context.Context, normalized, raw string, set *resultSet) {
	chars := m.ling.SpellToWord(raw)
	if len(chars) == 0 {
		return
	}
	// Keep the most frequent characters when the reverse lookup fans out.
	sort.SliceStable(chars, func(i, j int) bool {
		return m.freq.Rank(chars[i]) < m.freq.Rank(chars[j])
	})
	if len(chars) > spellToWordCap {
		chars = chars[:spellToWordCap]
	}

	for _, char := range chars {
		if set.hasChar(char) {
			continue
		}
		for _, toned := range m.ling.Spell(char) {
			toneless := pinyin.Normalize(toned)
			if !strings.HasPrefix(toneless, normalized) {
				continue
			}
			set.add(candidate{
				char:          char,
				pronunciation: dictionary.Single(toned),
				toneless:      toneless,
				meaning:       m.meaningFor(ctx, char, toned),
			})
		}
	}
}

// meaningFor resolves a display meaning for one reading: the snapshot's
// definitions first, then the meaning cache, then the placeholder gloss.
func (m *matcher) meaningFor(ctx context.Context, char rune, toned string) string {
	if snapshot := m.store.Snapshot(ctx); snapshot != nil {
		if defs := snapshot.Lookup(char)[toned]; len(defs) > 0 {
			return dictionary.JoinDefinitions(defs)
		}
	}
	if entry, ok := m.store.Meaning(ctx, string(char)); ok && entry.Meaning != "" {
		return entry.Meaning
	}
	return dictionary.PlaceholderGloss
}
