// Package search implements the character-search pipeline: normalize, match
// through sequential fallback strategies, merge, deduplicate and rank.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hanzikit/hanzikit/assets"
	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/frequency"
	"github.com/hanzikit/hanzikit/internal/linguist"
	"github.com/hanzikit/hanzikit/internal/pinyin"
)

// randomCount is how many entries the initial random view carries.
const randomCount = 12

// Result is one ranked search hit.
type Result struct {
	Character     string                   `json:"character"`
	Pronunciation dictionary.Pronunciation `json:"pronunciation"`
	Brief         string                   `json:"brief"`
}

type seedFile struct {
	Syllables  []string `yaml:"syllables"`
	Characters string   `yaml:"characters"`
}

// Engine runs searches against the dictionary store and the linguistic
// library. It holds no per-query state; the shared caches live in the store.
type Engine struct {
	store   *dictionary.Store
	ling    linguist.Library
	freq    frequency.Ranker
	matcher *matcher
	ranker  *ranker
	seeds   seedFile
	intn    func(n int) int
}

// Option adjusts an Engine.
type Option func(*Engine)

// WithIntn overrides the random source, for deterministic tests.
func WithIntn(intn func(n int) int) Option {
	return func(e *Engine) {
		e.intn = intn
	}
}

// NewEngine wires a search engine over its collaborators.
func NewEngine(store *dictionary.Store, ling linguist.Library, freq frequency.Ranker, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		ling:    ling,
		freq:    freq,
		matcher: &matcher{store: store, ling: ling, freq: freq},
		ranker:  newRanker(freq),
		intn:    rand.Intn,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.loadSeeds(); err != nil {
		slog.Warn("seed data unavailable", "error", err)
	}
	return e
}

func (e *Engine) loadSeeds() error {
	contents, err := assets.Data.ReadFile("data/seed.yaml")
	if err != nil {
		return fmt.Errorf("assets.Data.ReadFile(seed) > %w", err)
	}
	if err := yaml.Unmarshal(contents, &e.seeds); err != nil {
		return fmt.Errorf("yaml.Unmarshal(seed) > %w", err)
	}
	return nil
}

// Search resolves a keyword to a ranked result list. A query containing
// literal CJK characters short-circuits pinyin matching entirely; an empty or
// whitespace query yields an empty list without touching any strategy.
// Degraded data sources shrink the list, they never fail it.
func (e *Engine) Search(ctx context.Context, keyword string) []Result {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}

	if pinyin.ContainsHan(keyword) {
		return e.searchLiteral(ctx, pinyin.HanRunes(keyword))
	}

	normalized := pinyin.Normalize(keyword)
	if normalized == "" {
		return nil
	}

	set := newResultSet()
	e.matcher.run(ctx, normalized, keyword, set)

	// Shortened-prefix retry: a single mistyped or unfinished trailing
	// character should not empty the view.
	if set.len() < lowThreshold && len(normalized) > 1 {
		shortened := normalized[:len(normalized)-1]
		e.matcher.run(ctx, shortened, shortened, set)
	}

	e.ranker.sort(set.items)
	return e.assemble(set.items)
}

// searchLiteral looks up each distinct CJK character of the query directly.
func (e *Engine) searchLiteral(ctx context.Context, chars []rune) []Result {
	set := newResultSet()
	for _, char := range chars {
		if c, ok := e.literalCandidate(ctx, char); ok {
			set.add(c)
		}
	}
	e.ranker.sort(set.items)
	return e.assemble(set.items)
}

// literalCandidate builds the single aggregated candidate for one character,
// or reports false when neither source knows it.
func (e *Engine) literalCandidate(ctx context.Context, char rune) (candidate, bool) {
	var readings []string
	var meaning string

	if entry := e.store.Snapshot(ctx).Lookup(char); len(entry) > 0 {
		readings = entry.Readings()
		meaning = entry.Aggregate()
	} else if spelled := e.ling.Spell(char); len(spelled) > 0 {
		readings = spelled
		if cached, ok := e.store.Meaning(ctx, string(char)); ok && cached.Meaning != "" {
			meaning = cached.Meaning
		} else {
			meaning = dictionary.PlaceholderGloss
		}
	} else {
		return candidate{}, false
	}

	return candidate{
		char:          char,
		pronunciation: dictionary.Multiple(readings),
		toneless:      pinyin.Normalize(readings[0]),
		meaning:       meaning,
	}, true
}

func (e *Engine) assemble(items []candidate) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		results = append(results, Result{
			Character:     string(item.char),
			Pronunciation: item.pronunciation,
			Brief:         deriveBrief(item.meaning),
		})
	}
	return results
}

// RandomResults seeds an initial view: a random syllable search, backfilled
// from the common-character list when the search underfills.
func (e *Engine) RandomResults(ctx context.Context) []Result {
	var results []Result
	if len(e.seeds.Syllables) > 0 {
		syllable := e.seeds.Syllables[e.intn(len(e.seeds.Syllables))]
		results = e.Search(ctx, syllable)
	}
	if len(results) > randomCount {
		results = results[:randomCount]
	}
	if len(results) >= randomCount {
		return results
	}

	present := make(map[string]struct{}, len(results))
	for _, result := range results {
		present[result.Character] = struct{}{}
	}

	common := []rune(e.seeds.Characters)
	if len(common) == 0 {
		return results
	}
	offset := e.intn(len(common))
	for i := 0; i < len(common) && len(results) < randomCount; i++ {
		char := common[(offset+i)%len(common)]
		if _, ok := present[string(char)]; ok {
			continue
		}
		c, ok := e.literalCandidate(ctx, char)
		if !ok {
			continue
		}
		present[string(char)] = struct{}{}
		results = append(results, e.assemble([]candidate{c})...)
	}
	return results
}
