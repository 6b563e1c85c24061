// Package detail resolves one selected character into its display record.
package detail

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/linguist"
	"github.com/hanzikit/hanzikit/internal/pinyin"
)

const (
	// ExampleCap bounds how many example words a detail record displays.
	ExampleCap = 10

	memoSize = 256
)

// HanziDetail is the fully resolved display record for one character.
// It is derived on every resolution and never persisted.
type HanziDetail struct {
	Character     string                   `json:"character"`
	Pronunciation dictionary.Pronunciation `json:"pronunciation"`
	Meaning       string                   `json:"meaning"`
	Radical       string                   `json:"radical"`
	StrokeCount   int                      `json:"strokeCount"`
	Examples      []string                 `json:"examples"`
}

// Resolver aggregates a character's readings, meaning, radical, strokes and
// example words. It always returns a well-formed record for valid input:
// every failure along the way degrades to a zero value for that field.
type Resolver struct {
	store *dictionary.Store
	ling  linguist.Library
	memo  *lru.Cache[string, HanziDetail]
}

// NewResolver creates a Resolver with a bounded in-memory memo.
func NewResolver(store *dictionary.Store, ling linguist.Library) *Resolver {
	// lru.New only fails for a non-positive size.
	memo, _ := lru.New[string, HanziDetail](memoSize)
	return &Resolver{
		store: store,
		ling:  ling,
		memo:  memo,
	}
}

// Resolve returns the display record for char, or nil when the input is not
// exactly one CJK character.
func (r *Resolver) Resolve(ctx context.Context, char string) *HanziDetail {
	han, ok := pinyin.SingleHan(char)
	if !ok {
		return nil
	}
	key := string(han)
	if cached, ok := r.memo.Get(key); ok {
		return &cached
	}

	resolved := r.resolve(ctx, han)
	r.memo.Add(key, resolved)
	return &resolved
}

func (r *Resolver) resolve(ctx context.Context, han rune) (out HanziDetail) {
	out = HanziDetail{
		Character:     string(han),
		Pronunciation: dictionary.Multiple(nil),
		Examples:      []string{},
	}
	// The display contract is "always render something": an unexpected
	// failure mid-resolution keeps whatever fields were already filled.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("detail resolution failed", "character", out.Character, "panic", rec)
		}
	}()

	entry := r.store.Snapshot(ctx).Lookup(han)

	readings := r.ling.Spell(han)
	if len(readings) == 0 {
		readings = entry.Readings()
	}
	if len(readings) == 1 {
		out.Pronunciation = dictionary.Single(readings[0])
	} else {
		out.Pronunciation = dictionary.Multiple(readings)
	}

	out.StrokeCount = r.ling.Stroke(han)
	out.Radical = r.ling.Radical(han)
	out.Meaning = r.resolveMeaning(ctx, han, entry)
	out.Examples = r.resolveExamples(ctx, han)

	if out.Meaning != dictionary.PlaceholderGloss {
		r.store.PutMeaning(ctx, string(han), dictionary.MeaningEntry{
			Meaning:  out.Meaning,
			Examples: out.Examples,
		})
	}
	return out
}

// resolveMeaning follows the source order: bulk dictionary entry, then the
// persistent meaning cache, then the placeholder.
func (r *Resolver) resolveMeaning(ctx context.Context, han rune, entry dictionary.PronunciationMap) string {
	if len(entry) > 0 {
		if meaning := entry.Aggregate(); meaning != "" {
			return meaning
		}
	}
	if cached, ok := r.store.Meaning(ctx, string(han)); ok && cached.Meaning != "" {
		return cached.Meaning
	}
	return dictionary.PlaceholderGloss
}

// resolveExamples prefers dictionary-sourced examples and falls back to the
// linguistic library's compound words and idioms, value-deduplicated and
// capped.
func (r *Resolver) resolveExamples(ctx context.Context, han rune) []string {
	if cached, ok := r.store.Meaning(ctx, string(han)); ok && len(cached.Examples) > 0 {
		return capExamples(cached.Examples)
	}

	seen := make(map[string]struct{})
	examples := make([]string, 0, ExampleCap)
	for _, word := range append(r.ling.Words(han), r.ling.Idioms(han)...) {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		examples = append(examples, word)
		if len(examples) >= ExampleCap {
			break
		}
	}
	return examples
}

func capExamples(examples []string) []string {
	if len(examples) > ExampleCap {
		return examples[:ExampleCap]
	}
	return examples
}
