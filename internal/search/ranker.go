package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hanzikit/hanzikit/internal/frequency"
)

// ranker imposes the result order: locale-aware lexicographic comparison of
// toneless pronunciations, then frequency rank of the character, more
// frequent first. The sort is stable, so a fixed candidate set and frequency
// table always produce the same list.
type ranker struct {
	collator *collate.Collator
	freq     frequency.Ranker
}

func newRanker(freq frequency.Ranker) *ranker {
	return &ranker{
		collator: collate.New(language.Und),
		freq:     freq,
	}
}

func (r *ranker) sort(items []candidate) {
	sort.SliceStable(items, func(i, j int) bool {
		if cmp := r.collator.CompareString(items[i].toneless, items[j].toneless); cmp != 0 {
			return cmp < 0
		}
		return r.freq.Rank(items[i].char) < r.freq.Rank(items[j].char)
	})
}
