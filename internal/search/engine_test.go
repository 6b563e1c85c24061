package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/frequency"
	mock_dictionary "github.com/hanzikit/hanzikit/internal/mocks/dictionary"
	mock_frequency "github.com/hanzikit/hanzikit/internal/mocks/frequency"
	mock_linguist "github.com/hanzikit/hanzikit/internal/mocks/linguist"
	"github.com/hanzikit/hanzikit/internal/search"
	"github.com/hanzikit/hanzikit/internal/testutil"
)

type fixture struct {
	ling *mock_linguist.MockLibrary
	freq *mock_frequency.MockRanker
}

// newEngine builds an engine over a fixed snapshot payload and frequency
// ranking, with a deterministic random source.
func newEngine(t *testing.T, entries map[string]map[string][]string, ranks map[rune]int) (*search.Engine, fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)

	fetcher := mock_dictionary.NewMockFetcher(ctrl)
	if entries != nil {
		fetcher.EXPECT().Fetch(gomock.Any()).Return(testutil.SnapshotJSON(t, entries), nil).AnyTimes()
	}
	store := dictionary.NewStore(fetcher, dictionary.NewFileStore(t.TempDir()))

	ling := mock_linguist.NewMockLibrary(ctrl)
	freq := mock_frequency.NewMockRanker(ctrl)
	freq.EXPECT().Rank(gomock.Any()).DoAndReturn(func(r rune) int {
		if rank, ok := ranks[r]; ok {
			return rank
		}
		return frequency.Unranked
	}).AnyTimes()

	engine := search.NewEngine(store, ling, freq, search.WithIntn(func(n int) int { return 0 }))
	return engine, fixture{ling: ling, freq: freq}
}

func TestEngineSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query touches no data source", func(t *testing.T) {
		engine, _ := newEngine(t, nil, nil)
		assert.Nil(t, engine.Search(ctx, ""))
		assert.Nil(t, engine.Search(ctx, "   "))
	})

	t.Run("prefix query ranks by pronunciation then frequency", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静，稳定"}},
			"案": {"àn": {"案件"}},
			"昂": {"áng": {"仰起"}},
			"中": {"zhōng": {"中间"}},
		}, map[rune]int{'安': 10, '案': 200, '昂': 3000})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).Return(nil).AnyTimes()

		results := engine.Search(ctx, "an")
		require.Len(t, results, 3)
		assert.Equal(t, "安", results[0].Character)
		assert.Equal(t, dictionary.Single("ān"), results[0].Pronunciation)
		assert.Equal(t, "平静", results[0].Brief)
		assert.Equal(t, "案", results[1].Character)
		assert.Equal(t, "昂", results[2].Character)
	})

	t.Run("tone digits in the query are ignored for matching", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静"}},
			"中": {"zhōng": {"中间"}},
		}, map[rune]int{'安': 10})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).Return(nil).AnyTimes()

		results := engine.Search(ctx, "An1")
		require.Len(t, results, 1)
		assert.Equal(t, "安", results[0].Character)
	})

	t.Run("spell strategy fills gaps without duplicating scanned characters", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静"}},
		}, map[rune]int{'安': 10, '案': 200})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).DoAndReturn(func(spelling string) []rune {
			if spelling == "an" {
				return []rune{'安', '案'}
			}
			return nil
		}).AnyTimes()
		// 安 is already covered by the dictionary scan, so only 案 is spelled.
		fx.ling.EXPECT().Spell('案').Return([]string{"àn"})

		results := engine.Search(ctx, "an")
		require.Len(t, results, 2)
		assert.Equal(t, "安", results[0].Character)
		assert.Equal(t, "平静", results[0].Brief)
		assert.Equal(t, "案", results[1].Character)
		assert.Equal(t, dictionary.PlaceholderGloss, results[1].Brief)
	})

	t.Run("spell strategy keeps only readings extending the query", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静"}},
		}, map[rune]int{'重': 50})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).DoAndReturn(func(spelling string) []rune {
			if spelling == "zhong" {
				return []rune{'重'}
			}
			return nil
		}).AnyTimes()
		fx.ling.EXPECT().Spell('重').Return([]string{"zhòng", "chóng"}).AnyTimes()

		results := engine.Search(ctx, "zhong")
		require.Len(t, results, 1)
		assert.Equal(t, "重", results[0].Character)
		assert.Equal(t, dictionary.Single("zhòng"), results[0].Pronunciation)
	})

	t.Run("shortened prefix retry rescues a sparse query", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"昂": {"áng": {"仰起"}},
		}, map[rune]int{'昂': 3000})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).Return(nil).AnyTimes()

		results := engine.Search(ctx, "angg")
		require.Len(t, results, 1)
		assert.Equal(t, "昂", results[0].Character)
	})

	t.Run("literal characters bypass pinyin matching", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"汉": {"hàn": {"汉族，汉人"}},
		}, map[rune]int{'汉': 100})
		fx.ling.EXPECT().Spell('字').Return([]string{"zì"})

		results := engine.Search(ctx, "汉han字")
		require.Len(t, results, 2)
		assert.Equal(t, "汉", results[0].Character)
		assert.Equal(t, dictionary.Multiple([]string{"hàn"}), results[0].Pronunciation)
		assert.Equal(t, "汉族", results[0].Brief)
		assert.Equal(t, "字", results[1].Character)
		assert.Equal(t, dictionary.PlaceholderGloss, results[1].Brief)
	})

	t.Run("literal polyphonic character aggregates every reading", func(t *testing.T) {
		engine, _ := newEngine(t, map[string]map[string][]string{
			"重": {"zhòng": {"分量大"}, "chóng": {"再次"}},
		}, nil)

		results := engine.Search(ctx, "重")
		require.Len(t, results, 1)
		assert.Equal(t, dictionary.Multiple([]string{"chóng", "zhòng"}), results[0].Pronunciation)
		assert.Equal(t, "[chóng] 再次…", results[0].Brief)
	})

	t.Run("unknown literal character yields nothing", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静"}},
		}, nil)
		fx.ling.EXPECT().Spell('齉').Return(nil)

		assert.Empty(t, engine.Search(ctx, "齉"))
	})

	t.Run("unavailable snapshot degrades to the spell strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, assert.AnError).AnyTimes()
		store := dictionary.NewStore(fetcher, dictionary.NewFileStore(t.TempDir()))

		ling := mock_linguist.NewMockLibrary(ctrl)
		ling.EXPECT().SpellToWord(gomock.Any()).DoAndReturn(func(spelling string) []rune {
			if spelling == "an" {
				return []rune{'安'}
			}
			return nil
		}).AnyTimes()
		ling.EXPECT().Spell('安').Return([]string{"ān"})

		freq := mock_frequency.NewMockRanker(ctrl)
		freq.EXPECT().Rank(gomock.Any()).Return(frequency.Unranked).AnyTimes()

		engine := search.NewEngine(store, ling, freq)
		results := engine.Search(ctx, "an")
		require.Len(t, results, 1)
		assert.Equal(t, "安", results[0].Character)
		assert.Equal(t, dictionary.PlaceholderGloss, results[0].Brief)
	})
}

func TestEngineRandomResults(t *testing.T) {
	ctx := context.Background()

	t.Run("underfilled search is backfilled from common characters", func(t *testing.T) {
		engine, fx := newEngine(t, map[string]map[string][]string{
			"安": {"ān": {"平静"}},
		}, map[rune]int{'安': 10})
		fx.ling.EXPECT().SpellToWord(gomock.Any()).Return(nil).AnyTimes()
		fx.ling.EXPECT().Spell(gomock.Any()).DoAndReturn(func(r rune) []string {
			return []string{"xx"}
		}).AnyTimes()

		results := engine.RandomResults(ctx)
		require.Len(t, results, 12)
		assert.Equal(t, "安", results[0].Character)

		seen := make(map[string]struct{}, len(results))
		for _, result := range results {
			_, dup := seen[result.Character]
			assert.False(t, dup, "character %s repeated", result.Character)
			seen[result.Character] = struct{}{}
		}
	})

	t.Run("overfilled search is truncated", func(t *testing.T) {
		entries := make(map[string]map[string][]string)
		for _, r := range "安案昂肮盎暗岸按俺奄庵铵鞍氨" {
			entries[string(r)] = map[string][]string{"ān": {"x"}}
		}
		engine, fx := newEngine(t, entries, nil)
		fx.ling.EXPECT().SpellToWord(gomock.Any()).Return(nil).AnyTimes()

		results := engine.RandomResults(ctx)
		assert.Len(t, results, 12)
	})
}
