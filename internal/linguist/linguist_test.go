package linguist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzikit/hanzikit/internal/pinyin"
)

func TestLinguist_Spell(t *testing.T) {
	l := New()

	tests := []struct {
		name     string
		char     rune
		contains []string
	}{
		{
			name:     "single reading",
			char:     '安',
			contains: []string{"ān"},
		},
		{
			name:     "polyphonic character returns every reading",
			char:     '重',
			contains: []string{"zhòng", "chóng"},
		},
		{
			name:     "polyphonic hang and xing",
			char:     '行',
			contains: []string{"háng", "xíng"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings := l.Spell(tt.char)
			require.NotEmpty(t, readings)
			for _, want := range tt.contains {
				assert.Contains(t, readings, want)
			}
		})
	}

	t.Run("non-CJK input yields nothing", func(t *testing.T) {
		assert.Nil(t, l.Spell('a'))
	})
}

func TestLinguist_SpellToWord(t *testing.T) {
	l := New()

	t.Run("toneless spelling finds characters", func(t *testing.T) {
		chars := l.SpellToWord("han")
		assert.Contains(t, chars, '汉')
	})

	t.Run("toned query works through normalization", func(t *testing.T) {
		chars := l.SpellToWord("hàn")
		assert.Contains(t, chars, '汉')
	})

	t.Run("every match spells back to the query", func(t *testing.T) {
		for _, r := range l.SpellToWord("an") {
			readings := l.Spell(r)
			found := false
			for _, reading := range readings {
				if pinyin.Normalize(reading) == "an" {
					found = true
					break
				}
			}
			assert.True(t, found, "character %c has no reading spelling 'an'", r)
		}
	})

	t.Run("results are deterministic", func(t *testing.T) {
		assert.Equal(t, l.SpellToWord("shan"), l.SpellToWord("shan"))
	})

	t.Run("unknown spelling yields nothing", func(t *testing.T) {
		assert.Empty(t, l.SpellToWord("xyz"))
	})

	t.Run("empty spelling yields nothing", func(t *testing.T) {
		assert.Empty(t, l.SpellToWord(""))
	})
}

func TestLinguist_ReferenceTables(t *testing.T) {
	l := New()

	t.Run("radical lookup", func(t *testing.T) {
		assert.Equal(t, "氵", l.Radical('汉'))
		assert.Equal(t, "宀", l.Radical('安'))
	})

	t.Run("stroke lookup", func(t *testing.T) {
		assert.Equal(t, 5, l.Stroke('汉'))
		assert.Equal(t, 6, l.Stroke('安'))
	})

	t.Run("missing entries degrade to zero values", func(t *testing.T) {
		assert.Equal(t, "", l.Radical('龘'))
		assert.Equal(t, 0, l.Stroke('龘'))
	})

	t.Run("words and idioms", func(t *testing.T) {
		assert.Contains(t, l.Words('汉'), "汉语")
		assert.Contains(t, l.Idioms('安'), "安居乐业")
		assert.Empty(t, l.Words('龘'))
	})
}
