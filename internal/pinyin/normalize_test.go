package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripToneDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing tone digit",
			input:    "zhong4",
			expected: "zhong",
		},
		{
			name:     "multiple syllables with digits",
			input:    "ni3hao3",
			expected: "nihao",
		},
		{
			name:     "neutral tone digit",
			input:    "ma5",
			expected: "ma",
		},
		{
			name:     "uppercase input",
			input:    "AN1",
			expected: "an",
		},
		{
			name:     "no digits is a no-op",
			input:    "hang",
			expected: "hang",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripToneDigits(tt.input))
		})
	}
}

func TestStripToneMarks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "first tone",
			input:    "ān",
			expected: "an",
		},
		{
			name:     "all four tones of a",
			input:    "āáǎà",
			expected: "aaaa",
		},
		{
			name:     "u with umlaut maps to v",
			input:    "lǜ",
			expected: "lv",
		},
		{
			name:     "bare umlaut maps to v",
			input:    "nü",
			expected: "nv",
		},
		{
			name:     "mixed syllables",
			input:    "zhòngyào",
			expected: "zhongyao",
		},
		{
			name:     "plain ascii is a no-op",
			input:    "hanyu",
			expected: "hanyu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripToneMarks(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "digits and case",
			input:    " Zhong4 ",
			expected: "zhong",
		},
		{
			name:     "diacritics",
			input:    "chóng",
			expected: "chong",
		},
		{
			name:     "digits and diacritics together",
			input:    "hǎo3",
			expected: "hao",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestContainsHan(t *testing.T) {
	assert.True(t, ContainsHan("汉"))
	assert.True(t, ContainsHan("han字mixed"))
	assert.False(t, ContainsHan("hanzi"))
	assert.False(t, ContainsHan(""))
}

func TestHanRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []rune
	}{
		{
			name:     "distinct characters in order",
			input:    "汉字",
			expected: []rune{'汉', '字'},
		},
		{
			name:     "duplicates collapse",
			input:    "汉汉字汉",
			expected: []rune{'汉', '字'},
		},
		{
			name:     "latin is ignored",
			input:    "han汉zi",
			expected: []rune{'汉'},
		},
		{
			name:     "no han characters",
			input:    "hanzi",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HanRunes(tt.input))
		})
	}
}

func TestSingleHan(t *testing.T) {
	r, ok := SingleHan("汉")
	assert.True(t, ok)
	assert.Equal(t, '汉', r)

	r, ok = SingleHan(" 汉 ")
	assert.True(t, ok)
	assert.Equal(t, '汉', r)

	_, ok = SingleHan("汉字")
	assert.False(t, ok)

	_, ok = SingleHan("h")
	assert.False(t, ok)

	_, ok = SingleHan("")
	assert.False(t, ok)
}
