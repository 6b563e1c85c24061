// Package pinyin normalizes user queries before they reach the matcher.
package pinyin

import (
	"strings"
	"unicode"
)

// toneMarks maps every toned vowel that appears in dictionary readings to its
// toneless form. The ü row maps to "v", matching the toneless spelling the
// linguistic library produces, so "lv" matches 绿.
var toneMarks = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ê': 'e', 'ế': 'e', 'ề': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v', 'ü': 'v',
	'ń': 'n', 'ň': 'n', 'ǹ': 'n',
	'ḿ': 'm',
}

// StripToneDigits lowercases s and removes trailing-style numeric tone
// markers (1-5). It never fails: input without markers passes through
// unchanged apart from case.
func StripToneDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= '1' && r <= '5' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripToneMarks replaces diacritic-toned vowels with their toneless forms.
// Runes outside the substitution table pass through unchanged.
func StripToneMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if plain, ok := toneMarks[r]; ok {
			b.WriteRune(plain)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize produces the toneless, lowercased comparison form of a reading or
// query: digits and diacritics removed, surrounding space trimmed.
func Normalize(s string) string {
	return StripToneMarks(StripToneDigits(strings.TrimSpace(s)))
}

// IsHan reports whether r is a CJK ideograph.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// ContainsHan reports whether s contains at least one CJK ideograph.
func ContainsHan(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}

// HanRunes returns the distinct CJK ideographs of s in first-appearance order.
func HanRunes(s string) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, r := range s {
		if !IsHan(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// SingleHan returns the rune when s is exactly one CJK ideograph.
func SingleHan(s string) (rune, bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 || !IsHan(runes[0]) {
		return 0, false
	}
	return runes[0], true
}
