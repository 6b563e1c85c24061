package search

import (
	"strings"

	"github.com/hanzikit/hanzikit/internal/dictionary"
)

// candidate is one (character, pronunciation) match accumulated during a
// search, before ranking.
type candidate struct {
	char          rune
	pronunciation dictionary.Pronunciation
	// toneless form of the primary reading, the ranking key
	toneless string
	meaning  string
}

// resultSet merges candidates across strategies. Each (character,
// pronunciation) composite key is admitted at most once, first writer wins;
// a separate character set supports skipping the linguistic-library strategy
// for characters the dictionary scan already covered under any reading.
type resultSet struct {
	keys  map[string]struct{}
	chars map[rune]struct{}
	items []candidate
}

func newResultSet() *resultSet {
	return &resultSet{
		keys:  make(map[string]struct{}),
		chars: make(map[rune]struct{}),
	}
}

func (rs *resultSet) add(c candidate) bool {
	key := string(c.char) + "_" + c.pronunciation.Display()
	if _, ok := rs.keys[key]; ok {
		return false
	}
	rs.keys[key] = struct{}{}
	rs.chars[c.char] = struct{}{}
	rs.items = append(rs.items, c)
	return true
}

func (rs *resultSet) hasChar(r rune) bool {
	_, ok := rs.chars[r]
	return ok
}

func (rs *resultSet) len() int {
	return len(rs.items)
}

// briefSeparators are the segment boundaries a display brief stops at.
var briefSeparators = []string{"，", ",", "：", ":"}

// deriveBrief shortens a meaning string to its display brief: the first line
// (with an ellipsis marker when the meaning spans several pronunciations) cut
// at the first comma or colon.
func deriveBrief(meaning string) string {
	if idx := strings.IndexByte(meaning, '\n'); idx >= 0 {
		return strings.TrimSpace(meaning[:idx]) + "…"
	}
	cut := len(meaning)
	for _, sep := range briefSeparators {
		if idx := strings.Index(meaning, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return meaning[:cut]
}
