// Package linguist wraps the compiled pinyin library and the embedded
// character tables behind one collaborator used by the matcher and the detail
// resolver. Every lookup degrades to a zero value when data is missing; none
// of them fail the caller.
package linguist

import (
	"fmt"
	"sort"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"
	"gopkg.in/yaml.v3"

	"github.com/hanzikit/hanzikit/assets"
	"github.com/hanzikit/hanzikit/internal/pinyin"
)

//go:generate mockgen -source=linguist.go -destination=../mocks/linguist/mock_library.go -package=mock_linguist

// Library is the linguistic collaborator contract: character readings,
// reverse pinyin lookup, and per-character reference data.
type Library interface {
	// Spell returns all toned readings of r, primary reading first.
	Spell(r rune) []string
	// SpellToWord returns the characters whose toneless spelling equals the
	// toneless form of spelling.
	SpellToWord(spelling string) []rune
	// Stroke returns the stroke count of r, or 0 when unknown.
	Stroke(r rune) int
	// Radical returns the radical of r, or "" when unknown.
	Radical(r rune) string
	// Words returns compound words containing r.
	Words(r rune) []string
	// Idioms returns idioms containing r.
	Idioms(r rune) []string
}

type charInfo struct {
	Radical string `yaml:"radical"`
	Strokes int    `yaml:"strokes"`
}

type radicalsFile struct {
	Characters map[string]charInfo `yaml:"characters"`
}

type wordsFile struct {
	Words  map[string][]string `yaml:"words"`
	Idioms map[string][]string `yaml:"idioms"`
}

// Linguist implements Library on top of go-pinyin and the embedded tables.
type Linguist struct {
	args gopinyin.Args

	radicals map[rune]charInfo
	words    map[rune][]string
	idioms   map[rune][]string

	reverseOnce sync.Once
	reverse     map[string][]rune
}

var _ Library = (*Linguist)(nil)

// New builds a Linguist from the embedded tables. A missing or unparsable
// table leaves the corresponding lookups empty rather than failing.
func New() *Linguist {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = true

	l := &Linguist{
		args:     args,
		radicals: make(map[rune]charInfo),
		words:    make(map[rune][]string),
		idioms:   make(map[rune][]string),
	}
	if err := l.loadTables(); err != nil {
		// Reference tables are optional: readings still work without them.
		l.radicals = make(map[rune]charInfo)
	}
	return l
}

func (l *Linguist) loadTables() error {
	contents, err := assets.Data.ReadFile("data/radicals.yaml")
	if err != nil {
		return fmt.Errorf("assets.Data.ReadFile(radicals) > %w", err)
	}
	var radicals radicalsFile
	if err := yaml.Unmarshal(contents, &radicals); err != nil {
		return fmt.Errorf("yaml.Unmarshal(radicals) > %w", err)
	}
	for key, info := range radicals.Characters {
		for _, r := range key {
			l.radicals[r] = info
			break
		}
	}

	contents, err = assets.Data.ReadFile("data/words.yaml")
	if err != nil {
		return fmt.Errorf("assets.Data.ReadFile(words) > %w", err)
	}
	var words wordsFile
	if err := yaml.Unmarshal(contents, &words); err != nil {
		return fmt.Errorf("yaml.Unmarshal(words) > %w", err)
	}
	for key, list := range words.Words {
		for _, r := range key {
			l.words[r] = list
			break
		}
	}
	for key, list := range words.Idioms {
		for _, r := range key {
			l.idioms[r] = list
			break
		}
	}
	return nil
}

// Spell returns all toned readings of r in the library's order, primary
// reading first. Non-CJK input yields nil.
func (l *Linguist) Spell(r rune) []string {
	if !pinyin.IsHan(r) {
		return nil
	}
	readings := gopinyin.SinglePinyin(r, l.args)
	if len(readings) == 0 {
		return nil
	}
	// The heteronym list can repeat a reading under different tones of the
	// same entry; keep first occurrences only.
	seen := make(map[string]struct{}, len(readings))
	out := make([]string, 0, len(readings))
	for _, reading := range readings {
		if _, ok := seen[reading]; ok {
			continue
		}
		seen[reading] = struct{}{}
		out = append(out, reading)
	}
	return out
}

// SpellToWord returns all characters whose toneless spelling equals the
// toneless form of spelling. The reverse index over the pinyin dictionary is
// built once, on first use.
func (l *Linguist) SpellToWord(spelling string) []rune {
	key := pinyin.Normalize(spelling)
	if key == "" {
		return nil
	}
	l.reverseOnce.Do(l.buildReverseIndex)
	matches := l.reverse[key]
	out := make([]rune, len(matches))
	copy(out, matches)
	return out
}

func (l *Linguist) buildReverseIndex() {
	index := make(map[string][]rune)
	for codepoint, readings := range gopinyin.PinyinDict {
		r := rune(codepoint)
		start := 0
		for i := 0; i <= len(readings); i++ {
			if i != len(readings) && readings[i] != ',' {
				continue
			}
			toneless := pinyin.Normalize(readings[start:i])
			start = i + 1
			if toneless == "" {
				continue
			}
			chars := index[toneless]
			if len(chars) > 0 && chars[len(chars)-1] == r {
				continue
			}
			index[toneless] = append(chars, r)
		}
	}
	// Map iteration order is random; keep each bucket deterministic.
	for _, chars := range index {
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	}
	l.reverse = index
}

// Stroke returns the stroke count of r, or 0 when the table has no entry.
func (l *Linguist) Stroke(r rune) int {
	return l.radicals[r].Strokes
}

// Radical returns the radical of r, or "" when the table has no entry.
func (l *Linguist) Radical(r rune) string {
	return l.radicals[r].Radical
}

// Words returns compound words containing r.
func (l *Linguist) Words(r rune) []string {
	return l.words[r]
}

// Idioms returns idioms containing r.
func (l *Linguist) Idioms(r rune) []string {
	return l.idioms[r]
}
