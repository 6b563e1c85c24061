// Package frequency provides the character frequency table used as the
// ranking tie-breaker.
package frequency

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/hanzikit/hanzikit/assets"
)

//go:generate mockgen -source=frequency.go -destination=../mocks/frequency/mock_ranker.go -package=mock_frequency

// Unranked is the rank reported for characters absent from the table. It is
// large enough that ranked characters always sort before unranked ones.
const Unranked = math.MaxInt32

// Ranker reports a character's frequency rank. Lower means more frequent.
type Ranker interface {
	Rank(r rune) int
}

// Table is a Ranker backed by the embedded frequency list.
type Table struct {
	ranks map[rune]int
}

type frequencyFile struct {
	Characters string `yaml:"characters"`
}

// NewTable loads the embedded frequency list. The list orders characters by
// descending frequency; rank is the 1-based position of the character's first
// appearance.
func NewTable() (*Table, error) {
	contents, err := assets.Data.ReadFile("data/frequency.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets.Data.ReadFile > %w", err)
	}

	var file frequencyFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}

	ranks := make(map[rune]int)
	rank := 1
	for _, r := range file.Characters {
		if _, ok := ranks[r]; ok {
			continue
		}
		ranks[r] = rank
		rank++
	}
	return &Table{ranks: ranks}, nil
}

// Rank returns the character's frequency rank, or Unranked when the character
// is not in the table.
func (t *Table) Rank(r rune) int {
	if rank, ok := t.ranks[r]; ok {
		return rank
	}
	return Unranked
}

// Len returns the number of ranked characters.
func (t *Table) Len() int {
	return len(t.ranks)
}
