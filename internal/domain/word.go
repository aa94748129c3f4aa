package domain

import "strings"

// WordEntry is a word paired with its translation.
// Translation is empty for entries read from a word-only document.
type WordEntry struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// WordSet is the ordered list of active entries. Duplicates are allowed.
type WordSet []WordEntry

// Pair builds a WordSet from parallel word and translation slices.
// Callers must check that both slices have the same length.
func Pair(words, translations []string) WordSet {
	set := make(WordSet, 0, len(words))
	for i, w := range words {
		set = append(set, WordEntry{Word: w, Translation: translations[i]})
	}
	return set
}

// Lines renders the set one entry per line as "word - translation".
func (s WordSet) Lines() []string {
	lines := make([]string, 0, len(s))
	for _, e := range s {
		if e.Translation == "" {
			lines = append(lines, e.Word)
			continue
		}
		lines = append(lines, e.Word+" - "+e.Translation)
	}
	return lines
}

// String joins Lines with newlines.
func (s WordSet) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Shape is the on-disk layout detected for a word document.
type Shape string

const (
	ShapeEmpty   Shape = "empty"
	ShapeWords   Shape = "words"
	ShapePairs   Shape = "pairs"
	ShapeMixed   Shape = "mixed"
	ShapeUnknown Shape = "unknown"
)
