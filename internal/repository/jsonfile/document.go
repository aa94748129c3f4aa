// Package jsonfile stores the word set and its archive in local JSON files.
//
// The word file holds a single document with a "words" field. Two layouts
// are accepted on read: a list of bare words, and a list of
// {"word","translation"} objects. Writes always use the object layout.
// The archive holds one JSON object per line.
package jsonfile

import (
	"encoding/json"

	"shark/internal/domain"
)

type document struct {
	Words []json.RawMessage `json:"words"`
}

type pairEntry struct {
	Word        *string `json:"word"`
	Translation *string `json:"translation"`
}

type entryKind int

const (
	kindInvalid entryKind = iota
	kindPair
	kindWord
)

// Decoded is the result of decoding a word document
type Decoded struct {
	Words   domain.WordSet
	Shape   domain.Shape
	Skipped int
}

// DecodeDocument parses a word document. It returns an error only when the
// document itself cannot be parsed; bad entries are counted in Skipped.
func DecodeDocument(data []byte) (Decoded, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Decoded{Words: domain.WordSet{}, Shape: domain.ShapeUnknown}, err
	}
	return decodeEntries(doc.Words), nil
}

func decodeEntries(raw []json.RawMessage) Decoded {
	out := Decoded{Words: make(domain.WordSet, 0, len(raw))}
	var pairs, words int

	for _, r := range raw {
		entry, kind := decodeEntry(r)
		switch kind {
		case kindPair:
			pairs++
		case kindWord:
			words++
		default:
			out.Skipped++
			continue
		}
		out.Words = append(out.Words, entry)
	}

	switch {
	case len(raw) == 0:
		out.Shape = domain.ShapeEmpty
	case pairs > 0 && words > 0:
		out.Shape = domain.ShapeMixed
	case pairs > 0:
		out.Shape = domain.ShapePairs
	case words > 0:
		out.Shape = domain.ShapeWords
	default:
		out.Shape = domain.ShapeUnknown
	}
	return out
}

// decodeEntry tries the pair layout first and falls back to a bare word.
// An object without a string translation is not a bare word and is rejected.
func decodeEntry(raw json.RawMessage) (domain.WordEntry, entryKind) {
	var p pairEntry
	if err := json.Unmarshal(raw, &p); err == nil {
		if p.Word == nil || p.Translation == nil || *p.Word == "" {
			return domain.WordEntry{}, kindInvalid
		}
		return domain.WordEntry{Word: *p.Word, Translation: *p.Translation}, kindPair
	}

	var w string
	if err := json.Unmarshal(raw, &w); err == nil && w != "" {
		return domain.WordEntry{Word: w}, kindWord
	}
	return domain.WordEntry{}, kindInvalid
}

func encodeDocument(words domain.WordSet) ([]byte, error) {
	if words == nil {
		words = domain.WordSet{}
	}
	doc := struct {
		Words domain.WordSet `json:"words"`
	}{Words: words}
	return json.MarshalIndent(doc, "", "  ")
}
