package dictionary

import (
	"sort"
)

// Difficulty scores assigned from dictionary commonness.
const (
	DifficultyCommon   = 0.3
	DifficultyUncommon = 0.6
	DifficultyUnknown  = 0.9
)

// Index is an in-memory lookup table over dictionary entries keyed by every
// kanji and kana form. It is read-only after construction and safe for
// concurrent use.
type Index struct {
	index map[string][]JMdictEntry
}

// NewIndex builds an index of entries.
func NewIndex(entries []JMdictEntry) *Index {
	idx := make(map[string][]JMdictEntry)
	for _, e := range entries {
		for _, k := range e.Kanji {
			idx[k.Text] = append(idx[k.Text], e)
		}
		for _, k := range e.Kana {
			idx[k.Text] = append(idx[k.Text], e)
		}
	}
	return &Index{index: idx}
}

// Load reads the dictionary at path and indexes it.
func Load(path string) (*Index, error) {
	entries, err := LoadJMdictSimplified(path)
	if err != nil {
		return nil, err
	}
	return NewIndex(entries), nil
}

// Len returns the number of indexed forms.
func (ix *Index) Len() int {
	return len(ix.index)
}

// Lookup finds entries for a surface form and lemma, filtered by reading
// when one is given. Results are ordered by entry ID.
func (ix *Index) Lookup(word, lemma, reading string) []JMdictEntry {
	candidates := make(map[string]JMdictEntry)
	for _, term := range []string{word, lemma} {
		if term == "" {
			continue
		}
		for _, e := range ix.index[term] {
			candidates[e.ID] = e
		}
	}

	var results []JMdictEntry
	for _, entry := range candidates {
		if isMatch(entry, word, lemma, reading) {
			results = append(results, entry)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// Difficulty scores a word: common dictionary words are easy, words the
// dictionary does not know are hardest.
func (ix *Index) Difficulty(word, lemma, reading string) float64 {
	matches := ix.Lookup(word, lemma, reading)
	if len(matches) == 0 && reading != "" {
		// Readings from the tokenizer are not always the dictionary's.
		matches = ix.Lookup(word, lemma, "")
	}
	if len(matches) == 0 {
		return DifficultyUnknown
	}
	for _, m := range matches {
		if m.Common() {
			return DifficultyCommon
		}
	}
	return DifficultyUncommon
}

func isMatch(entry JMdictEntry, word, lemma, reading string) bool {
	hasText := false
	for _, k := range entry.Kanji {
		if k.Text == word || k.Text == lemma {
			hasText = true
			break
		}
	}
	for _, k := range entry.Kana {
		if k.Text == word || k.Text == lemma {
			hasText = true
			break
		}
	}
	if !hasText {
		return false
	}
	if reading == "" {
		return true
	}

	normalized := ToHiragana(reading)
	for _, k := range entry.Kana {
		if ToHiragana(k.Text) == normalized {
			return true
		}
	}
	return false
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
