// Package dictionary loads a jmdict-simplified dictionary and answers the
// questions the analyzer asks of it: is this word known, and how common is it.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// JMdictEntry matches the structure of jmdict-simplified entries.
type JMdictEntry struct {
	ID    string          `json:"id"`
	Kanji []JMdictElement `json:"kanji"`
	Kana  []JMdictElement `json:"kana"`
	Sense []JMdictSense   `json:"sense"`
}

type JMdictElement struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

type JMdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Gloss        []JMdictGloss `json:"gloss"`
}

type JMdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"` // defaults to 'eng' if missing
}

// Common reports whether any written or kana form of the entry is marked common.
func (e JMdictEntry) Common() bool {
	for _, k := range e.Kanji {
		if k.Common {
			return true
		}
	}
	for _, k := range e.Kana {
		if k.Common {
			return true
		}
	}
	return false
}

// LoadJMdictSimplified reads a dictionary file, either the release format
// { "words": [...] } or a bare array of entries.
func LoadJMdictSimplified(path string) ([]JMdictEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapped struct {
		Words []JMdictEntry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapped); err == nil && len(wrapped.Words) > 0 {
		return wrapped.Words, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []JMdictEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary as object or array: %w", err)
	}
	return entries, nil
}
