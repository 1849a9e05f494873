// Package lexicon segments text into sentences and words and picks out the
// vocabulary worth learning. Japanese is tokenised with kagome's IPA
// dictionary; Latin-script text is split on word boundaries.
package lexicon

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token represents a single analyzed unit of text.
type Token struct {
	Surface       string   // The text as it appears (e.g. "行っ")
	BaseForm      string   // The dictionary form (e.g. "行く")
	Reading       string   // The pronunciation (katakana, e.g. "イッ")
	PartsOfSpeech []string // e.g. ["動詞", "自立", "*", "*"] (Kagome POS labels)
	// PrimaryPOS stores the first (primary) part of speech if available.
	PrimaryPOS string
}

// Tokenizer wraps a kagome tokenizer. It is safe for concurrent use.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// NewTokenizer creates a tokenizer over the IPA dictionary.
func NewTokenizer() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize breaks text into tokens with readings and base forms.
func (tk *Tokenizer) Tokenize(text string) []Token {
	var result []Token
	for _, token := range tk.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		// IPA features: 0 POS, 1-3 sub-POS, 4 conjugation type,
		// 5 conjugation form, 6 base form, 7 reading, 8 pronunciation.
		features := token.Features()

		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		primaryPOS := ""
		if len(features) > 0 {
			primaryPOS = features[0]
		}

		result = append(result, Token{
			Surface:       token.Surface,
			BaseForm:      base,
			Reading:       reading,
			PartsOfSpeech: features,
			PrimaryPOS:    primaryPOS,
		})
	}
	return result
}

// SplitSentences splits text after Japanese sentence delimiters, newlines,
// and Latin '.', '!' or '?' when followed by whitespace or the end of text.
// Sentences are trimmed and blank ones dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range runes {
		current.WriteRune(r)
		switch r {
		case '。', '！', '？', '\n':
			flush()
		case '.', '!', '?':
			if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			}
		}
	}
	flush()
	return sentences
}

// HasJapanese reports whether s contains hiragana, katakana or kanji.
func HasJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}
