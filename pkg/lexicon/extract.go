package lexicon

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/japaniel/translearn/pkg/analyzer"
	"github.com/japaniel/translearn/pkg/dictionary"
)

var (
	latinWord = regexp.MustCompile(`[\p{L}][\p{L}'’-]*`)
	asciiOnly = regexp.MustCompile(`^[a-zA-Z0-9\s[:punct:]]+$`)
)

// skippedPOS are kagome primary parts of speech that never carry vocabulary.
var skippedPOS = map[string]struct{}{
	"記号":   {},
	"補助記号": {},
	"助詞":   {},
	"助動詞":  {},
	"接頭詞":  {},
	"フィラー": {},
}

// Extractor turns free text into vocabulary entries keyed by lemma.
type Extractor struct {
	tokenizer *Tokenizer
	// Dict scores Japanese words when set. Nil leaves difficulty unset.
	Dict *dictionary.Index
}

// NewExtractor builds an extractor with its own tokenizer.
func NewExtractor(dict *dictionary.Index) (*Extractor, error) {
	tk, err := NewTokenizer()
	if err != nil {
		return nil, err
	}
	return &Extractor{tokenizer: tk, Dict: dict}, nil
}

type candidate struct {
	lemma      string
	count      int
	context    string
	difficulty *float64
}

// Extract returns one entry per distinct lemma in first-occurrence order.
// Frequency counts occurrences within text and the context sentence is the
// longest sentence the lemma appeared in. Blank text yields no entries.
func (e *Extractor) Extract(text string) []analyzer.Entry {
	byLemma := make(map[string]*candidate)
	var order []*candidate

	see := func(lemma, sentence string, difficulty *float64) {
		c, ok := byLemma[lemma]
		if !ok {
			c = &candidate{lemma: lemma}
			byLemma[lemma] = c
			order = append(order, c)
		}
		c.count++
		if utf8.RuneCountInString(sentence) > utf8.RuneCountInString(c.context) {
			c.context = sentence
		}
		if c.difficulty == nil {
			c.difficulty = difficulty
		}
	}

	for _, sentence := range SplitSentences(text) {
		if HasJapanese(sentence) {
			for _, tok := range e.tokenizer.Tokenize(sentence) {
				lemma, ok := japaneseLemma(tok)
				if !ok {
					continue
				}
				see(lemma, sentence, e.difficulty(tok, lemma))
			}
			continue
		}
		for _, w := range latinWord.FindAllString(sentence, -1) {
			if lemma, ok := latinLemma(w); ok {
				see(lemma, sentence, nil)
			}
		}
	}

	entries := make([]analyzer.Entry, 0, len(order))
	for _, c := range order {
		ctx := c.context
		entries = append(entries, analyzer.Entry{
			WordOrPhrase:    c.lemma,
			Frequency:       c.count,
			Difficulty:      c.difficulty,
			ContextSentence: &ctx,
		})
	}
	return entries
}

func (e *Extractor) difficulty(tok Token, lemma string) *float64 {
	if e.Dict == nil || !HasJapanese(lemma) {
		return nil
	}
	d := e.Dict.Difficulty(tok.Surface, lemma, tok.Reading)
	return &d
}

func japaneseLemma(tok Token) (string, bool) {
	if _, skip := skippedPOS[tok.PrimaryPOS]; skip {
		return "", false
	}
	// Numbers (名詞,数) are not vocabulary.
	if len(tok.PartsOfSpeech) > 1 && tok.PartsOfSpeech[1] == "数" {
		return "", false
	}
	// Non-independent nouns and suffixes (の, ん, さ) trail other words.
	if tok.PrimaryPOS == "名詞" && len(tok.PartsOfSpeech) > 1 &&
		(tok.PartsOfSpeech[1] == "非自立" || tok.PartsOfSpeech[1] == "接尾") {
		return "", false
	}

	if asciiOnly.MatchString(tok.Surface) {
		return latinLemma(latinWord.FindString(tok.Surface))
	}

	lemma := tok.BaseForm
	if lemma == "" || lemma == "*" {
		lemma = tok.Surface
	}
	if _, stop := japaneseStopWords[lemma]; stop {
		return "", false
	}
	return lemma, true
}

func latinLemma(word string) (string, bool) {
	w := strings.ToLower(strings.Trim(word, "'’-"))
	if utf8.RuneCountInString(w) < 2 {
		return "", false
	}
	if _, stop := englishStopWords[w]; stop {
		return "", false
	}
	return w, true
}
