package db

import (
	"fmt"
	"time"
)

// Modality identifies which capture source produced an observation.
type Modality string

const (
	// ModalityScreen is text recognised from a captured screen region.
	ModalityScreen Modality = "OCR"
	// ModalityAudio is text recognised from a captured audio buffer.
	ModalityAudio Modality = "Audio"
)

// ParseModality accepts the stored names as well as "screen"/"audio".
func ParseModality(s string) (Modality, error) {
	switch s {
	case "OCR", "ocr", "screen", "Screen":
		return ModalityScreen, nil
	case "Audio", "audio":
		return ModalityAudio, nil
	}
	return "", fmt.Errorf("unknown modality %q", s)
}

// Label is the lower-case name used in events and CLI output.
func (m Modality) Label() string {
	if m == ModalityScreen {
		return "screen"
	}
	return "audio"
}

// Observation is one recognised-and-translated capture event. It is never
// updated once written.
type Observation struct {
	ID             int64     `db:"id" json:"id"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
	SourceText     string    `db:"source_text" json:"source_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	Modality       Modality  `db:"modality" json:"modality"`
}

// NewObservation stamps an observation with the current UTC time.
func NewObservation(source, translated string, modality Modality) *Observation {
	return &Observation{
		Timestamp:      time.Now().UTC(),
		SourceText:     source,
		TranslatedText: translated,
		Modality:       modality,
	}
}

// VocabularyEntry is a learned word or phrase with frequency and recency.
type VocabularyEntry struct {
	ID              int64     `db:"id" json:"id"`
	Phrase          string    `db:"phrase" json:"phrase"`
	Frequency       int       `db:"frequency" json:"frequency"`
	Difficulty      *float64  `db:"difficulty" json:"difficulty,omitempty"`
	ContextSentence *string   `db:"context_sentence" json:"context_sentence,omitempty"`
	LastSeen        time.Time `db:"last_seen_at" json:"last_seen_at"`
}
