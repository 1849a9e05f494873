// Package learning turns recognised text into vocabulary: it runs the
// analyzer over the text and upserts every reported entry.
package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/japaniel/translearn/pkg/analyzer"
)

//go:generate mockgen -source=learning.go -destination=../mocks/learning/mock_learning.go -package=mock_learning

// Analyzer extracts vocabulary entries from text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) ([]analyzer.Entry, error)
}

// VocabularyStore records one occurrence of a phrase.
type VocabularyStore interface {
	Upsert(ctx context.Context, phrase string, contextSentence *string, difficulty *float64) error
}

// Orchestrator applies analyzer output to the vocabulary store.
type Orchestrator struct {
	Analyzer Analyzer
	Store    VocabularyStore
	// Logger is used for analyzer and store failures. nil means slog.Default().
	Logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(a Analyzer, s VocabularyStore) *Orchestrator {
	return &Orchestrator{Analyzer: a, Store: s}
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// AnalyzeAndLearn analyzes text and upserts each entry in analyzer order.
// It returns the number of entries applied. Blank text is a no-op. An
// analyzer failure leaves the store untouched; a failed upsert does not stop
// the remaining entries and all upsert errors are joined in the result.
func (o *Orchestrator) AnalyzeAndLearn(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	log := o.logger()

	entries, err := o.Analyzer.Analyze(ctx, text)
	if err != nil {
		log.Error("analysis failed", "err", err)
		return 0, fmt.Errorf("analyze: %w", err)
	}
	if len(entries) == 0 {
		log.Debug("analyzer returned no entries")
		return 0, nil
	}

	var (
		applied int
		errs    []error
	)
	for _, e := range entries {
		if strings.TrimSpace(e.WordOrPhrase) == "" {
			log.Warn("skipping entry with empty phrase")
			continue
		}
		if err := o.Store.Upsert(ctx, e.WordOrPhrase, e.ContextSentence, e.Difficulty); err != nil {
			log.Error("vocabulary upsert failed", "phrase", e.WordOrPhrase, "err", err)
			errs = append(errs, err)
			continue
		}
		applied++
	}
	log.Debug("learned vocabulary", "entries", applied)
	return applied, errors.Join(errs...)
}
