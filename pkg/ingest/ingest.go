// Package ingest implements the screen and audio ingestion pipelines:
// recognise, translate, record the observation, then hand the source text to
// the learning subsystem.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/japaniel/translearn/pkg/capture"
	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/events"
	"github.com/japaniel/translearn/pkg/workerpool"
)

//go:generate mockgen -source=ingest.go -destination=../mocks/ingest/mock_ingest.go -package=mock_ingest

// ScreenGrabber captures the pixels of a screen region.
type ScreenGrabber interface {
	Grab(ctx context.Context, r capture.Region) (image.Image, error)
}

// ImageRecognizer extracts text from a bitmap. Empty text means nothing was found.
type ImageRecognizer interface {
	RecognizeImage(ctx context.Context, img image.Image) (string, error)
}

// AudioRecognizer extracts text from the first n bytes of a PCM buffer.
type AudioRecognizer interface {
	RecognizeAudio(ctx context.Context, buf []byte, n int) (string, error)
}

// Translator translates recognised text.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ObservationStore persists observations.
type ObservationStore interface {
	Append(ctx context.Context, obs *db.Observation) error
}

// Learner accepts source text for asynchronous vocabulary learning.
type Learner interface {
	Submit(text string) error
}

// Notifier receives pipeline outcomes for the UI.
type Notifier interface {
	Publish(e events.Event)
}

// WorkerPoolInterface abstracts the worker pool so tests can inject failing implementations.
type WorkerPoolInterface interface {
	Submit(job workerpool.Job) error
	TrySubmit(job workerpool.Job) error
}

// ErrEmptyTranslation is reported when the translator returns blank text.
var ErrEmptyTranslation = errors.New("translation is empty")

// Result is the outcome of one ingestion.
type Result struct {
	// Observation is the persisted observation, nil when nothing was recorded.
	Observation    *db.Observation
	SourceText     string
	TranslatedText string
	// Found is false when recognition produced no text.
	Found bool
	// Err is set for capture, recognition and translation failures. It is
	// nil for the "no text found" outcome.
	Err error
}

// Options holds the collaborators shared by both pipelines.
type Options struct {
	Translator Translator
	Store      ObservationStore
	Learner    Learner
	// Notifier is optional.
	Notifier Notifier
	// Pool runs Submit and HandleBuffer tasks. Required for the asynchronous
	// entry points only.
	Pool WorkerPoolInterface
	// RecognitionTimeout bounds one recognition call. Zero means no extra limit.
	RecognitionTimeout time.Duration
	Logger             *slog.Logger
}

// pipeline is the modality-independent tail of ingestion.
type pipeline struct {
	Options
	modality db.Modality
}

func newPipeline(modality db.Modality, opts Options) pipeline {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return pipeline{Options: opts, modality: modality}
}

func (p *pipeline) recognitionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.RecognitionTimeout > 0 {
		return context.WithTimeout(ctx, p.RecognitionTimeout)
	}
	return context.WithCancel(ctx)
}

// run executes body with panic recovery so that no collaborator failure
// crosses the public boundary.
func (p *pipeline) run(log *slog.Logger, body func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("ingestion panicked", "panic", r)
			res = Result{Err: fmt.Errorf("ingestion panicked: %v", r)}
		}
	}()
	return body()
}

func (p *pipeline) noText(log *slog.Logger) Result {
	log.Info("no text found")
	p.publish(events.New(events.KindNoTextFound, p.modality.Label()))
	return Result{}
}

// complete translates, records and dispatches recognised text.
func (p *pipeline) complete(ctx context.Context, log *slog.Logger, recognised string) Result {
	source := strings.TrimSpace(recognised)
	if source == "" {
		return p.noText(log)
	}

	translated, err := p.Translator.Translate(ctx, source)
	if err != nil {
		log.Error("translation failed", "err", err)
		return Result{SourceText: source, Found: true, Err: fmt.Errorf("translate: %w", err)}
	}
	if strings.TrimSpace(translated) == "" {
		log.Error("translation failed", "err", ErrEmptyTranslation)
		return Result{SourceText: source, Found: true, Err: ErrEmptyTranslation}
	}

	res := Result{SourceText: source, TranslatedText: translated, Found: true}
	obs := db.NewObservation(source, translated, p.modality)
	if err := p.Store.Append(ctx, obs); err != nil {
		log.Error("failed to record observation", "err", err)
	} else {
		res.Observation = obs
	}

	e := events.New(events.KindTranslated, p.modality.Label())
	e.SourceText = source
	e.TranslatedText = translated
	p.publish(e)

	if p.Learner != nil {
		if err := p.Learner.Submit(source); err != nil {
			log.Warn("learning dispatch failed", "err", err)
		}
	}
	return res
}

func (p *pipeline) publish(e events.Event) {
	if p.Notifier != nil {
		p.Notifier.Publish(e)
	}
}

func (p *pipeline) logger() *slog.Logger {
	return p.Logger.With("modality", p.modality.Label(), "capture_id", uuid.NewString())
}
