package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/japaniel/translearn/pkg/capture"
	"github.com/japaniel/translearn/pkg/db"
)

// ScreenPipeline ingests text shown in a region of the screen.
type ScreenPipeline struct {
	pipeline
	Grabber    ScreenGrabber
	Recognizer ImageRecognizer
}

// NewScreenPipeline creates a ScreenPipeline.
func NewScreenPipeline(grabber ScreenGrabber, recognizer ImageRecognizer, opts Options) *ScreenPipeline {
	return &ScreenPipeline{
		pipeline:   newPipeline(db.ModalityScreen, opts),
		Grabber:    grabber,
		Recognizer: recognizer,
	}
}

// Process captures r, recognises its text and completes ingestion. An empty
// region is "no text found" without capturing. Capture failures are returned
// in Result.Err and nothing is recorded.
func (s *ScreenPipeline) Process(ctx context.Context, r capture.Region) Result {
	log := s.logger().With("region", r.String())
	return s.run(log, func() Result {
		return s.process(ctx, log, r)
	})
}

func (s *ScreenPipeline) process(ctx context.Context, log *slog.Logger, r capture.Region) Result {
	if r.Empty() {
		return s.noText(log)
	}

	img, err := s.Grabber.Grab(ctx, r)
	if err != nil {
		log.Error("screen capture failed", "err", err)
		return Result{Err: fmt.Errorf("capture: %w", err)}
	}
	if img == nil || img.Bounds().Empty() {
		return s.noText(log)
	}

	rctx, cancel := s.recognitionContext(ctx)
	text, err := s.Recognizer.RecognizeImage(rctx, img)
	cancel()
	if err != nil {
		log.Error("text recognition failed", "err", err)
		return Result{Err: fmt.Errorf("recognize: %w", err)}
	}
	return s.complete(ctx, log, text)
}

// Submit runs Process on the worker pool and passes the result to done,
// which may be nil. It blocks only while the pool's queue is full.
func (s *ScreenPipeline) Submit(r capture.Region, done func(Result)) error {
	if s.Pool == nil {
		return fmt.Errorf("screen pipeline has no worker pool")
	}
	return s.Pool.Submit(func(ctx context.Context) error {
		res := s.Process(ctx, r)
		if done != nil {
			done(res)
		}
		return nil
	})
}
