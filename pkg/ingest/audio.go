package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/japaniel/translearn/pkg/db"
)

// AudioPipeline ingests speech from captured audio buffers. Chunks are
// independent: there is no ordering between them.
type AudioPipeline struct {
	pipeline
	Recognizer AudioRecognizer
}

// NewAudioPipeline creates an AudioPipeline.
func NewAudioPipeline(recognizer AudioRecognizer, opts Options) *AudioPipeline {
	return &AudioPipeline{
		pipeline:   newPipeline(db.ModalityAudio, opts),
		Recognizer: recognizer,
	}
}

// Process recognises the first n bytes of buf and completes ingestion. An
// empty buffer is "no text found" and the recogniser is not called.
func (a *AudioPipeline) Process(ctx context.Context, buf []byte, n int) Result {
	log := a.logger()
	return a.run(log, func() Result {
		return a.process(ctx, log, buf, n)
	})
}

func (a *AudioPipeline) process(ctx context.Context, log *slog.Logger, buf []byte, n int) Result {
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return a.noText(log)
	}

	rctx, cancel := a.recognitionContext(ctx)
	text, err := a.Recognizer.RecognizeAudio(rctx, buf, n)
	cancel()
	if err != nil {
		log.Error("speech recognition failed", "err", err)
		return Result{Err: fmt.Errorf("recognize: %w", err)}
	}
	return a.complete(ctx, log, text)
}

// HandleBuffer is the capture callback. It copies the first n bytes of buf
// and queues their ingestion without blocking; when the queue is full the
// chunk is dropped with a warning so the audio producer never stalls.
func (a *AudioPipeline) HandleBuffer(buf []byte, n int) {
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return
	}
	if a.Pool == nil {
		a.Logger.Error("audio pipeline has no worker pool")
		return
	}
	chunk := make([]byte, n)
	copy(chunk, buf[:n])
	err := a.Pool.TrySubmit(func(ctx context.Context) error {
		a.Process(ctx, chunk, len(chunk))
		return nil
	})
	if err != nil {
		a.Logger.Warn("dropping audio chunk", "modality", a.modality.Label(), "bytes", n, "err", err)
	}
}
