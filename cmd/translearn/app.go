package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/japaniel/translearn/pkg/analyzer"
	"github.com/japaniel/translearn/pkg/capture"
	"github.com/japaniel/translearn/pkg/capture/audio"
	"github.com/japaniel/translearn/pkg/config"
	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/dictionary"
	"github.com/japaniel/translearn/pkg/events"
	"github.com/japaniel/translearn/pkg/ingest"
	"github.com/japaniel/translearn/pkg/learning"
	"github.com/japaniel/translearn/pkg/recognition"
	"github.com/japaniel/translearn/pkg/translation"
	"github.com/japaniel/translearn/pkg/workerpool"
)

const defaultAnalyzer = "translearn-analyzer"

// app holds the wired pipeline for commands that ingest or learn.
type app struct {
	cfg     *config.Config
	conn    *sqlx.DB
	store   *db.Store
	bus     *events.Bus
	orch    *learning.Orchestrator
	learner *learning.Dispatcher
	pool    *workerpool.WorkerPool
	cancel  context.CancelFunc
	screen  *ingest.ScreenPipeline
	audio   *ingest.AudioPipeline
}

func openStore(cfg *config.Config) (*sqlx.DB, *db.Store, error) {
	conn, err := db.Open(db.Options{
		Path:         cfg.Database.Path,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", cfg.Database.Path, err)
	}
	return conn, db.NewStore(conn), nil
}

// newBridge configures the analyzer program. The bundled analyzer is given
// the dictionary path, when the file is usable, so it can score difficulty.
func newBridge(ctx context.Context, cfg *config.Config) *analyzer.Bridge {
	args := cfg.Analyzer.CommandArgs()
	if filepath.Base(cfg.Analyzer.Command) == defaultAnalyzer {
		if dictPath, ok := usableDictionary(ctx, cfg.Dictionary); ok {
			args = append(args, "-dict", dictPath)
		}
	}
	b := analyzer.NewBridge(cfg.Analyzer.Command, args...)
	b.Env = cfg.Analyzer.Env
	b.Timeout = cfg.Analyzer.Timeout
	return b
}

// usableDictionary downloads the dictionary when auto_download is set and
// reports whether a dictionary file is present at the configured path.
func usableDictionary(ctx context.Context, dc config.DictionaryConfig) (string, bool) {
	if dc.Path == "" {
		return "", false
	}
	if dc.AutoDownload {
		if err := dictionary.NewDownloader().Ensure(ctx, dc.Path); err != nil {
			slog.Warn("failed to ensure dictionary, continuing without difficulty scores", "path", dc.Path, "err", err)
			return "", false
		}
	}
	info, err := os.Stat(dc.Path)
	if err != nil {
		slog.Warn("dictionary not available, continuing without difficulty scores", "path", dc.Path, "err", err)
		return "", false
	}
	if info.IsDir() {
		slog.Warn("dictionary path is a directory, continuing without difficulty scores", "path", dc.Path)
		return "", false
	}
	return dc.Path, true
}

func newAudioRecognizer(cfg *config.Config) ingest.AudioRecognizer {
	rc := cfg.Recognition
	if rc.STTEngine == "whisper" {
		return &recognition.WhisperCLI{
			Command:    rc.STTCommand,
			ModelPath:  rc.STTModel,
			Language:   rc.STTLanguage,
			SampleRate: cfg.Audio.SampleRate,
			Channels:   cfg.Audio.Channels,
			Timeout:    rc.Timeout,
		}
	}
	return &recognition.MockSpeech{}
}

func newMicrophone(cfg *config.Config) *audio.Microphone {
	m := audio.NewMicrophone()
	m.SampleRate = float64(cfg.Audio.SampleRate)
	m.Channels = cfg.Audio.Channels
	m.FramesPerBuffer = cfg.Audio.FramesPerBuffer
	m.ChunkDuration = cfg.Audio.ChunkDuration
	m.DeviceName = cfg.Audio.Device
	return m
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	conn, store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	orch := learning.NewOrchestrator(newBridge(ctx, cfg), store)
	learner := learning.NewDispatcher(orch, learning.DispatcherOptions{
		Workers:   cfg.Learning.Workers,
		QueueSize: cfg.Learning.QueueSize,
	})

	pool := workerpool.New(cfg.Ingest.Workers, cfg.Ingest.QueueSize)
	pool.OnError = func(err error) {
		slog.Error("ingest task failed", "err", err)
	}
	poolCtx, cancel := context.WithCancel(context.Background())
	pool.Start(poolCtx)

	bus := events.NewBus()
	opts := ingest.Options{
		Translator:         translation.NewPlaceholder(cfg.Translation.Prefix),
		Store:              store,
		Learner:            learner,
		Notifier:           bus,
		Pool:               pool,
		RecognitionTimeout: cfg.Recognition.Timeout,
	}
	grabber := &capture.CommandGrabber{
		Command: cfg.Screen.CaptureCommand,
		Args:    cfg.Screen.CaptureArgs,
		Timeout: cfg.Recognition.Timeout,
	}
	ocr := &recognition.Tesseract{
		Command:  cfg.Recognition.OCRCommand,
		Language: cfg.Recognition.OCRLanguage,
		Timeout:  cfg.Recognition.Timeout,
	}

	return &app{
		cfg:     cfg,
		conn:    conn,
		store:   store,
		bus:     bus,
		orch:    orch,
		learner: learner,
		pool:    pool,
		cancel:  cancel,
		screen:  ingest.NewScreenPipeline(grabber, ocr, opts),
		audio:   ingest.NewAudioPipeline(newAudioRecognizer(cfg), opts),
	}, nil
}

// Close drains ingestion first, then the learning queue it feeds.
func (a *app) Close() error {
	a.pool.Close()
	a.cancel()
	a.learner.Close()
	a.bus.Close()
	return a.conn.Close()
}
