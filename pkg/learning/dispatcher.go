package learning

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/japaniel/translearn/pkg/workerpool"
)

// Learner is the fire-and-forget side of the orchestrator used by pipelines.
type Learner interface {
	Submit(text string) error
}

// Dispatcher runs AnalyzeAndLearn on a bounded worker pool. Submit never
// blocks: when the queue is full the text is rejected with
// workerpool.ErrQueueFull and the caller decides whether to log it.
type Dispatcher struct {
	orch    *Orchestrator
	pool    *workerpool.WorkerPool
	timeout time.Duration
	cancel  context.CancelFunc
}

// DispatcherOptions configures NewDispatcher.
type DispatcherOptions struct {
	Workers   int
	QueueSize int
	// Timeout bounds one analysis including its upserts. Zero means no
	// limit beyond the analyzer's own timeout.
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewDispatcher starts a pool of workers running orch.
func NewDispatcher(orch *Orchestrator, opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pool := workerpool.New(opts.Workers, opts.QueueSize)
	pool.OnError = func(err error) {
		logger.Error("learning task failed", "err", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	return &Dispatcher{
		orch:    orch,
		pool:    pool,
		timeout: opts.Timeout,
		cancel:  cancel,
	}
}

// Submit queues text for analysis. Blank text is accepted and ignored.
func (d *Dispatcher) Submit(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return d.pool.TrySubmit(func(ctx context.Context) error {
		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}
		// Failures are already logged by the orchestrator.
		_, _ = d.orch.AnalyzeAndLearn(ctx, text)
		return nil
	})
}

// Close stops accepting text, waits for queued analyses to finish and
// releases the workers.
func (d *Dispatcher) Close() {
	d.pool.Close()
	d.cancel()
}
