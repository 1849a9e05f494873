package workerpool

import (
	"context"
	"fmt"
	"sync"
)

// Job is a unit of work submitted to the WorkerPool.
// It returns an error to indicate failure; the pool reports it through OnError.
type Job func(ctx context.Context) error

// WorkerPool runs jobs using a fixed number of goroutines over a bounded queue.
// Ingestion and learning each own one, so a slow analyzer never starves capture.
type WorkerPool struct {
	jobs    chan Job
	quit    chan struct{}
	wg      sync.WaitGroup
	workers int

	closeMu sync.RWMutex
	closed  bool
	once    sync.Once

	// OnError, if set, receives every job error and recovered panic.
	// It is called from worker goroutines and must be safe for concurrent use.
	OnError func(err error)
}

// New creates a worker pool with the specified number of workers and job
// queue capacity.
func New(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &WorkerPool{
		jobs:    make(chan Job, queue),
		quit:    make(chan struct{}),
		workers: workers,
	}
}

// Start begins the worker goroutines. Workers run until ctx is done or the
// queue has been closed and drained.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					p.run(ctx, job)
				}
			}
		}()
	}
}

func (p *WorkerPool) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.report(fmt.Errorf("job panicked: %v", r))
		}
	}()
	if err := job(ctx); err != nil {
		p.report(err)
	}
}

func (p *WorkerPool) report(err error) {
	if p.OnError != nil {
		p.OnError(err)
	}
}

// Submit enqueues a job, blocking while the queue is full. It returns
// ErrPoolClosed if the pool is closed before or while waiting.
func (p *WorkerPool) Submit(job Job) error {
	return p.SubmitCtx(context.Background(), job)
}

// SubmitCtx is like Submit but gives up when ctx is done.
func (p *WorkerPool) SubmitCtx(ctx context.Context, job Job) error {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit enqueues a job without blocking. It returns ErrQueueFull when
// no slot is free.
func (p *WorkerPool) TrySubmit(job Job) error {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting new jobs, lets workers drain the queue and waits for
// them to finish. Submitters blocked on a full queue are released with
// ErrPoolClosed. Close is safe to call more than once.
func (p *WorkerPool) Close() {
	p.once.Do(func() {
		close(p.quit)
		p.closeMu.Lock()
		p.closed = true
		close(p.jobs)
		p.closeMu.Unlock()
	})
	p.wg.Wait()
}

var (
	// ErrPoolClosed is returned if a Submit is attempted after Close.
	ErrPoolClosed = &PoolError{"worker pool closed"}
	// ErrQueueFull is returned by TrySubmit when the queue has no free slot.
	ErrQueueFull = &PoolError{"worker pool queue full"}
)

// PoolError provides a simple typed error for pool operations.
type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }
