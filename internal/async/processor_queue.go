package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	processor "github.com/tkarvonen/huoltokirja/internal/pipeline"
)

// ProcessorQueue fans documents out to a fixed worker pool. Used for batch
// runs where OCR dominates the wall clock and pages can be processed in
// parallel.
type ProcessorQueue struct {
	proc    *processor.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *processor.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("async.worker.start", "worker_id", workerID)
				for job := range q.ch {
					q.runJob(workerID, job)
				}
				q.logger.Info("async.worker.stop", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) runJob(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	_, err := q.proc.ProcessDocument(ctx, job.Path, job.Opts)
	if err != nil {
		q.logger.Error("async.job.fail",
			"worker_id", workerID,
			"path", job.Path,
			"queued_ms", time.Since(job.SubmittedAt).Milliseconds(),
			"error", err,
		)
		return
	}
	q.logger.Info("async.job.ok",
		"worker_id", workerID,
		"path", job.Path,
		"queued_ms", time.Since(job.SubmittedAt).Milliseconds(),
	)
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("async.enqueue.closed", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("async.enqueue.ok", "path", job.Path, "force", job.Opts.Force)
	default:
		q.logger.Warn("async.enqueue.backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

// Shutdown closes intake and waits for in-flight jobs, or returns when ctx
// expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		q.wg.Wait()
	}()
	select {
	case <-done:
		q.logger.Info("async.queue.drained")
	case <-ctx.Done():
		q.logger.Warn("async.queue.shutdown_timeout")
	}
}
