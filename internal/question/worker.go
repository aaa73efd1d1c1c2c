package question

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrQueueFull is returned by Enqueue when no worker slot is available.
var ErrQueueFull = errors.New("import queue full")

type importTask struct {
	jobID   string
	created time.Time
	req     ImportRequest
}

// ImportWorker runs bulk imports in the background and records their
// progress in a JobStore.
type ImportWorker struct {
	service   *Service
	jobs      JobStore
	queue     chan importTask
	logger    zerolog.Logger
	timeout   time.Duration
	workers   int
	wg        sync.WaitGroup
	shutdownC chan struct{}

	// mu orders Enqueue sends before Stop so drain sees every accepted task.
	mu      sync.Mutex
	stopped bool
}

type WorkerOptions struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

func NewImportWorker(service *Service, jobs JobStore, logger zerolog.Logger, opts WorkerOptions) *ImportWorker {
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 32
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	return &ImportWorker{
		service:   service,
		jobs:      jobs,
		queue:     make(chan importTask, opts.QueueSize),
		logger:    logger.With().Str("component", "import_worker").Logger(),
		timeout:   opts.Timeout,
		workers:   opts.Workers,
		shutdownC: make(chan struct{}),
	}
}

// Enqueue records a queued job and hands it to the pool without blocking.
func (w *ImportWorker) Enqueue(ctx context.Context, req ImportRequest) (Job, error) {
	now := time.Now().UTC()
	job := Job{
		ID:        uuid.NewString(),
		Status:    JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := w.jobs.SaveJob(ctx, job); err != nil {
		return Job{}, err
	}

	if !w.offer(importTask{jobID: job.ID, created: now, req: req}) {
		w.fail(job, ErrQueueFull)
		return Job{}, ErrQueueFull
	}
	return job, nil
}

func (w *ImportWorker) offer(task importTask) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return false
	}
	select {
	case w.queue <- task:
		importQueueDepth.Inc()
		return true
	default:
		return false
	}
}

// Job returns the current state of an import job.
func (w *ImportWorker) Job(ctx context.Context, id string) (*Job, error) {
	return w.jobs.GetJob(ctx, id)
}

// Run starts the pool and blocks until ctx is cancelled or Stop is called.
// Tasks already queued are finished before Run returns.
func (w *ImportWorker) Run(ctx context.Context) error {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.loop(ctx)
	}
	select {
	case <-ctx.Done():
	case <-w.shutdownC:
	}
	w.wg.Wait()
	w.logger.Info().Msg("import worker stopped")
	return nil
}

func (w *ImportWorker) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdownC:
			w.drain()
			return
		case task := <-w.queue:
			importQueueDepth.Dec()
			w.handle(task)
		}
	}
}

func (w *ImportWorker) drain() {
	for {
		select {
		case task := <-w.queue:
			importQueueDepth.Dec()
			w.handle(task)
		default:
			return
		}
	}
}

func (w *ImportWorker) handle(task importTask) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	job := Job{ID: task.jobID, Status: JobRunning, CreatedAt: task.created, UpdatedAt: time.Now().UTC()}
	if err := w.jobs.SaveJob(ctx, job); err != nil {
		w.logger.Warn().Err(err).Str("job_id", job.ID).Msg("save running job failed")
	}

	summary, err := w.service.Import(ctx, task.req)
	if err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("import job failed")
		w.fail(job, err)
		return
	}

	job.Status = JobDone
	job.Summary = &summary
	job.UpdatedAt = time.Now().UTC()
	if err := w.jobs.SaveJob(ctx, job); err != nil {
		w.logger.Warn().Err(err).Str("job_id", job.ID).Msg("save finished job failed")
	}
}

func (w *ImportWorker) fail(job Job, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	job.Status = JobFailed
	job.Error = cause.Error()
	job.UpdatedAt = time.Now().UTC()
	if err := w.jobs.SaveJob(ctx, job); err != nil {
		w.logger.Warn().Err(err).Str("job_id", job.ID).Msg("save failed job failed")
	}
}

// Stop signals the pool to finish queued tasks and exit. Safe to call twice.
func (w *ImportWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stopped {
		w.stopped = true
		close(w.shutdownC)
	}
}
