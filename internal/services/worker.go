package services

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Worker fans a fixed number of jobs out over a bounded set of goroutines.
// Each job writes only its own result slot, so no locking is needed.
type Worker interface {
	Run(ctx context.Context, jobs int, fn func(ctx context.Context, index int)) error
}

type worker struct {
	concurrency int
	logger      *zap.Logger
}

func NewWorker(concurrency int, logger *zap.Logger) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &worker{
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run implements Worker. It returns once every started job has finished;
// jobs not yet started when ctx ends are dropped and ctx.Err() is returned.
func (w *worker) Run(ctx context.Context, jobs int, fn func(ctx context.Context, index int)) error {
	if jobs <= 0 {
		return nil
	}

	workers := w.concurrency
	if workers > jobs {
		workers = jobs
	}

	jobQueue := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go w.processJobs(ctx, i+1, jobQueue, fn, &wg)
	}

	var err error
enqueue:
	for index := 0; index < jobs; index++ {
		select {
		case jobQueue <- index:
		case <-ctx.Done():
			err = ctx.Err()
			break enqueue
		}
	}
	close(jobQueue)
	wg.Wait()

	if err == nil {
		err = ctx.Err()
	}
	return err
}

func (w *worker) processJobs(ctx context.Context, workerID int, jobQueue <-chan int, fn func(ctx context.Context, index int), wg *sync.WaitGroup) {
	defer wg.Done()
	for index := range jobQueue {
		w.logger.Debug("worker picked up job", zap.Int("worker", workerID), zap.Int("job", index))
		fn(ctx, index)
	}
}
