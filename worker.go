package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gocraftify.io/store/models"
)

type EventProcessor interface {
	ProcessEvent(ctx context.Context, event *models.Event) error
}

// WorkerPool runs cart event handlers off the UI path.
type WorkerPool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	logger    *zap.Logger
	processor EventProcessor
}

func NewWorkerPool(size int, processor EventProcessor, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		tasks:     make(chan func(), 1000),
		logger:    logger,
		processor: processor,
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

func (wp *WorkerPool) Submit(ctx context.Context, event *models.Event) {
	wp.tasks <- func() {
		if err := wp.processor.ProcessEvent(ctx, event); err != nil {
			wp.logger.Error("Failed to process event",
				zap.Error(err),
				zap.String("event_type", string(event.Type)),
				zap.String("event_id", event.ID))
		}
	}
}

// Shutdown drains queued tasks and waits for every worker to exit.
func (wp *WorkerPool) Shutdown() {
	close(wp.tasks)
	wp.wg.Wait()
}
