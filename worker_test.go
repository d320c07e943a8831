package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingProcessor struct {
	processed atomic.Int64
	fail      bool
}

func (p *countingProcessor) ProcessEvent(_ context.Context, _ *models.Event) error {
	p.processed.Add(1)
	if p.fail {
		return errors.New("processing failed")
	}
	return nil
}

func TestWorkerPoolProcessesAllSubmittedEvents(t *testing.T) {
	processor := &countingProcessor{}
	wp := NewWorkerPool(4, processor, zap.NewNop())

	const submitted = 50
	for i := 0; i < submitted; i++ {
		wp.Submit(context.Background(), newCartEvent(enum.EventTypeCartItemAdded, uint64(i), 1))
	}

	// Shutdown drains the queue before returning.
	wp.Shutdown()
	assert.Equal(t, int64(submitted), processor.processed.Load())
}

func TestWorkerPoolSurvivesProcessorErrors(t *testing.T) {
	processor := &countingProcessor{fail: true}
	wp := NewWorkerPool(2, processor, zap.NewNop())

	for i := 0; i < 10; i++ {
		wp.Submit(context.Background(), newCartEvent(enum.EventTypeCartItemRemoved, uint64(i), 0))
	}

	wp.Shutdown()
	assert.Equal(t, int64(10), processor.processed.Load())
}

func TestWorkerPoolShutdownIdlesCleanly(t *testing.T) {
	wp := NewWorkerPool(4, &countingProcessor{}, zap.NewNop())
	wp.Shutdown()
}
