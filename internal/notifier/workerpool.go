package notifier

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DeliverFn pushes one event to its delivery target.
type DeliverFn func(ctx context.Context, event Event) error

// WorkerPool fans queued events out to a fixed set of delivery workers.
// The queue is bounded: Enqueue blocks on a full queue until a worker
// frees a slot or ctx gives up.
type WorkerPool struct {
	queue   chan Event
	deliver DeliverFn
	wg      sync.WaitGroup
	once    sync.Once
}

func NewWorkerPool(size int, deliver DeliverFn) *WorkerPool {
	wp := &WorkerPool{
		queue:   make(chan Event, size),
		deliver: deliver,
	}
	for i := 0; i < size; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for event := range wp.queue {
		if err := wp.deliver(context.Background(), event); err != nil {
			zap.L().Error("event delivery failed", zap.String("type", string(event.Type)), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) Enqueue(ctx context.Context, event Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.queue <- event:
		return nil
	}
}

// Close stops intake and returns once every queued event has been
// delivered and all workers have exited.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.queue)
	})
	wp.wg.Wait()
}
