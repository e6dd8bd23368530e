package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numEvents      int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "All events are delivered",
			numEvents:      5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Failed delivery is counted but does not stop the pool",
			numEvents:      3,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			var delivered int
			var errorCount int
			var wg sync.WaitGroup

			wp := NewWorkerPool(tt.numWorkers, func(_ context.Context, event Event) error {
				defer wg.Done()
				if event.UserID == tt.numEvents-1 && tt.expectedErrors > 0 {
					mu.Lock()
					errorCount++
					mu.Unlock()
					return assert.AnError
				}
				time.Sleep(10 * time.Millisecond)
				mu.Lock()
				delivered++
				mu.Unlock()
				return nil
			})
			defer wp.Close()

			for i := 0; i < tt.numEvents; i++ {
				wg.Add(1)
				err := wp.Enqueue(context.Background(), Event{Type: EventPointsAccrued, UserID: i})
				require.NoError(t, err, "failed to enqueue event")
			}

			wg.Wait()

			assert.Equal(t, tt.numEvents-tt.expectedErrors, delivered, "number of delivered events does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestWorkerPoolCloseDrainsQueue(t *testing.T) {
	var mu sync.Mutex
	var delivered int

	wp := NewWorkerPool(2, func(_ context.Context, _ Event) error {
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		delivered++
		mu.Unlock()
		return nil
	})

	for i := 0; i < 6; i++ {
		require.NoError(t, wp.Enqueue(context.Background(), Event{UserID: i}))
	}

	// Close must hand every queued event to a worker before returning.
	wp.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 6, delivered)
}

func TestWorkerPoolCloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(1, func(_ context.Context, _ Event) error { return nil })
	wp.Close()
	wp.Close()
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := NewWorkerPool(0, func(_ context.Context, _ Event) error {
		t.Error("event should not be delivered")
		return nil
	})
	defer wp.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Enqueue(ctx, Event{Type: EventPointsAccrued, UserID: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
