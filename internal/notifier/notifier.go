package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventType string

const (
	EventPointsAccrued       EventType = "POINTS_ACCRUED"
	EventRankChanged         EventType = "RANK_CHANGED"
	EventRedemptionConfirmed EventType = "REDEMPTION_CONFIRMED"
)

type Event struct {
	Type         EventType
	UserID       int
	Points       int
	RankID       int
	RedemptionID uuid.UUID
	OccurredAt   time.Time
}

// Sink delivers an event to the outside world (push, mail, webhook).
// Delivery content is owned by the consumer, not by this core.
type Sink interface {
	Deliver(ctx context.Context, event Event) error
}

// Service dispatches events after the owning transaction has committed.
// Dispatch is fire-and-forget: a failed or dropped delivery is logged and
// never reported back to the caller.
type Service struct {
	workerPool *WorkerPool
}

func New(sink Sink, workers int) *Service {
	return &Service{
		workerPool: NewWorkerPool(workers, sink.Deliver),
	}
}

func (s *Service) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := s.workerPool.Enqueue(context.Background(), event); err != nil {
		zap.L().Warn("event dropped", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}

// LogSink is the default delivery target: it only records the event.
type LogSink struct{}

func (LogSink) Deliver(_ context.Context, event Event) error {
	zap.L().Info("event dispatched",
		zap.String("type", string(event.Type)),
		zap.Int("userID", event.UserID),
		zap.Int("points", event.Points),
	)
	return nil
}
