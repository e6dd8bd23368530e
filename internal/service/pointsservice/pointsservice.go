package pointsservice

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SergeyMilov/gopoints/internal/domain"
)

type HistoryRepo interface {
	SaveHistory(ctx context.Context, history *domain.PointsHistory) error
	ListByUserID(ctx context.Context, userID int) ([]domain.PointsHistory, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	AddPoints(ctx context.Context, userID int, delta int) (int, error)
}

type Service struct {
	historyRepo HistoryRepo
	userRepo    UserRepo
}

func New(historyRepo HistoryRepo, userRepo UserRepo) *Service {
	return &Service{
		historyRepo: historyRepo,
		userRepo:    userRepo,
	}
}

// Accrue computes the points earned for one transaction, appends a ledger
// row with the delta and credits the user's cached balance. It returns
// the delta and the post-accrual balance.
//
// Callers own the transactional scope and must invoke Accrue at most once
// per transaction: the ledger has no idempotency key and a second call
// double-counts.
func (s *Service) Accrue(ctx context.Context, user *domain.User, rank *domain.Rank, transactionID uuid.UUID, totalPayment float64, pointType string) (int, int, error) {
	if totalPayment <= 0 {
		return 0, 0, domain.ErrInvalidPaymentAmount
	}

	delta, err := computeDelta(rank, totalPayment, pointType)
	if err != nil {
		return 0, 0, err
	}

	history := &domain.PointsHistory{
		UserID:        user.ID,
		TransactionID: uuid.NullUUID{UUID: transactionID, Valid: true},
		PointsEarned:  delta,
	}
	if err := s.historyRepo.SaveHistory(ctx, history); err != nil {
		zap.L().Error("can't save points history", zap.Error(err))
		return 0, 0, err
	}

	newBalance, err := s.userRepo.AddPoints(ctx, user.ID, delta)
	if err != nil {
		zap.L().Error("can't add points to balance", zap.Error(err))
		return 0, 0, err
	}

	return delta, newBalance, nil
}

// GetBalance returns the user's cached cumulative balance and rank.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.PointsHistory, error) {
	entries, err := s.historyRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get points history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func computeDelta(rank *domain.Rank, totalPayment float64, pointType string) (int, error) {
	if rank == nil {
		return 0, domain.ErrInvalidRank
	}

	switch pointType {
	case domain.PointTypeClassic:
		// Division by a zero purchase unit is a configuration fault,
		// reported rather than retried.
		if rank.PurchaseUnitAmount <= 0 || rank.FixedPointRate < 0 {
			return 0, domain.ErrInvalidRank
		}
		units := int(math.Floor(totalPayment / float64(rank.PurchaseUnitAmount)))
		return units * rank.FixedPointRate, nil

	case domain.PointTypePercentage:
		if rank.PercentageRate <= 0 || rank.MaxPercentagePoints < 0 {
			return 0, domain.ErrInvalidRank
		}
		delta := int(math.Floor(totalPayment * float64(rank.PercentageRate) / 100))
		if delta > rank.MaxPercentagePoints {
			delta = rank.MaxPercentagePoints
		}
		return delta, nil

	default:
		return 0, domain.ErrInvalidPointType
	}
}
