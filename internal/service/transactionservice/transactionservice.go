package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/notifier"
	"github.com/SergeyMilov/gopoints/internal/pg"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 50
)

type Repo interface {
	Save(ctx context.Context, transaction *domain.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Transaction, error)
}

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
}

type StoreRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

type RankRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Rank, error)
}

type StoreUserRepo interface {
	Exists(ctx context.Context, userID int, storeID uuid.UUID) (bool, error)
	Link(ctx context.Context, userID int, storeID uuid.UUID) error
}

type Ledger interface {
	Accrue(ctx context.Context, user *domain.User, rank *domain.Rank, transactionID uuid.UUID, totalPayment float64, pointType string) (int, int, error)
}

type Resolver interface {
	Resolve(ctx context.Context, user *domain.User, newBalance int) (*domain.Rank, bool, error)
}

type Notifier interface {
	Publish(event notifier.Event)
}

type Service struct {
	transactionRepo Repo
	userRepo        UserRepo
	storeRepo       StoreRepo
	rankRepo        RankRepo
	storeUserRepo   StoreUserRepo
	ledger          Ledger
	resolver        Resolver
	notifier        Notifier
	txManager       pg.TXManager
}

func New(transactionRepo Repo, userRepo UserRepo, storeRepo StoreRepo, rankRepo RankRepo, storeUserRepo StoreUserRepo, ledger Ledger, resolver Resolver, events Notifier, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		storeRepo:       storeRepo,
		rankRepo:        rankRepo,
		storeUserRepo:   storeUserRepo,
		ledger:          ledger,
		resolver:        resolver,
		notifier:        events,
		txManager:       txManager,
	}
}

// Record registers a purchase and runs the full accrual pipeline in one
// atomic unit: transaction row, lazy store membership, ledger accrual and
// rank re-resolution. Lock contention is retried a bounded number of
// times before the conflict is surfaced.
func (s *Service) Record(ctx context.Context, userID int, storeID uuid.UUID, totalPayment float64, pointType string) (*domain.Transaction, error) {
	if pointType != domain.PointTypeClassic && pointType != domain.PointTypePercentage {
		return nil, domain.ErrInvalidPointType
	}
	if totalPayment <= 0 {
		return nil, domain.ErrInvalidPaymentAmount
	}

	var (
		transaction *domain.Transaction
		delta       int
		newRank     *domain.Rank
		rankChanged bool
	)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			transaction, delta, newRank, rankChanged = nil, 0, nil, false

			user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil || !user.IsActive {
				return domain.ErrUserNotFound
			}

			store, err := s.storeRepo.FindByID(ctx, storeID)
			if err != nil {
				return err
			}
			if store == nil || !store.IsActive || !store.IsApproved {
				return domain.ErrStoreNotFound
			}

			rank, err := s.rankRepo.FindByID(ctx, user.RankID)
			if err != nil {
				return err
			}
			if rank == nil {
				return domain.ErrInvalidRank
			}

			t := &domain.Transaction{
				ID:           uuid.New(),
				UserID:       userID,
				StoreID:      storeID,
				TotalPayment: totalPayment,
				PointType:    pointType,
				CreatedAt:    time.Now(),
			}
			if err := s.transactionRepo.Save(ctx, t); err != nil {
				return err
			}

			linked, err := s.storeUserRepo.Exists(ctx, userID, storeID)
			if err != nil {
				return err
			}
			if !linked {
				if err := s.storeUserRepo.Link(ctx, userID, storeID); err != nil {
					return err
				}
			}

			earned, newBalance, err := s.ledger.Accrue(ctx, user, rank, t.ID, totalPayment, pointType)
			if err != nil {
				return err
			}

			resolved, changed, err := s.resolver.Resolve(ctx, user, newBalance)
			if err != nil {
				// A ladder with no eligible tier is a configuration
				// fault; the rank is left as is and the accrual stands.
				if errors.Is(err, domain.ErrNoEligibleRank) {
					zap.L().Warn("no eligible rank, keeping current", zap.Int("userID", userID), zap.Int("balance", newBalance))
				} else {
					return err
				}
			} else {
				newRank, rankChanged = resolved, changed
			}

			transaction, delta = t, earned
			return nil
		})
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			break
		}
		zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryInterval * time.Duration(attempt))
	}
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notifier.Event{Type: notifier.EventPointsAccrued, UserID: userID, Points: delta})
	if rankChanged {
		s.notifier.Publish(notifier.Event{Type: notifier.EventRankChanged, UserID: userID, RankID: newRank.ID})
	}

	return transaction, nil
}

func (s *Service) GetUserTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetStoreTransactions(ctx context.Context, storeID uuid.UUID) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		zap.L().Error("failed to get store transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Delete removes a transaction record. Administrative: the accrued points
// stay on the ledger.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return domain.ErrTransactionNotFound
	}
	return s.transactionRepo.Delete(ctx, id)
}
