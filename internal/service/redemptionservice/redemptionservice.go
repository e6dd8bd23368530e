package redemptionservice

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

var ErrNotStoreMember = errors.New("user is not a member of the store")

type Repo interface {
	Save(ctx context.Context, redemption *domain.Redemption) error
	ListByUserID(ctx context.Context, userID int) ([]domain.Redemption, error)
}

type RewardRepo interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	SpendPoints(ctx context.Context, userID int, cost int) (int, error)
}

type StoreRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

type StoreUserRepo interface {
	Exists(ctx context.Context, userID int, storeID uuid.UUID) (bool, error)
}

// Inventory prices and validates a prospective redemption without
// touching stock.
type Inventory interface {
	Reserve(reward *domain.Reward, quantity int, now time.Time) (int, error)
}

type Resolver interface {
	Resolve(ctx context.Context, user *domain.User, newBalance int) (*domain.Rank, bool, error)
}

type Notifier interface {
	Publish(event notifier.Event)
}

type Service struct {
	redemptionRepo Repo
	rewardRepo     RewardRepo
	userRepo       UserRepo
	storeRepo      StoreRepo
	storeUserRepo  StoreUserRepo
	inventory      Inventory
	resolver       Resolver
	notifier       Notifier
	txManager      pg.TXManager
}

func New(redemptionRepo Repo, rewardRepo RewardRepo, userRepo UserRepo, storeRepo StoreRepo, storeUserRepo StoreUserRepo, inventory Inventory, resolver Resolver, events Notifier, txManager pg.TXManager) *Service {
	return &Service{
		redemptionRepo: redemptionRepo,
		rewardRepo:     rewardRepo,
		userRepo:       userRepo,
		storeRepo:      storeRepo,
		storeUserRepo:  storeUserRepo,
		inventory:      inventory,
		resolver:       resolver,
		notifier:       events,
		txManager:      txManager,
	}
}

// Redeem exchanges points for reward stock. The redemption row, the stock
// decrement, the balance debit and the rank re-resolution commit together
// or not at all; the user and reward rows are locked so two concurrent
// redemptions against the last unit of stock can't both succeed.
func (s *Service) Redeem(ctx context.Context, userID int, rewardID uuid.UUID, storeID uuid.UUID, quantity int) (*domain.Redemption, error) {
	var (
		redemption  *domain.Redemption
		newRank     *domain.Rank
		rankChanged bool
	)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			redemption, newRank, rankChanged = nil, nil, false

			store, err := s.storeRepo.FindByID(ctx, storeID)
			if err != nil {
				return err
			}
			if store == nil {
				return domain.ErrStoreNotFound
			}

			user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return domain.ErrUserNotFound
			}

			member, err := s.storeUserRepo.Exists(ctx, userID, storeID)
			if err != nil {
				return err
			}
			if !member {
				return ErrNotStoreMember
			}

			reward, err := s.rewardRepo.FindByIDForUpdate(ctx, rewardID)
			if err != nil {
				return err
			}
			if reward == nil || reward.StoreID != storeID {
				return domain.ErrRewardNotFound
			}

			cost, err := s.inventory.Reserve(reward, quantity, time.Now())
			if err != nil {
				return err
			}
			if user.PointsEarned < cost {
				return domain.ErrInsufficientPoints
			}

			red := &domain.Redemption{
				ID:           uuid.New(),
				UserID:       userID,
				RewardID:     rewardID,
				StoreID:      storeID,
				Quantity:     quantity,
				PointRewards: cost,
				CreatedAt:    time.Now(),
			}
			if err := s.redemptionRepo.Save(ctx, red); err != nil {
				return err
			}
			if err := s.rewardRepo.DecrementStock(ctx, rewardID, quantity); err != nil {
				return err
			}
			newBalance, err := s.userRepo.SpendPoints(ctx, userID, cost)
			if err != nil {
				return err
			}

			// The debit can drop the balance below the current tier's
			// threshold, so the ladder is re-resolved in the same unit.
			resolved, changed, err := s.resolver.Resolve(ctx, user, newBalance)
			if err != nil {
				if errors.Is(err, domain.ErrNoEligibleRank) {
					zap.L().Warn("no eligible rank, keeping current", zap.Int("userID", userID), zap.Int("balance", newBalance))
				} else {
					return err
				}
			} else {
				newRank, rankChanged = resolved, changed
			}

			redemption = red
			return nil
		})
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			break
		}
		zap.L().Warn("redemption conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryInterval * time.Duration(attempt))
	}
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Type:         notifier.EventRedemptionConfirmed,
		UserID:       userID,
		Points:       redemption.PointRewards,
		RedemptionID: redemption.ID,
	})
	if rankChanged {
		s.notifier.Publish(notifier.Event{Type: notifier.EventRankChanged, UserID: userID, RankID: newRank.ID})
	}

	return redemption, nil
}

func (s *Service) GetRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error) {
	redemptions, err := s.redemptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}
