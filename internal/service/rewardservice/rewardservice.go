package rewardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SergeyMilov/gopoints/internal/domain"
)

type Repo interface {
	Save(ctx context.Context, reward *domain.Reward) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Reward, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type StoreRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

type Service struct {
	rewardRepo Repo
	storeRepo  StoreRepo
}

func New(rewardRepo Repo, storeRepo StoreRepo) *Service {
	return &Service{
		rewardRepo: rewardRepo,
		storeRepo:  storeRepo,
	}
}

func (s *Service) CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if reward.Name == "" {
		return nil, fmt.Errorf("%w: reward name is required", domain.ErrInvalidInput)
	}
	if reward.PointsRequired < 0 || reward.Quantity < 0 {
		return nil, fmt.Errorf("%w: points and quantity must not be negative", domain.ErrInvalidInput)
	}

	store, err := s.storeRepo.FindByID(ctx, reward.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil || !store.IsActive || !store.IsApproved {
		return nil, domain.ErrStoreNotFound
	}

	reward.ID = uuid.New()
	if err := s.rewardRepo.Save(ctx, reward); err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

// GetStoreRewards lists a store's catalog; retired and expired rewards
// are filtered out at the repository.
func (s *Service) GetStoreRewards(ctx context.Context, storeID uuid.UUID) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		zap.L().Error("failed to get rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

func (s *Service) DeleteReward(ctx context.Context, id uuid.UUID) error {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reward == nil {
		return domain.ErrRewardNotFound
	}
	return s.rewardRepo.SoftDelete(ctx, id)
}

// Reserve checks that a redemption of quantity units is possible right
// now and prices it. It mutates nothing: the compensating stock write
// belongs to the redemption engine's atomic unit.
func (s *Service) Reserve(reward *domain.Reward, quantity int, now time.Time) (int, error) {
	if reward == nil {
		return 0, domain.ErrRewardNotFound
	}
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	if reward.ExpiredAt != nil && now.After(*reward.ExpiredAt) {
		return 0, domain.ErrRewardExpired
	}
	if reward.Quantity < quantity {
		return 0, domain.ErrInsufficientStock
	}
	return reward.PointsRequired * quantity, nil
}
