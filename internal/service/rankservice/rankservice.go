package rankservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/pg"
)

type Repo interface {
	ListRanks(ctx context.Context) ([]domain.Rank, error)
	FindByID(ctx context.Context, id int) (*domain.Rank, error)
	Create(ctx context.Context, rank *domain.Rank) (*domain.Rank, error)
	Update(ctx context.Context, rank *domain.Rank) error
	Delete(ctx context.Context, id int) error
	SaveRankHistory(ctx context.Context, userID int, rankID int) error
}

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateRank(ctx context.Context, userID int, rankID int) error
	ListActiveUsers(ctx context.Context) ([]domain.User, error)
	ListByRankID(ctx context.Context, rankID int) ([]domain.User, error)
}

type Service struct {
	rankRepo  Repo
	userRepo  UserRepo
	txManager pg.TXManager

	reresolve chan struct{}
}

func New(rankRepo Repo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		rankRepo:  rankRepo,
		userRepo:  userRepo,
		txManager: txManager,
		reresolve: make(chan struct{}, 1),
	}
}

func (s *Service) GetRanks(ctx context.Context) ([]domain.Rank, error) {
	ranks, err := s.rankRepo.ListRanks(ctx)
	if err != nil {
		zap.L().Error("failed to get ranks", zap.Error(err))
		return nil, err
	}
	return ranks, nil
}

func (s *Service) GetRank(ctx context.Context, id int) (*domain.Rank, error) {
	rank, err := s.rankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rank == nil {
		return nil, domain.ErrRankNotFound
	}
	return rank, nil
}

func (s *Service) CreateRank(ctx context.Context, rank *domain.Rank) (*domain.Rank, error) {
	if err := validateRank(rank); err != nil {
		return nil, err
	}
	if err := s.ensureThresholdFree(ctx, rank); err != nil {
		return nil, err
	}
	created, err := s.rankRepo.Create(ctx, rank)
	if err != nil {
		zap.L().Error("can't create rank", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateRank edits a tier definition. A threshold change invalidates the
// rank assignment of every active user, so a background re-resolution
// pass is scheduled once the update is through.
func (s *Service) UpdateRank(ctx context.Context, rank *domain.Rank) error {
	if err := validateRank(rank); err != nil {
		return err
	}
	existing, err := s.rankRepo.FindByID(ctx, rank.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrRankNotFound
	}
	if existing.RequiredPoints == 0 && rank.RequiredPoints != 0 {
		return fmt.Errorf("%w: base tier must keep required points at zero", domain.ErrInvalidInput)
	}
	if err := s.ensureThresholdFree(ctx, rank); err != nil {
		return err
	}

	if err := s.rankRepo.Update(ctx, rank); err != nil {
		zap.L().Error("can't update rank", zap.Error(err))
		return err
	}
	if existing.RequiredPoints != rank.RequiredPoints {
		s.TriggerReResolve()
	}
	return nil
}

// DeleteRank removes a tier. Users still on it are moved to the best
// remaining eligible tier inside the same transaction, so the ladder
// reference never dangles. The base tier cannot be deleted.
func (s *Service) DeleteRank(ctx context.Context, id int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		rank, err := s.rankRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if rank == nil {
			return domain.ErrRankNotFound
		}
		if rank.RequiredPoints == 0 {
			return fmt.Errorf("%w: base tier is not deletable", domain.ErrInvalidInput)
		}

		ranks, err := s.rankRepo.ListRanks(ctx)
		if err != nil {
			return err
		}
		remaining := make([]domain.Rank, 0, len(ranks))
		for _, r := range ranks {
			if r.ID != id {
				remaining = append(remaining, r)
			}
		}

		users, err := s.userRepo.ListByRankID(ctx, id)
		if err != nil {
			return err
		}
		for _, user := range users {
			best, err := resolveLadder(user.PointsEarned, remaining)
			if err != nil {
				return err
			}
			if err := s.userRepo.UpdateRank(ctx, user.ID, best.ID); err != nil {
				return err
			}
			if err := s.rankRepo.SaveRankHistory(ctx, user.ID, best.ID); err != nil {
				return err
			}
		}

		return s.rankRepo.Delete(ctx, id)
	})
}

// Resolve recomputes the user's tier from the authoritative balance and
// persists the change when the tier moved. Must run inside the caller's
// transaction when the balance mutation is part of one.
func (s *Service) Resolve(ctx context.Context, user *domain.User, newBalance int) (*domain.Rank, bool, error) {
	ranks, err := s.rankRepo.ListRanks(ctx)
	if err != nil {
		return nil, false, err
	}
	best, err := resolveLadder(newBalance, ranks)
	if err != nil {
		return nil, false, err
	}
	if best.ID == user.RankID {
		return best, false, nil
	}
	if err := s.userRepo.UpdateRank(ctx, user.ID, best.ID); err != nil {
		return nil, false, err
	}
	if err := s.rankRepo.SaveRankHistory(ctx, user.ID, best.ID); err != nil {
		return nil, false, err
	}
	return best, true, nil
}

// ReResolveAll walks every active user and fixes their rank assignment.
// Each user is updated in its own transaction; a failed user is logged
// and skipped, and the whole pass can be re-run at any time.
func (s *Service) ReResolveAll(ctx context.Context) error {
	ranks, err := s.rankRepo.ListRanks(ctx)
	if err != nil {
		return err
	}
	users, err := s.userRepo.ListActiveUsers(ctx)
	if err != nil {
		return err
	}

	var failed int
	for _, user := range users {
		userID := user.ID
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			locked, err := s.userRepo.FindByIDForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if locked == nil || !locked.IsActive {
				return nil
			}
			best, err := resolveLadder(locked.PointsEarned, ranks)
			if err != nil {
				zap.L().Warn("no eligible rank for user", zap.Int("userID", userID), zap.Int("balance", locked.PointsEarned))
				return nil
			}
			if best.ID == locked.RankID {
				return nil
			}
			if err := s.userRepo.UpdateRank(ctx, userID, best.ID); err != nil {
				return err
			}
			return s.rankRepo.SaveRankHistory(ctx, userID, best.ID)
		})
		if err != nil {
			failed++
			zap.L().Error("can't re-resolve user rank", zap.Int("userID", userID), zap.Error(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("rank re-resolution incomplete: %d of %d users failed", failed, len(users))
	}
	return nil
}

// TriggerReResolve schedules one background re-resolution pass. Extra
// triggers while a pass is already pending coalesce into it.
func (s *Service) TriggerReResolve() {
	select {
	case s.reresolve <- struct{}{}:
	default:
	}
}

// StartReResolver drains re-resolution requests until ctx is canceled.
func (s *Service) StartReResolver(ctx context.Context) {
	zap.L().Info("rank re-resolver started")
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("rank re-resolver stopped")
			return
		case <-s.reresolve:
			if err := s.ReResolveAll(ctx); err != nil {
				zap.L().Error("rank re-resolution pass failed", zap.Error(err))
			}
		}
	}
}

// resolveLadder picks the highest tier whose threshold the balance meets.
func resolveLadder(balance int, ranks []domain.Rank) (*domain.Rank, error) {
	var best *domain.Rank
	for i := range ranks {
		if ranks[i].RequiredPoints > balance {
			continue
		}
		if best == nil || ranks[i].RequiredPoints > best.RequiredPoints {
			best = &ranks[i]
		}
	}
	if best == nil {
		return nil, domain.ErrNoEligibleRank
	}
	return best, nil
}

// ensureThresholdFree rejects a second tier at the same required_points:
// resolveLadder needs strictly ordered thresholds to pick a single winner.
func (s *Service) ensureThresholdFree(ctx context.Context, rank *domain.Rank) error {
	ranks, err := s.rankRepo.ListRanks(ctx)
	if err != nil {
		return err
	}
	for _, r := range ranks {
		if r.ID != rank.ID && r.RequiredPoints == rank.RequiredPoints {
			return fmt.Errorf("%w: required points %d already taken by %q", domain.ErrInvalidInput, rank.RequiredPoints, r.Name)
		}
	}
	return nil
}

func validateRank(rank *domain.Rank) error {
	if rank.Name == "" {
		return fmt.Errorf("%w: rank name is required", domain.ErrInvalidInput)
	}
	if rank.RequiredPoints < 0 {
		return fmt.Errorf("%w: required points must not be negative", domain.ErrInvalidInput)
	}
	if rank.PurchaseUnitAmount < 0 || rank.FixedPointRate < 0 || rank.PercentageRate < 0 || rank.MaxPercentagePoints < 0 {
		return fmt.Errorf("%w: rank rates must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
