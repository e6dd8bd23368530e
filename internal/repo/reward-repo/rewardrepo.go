package rewardrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, reward *domain.Reward) error {
	query := `
        INSERT INTO rewards (id, store_id, name, points_required, quantity, expired_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, reward.ID, reward.StoreID, reward.Name, reward.PointsRequired, reward.Quantity, reward.ExpiredAt)
	if err != nil {
		zap.L().Error("can't save reward", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	query := `
        SELECT id, store_id, name, points_required, quantity, expired_at
        FROM rewards
        WHERE id = $1 AND deleted_at IS NULL
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the reward row so concurrent redemptions
// serialize on the stock check.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	query := `
        SELECT id, store_id, name, points_required, quantity, expired_at
        FROM rewards
        WHERE id = $1 AND deleted_at IS NULL
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Reward, error) {
	var reward domain.Reward
	err := row.Scan(&reward.ID, &reward.StoreID, &reward.Name, &reward.PointsRequired, &reward.Quantity, &reward.ExpiredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Reward, error) {
	query := `
        SELECT id, store_id, name, points_required, quantity, expired_at
        FROM rewards
        WHERE store_id = $1
          AND deleted_at IS NULL
          AND (expired_at IS NULL OR expired_at > now())
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		zap.L().Error("can't get rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(&reward.ID, &reward.StoreID, &reward.Name, &reward.PointsRequired, &reward.Quantity, &reward.ExpiredAt)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

// DecrementStock takes quantity units off the shelf. The guard in the
// WHERE clause means stock can never go negative; a miss is reported as
// domain.ErrInsufficientStock.
func (r *Repository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
        UPDATE rewards
        SET quantity = quantity - $1, updated_at = now()
        WHERE id = $2 AND quantity >= $1
    `
	tag, err := r.db.Exec(ctx, query, quantity, id)
	if err != nil {
		zap.L().Error("can't decrement reward stock", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE rewards
        SET deleted_at = now(), updated_at = now()
        WHERE id = $1 AND deleted_at IS NULL
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete reward", zap.Error(err))
		return err
	}
	return nil
}
