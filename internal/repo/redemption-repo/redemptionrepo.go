package redemptionrepo

import (
	"context"

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

func (r *Repository) Save(ctx context.Context, redemption *domain.Redemption) error {
	query := `
        INSERT INTO redemptions (id, user_id, reward_id, store_id, quantity, point_rewards, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, redemption.ID, redemption.UserID, redemption.RewardID, redemption.StoreID, redemption.Quantity, redemption.PointRewards, redemption.CreatedAt)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Redemption, error) {
	query := `
        SELECT id, user_id, reward_id, store_id, quantity, point_rewards, created_at
        FROM redemptions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		var redemption domain.Redemption
		err := rows.Scan(&redemption.ID, &redemption.UserID, &redemption.RewardID, &redemption.StoreID, &redemption.Quantity, &redemption.PointRewards, &redemption.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, redemption)
	}
	return redemptions, nil
}
