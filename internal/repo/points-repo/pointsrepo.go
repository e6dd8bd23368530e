package pointsrepo

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

// SaveHistory appends one ledger row. The ledger is append-only: deltas
// are never updated in place.
func (r *Repository) SaveHistory(ctx context.Context, history *domain.PointsHistory) error {
	query := `
        INSERT INTO user_points_history (user_id, transaction_id, points_earned)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, history.UserID, history.TransactionID, history.PointsEarned).
		Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		zap.L().Error("can't save points history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.PointsHistory, error) {
	query := `
        SELECT id, user_id, transaction_id, points_earned, created_at
        FROM user_points_history
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get points history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PointsHistory
	for rows.Next() {
		var entry domain.PointsHistory
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.TransactionID, &entry.PointsEarned, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan points history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
