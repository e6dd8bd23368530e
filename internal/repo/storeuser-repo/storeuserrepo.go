package storeuserrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

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

func (repo *Repository) Exists(ctx context.Context, userID int, storeID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM store_users WHERE user_id = $1 AND store_id = $2
        )
    `
	var exists bool
	err := repo.db.QueryRow(ctx, query, userID, storeID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check store user link", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Link records the first transaction between a user and a store. Safe to
// call when the pair already exists.
func (repo *Repository) Link(ctx context.Context, userID int, storeID uuid.UUID) error {
	query := `
        INSERT INTO store_users (user_id, store_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, store_id) DO NOTHING
    `
	_, err := repo.db.Exec(ctx, query, userID, storeID)
	if err != nil {
		zap.L().Error("can't link store user", zap.Error(err))
		return err
	}
	return nil
}
