package storerepo

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

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	var store domain.Store
	err := repo.db.QueryRow(ctx, "SELECT id, name, is_active, is_approved FROM stores WHERE id = $1", id).
		Scan(&store.ID, &store.Name, &store.IsActive, &store.IsApproved)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find store", zap.Error(err))
		return nil, err
	}
	return &store, nil
}
