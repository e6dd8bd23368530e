package userrepo

import (
	"context"

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

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, username, points_earned, rank_id, is_active FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Username, &user.PointsEarned, &user.RankID, &user.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByIDForUpdate locks the user row for the duration of the enclosing
// transaction. Callers mutating points_earned or rank_id must use this.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, username, points_earned, rank_id, is_active FROM users WHERE id = $1 FOR UPDATE", id).
		Scan(&user.ID, &user.Username, &user.PointsEarned, &user.RankID, &user.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// AddPoints credits delta to the user's balance and returns the new total.
func (repo *Repository) AddPoints(ctx context.Context, userID int, delta int) (int, error) {
	query := `
        UPDATE users
        SET points_earned = points_earned + $1
        WHERE id = $2
        RETURNING points_earned
    `
	var newBalance int
	err := repo.db.QueryRow(ctx, query, delta, userID).Scan(&newBalance)
	if err != nil {
		zap.L().Error("can't add points", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

// SpendPoints debits cost from the user's balance. Returns
// domain.ErrInsufficientPoints when the balance does not cover cost.
func (repo *Repository) SpendPoints(ctx context.Context, userID int, cost int) (int, error) {
	query := `
        UPDATE users
        SET points_earned = points_earned - $1
        WHERE id = $2 AND points_earned >= $1
        RETURNING points_earned
    `
	var newBalance int
	err := repo.db.QueryRow(ctx, query, cost, userID).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrInsufficientPoints
		}
		zap.L().Error("can't spend points", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

func (repo *Repository) UpdateRank(ctx context.Context, userID int, rankID int) error {
	query := `
        UPDATE users
        SET rank_id = $1
        WHERE id = $2
    `
	_, err := repo.db.Exec(ctx, query, rankID, userID)
	if err != nil {
		zap.L().Error("can't update user rank", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, username, points_earned, rank_id, is_active
        FROM users
        WHERE is_active = TRUE
        ORDER BY id ASC
    `
	return repo.list(ctx, query)
}

func (repo *Repository) ListByRankID(ctx context.Context, rankID int) ([]domain.User, error) {
	query := `
        SELECT id, username, points_earned, rank_id, is_active
        FROM users
        WHERE rank_id = $1
        ORDER BY id ASC
    `
	return repo.list(ctx, query, rankID)
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Username, &user.PointsEarned, &user.RankID, &user.IsActive)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
