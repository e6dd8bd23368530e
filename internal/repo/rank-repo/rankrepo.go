package rankrepo

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

// ListRanks returns the full ladder ordered by required points ascending.
func (r *Repository) ListRanks(ctx context.Context) ([]domain.Rank, error) {
	query := `
        SELECT id, name, required_points, purchase_unit_amount, fixed_point_rate, percentage_rate, max_percentage_points
        FROM ranks
        ORDER BY required_points ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get ranks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ranks []domain.Rank
	for rows.Next() {
		var rank domain.Rank
		err := rows.Scan(&rank.ID, &rank.Name, &rank.RequiredPoints, &rank.PurchaseUnitAmount, &rank.FixedPointRate, &rank.PercentageRate, &rank.MaxPercentagePoints)
		if err != nil {
			zap.L().Error("can't scan rank row", zap.Error(err))
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	return ranks, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Rank, error) {
	query := `
        SELECT id, name, required_points, purchase_unit_amount, fixed_point_rate, percentage_rate, max_percentage_points
        FROM ranks
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var rank domain.Rank
	err := row.Scan(&rank.ID, &rank.Name, &rank.RequiredPoints, &rank.PurchaseUnitAmount, &rank.FixedPointRate, &rank.PercentageRate, &rank.MaxPercentagePoints)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find rank", zap.Error(err))
		return nil, err
	}
	return &rank, nil
}

func (r *Repository) Create(ctx context.Context, rank *domain.Rank) (*domain.Rank, error) {
	query := `
        INSERT INTO ranks (name, required_points, purchase_unit_amount, fixed_point_rate, percentage_rate, max_percentage_points)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, rank.Name, rank.RequiredPoints, rank.PurchaseUnitAmount, rank.FixedPointRate, rank.PercentageRate, rank.MaxPercentagePoints).Scan(&rank.ID)
	if err != nil {
		zap.L().Error("can't create rank", zap.Error(err))
		return nil, err
	}
	return rank, nil
}

func (r *Repository) Update(ctx context.Context, rank *domain.Rank) error {
	query := `
        UPDATE ranks
        SET name = $1, required_points = $2, purchase_unit_amount = $3, fixed_point_rate = $4, percentage_rate = $5, max_percentage_points = $6, updated_at = now()
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query, rank.Name, rank.RequiredPoints, rank.PurchaseUnitAmount, rank.FixedPointRate, rank.PercentageRate, rank.MaxPercentagePoints, rank.ID)
	if err != nil {
		zap.L().Error("can't update rank", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM ranks
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete rank", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveRankHistory(ctx context.Context, userID int, rankID int) error {
	query := `
        INSERT INTO user_rank_history (user_id, rank_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, userID, rankID)
	if err != nil {
		zap.L().Error("can't save rank history", zap.Error(err))
		return err
	}
	return nil
}
