package transactionrepo

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

func (r *Repository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, user_id, store_id, total_payment, point_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, transaction.ID, transaction.UserID, transaction.StoreID, transaction.TotalPayment, transaction.PointType, transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, store_id, total_payment, point_type, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.StoreID, &transaction.TotalPayment, &transaction.PointType, &transaction.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM transactions
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, store_id, total_payment, point_type, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, store_id, total_payment, point_type, created_at
        FROM transactions
        WHERE store_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, storeID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.StoreID, &transaction.TotalPayment, &transaction.PointType, &transaction.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
