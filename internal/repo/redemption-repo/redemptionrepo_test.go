package redemptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SergeyMilov/gopoints/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	redemption := &domain.Redemption{
		ID:           uuid.New(),
		UserID:       1,
		RewardID:     uuid.New(),
		StoreID:      uuid.New(),
		Quantity:     1,
		PointRewards: 250,
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO redemptions`)).
					WithArgs(redemption.ID, redemption.UserID, redemption.RewardID, redemption.StoreID, redemption.Quantity, redemption.PointRewards, redemption.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO redemptions`)).
					WithArgs(redemption.ID, redemption.UserID, redemption.RewardID, redemption.StoreID, redemption.Quantity, redemption.PointRewards, redemption.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Save(context.Background(), redemption)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "user_id", "reward_id", "store_id", "quantity", "point_rewards", "created_at"}).
		AddRow(uuid.New(), 1, uuid.New(), uuid.New(), 1, 250, time.Now()).
		AddRow(uuid.New(), 1, uuid.New(), uuid.New(), 2, 500, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`FROM redemptions`)).
		WithArgs(1).
		WillReturnRows(rows)

	redemptions, err := repo.ListByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, redemptions, 2)
	assert.Equal(t, 500, redemptions[1].PointRewards)
	assert.NoError(t, mock.ExpectationsWereMet())
}
