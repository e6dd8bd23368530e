package storerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	storeID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Valid id returns store",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "is_active", "is_approved"}).
					AddRow(storeID, "shop", true, true)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, is_active, is_approved FROM stores WHERE id = $1`)).
					WithArgs(storeID).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Non-existing id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, is_active, is_approved FROM stores WHERE id = $1`)).
					WithArgs(storeID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, is_active, is_approved FROM stores WHERE id = $1`)).
					WithArgs(storeID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			store, err := repo.FindByID(context.Background(), storeID)
			if tt.expectErr {
				assert.Error(t, err)
			} else if tt.found {
				assert.NoError(t, err)
				assert.Equal(t, "shop", store.Name)
				assert.True(t, store.IsApproved)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, store)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
