package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/SergeyMilov/gopoints/internal/domain"
)

func TestMarkConflict(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isConflict bool
	}{
		{
			name:       "Serialization failure is retryable",
			err:        &pgconn.PgError{Code: "40001"},
			isConflict: true,
		},
		{
			name:       "Deadlock is retryable",
			err:        &pgconn.PgError{Code: "40P01"},
			isConflict: true,
		},
		{
			name:       "Wrapped serialization failure is still recognized",
			err:        fmt.Errorf("can't commit transaction: %w", &pgconn.PgError{Code: "40001"}),
			isConflict: true,
		},
		{
			name: "Constraint violation is not retryable",
			err:  &pgconn.PgError{Code: "23505"},
		},
		{
			name: "Plain error passes through",
			err:  errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markConflict(tt.err)
			if tt.isConflict {
				assert.ErrorIs(t, got, domain.ErrConcurrencyConflict)
			} else {
				assert.Equal(t, tt.err, got)
			}
		})
	}
}
