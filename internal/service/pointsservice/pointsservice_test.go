package pointsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/SergeyMilov/gopoints/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockHistoryRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	historyRepo := NewMockHistoryRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(historyRepo, userRepo)
	defer ctrl.Finish()
	return service, historyRepo, userRepo
}

func TestAccrue(t *testing.T) {
	service, historyRepo, userRepo := NewMock(t)

	transactionID := uuid.New()
	user := &domain.User{ID: 1, PointsEarned: 0, RankID: 1, IsActive: true}
	bronze := &domain.Rank{ID: 1, Name: "Bronze", RequiredPoints: 0, PurchaseUnitAmount: 100000, FixedPointRate: 5, PercentageRate: 1, MaxPercentagePoints: 50}

	tests := []struct {
		name            string
		rank            *domain.Rank
		totalPayment    float64
		pointType       string
		prepareMock     func()
		expectedDelta   int
		expectedBalance int
		expectedError   error
	}{
		{
			name:         "Classic accrual floors payment units",
			rank:         bronze,
			totalPayment: 250000,
			pointType:    domain.PointTypeClassic,
			prepareMock: func() {
				historyRepo.EXPECT().SaveHistory(gomock.Any(), &domain.PointsHistory{
					UserID:        1,
					TransactionID: uuid.NullUUID{UUID: transactionID, Valid: true},
					PointsEarned:  10,
				}).Return(nil)
				userRepo.EXPECT().AddPoints(gomock.Any(), 1, 10).Return(10, nil)
			},
			expectedDelta:   10,
			expectedBalance: 10,
		},
		{
			name:         "Classic accrual below one unit earns nothing",
			rank:         bronze,
			totalPayment: 99999,
			pointType:    domain.PointTypeClassic,
			prepareMock: func() {
				historyRepo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(nil)
				userRepo.EXPECT().AddPoints(gomock.Any(), 1, 0).Return(0, nil)
			},
			expectedDelta:   0,
			expectedBalance: 0,
		},
		{
			name:         "Percentage accrual floors and stays under cap",
			rank:         &domain.Rank{ID: 2, PercentageRate: 2, MaxPercentagePoints: 100},
			totalPayment: 2550,
			pointType:    domain.PointTypePercentage,
			prepareMock: func() {
				historyRepo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(nil)
				userRepo.EXPECT().AddPoints(gomock.Any(), 1, 51).Return(51, nil)
			},
			expectedDelta:   51,
			expectedBalance: 51,
		},
		{
			name:         "Percentage accrual capped at max points",
			rank:         &domain.Rank{ID: 2, PercentageRate: 2, MaxPercentagePoints: 100},
			totalPayment: 1000000,
			pointType:    domain.PointTypePercentage,
			prepareMock: func() {
				historyRepo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(nil)
				userRepo.EXPECT().AddPoints(gomock.Any(), 1, 100).Return(100, nil)
			},
			expectedDelta:   100,
			expectedBalance: 100,
		},
		{
			name:          "Non-positive payment rejected",
			rank:          bronze,
			totalPayment:  0,
			pointType:     domain.PointTypeClassic,
			expectedError: domain.ErrInvalidPaymentAmount,
		},
		{
			name:          "Zero purchase unit is a rank configuration fault",
			rank:          &domain.Rank{ID: 3, PurchaseUnitAmount: 0, FixedPointRate: 5},
			totalPayment:  100000,
			pointType:     domain.PointTypeClassic,
			expectedError: domain.ErrInvalidRank,
		},
		{
			name:          "Zero percentage rate is a rank configuration fault",
			rank:          &domain.Rank{ID: 3, PercentageRate: 0, MaxPercentagePoints: 100},
			totalPayment:  100000,
			pointType:     domain.PointTypePercentage,
			expectedError: domain.ErrInvalidRank,
		},
		{
			name:          "Missing rank rejected",
			rank:          nil,
			totalPayment:  100000,
			pointType:     domain.PointTypeClassic,
			expectedError: domain.ErrInvalidRank,
		},
		{
			name:          "Unknown point type rejected",
			rank:          bronze,
			totalPayment:  100000,
			pointType:     "BOGUS",
			expectedError: domain.ErrInvalidPointType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			delta, newBalance, err := service.Accrue(context.Background(), user, tt.rank, transactionID, tt.totalPayment, tt.pointType)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedDelta, delta)
			assert.Equal(t, tt.expectedBalance, newBalance)
		})
	}
}

func TestAccrueLedgerFailureStopsBalanceWrite(t *testing.T) {
	service, historyRepo, _ := NewMock(t)

	historyRepo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	user := &domain.User{ID: 1, IsActive: true}
	rank := &domain.Rank{ID: 1, PurchaseUnitAmount: 100000, FixedPointRate: 5}
	_, _, err := service.Accrue(context.Background(), user, rank, uuid.New(), 250000, domain.PointTypeClassic)
	assert.Error(t, err)
}

func TestGetBalance(t *testing.T) {
	service, _, userRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsEarned: 2000, RankID: 2}, nil)
			},
			expectedUser: &domain.User{ID: 1, PointsEarned: 2000, RankID: 2},
		},
		{
			name:   "Unknown user",
			userID: 99,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, historyRepo, _ := NewMock(t)

	transactionID := uuid.New()
	entries := []domain.PointsHistory{
		{ID: 2, UserID: 1, TransactionID: uuid.NullUUID{UUID: transactionID, Valid: true}, PointsEarned: 10},
		{ID: 1, UserID: 1, TransactionID: uuid.NullUUID{UUID: transactionID, Valid: true}, PointsEarned: 5},
	}
	historyRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(entries, nil)

	got, err := service.GetHistory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
