package rankservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	rankRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(rankRepo, userRepo, txManager)
	defer ctrl.Finish()
	return service, rankRepo, userRepo, txManager
}

func ladder() []domain.Rank {
	return []domain.Rank{
		{ID: 1, Name: "Bronze", RequiredPoints: 0, PurchaseUnitAmount: 100000, FixedPointRate: 5},
		{ID: 2, Name: "Silver", RequiredPoints: 2000, PurchaseUnitAmount: 100000, FixedPointRate: 10},
		{ID: 3, Name: "Gold", RequiredPoints: 5000, PurchaseUnitAmount: 100000, FixedPointRate: 15},
	}
}

func TestResolve(t *testing.T) {
	service, rankRepo, userRepo, _ := NewMock(t)

	tests := []struct {
		name            string
		user            *domain.User
		newBalance      int
		prepareMock     func()
		expectedRankID  int
		expectedChanged bool
		expectedError   error
	}{
		{
			name:       "Balance below first threshold stays on base tier",
			user:       &domain.User{ID: 1, RankID: 1},
			newBalance: 10,
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
			},
			expectedRankID:  1,
			expectedChanged: false,
		},
		{
			name:       "Balance at threshold promotes",
			user:       &domain.User{ID: 1, RankID: 1},
			newBalance: 2000,
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 1, 2).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 1, 2).Return(nil)
			},
			expectedRankID:  2,
			expectedChanged: true,
		},
		{
			name:       "Highest eligible tier wins over intermediate ones",
			user:       &domain.User{ID: 1, RankID: 1},
			newBalance: 7500,
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 1, 3).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 1, 3).Return(nil)
			},
			expectedRankID:  3,
			expectedChanged: true,
		},
		{
			name:       "No tier fits when the ladder has no base",
			user:       &domain.User{ID: 1, RankID: 2},
			newBalance: 100,
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return([]domain.Rank{
					{ID: 2, Name: "Silver", RequiredPoints: 2000},
				}, nil)
			},
			expectedError: domain.ErrNoEligibleRank,
		},
		{
			name:       "Rank update failure propagates",
			user:       &domain.User{ID: 1, RankID: 1},
			newBalance: 2000,
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 1, 2).Return(assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rank, changed, err := service.Resolve(context.Background(), tt.user, tt.newBalance)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRankID, rank.ID)
			assert.Equal(t, tt.expectedChanged, changed)
		})
	}
}

func TestCreateRank(t *testing.T) {
	service, rankRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		rank          *domain.Rank
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Create a valid tier",
			rank: &domain.Rank{Name: "Platinum", RequiredPoints: 10000, PurchaseUnitAmount: 100000, FixedPointRate: 20},
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				rankRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rank *domain.Rank) (*domain.Rank, error) {
						created := *rank
						created.ID = 4
						return &created, nil
					})
			},
		},
		{
			name: "Duplicate threshold rejected",
			rank: &domain.Rank{Name: "Sterling", RequiredPoints: 2000, PurchaseUnitAmount: 100000, FixedPointRate: 10},
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
			},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Empty name rejected",
			rank:          &domain.Rank{Name: "", RequiredPoints: 100},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Negative threshold rejected",
			rank:          &domain.Rank{Name: "Broken", RequiredPoints: -1},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Negative rate rejected",
			rank:          &domain.Rank{Name: "Broken", RequiredPoints: 100, FixedPointRate: -5},
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.CreateRank(context.Background(), tt.rank)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestUpdateRank(t *testing.T) {
	service, rankRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		rank          *domain.Rank
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Threshold change schedules a re-resolution pass",
			rank: &domain.Rank{ID: 2, Name: "Silver", RequiredPoints: 2500},
			prepareMock: func() {
				rankRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Rank{ID: 2, Name: "Silver", RequiredPoints: 2000}, nil)
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				rankRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Threshold already taken by another tier",
			rank: &domain.Rank{ID: 2, Name: "Silver", RequiredPoints: 5000},
			prepareMock: func() {
				rankRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Rank{ID: 2, Name: "Silver", RequiredPoints: 2000}, nil)
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
			},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name: "Unknown tier",
			rank: &domain.Rank{ID: 9, Name: "Ghost", RequiredPoints: 100},
			prepareMock: func() {
				rankRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: domain.ErrRankNotFound,
		},
		{
			name: "Base tier threshold must stay zero",
			rank: &domain.Rank{ID: 1, Name: "Bronze", RequiredPoints: 500},
			prepareMock: func() {
				rankRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Rank{ID: 1, Name: "Bronze", RequiredPoints: 0}, nil)
			},
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.UpdateRank(context.Background(), tt.rank)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)

			select {
			case <-service.reresolve:
			default:
				t.Fatal("expected a pending re-resolution trigger")
			}
		})
	}
}

func TestDeleteRank(t *testing.T) {
	service, rankRepo, userRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Delete moves its users to the best remaining tier",
			id:   2,
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				rankRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Rank{ID: 2, Name: "Silver", RequiredPoints: 2000}, nil)
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().ListByRankID(gomock.Any(), 2).Return([]domain.User{
					{ID: 1, PointsEarned: 2500, RankID: 2},
					{ID: 2, PointsEarned: 6000, RankID: 2},
				}, nil)
				// 2500 falls back to Bronze, 6000 moves up to Gold.
				userRepo.EXPECT().UpdateRank(gomock.Any(), 1, 1).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 1, 1).Return(nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 2, 3).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 2, 3).Return(nil)
				rankRepo.EXPECT().Delete(gomock.Any(), 2).Return(nil)
			},
		},
		{
			name: "Base tier is not deletable",
			id:   1,
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				rankRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Rank{ID: 1, Name: "Bronze", RequiredPoints: 0}, nil)
			},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name: "Unknown tier",
			id:   9,
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				rankRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: domain.ErrRankNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.DeleteRank(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReResolveAll(t *testing.T) {
	service, rankRepo, userRepo, txManager := NewMock(t)

	passthrough := func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     string
	}{
		{
			name: "Pass fixes stale assignments and skips current ones",
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().ListActiveUsers(gomock.Any()).Return([]domain.User{
					{ID: 1, PointsEarned: 2500, RankID: 1, IsActive: true},
					{ID: 2, PointsEarned: 100, RankID: 1, IsActive: true},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).Times(2)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsEarned: 2500, RankID: 1, IsActive: true}, nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 1, 2).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 1, 2).Return(nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 2).Return(&domain.User{ID: 2, PointsEarned: 100, RankID: 1, IsActive: true}, nil)
			},
		},
		{
			name: "Failed user is reported, rest of the pass continues",
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().ListActiveUsers(gomock.Any()).Return([]domain.User{
					{ID: 1, PointsEarned: 2500, RankID: 1, IsActive: true},
					{ID: 2, PointsEarned: 6000, RankID: 2, IsActive: true},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).Times(2)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, errors.New("db error"))
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 2).Return(&domain.User{ID: 2, PointsEarned: 6000, RankID: 2, IsActive: true}, nil)
				userRepo.EXPECT().UpdateRank(gomock.Any(), 2, 3).Return(nil)
				rankRepo.EXPECT().SaveRankHistory(gomock.Any(), 2, 3).Return(nil)
			},
			wantErr: "rank re-resolution incomplete: 1 of 2 users failed",
		},
		{
			name: "User deactivated mid-pass is skipped",
			prepareMock: func() {
				rankRepo.EXPECT().ListRanks(gomock.Any()).Return(ladder(), nil)
				userRepo.EXPECT().ListActiveUsers(gomock.Any()).Return([]domain.User{
					{ID: 1, PointsEarned: 2500, RankID: 1, IsActive: true},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, IsActive: false}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ReResolveAll(context.Background())
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTriggerReResolveCoalesces(t *testing.T) {
	service, _, _, _ := NewMock(t)

	service.TriggerReResolve()
	service.TriggerReResolve()
	service.TriggerReResolve()

	assert.Len(t, service.reresolve, 1)
}

func TestGetRank(t *testing.T) {
	service, rankRepo, _, _ := NewMock(t)

	rankRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Rank{ID: 3, Name: "Gold"}, nil)
	rank, err := service.GetRank(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "Gold", rank.Name)

	rankRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
	_, err = service.GetRank(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrRankNotFound)
}
