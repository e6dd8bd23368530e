package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/SergeyMilov/gopoints/internal/notifier"
	"github.com/SergeyMilov/gopoints/internal/pg"
	"github.com/SergeyMilov/gopoints/internal/repo"
	"github.com/SergeyMilov/gopoints/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	events := notifier.New(notifier.LogSink{}, 1)
	defer events.Close()

	services := service.New(repo.New(mockDB), events, pg.NewMockTXManager(ctrl))

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionHandler := NewMockTransactionHandler(ctrl)
	mockRedemptionHandler := NewMockRedemptionHandler(ctrl)
	mockRankHandler := NewMockRankHandler(ctrl)
	mockRewardHandler := NewMockRewardHandler(ctrl)
	mockPointsHandler := NewMockPointsHandler(ctrl)

	mockTransactionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetUserTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetStoreTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedemptionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedemptionHandler.EXPECT().GetUserRedemptions(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardHandler.EXPECT().ListStoreRewards(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockPointsHandler.EXPECT().GetUserPoints(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		TransactionHandler: mockTransactionHandler,
		RedemptionHandler:  mockRedemptionHandler,
		RankHandler:        mockRankHandler,
		RewardHandler:      mockRewardHandler,
		PointsHandler:      mockPointsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/transactions", http.StatusOK},
		{"DELETE", "/api/transactions/3a4b1a9f-3f67-4b3a-8f2e-0f1df3f4a001", http.StatusOK},
		{"POST", "/api/redemptions", http.StatusOK},
		{"GET", "/api/ranks", http.StatusOK},
		{"POST", "/api/ranks", http.StatusOK},
		{"PUT", "/api/ranks/2", http.StatusOK},
		{"DELETE", "/api/ranks/2", http.StatusOK},
		{"POST", "/api/rewards", http.StatusOK},
		{"DELETE", "/api/rewards/3a4b1a9f-3f67-4b3a-8f2e-0f1df3f4a001", http.StatusOK},
		{"GET", "/api/users/1/points", http.StatusOK},
		{"GET", "/api/users/1/transactions", http.StatusOK},
		{"GET", "/api/users/1/redemptions", http.StatusOK},
		{"GET", "/api/stores/3a4b1a9f-3f67-4b3a-8f2e-0f1df3f4a001/transactions", http.StatusOK},
		{"GET", "/api/stores/3a4b1a9f-3f67-4b3a-8f2e-0f1df3f4a001/rewards", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
