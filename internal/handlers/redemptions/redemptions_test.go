package redemptions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/dto"
	"github.com/SergeyMilov/gopoints/internal/service/redemptionservice"
)

func NewMock(t *testing.T) (*RedemptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	rewardID := uuid.New()
	storeID := uuid.New()
	body := fmt.Sprintf(`{"user_id":1,"reward_id":"%s","store_id":"%s","quantity":1}`, rewardID, storeID)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful redemption",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(&domain.Redemption{
						ID:           uuid.New(),
						UserID:       1,
						RewardID:     rewardID,
						StoreID:      storeID,
						Quantity:     1,
						PointRewards: 250,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed reward id",
			body:         fmt.Sprintf(`{"user_id":1,"reward_id":"nope","store_id":"%s","quantity":1}`, storeID),
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown reward",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, domain.ErrRewardNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Balance short of the cost",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, domain.ErrInsufficientPoints)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Stock short of the quantity",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, domain.ErrInsufficientStock)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Expired reward",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, domain.ErrRewardExpired)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Non-member",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, redemptionservice.ErrNotStoreMember)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Persistent lock contention",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, domain.ErrConcurrencyConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), 1, rewardID, storeID, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/redemptions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetUserRedemptionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	redemption := domain.Redemption{
		ID:           uuid.New(),
		UserID:       1,
		RewardID:     uuid.New(),
		StoreID:      uuid.New(),
		Quantity:     1,
		PointRewards: 250,
	}

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful retrieval",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetRedemptions(gomock.Any(), 1).
					Return([]domain.Redemption{redemption}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed user id",
			userID:       "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetRedemptions(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			r := httptest.NewRequest(http.MethodGet, "/api/users/1/redemptions", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetUserRedemptions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, 250, body[0].PointRewards)
			}
		})
	}
}
