package redemptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/dto"
	"github.com/SergeyMilov/gopoints/internal/service/redemptionservice"
	"github.com/SergeyMilov/gopoints/pkg/utils"
)

type Service interface {
	Redeem(ctx context.Context, userID int, rewardID uuid.UUID, storeID uuid.UUID, quantity int) (*domain.Redemption, error)
	GetRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error)
}

type RedemptionHandler struct {
	redemptionService Service
}

func New(redemptionService Service) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
	}
}

// Create redeems reward stock against the user's point balance.
func (h *RedemptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rewardID, err := uuid.Parse(req.RewardID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reward id")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	redemption, err := h.redemptionService.Redeem(r.Context(), req.UserID, rewardID, storeID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrStoreNotFound),
			errors.Is(err, domain.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrInsufficientStock),
			errors.Is(err, domain.ErrRewardExpired),
			errors.Is(err, redemptionservice.ErrNotStoreMember),
			errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrConcurrencyConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*redemption))
}

// GetUserRedemptions returns a user's redemption history.
func (h *RedemptionHandler) GetUserRedemptions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	redemptions, err := h.redemptionService.GetRedemptions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RedemptionResponseDTO, len(redemptions))
	for i, redemption := range redemptions {
		response[i] = toResponse(redemption)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(redemption domain.Redemption) dto.RedemptionResponseDTO {
	return dto.RedemptionResponseDTO{
		ID:           redemption.ID.String(),
		UserID:       redemption.UserID,
		RewardID:     redemption.RewardID.String(),
		StoreID:      redemption.StoreID.String(),
		Quantity:     redemption.Quantity,
		PointRewards: redemption.PointRewards,
		CreatedAt:    redemption.CreatedAt,
	}
}
