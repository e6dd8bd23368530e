package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/dto"
	"github.com/SergeyMilov/gopoints/pkg/utils"
)

type Service interface {
	CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetStoreRewards(ctx context.Context, storeID uuid.UUID) ([]domain.Reward, error)
	DeleteReward(ctx context.Context, id uuid.UUID) error
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// Create adds a reward to a store's catalog.
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	reward, err := h.rewardService.CreateReward(r.Context(), &domain.Reward{
		StoreID:        storeID,
		Name:           req.Name,
		PointsRequired: req.PointsRequired,
		Quantity:       req.Quantity,
		ExpiredAt:      req.ExpiredAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*reward))
}

// ListStoreRewards returns a store's active, unexpired rewards.
func (h *RewardHandler) ListStoreRewards(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuid.Parse(chi.URLParam(r, "storeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}
	rewards, err := h.rewardService.GetStoreRewards(r.Context(), storeID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RewardResponseDTO, len(rewards))
	for i, reward := range rewards {
		response[i] = toResponse(reward)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete retires a reward (soft delete).
func (h *RewardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reward id")
		return
	}
	if err := h.rewardService.DeleteReward(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "reward deleted"})
}

func toResponse(reward domain.Reward) dto.RewardResponseDTO {
	return dto.RewardResponseDTO{
		ID:             reward.ID.String(),
		StoreID:        reward.StoreID.String(),
		Name:           reward.Name,
		PointsRequired: reward.PointsRequired,
		Quantity:       reward.Quantity,
		ExpiredAt:      reward.ExpiredAt,
	}
}
