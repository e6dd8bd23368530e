package points

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/dto"
	"github.com/SergeyMilov/gopoints/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.User, error)
	GetHistory(ctx context.Context, userID int) ([]domain.PointsHistory, error)
}

type PointsHandler struct {
	pointsService Service
}

func New(pointsService Service) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

// GetUserPoints returns the cached balance, current rank and the ledger.
func (h *PointsHandler) GetUserPoints(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.pointsService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	history, err := h.pointsService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	entries := make([]dto.PointsHistoryEntryDTO, len(history))
	for i, entry := range history {
		var transactionID string
		if entry.TransactionID.Valid {
			transactionID = entry.TransactionID.UUID.String()
		}
		entries[i] = dto.PointsHistoryEntryDTO{
			TransactionID: transactionID,
			PointsEarned:  entry.PointsEarned,
			CreatedAt:     entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsBalanceResponseDTO{
		UserID:       user.ID,
		PointsEarned: user.PointsEarned,
		RankID:       user.RankID,
		History:      entries,
	})
}
