package ranks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyMilov/gopoints/internal/domain"
	"github.com/SergeyMilov/gopoints/internal/dto"
	"github.com/SergeyMilov/gopoints/pkg/utils"
)

type Service interface {
	GetRanks(ctx context.Context) ([]domain.Rank, error)
	CreateRank(ctx context.Context, rank *domain.Rank) (*domain.Rank, error)
	UpdateRank(ctx context.Context, rank *domain.Rank) error
	DeleteRank(ctx context.Context, id int) error
}

type RankHandler struct {
	rankService Service
}

func New(rankService Service) *RankHandler {
	return &RankHandler{
		rankService: rankService,
	}
}

// List returns the rank ladder ordered by threshold.
func (h *RankHandler) List(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.rankService.GetRanks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.RankResponseDTO, len(ranks))
	for i, rank := range ranks {
		response[i] = toResponse(rank)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create adds a tier to the ladder.
func (h *RankHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rank, err := h.rankService.CreateRank(r.Context(), fromRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*rank))
}

// Update edits a tier; threshold changes schedule a re-resolution pass.
func (h *RankHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid rank id")
		return
	}
	var req dto.RankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rank := fromRequest(req)
	rank.ID = id

	if err := h.rankService.UpdateRank(r.Context(), rank); err != nil {
		switch {
		case errors.Is(err, domain.ErrRankNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*rank))
}

// Delete removes a tier after moving its users to the next eligible one.
func (h *RankHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid rank id")
		return
	}
	if err := h.rankService.DeleteRank(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRankNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "rank deleted"})
}

func fromRequest(req dto.RankRequestDTO) *domain.Rank {
	return &domain.Rank{
		Name:                req.Name,
		RequiredPoints:      req.RequiredPoints,
		PurchaseUnitAmount:  req.PurchaseUnitAmount,
		FixedPointRate:      req.FixedPointRate,
		PercentageRate:      req.PercentageRate,
		MaxPercentagePoints: req.MaxPercentagePoints,
	}
}

func toResponse(rank domain.Rank) dto.RankResponseDTO {
	return dto.RankResponseDTO{
		ID:                  rank.ID,
		Name:                rank.Name,
		RequiredPoints:      rank.RequiredPoints,
		PurchaseUnitAmount:  rank.PurchaseUnitAmount,
		FixedPointRate:      rank.FixedPointRate,
		PercentageRate:      rank.PercentageRate,
		MaxPercentagePoints: rank.MaxPercentagePoints,
	}
}
