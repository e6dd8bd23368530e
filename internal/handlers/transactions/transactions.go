package transactions

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
	"github.com/SergeyMilov/gopoints/pkg/utils"
)

type Service interface {
	Record(ctx context.Context, userID int, storeID uuid.UUID, totalPayment float64, pointType string) (*domain.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetStoreTransactions(ctx context.Context, storeID uuid.UUID) ([]domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create registers a purchase transaction and triggers points accrual.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	transaction, err := h.transactionService.Record(r.Context(), req.UserID, storeID, req.TotalPayment, req.PointType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrStoreNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidPointType),
			errors.Is(err, domain.ErrInvalidPaymentAmount),
			errors.Is(err, domain.ErrInvalidRank):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrConcurrencyConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*transaction))
}

// GetUserTransactions returns a user's transactions, newest first.
func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	transactions, err := h.transactionService.GetUserTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseList(transactions))
}

// GetStoreTransactions returns a store's transactions, newest first.
func (h *TransactionHandler) GetStoreTransactions(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuid.Parse(chi.URLParam(r, "storeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}
	transactions, err := h.transactionService.GetStoreTransactions(r.Context(), storeID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseList(transactions))
}

// Delete removes a transaction record (administrative).
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	if err := h.transactionService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "transaction deleted"})
}

func toResponse(t domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:           t.ID.String(),
		UserID:       t.UserID,
		StoreID:      t.StoreID.String(),
		TotalPayment: t.TotalPayment,
		PointType:    t.PointType,
		CreatedAt:    t.CreatedAt,
	}
}

func toResponseList(transactions []domain.Transaction) []dto.TransactionResponseDTO {
	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = toResponse(t)
	}
	return response
}
