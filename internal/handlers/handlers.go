package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SergeyMilov/gopoints/internal/handlers/points"
	"github.com/SergeyMilov/gopoints/internal/handlers/ranks"
	"github.com/SergeyMilov/gopoints/internal/handlers/redemptions"
	"github.com/SergeyMilov/gopoints/internal/handlers/rewards"
	"github.com/SergeyMilov/gopoints/internal/handlers/transactions"
	"github.com/SergeyMilov/gopoints/internal/service"
)

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetUserTransactions(w http.ResponseWriter, r *http.Request)
	GetStoreTransactions(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RedemptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetUserRedemptions(w http.ResponseWriter, r *http.Request)
}

type RankHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListStoreRewards(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetUserPoints(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TransactionHandler TransactionHandler
	RedemptionHandler  RedemptionHandler
	RankHandler        RankHandler
	RewardHandler      RewardHandler
	PointsHandler      PointsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TransactionHandler: transactions.New(s.TransactionService),
		RedemptionHandler:  redemptions.New(s.RedemptionService),
		RankHandler:        ranks.New(s.RankService),
		RewardHandler:      rewards.New(s.RewardService),
		PointsHandler:      points.New(s.PointsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.TransactionHandler.Create)
			r.Delete("/{id}", h.TransactionHandler.Delete)
		})
		r.Post("/redemptions", h.RedemptionHandler.Create)
		r.Route("/ranks", func(r chi.Router) {
			r.Get("/", h.RankHandler.List)
			r.Post("/", h.RankHandler.Create)
			r.Put("/{id}", h.RankHandler.Update)
			r.Delete("/{id}", h.RankHandler.Delete)
		})
		r.Route("/rewards", func(r chi.Router) {
			r.Post("/", h.RewardHandler.Create)
			r.Delete("/{id}", h.RewardHandler.Delete)
		})
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/points", h.PointsHandler.GetUserPoints)
			r.Get("/transactions", h.TransactionHandler.GetUserTransactions)
			r.Get("/redemptions", h.RedemptionHandler.GetUserRedemptions)
		})
		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Get("/transactions", h.TransactionHandler.GetStoreTransactions)
			r.Get("/rewards", h.RewardHandler.ListStoreRewards)
		})
	})

	return r
}
