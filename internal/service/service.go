package service

import (
	"github.com/SergeyMilov/gopoints/internal/notifier"
	"github.com/SergeyMilov/gopoints/internal/pg"
	"github.com/SergeyMilov/gopoints/internal/repo"
	"github.com/SergeyMilov/gopoints/internal/service/pointsservice"
	"github.com/SergeyMilov/gopoints/internal/service/rankservice"
	"github.com/SergeyMilov/gopoints/internal/service/redemptionservice"
	"github.com/SergeyMilov/gopoints/internal/service/rewardservice"
	"github.com/SergeyMilov/gopoints/internal/service/transactionservice"
)

type Services struct {
	RankService        *rankservice.Service
	PointsService      *pointsservice.Service
	TransactionService *transactionservice.Service
	RewardService      *rewardservice.Service
	RedemptionService  *redemptionservice.Service
}

func New(repo *repo.Repositories, events *notifier.Service, txManager pg.TXManager) *Services {
	rankService := rankservice.New(repo.RankRepo, repo.UserRepo, txManager)
	pointsService := pointsservice.New(repo.PointsRepo, repo.UserRepo)
	rewardService := rewardservice.New(repo.RewardRepo, repo.StoreRepo)
	transactionService := transactionservice.New(
		repo.TransactionRepo,
		repo.UserRepo,
		repo.StoreRepo,
		repo.RankRepo,
		repo.StoreUserRepo,
		pointsService,
		rankService,
		events,
		txManager,
	)
	redemptionService := redemptionservice.New(
		repo.RedemptionRepo,
		repo.RewardRepo,
		repo.UserRepo,
		repo.StoreRepo,
		repo.StoreUserRepo,
		rewardService,
		rankService,
		events,
		txManager,
	)

	return &Services{
		RankService:        rankService,
		PointsService:      pointsService,
		TransactionService: transactionService,
		RewardService:      rewardService,
		RedemptionService:  redemptionService,
	}
}
