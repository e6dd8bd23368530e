package repo

import (
	"github.com/SergeyMilov/gopoints/internal/pg"
	pointsrepo "github.com/SergeyMilov/gopoints/internal/repo/points-repo"
	rankrepo "github.com/SergeyMilov/gopoints/internal/repo/rank-repo"
	redemptionrepo "github.com/SergeyMilov/gopoints/internal/repo/redemption-repo"
	rewardrepo "github.com/SergeyMilov/gopoints/internal/repo/reward-repo"
	storerepo "github.com/SergeyMilov/gopoints/internal/repo/store-repo"
	storeuserrepo "github.com/SergeyMilov/gopoints/internal/repo/storeuser-repo"
	transactionrepo "github.com/SergeyMilov/gopoints/internal/repo/transaction-repo"
	userrepo "github.com/SergeyMilov/gopoints/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	RankRepo        *rankrepo.Repository
	StoreRepo       *storerepo.Repository
	StoreUserRepo   *storeuserrepo.Repository
	TransactionRepo *transactionrepo.Repository
	PointsRepo      *pointsrepo.Repository
	RewardRepo      *rewardrepo.Repository
	RedemptionRepo  *redemptionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		RankRepo:        rankrepo.New(conn),
		StoreRepo:       storerepo.New(conn),
		StoreUserRepo:   storeuserrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		PointsRepo:      pointsrepo.New(conn),
		RewardRepo:      rewardrepo.New(conn),
		RedemptionRepo:  redemptionrepo.New(conn),
	}
}
